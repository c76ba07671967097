//go:build linux

package glib

import "golang.org/x/sys/unix"

func currentThread() (int, bool) { return unix.Gettid(), true }
