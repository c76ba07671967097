//go:build !linux

package glib

// No portable thread id outside Linux; callers fall back to IdleAdd.
func currentThread() (int, bool) { return 0, false }
