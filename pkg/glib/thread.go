package glib

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

var (
	mainThread   atomic.Int64
	locked       atomic.Bool
	threadChecks atomic.Bool
)

// threadID is swapped by tests.
var threadID = currentThread

// LockMainThread pins the calling goroutine to its OS thread and records that thread
// as the one GTK runs on. gtk.Init calls it.
func LockMainThread() {
	runtime.LockOSThread()
	id, _ := threadID()
	mainThread.Store(int64(id))
	locked.Store(true)
}

// SetThreadChecks makes every envelope access panic when it happens off the main
// thread. Off by default.
func SetThreadChecks(on bool) { threadChecks.Store(on) }

// onMainThread reports whether the caller runs on the recorded main thread. known is
// false when the platform gives no thread identity, in which case on is false too.
func onMainThread() (on, known bool) {
	if !locked.Load() {
		return true, true
	}
	id, ok := threadID()
	if !ok {
		return false, false
	}
	return int64(id) == mainThread.Load(), true
}

// IsMainThread reports whether the caller is known to run on the recorded main
// thread. It is true before LockMainThread has been called, and false after it on
// platforms without thread ids.
func IsMainThread() bool {
	on, _ := onMainThread()
	return on
}

// RunOnMainThread runs fn now when called from the main thread, otherwise it queues
// fn with IdleAdd.
func RunOnMainThread(fn func()) {
	if IsMainThread() {
		fn()
		return
	}
	IdleAdd(func() bool {
		fn()
		return false
	})
}

func checkThread() {
	if !threadChecks.Load() {
		return
	}
	on, known := onMainThread()
	if on || !known {
		return
	}
	id, _ := threadID()
	panic(fmt.Sprintf("glib: object used from thread %d, GTK runs on thread %d", id, mainThread.Load()))
}
