package glib

import (
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
)

// SourceHandle identifies an idle source.
type SourceHandle uint32

// IdleAdd queues fn on the main loop. fn runs until it returns false or the source is
// removed. It is the one function that may be called from any goroutine.
func IdleAdd(fn func() bool) SourceHandle {
	data := closures.register(fn)
	return SourceHandle(ffi.IdleAdd(data))
}

// SourceRemove removes a pending source. Removing the running source from inside it
// takes effect when it returns.
func SourceRemove(h SourceHandle) bool { return ffi.SourceRemove(uint32(h)) }

// MainLoop is a GMainLoop on the default context.
type MainLoop struct {
	ptr unsafe.Pointer
}

func NewMainLoop() *MainLoop { return &MainLoop{ptr: ffi.MainLoopNew()} }

func (l *MainLoop) native() unsafe.Pointer {
	if l.ptr == nil {
		panic("glib: use of a MainLoop after Unref")
	}
	checkThread()
	return l.ptr
}

// Run blocks until Quit.
func (l *MainLoop) Run()            { ffi.MainLoopRun(l.native()) }
func (l *MainLoop) Quit()           { ffi.MainLoopQuit(l.native()) }
func (l *MainLoop) IsRunning() bool { return ffi.MainLoopIsRunning(l.native()) }

func (l *MainLoop) Unref() {
	if l.ptr == nil {
		return
	}
	ffi.MainLoopUnref(l.ptr)
	l.ptr = nil
}
