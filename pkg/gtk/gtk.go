// Package gtk wraps a representative set of GTK+ 3 widgets on top of the glib object
// bridge. Each wrapper embeds its parent class, so a *CheckButton is usable wherever
// an IToggleButton, IButton, IBin, IContainer or IWidget is expected. Runtime
// narrowing goes through glib.TryAs.
//
// Init must be called once, on the goroutine that will run the main loop, before any
// widget is created.
package gtk

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/pkg/glib"
)

var (
	ErrInitFailed      = errors.New("gtk: initialisation failed (no display?)")
	ErrVersionMismatch = errors.New("gtk: version mismatch")
)

// Init locks the calling goroutine to its thread and initialises GTK.
func Init() error {
	glib.LockMainThread()
	if !ffi.InitCheck() {
		return ErrInitFailed
	}
	return nil
}

// Main runs the main loop until MainQuit.
func Main() { ffi.Main() }

// MainQuit makes the innermost Main return.
func MainQuit() { ffi.MainQuit() }

// MainLevel returns the nesting depth of Main calls.
func MainLevel() uint { return uint(ffi.MainLevel()) }

// MainIterationDo runs one iteration and reports whether MainQuit was called for the
// innermost loop.
func MainIterationDo(blocking bool) bool { return ffi.MainIterationDo(blocking) }

func EventsPending() bool { return ffi.EventsPending() }

// Headless reports whether the in-memory backend is in use instead of the real
// libraries. Its main loop panics rather than block on an empty queue.
func Headless() bool { return !ffi.IsNativeAvailable() }

// Version returns the runtime GTK version.
func Version() (major, minor, micro uint) {
	return uint(ffi.GetMajorVersion()), uint(ffi.GetMinorVersion()), uint(ffi.GetMicroVersion())
}

// CheckVersion reports whether the runtime is compatible with the given version.
func CheckVersion(major, minor, micro uint) error {
	msg := ffi.CheckVersion(uint32(major), uint32(minor), uint32(micro))
	if msg == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrVersionMismatch, glib.GoString(msg))
}

// ListToplevels returns every toplevel window. Each envelope holds its own reference.
func ListToplevels() []IWindow {
	objs := glib.WrapList(ffi.WindowListToplevels(), glib.TransferContainer).ConsumeObjects()
	out := make([]IWindow, 0, len(objs))
	for _, o := range objs {
		out = append(out, glib.MustAs[IWindow](o))
	}
	return out
}

func mustNew(p unsafe.Pointer, fn string) unsafe.Pointer {
	if p == nil {
		panic("gtk: " + fn + " returned NULL")
	}
	return p
}

// optNative is NULL for a nil interface.
func optNative(obj glib.IObject) unsafe.Pointer {
	if o := glib.BaseObject(obj); o != nil {
		return o.Native()
	}
	return nil
}
