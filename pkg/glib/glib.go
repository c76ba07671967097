// Package glib is the object and signal bridge: handle envelopes that own GObject
// references, runtime downcasts through a class registry, Go closures connected to
// signals, and the string, list and GError marshaling used by the widget packages.
//
// Every call except IdleAdd must happen on the thread that called gtk.Init.
package glib

import (
	"errors"

	"github.com/bnema/gtkbridge/internal/ffi"
)

var (
	ErrUnknownSignal = errors.New("glib: unknown signal")
	ErrNilHandler    = errors.New("glib: signal handler is nil")
	ErrConnectFailed = errors.New("glib: signal connection refused")
)

// Type is a GType.
type Type = ffi.GType

// Signature selects the C trampoline a handler is connected through.
type Signature = ffi.Signature

const (
	SigVoid      = ffi.SigVoid
	SigEventBool = ffi.SigEventBool
	SigUintBool  = ffi.SigUintBool
	SigBoolVoid  = ffi.SigBoolVoid
	SigPtrVoid   = ffi.SigPtrVoid
	SigIntVoid   = ffi.SigIntVoid
)

func init() {
	ffi.SetCallbacks(dispatcher{})
}
