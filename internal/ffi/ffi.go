// Package ffi declares the GTK+ 3, GDK, GObject/GLib and Cairo entry points used by the
// bindings. Each function mirrors exactly one C symbol (or one line of C glue): no
// allocation beyond what the C function does, no ownership change and no error
// translation. NULL returns, gboolean statuses and GError out-parameters come back
// untouched.
//
// Two backends exist. Building with the gtk_cgo tag links the real libraries through
// pkg-config. Without the tag a headless backend models the same contracts in memory
// (reference counts, floating references, the class lattice, signal handlers with
// destroy-notify, idle sources and nested main loops) so the bindings can be exercised
// without a display.
package ffi

import "unsafe"

// GType is a GObject runtime class identifier.
type GType uint64

// Quark is a GQuark.
type Quark uint32

// Signature selects the C trampoline a signal handler is connected with.
type Signature int

const (
	// SigVoid is (instance, data) -> void.
	SigVoid Signature = iota
	// SigEventBool is (instance, GdkEvent*, data) -> gboolean.
	SigEventBool
	// SigUintBool is (instance, guint, data) -> gboolean.
	SigUintBool
	// SigBoolVoid is (instance, gboolean, data) -> void.
	SigBoolVoid
	// SigPtrVoid is (instance, gpointer, data) -> void.
	SigPtrVoid
	// SigIntVoid is (instance, gint, data) -> void.
	SigIntVoid
)

// ReturnsBool reports whether the trampoline returns a gboolean to C.
func (s Signature) ReturnsBool() bool {
	return s == SigEventBool || s == SigUintBool
}

func (s Signature) String() string {
	switch s {
	case SigVoid:
		return "void"
	case SigEventBool:
		return "event->bool"
	case SigUintBool:
		return "uint->bool"
	case SigBoolVoid:
		return "bool->void"
	case SigPtrVoid:
		return "pointer->void"
	case SigIntVoid:
		return "int->void"
	default:
		return "unknown"
	}
}

// Args carries the signal-specific argument unpacked by a trampoline. Only the field
// matching the handler's Signature is meaningful.
type Args struct {
	Ptr  unsafe.Pointer
	Uint uint32
	Int  int32
	Bool bool
}

// LogLevel mirrors GLogLevelFlags.
type LogLevel int32

const (
	LogLevelError    LogLevel = 1 << 2
	LogLevelCritical LogLevel = 1 << 3
	LogLevelWarning  LogLevel = 1 << 4
	LogLevelMessage  LogLevel = 1 << 5
	LogLevelInfo     LogLevel = 1 << 6
	LogLevelDebug    LogLevel = 1 << 7
)

// Callbacks receives every call the foreign library makes back into Go. The data
// argument is the opaque userdata registered with the connection or source.
type Callbacks interface {
	// Signal runs a connected handler. The result is ignored for void signatures.
	Signal(data uintptr, instance unsafe.Pointer, args Args) bool
	// Source runs an idle source and reports whether it stays installed.
	Source(data uintptr) bool
	// Destroy is the destroy-notify of a signal connection or a source.
	Destroy(data uintptr)
	// Weak is the notify of g_object_weak_ref, fired once at finalisation.
	Weak(data uintptr)
	// Log receives g_log output once LogSetDefaultHandler has been called.
	Log(domain string, level LogLevel, message string)
}

var callbacks Callbacks

// SetCallbacks installs the receiver of foreign callbacks. It must be called before any
// connection or source is created.
func SetCallbacks(c Callbacks) {
	callbacks = c
}

// Matrix is cairo_matrix_t: six doubles in C declaration order.
type Matrix struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

// Cairo status codes used by the bindings.
const (
	CairoStatusSuccess       int32 = 0
	CairoStatusInvalidMatrix int32 = 5
)
