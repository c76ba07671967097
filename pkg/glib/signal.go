package glib

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
)

// SignalHandle identifies one connection on one instance.
type SignalHandle uint64

// Signal describes a connection: the signal name, the trampoline signature the
// foreign signal is declared with, and the Go handler. The handler's return value is
// passed back to C for the boolean signatures and ignored otherwise.
type Signal struct {
	Name      string
	Signature Signature
	Handler   func(*Emission) bool
}

// Emission carries one signal invocation. Instance is a view of the emitting object
// that expires when the handler returns. Only the argument field matching the
// signature is set.
type Emission struct {
	Instance *Object
	Ptr      unsafe.Pointer
	Uint     uint
	Int      int
	Bool     bool

	views []*Object
}

// Object returns a view of the pointer argument, nil when it is NULL. Like Instance it
// expires with the emission.
func (e *Emission) Object() *Object {
	if e.Ptr == nil {
		return nil
	}
	v := newView(e.Ptr)
	e.views = append(e.views, v)
	return v
}

func (e *Emission) expire() {
	e.Instance.expired = true
	for _, v := range e.views {
		v.expired = true
	}
}

// NormalizeSignalName turns "button_press_event::detail" into
// "button-press-event::detail". Details are kept verbatim.
func NormalizeSignalName(name string) string {
	base, detail, found := strings.Cut(name, "::")
	base = strings.ReplaceAll(base, "_", "-")
	if found {
		return base + "::" + detail
	}
	return base
}

func signalID(name string, t Type) uint32 {
	base, _, _ := strings.Cut(name, "::")
	var id uint32
	WithCString(base, func(p unsafe.Pointer) { id = ffi.SignalLookup(p, t) })
	return id
}

// Connect attaches s to the instance. Handlers run in connection order after the
// class handler of run-first signals.
func (o *Object) Connect(s Signal) (SignalHandle, error) { return o.connect(s, false) }

// ConnectAfter attaches s to run after the class handler.
func (o *Object) ConnectAfter(s Signal) (SignalHandle, error) { return o.connect(s, true) }

func (o *Object) connect(s Signal, after bool) (SignalHandle, error) {
	p := o.Native()
	if s.Handler == nil {
		return 0, ErrNilHandler
	}
	name := NormalizeSignalName(s.Name)
	if signalID(name, o.Type()) == 0 {
		return 0, fmt.Errorf("%w: %q on %s", ErrUnknownSignal, s.Name, o.TypeName())
	}

	data := closures.register(&s)
	var id uint64
	WithCString(name, func(n unsafe.Pointer) { id = ffi.SignalConnect(p, n, s.Signature, data, after) })
	if id == 0 {
		closures.release(data)
		return 0, fmt.Errorf("%w: %q on %s", ErrConnectFailed, s.Name, o.TypeName())
	}

	log().Trace().Str("signal", name).Uint64("handler", id).Bool("after", after).
		Str("type", o.TypeName()).Msg("connect")
	return SignalHandle(id), nil
}

// MustConnect is Connect for descriptors known to be valid; it panics on error.
func (o *Object) MustConnect(s Signal) SignalHandle {
	h, err := o.Connect(s)
	if err != nil {
		panic(err)
	}
	return h
}

// HandlerBlock suspends a handler until the matching HandlerUnblock.
func (o *Object) HandlerBlock(h SignalHandle) { ffi.SignalHandlerBlock(o.Native(), uint64(h)) }

func (o *Object) HandlerUnblock(h SignalHandle) { ffi.SignalHandlerUnblock(o.Native(), uint64(h)) }

// HandlerDisconnect removes a handler. Its closure is released by the destroy-notify,
// after the handler returns if it is running.
func (o *Object) HandlerDisconnect(h SignalHandle) {
	ffi.SignalHandlerDisconnect(o.Native(), uint64(h))
}

func (o *Object) HandlerIsConnected(h SignalHandle) bool {
	return ffi.SignalHandlerIsConnected(o.Native(), uint64(h))
}

// EmitByName emits a signal that takes no arguments and returns nothing.
func (o *Object) EmitByName(name string) error {
	p := o.Native()
	name = NormalizeSignalName(name)
	if signalID(name, o.Type()) == 0 {
		return fmt.Errorf("%w: %q on %s", ErrUnknownSignal, name, o.TypeName())
	}
	WithCString(name, func(n unsafe.Pointer) { ffi.SignalEmitVoid(p, n) })
	return nil
}
