package glib

import (
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
)

// dispatcher receives every call the foreign library makes back into Go.
type dispatcher struct{}

func (dispatcher) Signal(data uintptr, inst unsafe.Pointer, a ffi.Args) bool {
	v, ok := closures.get(data)
	if !ok {
		log().Warn().Uint64("data", uint64(data)).Msg("signal for a released closure")
		return false
	}
	s := v.(*Signal)
	e := &Emission{
		Instance: newView(inst),
		Ptr:      a.Ptr,
		Uint:     uint(a.Uint),
		Int:      int(a.Int),
		Bool:     a.Bool,
	}
	defer e.expire()
	return s.Handler(e)
}

func (dispatcher) Source(data uintptr) bool {
	v, ok := closures.get(data)
	if !ok {
		return false
	}
	return v.(func() bool)()
}

func (dispatcher) Destroy(data uintptr) {
	v, ok := closures.release(data)
	if !ok {
		log().Warn().Uint64("data", uint64(data)).Msg("destroy-notify for an unknown closure")
		return
	}
	if s, isSignal := v.(*Signal); isSignal {
		log().Trace().Str("signal", s.Name).Msg("handler released")
	}
}

func (dispatcher) Weak(data uintptr) {
	v, ok := closures.release(data)
	if !ok {
		return
	}
	v.(func())()
}

func (dispatcher) Log(domain string, level ffi.LogLevel, message string) {
	glibLogHandler(domain, level, message)
}
