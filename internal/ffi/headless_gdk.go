//go:build !gtk_cgo

package ffi

import (
	"fmt"
	"unsafe"
)

const (
	gdkDelete        int32 = 0
	gdkMotionNotify  int32 = 3
	gdkButtonPress   int32 = 4
	gdk2ButtonPress  int32 = 5
	gdk3ButtonPress  int32 = 6
	gdkButtonRelease int32 = 7
	gdkKeyPress      int32 = 8
	gdkKeyRelease    int32 = 9
)

type gdkEvent struct {
	typ    int32
	button uint32
	keyval uint32
	x, y   float64
}

func (e *gdkEvent) isButton() bool {
	switch e.typ {
	case gdkButtonPress, gdk2ButtonPress, gdk3ButtonPress, gdkButtonRelease:
		return true
	}
	return false
}

func (e *gdkEvent) isKey() bool { return e.typ == gdkKeyPress || e.typ == gdkKeyRelease }

func lookupEvent(p unsafe.Pointer) *gdkEvent {
	e, ok := rt.events[p]
	if !ok {
		panic(fmt.Sprintf("ffi: %p is not a live GdkEvent", p))
	}
	return e
}

func registerEvent(e *gdkEvent) unsafe.Pointer {
	p := unsafe.Pointer(e)
	rt.events[p] = e
	return p
}

func GdkEventNew(t int32) unsafe.Pointer { return registerEvent(&gdkEvent{typ: t}) }

func GdkEventFree(p unsafe.Pointer) {
	lookupEvent(p)
	delete(rt.events, p)
}

func GdkEventCopy(p unsafe.Pointer) unsafe.Pointer {
	e := *lookupEvent(p)
	return registerEvent(&e)
}

func GdkEventGetEventType(p unsafe.Pointer) int32 { return lookupEvent(p).typ }

func GdkEventGetButton(p unsafe.Pointer) (uint32, bool) {
	e := lookupEvent(p)
	if !e.isButton() {
		return 0, false
	}
	return e.button, true
}

func GdkEventGetKeyval(p unsafe.Pointer) (uint32, bool) {
	e := lookupEvent(p)
	if !e.isKey() {
		return 0, false
	}
	return e.keyval, true
}

func GdkEventGetCoords(p unsafe.Pointer) (float64, float64, bool) {
	e := lookupEvent(p)
	if !e.isButton() && e.typ != gdkMotionNotify {
		return 0, 0, false
	}
	return e.x, e.y, true
}

func GdkEventSetButton(p unsafe.Pointer, b uint32) {
	if e := lookupEvent(p); e.isButton() {
		e.button = b
	}
}

func GdkEventSetKeyval(p unsafe.Pointer, k uint32) {
	if e := lookupEvent(p); e.isKey() {
		e.keyval = k
	}
}

func GdkEventSetCoords(p unsafe.Pointer, x, y float64) {
	if e := lookupEvent(p); e.isButton() || e.typ == gdkMotionNotify {
		e.x, e.y = x, y
	}
}
