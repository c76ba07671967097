// Package gdk wraps the GdkEvent values delivered to widget event signals.
package gdk

import (
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
)

// EventType mirrors GdkEventType.
type EventType int32

const (
	EventNothing       EventType = -1
	EventDelete        EventType = 0
	EventDestroy       EventType = 1
	EventExpose        EventType = 2
	EventMotionNotify  EventType = 3
	EventButtonPress   EventType = 4
	Event2ButtonPress  EventType = 5
	Event3ButtonPress  EventType = 6
	EventButtonRelease EventType = 7
	EventKeyPress      EventType = 8
	EventKeyRelease    EventType = 9
)

func (t EventType) String() string {
	switch t {
	case EventDelete:
		return "delete"
	case EventMotionNotify:
		return "motion-notify"
	case EventButtonPress:
		return "button-press"
	case Event2ButtonPress:
		return "2button-press"
	case Event3ButtonPress:
		return "3button-press"
	case EventButtonRelease:
		return "button-release"
	case EventKeyPress:
		return "key-press"
	case EventKeyRelease:
		return "key-release"
	default:
		return "other"
	}
}

// Common key values.
const (
	KeyEscape uint = 0xff1b
	KeyReturn uint = 0xff0d
	KeySpace  uint = 0x020
)

// Event is a GdkEvent. Events handed to signal handlers are borrowed for the duration
// of the handler; Copy makes an owned one.
type Event struct {
	ptr   unsafe.Pointer
	owned bool
}

// NewEvent allocates an owned event of type t. Free it when done.
func NewEvent(t EventType) *Event {
	return &Event{ptr: ffi.GdkEventNew(int32(t)), owned: true}
}

// WrapEvent wraps a borrowed event pointer, nil for NULL.
func WrapEvent(p unsafe.Pointer) *Event {
	if p == nil {
		return nil
	}
	return &Event{ptr: p}
}

func (e *Event) Native() unsafe.Pointer {
	if e.ptr == nil {
		panic("gdk: use of a freed Event")
	}
	return e.ptr
}

// Copy returns an owned copy.
func (e *Event) Copy() *Event {
	return &Event{ptr: ffi.GdkEventCopy(e.Native()), owned: true}
}

// Free releases an owned event. It does nothing for borrowed events or twice.
func (e *Event) Free() {
	if e == nil || e.ptr == nil || !e.owned {
		return
	}
	ffi.GdkEventFree(e.ptr)
	e.ptr = nil
}

func (e *Event) Type() EventType { return EventType(ffi.GdkEventGetEventType(e.Native())) }

// Button returns the mouse button of a button event.
func (e *Event) Button() (uint, bool) {
	b, ok := ffi.GdkEventGetButton(e.Native())
	return uint(b), ok
}

// KeyVal returns the key symbol of a key event.
func (e *Event) KeyVal() (uint, bool) {
	k, ok := ffi.GdkEventGetKeyval(e.Native())
	return uint(k), ok
}

// Coords returns the window-relative position of pointer events.
func (e *Event) Coords() (x, y float64, ok bool) { return ffi.GdkEventGetCoords(e.Native()) }

// SetButton is for synthesised events; other event types ignore it.
func (e *Event) SetButton(b uint) { ffi.GdkEventSetButton(e.Native(), uint32(b)) }

func (e *Event) SetKeyVal(k uint) { ffi.GdkEventSetKeyval(e.Native(), uint32(k)) }

func (e *Event) SetCoords(x, y float64) { ffi.GdkEventSetCoords(e.Native(), x, y) }
