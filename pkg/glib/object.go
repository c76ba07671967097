package glib

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
)

// Object is the handle envelope of a GObject instance. An owned envelope holds
// exactly one strong reference from construction until Unref. A view, handed to
// signal handlers, holds none and expires when the emission returns.
type Object struct {
	ptr      unsafe.Pointer
	released bool
	view     bool
	expired  bool
}

// IObject is implemented by every wrapper that embeds *Object.
type IObject interface {
	ToObject() *Object
}

// InitiallyUnowned is the base of classes whose instances start with a floating
// reference.
type InitiallyUnowned struct {
	*Object
}

// BaseObject returns the envelope behind obj, or nil.
func BaseObject(obj IObject) *Object {
	if obj == nil {
		return nil
	}
	return obj.ToObject()
}

func mustPtr(p unsafe.Pointer, fn string) {
	if p == nil {
		panic("glib: " + fn + " with a NULL pointer")
	}
}

// Take wraps a pointer freshly returned by a constructor. A floating reference is
// sunk; a non-floating one gets an extra reference, as g_object_ref_sink does.
func Take(p unsafe.Pointer) *Object {
	mustPtr(p, "Take")
	ffi.ObjectRefSink(p)
	return newOwned(p, "take")
}

// Borrow wraps a pointer the caller does not own by adding a reference.
func Borrow(p unsafe.Pointer) *Object {
	mustPtr(p, "Borrow")
	ffi.ObjectRef(p)
	return newOwned(p, "borrow")
}

// AssumeOwned wraps a transfer-full, non-floating pointer without touching its count.
func AssumeOwned(p unsafe.Pointer) *Object {
	mustPtr(p, "AssumeOwned")
	return newOwned(p, "assume")
}

func newOwned(p unsafe.Pointer, how string) *Object {
	o := &Object{ptr: p}
	runtime.SetFinalizer(o, (*Object).collect)
	if e := log().Trace(); e.Enabled() {
		e.Str("op", how).Str("type", typeName(ffi.TypeFromInstance(p))).
			Uint32("refs", ffi.ObjectRefCount(p)).Msg("envelope")
	}
	return o
}

func newView(p unsafe.Pointer) *Object {
	return &Object{ptr: p, view: true}
}

// collect runs on the finalizer goroutine. The reference is dropped from the main
// loop, never from here.
func (o *Object) collect() {
	if o.released || o.view {
		return
	}
	p := o.ptr
	log().Debug().Msg("envelope collected without Unref, releasing on the main loop")
	IdleAdd(func() bool {
		ffi.ObjectUnref(p)
		return false
	})
}

func (o *Object) check() {
	switch {
	case o == nil:
		panic("glib: nil Object")
	case o.released:
		panic("glib: use of an Object after Unref")
	case o.expired:
		panic("glib: object borrowed by a signal handler used after the emission returned; call Ref to keep it")
	}
	checkThread()
}

// ToObject implements IObject.
func (o *Object) ToObject() *Object { return o }

// Native returns the instance pointer.
func (o *Object) Native() unsafe.Pointer {
	o.check()
	return o.ptr
}

// Leak hands the reference over to the caller (transfer full) and releases the
// envelope without unreferencing.
func (o *Object) Leak() unsafe.Pointer {
	p := o.Native()
	if o.view {
		panic("glib: Leak of a borrowed object; call Ref first")
	}
	o.released = true
	runtime.SetFinalizer(o, nil)
	return p
}

// Unref releases the envelope's reference. Later calls do nothing. Views own no
// reference, so Unref on a view only detaches it.
func (o *Object) Unref() {
	if o == nil || o.released {
		return
	}
	checkThread()
	o.released = true
	if o.view {
		return
	}
	runtime.SetFinalizer(o, nil)
	if e := log().Trace(); e.Enabled() {
		e.Str("op", "unref").Str("type", typeName(ffi.TypeFromInstance(o.ptr))).
			Uint32("refs", ffi.ObjectRefCount(o.ptr)).Msg("envelope")
	}
	ffi.ObjectUnref(o.ptr)
}

// Ref returns a new owned envelope sharing the instance.
func (o *Object) Ref() *Object { return Borrow(o.Native()) }

// Equal reports whether both envelopes wrap the same instance.
func (o *Object) Equal(other IObject) bool {
	oo := BaseObject(other)
	if o == nil || oo == nil {
		return o == nil && oo == nil
	}
	return o.ptr == oo.ptr
}

// RefCount reads the instance's reference count. For diagnostics only.
func (o *Object) RefCount() uint { return uint(ffi.ObjectRefCount(o.Native())) }

func (o *Object) IsFloating() bool { return ffi.ObjectIsFloating(o.Native()) }

// Type returns the runtime class of the instance.
func (o *Object) Type() Type { return ffi.TypeFromInstance(o.Native()) }

func (o *Object) TypeName() string { return typeName(o.Type()) }

// IsA reports whether the instance's class is t or derives from it.
func (o *Object) IsA(t Type) bool { return ffi.TypeIsA(o.Type(), t) }

func (o *Object) String() string {
	if o == nil {
		return "<nil>"
	}
	if o.released || o.expired {
		return fmt.Sprintf("<released %p>", o.ptr)
	}
	return fmt.Sprintf("%s(%p)", typeName(ffi.TypeFromInstance(o.ptr)), o.ptr)
}

// WeakRef is a registered weak notification.
type WeakRef struct {
	ptr    unsafe.Pointer
	handle uintptr
	done   bool
}

// WeakRef calls notify once when the instance is disposed: when its last reference
// goes, or earlier when a widget is destroyed explicitly.
func (o *Object) WeakRef(notify func()) *WeakRef {
	w := &WeakRef{ptr: o.Native()}
	w.handle = closures.register(func() {
		w.done = true
		notify()
	})
	ffi.ObjectWeakRef(w.ptr, w.handle)
	return w
}

// Cancel removes the notification if it has not fired yet.
func (w *WeakRef) Cancel() {
	if w.done {
		return
	}
	w.done = true
	ffi.ObjectWeakUnref(w.ptr, w.handle)
	closures.release(w.handle)
}
