package gtk

import (
	"github.com/bnema/gtkbridge/pkg/gdk"
	"github.com/bnema/gtkbridge/pkg/glib"
)

// Signal descriptors. Each builds a glib.Signal whose handler receives the emitting
// widget as T, for use with Connect:
//
//	button.Connect(gtk.Clicked(func(b *gtk.Button) { ... }))
//
// Widgets passed to handlers are borrowed for the emission only; call Ref on the
// underlying object to keep one. The same holds for *gdk.Event, which must be Copied.

func voidSignal[T glib.IObject](name string, fn func(T)) glib.Signal {
	return glib.Signal{Name: name, Signature: glib.SigVoid, Handler: func(e *glib.Emission) bool {
		fn(glib.MustAs[T](e.Instance))
		return false
	}}
}

func eventSignal[T glib.IObject](name string, fn func(T, *gdk.Event) bool) glib.Signal {
	return glib.Signal{Name: name, Signature: glib.SigEventBool, Handler: func(e *glib.Emission) bool {
		return fn(glib.MustAs[T](e.Instance), gdk.WrapEvent(e.Ptr))
	}}
}

func widgetSignal[T glib.IObject](name string, fn func(T, IWidget)) glib.Signal {
	return glib.Signal{Name: name, Signature: glib.SigPtrVoid, Handler: func(e *glib.Emission) bool {
		var w IWidget
		if o := e.Object(); o != nil {
			w = glib.MustAs[IWidget](o)
		}
		fn(glib.MustAs[T](e.Instance), w)
		return false
	}}
}

func Clicked[T IButton](fn func(T)) glib.Signal { return voidSignal("clicked", fn) }

func Toggled[T IToggleButton](fn func(T)) glib.Signal { return voidSignal("toggled", fn) }

// Destroy fires when the widget is destroyed, before its references are dropped.
func Destroy[T IWidget](fn func(T)) glib.Signal { return voidSignal("destroy", fn) }

func Show[T IWidget](fn func(T)) glib.Signal { return voidSignal("show", fn) }

func Hide[T IWidget](fn func(T)) glib.Signal { return voidSignal("hide", fn) }

// DeleteEvent fires when the user asks to close a window. Returning true keeps the
// window open.
func DeleteEvent[T IWidget](fn func(T, *gdk.Event) bool) glib.Signal {
	return eventSignal("delete-event", fn)
}

func ButtonPressEvent[T IWidget](fn func(T, *gdk.Event) bool) glib.Signal {
	return eventSignal("button-press-event", fn)
}

func ButtonReleaseEvent[T IWidget](fn func(T, *gdk.Event) bool) glib.Signal {
	return eventSignal("button-release-event", fn)
}

func KeyPressEvent[T IWidget](fn func(T, *gdk.Event) bool) glib.Signal {
	return eventSignal("key-press-event", fn)
}

func KeyReleaseEvent[T IWidget](fn func(T, *gdk.Event) bool) glib.Signal {
	return eventSignal("key-release-event", fn)
}

// GrabNotify reports whether the widget became shadowed by a grab (false) or
// unshadowed (true).
func GrabNotify[T IWidget](fn func(T, bool)) glib.Signal {
	return glib.Signal{Name: "grab-notify", Signature: glib.SigBoolVoid, Handler: func(e *glib.Emission) bool {
		fn(glib.MustAs[T](e.Instance), e.Bool)
		return false
	}}
}

// CanActivateAccel decides whether an accelerator for signalID may fire.
func CanActivateAccel[T IWidget](fn func(w T, signalID uint) bool) glib.Signal {
	return glib.Signal{Name: "can-activate-accel", Signature: glib.SigUintBool, Handler: func(e *glib.Emission) bool {
		return fn(glib.MustAs[T](e.Instance), e.Uint)
	}}
}

// ParentSet fires after the parent changed. previous is nil when the widget had none.
func ParentSet[T IWidget](fn func(w T, previous IWidget)) glib.Signal {
	return widgetSignal("parent-set", fn)
}

// ChildAdded is the container's add signal.
func ChildAdded[T IContainer](fn func(c T, child IWidget)) glib.Signal {
	return widgetSignal("add", fn)
}

// ChildRemoved is the container's remove signal.
func ChildRemoved[T IContainer](fn func(c T, child IWidget)) glib.Signal {
	return widgetSignal("remove", fn)
}

func Response[T IDialog](fn func(T, ResponseType)) glib.Signal {
	return glib.Signal{Name: "response", Signature: glib.SigIntVoid, Handler: func(e *glib.Emission) bool {
		fn(glib.MustAs[T](e.Instance), ResponseType(e.Int))
		return false
	}}
}

func CurrentFolderChanged[T IFileChooser](fn func(T)) glib.Signal {
	return voidSignal("current-folder-changed", fn)
}

func SelectionChanged[T IFileChooser](fn func(T)) glib.Signal {
	return voidSignal("selection-changed", fn)
}

func FileActivated[T IFileChooser](fn func(T)) glib.Signal {
	return voidSignal("file-activated", fn)
}
