package gtk

import (
	"fmt"
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/pkg/gdk"
	"github.com/bnema/gtkbridge/pkg/glib"
)

// IWidget is implemented by every widget wrapper.
type IWidget interface {
	glib.IObject
	ToWidget() *Widget
}

// Widget wraps GtkWidget.
type Widget struct {
	glib.InitiallyUnowned
}

func wrapWidget(o *glib.Object) *Widget {
	return &Widget{glib.InitiallyUnowned{Object: o}}
}

func (w *Widget) ToWidget() *Widget { return w }

// castWidget wraps a transfer-none widget pointer in its most derived wrapper. The
// envelope takes its own reference. NULL yields nil.
func castWidget(p unsafe.Pointer) IWidget {
	if p == nil {
		return nil
	}
	o := glib.Borrow(p)
	w, ok := glib.Wrap(o).(IWidget)
	if !ok {
		o.Unref()
		panic(fmt.Sprintf("gtk: %s is not a widget", o))
	}
	return w
}

// Show marks the widget visible.
func (w *Widget) Show() { ffi.WidgetShow(w.Native()) }

func (w *Widget) Hide() { ffi.WidgetHide(w.Native()) }

// ShowAll shows the widget and all of its descendants.
func (w *Widget) ShowAll() { ffi.WidgetShowAll(w.Native()) }

func (w *Widget) Visible() bool { return ffi.WidgetGetVisible(w.Native()) }

// Destroy breaks the widget's references to others and removes it from its parent.
// The envelope still holds its reference and must be released with Unref.
func (w *Widget) Destroy() { ffi.WidgetDestroy(w.Native()) }

// Parent returns the parent container, nil for an unparented widget.
func (w *Widget) Parent() IWidget { return castWidget(ffi.WidgetGetParent(w.Native())) }

// Toplevel returns the root of the widget's hierarchy, the widget itself when it has
// no parent.
func (w *Widget) Toplevel() IWidget { return castWidget(ffi.WidgetGetToplevel(w.Native())) }

func (w *Widget) SetSensitive(v bool) { ffi.WidgetSetSensitive(w.Native(), v) }

func (w *Widget) Sensitive() bool { return ffi.WidgetGetSensitive(w.Native()) }

// SetName sets the name used by CSS selectors.
func (w *Widget) SetName(name string) {
	glib.WithCString(name, func(n unsafe.Pointer) { ffi.WidgetSetName(w.Native(), n) })
}

// Name returns the widget name, the class name when none was set.
func (w *Widget) Name() string { return glib.GoString(ffi.WidgetGetName(w.Native())) }

// SetSizeRequest sets the minimum size; -1 unsets a dimension.
func (w *Widget) SetSizeRequest(width, height int) {
	ffi.WidgetSetSizeRequest(w.Native(), int32(width), int32(height))
}

func (w *Widget) SizeRequest() (width, height int) {
	x, y := ffi.WidgetGetSizeRequest(w.Native())
	return int(x), int(y)
}

// Event delivers ev to the widget's event signals and reports whether a handler
// handled it.
func (w *Widget) Event(ev *gdk.Event) bool { return ffi.WidgetEvent(w.Native(), ev.Native()) }

// HasDefault reports whether the widget is its window's default widget.
func (w *Widget) HasDefault() bool { return ffi.WidgetHasDefault(w.Native()) }

// CanActivateAccel reports whether an accelerator for the given signal may fire.
func (w *Widget) CanActivateAccel(signalID uint) bool {
	return ffi.WidgetCanActivateAccel(w.Native(), uint32(signalID))
}

// GrabAdd makes the widget the current grab widget; others receive grab-notify.
func (w *Widget) GrabAdd() { ffi.GrabAdd(w.Native()) }

func (w *Widget) GrabRemove() { ffi.GrabRemove(w.Native()) }
