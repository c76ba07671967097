package gtk

import (
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/pkg/glib"
)

type IWindow interface {
	IBin
	ToWindow() *Window
}

// Window wraps GtkWindow. GTK keeps its own reference on every toplevel until the
// window is destroyed, so dropping the envelope does not close the window.
type Window struct {
	Bin
}

func wrapWindow(o *glib.Object) *Window { return &Window{*wrapBin(o)} }

func (w *Window) ToWindow() *Window { return w }

// NewWindow creates a toplevel or popup window.
func NewWindow(t WindowType) *Window {
	return wrapWindow(glib.Take(mustNew(ffi.WindowNew(int32(t)), "gtk_window_new")))
}

func (w *Window) SetTitle(title string) {
	glib.WithCString(title, func(p unsafe.Pointer) { ffi.WindowSetTitle(w.Native(), p) })
}

// Title returns "" when no title was set.
func (w *Window) Title() string { return glib.GoString(ffi.WindowGetTitle(w.Native())) }

func (w *Window) SetDefaultSize(width, height int) {
	ffi.WindowSetDefaultSize(w.Native(), int32(width), int32(height))
}

func (w *Window) DefaultSize() (width, height int) {
	x, y := ffi.WindowGetDefaultSize(w.Native())
	return int(x), int(y)
}

func (w *Window) SetPosition(pos WindowPosition) { ffi.WindowSetPosition(w.Native(), int32(pos)) }

func (w *Window) SetModal(v bool) { ffi.WindowSetModal(w.Native(), v) }

func (w *Window) Modal() bool { return ffi.WindowGetModal(w.Native()) }

// SetTransientFor keeps the window above parent. nil clears it.
func (w *Window) SetTransientFor(parent IWindow) {
	ffi.WindowSetTransientFor(w.Native(), optNative(parent))
}

func (w *Window) TransientFor() IWindow {
	p := ffi.WindowGetTransientFor(w.Native())
	if p == nil {
		return nil
	}
	return glib.MustAs[IWindow](glib.Borrow(p))
}

// SetDestroyWithParent destroys the window together with its transient parent.
func (w *Window) SetDestroyWithParent(v bool) { ffi.WindowSetDestroyWithParent(w.Native(), v) }

func (w *Window) DestroyWithParent() bool { return ffi.WindowGetDestroyWithParent(w.Native()) }

func (w *Window) SetResizable(v bool) { ffi.WindowSetResizable(w.Native(), v) }

func (w *Window) Resizable() bool { return ffi.WindowGetResizable(w.Native()) }

// Close requests the window to close as if the user clicked the close button. The
// delete-event is delivered from the main loop; the window is destroyed unless a
// handler returns true.
func (w *Window) Close() { ffi.WindowClose(w.Native()) }
