package gtk

import (
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/pkg/glib"
)

type IDialog interface {
	IWindow
	ToDialog() *Dialog
}

// Dialog wraps GtkDialog.
type Dialog struct {
	Window
}

func wrapDialog(o *glib.Object) *Dialog { return &Dialog{*wrapWindow(o)} }

func (d *Dialog) ToDialog() *Dialog { return d }

// DialogButton describes one action-area button.
type DialogButton struct {
	Text     string
	Response ResponseType
}

func NewDialog() *Dialog {
	return wrapDialog(glib.Take(mustNew(ffi.DialogNew(), "gtk_dialog_new")))
}

// NewDialogWithButtons creates a dialog with a title, an optional transient parent and
// the given buttons in order. DialogUseHeaderBar is accepted and ignored.
func NewDialogWithButtons(title string, parent IWindow, flags DialogFlags, buttons ...DialogButton) *Dialog {
	d := NewDialog()
	d.SetTitle(title)
	if parent != nil {
		d.SetTransientFor(parent)
	}
	d.SetModal(flags&DialogModal != 0)
	d.SetDestroyWithParent(flags&DialogDestroyWithParent != 0)
	for _, b := range buttons {
		d.AddButton(b.Text, b.Response).Unref()
	}
	return d
}

// Run shows the dialog and blocks in a nested main loop until it emits response or is
// destroyed. A destroyed dialog yields ResponseNone, a delete-event ResponseDeleteEvent.
func (d *Dialog) Run() ResponseType { return ResponseType(ffi.DialogRun(d.Native())) }

// Response emits the response signal.
func (d *Dialog) Response(id ResponseType) { ffi.DialogResponse(d.Native(), int32(id)) }

// AddButton appends a button emitting id when clicked. The dialog owns the button; the
// returned envelope holds an extra reference.
func (d *Dialog) AddButton(text string, id ResponseType) *Button {
	var p unsafe.Pointer
	glib.WithCString(text, func(t unsafe.Pointer) { p = ffi.DialogAddButton(d.Native(), t, int32(id)) })
	return wrapButton(glib.Borrow(mustNew(p, "gtk_dialog_add_button")))
}

// AddButtons appends the preset. Cancel-like buttons come before the affirmative one.
func (d *Dialog) AddButtons(preset ButtonsType) {
	for _, b := range presetButtons(preset) {
		d.AddButton(b.Text, b.Response).Unref()
	}
}

func presetButtons(preset ButtonsType) []DialogButton {
	switch preset {
	case ButtonsOk:
		return []DialogButton{{"_OK", ResponseOk}}
	case ButtonsClose:
		return []DialogButton{{"_Close", ResponseClose}}
	case ButtonsCancel:
		return []DialogButton{{"_Cancel", ResponseCancel}}
	case ButtonsYesNo:
		return []DialogButton{{"_No", ResponseNo}, {"_Yes", ResponseYes}}
	case ButtonsOkCancel:
		return []DialogButton{{"_Cancel", ResponseCancel}, {"_OK", ResponseOk}}
	}
	return nil
}

// AddActionWidget puts an activatable widget in the action area.
func (d *Dialog) AddActionWidget(child IWidget, id ResponseType) {
	ffi.DialogAddActionWidget(d.Native(), child.ToWidget().Native(), int32(id))
}

// SetDefaultResponse makes the action widget with id the default widget.
func (d *Dialog) SetDefaultResponse(id ResponseType) {
	ffi.DialogSetDefaultResponse(d.Native(), int32(id))
}

func (d *Dialog) SetResponseSensitive(id ResponseType, v bool) {
	ffi.DialogSetResponseSensitive(d.Native(), int32(id), v)
}

// ContentArea returns the vertical box above the action area.
func (d *Dialog) ContentArea() *Box {
	return wrapBox(glib.Borrow(ffi.DialogGetContentArea(d.Native())))
}

// WidgetForResponse returns the first action widget with id, nil when there is none.
func (d *Dialog) WidgetForResponse(id ResponseType) IWidget {
	return castWidget(ffi.DialogGetWidgetForResponse(d.Native(), int32(id)))
}

// ResponseForWidget returns ResponseNone for a widget outside the action area.
func (d *Dialog) ResponseForWidget(w IWidget) ResponseType {
	return ResponseType(ffi.DialogGetResponseForWidget(d.Native(), w.ToWidget().Native()))
}
