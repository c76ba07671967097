package gtk

import (
	"fmt"
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/pkg/glib"
)

type IMessageDialog interface {
	IDialog
	ToMessageDialog() *MessageDialog
}

// MessageDialog wraps GtkMessageDialog.
type MessageDialog struct {
	Dialog
}

func wrapMessageDialog(o *glib.Object) *MessageDialog { return &MessageDialog{*wrapDialog(o)} }

func (d *MessageDialog) ToMessageDialog() *MessageDialog { return d }

// NewMessageDialog creates a dialog showing text, which is taken literally; no printf
// formatting is applied. parent may be nil.
func NewMessageDialog(parent IWindow, flags DialogFlags, typ MessageType, buttons ButtonsType, text string) *MessageDialog {
	var p unsafe.Pointer
	glib.WithCString(text, func(m unsafe.Pointer) {
		p = ffi.MessageDialogNew(optNative(parent), int32(flags), int32(typ), int32(buttons), m)
	})
	return wrapMessageDialog(glib.Take(mustNew(p, "gtk_message_dialog_new")))
}

// SetMarkup replaces the primary text with Pango markup.
func (d *MessageDialog) SetMarkup(markup string) {
	glib.WithCString(markup, func(m unsafe.Pointer) { ffi.MessageDialogSetMarkup(d.Native(), m) })
}

// FormatSecondaryText sets the secondary text. An empty format hides it.
func (d *MessageDialog) FormatSecondaryText(format string, args ...any) {
	if format == "" {
		ffi.MessageDialogFormatSecondaryText(d.Native(), nil)
		return
	}
	glib.WithCString(fmt.Sprintf(format, args...), func(m unsafe.Pointer) {
		ffi.MessageDialogFormatSecondaryText(d.Native(), m)
	})
}

// MessageType returns the kind of message the dialog was created with.
func (d *MessageDialog) MessageType() MessageType {
	return MessageType(ffi.MessageDialogGetMessageType(d.Native()))
}

// MessageArea returns the box holding the primary and secondary labels.
func (d *MessageDialog) MessageArea() *Box {
	return wrapBox(glib.Borrow(ffi.MessageDialogGetMessageArea(d.Native())))
}
