package gtk

import (
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/pkg/glib"
)

type IButton interface {
	IBin
	ToButton() *Button
}

// Button wraps GtkButton.
type Button struct {
	Bin
}

func wrapButton(o *glib.Object) *Button { return &Button{*wrapBin(o)} }

func (b *Button) ToButton() *Button { return b }

func NewButton() *Button {
	return wrapButton(glib.Take(mustNew(ffi.ButtonNew(), "gtk_button_new")))
}

func NewButtonWithLabel(label string) *Button {
	var p unsafe.Pointer
	glib.WithCString(label, func(l unsafe.Pointer) { p = ffi.ButtonNewWithLabel(l) })
	return wrapButton(glib.Take(mustNew(p, "gtk_button_new_with_label")))
}

func (b *Button) SetLabel(label string) {
	glib.WithCString(label, func(l unsafe.Pointer) { ffi.ButtonSetLabel(b.Native(), l) })
}

func (b *Button) Label() string { return glib.GoString(ffi.ButtonGetLabel(b.Native())) }

// Clicked emits the clicked signal.
func (b *Button) Clicked() { ffi.ButtonClicked(b.Native()) }

type IToggleButton interface {
	IButton
	ToToggleButton() *ToggleButton
}

// ToggleButton wraps GtkToggleButton.
type ToggleButton struct {
	Button
}

func wrapToggleButton(o *glib.Object) *ToggleButton { return &ToggleButton{*wrapButton(o)} }

func (b *ToggleButton) ToToggleButton() *ToggleButton { return b }

func NewToggleButton() *ToggleButton {
	return wrapToggleButton(glib.Take(mustNew(ffi.ToggleButtonNew(), "gtk_toggle_button_new")))
}

func NewToggleButtonWithLabel(label string) *ToggleButton {
	var p unsafe.Pointer
	glib.WithCString(label, func(l unsafe.Pointer) { p = ffi.ToggleButtonNewWithLabel(l) })
	return wrapToggleButton(glib.Take(mustNew(p, "gtk_toggle_button_new_with_label")))
}

// SetActive changes the state. A change emits clicked, whose class handler
// emits toggled, so user handlers see toggled first.
func (b *ToggleButton) SetActive(v bool) { ffi.ToggleButtonSetActive(b.Native(), v) }

func (b *ToggleButton) Active() bool { return ffi.ToggleButtonGetActive(b.Native()) }

// Toggled emits toggled without changing the state.
func (b *ToggleButton) Toggled() { ffi.ToggleButtonToggled(b.Native()) }

type ICheckButton interface {
	IToggleButton
	ToCheckButton() *CheckButton
}

// CheckButton wraps GtkCheckButton.
type CheckButton struct {
	ToggleButton
}

func wrapCheckButton(o *glib.Object) *CheckButton { return &CheckButton{*wrapToggleButton(o)} }

func (b *CheckButton) ToCheckButton() *CheckButton { return b }

func NewCheckButton() *CheckButton {
	return wrapCheckButton(glib.Take(mustNew(ffi.CheckButtonNew(), "gtk_check_button_new")))
}

func NewCheckButtonWithLabel(label string) *CheckButton {
	var p unsafe.Pointer
	glib.WithCString(label, func(l unsafe.Pointer) { p = ffi.CheckButtonNewWithLabel(l) })
	return wrapCheckButton(glib.Take(mustNew(p, "gtk_check_button_new_with_label")))
}
