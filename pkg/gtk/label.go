package gtk

import (
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/pkg/glib"
)

// Misc wraps GtkMisc. It adds nothing the bindings expose and exists so that the
// class chain of Label is complete.
type Misc struct {
	Widget
}

func wrapMisc(o *glib.Object) *Misc { return &Misc{*wrapWidget(o)} }

type ILabel interface {
	IWidget
	ToLabel() *Label
}

// Label wraps GtkLabel.
type Label struct {
	Misc
}

func wrapLabel(o *glib.Object) *Label { return &Label{*wrapMisc(o)} }

func (l *Label) ToLabel() *Label { return l }

func NewLabel(text string) *Label {
	var p unsafe.Pointer
	glib.WithCString(text, func(s unsafe.Pointer) { p = ffi.LabelNew(s) })
	return wrapLabel(glib.Take(mustNew(p, "gtk_label_new")))
}

// SetText sets plain text and turns markup parsing off.
func (l *Label) SetText(text string) {
	glib.WithCString(text, func(s unsafe.Pointer) { ffi.LabelSetText(l.Native(), s) })
}

func (l *Label) Text() string { return glib.GoString(ffi.LabelGetText(l.Native())) }

// SetMarkup sets Pango markup.
func (l *Label) SetMarkup(markup string) {
	glib.WithCString(markup, func(s unsafe.Pointer) { ffi.LabelSetMarkup(l.Native(), s) })
}

func (l *Label) UseMarkup() bool { return ffi.LabelGetUseMarkup(l.Native()) }
