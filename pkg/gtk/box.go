package gtk

import (
	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/pkg/glib"
)

// IOrientable is implemented by widgets that can be laid out horizontally or
// vertically.
type IOrientable interface {
	glib.IObject
	ToOrientable() *Orientable
}

// Orientable wraps the GtkOrientable interface.
type Orientable struct {
	*glib.Object
}

func (o *Orientable) ToOrientable() *Orientable { return o }

func (o *Orientable) SetOrientation(v Orientation) {
	ffi.OrientableSetOrientation(o.Native(), int32(v))
}

func (o *Orientable) Orientation() Orientation {
	return Orientation(ffi.OrientableGetOrientation(o.Native()))
}

type IBox interface {
	IContainer
	IOrientable
	ToBox() *Box
}

// Box wraps GtkBox.
type Box struct {
	Container
	Orientable
}

func wrapBox(o *glib.Object) *Box { return &Box{*wrapContainer(o), Orientable{o}} }

func (b *Box) ToBox() *Box { return b }

func NewBox(orientation Orientation, spacing int) *Box {
	return wrapBox(glib.Take(mustNew(ffi.BoxNew(int32(orientation), int32(spacing)), "gtk_box_new")))
}

// PackStart adds child after the children already packed at the start.
func (b *Box) PackStart(child IWidget, expand, fill bool, padding uint) {
	ffi.BoxPackStart(b.Native(), child.ToWidget().Native(), expand, fill, uint32(padding))
}

// PackEnd adds child before the children already packed at the end.
func (b *Box) PackEnd(child IWidget, expand, fill bool, padding uint) {
	ffi.BoxPackEnd(b.Native(), child.ToWidget().Native(), expand, fill, uint32(padding))
}

func (b *Box) SetSpacing(s int) { ffi.BoxSetSpacing(b.Native(), int32(s)) }

func (b *Box) Spacing() int { return int(ffi.BoxGetSpacing(b.Native())) }

func (b *Box) SetHomogeneous(v bool) { ffi.BoxSetHomogeneous(b.Native(), v) }

func (b *Box) Homogeneous() bool { return ffi.BoxGetHomogeneous(b.Native()) }
