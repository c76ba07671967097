package gtk

import (
	"fmt"

	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/pkg/glib"
)

type IContainer interface {
	IWidget
	ToContainer() *Container
}

// Container wraps GtkContainer.
type Container struct {
	Widget
}

func wrapContainer(o *glib.Object) *Container { return &Container{*wrapWidget(o)} }

func (c *Container) ToContainer() *Container { return c }

// Add parents child to the container. A floating child is sunk by the container. A
// child that already has a parent is a programmer error and panics.
func (c *Container) Add(child IWidget) {
	p := child.ToWidget().Native()
	if parent := ffi.WidgetGetParent(p); parent != nil {
		panic(fmt.Sprintf("gtk: Container.Add: %s already has a parent", child.ToWidget().Object))
	}
	ffi.ContainerAdd(c.Native(), p)
}

// Remove unparents child. The container's reference on it is dropped, so keep an
// envelope if the child is to be reused.
func (c *Container) Remove(child IWidget) {
	ffi.ContainerRemove(c.Native(), child.ToWidget().Native())
}

func (c *Container) SetBorderWidth(w uint) { ffi.ContainerSetBorderWidth(c.Native(), uint32(w)) }

func (c *Container) BorderWidth() uint { return uint(ffi.ContainerGetBorderWidth(c.Native())) }

// Children returns the direct children in order. Each envelope holds its own reference.
func (c *Container) Children() []IWidget {
	objs := glib.WrapList(ffi.ContainerGetChildren(c.Native()), glib.TransferContainer).ConsumeObjects()
	out := make([]IWidget, 0, len(objs))
	for _, o := range objs {
		out = append(out, glib.MustAs[IWidget](o))
	}
	return out
}

type IBin interface {
	IContainer
	ToBin() *Bin
}

// Bin wraps GtkBin, a container with at most one child.
type Bin struct {
	Container
}

func wrapBin(o *glib.Object) *Bin { return &Bin{*wrapContainer(o)} }

func (b *Bin) ToBin() *Bin { return b }

// Child returns the only child, nil when empty.
func (b *Bin) Child() IWidget { return castWidget(ffi.BinGetChild(b.Native())) }
