package gtk

import (
	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/pkg/glib"
)

func init() {
	glib.RegisterClass("GtkWidget", ffi.WidgetGetType, wrapWidget)
	glib.RegisterClass("GtkContainer", ffi.ContainerGetType, wrapContainer)
	glib.RegisterClass("GtkBin", ffi.BinGetType, wrapBin)
	glib.RegisterClass("GtkWindow", ffi.WindowGetType, wrapWindow)
	glib.RegisterClass("GtkDialog", ffi.DialogGetType, wrapDialog)
	glib.RegisterClass("GtkMessageDialog", ffi.MessageDialogGetType, wrapMessageDialog)
	glib.RegisterClass("GtkFileChooserDialog", ffi.FileChooserDialogGetType, wrapFileChooserDialog)
	glib.RegisterClass("GtkBox", ffi.BoxGetType, wrapBox)
	glib.RegisterClass("GtkButton", ffi.ButtonGetType, wrapButton)
	glib.RegisterClass("GtkToggleButton", ffi.ToggleButtonGetType, wrapToggleButton)
	glib.RegisterClass("GtkCheckButton", ffi.CheckButtonGetType, wrapCheckButton)
	glib.RegisterClass("GtkMisc", ffi.MiscGetType, wrapMisc)
	glib.RegisterClass("GtkLabel", ffi.LabelGetType, wrapLabel)

	// Interfaces: reachable through TryAs only, never chosen by Wrap.
	glib.RegisterClass("GtkOrientable", ffi.OrientableGetType, func(o *glib.Object) *Orientable { return &Orientable{o} })
	glib.RegisterClass("GtkFileChooser", ffi.FileChooserGetType, func(o *glib.Object) *FileChooser { return &FileChooser{o} })
}
