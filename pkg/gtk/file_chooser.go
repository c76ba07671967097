package gtk

import (
	"errors"
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/pkg/glib"
)

// FileChooserErrorDomain is the GError domain of file chooser failures.
const FileChooserErrorDomain = "gtk-file-chooser-error-quark"

// File chooser error codes.
const (
	FileChooserErrorNonexistent = iota
	FileChooserErrorBadFilename
	FileChooserErrorAlreadyExists
	FileChooserErrorIncompleteHostname
)

// Templates for errors.Is against errors returned by FileChooser methods.
var (
	ErrShortcutNotFound = glib.NewError(FileChooserErrorDomain, FileChooserErrorNonexistent, "shortcut does not exist")
	ErrShortcutExists   = glib.NewError(FileChooserErrorDomain, FileChooserErrorAlreadyExists, "shortcut already exists")
)

// ErrShortcutFailed is returned when GTK reports a failed shortcut change without a GError.
var ErrShortcutFailed = errors.New("gtk: shortcut folder change failed")

type IFileChooser interface {
	glib.IObject
	ToFileChooser() *FileChooser
}

// FileChooser wraps the GtkFileChooser interface.
type FileChooser struct {
	*glib.Object
}

func (c *FileChooser) ToFileChooser() *FileChooser { return c }

// AddShortcutFolder adds folder to the shortcut list. Adding a folder twice fails
// with a *glib.Error in the gtk-file-chooser-error-quark domain.
func (c *FileChooser) AddShortcutFolder(folder string) error {
	var gerr unsafe.Pointer
	ok := false
	glib.WithCString(folder, func(f unsafe.Pointer) { ok = ffi.FileChooserAddShortcutFolder(c.Native(), f, &gerr) })
	return shortcutResult(ok, gerr)
}

func shortcutResult(ok bool, gerr unsafe.Pointer) error {
	switch {
	case ok:
		return nil
	case gerr == nil:
		return ErrShortcutFailed
	}
	return glib.TakeError(gerr)
}

func (c *FileChooser) RemoveShortcutFolder(folder string) error {
	var gerr unsafe.Pointer
	ok := false
	glib.WithCString(folder, func(f unsafe.Pointer) { ok = ffi.FileChooserRemoveShortcutFolder(c.Native(), f, &gerr) })
	return shortcutResult(ok, gerr)
}

// ShortcutFolders returns the application-added shortcuts in insertion order.
func (c *FileChooser) ShortcutFolders() []string {
	return glib.WrapSList(ffi.FileChooserListShortcutFolders(c.Native()), glib.TransferFull).ConsumeStrings()
}

func (c *FileChooser) SetCurrentFolder(folder string) bool {
	ok := false
	glib.WithCString(folder, func(f unsafe.Pointer) { ok = ffi.FileChooserSetCurrentFolder(c.Native(), f) })
	return ok
}

func (c *FileChooser) CurrentFolder() string {
	return glib.TakeString(ffi.FileChooserGetCurrentFolder(c.Native()))
}

// SetFilename selects filename and moves to its folder.
func (c *FileChooser) SetFilename(filename string) bool {
	ok := false
	glib.WithCString(filename, func(f unsafe.Pointer) { ok = ffi.FileChooserSetFilename(c.Native(), f) })
	return ok
}

// Filename returns the first selected file, "" for none.
func (c *FileChooser) Filename() string {
	return glib.TakeString(ffi.FileChooserGetFilename(c.Native()))
}

func (c *FileChooser) Filenames() []string {
	return glib.WrapSList(ffi.FileChooserGetFilenames(c.Native()), glib.TransferFull).ConsumeStrings()
}

func (c *FileChooser) UnselectAll() { ffi.FileChooserUnselectAll(c.Native()) }

func (c *FileChooser) SetSelectMultiple(v bool) { ffi.FileChooserSetSelectMultiple(c.Native(), v) }

func (c *FileChooser) SelectMultiple() bool { return ffi.FileChooserGetSelectMultiple(c.Native()) }

func (c *FileChooser) Action() FileChooserAction {
	return FileChooserAction(ffi.FileChooserGetAction(c.Native()))
}

type IFileChooserDialog interface {
	IDialog
	IFileChooser
	ToFileChooserDialog() *FileChooserDialog
}

// FileChooserDialog wraps GtkFileChooserDialog.
type FileChooserDialog struct {
	Dialog
	FileChooser
}

func wrapFileChooserDialog(o *glib.Object) *FileChooserDialog {
	return &FileChooserDialog{*wrapDialog(o), FileChooser{o}}
}

func (d *FileChooserDialog) ToFileChooserDialog() *FileChooserDialog { return d }

// NewFileChooserDialog creates a chooser with the given buttons in order. parent may
// be nil.
func NewFileChooserDialog(title string, parent IWindow, action FileChooserAction, buttons ...DialogButton) *FileChooserDialog {
	var p unsafe.Pointer
	glib.WithOptCString(title, func(t unsafe.Pointer) {
		p = ffi.FileChooserDialogNew(t, optNative(parent), int32(action))
	})
	d := wrapFileChooserDialog(glib.Take(mustNew(p, "gtk_file_chooser_dialog_new")))
	for _, b := range buttons {
		d.AddButton(b.Text, b.Response).Unref()
	}
	return d
}
