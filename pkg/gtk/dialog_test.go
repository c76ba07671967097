//go:build !gtk_cgo

package gtk_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gtkbridge/pkg/glib"
	"github.com/bnema/gtkbridge/pkg/gtk"
)

// newDialog returns a dialog destroyed and released when the test ends.
func newDialog(t *testing.T) *gtk.Dialog {
	t.Helper()
	d := gtk.NewDialog()
	t.Cleanup(func() {
		d.Destroy()
		d.Unref()
	})
	return d
}

func buttonLabel(t *testing.T, d *gtk.Dialog, id gtk.ResponseType) string {
	t.Helper()
	w := d.WidgetForResponse(id)
	require.NotNil(t, w, "no widget for %s", id)
	defer w.ToWidget().Unref()
	return glib.MustAs[*gtk.Button](w).Label()
}

func TestDialog_RunEndsOnDeleteAndDestroy(t *testing.T) {
	tests := []struct {
		name string
		act  func(d *gtk.Dialog)
		want gtk.ResponseType
	}{
		{"close", func(d *gtk.Dialog) { d.Close() }, gtk.ResponseDeleteEvent},
		{"destroy", func(d *gtk.Dialog) { d.Destroy() }, gtk.ResponseNone},
		{"user response", func(d *gtk.Dialog) { d.Response(gtk.ResponseUser(7)) }, gtk.ResponseType(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noLeaks(t)
			d := newDialog(t)
			glib.IdleAdd(func() bool {
				tt.act(d)
				return false
			})

			got := d.Run()

			assert.Equal(t, tt.want, got)
			assert.Zero(t, gtk.MainLevel())
		})
	}
}

func TestDialog_AddButtonsPresetOrder(t *testing.T) {
	noLeaks(t)
	d := newDialog(t)

	d.AddButtons(gtk.ButtonsYesNo)
	d.AddButtons(gtk.ButtonsClose)

	assert.Equal(t, "_No", buttonLabel(t, d, gtk.ResponseNo))
	assert.Equal(t, "_Yes", buttonLabel(t, d, gtk.ResponseYes))
	assert.Equal(t, "_Close", buttonLabel(t, d, gtk.ResponseClose))
	assert.Nil(t, d.WidgetForResponse(gtk.ResponseOk))
}

func TestDialog_ActionWidgets(t *testing.T) {
	noLeaks(t)

	// Arrange
	d := newDialog(t)
	ok := d.AddButton("_OK", gtk.ResponseOk)
	defer ok.Unref()
	custom := gtk.NewButtonWithLabel("Retry")
	defer custom.Unref()
	outside := gtk.NewLabel("")
	defer outside.Unref()

	// Act
	d.AddActionWidget(custom, gtk.ResponseUser(3))
	d.SetDefaultResponse(gtk.ResponseOk)
	d.SetResponseSensitive(gtk.ResponseUser(3), false)

	// Assert
	assert.Equal(t, uint(2), ok.RefCount(), "dialog plus envelope")
	assert.True(t, ok.HasDefault())
	assert.False(t, custom.Sensitive())
	assert.Equal(t, gtk.ResponseUser(3), d.ResponseForWidget(custom))
	assert.Equal(t, gtk.ResponseNone, d.ResponseForWidget(outside))

	var responses []gtk.ResponseType
	d.MustConnect(gtk.Response(func(_ *gtk.Dialog, r gtk.ResponseType) { responses = append(responses, r) }))
	custom.Clicked()
	ok.Clicked()
	assert.Equal(t, []gtk.ResponseType{3, gtk.ResponseOk}, responses)
}

func TestDialog_ContentArea(t *testing.T) {
	noLeaks(t)
	d := newDialog(t)
	label := gtk.NewLabel("body")
	defer label.Unref()

	area := d.ContentArea()
	defer area.Unref()
	area.PackStart(label, true, true, 0)

	assert.Equal(t, gtk.OrientationVertical, area.Orientation())
	children := area.Children()
	require.NotEmpty(t, children)
	assert.True(t, glib.BaseObject(children[len(children)-1]).Equal(label))
	for _, c := range children {
		c.ToWidget().Unref()
	}
}

func TestNewDialogWithButtons(t *testing.T) {
	noLeaks(t)
	win := newWindow(t)

	d := gtk.NewDialogWithButtons("Confirm", win, gtk.DialogModal,
		gtk.DialogButton{Text: "_Cancel", Response: gtk.ResponseCancel},
		gtk.DialogButton{Text: "_Apply", Response: gtk.ResponseApply})
	defer d.Unref()
	defer d.Destroy()

	assert.Equal(t, "Confirm", d.Title())
	assert.True(t, d.Modal())
	assert.False(t, d.DestroyWithParent())
	assert.Equal(t, "_Apply", buttonLabel(t, d, gtk.ResponseApply))
}

func TestDialog_DestroyedWithParent(t *testing.T) {
	noLeaks(t)
	win := gtk.NewWindow(gtk.WindowToplevel)
	defer win.Unref()
	d := gtk.NewMessageDialog(win, gtk.DialogDestroyWithParent, gtk.MessageWarning, gtk.ButtonsClose, "bye")
	defer d.Unref()
	destroyed := false
	d.MustConnect(gtk.Destroy(func(*gtk.MessageDialog) { destroyed = true }))

	win.Destroy()

	assert.True(t, destroyed)
	assert.Equal(t, uint(1), d.RefCount(), "only the envelope is left")
}

func TestMessageDialog_Texts(t *testing.T) {
	noLeaks(t)

	// Arrange
	d := gtk.NewMessageDialog(nil, 0, gtk.MessageQuestion, gtk.ButtonsYesNo, "100% sure?")
	defer d.Unref()
	defer d.Destroy()

	// Act
	d.FormatSecondaryText("%d files will be removed", 3)
	area := d.MessageArea()
	defer area.Unref()
	children := area.Children()
	defer func() {
		for _, c := range children {
			c.ToWidget().Unref()
		}
	}()

	// Assert
	require.Len(t, children, 2)
	primary := glib.MustAs[*gtk.Label](children[0])
	secondary := glib.MustAs[*gtk.Label](children[1])
	assert.Equal(t, "100% sure?", primary.Text())
	assert.Equal(t, "3 files will be removed", secondary.Text())
	assert.True(t, secondary.Visible())
	assert.Nil(t, d.TransientFor())
	assert.Equal(t, gtk.MessageQuestion, d.MessageType())
	assert.Equal(t, "question", d.MessageType().String())

	d.SetMarkup("<i>really</i>")
	assert.True(t, primary.UseMarkup())
	assert.Equal(t, "really", primary.Text())

	d.FormatSecondaryText("")
	assert.False(t, secondary.Visible())
	assert.Equal(t, "_No", buttonLabel(t, &d.Dialog, gtk.ResponseNo))
}

func TestFileChooserDialog_Shortcuts(t *testing.T) {
	noLeaks(t)

	// Arrange
	d := gtk.NewFileChooserDialog("Open", nil, gtk.FileChooserActionOpen,
		gtk.DialogButton{Text: "_Cancel", Response: gtk.ResponseCancel},
		gtk.DialogButton{Text: "_Open", Response: gtk.ResponseAccept})
	defer d.Unref()
	defer d.Destroy()

	// Act
	require.NoError(t, d.AddShortcutFolder("/tmp"))
	require.NoError(t, d.AddShortcutFolder("/srv"))
	dup := d.AddShortcutFolder("/tmp")
	missing := d.RemoveShortcutFolder("/nowhere")

	// Assert
	assert.Equal(t, []string{"/tmp", "/srv"}, d.ShortcutFolders())

	var gerr *glib.Error
	require.True(t, errors.As(dup, &gerr))
	assert.Equal(t, gtk.FileChooserErrorDomain, gerr.DomainName())
	assert.Equal(t, gtk.FileChooserErrorAlreadyExists, gerr.Code)
	assert.Equal(t, "Shortcut /tmp already exists", gerr.Error())
	assert.ErrorIs(t, dup, gtk.ErrShortcutExists)
	assert.ErrorIs(t, missing, gtk.ErrShortcutNotFound)
	assert.NotErrorIs(t, missing, gtk.ErrShortcutExists)

	require.NoError(t, d.RemoveShortcutFolder("/tmp"))
	assert.Equal(t, []string{"/srv"}, d.ShortcutFolders())
	assert.Equal(t, "Open", d.Title())
	assert.Equal(t, "_Open", buttonLabel(t, &d.Dialog, gtk.ResponseAccept))
}

func TestFileChooserDialog_Selection(t *testing.T) {
	noLeaks(t)

	// Arrange
	d := gtk.NewFileChooserDialog("", nil, gtk.FileChooserActionOpen)
	defer d.Unref()
	defer d.Destroy()
	var folders, selections int
	d.MustConnect(gtk.CurrentFolderChanged(func(*gtk.FileChooserDialog) { folders++ }))
	d.MustConnect(gtk.SelectionChanged(func(*gtk.FileChooserDialog) { selections++ }))

	// Act
	assert.False(t, d.SetCurrentFolder("relative/path"))
	assert.True(t, d.SetCurrentFolder("/srv"))
	assert.True(t, d.SetFilename("/srv/data/report.txt"))

	// Assert
	assert.Equal(t, 2, folders)
	assert.Equal(t, 1, selections)
	assert.Equal(t, "/srv/data", d.CurrentFolder())
	assert.Equal(t, "/srv/data/report.txt", d.Filename())
	assert.Equal(t, []string{"/srv/data/report.txt"}, d.Filenames())
	assert.Equal(t, gtk.FileChooserActionOpen, d.Action())
	assert.Equal(t, "", d.Title())

	d.SetSelectMultiple(true)
	assert.True(t, d.SelectMultiple())
	d.UnselectAll()
	assert.Equal(t, 2, selections)
	assert.Equal(t, "", d.Filename())
	assert.Empty(t, d.Filenames())
}

func TestFileChooserDialog_Casts(t *testing.T) {
	noLeaks(t)
	d := gtk.NewFileChooserDialog("Save", nil, gtk.FileChooserActionSave)
	defer d.Unref()
	defer d.Destroy()

	var dialog gtk.IDialog = d
	fc, ok := glib.TryAs[*gtk.FileChooser](dialog)
	require.True(t, ok)
	assert.Equal(t, gtk.FileChooserActionSave, fc.Action())

	again, ok := glib.TryAs[*gtk.FileChooserDialog](dialog)
	require.True(t, ok)
	assert.True(t, again.ToDialog().Equal(d.ToDialog()))

	_, ok = glib.TryAs[*gtk.MessageDialog](dialog)
	assert.False(t, ok)

	d.SetSelectMultiple(true)
	assert.False(t, d.SelectMultiple(), "save dialogs reject multiple selection")
}
