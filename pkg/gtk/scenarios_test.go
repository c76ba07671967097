//go:build !gtk_cgo

package gtk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/pkg/gdk"
	"github.com/bnema/gtkbridge/pkg/glib"
	"github.com/bnema/gtkbridge/pkg/gtk"
)

func TestScenario_WindowButtonDeleteEventQuits(t *testing.T) {
	noLeaks(t)

	// Arrange
	win := newWindow(t)
	win.SetTitle("First GTK+ Program")
	win.SetBorderWidth(10)
	win.SetDefaultSize(350, 70)
	button := gtk.NewButtonWithLabel("Click me!")
	defer button.Unref()
	win.Add(button)

	deletes := 0
	_, err := win.Connect(gtk.DeleteEvent(func(w *gtk.Window, ev *gdk.Event) bool {
		deletes++
		assert.Equal(t, gdk.EventDelete, ev.Type())
		gtk.MainQuit()
		return true
	}))
	require.NoError(t, err)
	win.ShowAll()

	// Act
	win.Close()
	gtk.Main()

	// Assert
	assert.Equal(t, 1, deletes)
	assert.Zero(t, gtk.MainLevel())
	assert.True(t, win.Visible(), "a handled delete-event keeps the window")
	assert.True(t, button.Visible())
	assert.Equal(t, "First GTK+ Program", win.Title())
	assert.Equal(t, uint(10), win.BorderWidth())
	width, height := win.DefaultSize()
	assert.Equal(t, 350, width)
	assert.Equal(t, 70, height)
	assert.Equal(t, "Click me!", button.Label())
}

func TestScenario_CheckboxGatedQuit(t *testing.T) {
	noLeaks(t)

	// Arrange
	win := newWindow(t)
	box := gtk.NewBox(gtk.OrientationVertical, 2)
	defer box.Unref()
	check := gtk.NewCheckButtonWithLabel("Exit")
	defer check.Unref()
	button := gtk.NewButtonWithLabel("Click me!")
	defer button.Unref()
	box.PackStart(check, false, false, 0)
	box.PackStart(button, false, false, 0)
	win.Add(box)

	quits := 0
	button.MustConnect(gtk.Clicked(func(*gtk.Button) {
		if check.Active() {
			quits++
			gtk.MainQuit()
		}
	}))
	win.ShowAll()

	steps := []func(){
		button.Clicked,
		button.Clicked,
		func() { check.SetActive(true) },
		button.Clicked,
	}
	ran := 0
	glib.IdleAdd(func() bool {
		steps[ran]()
		ran++
		return ran < len(steps)
	})

	// Act
	gtk.Main()

	// Assert
	assert.Equal(t, len(steps), ran)
	assert.Equal(t, 1, quits)
	assert.Equal(t, gtk.OrientationVertical, box.Orientation())
}

func TestScenario_ModalMessageDialog(t *testing.T) {
	tests := []struct {
		name  string
		click gtk.ResponseType
	}{
		{"ok", gtk.ResponseOk},
		{"cancel", gtk.ResponseCancel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noLeaks(t)

			// Arrange
			win := newWindow(t)
			dialog := gtk.NewMessageDialog(win, gtk.DialogModal|gtk.DialogDestroyWithParent,
				gtk.MessageInfo, gtk.ButtonsOkCancel, "This is a trap !")
			defer dialog.Unref()
			defer dialog.Destroy()

			glib.IdleAdd(func() bool {
				w := dialog.WidgetForResponse(tt.click)
				defer w.ToWidget().Unref()
				glib.MustAs[*gtk.Button](w).Clicked()
				return false
			})

			// Act
			got := dialog.Run()

			// Assert
			assert.Equal(t, tt.click, got)
			assert.True(t, dialog.Modal())
			assert.True(t, dialog.DestroyWithParent())
			parent := dialog.TransientFor()
			require.NotNil(t, parent)
			assert.True(t, parent.ToWindow().Equal(win))
			parent.ToWindow().Unref()
		})
	}
}

func TestScenario_DoubleConnectRunsInOrder(t *testing.T) {
	noLeaks(t)
	button := gtk.NewButton()
	defer button.Unref()
	var order []string

	button.MustConnect(gtk.Clicked(func(*gtk.Button) { order = append(order, "first") }))
	button.MustConnect(gtk.Clicked(func(*gtk.Button) { order = append(order, "second") }))
	button.Clicked()

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestScenario_DowncastFailureKeepsRefCount(t *testing.T) {
	noLeaks(t)
	button := gtk.NewButton()
	defer button.Unref()
	refs := button.RefCount()

	win, ok := glib.TryAs[*gtk.Window](button)

	assert.False(t, ok)
	assert.Nil(t, win)
	assert.Equal(t, refs, button.RefCount())
}

func TestScenario_FloatingLabelSinkAndFinalize(t *testing.T) {
	// Arrange
	before := ffi.HeadlessStats().Objects
	label := gtk.NewLabel("floating")
	finalized := false
	label.WeakRef(func() { finalized = true })

	// Assert
	assert.False(t, label.IsFloating())
	assert.Equal(t, uint(1), label.RefCount())

	// Act
	label.Unref()

	// Assert
	assert.True(t, finalized)
	assert.Equal(t, before, ffi.HeadlessStats().Objects)
}
