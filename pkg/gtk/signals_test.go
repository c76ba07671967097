//go:build !gtk_cgo

package gtk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gtkbridge/pkg/gdk"
	"github.com/bnema/gtkbridge/pkg/glib"
	"github.com/bnema/gtkbridge/pkg/gtk"
)

func TestKeyPressEvent_HandlerSeesEventAndStops(t *testing.T) {
	noLeaks(t)

	// Arrange
	win := newWindow(t)
	var key uint
	var kept *gdk.Event
	win.MustConnect(gtk.KeyPressEvent(func(w *gtk.Window, ev *gdk.Event) bool {
		key, _ = ev.KeyVal()
		kept = ev.Copy()
		return key == gdk.KeyEscape
	}))
	after := false
	_, err := win.ConnectAfter(gtk.KeyPressEvent(func(*gtk.Window, *gdk.Event) bool {
		after = true
		return false
	}))
	require.NoError(t, err)
	ev := gdk.NewEvent(gdk.EventKeyPress)
	defer ev.Free()
	ev.SetKeyVal(gdk.KeyEscape)

	// Act
	handled := win.Event(ev)

	// Assert
	assert.True(t, handled)
	assert.False(t, after)
	assert.Equal(t, gdk.KeyEscape, key)
	require.NotNil(t, kept)
	assert.Equal(t, gdk.EventKeyPress, kept.Type())
	kept.Free()
}

func TestButtonPressAndRelease(t *testing.T) {
	noLeaks(t)
	b := gtk.NewButton()
	defer b.Unref()
	var pressed, released uint
	b.MustConnect(gtk.ButtonPressEvent(func(_ *gtk.Button, ev *gdk.Event) bool {
		pressed, _ = ev.Button()
		return false
	}))
	b.MustConnect(gtk.ButtonReleaseEvent(func(_ *gtk.Button, ev *gdk.Event) bool {
		released, _ = ev.Button()
		return true
	}))

	for _, typ := range []gdk.EventType{gdk.EventButtonPress, gdk.EventButtonRelease} {
		ev := gdk.NewEvent(typ)
		ev.SetButton(3)
		b.Event(ev)
		ev.Free()
	}

	assert.Equal(t, uint(3), pressed)
	assert.Equal(t, uint(3), released)
}

func TestParentSetAndChildSignals(t *testing.T) {
	noLeaks(t)

	// Arrange
	box := gtk.NewBox(gtk.OrientationVertical, 0)
	defer box.Unref()
	label := gtk.NewLabel("child")
	defer label.Unref()
	var log []string
	label.MustConnect(gtk.ParentSet(func(l *gtk.Label, previous gtk.IWidget) {
		if previous == nil {
			log = append(log, "parented")
			return
		}
		assert.True(t, glib.BaseObject(previous).Equal(box))
		log = append(log, "unparented")
	}))
	box.MustConnect(gtk.ChildAdded(func(_ *gtk.Box, child gtk.IWidget) {
		_, isLabel := child.(*gtk.Label)
		assert.True(t, isLabel)
		log = append(log, "add")
	}))
	box.MustConnect(gtk.ChildRemoved(func(*gtk.Box, gtk.IWidget) { log = append(log, "remove") }))

	// Act
	box.Add(label)
	box.Remove(label)

	// Assert
	assert.Equal(t, []string{"parented", "add", "unparented", "remove"}, log)
}

func TestGrabNotify(t *testing.T) {
	noLeaks(t)

	// Arrange
	win := newWindow(t)
	other := newWindow(t)
	button := gtk.NewButton()
	defer button.Unref()
	win.Add(button)
	var states []bool
	button.MustConnect(gtk.GrabNotify(func(_ *gtk.Button, unshadowed bool) { states = append(states, unshadowed) }))

	// Act
	other.GrabAdd()
	other.GrabRemove()

	// Assert
	assert.Equal(t, []bool{false, true}, states)
}

func TestCanActivateAccel(t *testing.T) {
	noLeaks(t)
	b := gtk.NewButton()
	defer b.Unref()

	assert.False(t, b.CanActivateAccel(1), "hidden widgets cannot")
	b.Show()
	assert.True(t, b.CanActivateAccel(1))

	var seen uint
	b.MustConnect(gtk.CanActivateAccel(func(_ *gtk.Button, id uint) bool {
		seen = id
		return id == 42
	}))
	b.Hide()
	assert.True(t, b.CanActivateAccel(42))
	assert.Equal(t, uint(42), seen)
	assert.False(t, b.CanActivateAccel(7))
}

func TestShowHideSignals(t *testing.T) {
	noLeaks(t)
	l := gtk.NewLabel("")
	defer l.Unref()
	var events []string
	l.MustConnect(gtk.Show(func(*gtk.Label) { events = append(events, "show") }))
	l.MustConnect(gtk.Hide(func(*gtk.Label) { events = append(events, "hide") }))

	l.Show()
	l.Show()
	l.Hide()

	assert.Equal(t, []string{"show", "hide"}, events)
}

func TestHandlerReceivesBorrowedWidget(t *testing.T) {
	noLeaks(t)
	b := gtk.NewButton()
	defer b.Unref()
	var seen, kept *glib.Object
	b.MustConnect(gtk.Clicked(func(btn *gtk.Button) {
		seen = btn.ToObject()
		kept = btn.Ref()
	}))

	b.Clicked()

	assert.Panics(t, func() { seen.Native() })
	assert.True(t, kept.Equal(b))
	kept.Unref()
	assert.Equal(t, uint(1), b.RefCount())
}

func TestDescriptorOnWrongClassFails(t *testing.T) {
	noLeaks(t)
	l := gtk.NewLabel("")
	defer l.Unref()

	_, err := l.Connect(gtk.Response(func(*gtk.Dialog, gtk.ResponseType) {}))

	assert.ErrorIs(t, err, glib.ErrUnknownSignal)
}
