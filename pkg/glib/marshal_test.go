//go:build !gtk_cgo

package glib_test

import (
	"bytes"
	"errors"
	"testing"
	"unsafe"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/pkg/glib"
)

func TestList_ConsumeObjectsTransferContainer(t *testing.T) {
	// Arrange
	before := ffi.HeadlessStats()
	box := glib.Take(ffi.BoxNew(1, 0))
	defer box.Unref()
	for i := 0; i < 3; i++ {
		ffi.BoxPackStart(box.Native(), ffi.LabelNew(nil), false, false, 0)
	}
	l := glib.WrapList(ffi.ContainerGetChildren(box.Native()), glib.TransferContainer)
	require.Equal(t, 3, l.Len())

	// Act
	children := l.ConsumeObjects()

	// Assert
	require.Len(t, children, 3)
	for _, c := range children {
		assert.Equal(t, uint(2), c.RefCount(), "box reference plus the envelope")
		c.Unref()
	}
	assert.Equal(t, before.Lists, ffi.HeadlessStats().Lists)
	assert.Panics(t, func() { l.Len() })
}

func TestList_TransferNoneIsNotFreed(t *testing.T) {
	p := ffi.ListAppend(nil, ffi.StrDup("a"))
	defer func() {
		ffi.Free(ffi.ListData(p))
		ffi.ListFree(p)
	}()

	l := glib.WrapList(p, glib.TransferNone)
	assert.Equal(t, []string{"a"}, l.Strings())
	l.Free()

	assert.Equal(t, uint32(1), ffi.ListLength(p))
}

func TestSList_ConsumeStringsTransferFull(t *testing.T) {
	// Arrange
	before := ffi.HeadlessStats()
	var p unsafe.Pointer
	for _, s := range []string{"/home", "/tmp", "/srv"} {
		p = ffi.SListAppend(p, ffi.StrDup(s))
	}

	// Act
	out := glib.WrapSList(p, glib.TransferFull).ConsumeStrings()

	// Assert
	assert.Equal(t, []string{"/home", "/tmp", "/srv"}, out)
	after := ffi.HeadlessStats()
	assert.Equal(t, before.Lists, after.Lists)
	assert.Equal(t, before.Strings, after.Strings)
}

func TestSList_EmptyList(t *testing.T) {
	l := glib.WrapSList(nil, glib.TransferFull)
	assert.Zero(t, l.Len())
	assert.Empty(t, l.ConsumeStrings())
}

func TestTakeError_CopiesAndFrees(t *testing.T) {
	// Arrange
	before := ffi.HeadlessStats()
	chooser := glib.Take(ffi.FileChooserDialogNew(nil, nil, 0))
	defer ffi.WidgetDestroy(chooser.Native())
	defer chooser.Unref()
	var gerr unsafe.Pointer
	glib.WithCString("/nowhere", func(p unsafe.Pointer) {
		ffi.FileChooserRemoveShortcutFolder(chooser.Native(), p, &gerr)
	})
	require.NotNil(t, gerr)

	// Act
	err := glib.TakeError(gerr)

	// Assert
	assert.Equal(t, "gtk-file-chooser-error-quark", err.DomainName())
	assert.Equal(t, 0, err.Code)
	assert.Equal(t, "Shortcut /nowhere does not exist", err.Error())
	assert.Equal(t, before.Errors, ffi.HeadlessStats().Errors)

	template := glib.NewError("gtk-file-chooser-error-quark", 0, "any message")
	assert.True(t, errors.Is(err, template))
	assert.False(t, errors.Is(err, glib.NewError("gtk-file-chooser-error-quark", 2, "")))

	var target *glib.Error
	wrapped := errors.Join(errors.New("context"), err)
	require.True(t, errors.As(wrapped, &target))
	assert.True(t, target.Matches(glib.QuarkFromString("gtk-file-chooser-error-quark"), 0))
}

func TestError_NativeRoundTrip(t *testing.T) {
	e := glib.NewError("gtkbridge-test", 7, "code %d", 7)

	back := glib.TakeError(e.Native())

	assert.Equal(t, e, back)
	assert.Nil(t, glib.TakeError(nil))
}

func TestInstallLogHandler_RoutesToZerolog(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	glib.InstallLogHandler(zerolog.New(&buf))

	// Act
	glib.SourceRemove(987654)
	glib.Log("gtkbridge", glib.LogLevelWarning, "custom warning")

	// Assert
	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"glib_domain":"GLib"`)
	assert.Contains(t, out, "Source ID 987654 was not found")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "custom warning")
}
