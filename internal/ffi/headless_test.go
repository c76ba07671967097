//go:build !gtk_cgo

package ffi_test

import (
	"math"
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gtkbridge/internal/ffi"
)

// recorder is a Callbacks implementation backed by plain closures.
type recorder struct {
	next      uintptr
	signals   map[uintptr]func(unsafe.Pointer, ffi.Args) bool
	sources   map[uintptr]func() bool
	destroyed []uintptr
	weak      []uintptr
	logs      []string
}

func (r *recorder) onSignal(fn func(unsafe.Pointer, ffi.Args) bool) uintptr {
	r.next++
	r.signals[r.next] = fn
	return r.next
}

func (r *recorder) onSource(fn func() bool) uintptr {
	r.next++
	r.sources[r.next] = fn
	return r.next
}

func (r *recorder) Signal(data uintptr, inst unsafe.Pointer, a ffi.Args) bool {
	return r.signals[data](inst, a)
}

func (r *recorder) Source(data uintptr) bool { return r.sources[data]() }

func (r *recorder) Destroy(data uintptr) {
	delete(r.signals, data)
	delete(r.sources, data)
	r.destroyed = append(r.destroyed, data)
}

func (r *recorder) Weak(data uintptr) { r.weak = append(r.weak, data) }

func (r *recorder) Log(domain string, _ ffi.LogLevel, message string) {
	r.logs = append(r.logs, domain+": "+message)
}

var rec = &recorder{
	signals: make(map[uintptr]func(unsafe.Pointer, ffi.Args) bool),
	sources: make(map[uintptr]func() bool),
}

func TestMain(m *testing.M) {
	ffi.SetCallbacks(rec)
	ffi.LogSetDefaultHandler()
	if !ffi.InitCheck() {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func connect(t *testing.T, inst unsafe.Pointer, name string, sig ffi.Signature, after bool, fn func(unsafe.Pointer, ffi.Args) bool) (uint64, uintptr) {
	t.Helper()
	cname := ffi.StrDup(name)
	defer ffi.Free(cname)
	data := rec.onSignal(fn)
	id := ffi.SignalConnect(inst, cname, sig, data, after)
	require.NotZero(t, id, "connect %s", name)
	return id, data
}

func TestFloatingWidget_RefSinkThenUnrefFinalizes(t *testing.T) {
	// Arrange
	before := ffi.HeadlessStats()
	p := ffi.LabelNew(nil)
	require.True(t, ffi.ObjectIsFloating(p))

	// Act
	ffi.ObjectRefSink(p)
	ffi.ObjectWeakRef(p, 4242)

	// Assert
	assert.False(t, ffi.ObjectIsFloating(p))
	assert.Equal(t, uint32(1), ffi.ObjectRefCount(p))

	ffi.ObjectUnref(p)
	assert.Contains(t, rec.weak, uintptr(4242))
	assert.Equal(t, before.Objects, ffi.HeadlessStats().Objects)
	assert.Panics(t, func() { ffi.ObjectRefCount(p) })
}

func TestObjectNew_AbstractTypeLogsCritical(t *testing.T) {
	// Arrange
	logs := len(rec.logs)

	// Act
	p := ffi.ObjectNew(ffi.WidgetGetType())

	// Assert
	assert.Nil(t, p)
	require.Len(t, rec.logs, logs+1)
	assert.Contains(t, rec.logs[logs], "GtkWidget")
}

func TestTypeLattice(t *testing.T) {
	assert.True(t, ffi.TypeIsA(ffi.CheckButtonGetType(), ffi.ButtonGetType()))
	assert.True(t, ffi.TypeIsA(ffi.FileChooserDialogGetType(), ffi.FileChooserGetType()))
	assert.True(t, ffi.TypeIsA(ffi.BoxGetType(), ffi.OrientableGetType()))
	assert.False(t, ffi.TypeIsA(ffi.LabelGetType(), ffi.ContainerGetType()))
	assert.Equal(t, ffi.ToggleButtonGetType(), ffi.TypeParent(ffi.CheckButtonGetType()))
	assert.Equal(t, "GtkMessageDialog", ffi.GoString(ffi.TypeName(ffi.MessageDialogGetType())))
}

func TestSignal_ClassClosureThenHandlersThenAfter(t *testing.T) {
	// Arrange
	p := ffi.ObjectRefSink(ffi.ToggleButtonNew())
	defer ffi.ObjectUnref(p)
	var order []string
	_, _ = connect(t, p, "clicked", ffi.SigVoid, true, func(unsafe.Pointer, ffi.Args) bool {
		order = append(order, "after")
		return false
	})
	_, _ = connect(t, p, "clicked", ffi.SigVoid, false, func(inst unsafe.Pointer, _ ffi.Args) bool {
		order = append(order, "handler")
		// The run-first class closure already flipped the state.
		assert.True(t, ffi.ToggleButtonGetActive(inst))
		return false
	})

	// Act
	ffi.ButtonClicked(p)

	// Assert
	assert.Equal(t, []string{"handler", "after"}, order)
}

func TestSignal_DisconnectDuringEmissionDefersDestroyNotify(t *testing.T) {
	// Arrange
	p := ffi.ObjectRefSink(ffi.ButtonNew())
	defer ffi.ObjectUnref(p)
	var id uint64
	var data uintptr
	var notifiedInside bool
	id, data = connect(t, p, "clicked", ffi.SigVoid, false, func(inst unsafe.Pointer, _ ffi.Args) bool {
		ffi.SignalHandlerDisconnect(inst, id)
		notifiedInside = contains(rec.destroyed, data)
		return false
	})

	// Act
	ffi.ButtonClicked(p)

	// Assert
	assert.False(t, notifiedInside)
	assert.Contains(t, rec.destroyed, data)
	assert.False(t, ffi.SignalHandlerIsConnected(p, id))
}

func TestSignal_BlockedHandlerIsSkipped(t *testing.T) {
	// Arrange
	p := ffi.ObjectRefSink(ffi.ButtonNew())
	defer ffi.ObjectUnref(p)
	calls := 0
	id, _ := connect(t, p, "clicked", ffi.SigVoid, false, func(unsafe.Pointer, ffi.Args) bool {
		calls++
		return false
	})

	// Act
	ffi.SignalHandlerBlock(p, id)
	ffi.ButtonClicked(p)
	ffi.SignalHandlerUnblock(p, id)
	ffi.ButtonClicked(p)

	// Assert
	assert.Equal(t, 1, calls)
}

func TestSignal_BooleanSignalStopsAtFirstTrue(t *testing.T) {
	// Arrange
	w := ffi.WindowNew(0)
	defer ffi.WidgetDestroy(w)
	var second bool
	connect(t, w, "key-press-event", ffi.SigEventBool, false, func(unsafe.Pointer, ffi.Args) bool { return true })
	connect(t, w, "key-press-event", ffi.SigEventBool, false, func(unsafe.Pointer, ffi.Args) bool {
		second = true
		return false
	})
	ev := ffi.GdkEventNew(8)
	defer ffi.GdkEventFree(ev)
	ffi.GdkEventSetKeyval(ev, 0xff1b)

	// Act
	handled := ffi.WidgetEvent(w, ev)

	// Assert
	assert.True(t, handled)
	assert.False(t, second)
}

func TestSignal_WrongTrampolinePanics(t *testing.T) {
	p := ffi.ObjectRefSink(ffi.ButtonNew())
	defer ffi.ObjectUnref(p)
	name := ffi.StrDup("clicked")
	defer ffi.Free(name)

	assert.Panics(t, func() { ffi.SignalConnect(p, name, ffi.SigIntVoid, 1, false) })
}

func TestSignal_UnknownNameReturnsZero(t *testing.T) {
	p := ffi.ObjectRefSink(ffi.LabelNew(nil))
	defer ffi.ObjectUnref(p)
	name := ffi.StrDup("clicked")
	defer ffi.Free(name)

	assert.Zero(t, ffi.SignalConnect(p, name, ffi.SigVoid, 1, false))
	assert.Zero(t, ffi.SignalLookup(name, ffi.LabelGetType()))
	assert.NotZero(t, ffi.SignalLookup(name, ffi.CheckButtonGetType()))
}

func TestIdleSource_RunsUntilFalseThenDestroys(t *testing.T) {
	// Arrange
	runs := 0
	data := rec.onSource(func() bool {
		runs++
		return runs < 3
	})
	ffi.IdleAdd(data)

	// Act
	for ffi.EventsPending() {
		ffi.MainIterationDo(false)
	}

	// Assert
	assert.Equal(t, 3, runs)
	assert.Contains(t, rec.destroyed, data)
}

func TestSourceRemove_FromInsideTheSource(t *testing.T) {
	// Arrange
	var id uint32
	var removed bool
	data := rec.onSource(func() bool {
		removed = ffi.SourceRemove(id)
		return true
	})
	id = ffi.IdleAdd(data)

	// Act
	ffi.MainIterationDo(false)

	// Assert
	assert.True(t, removed)
	assert.Contains(t, rec.destroyed, data)
	assert.False(t, ffi.EventsPending())
	assert.False(t, ffi.SourceRemove(id))
}

func TestMainLoop_QuitFromSource(t *testing.T) {
	loop := ffi.MainLoopNew()
	defer ffi.MainLoopUnref(loop)
	ffi.IdleAdd(rec.onSource(func() bool {
		assert.True(t, ffi.MainLoopIsRunning(loop))
		ffi.MainLoopQuit(loop)
		return false
	}))

	ffi.MainLoopRun(loop)

	assert.False(t, ffi.MainLoopIsRunning(loop))
}

func TestMain_NestedLevels(t *testing.T) {
	var level uint32
	ffi.IdleAdd(rec.onSource(func() bool {
		level = ffi.MainLevel()
		ffi.MainQuit()
		return false
	}))

	ffi.Main()

	assert.Equal(t, uint32(1), level)
	assert.Zero(t, ffi.MainLevel())
}

func TestWindowClose_DestroysWhenUnhandled(t *testing.T) {
	// Arrange
	w := ffi.ObjectRefSink(ffi.WindowNew(0))
	destroyed := false
	connect(t, w, "destroy", ffi.SigVoid, false, func(unsafe.Pointer, ffi.Args) bool {
		destroyed = true
		return false
	})

	// Act
	ffi.WindowClose(w)
	assert.False(t, destroyed, "close is asynchronous")
	for ffi.EventsPending() {
		ffi.MainIterationDo(false)
	}

	// Assert
	assert.True(t, destroyed)
	assert.Equal(t, uint32(1), ffi.ObjectRefCount(w))
	ffi.ObjectUnref(w)
}

func TestWindowClose_KeptWhenDeleteEventHandled(t *testing.T) {
	// Arrange
	w := ffi.WindowNew(0)
	defer ffi.WidgetDestroy(w)
	connect(t, w, "delete-event", ffi.SigEventBool, false, func(unsafe.Pointer, ffi.Args) bool { return true })

	// Act
	ffi.WindowClose(w)
	for ffi.EventsPending() {
		ffi.MainIterationDo(false)
	}

	// Assert
	l := ffi.WindowListToplevels()
	defer ffi.ListFree(l)
	var found bool
	for n := l; n != nil; n = ffi.ListNext(n) {
		found = found || ffi.ListData(n) == w
	}
	assert.True(t, found)
}

func TestDialogRun_ReturnsClickedResponse(t *testing.T) {
	// Arrange
	d := ffi.DialogNew()
	defer ffi.WidgetDestroy(d)
	text := ffi.StrDup("_OK")
	btn := ffi.DialogAddButton(d, text, -5)
	ffi.Free(text)
	ffi.IdleAdd(rec.onSource(func() bool {
		ffi.ButtonClicked(btn)
		return false
	}))

	// Act
	response := ffi.DialogRun(d)

	// Assert
	assert.Equal(t, int32(-5), response)
	assert.Equal(t, int32(-5), ffi.DialogGetResponseForWidget(d, btn))
}

func TestDialogRun_DeleteEventReportsDeleteResponse(t *testing.T) {
	d := ffi.DialogNew()
	defer ffi.WidgetDestroy(d)
	ev := ffi.GdkEventNew(0)
	defer ffi.GdkEventFree(ev)
	ffi.IdleAdd(rec.onSource(func() bool {
		ffi.WidgetEvent(d, ev)
		return false
	}))

	assert.Equal(t, int32(-4), ffi.DialogRun(d))
}

func TestMessageDialog_ButtonPresetsAndText(t *testing.T) {
	msg := ffi.StrDup("Proceed?")
	d := ffi.MessageDialogNew(nil, 0, 2, 4, msg)
	ffi.Free(msg)
	defer ffi.WidgetDestroy(d)

	assert.NotNil(t, ffi.DialogGetWidgetForResponse(d, -8))
	assert.NotNil(t, ffi.DialogGetWidgetForResponse(d, -9))
	assert.Nil(t, ffi.DialogGetWidgetForResponse(d, -5))

	area := ffi.MessageDialogGetMessageArea(d)
	children := ffi.ContainerGetChildren(area)
	defer ffi.ListFree(children)
	require.Equal(t, uint32(2), ffi.ListLength(children))
	assert.Equal(t, "Proceed?", ffi.GoString(ffi.LabelGetText(ffi.ListData(children))))
}

func TestFileChooser_DuplicateShortcutSetsError(t *testing.T) {
	// Arrange
	d := ffi.FileChooserDialogNew(nil, nil, 0)
	defer ffi.WidgetDestroy(d)
	folder := ffi.StrDup("/tmp")
	defer ffi.Free(folder)
	var gerr unsafe.Pointer

	// Act
	require.True(t, ffi.FileChooserAddShortcutFolder(d, folder, &gerr))
	ok := ffi.FileChooserAddShortcutFolder(d, folder, &gerr)

	// Assert
	assert.False(t, ok)
	require.NotNil(t, gerr)
	defer ffi.ErrorFree(gerr)
	assert.Equal(t, int32(2), ffi.ErrorCode(gerr))
	assert.Equal(t, "gtk-file-chooser-error-quark", ffi.GoString(ffi.QuarkToString(ffi.ErrorDomain(gerr))))
	assert.Equal(t, "Shortcut /tmp already exists", ffi.GoString(ffi.ErrorMessage(gerr)))
}

func TestContainer_RemoveDropsParentReference(t *testing.T) {
	box := ffi.ObjectRefSink(ffi.BoxNew(1, 0))
	defer ffi.ObjectUnref(box)
	child := ffi.ObjectRef(ffi.ObjectRefSink(ffi.LabelNew(nil)))

	ffi.ContainerAdd(box, child)
	// Already owned, so the container adds a reference rather than sinking.
	assert.Equal(t, uint32(3), ffi.ObjectRefCount(child))
	ffi.ContainerRemove(box, child)

	assert.Equal(t, uint32(2), ffi.ObjectRefCount(child))
	assert.Nil(t, ffi.WidgetGetParent(child))
	ffi.ObjectUnref(child)
	ffi.ObjectUnref(child)
}

func TestCairoMatrix_InvertRoundTripsAndRejectsSingular(t *testing.T) {
	// Arrange
	var m ffi.Matrix
	ffi.CairoMatrixInitRotate(&m, math.Pi/3)
	ffi.CairoMatrixTranslate(&m, 10, -4)
	ffi.CairoMatrixScale(&m, 2, 3)
	inv := m

	// Act
	status := ffi.CairoMatrixInvert(&inv)
	x, y := 5.0, 7.0
	ffi.CairoMatrixTransformPoint(&m, &x, &y)
	ffi.CairoMatrixTransformPoint(&inv, &x, &y)

	// Assert
	require.Equal(t, ffi.CairoStatusSuccess, status)
	assert.InDelta(t, 5.0, x, 1e-9)
	assert.InDelta(t, 7.0, y, 1e-9)

	var singular ffi.Matrix
	ffi.CairoMatrixInitScale(&singular, 0, 1)
	assert.Equal(t, ffi.CairoStatusInvalidMatrix, ffi.CairoMatrixInvert(&singular))
}

func TestStrings_FreedBufferPanicsOnRead(t *testing.T) {
	p := ffi.StrDup("gone")
	assert.Equal(t, "gone", ffi.GoString(p))
	ffi.Free(p)

	assert.Panics(t, func() { ffi.GoString(p) })
	assert.Panics(t, func() { ffi.Free(p) })
}

func TestCheckVersion(t *testing.T) {
	assert.Nil(t, ffi.CheckVersion(3, 0, 0))
	assert.NotNil(t, ffi.CheckVersion(4, 0, 0))
}

func contains(xs []uintptr, x uintptr) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
