//go:build !gtk_cgo

package ffi

import (
	"strings"
	"unsafe"
)

const (
	orientationHorizontal int32 = 0
	orientationVertical   int32 = 1
)

var (
	tBuildable         = defineInterface("GtkBuildable")
	tOrientable        = defineInterface("GtkOrientable")
	tFileChooser       = defineInterface("GtkFileChooser")
	tWidget            = defineClass("GtkWidget", tInitiallyUnowned, true, tBuildable)
	tContainer         = defineClass("GtkContainer", tWidget, true)
	tBin               = defineClass("GtkBin", tContainer, true)
	tWindow            = defineClass("GtkWindow", tBin, false)
	tDialog            = defineClass("GtkDialog", tWindow, false)
	tMessageDialog     = defineClass("GtkMessageDialog", tDialog, false)
	tFileChooserDialog = defineClass("GtkFileChooserDialog", tDialog, false, tFileChooser)
	tBox               = defineClass("GtkBox", tContainer, false, tOrientable)
	tButtonBox         = defineClass("GtkButtonBox", tBox, false)
	tButton            = defineClass("GtkButton", tBin, false)
	tToggleButton      = defineClass("GtkToggleButton", tButton, false)
	tCheckButton       = defineClass("GtkCheckButton", tToggleButton, false)
	tMisc              = defineClass("GtkMisc", tWidget, true)
	tLabel             = defineClass("GtkLabel", tMisc, false)
)

func init() {
	tWidget.init = func(i *instance) {
		i.sensitive = true
		i.sizeW, i.sizeH = -1, -1
	}
	tWidget.signal("destroy", SigVoid, runCleanup, widgetRealDestroy)
	tWidget.signal("show", SigVoid, runFirst, func(i *instance, _ Args) bool {
		i.visible = true
		return false
	})
	tWidget.signal("hide", SigVoid, runFirst, func(i *instance, _ Args) bool {
		i.visible = false
		grabRemove(i)
		return false
	})
	for _, name := range []string{"delete-event", "button-press-event", "button-release-event", "key-press-event", "key-release-event"} {
		tWidget.signal(name, SigEventBool, runLast|trueHandled, func(*instance, Args) bool { return false })
	}
	tWidget.signal("grab-notify", SigBoolVoid, runFirst, nil)
	tWidget.signal("can-activate-accel", SigUintBool, runLast|trueHandled, func(i *instance, _ Args) bool {
		return isSensitive(i) && i.visible
	})
	tWidget.signal("parent-set", SigPtrVoid, runFirst, nil)

	tContainer.signal("add", SigPtrVoid, runFirst, containerRealAdd)
	tContainer.signal("remove", SigPtrVoid, runFirst, containerRealRemove)

	tWindow.init = windowInit

	tBox.init = func(i *instance) { i.orientation = orientationHorizontal }

	tButton.signal("clicked", SigVoid, runFirst, buttonRealClicked)
	tToggleButton.signal("toggled", SigVoid, runFirst, nil)

	tDialog.init = dialogInit
	tDialog.signal("response", SigIntVoid, runLast, nil)
	tMessageDialog.init = messageDialogInit

	tFileChooser.signal("current-folder-changed", SigVoid, runLast, nil)
	tFileChooser.signal("selection-changed", SigVoid, runLast, nil)
	tFileChooser.signal("file-activated", SigVoid, runLast, nil)
}

func newWidget(c *class) *instance {
	requireInit(c.name)
	return construct(c)
}

// GtkWidget.

func WidgetGetType() GType { return tWidget.gtype }

func widget(p unsafe.Pointer, fn string) *instance { return lookupA(p, tWidget, fn) }

func isSensitive(i *instance) bool {
	for w := i; w != nil; w = w.parent {
		if !w.sensitive {
			return false
		}
	}
	return true
}

// isInside reports whether w is ancestor or one of its descendants.
func isInside(w, ancestor *instance) bool {
	for k := w; k != nil; k = k.parent {
		if k == ancestor {
			return true
		}
	}
	return false
}

func toplevelOf(i *instance) *instance {
	for i.parent != nil {
		i = i.parent
	}
	return i
}

func walkTree(i *instance, fn func(*instance)) {
	fn(i)
	for _, ch := range append([]*instance(nil), i.children...) {
		walkTree(ch, fn)
	}
}

func widgetDispose(i *instance) {
	if i.destroyed {
		return
	}
	i.destroyed = true
	if i.parent != nil {
		emit(i.parent, "remove", Args{Ptr: i.ptr()})
	} else if i.visible {
		emit(i, "hide", Args{})
	}
	i.visible = false
	emit(i, "destroy", Args{})
}

func widgetRealDestroy(i *instance, _ Args) bool {
	if i.isA(tWindow) {
		windowDestroy(i)
	}
	for _, ch := range append([]*instance(nil), i.children...) {
		runDispose(ch)
	}
	return false
}

func WidgetShow(p unsafe.Pointer) {
	if i := widget(p, "gtk_widget_show"); !i.visible {
		emit(i, "show", Args{})
	}
}

func WidgetHide(p unsafe.Pointer) {
	if i := widget(p, "gtk_widget_hide"); i.visible {
		emit(i, "hide", Args{})
	}
}

func showAll(i *instance) {
	for _, ch := range append([]*instance(nil), i.children...) {
		showAll(ch)
	}
	if !i.visible {
		emit(i, "show", Args{})
	}
}

func WidgetShowAll(p unsafe.Pointer)         { showAll(widget(p, "gtk_widget_show_all")) }
func WidgetGetVisible(p unsafe.Pointer) bool { return widget(p, "gtk_widget_get_visible").visible }
func WidgetDestroy(p unsafe.Pointer)         { runDispose(widget(p, "gtk_widget_destroy")) }

func WidgetGetParent(p unsafe.Pointer) unsafe.Pointer {
	return optPtr(widget(p, "gtk_widget_get_parent").parent)
}

func WidgetGetToplevel(p unsafe.Pointer) unsafe.Pointer {
	return toplevelOf(widget(p, "gtk_widget_get_toplevel")).ptr()
}

func WidgetSetSensitive(p unsafe.Pointer, v bool) { widget(p, "gtk_widget_set_sensitive").sensitive = v }
func WidgetGetSensitive(p unsafe.Pointer) bool    { return widget(p, "gtk_widget_get_sensitive").sensitive }

func WidgetSetName(p, name unsafe.Pointer) { widget(p, "gtk_widget_set_name").name = readString(name) }

func WidgetGetName(p unsafe.Pointer) unsafe.Pointer {
	i := widget(p, "gtk_widget_get_name")
	if i.name == "" {
		return i.class.cname
	}
	return i.constString("name", i.name)
}

func WidgetSetSizeRequest(p unsafe.Pointer, w, h int32) {
	i := widget(p, "gtk_widget_set_size_request")
	i.sizeW, i.sizeH = w, h
}

func WidgetGetSizeRequest(p unsafe.Pointer) (int32, int32) {
	i := widget(p, "gtk_widget_get_size_request")
	return i.sizeW, i.sizeH
}

func eventSignal(t int32) string {
	switch t {
	case gdkDelete:
		return "delete-event"
	case gdkButtonPress, gdk2ButtonPress, gdk3ButtonPress:
		return "button-press-event"
	case gdkButtonRelease:
		return "button-release-event"
	case gdkKeyPress:
		return "key-press-event"
	case gdkKeyRelease:
		return "key-release-event"
	default:
		return ""
	}
}

func WidgetEvent(p, ev unsafe.Pointer) bool {
	i := widget(p, "gtk_widget_event")
	name := eventSignal(lookupEvent(ev).typ)
	if name == "" {
		return false
	}
	return emit(i, name, Args{Ptr: ev})
}

func WidgetHasDefault(p unsafe.Pointer) bool {
	i := widget(p, "gtk_widget_has_default")
	return toplevelOf(i).defaultWidget == i
}

func WidgetCanActivateAccel(p unsafe.Pointer, signalID uint32) bool {
	return emit(widget(p, "gtk_widget_can_activate_accel"), "can-activate-accel", Args{Uint: signalID})
}

// Grabs. A widget is shadowed by a grab unless it is the grab widget or inside it.

func topGrab() *instance {
	if len(rt.grabs) == 0 {
		return nil
	}
	return rt.grabs[len(rt.grabs)-1]
}

func shadowed(w, grab *instance) bool {
	return grab != nil && !isInside(w, grab)
}

func grabNotify(oldGrab, newGrab *instance) {
	if oldGrab == newGrab {
		return
	}
	for _, top := range append([]*instance(nil), rt.toplevels...) {
		walkTree(top, func(w *instance) {
			was, is := shadowed(w, oldGrab), shadowed(w, newGrab)
			if was != is {
				emit(w, "grab-notify", Args{Bool: !is})
			}
		})
	}
}

func GrabAdd(p unsafe.Pointer) {
	i := widget(p, "gtk_grab_add")
	for _, g := range rt.grabs {
		if g == i {
			return
		}
	}
	old := topGrab()
	rt.grabs = append(rt.grabs, i)
	grabNotify(old, i)
}

func grabRemove(i *instance) {
	for idx, g := range rt.grabs {
		if g == i {
			old := topGrab()
			rt.grabs = append(rt.grabs[:idx], rt.grabs[idx+1:]...)
			grabNotify(old, topGrab())
			return
		}
	}
}

func GrabRemove(p unsafe.Pointer) { grabRemove(widget(p, "gtk_grab_remove")) }

// GtkContainer and GtkBin.

func ContainerGetType() GType { return tContainer.gtype }
func BinGetType() GType       { return tBin.gtype }

func setParent(c, ch *instance) {
	ObjectRefSink(ch.ptr())
	ch.parent = c
	c.children = append(c.children, ch)
	emit(ch, "parent-set", Args{})
}

func containerRealAdd(c *instance, a Args) bool {
	ch := lookup(a.Ptr)
	if c.isA(tBin) && len(c.children) > 0 {
		warning("Gtk", "Attempting to add a widget with type %s to a %s, but as a GtkBin subclass a %s can only contain one widget at a time; it already contains a widget of type %s",
			ch.class.name, c.class.name, c.class.name, c.children[0].class.name)
		return false
	}
	setParent(c, ch)
	return false
}

func containerRealRemove(c *instance, a Args) bool {
	ch := lookup(a.Ptr)
	if ch.parent != c {
		return false
	}
	for idx, k := range c.children {
		if k == ch {
			c.children = append(c.children[:idx], c.children[idx+1:]...)
			break
		}
	}
	if top := toplevelOf(c); top.defaultWidget != nil && isInside(top.defaultWidget, ch) {
		top.defaultWidget = nil
	}
	ch.parent = nil
	emit(ch, "parent-set", Args{Ptr: c.ptr()})
	unref(ch)
	return false
}

func ContainerAdd(p, child unsafe.Pointer) {
	c := lookupA(p, tContainer, "gtk_container_add")
	ch := widget(child, "gtk_container_add")
	switch {
	case ch == c:
		critical("Gtk", "gtk_container_add: assertion 'widget != GTK_WIDGET (container)' failed")
	case ch.parent != nil:
		critical("Gtk", "gtk_container_add: assertion '_gtk_widget_get_parent (widget) == NULL' failed")
	case ch.isA(tWindow):
		critical("Gtk", "gtk_widget_set_parent: assertion '!_gtk_widget_is_toplevel (widget)' failed")
	default:
		emit(c, "add", Args{Ptr: child})
	}
}

func ContainerRemove(p, child unsafe.Pointer) {
	c := lookupA(p, tContainer, "gtk_container_remove")
	ch := widget(child, "gtk_container_remove")
	if ch.parent != c {
		critical("Gtk", "gtk_container_remove: assertion '_gtk_widget_get_parent (widget) == GTK_WIDGET (container)' failed")
		return
	}
	emit(c, "remove", Args{Ptr: child})
}

func ContainerSetBorderWidth(p unsafe.Pointer, w uint32) {
	lookupA(p, tContainer, "gtk_container_set_border_width").borderWidth = w
}

func ContainerGetBorderWidth(p unsafe.Pointer) uint32 {
	return lookupA(p, tContainer, "gtk_container_get_border_width").borderWidth
}

// ContainerGetChildren returns a new list of borrowed children (transfer container).
func ContainerGetChildren(p unsafe.Pointer) unsafe.Pointer {
	var l unsafe.Pointer
	for _, ch := range lookupA(p, tContainer, "gtk_container_get_children").children {
		l = appendNode(l, ch.ptr(), false)
	}
	return l
}

func BinGetChild(p unsafe.Pointer) unsafe.Pointer {
	b := lookupA(p, tBin, "gtk_bin_get_child")
	if len(b.children) == 0 {
		return nil
	}
	return b.children[0].ptr()
}

// GtkWindow.

func WindowGetType() GType { return tWindow.gtype }

func window(p unsafe.Pointer, fn string) *instance { return lookupA(p, tWindow, fn) }

// windowInit mirrors GTK sinking a new window and keeping that reference in the
// toplevel list until the window is destroyed.
func windowInit(i *instance) {
	i.floating = false
	i.defaultW, i.defaultH = -1, -1
	i.resizable = true
	rt.toplevels = append(rt.toplevels, i)
}

func windowDestroy(i *instance) {
	if i.closeSource != 0 {
		removeInternalSource(i.closeSource)
		i.closeSource = 0
	}
	setTransient(i, nil)
	for _, t := range append([]*instance(nil), i.transients...) {
		t.transientFor = nil
		if t.destroyWithParent {
			runDispose(t)
		}
	}
	i.transients = nil
	for idx, w := range rt.toplevels {
		if w == i {
			rt.toplevels = append(rt.toplevels[:idx], rt.toplevels[idx+1:]...)
			unref(i)
			break
		}
	}
}

func setTransient(i, parent *instance) {
	if old := i.transientFor; old != nil {
		for idx, t := range old.transients {
			if t == i {
				old.transients = append(old.transients[:idx], old.transients[idx+1:]...)
				break
			}
		}
	}
	i.transientFor = parent
	if parent != nil {
		parent.transients = append(parent.transients, i)
	}
}

func WindowNew(t int32) unsafe.Pointer {
	i := newWidget(tWindow)
	i.windowType = t
	return i.ptr()
}

func WindowSetTitle(p, title unsafe.Pointer) {
	i := window(p, "gtk_window_set_title")
	i.title, i.hasTitle = optString(title)
}

func WindowGetTitle(p unsafe.Pointer) unsafe.Pointer {
	i := window(p, "gtk_window_get_title")
	if !i.hasTitle {
		return nil
	}
	return i.constString("title", i.title)
}

func WindowSetDefaultSize(p unsafe.Pointer, w, h int32) {
	i := window(p, "gtk_window_set_default_size")
	i.defaultW, i.defaultH = w, h
}

func WindowGetDefaultSize(p unsafe.Pointer) (int32, int32) {
	i := window(p, "gtk_window_get_default_size")
	return i.defaultW, i.defaultH
}

func WindowSetPosition(p unsafe.Pointer, pos int32) {
	window(p, "gtk_window_set_position").position = pos
}

func WindowSetModal(p unsafe.Pointer, v bool) { window(p, "gtk_window_set_modal").modal = v }
func WindowGetModal(p unsafe.Pointer) bool    { return window(p, "gtk_window_get_modal").modal }

func WindowSetTransientFor(p, parent unsafe.Pointer) {
	i := window(p, "gtk_window_set_transient_for")
	var par *instance
	if parent != nil {
		par = window(parent, "gtk_window_set_transient_for")
	}
	setTransient(i, par)
}

func WindowGetTransientFor(p unsafe.Pointer) unsafe.Pointer {
	return optPtr(window(p, "gtk_window_get_transient_for").transientFor)
}

func WindowSetDestroyWithParent(p unsafe.Pointer, v bool) {
	window(p, "gtk_window_set_destroy_with_parent").destroyWithParent = v
}

func WindowGetDestroyWithParent(p unsafe.Pointer) bool {
	return window(p, "gtk_window_get_destroy_with_parent").destroyWithParent
}

func WindowSetResizable(p unsafe.Pointer, v bool) { window(p, "gtk_window_set_resizable").resizable = v }
func WindowGetResizable(p unsafe.Pointer) bool    { return window(p, "gtk_window_get_resizable").resizable }

// WindowClose queues a synthetic delete event; the window is destroyed from the main
// loop unless a delete-event handler returns true.
func WindowClose(p unsafe.Pointer) {
	i := window(p, "gtk_window_close")
	if i.closeSource != 0 {
		return
	}
	i.closeSource = addInternalSource(func() bool {
		i.closeSource = 0
		sendDelete(i)
		return false
	})
}

func sendDelete(i *instance) {
	ev := GdkEventNew(gdkDelete)
	ref(i)
	if !emit(i, "delete-event", Args{Ptr: ev}) {
		runDispose(i)
	}
	unref(i)
	GdkEventFree(ev)
}

func WindowListToplevels() unsafe.Pointer {
	var l unsafe.Pointer
	for _, w := range rt.toplevels {
		l = appendNode(l, w.ptr(), false)
	}
	return l
}

// GtkBox and GtkOrientable.

func BoxGetType() GType        { return tBox.gtype }
func OrientableGetType() GType { return tOrientable.gtype }

func BoxNew(orientation, spacing int32) unsafe.Pointer {
	i := newWidget(tBox)
	i.orientation, i.spacing = orientation, spacing
	return i.ptr()
}

func boxPack(p, child unsafe.Pointer, fn string) {
	b := lookupA(p, tBox, fn)
	ch := widget(child, fn)
	if ch.parent != nil {
		critical("Gtk", "gtk_box_pack: assertion '_gtk_widget_get_parent (child) == NULL' failed")
		return
	}
	setParent(b, ch)
}

func BoxPackStart(p, child unsafe.Pointer, expand, fill bool, padding uint32) {
	boxPack(p, child, "gtk_box_pack_start")
}

func BoxPackEnd(p, child unsafe.Pointer, expand, fill bool, padding uint32) {
	boxPack(p, child, "gtk_box_pack_end")
}

func BoxSetSpacing(p unsafe.Pointer, s int32) { lookupA(p, tBox, "gtk_box_set_spacing").spacing = s }
func BoxGetSpacing(p unsafe.Pointer) int32    { return lookupA(p, tBox, "gtk_box_get_spacing").spacing }

func BoxSetHomogeneous(p unsafe.Pointer, v bool) {
	lookupA(p, tBox, "gtk_box_set_homogeneous").homogeneous = v
}

func BoxGetHomogeneous(p unsafe.Pointer) bool {
	return lookupA(p, tBox, "gtk_box_get_homogeneous").homogeneous
}

func OrientableSetOrientation(p unsafe.Pointer, o int32) {
	lookupA(p, tOrientable, "gtk_orientable_set_orientation").orientation = o
}

func OrientableGetOrientation(p unsafe.Pointer) int32 {
	return lookupA(p, tOrientable, "gtk_orientable_get_orientation").orientation
}

// GtkButton, GtkToggleButton and GtkCheckButton.

func ButtonGetType() GType       { return tButton.gtype }
func ToggleButtonGetType() GType { return tToggleButton.gtype }
func CheckButtonGetType() GType  { return tCheckButton.gtype }

func button(p unsafe.Pointer, fn string) *instance { return lookupA(p, tButton, fn) }

func buttonSetLabel(b *instance, s string) {
	b.label, b.hasLabel = s, true
	if len(b.children) > 0 {
		if ch := b.children[0]; ch.isA(tLabel) {
			ch.text, ch.useMarkup = s, false
		}
		return
	}
	lbl := construct(tLabel)
	lbl.text = s
	lbl.visible = true
	emit(b, "add", Args{Ptr: lbl.ptr()})
}

func buttonRealClicked(i *instance, _ Args) bool {
	if i.isA(tToggleButton) {
		i.active = !i.active
		emit(i, "toggled", Args{})
	}
	return false
}

func newButton(c *class, l unsafe.Pointer) unsafe.Pointer {
	i := newWidget(c)
	if l != nil {
		buttonSetLabel(i, readString(l))
	}
	return i.ptr()
}

func ButtonNew() unsafe.Pointer                                { return newButton(tButton, nil) }
func ButtonNewWithLabel(l unsafe.Pointer) unsafe.Pointer       { return newButton(tButton, l) }
func ToggleButtonNew() unsafe.Pointer                          { return newButton(tToggleButton, nil) }
func ToggleButtonNewWithLabel(l unsafe.Pointer) unsafe.Pointer { return newButton(tToggleButton, l) }
func CheckButtonNew() unsafe.Pointer                           { return newButton(tCheckButton, nil) }
func CheckButtonNewWithLabel(l unsafe.Pointer) unsafe.Pointer  { return newButton(tCheckButton, l) }

func ButtonSetLabel(p, l unsafe.Pointer) {
	buttonSetLabel(button(p, "gtk_button_set_label"), readString(l))
}

func ButtonGetLabel(p unsafe.Pointer) unsafe.Pointer {
	b := button(p, "gtk_button_get_label")
	if !b.hasLabel {
		return nil
	}
	return b.constString("label", b.label)
}

func ButtonClicked(p unsafe.Pointer) { emit(button(p, "gtk_button_clicked"), "clicked", Args{}) }

// ToggleButtonSetActive goes through clicked, as GTK does.
func ToggleButtonSetActive(p unsafe.Pointer, v bool) {
	if i := lookupA(p, tToggleButton, "gtk_toggle_button_set_active"); i.active != v {
		emit(i, "clicked", Args{})
	}
}

func ToggleButtonGetActive(p unsafe.Pointer) bool {
	return lookupA(p, tToggleButton, "gtk_toggle_button_get_active").active
}

func ToggleButtonToggled(p unsafe.Pointer) {
	emit(lookupA(p, tToggleButton, "gtk_toggle_button_toggled"), "toggled", Args{})
}

// GtkMisc and GtkLabel.

func MiscGetType() GType  { return tMisc.gtype }
func LabelGetType() GType { return tLabel.gtype }

var entities = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&")

func stripMarkup(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>' && inTag:
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return entities.Replace(b.String())
}

func LabelNew(s unsafe.Pointer) unsafe.Pointer {
	i := newWidget(tLabel)
	i.text, _ = optString(s)
	return i.ptr()
}

func LabelSetText(p, s unsafe.Pointer) {
	i := lookupA(p, tLabel, "gtk_label_set_text")
	i.text, i.useMarkup = readString(s), false
}

func LabelGetText(p unsafe.Pointer) unsafe.Pointer {
	i := lookupA(p, tLabel, "gtk_label_get_text")
	text := i.text
	if i.useMarkup {
		text = stripMarkup(text)
	}
	return i.constString("text", text)
}

func LabelSetMarkup(p, s unsafe.Pointer) {
	i := lookupA(p, tLabel, "gtk_label_set_markup")
	i.text, i.useMarkup = readString(s), true
}

func LabelGetUseMarkup(p unsafe.Pointer) bool {
	return lookupA(p, tLabel, "gtk_label_get_use_markup").useMarkup
}
