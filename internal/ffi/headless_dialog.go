//go:build !gtk_cgo

package ffi

import (
	"fmt"
	"path/filepath"
	"slices"
	"unsafe"
)

const (
	responseNone        int32 = -1
	responseOk          int32 = -5
	responseCancel      int32 = -6
	responseClose       int32 = -7
	responseYes         int32 = -8
	responseNo          int32 = -9
	responseDeleteEvent int32 = -4
)

const (
	dialogModal             int32 = 1 << 0
	dialogDestroyWithParent int32 = 1 << 1
)

const (
	buttonsNone int32 = iota
	buttonsOk
	buttonsClose
	buttonsCancel
	buttonsYesNo
	buttonsOkCancel
)

const (
	fileChooserActionSave         int32 = 1
	fileChooserActionCreateFolder int32 = 3
)

const (
	fileChooserErrorNonexistent   int32 = 0
	fileChooserErrorAlreadyExists int32 = 2
)

// GtkDialog.

func DialogGetType() GType { return tDialog.gtype }

func dialog(p unsafe.Pointer, fn string) *instance { return lookupA(p, tDialog, fn) }

func dialogInit(d *instance) {
	vbox := construct(tBox)
	vbox.orientation, vbox.spacing, vbox.visible = orientationVertical, 2, true
	emit(d, "add", Args{Ptr: vbox.ptr()})

	area := construct(tButtonBox)
	area.visible = true
	setParent(vbox, area)

	d.contentArea, d.actionArea = vbox, area
	connectInternal(d, "delete-event", false, func(d *instance, _ Args) bool {
		emit(d, "response", Args{Int: responseDeleteEvent})
		return true
	})
}

func DialogNew() unsafe.Pointer { return newWidget(tDialog).ptr() }

// DialogRun pumps a nested main loop until the dialog responds or is destroyed.
func DialogRun(p unsafe.Pointer) int32 {
	d := dialog(p, "gtk_dialog_run")
	ref(d)
	defer unref(d)

	wasModal := d.modal
	d.modal = true
	if !d.visible {
		WidgetShow(p)
	}

	response := responseNone
	loop := &mainLoop{}
	ids := []uint64{
		connectInternal(d, "response", false, func(_ *instance, a Args) bool {
			response = a.Int
			loop.quit = true
			return false
		}),
		connectInternal(d, "destroy", false, func(*instance, Args) bool {
			loop.quit = true
			return false
		}),
		connectInternal(d, "delete-event", false, func(*instance, Args) bool {
			loop.quit = true
			return true
		}),
	}
	loop.run()

	if !d.destroyed {
		d.modal = wasModal
		for _, id := range ids {
			disconnect(d, id)
		}
	}
	return response
}

func DialogResponse(p unsafe.Pointer, id int32) {
	emit(dialog(p, "gtk_dialog_response"), "response", Args{Int: id})
}

func addActionWidget(d, w *instance, id int32) {
	w.responseID, w.hasResponse = id, true
	if w.isA(tButton) {
		connectInternal(w, "clicked", false, func(b *instance, _ Args) bool {
			if !d.finalized && b.hasResponse {
				emit(d, "response", Args{Int: b.responseID})
			}
			return false
		})
	}
	if w.parent != nil {
		critical("Gtk", "gtk_box_pack: assertion '_gtk_widget_get_parent (child) == NULL' failed")
		return
	}
	setParent(d.actionArea, w)
}

// DialogAddButton returns the new button, owned by the dialog.
func DialogAddButton(p, text unsafe.Pointer, id int32) unsafe.Pointer {
	d := dialog(p, "gtk_dialog_add_button")
	b := construct(tButton)
	buttonSetLabel(b, readString(text))
	b.visible = true
	addActionWidget(d, b, id)
	return b.ptr()
}

func DialogAddActionWidget(p, child unsafe.Pointer, id int32) {
	addActionWidget(dialog(p, "gtk_dialog_add_action_widget"), widget(child, "gtk_dialog_add_action_widget"), id)
}

func actionWidgets(d *instance, id int32) []*instance {
	var out []*instance
	for _, ch := range d.actionArea.children {
		if ch.hasResponse && ch.responseID == id {
			out = append(out, ch)
		}
	}
	return out
}

func DialogSetDefaultResponse(p unsafe.Pointer, id int32) {
	d := dialog(p, "gtk_dialog_set_default_response")
	for _, w := range actionWidgets(d, id) {
		d.defaultWidget = w
	}
}

func DialogSetResponseSensitive(p unsafe.Pointer, id int32, v bool) {
	for _, w := range actionWidgets(dialog(p, "gtk_dialog_set_response_sensitive"), id) {
		w.sensitive = v
	}
}

func DialogGetWidgetForResponse(p unsafe.Pointer, id int32) unsafe.Pointer {
	ws := actionWidgets(dialog(p, "gtk_dialog_get_widget_for_response"), id)
	if len(ws) == 0 {
		return nil
	}
	return ws[0].ptr()
}

func DialogGetResponseForWidget(p, w unsafe.Pointer) int32 {
	dialog(p, "gtk_dialog_get_response_for_widget")
	if i := widget(w, "gtk_dialog_get_response_for_widget"); i.hasResponse {
		return i.responseID
	}
	return responseNone
}

func DialogGetContentArea(p unsafe.Pointer) unsafe.Pointer {
	return dialog(p, "gtk_dialog_get_content_area").contentArea.ptr()
}

// GtkMessageDialog.

func MessageDialogGetType() GType { return tMessageDialog.gtype }

func messageDialogInit(d *instance) {
	area := construct(tBox)
	area.orientation, area.spacing, area.visible = orientationVertical, 12, true
	primary := construct(tLabel)
	primary.visible = true
	secondary := construct(tLabel)
	setParent(area, primary)
	setParent(area, secondary)
	setParent(d.contentArea, area)
	d.messageArea, d.primary, d.secondary = area, primary, secondary
}

func addButtonPreset(d *instance, buttons int32) {
	add := func(text string, id int32) {
		b := construct(tButton)
		buttonSetLabel(b, text)
		b.visible = true
		addActionWidget(d, b, id)
	}
	switch buttons {
	case buttonsOk:
		add("_OK", responseOk)
	case buttonsClose:
		add("_Close", responseClose)
	case buttonsCancel:
		add("_Cancel", responseCancel)
	case buttonsYesNo:
		add("_No", responseNo)
		add("_Yes", responseYes)
	case buttonsOkCancel:
		add("_Cancel", responseCancel)
		add("_OK", responseOk)
	case buttonsNone:
	default:
		warning("Gtk", "Unknown GtkButtonsType")
	}
}

func MessageDialogNew(parent unsafe.Pointer, flags, messageType, buttons int32, message unsafe.Pointer) unsafe.Pointer {
	d := newWidget(tMessageDialog)
	d.messageType = messageType
	if s, ok := optString(message); ok {
		d.primary.text = s
	}
	addButtonPreset(d, buttons)
	if parent != nil {
		setTransient(d, window(parent, "gtk_message_dialog_new"))
	}
	if flags&dialogModal != 0 {
		d.modal = true
	}
	if flags&dialogDestroyWithParent != 0 {
		d.destroyWithParent = true
	}
	return d.ptr()
}

func messageDialog(p unsafe.Pointer, fn string) *instance { return lookupA(p, tMessageDialog, fn) }

func MessageDialogSetMarkup(p, s unsafe.Pointer) {
	d := messageDialog(p, "gtk_message_dialog_set_markup")
	d.primary.text, d.primary.useMarkup = readString(s), true
}

func MessageDialogFormatSecondaryText(p, s unsafe.Pointer) {
	d := messageDialog(p, "gtk_message_dialog_format_secondary_text")
	text, ok := optString(s)
	d.secondary.text, d.secondary.useMarkup, d.secondary.visible = text, false, ok
}

func MessageDialogGetMessageType(p unsafe.Pointer) int32 {
	return messageDialog(p, "gtk_message_dialog_get_message_type").messageType
}

func MessageDialogGetMessageArea(p unsafe.Pointer) unsafe.Pointer {
	return messageDialog(p, "gtk_message_dialog_get_message_area").messageArea.ptr()
}

// GtkFileChooser and GtkFileChooserDialog.

func FileChooserGetType() GType       { return tFileChooser.gtype }
func FileChooserDialogGetType() GType { return tFileChooserDialog.gtype }

func chooser(p unsafe.Pointer, fn string) *instance { return lookupA(p, tFileChooser, fn) }

func fileChooserError(code int32, format string, path string) unsafe.Pointer {
	return newError(quark("gtk-file-chooser-error-quark"), code, fmt.Sprintf(format, path))
}

func FileChooserDialogNew(title, parent unsafe.Pointer, action int32) unsafe.Pointer {
	d := newWidget(tFileChooserDialog)
	d.title, d.hasTitle = optString(title)
	if parent != nil {
		setTransient(d, window(parent, "gtk_file_chooser_dialog_new"))
	}
	d.action = action
	return d.ptr()
}

func FileChooserAddShortcutFolder(p, folder unsafe.Pointer, gerr *unsafe.Pointer) bool {
	c := chooser(p, "gtk_file_chooser_add_shortcut_folder")
	f := readString(folder)
	if slices.Contains(c.shortcuts, f) {
		*gerr = fileChooserError(fileChooserErrorAlreadyExists, "Shortcut %s already exists", f)
		return false
	}
	c.shortcuts = append(c.shortcuts, f)
	return true
}

func FileChooserRemoveShortcutFolder(p, folder unsafe.Pointer, gerr *unsafe.Pointer) bool {
	c := chooser(p, "gtk_file_chooser_remove_shortcut_folder")
	f := readString(folder)
	idx := slices.Index(c.shortcuts, f)
	if idx < 0 {
		*gerr = fileChooserError(fileChooserErrorNonexistent, "Shortcut %s does not exist", f)
		return false
	}
	c.shortcuts = slices.Delete(c.shortcuts, idx, idx+1)
	return true
}

// FileChooserListShortcutFolders returns a GSList of owned strings (transfer full).
func FileChooserListShortcutFolders(p unsafe.Pointer) unsafe.Pointer {
	return stringSList(chooser(p, "gtk_file_chooser_list_shortcut_folders").shortcuts)
}

func setCurrentFolder(c *instance, f string) {
	if c.currentFolder == f {
		return
	}
	c.currentFolder = f
	emit(c, "current-folder-changed", Args{})
}

func FileChooserSetCurrentFolder(p, f unsafe.Pointer) bool {
	c := chooser(p, "gtk_file_chooser_set_current_folder")
	path := readString(f)
	if !filepath.IsAbs(path) {
		return false
	}
	setCurrentFolder(c, filepath.Clean(path))
	return true
}

func FileChooserGetCurrentFolder(p unsafe.Pointer) unsafe.Pointer {
	c := chooser(p, "gtk_file_chooser_get_current_folder")
	if c.currentFolder == "" {
		return nil
	}
	return StrDup(c.currentFolder)
}

func FileChooserSetFilename(p, f unsafe.Pointer) bool {
	c := chooser(p, "gtk_file_chooser_set_filename")
	path := readString(f)
	if !filepath.IsAbs(path) {
		return false
	}
	path = filepath.Clean(path)
	setCurrentFolder(c, filepath.Dir(path))
	c.filenames = []string{path}
	emit(c, "selection-changed", Args{})
	return true
}

func FileChooserGetFilename(p unsafe.Pointer) unsafe.Pointer {
	c := chooser(p, "gtk_file_chooser_get_filename")
	if len(c.filenames) == 0 {
		return nil
	}
	return StrDup(c.filenames[0])
}

// FileChooserGetFilenames returns a GSList of owned strings (transfer full).
func FileChooserGetFilenames(p unsafe.Pointer) unsafe.Pointer {
	return stringSList(chooser(p, "gtk_file_chooser_get_filenames").filenames)
}

func FileChooserUnselectAll(p unsafe.Pointer) {
	c := chooser(p, "gtk_file_chooser_unselect_all")
	if len(c.filenames) == 0 {
		return
	}
	c.filenames = nil
	emit(c, "selection-changed", Args{})
}

func FileChooserSetSelectMultiple(p unsafe.Pointer, v bool) {
	c := chooser(p, "gtk_file_chooser_set_select_multiple")
	if v && (c.action == fileChooserActionSave || c.action == fileChooserActionCreateFolder) {
		warning("Gtk", "gtk_file_chooser_set_select_multiple: Multiple selection is not supported with this action")
		return
	}
	c.selectMultiple = v
}

func FileChooserGetSelectMultiple(p unsafe.Pointer) bool {
	return chooser(p, "gtk_file_chooser_get_select_multiple").selectMultiple
}

func FileChooserGetAction(p unsafe.Pointer) int32 {
	return chooser(p, "gtk_file_chooser_get_action").action
}
