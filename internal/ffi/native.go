//go:build gtk_cgo

package ffi

/*
#cgo pkg-config: gtk+-3.0
#include <stdint.h>
#include <stdlib.h>
#include <string.h>
#include <gtk/gtk.h>

extern gboolean goSignal(uintptr_t data, gpointer inst, gpointer ptr, guint u, gint i, gboolean b);
extern gboolean goSource(uintptr_t data);
extern void goDestroy(uintptr_t data);
extern void goWeak(uintptr_t data);
extern void goLog(gchar *domain, gint level, gchar *message);

// One trampoline per signal signature. The userdata is a registry handle, never a Go pointer.
static void tramp_void(gpointer inst, gpointer data) {
	goSignal((uintptr_t)data, inst, NULL, 0, 0, FALSE);
}
static gboolean tramp_event_bool(gpointer inst, GdkEvent *ev, gpointer data) {
	return goSignal((uintptr_t)data, inst, ev, 0, 0, FALSE);
}
static gboolean tramp_uint_bool(gpointer inst, guint v, gpointer data) {
	return goSignal((uintptr_t)data, inst, NULL, v, 0, FALSE);
}
static void tramp_bool_void(gpointer inst, gboolean v, gpointer data) {
	goSignal((uintptr_t)data, inst, NULL, 0, 0, v);
}
static void tramp_ptr_void(gpointer inst, gpointer p, gpointer data) {
	goSignal((uintptr_t)data, inst, p, 0, 0, FALSE);
}
static void tramp_int_void(gpointer inst, gint v, gpointer data) {
	goSignal((uintptr_t)data, inst, NULL, 0, v, FALSE);
}
static void tramp_destroy(gpointer data, GClosure *closure) {
	(void)closure;
	goDestroy((uintptr_t)data);
}

static gulong signal_connect(gpointer inst, const gchar *name, int sig, uintptr_t data, gboolean after) {
	GCallback cb;
	switch (sig) {
	case 0: cb = G_CALLBACK(tramp_void); break;
	case 1: cb = G_CALLBACK(tramp_event_bool); break;
	case 2: cb = G_CALLBACK(tramp_uint_bool); break;
	case 3: cb = G_CALLBACK(tramp_bool_void); break;
	case 4: cb = G_CALLBACK(tramp_ptr_void); break;
	case 5: cb = G_CALLBACK(tramp_int_void); break;
	default: return 0;
	}
	return g_signal_connect_data(inst, name, cb, (gpointer)data, tramp_destroy, after ? G_CONNECT_AFTER : 0);
}

static void signal_emit_void(gpointer inst, const gchar *name) {
	g_signal_emit_by_name(inst, name);
}

static gboolean tramp_source(gpointer data) {
	return goSource((uintptr_t)data);
}
static void tramp_source_destroy(gpointer data) {
	goDestroy((uintptr_t)data);
}
static guint idle_add(uintptr_t data) {
	return g_idle_add_full(G_PRIORITY_DEFAULT_IDLE, tramp_source, (gpointer)data, tramp_source_destroy);
}

static void tramp_weak(gpointer data, GObject *where) {
	(void)where;
	goWeak((uintptr_t)data);
}
static void weak_ref(gpointer obj, uintptr_t data) {
	g_object_weak_ref(G_OBJECT(obj), tramp_weak, (gpointer)data);
}
static void weak_unref(gpointer obj, uintptr_t data) {
	g_object_weak_unref(G_OBJECT(obj), tramp_weak, (gpointer)data);
}

static void tramp_log(const gchar *domain, GLogLevelFlags level, const gchar *message, gpointer data) {
	(void)data;
	goLog((gchar *)domain, (gint)level, (gchar *)message);
}
static void log_set_default_handler(void) {
	g_log_set_default_handler(tramp_log, NULL);
}
static void log_message(const gchar *domain, gint level, const gchar *message) {
	g_log(domain, (GLogLevelFlags)level, "%s", message);
}

static guint object_ref_count(gpointer obj) {
	return g_atomic_int_get(&G_OBJECT(obj)->ref_count);
}
static GType type_from_instance(gpointer obj) {
	return G_TYPE_FROM_INSTANCE(obj);
}
static gpointer object_new(GType t) {
	return g_object_new(t, NULL);
}

static GQuark error_domain(gpointer e) { return ((GError *)e)->domain; }
static gint error_code(gpointer e) { return ((GError *)e)->code; }
static gchar *error_message(gpointer e) { return ((GError *)e)->message; }

static gpointer list_data(gpointer l) { return ((GList *)l)->data; }
static gpointer list_next(gpointer l) { return ((GList *)l)->next; }
static gpointer slist_data(gpointer l) { return ((GSList *)l)->data; }
static gpointer slist_next(gpointer l) { return ((GSList *)l)->next; }

static void event_set_button(GdkEvent *ev, guint button) {
	switch (ev->type) {
	case GDK_BUTTON_PRESS:
	case GDK_2BUTTON_PRESS:
	case GDK_3BUTTON_PRESS:
	case GDK_BUTTON_RELEASE:
		ev->button.button = button;
		break;
	default:
		break;
	}
}
static void event_set_keyval(GdkEvent *ev, guint keyval) {
	if (ev->type == GDK_KEY_PRESS || ev->type == GDK_KEY_RELEASE) {
		ev->key.keyval = keyval;
	}
}
static void event_set_coords(GdkEvent *ev, gdouble x, gdouble y) {
	switch (ev->type) {
	case GDK_BUTTON_PRESS:
	case GDK_2BUTTON_PRESS:
	case GDK_3BUTTON_PRESS:
	case GDK_BUTTON_RELEASE:
		ev->button.x = x;
		ev->button.y = y;
		break;
	case GDK_MOTION_NOTIFY:
		ev->motion.x = x;
		ev->motion.y = y;
		break;
	default:
		break;
	}
}

static GtkWidget *message_dialog_new(GtkWindow *parent, GtkDialogFlags flags, GtkMessageType type, GtkButtonsType buttons, const gchar *message) {
	if (message == NULL) {
		return gtk_message_dialog_new(parent, flags, type, buttons, NULL);
	}
	return gtk_message_dialog_new(parent, flags, type, buttons, "%s", message);
}
static void message_dialog_format_secondary_text(GtkMessageDialog *d, const gchar *message) {
	if (message == NULL) {
		gtk_message_dialog_format_secondary_text(d, NULL);
		return;
	}
	gtk_message_dialog_format_secondary_text(d, "%s", message);
}
static gint message_dialog_get_message_type(GtkMessageDialog *d) {
	GtkMessageType t = GTK_MESSAGE_INFO;
	g_object_get(d, "message-type", &t, NULL);
	return t;
}
static GtkWidget *file_chooser_dialog_new(const gchar *title, GtkWindow *parent, GtkFileChooserAction action) {
	return gtk_file_chooser_dialog_new(title, parent, action, NULL, NULL);
}
*/
import "C"

import "unsafe"

func IsNativeAvailable() bool { return true }

func gbool(b bool) C.gboolean {
	if b {
		return C.TRUE
	}
	return C.FALSE
}

func gobool(b C.gboolean) bool { return b != C.FALSE }

func cstr(p unsafe.Pointer) *C.gchar             { return (*C.gchar)(p) }
func widget(p unsafe.Pointer) *C.GtkWidget       { return (*C.GtkWidget)(p) }
func container(p unsafe.Pointer) *C.GtkContainer { return (*C.GtkContainer)(p) }
func window(p unsafe.Pointer) *C.GtkWindow       { return (*C.GtkWindow)(p) }
func box(p unsafe.Pointer) *C.GtkBox             { return (*C.GtkBox)(p) }
func button(p unsafe.Pointer) *C.GtkButton       { return (*C.GtkButton)(p) }
func toggle(p unsafe.Pointer) *C.GtkToggleButton { return (*C.GtkToggleButton)(p) }
func label(p unsafe.Pointer) *C.GtkLabel         { return (*C.GtkLabel)(p) }
func dialog(p unsafe.Pointer) *C.GtkDialog       { return (*C.GtkDialog)(p) }
func chooser(p unsafe.Pointer) *C.GtkFileChooser { return (*C.GtkFileChooser)(p) }
func event(p unsafe.Pointer) *C.GdkEvent         { return (*C.GdkEvent)(p) }
func matrix(m *Matrix) *C.cairo_matrix_t         { return (*C.cairo_matrix_t)(unsafe.Pointer(m)) }

// Library lifecycle.

func InitCheck() bool                    { return gobool(C.gtk_init_check(nil, nil)) }
func Main()                              { C.gtk_main() }
func MainQuit()                          { C.gtk_main_quit() }
func MainLevel() uint32                  { return uint32(C.gtk_main_level()) }
func MainIterationDo(blocking bool) bool { return gobool(C.gtk_main_iteration_do(gbool(blocking))) }
func EventsPending() bool                { return gobool(C.gtk_events_pending()) }
func GetMajorVersion() uint32            { return uint32(C.gtk_get_major_version()) }
func GetMinorVersion() uint32            { return uint32(C.gtk_get_minor_version()) }
func GetMicroVersion() uint32            { return uint32(C.gtk_get_micro_version()) }

func CheckVersion(major, minor, micro uint32) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_check_version(C.guint(major), C.guint(minor), C.guint(micro)))
}

// GType and GObject.

func TypeName(t GType) unsafe.Pointer           { return unsafe.Pointer(C.g_type_name(C.GType(t))) }
func TypeParent(t GType) GType                  { return GType(C.g_type_parent(C.GType(t))) }
func TypeIsA(t, isA GType) bool                 { return gobool(C.g_type_is_a(C.GType(t), C.GType(isA))) }
func TypeFromName(name unsafe.Pointer) GType    { return GType(C.g_type_from_name(cstr(name))) }
func TypeFromInstance(p unsafe.Pointer) GType   { return GType(C.type_from_instance(C.gpointer(p))) }
func ObjectGetType() GType                      { return GType(C.g_object_get_type()) }
func InitiallyUnownedGetType() GType            { return GType(C.g_initially_unowned_get_type()) }
func ObjectNew(t GType) unsafe.Pointer          { return unsafe.Pointer(C.object_new(C.GType(t))) }
func ObjectRef(p unsafe.Pointer) unsafe.Pointer { return unsafe.Pointer(C.g_object_ref(C.gpointer(p))) }

func ObjectRefSink(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.g_object_ref_sink(C.gpointer(p)))
}

func ObjectUnref(p unsafe.Pointer)                   { C.g_object_unref(C.gpointer(p)) }
func ObjectIsFloating(p unsafe.Pointer) bool         { return gobool(C.g_object_is_floating(C.gpointer(p))) }
func ObjectRefCount(p unsafe.Pointer) uint32         { return uint32(C.object_ref_count(C.gpointer(p))) }
func ObjectWeakRef(p unsafe.Pointer, data uintptr)   { C.weak_ref(C.gpointer(p), C.uintptr_t(data)) }
func ObjectWeakUnref(p unsafe.Pointer, data uintptr) { C.weak_unref(C.gpointer(p), C.uintptr_t(data)) }

// Signals.

func SignalConnect(inst, name unsafe.Pointer, sig Signature, data uintptr, after bool) uint64 {
	return uint64(C.signal_connect(C.gpointer(inst), cstr(name), C.int(sig), C.uintptr_t(data), gbool(after)))
}

func SignalLookup(name unsafe.Pointer, t GType) uint32 {
	return uint32(C.g_signal_lookup(cstr(name), C.GType(t)))
}

func SignalHandlerDisconnect(inst unsafe.Pointer, id uint64) {
	C.g_signal_handler_disconnect(C.gpointer(inst), C.gulong(id))
}
func SignalHandlerBlock(inst unsafe.Pointer, id uint64) {
	C.g_signal_handler_block(C.gpointer(inst), C.gulong(id))
}
func SignalHandlerUnblock(inst unsafe.Pointer, id uint64) {
	C.g_signal_handler_unblock(C.gpointer(inst), C.gulong(id))
}
func SignalHandlerIsConnected(inst unsafe.Pointer, id uint64) bool {
	return gobool(C.g_signal_handler_is_connected(C.gpointer(inst), C.gulong(id)))
}
func SignalEmitVoid(inst, name unsafe.Pointer) { C.signal_emit_void(C.gpointer(inst), cstr(name)) }

// Main loop and sources.

func IdleAdd(data uintptr) uint32    { return uint32(C.idle_add(C.uintptr_t(data))) }
func SourceRemove(id uint32) bool    { return gobool(C.g_source_remove(C.guint(id))) }
func MainLoopNew() unsafe.Pointer    { return unsafe.Pointer(C.g_main_loop_new(nil, C.FALSE)) }
func MainLoopRun(l unsafe.Pointer)   { C.g_main_loop_run((*C.GMainLoop)(l)) }
func MainLoopQuit(l unsafe.Pointer)  { C.g_main_loop_quit((*C.GMainLoop)(l)) }
func MainLoopUnref(l unsafe.Pointer) { C.g_main_loop_unref((*C.GMainLoop)(l)) }
func MainLoopIsRunning(l unsafe.Pointer) bool {
	return gobool(C.g_main_loop_is_running((*C.GMainLoop)(l)))
}

// Logging.

func LogSetDefaultHandler() { C.log_set_default_handler() }
func LogMessage(domain unsafe.Pointer, level LogLevel, message unsafe.Pointer) {
	C.log_message(cstr(domain), C.gint(level), cstr(message))
}

// Memory, strings and quarks.

// StrDup copies s into a nul-terminated buffer from the GLib allocator.
func StrDup(s string) unsafe.Pointer {
	p := C.g_malloc(C.gsize(len(s) + 1))
	buf := unsafe.Slice((*byte)(p), len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0
	return unsafe.Pointer(p)
}

func Free(p unsafe.Pointer)                  { C.g_free(C.gpointer(p)) }
func GoString(p unsafe.Pointer) string       { return C.GoString((*C.char)(p)) }
func QuarkFromString(s unsafe.Pointer) Quark { return Quark(C.g_quark_from_string(cstr(s))) }
func QuarkToString(q Quark) unsafe.Pointer   { return unsafe.Pointer(C.g_quark_to_string(C.GQuark(q))) }

// GError.

func ErrorNewLiteral(domain Quark, code int32, message unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.g_error_new_literal(C.GQuark(domain), C.gint(code), cstr(message)))
}
func ErrorFree(p unsafe.Pointer)         { C.g_error_free((*C.GError)(p)) }
func ErrorDomain(p unsafe.Pointer) Quark { return Quark(C.error_domain(C.gpointer(p))) }
func ErrorCode(p unsafe.Pointer) int32   { return int32(C.error_code(C.gpointer(p))) }

func ErrorMessage(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.error_message(C.gpointer(p)))
}

// GList and GSList.

func ListAppend(l, data unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.g_list_append((*C.GList)(l), C.gpointer(data)))
}
func ListData(l unsafe.Pointer) unsafe.Pointer { return unsafe.Pointer(C.list_data(C.gpointer(l))) }
func ListNext(l unsafe.Pointer) unsafe.Pointer { return unsafe.Pointer(C.list_next(C.gpointer(l))) }
func ListLength(l unsafe.Pointer) uint32       { return uint32(C.g_list_length((*C.GList)(l))) }
func ListFree(l unsafe.Pointer)                { C.g_list_free((*C.GList)(l)) }

func SListAppend(l, data unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.g_slist_append((*C.GSList)(l), C.gpointer(data)))
}
func SListData(l unsafe.Pointer) unsafe.Pointer { return unsafe.Pointer(C.slist_data(C.gpointer(l))) }
func SListNext(l unsafe.Pointer) unsafe.Pointer { return unsafe.Pointer(C.slist_next(C.gpointer(l))) }
func SListLength(l unsafe.Pointer) uint32       { return uint32(C.g_slist_length((*C.GSList)(l))) }
func SListFree(l unsafe.Pointer)                { C.g_slist_free((*C.GSList)(l)) }

// GdkEvent.

func GdkEventNew(t int32) unsafe.Pointer           { return unsafe.Pointer(C.gdk_event_new(C.GdkEventType(t))) }
func GdkEventFree(p unsafe.Pointer)                { C.gdk_event_free(event(p)) }
func GdkEventCopy(p unsafe.Pointer) unsafe.Pointer { return unsafe.Pointer(C.gdk_event_copy(event(p))) }
func GdkEventGetEventType(p unsafe.Pointer) int32  { return int32(C.gdk_event_get_event_type(event(p))) }

func GdkEventGetButton(p unsafe.Pointer) (uint32, bool) {
	var b C.guint
	ok := C.gdk_event_get_button(event(p), &b)
	return uint32(b), gobool(ok)
}

func GdkEventGetKeyval(p unsafe.Pointer) (uint32, bool) {
	var k C.guint
	ok := C.gdk_event_get_keyval(event(p), &k)
	return uint32(k), gobool(ok)
}

func GdkEventGetCoords(p unsafe.Pointer) (float64, float64, bool) {
	var x, y C.gdouble
	ok := C.gdk_event_get_coords(event(p), &x, &y)
	return float64(x), float64(y), gobool(ok)
}

func GdkEventSetButton(p unsafe.Pointer, b uint32) { C.event_set_button(event(p), C.guint(b)) }
func GdkEventSetKeyval(p unsafe.Pointer, k uint32) { C.event_set_keyval(event(p), C.guint(k)) }

func GdkEventSetCoords(p unsafe.Pointer, x, y float64) {
	C.event_set_coords(event(p), C.gdouble(x), C.gdouble(y))
}

// cairo_matrix_t.

func CairoMatrixInit(m *Matrix, xx, yx, xy, yy, x0, y0 float64) {
	C.cairo_matrix_init(matrix(m), C.double(xx), C.double(yx), C.double(xy), C.double(yy), C.double(x0), C.double(y0))
}
func CairoMatrixInitIdentity(m *Matrix) { C.cairo_matrix_init_identity(matrix(m)) }
func CairoMatrixInitTranslate(m *Matrix, tx, ty float64) {
	C.cairo_matrix_init_translate(matrix(m), C.double(tx), C.double(ty))
}
func CairoMatrixInitScale(m *Matrix, sx, sy float64) {
	C.cairo_matrix_init_scale(matrix(m), C.double(sx), C.double(sy))
}
func CairoMatrixInitRotate(m *Matrix, radians float64) {
	C.cairo_matrix_init_rotate(matrix(m), C.double(radians))
}
func CairoMatrixTranslate(m *Matrix, tx, ty float64) {
	C.cairo_matrix_translate(matrix(m), C.double(tx), C.double(ty))
}
func CairoMatrixScale(m *Matrix, sx, sy float64) {
	C.cairo_matrix_scale(matrix(m), C.double(sx), C.double(sy))
}

func CairoMatrixRotate(m *Matrix, radians float64) {
	C.cairo_matrix_rotate(matrix(m), C.double(radians))
}

func CairoMatrixMultiply(result, a, b *Matrix) {
	C.cairo_matrix_multiply(matrix(result), matrix(a), matrix(b))
}
func CairoMatrixInvert(m *Matrix) int32 { return int32(C.cairo_matrix_invert(matrix(m))) }
func CairoMatrixTransformPoint(m *Matrix, x, y *float64) {
	C.cairo_matrix_transform_point(matrix(m), (*C.double)(unsafe.Pointer(x)), (*C.double)(unsafe.Pointer(y)))
}
func CairoMatrixTransformDistance(m *Matrix, dx, dy *float64) {
	C.cairo_matrix_transform_distance(matrix(m), (*C.double)(unsafe.Pointer(dx)), (*C.double)(unsafe.Pointer(dy)))
}

// GtkWidget.

func WidgetGetType() GType                   { return GType(C.gtk_widget_get_type()) }
func WidgetShow(p unsafe.Pointer)            { C.gtk_widget_show(widget(p)) }
func WidgetHide(p unsafe.Pointer)            { C.gtk_widget_hide(widget(p)) }
func WidgetShowAll(p unsafe.Pointer)         { C.gtk_widget_show_all(widget(p)) }
func WidgetGetVisible(p unsafe.Pointer) bool { return gobool(C.gtk_widget_get_visible(widget(p))) }
func WidgetDestroy(p unsafe.Pointer)         { C.gtk_widget_destroy(widget(p)) }

func WidgetGetParent(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_widget_get_parent(widget(p)))
}

func WidgetGetToplevel(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_widget_get_toplevel(widget(p)))
}

func WidgetSetSensitive(p unsafe.Pointer, v bool) { C.gtk_widget_set_sensitive(widget(p), gbool(v)) }
func WidgetGetSensitive(p unsafe.Pointer) bool    { return gobool(C.gtk_widget_get_sensitive(widget(p))) }
func WidgetSetName(p, name unsafe.Pointer)        { C.gtk_widget_set_name(widget(p), cstr(name)) }

func WidgetGetName(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_widget_get_name(widget(p)))
}

func WidgetSetSizeRequest(p unsafe.Pointer, w, h int32) {
	C.gtk_widget_set_size_request(widget(p), C.gint(w), C.gint(h))
}
func WidgetGetSizeRequest(p unsafe.Pointer) (int32, int32) {
	var w, h C.gint
	C.gtk_widget_get_size_request(widget(p), &w, &h)
	return int32(w), int32(h)
}
func WidgetEvent(p, ev unsafe.Pointer) bool  { return gobool(C.gtk_widget_event(widget(p), event(ev))) }
func WidgetHasDefault(p unsafe.Pointer) bool { return gobool(C.gtk_widget_has_default(widget(p))) }
func WidgetCanActivateAccel(p unsafe.Pointer, signalID uint32) bool {
	return gobool(C.gtk_widget_can_activate_accel(widget(p), C.guint(signalID)))
}
func GrabAdd(p unsafe.Pointer)    { C.gtk_grab_add(widget(p)) }
func GrabRemove(p unsafe.Pointer) { C.gtk_grab_remove(widget(p)) }

// GtkContainer and GtkBin.

func ContainerGetType() GType                 { return GType(C.gtk_container_get_type()) }
func ContainerAdd(p, child unsafe.Pointer)    { C.gtk_container_add(container(p), widget(child)) }
func ContainerRemove(p, child unsafe.Pointer) { C.gtk_container_remove(container(p), widget(child)) }
func ContainerSetBorderWidth(p unsafe.Pointer, w uint32) {
	C.gtk_container_set_border_width(container(p), C.guint(w))
}
func ContainerGetBorderWidth(p unsafe.Pointer) uint32 {
	return uint32(C.gtk_container_get_border_width(container(p)))
}
func ContainerGetChildren(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_container_get_children(container(p)))
}
func BinGetType() GType { return GType(C.gtk_bin_get_type()) }
func BinGetChild(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_bin_get_child((*C.GtkBin)(p)))
}

// GtkWindow.

func WindowGetType() GType                   { return GType(C.gtk_window_get_type()) }
func WindowNew(t int32) unsafe.Pointer       { return unsafe.Pointer(C.gtk_window_new(C.GtkWindowType(t))) }
func WindowSetTitle(p, title unsafe.Pointer) { C.gtk_window_set_title(window(p), cstr(title)) }

func WindowGetTitle(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_window_get_title(window(p)))
}

func WindowSetDefaultSize(p unsafe.Pointer, w, h int32) {
	C.gtk_window_set_default_size(window(p), C.gint(w), C.gint(h))
}
func WindowGetDefaultSize(p unsafe.Pointer) (int32, int32) {
	var w, h C.gint
	C.gtk_window_get_default_size(window(p), &w, &h)
	return int32(w), int32(h)
}
func WindowSetPosition(p unsafe.Pointer, pos int32) {
	C.gtk_window_set_position(window(p), C.GtkWindowPosition(pos))
}
func WindowSetModal(p unsafe.Pointer, v bool) { C.gtk_window_set_modal(window(p), gbool(v)) }
func WindowGetModal(p unsafe.Pointer) bool    { return gobool(C.gtk_window_get_modal(window(p))) }

func WindowSetTransientFor(p, parent unsafe.Pointer) {
	C.gtk_window_set_transient_for(window(p), window(parent))
}

func WindowGetTransientFor(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_window_get_transient_for(window(p)))
}
func WindowSetDestroyWithParent(p unsafe.Pointer, v bool) {
	C.gtk_window_set_destroy_with_parent(window(p), gbool(v))
}
func WindowGetDestroyWithParent(p unsafe.Pointer) bool {
	return gobool(C.gtk_window_get_destroy_with_parent(window(p)))
}
func WindowSetResizable(p unsafe.Pointer, v bool) { C.gtk_window_set_resizable(window(p), gbool(v)) }
func WindowGetResizable(p unsafe.Pointer) bool    { return gobool(C.gtk_window_get_resizable(window(p))) }
func WindowClose(p unsafe.Pointer)                { C.gtk_window_close(window(p)) }
func WindowListToplevels() unsafe.Pointer         { return unsafe.Pointer(C.gtk_window_list_toplevels()) }

// GtkBox and GtkOrientable.

func BoxGetType() GType { return GType(C.gtk_box_get_type()) }
func BoxNew(orientation, spacing int32) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_box_new(C.GtkOrientation(orientation), C.gint(spacing)))
}
func BoxPackStart(p, child unsafe.Pointer, expand, fill bool, padding uint32) {
	C.gtk_box_pack_start(box(p), widget(child), gbool(expand), gbool(fill), C.guint(padding))
}
func BoxPackEnd(p, child unsafe.Pointer, expand, fill bool, padding uint32) {
	C.gtk_box_pack_end(box(p), widget(child), gbool(expand), gbool(fill), C.guint(padding))
}
func BoxSetSpacing(p unsafe.Pointer, s int32)    { C.gtk_box_set_spacing(box(p), C.gint(s)) }
func BoxGetSpacing(p unsafe.Pointer) int32       { return int32(C.gtk_box_get_spacing(box(p))) }
func BoxSetHomogeneous(p unsafe.Pointer, v bool) { C.gtk_box_set_homogeneous(box(p), gbool(v)) }
func BoxGetHomogeneous(p unsafe.Pointer) bool    { return gobool(C.gtk_box_get_homogeneous(box(p))) }
func OrientableGetType() GType                   { return GType(C.gtk_orientable_get_type()) }
func OrientableSetOrientation(p unsafe.Pointer, o int32) {
	C.gtk_orientable_set_orientation((*C.GtkOrientable)(p), C.GtkOrientation(o))
}
func OrientableGetOrientation(p unsafe.Pointer) int32 {
	return int32(C.gtk_orientable_get_orientation((*C.GtkOrientable)(p)))
}

// GtkButton, GtkToggleButton and GtkCheckButton.

func ButtonGetType() GType      { return GType(C.gtk_button_get_type()) }
func ButtonNew() unsafe.Pointer { return unsafe.Pointer(C.gtk_button_new()) }

func ButtonNewWithLabel(l unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_button_new_with_label(cstr(l)))
}

func ButtonSetLabel(p, l unsafe.Pointer) { C.gtk_button_set_label(button(p), cstr(l)) }

func ButtonGetLabel(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_button_get_label(button(p)))
}

func ButtonClicked(p unsafe.Pointer) { C.gtk_button_clicked(button(p)) }

func ToggleButtonGetType() GType      { return GType(C.gtk_toggle_button_get_type()) }
func ToggleButtonNew() unsafe.Pointer { return unsafe.Pointer(C.gtk_toggle_button_new()) }
func ToggleButtonNewWithLabel(l unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_toggle_button_new_with_label(cstr(l)))
}

func ToggleButtonSetActive(p unsafe.Pointer, v bool) {
	C.gtk_toggle_button_set_active(toggle(p), gbool(v))
}

func ToggleButtonGetActive(p unsafe.Pointer) bool {
	return gobool(C.gtk_toggle_button_get_active(toggle(p)))
}

func ToggleButtonToggled(p unsafe.Pointer) { C.gtk_toggle_button_toggled(toggle(p)) }

func CheckButtonGetType() GType      { return GType(C.gtk_check_button_get_type()) }
func CheckButtonNew() unsafe.Pointer { return unsafe.Pointer(C.gtk_check_button_new()) }
func CheckButtonNewWithLabel(l unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_check_button_new_with_label(cstr(l)))
}

// GtkMisc and GtkLabel.

func MiscGetType() GType                       { return GType(C.gtk_misc_get_type()) }
func LabelGetType() GType                      { return GType(C.gtk_label_get_type()) }
func LabelNew(s unsafe.Pointer) unsafe.Pointer { return unsafe.Pointer(C.gtk_label_new(cstr(s))) }
func LabelSetText(p, s unsafe.Pointer)         { C.gtk_label_set_text(label(p), cstr(s)) }

func LabelGetText(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_label_get_text(label(p)))
}

func LabelSetMarkup(p, s unsafe.Pointer)      { C.gtk_label_set_markup(label(p), cstr(s)) }
func LabelGetUseMarkup(p unsafe.Pointer) bool { return gobool(C.gtk_label_get_use_markup(label(p))) }

// GtkDialog and GtkMessageDialog.

func DialogGetType() GType                      { return GType(C.gtk_dialog_get_type()) }
func DialogNew() unsafe.Pointer                 { return unsafe.Pointer(C.gtk_dialog_new()) }
func DialogRun(p unsafe.Pointer) int32          { return int32(C.gtk_dialog_run(dialog(p))) }
func DialogResponse(p unsafe.Pointer, id int32) { C.gtk_dialog_response(dialog(p), C.gint(id)) }
func DialogAddButton(p, text unsafe.Pointer, id int32) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_dialog_add_button(dialog(p), cstr(text), C.gint(id)))
}
func DialogAddActionWidget(p, child unsafe.Pointer, id int32) {
	C.gtk_dialog_add_action_widget(dialog(p), widget(child), C.gint(id))
}
func DialogSetDefaultResponse(p unsafe.Pointer, id int32) {
	C.gtk_dialog_set_default_response(dialog(p), C.gint(id))
}
func DialogSetResponseSensitive(p unsafe.Pointer, id int32, v bool) {
	C.gtk_dialog_set_response_sensitive(dialog(p), C.gint(id), gbool(v))
}
func DialogGetWidgetForResponse(p unsafe.Pointer, id int32) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_dialog_get_widget_for_response(dialog(p), C.gint(id)))
}
func DialogGetResponseForWidget(p, w unsafe.Pointer) int32 {
	return int32(C.gtk_dialog_get_response_for_widget(dialog(p), widget(w)))
}
func DialogGetContentArea(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_dialog_get_content_area(dialog(p)))
}

func MessageDialogGetType() GType { return GType(C.gtk_message_dialog_get_type()) }
func MessageDialogNew(parent unsafe.Pointer, flags, messageType, buttons int32, message unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.message_dialog_new(window(parent), C.GtkDialogFlags(flags),
		C.GtkMessageType(messageType), C.GtkButtonsType(buttons), cstr(message)))
}
func MessageDialogSetMarkup(p, s unsafe.Pointer) {
	C.gtk_message_dialog_set_markup((*C.GtkMessageDialog)(p), cstr(s))
}
func MessageDialogFormatSecondaryText(p, s unsafe.Pointer) {
	C.message_dialog_format_secondary_text((*C.GtkMessageDialog)(p), cstr(s))
}
func MessageDialogGetMessageType(p unsafe.Pointer) int32 {
	return int32(C.message_dialog_get_message_type((*C.GtkMessageDialog)(p)))
}
func MessageDialogGetMessageArea(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_message_dialog_get_message_area((*C.GtkMessageDialog)(p)))
}

// GtkFileChooser and GtkFileChooserDialog.

func FileChooserGetType() GType       { return GType(C.gtk_file_chooser_get_type()) }
func FileChooserDialogGetType() GType { return GType(C.gtk_file_chooser_dialog_get_type()) }
func FileChooserDialogNew(title, parent unsafe.Pointer, action int32) unsafe.Pointer {
	return unsafe.Pointer(C.file_chooser_dialog_new(cstr(title), window(parent), C.GtkFileChooserAction(action)))
}

func FileChooserAddShortcutFolder(p, folder unsafe.Pointer, gerr *unsafe.Pointer) bool {
	var e *C.GError
	ok := C.gtk_file_chooser_add_shortcut_folder(chooser(p), cstr(folder), &e)
	*gerr = unsafe.Pointer(e)
	return gobool(ok)
}

func FileChooserRemoveShortcutFolder(p, folder unsafe.Pointer, gerr *unsafe.Pointer) bool {
	var e *C.GError
	ok := C.gtk_file_chooser_remove_shortcut_folder(chooser(p), cstr(folder), &e)
	*gerr = unsafe.Pointer(e)
	return gobool(ok)
}

func FileChooserListShortcutFolders(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_file_chooser_list_shortcut_folders(chooser(p)))
}
func FileChooserSetCurrentFolder(p, f unsafe.Pointer) bool {
	return gobool(C.gtk_file_chooser_set_current_folder(chooser(p), cstr(f)))
}
func FileChooserGetCurrentFolder(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_file_chooser_get_current_folder(chooser(p)))
}
func FileChooserSetFilename(p, f unsafe.Pointer) bool {
	return gobool(C.gtk_file_chooser_set_filename(chooser(p), cstr(f)))
}
func FileChooserGetFilename(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_file_chooser_get_filename(chooser(p)))
}
func FileChooserGetFilenames(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.gtk_file_chooser_get_filenames(chooser(p)))
}
func FileChooserUnselectAll(p unsafe.Pointer) { C.gtk_file_chooser_unselect_all(chooser(p)) }
func FileChooserSetSelectMultiple(p unsafe.Pointer, v bool) {
	C.gtk_file_chooser_set_select_multiple(chooser(p), gbool(v))
}
func FileChooserGetSelectMultiple(p unsafe.Pointer) bool {
	return gobool(C.gtk_file_chooser_get_select_multiple(chooser(p)))
}
func FileChooserGetAction(p unsafe.Pointer) int32 {
	return int32(C.gtk_file_chooser_get_action(chooser(p)))
}
