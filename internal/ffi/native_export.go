//go:build gtk_cgo

package ffi

/*
#cgo pkg-config: gtk+-3.0
#include <stdint.h>
#include <gtk/gtk.h>
*/
import "C"

import "unsafe"

// Exported entry points for the trampolines in native.go. They live in their own file
// because a cgo file with //export may only declare, not define, C functions.

//export goSignal
func goSignal(data C.uintptr_t, inst C.gpointer, ptr C.gpointer, u C.guint, i C.gint, b C.gboolean) C.gboolean {
	handled := callbacks.Signal(uintptr(data), unsafe.Pointer(inst), Args{
		Ptr:  unsafe.Pointer(ptr),
		Uint: uint32(u),
		Int:  int32(i),
		Bool: b != C.FALSE,
	})
	return gbool(handled)
}

//export goSource
func goSource(data C.uintptr_t) C.gboolean {
	return gbool(callbacks.Source(uintptr(data)))
}

//export goDestroy
func goDestroy(data C.uintptr_t) {
	callbacks.Destroy(uintptr(data))
}

//export goWeak
func goWeak(data C.uintptr_t) {
	callbacks.Weak(uintptr(data))
}

//export goLog
func goLog(domain *C.gchar, level C.gint, message *C.gchar) {
	var d string
	if domain != nil {
		d = C.GoString((*C.char)(domain))
	}
	callbacks.Log(d, LogLevel(level), C.GoString((*C.char)(message)))
}
