package glib

import (
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
)

// CStr is a nul-terminated copy of a Go string allocated with g_malloc.
type CStr struct {
	p unsafe.Pointer
}

// CString copies s. The caller frees the copy once the foreign call returns.
func CString(s string) *CStr {
	return &CStr{p: ffi.StrDup(s)}
}

// Native returns the buffer. It panics after Free.
func (c *CStr) Native() unsafe.Pointer {
	if c.p == nil {
		panic("glib: use of a freed CStr")
	}
	return c.p
}

// Free releases the buffer. Calling it twice is a no-op.
func (c *CStr) Free() {
	if c == nil || c.p == nil {
		return
	}
	ffi.Free(c.p)
	c.p = nil
}

// WithCString runs fn with a temporary copy of s and frees it afterwards.
func WithCString(s string, fn func(p unsafe.Pointer)) {
	c := CString(s)
	defer c.Free()
	fn(c.p)
}

// WithOptCString is WithCString with NULL for the empty string.
func WithOptCString(s string, fn func(p unsafe.Pointer)) {
	if s == "" {
		fn(nil)
		return
	}
	WithCString(s, fn)
}

// GoString copies a borrowed C string. NULL yields "".
func GoString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	return ffi.GoString(p)
}

// TakeString copies a transfer-full C string and frees it.
func TakeString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	defer ffi.Free(p)
	return ffi.GoString(p)
}
