package glib

import (
	"fmt"
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
)

// Quark is a GQuark.
type Quark = ffi.Quark

// QuarkFromString interns s.
func QuarkFromString(s string) Quark {
	var q Quark
	WithCString(s, func(p unsafe.Pointer) { q = ffi.QuarkFromString(p) })
	return q
}

func QuarkToString(q Quark) string { return GoString(ffi.QuarkToString(q)) }

// Error is a GError copied into Go memory.
type Error struct {
	Domain  Quark
	Code    int
	Message string
}

// NewError builds an Error in the named domain.
func NewError(domain string, code int, format string, args ...any) *Error {
	return &Error{Domain: QuarkFromString(domain), Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.Message }

// DomainName returns the domain quark's string.
func (e *Error) DomainName() string { return QuarkToString(e.Domain) }

// Matches reports whether e belongs to domain with the given code, as g_error_matches.
func (e *Error) Matches(domain Quark, code int) bool {
	return e != nil && e.Domain == domain && e.Code == code
}

// Is matches on domain and code so errors.Is works against a template Error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Matches(t.Domain, t.Code)
}

// TakeError copies a GError out-parameter into an *Error and frees the GError. NULL
// yields nil.
func TakeError(p unsafe.Pointer) *Error {
	if p == nil {
		return nil
	}
	defer ffi.ErrorFree(p)
	return &Error{
		Domain:  ffi.ErrorDomain(p),
		Code:    int(ffi.ErrorCode(p)),
		Message: GoString(ffi.ErrorMessage(p)),
	}
}

// Native allocates a GError with the same content. The caller owns it.
func (e *Error) Native() unsafe.Pointer {
	var p unsafe.Pointer
	WithCString(e.Message, func(m unsafe.Pointer) { p = ffi.ErrorNewLiteral(e.Domain, int32(e.Code), m) })
	return p
}
