package glib

import (
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
)

// Transfer is the ownership a foreign function hands over with a list.
type Transfer int

const (
	// TransferNone: the list and its data stay owned by the callee.
	TransferNone Transfer = iota
	// TransferContainer: the caller frees the nodes, the data is borrowed.
	TransferContainer
	// TransferFull: the caller frees the nodes and owns every element.
	TransferFull
)

type listOps struct {
	data func(unsafe.Pointer) unsafe.Pointer
	next func(unsafe.Pointer) unsafe.Pointer
	free func(unsafe.Pointer)
}

var (
	glistOps  = listOps{data: ffi.ListData, next: ffi.ListNext, free: ffi.ListFree}
	gslistOps = listOps{data: ffi.SListData, next: ffi.SListNext, free: ffi.SListFree}
)

type list struct {
	head     unsafe.Pointer
	transfer Transfer
	ops      listOps
	freed    bool
}

// List wraps a GList.
type List struct{ list }

// SList wraps a GSList.
type SList struct{ list }

// WrapList adopts a GList returned with the given transfer. NULL is the empty list.
func WrapList(p unsafe.Pointer, t Transfer) *List {
	return &List{list{head: p, transfer: t, ops: glistOps}}
}

// WrapSList adopts a GSList returned with the given transfer.
func WrapSList(p unsafe.Pointer, t Transfer) *SList {
	return &SList{list{head: p, transfer: t, ops: gslistOps}}
}

func (l *list) check() {
	if l.freed {
		panic("glib: use of a list after Free")
	}
}

// Native returns the first node.
func (l *list) Native() unsafe.Pointer {
	l.check()
	return l.head
}

// Len walks the list.
func (l *list) Len() int {
	n := 0
	l.Foreach(func(unsafe.Pointer) { n++ })
	return n
}

// Foreach calls fn with each element's data pointer in order.
func (l *list) Foreach(fn func(data unsafe.Pointer)) {
	l.check()
	for n := l.head; n != nil; n = l.ops.next(n) {
		fn(l.ops.data(n))
	}
}

// Objects returns an owned envelope per element. The list is left untouched.
func (l *list) Objects() []*Object {
	var out []*Object
	l.Foreach(func(p unsafe.Pointer) { out = append(out, Borrow(p)) })
	return out
}

// Strings copies each element as a C string. The list is left untouched.
func (l *list) Strings() []string {
	var out []string
	l.Foreach(func(p unsafe.Pointer) { out = append(out, GoString(p)) })
	return out
}

// FreeFull frees the nodes according to the transfer, calling freeData on each element
// first when the caller owns them. Freeing twice is a no-op.
func (l *list) FreeFull(freeData func(unsafe.Pointer)) {
	if l.freed {
		return
	}
	l.freed = true
	if l.transfer == TransferNone {
		return
	}
	if l.transfer == TransferFull && freeData != nil {
		for n := l.head; n != nil; n = l.ops.next(n) {
			freeData(l.ops.data(n))
		}
	}
	if l.head != nil {
		l.ops.free(l.head)
	}
}

// Free frees the nodes only. Use FreeFull or a Consume method for transfer-full
// lists so the elements are released too.
func (l *list) Free() {
	l.FreeFull(nil)
}

// ConsumeObjects converts the list into owned envelopes and frees it. Under full
// transfer the list's references move into the envelopes.
func (l *list) ConsumeObjects() []*Object {
	var out []*Object
	l.Foreach(func(p unsafe.Pointer) {
		if l.transfer == TransferFull {
			out = append(out, AssumeOwned(p))
		} else {
			out = append(out, Borrow(p))
		}
	})
	l.freed = true
	if l.transfer != TransferNone && l.head != nil {
		l.ops.free(l.head)
	}
	return out
}

// ConsumeStrings copies the strings and frees the list, including the strings under
// full transfer.
func (l *list) ConsumeStrings() []string {
	out := l.Strings()
	l.FreeFull(ffi.Free)
	return out
}
