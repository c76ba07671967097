package glib

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
	"unsafe"

	"github.com/bnema/gtkbridge/internal/ffi"
)

func typeName(t Type) string { return GoString(ffi.TypeName(t)) }

// TypeName returns the registered name of t, or "" for an invalid type.
func TypeName(t Type) string { return typeName(t) }

// TypeParent returns the parent class of t, 0 at the root.
func TypeParent(t Type) Type { return ffi.TypeParent(t) }

// TypeIsA reports whether t is isA, derives from it, or implements it.
func TypeIsA(t, isA Type) bool { return ffi.TypeIsA(t, isA) }

// TypeFromName resolves a registered class name, 0 when unknown.
func TypeFromName(name string) Type {
	var t Type
	WithCString(name, func(p unsafe.Pointer) { t = ffi.TypeFromName(p) })
	return t
}

// ObjectType is the GType of GObject.
func ObjectType() Type { return ffi.ObjectGetType() }

// InitiallyUnownedType is the GType of GInitiallyUnowned.
func InitiallyUnownedType() Type { return ffi.InitiallyUnownedGetType() }

type class struct {
	name    string
	getType func() Type
	wrap    func(*Object) IObject
}

var registry = struct {
	sync.RWMutex
	byName map[string]*class
	byGo   map[reflect.Type]*class
}{
	byName: make(map[string]*class),
	byGo:   make(map[reflect.Type]*class),
}

func init() {
	RegisterClass("GObject", ObjectType, func(o *Object) *Object { return o })
	RegisterClass("GInitiallyUnowned", InitiallyUnownedType, func(o *Object) *InitiallyUnowned {
		return &InitiallyUnowned{Object: o}
	})
}

// RegisterClass binds the foreign class name to the Go wrapper T. getType is resolved
// lazily; wrap must build a T around the envelope without touching its reference.
func RegisterClass[T IObject](name string, getType func() Type, wrap func(*Object) T) {
	c := &class{
		name:    name,
		getType: getType,
		wrap:    func(o *Object) IObject { return wrap(o) },
	}
	registry.Lock()
	defer registry.Unlock()
	if _, dup := registry.byName[name]; dup {
		panic(fmt.Sprintf("glib: class %s registered twice", name))
	}
	registry.byName[name] = c
	registry.byGo[reflect.TypeOf((*T)(nil)).Elem()] = c
}

// Wrap returns the most derived registered wrapper for obj's runtime class, sharing
// its envelope. Unregistered classes fall back to their closest registered ancestor.
func Wrap(obj IObject) IObject {
	o := BaseObject(obj)
	if o == nil {
		return nil
	}
	registry.RLock()
	defer registry.RUnlock()
	for t := o.Type(); t != 0; t = ffi.TypeParent(t) {
		if c, ok := registry.byName[typeName(t)]; ok {
			return c.wrap(o)
		}
	}
	return o
}

// TryAs downcasts obj to T. It succeeds when the runtime class of obj is T's class,
// a subclass of it, or implements it. T may be a registered wrapper type or any
// interface the wrappers satisfy. The result shares obj's envelope, so no reference
// changes hands.
func TryAs[T IObject](obj IObject) (T, bool) {
	var zero T
	o := BaseObject(obj)
	if o == nil {
		return zero, false
	}

	registry.RLock()
	c, registered := registry.byGo[reflect.TypeOf((*T)(nil)).Elem()]
	registry.RUnlock()
	if registered {
		if !ffi.TypeIsA(o.Type(), c.getType()) {
			return zero, false
		}
		v, ok := c.wrap(o).(T)
		return v, ok
	}

	v, ok := Wrap(o).(T)
	return v, ok
}

// MustAs is TryAs for callers that know the class; it panics on mismatch.
func MustAs[T IObject](obj IObject) T {
	v, ok := TryAs[T](obj)
	if !ok {
		panic(fmt.Sprintf("glib: %s is not a %s", BaseObject(obj), reflect.TypeOf((*T)(nil)).Elem()))
	}
	return v
}

// RegisteredClasses lists the class names bound to Go wrappers.
func RegisteredClasses() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.byName))
	for n := range registry.byName {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// RegisteredType resolves the runtime class of a registered name, registering it with
// the type system if needed.
func RegisteredType(name string) (Type, bool) {
	registry.RLock()
	c, ok := registry.byName[name]
	registry.RUnlock()
	if !ok {
		return 0, false
	}
	return c.getType(), true
}
