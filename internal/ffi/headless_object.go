//go:build !gtk_cgo

package ffi

import (
	"fmt"
	"strings"
	"unsafe"
)

type signalFlags int

const (
	runFirst signalFlags = 1 << iota
	runLast
	runCleanup
	trueHandled
)

type signalDef struct {
	id    uint32
	name  string
	owner *class
	sig   Signature
	flags signalFlags
	// class is the class closure, nil when the signal has none.
	class func(i *instance, a Args) bool
}

type class struct {
	gtype    GType
	name     string
	cname    unsafe.Pointer
	parent   *class
	ifaces   []*class
	iface    bool
	abstract bool
	signals  map[string]*signalDef
	init     func(i *instance)
}

var classes []*class

func defineClass(name string, parent *class, abstract bool, ifaces ...*class) *class {
	c := &class{
		gtype:    GType(len(classes) + 1),
		name:     name,
		cname:    allocString(name, true),
		parent:   parent,
		ifaces:   ifaces,
		abstract: abstract,
		signals:  make(map[string]*signalDef),
	}
	classes = append(classes, c)
	return c
}

func defineInterface(name string) *class {
	c := defineClass(name, nil, true)
	c.iface = true
	return c
}

func (c *class) signal(name string, sig Signature, flags signalFlags, closure func(*instance, Args) bool) {
	rt.nextSignal++
	c.signals[name] = &signalDef{id: rt.nextSignal, name: name, owner: c, sig: sig, flags: flags, class: closure}
}

func (c *class) isA(other *class) bool {
	for k := c; k != nil; k = k.parent {
		if k == other {
			return true
		}
		for _, i := range k.ifaces {
			if i == other {
				return true
			}
		}
	}
	return false
}

func (c *class) lookupSignal(name string) *signalDef {
	for k := c; k != nil; k = k.parent {
		if d, ok := k.signals[name]; ok {
			return d
		}
		for _, i := range k.ifaces {
			if d, ok := i.signals[name]; ok {
				return d
			}
		}
	}
	return nil
}

func classOf(t GType) *class {
	if t == 0 || int(t) > len(classes) {
		return nil
	}
	return classes[t-1]
}

var (
	tObject           = defineClass("GObject", nil, false)
	tInitiallyUnowned = defineClass("GInitiallyUnowned", tObject, false)
)

func ObjectGetType() GType           { return tObject.gtype }
func InitiallyUnownedGetType() GType { return tInitiallyUnowned.gtype }

func TypeName(t GType) unsafe.Pointer {
	if c := classOf(t); c != nil {
		return c.cname
	}
	return nil
}

func TypeParent(t GType) GType {
	if c := classOf(t); c != nil && c.parent != nil {
		return c.parent.gtype
	}
	return 0
}

func TypeIsA(t, isA GType) bool {
	c, other := classOf(t), classOf(isA)
	if c == nil || other == nil {
		return false
	}
	return c.isA(other)
}

func TypeFromName(name unsafe.Pointer) GType {
	n := readString(name)
	for _, c := range classes {
		if c.name == n {
			return c.gtype
		}
	}
	return 0
}

type handler struct {
	id           uint64
	def          *signalDef
	data         uintptr
	fn           func(i *instance, a Args) bool
	after        bool
	blocked      int
	running      int
	disconnected bool
	notified     bool
}

type instance struct {
	class     *class
	refs      uint32
	floating  bool
	finalized bool
	handlers  []*handler
	weak      []uintptr
	cstrs     map[string]unsafe.Pointer

	// GtkWidget
	parent      *instance
	children    []*instance
	visible     bool
	sensitive   bool
	destroyed   bool
	name        string
	sizeW       int32
	sizeH       int32
	responseID  int32
	hasResponse bool

	// GtkContainer
	borderWidth uint32

	// GtkWindow
	windowType        int32
	title             string
	hasTitle          bool
	defaultW          int32
	defaultH          int32
	position          int32
	modal             bool
	resizable         bool
	transientFor      *instance
	transients        []*instance
	destroyWithParent bool
	defaultWidget     *instance
	closeSource       uint32

	// GtkBox, GtkOrientable
	orientation int32
	spacing     int32
	homogeneous bool

	// GtkButton, GtkToggleButton
	label    string
	hasLabel bool
	active   bool

	// GtkLabel
	text      string
	useMarkup bool

	// GtkDialog, GtkMessageDialog
	contentArea *instance
	actionArea  *instance
	messageArea *instance
	primary     *instance
	secondary   *instance
	messageType int32

	// GtkFileChooser
	action         int32
	shortcuts      []string
	currentFolder  string
	filenames      []string
	selectMultiple bool
}

func (i *instance) ptr() unsafe.Pointer { return unsafe.Pointer(i) }

func (i *instance) isA(c *class) bool { return i.class.isA(c) }

// constString returns a buffer owned by the instance holding value. The buffer stays
// valid until the same key is read with a different value or the instance is finalised.
func (i *instance) constString(key, value string) unsafe.Pointer {
	if i.cstrs == nil {
		i.cstrs = make(map[string]unsafe.Pointer)
	}
	if p, ok := i.cstrs[key]; ok {
		if readString(p) == value {
			return p
		}
		Free(p)
	}
	p := allocString(value, false)
	i.cstrs[key] = p
	return p
}

func lookup(p unsafe.Pointer) *instance {
	if p == nil {
		panic("ffi: NULL instance")
	}
	i, ok := rt.objects[p]
	if !ok {
		panic(fmt.Sprintf("ffi: %p is not a live GObject (finalized or invalid)", p))
	}
	return i
}

func lookupA(p unsafe.Pointer, c *class, fn string) *instance {
	i := lookup(p)
	if !i.isA(c) {
		panic(fmt.Sprintf("ffi: %s: instance of %s is not a %s", fn, i.class.name, c.name))
	}
	return i
}

func optPtr(i *instance) unsafe.Pointer {
	if i == nil {
		return nil
	}
	return i.ptr()
}

// construct creates an instance and runs the instance initialisers root first.
func construct(c *class) *instance {
	i := &instance{class: c, refs: 1, floating: c.isA(tInitiallyUnowned)}
	rt.objects[i.ptr()] = i
	var chain []*class
	for k := c; k != nil; k = k.parent {
		chain = append(chain, k)
	}
	for idx := len(chain) - 1; idx >= 0; idx-- {
		if chain[idx].init != nil {
			chain[idx].init(i)
		}
	}
	return i
}

func TypeFromInstance(p unsafe.Pointer) GType { return lookup(p).class.gtype }

func ObjectNew(t GType) unsafe.Pointer {
	c := classOf(t)
	if c == nil || c.abstract || c.iface {
		name := "invalid"
		if c != nil {
			name = c.name
		}
		critical("GLib-GObject", "cannot create instance of abstract (non-instantiatable) type '%s'", name)
		return nil
	}
	if c.isA(tWidget) {
		requireInit(c.name)
	}
	return construct(c).ptr()
}

func ObjectRef(p unsafe.Pointer) unsafe.Pointer {
	lookup(p).refs++
	return p
}

func ObjectRefSink(p unsafe.Pointer) unsafe.Pointer {
	i := lookup(p)
	if i.floating {
		i.floating = false
	} else {
		i.refs++
	}
	return p
}

func ObjectUnref(p unsafe.Pointer) { unref(lookup(p)) }

func ObjectIsFloating(p unsafe.Pointer) bool { return lookup(p).floating }

func ObjectRefCount(p unsafe.Pointer) uint32 { return lookup(p).refs }

func ref(i *instance) { i.refs++ }

func unref(i *instance) {
	if i.refs == 0 {
		panic("ffi: unref of an object with no references")
	}
	if i.refs > 1 {
		i.refs--
		return
	}
	dispose(i)
	if i.refs > 1 {
		// Resurrected during dispose.
		i.refs--
		return
	}
	i.refs = 0
	finalize(i)
}

func dispose(i *instance) {
	if i.isA(tWidget) {
		widgetDispose(i)
	}
	destroyHandlers(i)
	notifyWeak(i)
}

func finalize(i *instance) {
	for _, p := range i.cstrs {
		Free(p)
	}
	i.cstrs = nil
	i.finalized = true
	delete(rt.objects, i.ptr())
}

// runDispose is g_object_run_dispose.
func runDispose(i *instance) {
	ref(i)
	dispose(i)
	unref(i)
}

// Weak references.

func ObjectWeakRef(p unsafe.Pointer, data uintptr) {
	i := lookup(p)
	i.weak = append(i.weak, data)
}

func ObjectWeakUnref(p unsafe.Pointer, data uintptr) {
	i := lookup(p)
	for idx, d := range i.weak {
		if d == data {
			i.weak = append(i.weak[:idx], i.weak[idx+1:]...)
			return
		}
	}
	critical("GLib-GObject", "g_object_weak_unref: couldn't find weak ref %d(%p)", data, p)
}

func notifyWeak(i *instance) {
	ws := i.weak
	i.weak = nil
	for _, d := range ws {
		mustCallbacks().Weak(d)
	}
}

// Signals.

func splitDetail(name string) string {
	if idx := strings.Index(name, "::"); idx >= 0 {
		return name[:idx]
	}
	return name
}

func SignalLookup(name unsafe.Pointer, t GType) uint32 {
	c := classOf(t)
	if c == nil {
		return 0
	}
	if d := c.lookupSignal(readString(name)); d != nil {
		return d.id
	}
	return 0
}

func connect(i *instance, def *signalDef, h *handler) uint64 {
	rt.nextHandler++
	h.id = rt.nextHandler
	h.def = def
	i.handlers = append(i.handlers, h)
	return h.id
}

// connectInternal attaches a handler implemented by the library itself.
func connectInternal(i *instance, name string, after bool, fn func(*instance, Args) bool) uint64 {
	def := i.class.lookupSignal(name)
	if def == nil {
		panic("ffi: internal handler for unknown signal " + name)
	}
	return connect(i, def, &handler{fn: fn, after: after})
}

func SignalConnect(inst, name unsafe.Pointer, sig Signature, data uintptr, after bool) uint64 {
	i := lookup(inst)
	n := readString(name)
	def := i.class.lookupSignal(splitDetail(n))
	if def == nil {
		critical("GLib-GObject", "g_signal_connect_data: signal '%s' is invalid for instance '%p' of type '%s'", n, inst, i.class.name)
		return 0
	}
	if def.sig != sig {
		panic(fmt.Sprintf("ffi: signal %q expects the %s trampoline, got %s", n, def.sig, sig))
	}
	return connect(i, def, &handler{data: data, after: after})
}

func findHandler(i *instance, id uint64) (int, *handler) {
	for idx, h := range i.handlers {
		if h.id == id {
			return idx, h
		}
	}
	return -1, nil
}

func releaseHandler(h *handler) {
	h.disconnected = true
	if h.running > 0 || h.notified || h.fn != nil {
		return
	}
	h.notified = true
	mustCallbacks().Destroy(h.data)
}

func disconnect(i *instance, id uint64) bool {
	idx, h := findHandler(i, id)
	if h == nil {
		return false
	}
	i.handlers = append(i.handlers[:idx], i.handlers[idx+1:]...)
	releaseHandler(h)
	return true
}

func SignalHandlerDisconnect(inst unsafe.Pointer, id uint64) {
	if !disconnect(lookup(inst), id) {
		critical("GLib-GObject", "g_signal_handler_disconnect: instance '%p' has no handler with id '%d'", inst, id)
	}
}

func SignalHandlerBlock(inst unsafe.Pointer, id uint64) {
	_, h := findHandler(lookup(inst), id)
	if h == nil {
		critical("GLib-GObject", "g_signal_handler_block: instance '%p' has no handler with id '%d'", inst, id)
		return
	}
	h.blocked++
}

func SignalHandlerUnblock(inst unsafe.Pointer, id uint64) {
	_, h := findHandler(lookup(inst), id)
	switch {
	case h == nil:
		critical("GLib-GObject", "g_signal_handler_unblock: instance '%p' has no handler with id '%d'", inst, id)
	case h.blocked == 0:
		critical("GLib-GObject", "g_signal_handler_unblock: handler '%d' of instance '%p' is not blocked", id, inst)
	default:
		h.blocked--
	}
}

func SignalHandlerIsConnected(inst unsafe.Pointer, id uint64) bool {
	_, h := findHandler(lookup(inst), id)
	return h != nil
}

func SignalEmitVoid(inst, name unsafe.Pointer) {
	i := lookup(inst)
	n := readString(name)
	def := i.class.lookupSignal(splitDetail(n))
	if def == nil {
		critical("GLib-GObject", "g_signal_emit_by_name: signal name '%s' is invalid for instance '%p' of type '%s'", n, inst, i.class.name)
		return
	}
	if def.sig != SigVoid {
		panic(fmt.Sprintf("ffi: signal %q takes arguments and cannot be emitted without them", n))
	}
	emitDef(i, def, Args{})
}

func destroyHandlers(i *instance) {
	hs := i.handlers
	i.handlers = nil
	for _, h := range hs {
		releaseHandler(h)
	}
}

func invoke(i *instance, h *handler, a Args) bool {
	h.running++
	var r bool
	if h.fn != nil {
		r = h.fn(i, a)
	} else {
		r = mustCallbacks().Signal(h.data, i.ptr(), a)
	}
	h.running--
	if h.disconnected && h.running == 0 {
		releaseHandler(h)
	}
	return r
}

func emit(i *instance, name string, a Args) bool {
	def := i.class.lookupSignal(name)
	if def == nil {
		panic(fmt.Sprintf("ffi: %s has no signal %q", i.class.name, name))
	}
	return emitDef(i, def, a)
}

// emitDef runs the class closure and handlers in GLib order: run-first closure, handlers,
// run-last closure, after handlers, cleanup closure. Boolean signals stop at the first
// stage that returns true.
func emitDef(i *instance, def *signalDef, a Args) bool {
	ref(i)
	defer unref(i)

	stopOnTrue := def.flags&trueHandled != 0
	var result bool
	stage := func(r bool) bool {
		result = r
		return stopOnTrue && r
	}
	runHandlers := func(after bool) bool {
		snapshot := append([]*handler(nil), i.handlers...)
		for _, h := range snapshot {
			if h.def != def || h.after != after || h.disconnected || h.blocked > 0 {
				continue
			}
			if stage(invoke(i, h, a)) {
				return true
			}
		}
		return false
	}

	stopped := def.flags&runFirst != 0 && def.class != nil && stage(def.class(i, a))
	if !stopped {
		stopped = runHandlers(false)
	}
	if !stopped && def.flags&runLast != 0 && def.class != nil {
		stopped = stage(def.class(i, a))
	}
	if !stopped {
		runHandlers(true)
	}
	if def.flags&runCleanup != 0 && def.class != nil {
		def.class(i, a)
	}
	if def.sig.ReturnsBool() {
		return result
	}
	return false
}
