//go:build !gtk_cgo

package ffi

import (
	"fmt"
	"os"
	"sync"
	"unsafe"
)

// IsNativeAvailable reports whether the real GTK libraries are linked in.
func IsNativeAvailable() bool { return false }

// Version reported by the headless backend.
const (
	headlessMajor = 3
	headlessMinor = 24
	headlessMicro = 41
)

type cbuf struct {
	buf    []byte
	static bool
}

type state struct {
	// mu guards the source queue only: IdleAdd and SourceRemove are the sole entry
	// points that may be called off the main thread.
	mu         sync.Mutex
	sources    []*source
	running    map[uint32]*source
	nextSource uint32

	initialized bool
	logHandler  bool

	strings map[unsafe.Pointer]*cbuf
	objects map[unsafe.Pointer]*instance
	errors  map[unsafe.Pointer]*gerror
	lists   map[unsafe.Pointer]*listNode
	events  map[unsafe.Pointer]*gdkEvent
	loops   map[unsafe.Pointer]*mainLoop

	quarks      []string
	quarkIDs    map[string]Quark
	quarkNames  map[Quark]unsafe.Pointer
	nextHandler uint64
	nextSignal  uint32

	toplevels []*instance
	gtkLoops  []*mainLoop
	grabs     []*instance
}

var rt = &state{
	running:    make(map[uint32]*source),
	strings:    make(map[unsafe.Pointer]*cbuf),
	objects:    make(map[unsafe.Pointer]*instance),
	errors:     make(map[unsafe.Pointer]*gerror),
	lists:      make(map[unsafe.Pointer]*listNode),
	events:     make(map[unsafe.Pointer]*gdkEvent),
	loops:      make(map[unsafe.Pointer]*mainLoop),
	quarkIDs:   make(map[string]Quark),
	quarkNames: make(map[Quark]unsafe.Pointer),
}

// Stats counts the live foreign resources of the headless backend.
type Stats struct {
	Objects  int
	Handlers int
	Sources  int
	Strings  int
	Errors   int
	Lists    int
	Events   int
}

// HeadlessStats returns a snapshot of live resources. Only the headless backend has it.
func HeadlessStats() Stats {
	s := Stats{
		Objects: len(rt.objects),
		Errors:  len(rt.errors),
		Lists:   len(rt.lists),
		Events:  len(rt.events),
	}
	for _, i := range rt.objects {
		for _, h := range i.handlers {
			if h.fn == nil {
				s.Handlers++
			}
		}
	}
	for _, b := range rt.strings {
		if !b.static {
			s.Strings++
		}
	}
	rt.mu.Lock()
	s.Sources = len(rt.sources)
	rt.mu.Unlock()
	return s
}

func mustCallbacks() Callbacks {
	if callbacks == nil {
		panic("ffi: no callbacks installed")
	}
	return callbacks
}

// Logging.

func levelName(level LogLevel) string {
	switch {
	case level&LogLevelError != 0:
		return "ERROR"
	case level&LogLevelCritical != 0:
		return "CRITICAL"
	case level&LogLevelWarning != 0:
		return "WARNING"
	case level&LogLevelMessage != 0:
		return "Message"
	case level&LogLevelInfo != 0:
		return "INFO"
	default:
		return "DEBUG"
	}
}

func logf(domain string, level LogLevel, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if rt.logHandler && callbacks != nil {
		callbacks.Log(domain, level, msg)
		return
	}
	fmt.Fprintf(os.Stderr, "(headless:%d): %s-%s **: %s\n", os.Getpid(), domain, levelName(level), msg)
}

func critical(domain, format string, args ...any) {
	logf(domain, LogLevelCritical, format, args...)
}

func warning(domain, format string, args ...any) {
	logf(domain, LogLevelWarning, format, args...)
}

func LogSetDefaultHandler() { rt.logHandler = true }

func LogMessage(domain unsafe.Pointer, level LogLevel, message unsafe.Pointer) {
	var d string
	if domain != nil {
		d = readString(domain)
	}
	logf(d, level, "%s", readString(message))
}

// Memory and strings.

func allocString(s string, static bool) unsafe.Pointer {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	p := unsafe.Pointer(&buf[0])
	rt.strings[p] = &cbuf{buf: buf, static: static}
	return p
}

func readString(p unsafe.Pointer) string {
	if p == nil {
		panic("ffi: NULL string passed where a string is required")
	}
	b, ok := rt.strings[p]
	if !ok {
		panic(fmt.Sprintf("ffi: %p is not a live nul-terminated buffer", p))
	}
	return string(b.buf[:len(b.buf)-1])
}

func optString(p unsafe.Pointer) (string, bool) {
	if p == nil {
		return "", false
	}
	return readString(p), true
}

// StrDup copies s into a nul-terminated buffer owned by the caller.
func StrDup(s string) unsafe.Pointer { return allocString(s, false) }

func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	b, ok := rt.strings[p]
	if !ok || b.static {
		panic(fmt.Sprintf("ffi: g_free of %p which is not an owned allocation", p))
	}
	delete(rt.strings, p)
}

func GoString(p unsafe.Pointer) string { return readString(p) }

// Quarks.

func quark(s string) Quark {
	if q, ok := rt.quarkIDs[s]; ok {
		return q
	}
	rt.quarks = append(rt.quarks, s)
	q := Quark(len(rt.quarks))
	rt.quarkIDs[s] = q
	rt.quarkNames[q] = allocString(s, true)
	return q
}

func QuarkFromString(s unsafe.Pointer) Quark {
	if s == nil {
		return 0
	}
	return quark(readString(s))
}

func QuarkToString(q Quark) unsafe.Pointer { return rt.quarkNames[q] }

// GError.

type gerror struct {
	domain  Quark
	code    int32
	message unsafe.Pointer
}

func newError(domain Quark, code int32, message string) unsafe.Pointer {
	e := &gerror{domain: domain, code: code, message: allocString(message, false)}
	p := unsafe.Pointer(e)
	rt.errors[p] = e
	return p
}

func lookupError(p unsafe.Pointer) *gerror {
	e, ok := rt.errors[p]
	if !ok {
		panic(fmt.Sprintf("ffi: %p is not a live GError", p))
	}
	return e
}

func ErrorNewLiteral(domain Quark, code int32, message unsafe.Pointer) unsafe.Pointer {
	return newError(domain, code, readString(message))
}

func ErrorFree(p unsafe.Pointer) {
	e := lookupError(p)
	Free(e.message)
	delete(rt.errors, p)
}

func ErrorDomain(p unsafe.Pointer) Quark           { return lookupError(p).domain }
func ErrorCode(p unsafe.Pointer) int32             { return lookupError(p).code }
func ErrorMessage(p unsafe.Pointer) unsafe.Pointer { return lookupError(p).message }

// GList and GSList share one node type; the flag catches a list passed to the wrong family.

type listNode struct {
	data   unsafe.Pointer
	next   *listNode
	single bool
}

func lookupNode(l unsafe.Pointer, single bool) *listNode {
	n, ok := rt.lists[l]
	if !ok {
		panic(fmt.Sprintf("ffi: %p is not a live list node", l))
	}
	if n.single != single {
		panic("ffi: GList and GSList mixed up")
	}
	return n
}

func appendNode(l, data unsafe.Pointer, single bool) unsafe.Pointer {
	n := &listNode{data: data, single: single}
	rt.lists[unsafe.Pointer(n)] = n
	if l == nil {
		return unsafe.Pointer(n)
	}
	last := lookupNode(l, single)
	for last.next != nil {
		last = last.next
	}
	last.next = n
	return l
}

func nodeNext(l unsafe.Pointer, single bool) unsafe.Pointer {
	n := lookupNode(l, single)
	if n.next == nil {
		return nil
	}
	return unsafe.Pointer(n.next)
}

func nodeLength(l unsafe.Pointer, single bool) uint32 {
	var c uint32
	for ; l != nil; l = nodeNext(l, single) {
		c++
	}
	return c
}

func freeNodes(l unsafe.Pointer, single bool) {
	for l != nil {
		next := nodeNext(l, single)
		delete(rt.lists, l)
		l = next
	}
}

func ListAppend(l, data unsafe.Pointer) unsafe.Pointer  { return appendNode(l, data, false) }
func ListData(l unsafe.Pointer) unsafe.Pointer          { return lookupNode(l, false).data }
func ListNext(l unsafe.Pointer) unsafe.Pointer          { return nodeNext(l, false) }
func ListLength(l unsafe.Pointer) uint32                { return nodeLength(l, false) }
func ListFree(l unsafe.Pointer)                         { freeNodes(l, false) }
func SListAppend(l, data unsafe.Pointer) unsafe.Pointer { return appendNode(l, data, true) }
func SListData(l unsafe.Pointer) unsafe.Pointer         { return lookupNode(l, true).data }
func SListNext(l unsafe.Pointer) unsafe.Pointer         { return nodeNext(l, true) }
func SListLength(l unsafe.Pointer) uint32               { return nodeLength(l, true) }
func SListFree(l unsafe.Pointer)                        { freeNodes(l, true) }

func stringSList(values []string) unsafe.Pointer {
	var l unsafe.Pointer
	for _, v := range values {
		l = appendNode(l, StrDup(v), true)
	}
	return l
}

// Library lifecycle.

func InitCheck() bool {
	rt.initialized = true
	return true
}

func requireInit(what string) {
	if !rt.initialized {
		panic(fmt.Sprintf("ffi: %s created before gtk_init", what))
	}
}

func GetMajorVersion() uint32 { return headlessMajor }
func GetMinorVersion() uint32 { return headlessMinor }
func GetMicroVersion() uint32 { return headlessMicro }

var versionMessages = map[string]unsafe.Pointer{}

func versionMessage(s string) unsafe.Pointer {
	if p, ok := versionMessages[s]; ok {
		return p
	}
	p := allocString(s, true)
	versionMessages[s] = p
	return p
}

func CheckVersion(major, minor, micro uint32) unsafe.Pointer {
	switch {
	case major > headlessMajor:
		return versionMessage("GTK+ version too old (major mismatch)")
	case major < headlessMajor:
		return versionMessage("GTK+ version too new (major mismatch)")
	case minor > headlessMinor:
		return versionMessage("GTK+ version too old (minor mismatch)")
	case minor == headlessMinor && micro > headlessMicro:
		return versionMessage("GTK+ version too old (micro mismatch)")
	}
	return nil
}

// Idle sources and main loops.

type source struct {
	id      uint32
	data    uintptr
	fn      func() bool
	removed bool
}

func addSource(s *source) uint32 {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.nextSource++
	s.id = rt.nextSource
	rt.sources = append(rt.sources, s)
	return s.id
}

func IdleAdd(data uintptr) uint32 { return addSource(&source{data: data}) }

func addInternalSource(fn func() bool) uint32 { return addSource(&source{fn: fn}) }

func releaseSource(s *source) {
	if s.fn == nil {
		mustCallbacks().Destroy(s.data)
	}
}

func SourceRemove(id uint32) bool {
	rt.mu.Lock()
	var found *source
	for idx, s := range rt.sources {
		if s.id == id {
			found = s
			rt.sources = append(rt.sources[:idx], rt.sources[idx+1:]...)
			break
		}
	}
	if found == nil {
		if s, ok := rt.running[id]; ok && !s.removed {
			// Released once its dispatch returns.
			s.removed = true
			rt.mu.Unlock()
			return true
		}
	}
	rt.mu.Unlock()
	if found == nil {
		critical("GLib", "Source ID %d was not found when attempting to remove it", id)
		return false
	}
	found.removed = true
	releaseSource(found)
	return true
}

// dispatchOne runs the oldest pending source and reports whether there was one.
func dispatchOne() bool {
	rt.mu.Lock()
	if len(rt.sources) == 0 {
		rt.mu.Unlock()
		return false
	}
	s := rt.sources[0]
	rt.sources = rt.sources[1:]
	rt.running[s.id] = s
	rt.mu.Unlock()

	var keep bool
	if s.fn != nil {
		keep = s.fn()
	} else {
		keep = mustCallbacks().Source(s.data)
	}

	rt.mu.Lock()
	delete(rt.running, s.id)
	if keep && !s.removed {
		rt.sources = append(rt.sources, s)
		rt.mu.Unlock()
		return true
	}
	rt.mu.Unlock()
	s.removed = true
	releaseSource(s)
	return true
}

func removeInternalSource(id uint32) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	for idx, s := range rt.sources {
		if s.id == id {
			rt.sources = append(rt.sources[:idx], rt.sources[idx+1:]...)
			return
		}
	}
}

type mainLoop struct {
	running bool
	quit    bool
}

func (l *mainLoop) run() {
	l.running = true
	l.quit = false
	for !l.quit {
		if !dispatchOne() {
			panic("ffi: headless main loop has no pending sources and would block forever")
		}
	}
	l.running = false
}

func lookupLoop(p unsafe.Pointer) *mainLoop {
	l, ok := rt.loops[p]
	if !ok {
		panic(fmt.Sprintf("ffi: %p is not a live GMainLoop", p))
	}
	return l
}

func MainLoopNew() unsafe.Pointer {
	l := &mainLoop{}
	p := unsafe.Pointer(l)
	rt.loops[p] = l
	return p
}

func MainLoopRun(p unsafe.Pointer)            { lookupLoop(p).run() }
func MainLoopQuit(p unsafe.Pointer)           { lookupLoop(p).quit = true }
func MainLoopIsRunning(p unsafe.Pointer) bool { return lookupLoop(p).running }
func MainLoopUnref(p unsafe.Pointer) {
	lookupLoop(p)
	delete(rt.loops, p)
}

func Main() {
	l := &mainLoop{}
	rt.gtkLoops = append(rt.gtkLoops, l)
	defer func() { rt.gtkLoops = rt.gtkLoops[:len(rt.gtkLoops)-1] }()
	l.run()
}

func MainQuit() {
	if len(rt.gtkLoops) == 0 {
		critical("Gtk", "gtk_main_quit: assertion 'main_loops != NULL' failed")
		return
	}
	rt.gtkLoops[len(rt.gtkLoops)-1].quit = true
}

func MainLevel() uint32 { return uint32(len(rt.gtkLoops)) }

func MainIterationDo(blocking bool) bool {
	if !dispatchOne() && blocking {
		panic("ffi: headless main iteration has no pending sources and would block forever")
	}
	if len(rt.gtkLoops) == 0 {
		return true
	}
	return rt.gtkLoops[len(rt.gtkLoops)-1].quit
}

func EventsPending() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return len(rt.sources) > 0
}
