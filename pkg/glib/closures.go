package glib

import "sync"

// handles boxes Go values passed to C as userdata. C only ever sees the integer key,
// so no Go pointer crosses the boundary. Entries are removed by the matching
// destroy-notify, weak notify or source release.
type handles struct {
	mu    sync.Mutex
	next  uintptr
	items map[uintptr]any
}

var closures = &handles{items: make(map[uintptr]any)}

func (h *handles) register(v any) uintptr {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.items[h.next] = v
	return h.next
}

func (h *handles) get(key uintptr) (any, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.items[key]
	return v, ok
}

func (h *handles) release(key uintptr) (any, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.items[key]
	delete(h.items, key)
	return v, ok
}

func (h *handles) len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.items)
}

// LiveHandles returns the number of closures currently referenced from C.
func LiveHandles() int { return closures.len() }
