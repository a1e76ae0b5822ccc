package shell

import "sync"

// History records shell transitions.
//
// Push adds a new entry the visitor can navigate back from; Replace rewrites
// the current entry in place.
type History interface {
	Push(Entry)
	Replace(Entry)
}

// MemoryHistory is an ordered in-process history log with a cursor.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []Entry
	cursor  int
}

// NewMemoryHistory starts a log at initial.
func NewMemoryHistory(initial Entry) *MemoryHistory {
	return &MemoryHistory{entries: []Entry{initial}}
}

// Push appends e after the cursor, discarding forward entries.
func (h *MemoryHistory) Push(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.cursor+1], e)
	h.cursor = len(h.entries) - 1
}

// Replace overwrites the entry under the cursor.
func (h *MemoryHistory) Replace(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		h.entries = []Entry{e}
		h.cursor = 0
		return
	}
	h.entries[h.cursor] = e
}

// Back moves the cursor one entry back.
func (h *MemoryHistory) Back() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor == 0 {
		return Entry{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Forward moves the cursor one entry forward.
func (h *MemoryHistory) Forward() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor >= len(h.entries)-1 {
		return Entry{}, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Current returns the entry under the cursor.
func (h *MemoryHistory) Current() Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return Entry{}
	}
	return h.entries[h.cursor]
}

// Len returns the number of recorded entries.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

type discardHistory struct{}

func (discardHistory) Push(Entry)    {}
func (discardHistory) Replace(Entry) {}
