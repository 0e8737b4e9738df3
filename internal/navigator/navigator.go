package navigator

// History is a LIFO stack of previously visited entries. The zero value is an
// empty, ready to use history.
type History[T any] struct {
	entries []T
}

// New returns an empty history.
func New[T any]() History[T] {
	return History[T]{}
}

// Push records an entry on top of the stack.
func (h *History[T]) Push(entry T) {
	h.entries = append(h.entries, entry)
}

// Pop removes and returns the top entry. Returns false if the history is
// empty.
func (h *History[T]) Pop() (T, bool) {
	var zero T
	if len(h.entries) == 0 {
		return zero, false
	}

	last := len(h.entries) - 1
	entry := h.entries[last]
	h.entries[last] = zero
	h.entries = h.entries[:last]
	return entry, true
}

func (h *History[T]) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the stack, oldest entry first.
func (h *History[T]) Entries() []T {
	out := make([]T, len(h.entries))
	copy(out, h.entries)
	return out
}

// Reset drops every entry.
func (h *History[T]) Reset() {
	h.entries = nil
}
