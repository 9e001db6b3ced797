// Package ring provides a fixed-capacity circular buffer that overwrites its
// oldest entry once full.
package ring

// Ring is a fixed-size circular buffer. All slots always exist; unwritten
// slots hold the fill value given at construction or the last Fill call.
type Ring[T any] struct {
	slots   []T
	cursor  int
	written int
}

// New creates a ring with the given capacity, every slot set to fill.
// Capacity must be positive.
func New[T any](capacity int, fill T) *Ring[T] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	r := &Ring[T]{slots: make([]T, capacity)}
	r.Fill(fill)
	return r
}

// Push writes v at the cursor and advances it, wrapping at capacity.
func (r *Ring[T]) Push(v T) {
	r.slots[r.cursor] = v
	r.cursor = (r.cursor + 1) % len(r.slots)
	if r.written < len(r.slots) {
		r.written++
	}
}

// Fill sets every slot to v and rewinds the cursor.
func (r *Ring[T]) Fill(v T) {
	for i := range r.slots {
		r.slots[i] = v
	}
	r.cursor = 0
	r.written = 0
}

// Cap returns the fixed number of slots.
func (r *Ring[T]) Cap() int {
	return len(r.slots)
}

// Len returns how many slots have been written since the last Fill,
// saturating at Cap.
func (r *Ring[T]) Len() int {
	return r.written
}

// Cursor returns the slot index the next Push writes to.
func (r *Ring[T]) Cursor() int {
	return r.cursor
}

// At returns the raw slot at index i (mod capacity), independent of the cursor.
func (r *Ring[T]) At(i int) T {
	n := len(r.slots)
	return r.slots[((i%n)+n)%n]
}

// Slots returns a copy of the raw slots in storage order.
func (r *Ring[T]) Slots() []T {
	out := make([]T, len(r.slots))
	copy(out, r.slots)
	return out
}

// Recent returns the written values, oldest first.
func (r *Ring[T]) Recent() []T {
	out := make([]T, 0, r.written)
	start := r.cursor - r.written
	for i := 0; i < r.written; i++ {
		out = append(out, r.At(start+i))
	}
	return out
}

// MatchesRotation reports whether the raw slots, read circularly from some
// starting offset, equal target. target must have exactly Cap elements.
// The cursor is ignored, so any rotation of target matches.
func MatchesRotation[T comparable](r *Ring[T], target []T) bool {
	n := len(r.slots)
	if len(target) != n {
		return false
	}
	for offset := 0; offset < n; offset++ {
		matched := true
		for i := 0; i < n; i++ {
			if r.slots[(i+offset)%n] != target[i] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}
