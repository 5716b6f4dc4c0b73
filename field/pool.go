package field

import "iter"

// slot is one arena entry, dead slots keep their storage until compaction
type slot[T any] struct {
	value T
	alive bool
}

// Pool is a slot arena with a living flag per entry
// Removal marks the slot dead and keeps indices stable until Compact
type Pool[T any] struct {
	slots []slot[T]
	live  int
}

// Add appends a live entry and returns its slot index
func (p *Pool[T]) Add(v T) int {
	p.slots = append(p.slots, slot[T]{value: v, alive: true})
	p.live++
	return len(p.slots) - 1
}

// Len returns the number of live entries
func (p *Pool[T]) Len() int {
	return p.live
}

// Slots returns the number of slots including dead ones
func (p *Pool[T]) Slots() int {
	return len(p.slots)
}

// At returns the entry at slot i and whether it is alive
func (p *Pool[T]) At(i int) (*T, bool) {
	if i < 0 || i >= len(p.slots) || !p.slots[i].alive {
		return nil, false
	}
	return &p.slots[i].value, true
}

// Remove marks slot i dead, repeated removal is a no-op
func (p *Pool[T]) Remove(i int) {
	if i < 0 || i >= len(p.slots) || !p.slots[i].alive {
		return
	}
	p.slots[i].alive = false
	p.live--
}

// Compact drops dead slots preserving the order of live ones
func (p *Pool[T]) Compact() {
	if p.live == len(p.slots) {
		return
	}
	n := 0
	for i := range p.slots {
		if p.slots[i].alive {
			p.slots[n] = p.slots[i]
			n++
		}
	}
	clear(p.slots[n:])
	p.slots = p.slots[:n]
}

// Reset removes every entry, keeping capacity
func (p *Pool[T]) Reset() {
	clear(p.slots)
	p.slots = p.slots[:0]
	p.live = 0
}

// All yields live entries in slot order
// Entries removed during iteration are skipped if not yet visited
func (p *Pool[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range p.slots {
			if !p.slots[i].alive {
				continue
			}
			if !yield(i, &p.slots[i].value) {
				return
			}
		}
	}
}

// Backward yields live entries from the last slot to the first
func (p *Pool[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := len(p.slots) - 1; i >= 0; i-- {
			if !p.slots[i].alive {
				continue
			}
			if !yield(i, &p.slots[i].value) {
				return
			}
		}
	}
}

// After yields live entries with slot index greater than i
func (p *Pool[T]) After(i int) iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for j := i + 1; j < len(p.slots); j++ {
			if !p.slots[j].alive {
				continue
			}
			if !yield(j, &p.slots[j].value) {
				return
			}
		}
	}
}
