package field

import (
	"slices"
	"testing"
)

func collect(p *Pool[int]) []int {
	var out []int
	for _, v := range p.All() {
		out = append(out, *v)
	}
	return out
}

func TestPoolRemoveAndCompact(t *testing.T) {
	var p Pool[int]
	for i := 0; i < 5; i++ {
		p.Add(i * 10)
	}

	p.Remove(1)
	p.Remove(3)
	p.Remove(3) // repeated removal is a no-op

	if p.Len() != 3 {
		t.Fatalf("Len = %d, want 3", p.Len())
	}
	if p.Slots() != 5 {
		t.Errorf("Slots before compact = %d, want 5", p.Slots())
	}
	if _, ok := p.At(1); ok {
		t.Error("removed slot reported alive")
	}
	if got := collect(&p); !slices.Equal(got, []int{0, 20, 40}) {
		t.Errorf("All = %v, want [0 20 40]", got)
	}

	p.Compact()
	if p.Slots() != 3 {
		t.Errorf("Slots after compact = %d, want 3", p.Slots())
	}
	if v, ok := p.At(1); !ok || *v != 20 {
		t.Errorf("At(1) after compact = %v,%v want 20,true", v, ok)
	}
	if got := collect(&p); !slices.Equal(got, []int{0, 20, 40}) {
		t.Errorf("order not preserved after compact: %v", got)
	}
}

func TestPoolBackwardSkipsRemoved(t *testing.T) {
	var p Pool[int]
	for i := 0; i < 4; i++ {
		p.Add(i)
	}

	var seen []int
	for i, v := range p.Backward() {
		seen = append(seen, *v)
		// Removing an unvisited lower slot hides it from the rest of the walk
		if i == 3 {
			p.Remove(1)
		}
	}
	if !slices.Equal(seen, []int{3, 2, 0}) {
		t.Errorf("Backward = %v, want [3 2 0]", seen)
	}
}

func TestPoolAfter(t *testing.T) {
	var p Pool[int]
	for i := 0; i < 5; i++ {
		p.Add(i)
	}
	p.Remove(3)

	var got []int
	for j := range p.After(1) {
		got = append(got, j)
	}
	if !slices.Equal(got, []int{2, 4}) {
		t.Errorf("After(1) indices = %v, want [2 4]", got)
	}
}

func TestPoolEarlyBreak(t *testing.T) {
	var p Pool[int]
	for i := 0; i < 10; i++ {
		p.Add(i)
	}
	n := 0
	for range p.All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d entries, want 3", n)
	}
}

func TestPoolReset(t *testing.T) {
	var p Pool[int]
	p.Add(1)
	p.Add(2)
	p.Reset()
	if p.Len() != 0 || p.Slots() != 0 {
		t.Errorf("after Reset Len=%d Slots=%d", p.Len(), p.Slots())
	}
	p.Add(3)
	if got := collect(&p); !slices.Equal(got, []int{3}) {
		t.Errorf("after Reset and Add: %v", got)
	}
}
