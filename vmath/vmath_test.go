package vmath

import (
	"math"
	"testing"
)

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range at %d: %f", i, v)
		}
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(7)
	b := NewFastRand(7)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at %d", i)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Zero seed should be remapped, generator stuck at zero")
	}
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(3)
	for i := 0; i < 1000; i++ {
		v := r.Range(80, 200)
		if v < 80 || v >= 200 {
			t.Fatalf("Range out of bounds: %f", v)
		}
	}
}

func TestFromAngle(t *testing.T) {
	x, y := FromAngle(math.Pi/2, 3)
	if math.Abs(x) > 1e-12 || math.Abs(y-3) > 1e-12 {
		t.Errorf("Expected (0, 3), got (%f, %f)", x, y)
	}
}

func TestDistance(t *testing.T) {
	dx, dy, d := Distance(1, 1, 4, 5)
	if dx != 3 || dy != 4 || d != 5 {
		t.Errorf("Expected (3, 4, 5), got (%f, %f, %f)", dx, dy, d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 0, 10, 5},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%f, %f, %f) = %f, want %f", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
