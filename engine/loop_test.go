package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func waitDone(t *testing.T, l *Loop) {
	t.Helper()
	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit")
	}
}

func TestLoopFrameFuncEnds(t *testing.T) {
	var calls atomic.Uint64
	l := NewLoop(240, func(frame uint64) bool {
		calls.Add(1)
		return frame < 5
	})

	l.Start()
	waitDone(t, l)

	if got := calls.Load(); got != 5 {
		t.Errorf("frame calls = %d, want 5", got)
	}
	if l.Frames() != 5 {
		t.Errorf("Frames() = %d, want 5", l.Frames())
	}
	if l.Running() {
		t.Error("loop still running after exit")
	}

	// Stop after a natural exit must not block
	l.Stop()
}

func TestLoopStop(t *testing.T) {
	started := make(chan struct{})
	var once atomic.Bool
	l := NewLoop(240, func(frame uint64) bool {
		if once.CompareAndSwap(false, true) {
			close(started)
		}
		return true
	})

	l.Start()
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("first frame never ran")
	}

	l.Stop()
	waitDone(t, l)

	after := l.Frames()
	time.Sleep(20 * time.Millisecond)
	if l.Frames() != after {
		t.Error("frames advanced after Stop")
	}

	// Idempotent
	l.Stop()
}

func TestLoopStartOnce(t *testing.T) {
	var calls atomic.Uint64
	l := NewLoop(240, func(frame uint64) bool {
		calls.Add(1)
		return false
	})

	l.Start()
	l.Start()
	waitDone(t, l)
	l.Start()

	time.Sleep(10 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("frame calls = %d, want 1", got)
	}
}

func TestLoopInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{1000, time.Second / 60},
	}
	for _, tt := range tests {
		if got := NewLoop(tt.fps, nil).Interval(); got != tt.want {
			t.Errorf("NewLoop(%d).Interval() = %v, want %v", tt.fps, got, tt.want)
		}
	}
}

func TestStopBeforeStart(t *testing.T) {
	l := NewLoop(60, func(uint64) bool { return true })
	l.Stop()
	l.Start()
	waitDone(t, l)
	if l.Frames() != 0 {
		t.Errorf("frames = %d after stop-before-start", l.Frames())
	}
}

func TestSetCrashCleanup(t *testing.T) {
	called := false
	SetCrashCleanup(func() { called = true })
	defer SetCrashCleanup(nil)

	// nil panic value is a no-op and must not run cleanup or exit
	HandleCrash(nil)
	if called {
		t.Error("cleanup ran for nil panic value")
	}
}
