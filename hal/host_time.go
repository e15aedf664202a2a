package hal

import (
	"sync"
	"time"
)

type hostTime struct {
	mu  sync.Mutex
	seq uint64
	fps float64

	last time.Time
	now  func() time.Time
}

func newHostTime() *hostTime {
	return &hostTime{now: time.Now}
}

func (t *hostTime) Ticks() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seq
}

func (t *hostTime) FPS() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fps
}

// step records one frame.
func (t *hostTime) step() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.seq++
	if t.last.IsZero() {
		t.last = now
		return
	}
	dt := now.Sub(t.last)
	t.last = now
	if dt <= 0 {
		return
	}

	const smoothing = 0.1
	inst := float64(time.Second) / float64(dt)
	if t.fps == 0 {
		t.fps = inst
		return
	}
	t.fps += (inst - t.fps) * smoothing
}
