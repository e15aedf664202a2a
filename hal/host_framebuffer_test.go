package hal

import (
	"testing"
	"time"
)

func TestFramebufferClearAndSnapshot(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	fb.ClearRGB(0x22, 0x55, 0x66)

	dst := make([]byte, len(fb.Buffer()))
	fb.snapshot(dst)
	for i := 0; i < len(dst); i += 4 {
		if dst[i] != 0x22 || dst[i+1] != 0x55 || dst[i+2] != 0x66 || dst[i+3] != 0xFF {
			t.Fatalf("pixel %d = % x", i/4, dst[i:i+4])
		}
	}
}

func TestHostTimeFPS(t *testing.T) {
	now := time.Unix(0, 0)
	ht := newHostTime()
	ht.now = func() time.Time { return now }

	for i := 0; i < 50; i++ {
		ht.step()
		now = now.Add(20 * time.Millisecond)
	}
	if ht.Ticks() != 50 {
		t.Fatalf("ticks=%d", ht.Ticks())
	}
	if fps := ht.FPS(); fps < 49.9 || fps > 50.1 {
		t.Fatalf("fps=%v, want 50", fps)
	}
}
