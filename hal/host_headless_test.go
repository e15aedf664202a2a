package hal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var logs bytes.Buffer
	h := newHost(HostConfig{Width: 8, Height: 4}, &logs)

	steps := 0
	err := runHeadless(context.Background(), h, func(got HAL) (func() error, error) {
		got.Logger().WriteLineString("setup")
		fb := got.Display().Framebuffer()
		if fb.Width() != 8 || fb.Height() != 4 || fb.Format() != PixelFormatRGBA8888 {
			t.Fatalf("framebuffer %dx%d format=%d", fb.Width(), fb.Height(), fb.Format())
		}
		return func() error {
			steps++
			return fb.Present()
		}, nil
	}, HeadlessConfig{Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps=%d, want 5", steps)
	}
	if got := h.t.Ticks(); got != 5 {
		t.Fatalf("ticks=%d, want 5", got)
	}
	if got := h.fb.presented(); got != 5 {
		t.Fatalf("presented=%d, want 5", got)
	}
	if !strings.Contains(logs.String(), "setup") {
		t.Fatalf("log missing setup line: %q", logs.String())
	}
}

func TestRunHeadlessPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	h := newHost(HostConfig{}, &bytes.Buffer{})
	err := runHeadless(context.Background(), h, func(HAL) (func() error, error) {
		return nil, boom
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("setup error = %v", err)
	}

	n := 0
	err = runHeadless(context.Background(), h, func(HAL) (func() error, error) {
		return func() error {
			n++
			if n == 3 {
				return boom
			}
			return nil
		}, nil
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) || n != 3 {
		t.Fatalf("step error = %v after %d steps", err, n)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	h := newHost(HostConfig{}, &bytes.Buffer{})
	err := runHeadless(ctx, h, func(HAL) (func() error, error) {
		return func() error { return nil }, nil
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestHostDefaults(t *testing.T) {
	h := New(HostConfig{})
	fb := h.Display().Framebuffer()
	if fb.Width() != 640 || fb.Height() != 480 || fb.StrideBytes() != 640*4 {
		t.Fatalf("default framebuffer %dx%d stride=%d", fb.Width(), fb.Height(), fb.StrideBytes())
	}
	if h.Input().Keyboard() == nil || h.Input().Pointer() == nil {
		t.Fatal("expected keyboard and pointer")
	}
}
