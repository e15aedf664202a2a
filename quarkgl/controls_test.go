package quarkgl

import (
	"math"
	"testing"
)

func TestOrbitFromPositionRoundTrip(t *testing.T) {
	pos := V3(10, 10, 30)
	c := OrbitFromPosition(V3(0, 0, 0), pos)

	var cam Camera
	c.Apply(&cam)
	if !nearV3(cam.Position, pos, 1e-3) {
		t.Fatalf("Apply: got %+v want %+v", cam.Position, pos)
	}
	if cam.Up != V3(0, 1, 0) {
		t.Fatalf("expected default up, got %+v", cam.Up)
	}
}

func TestOrbitZoomClamps(t *testing.T) {
	c := OrbitController{Radius: 5, MinRadius: 2, MaxRadius: 8}
	c.Zoom(-10)
	if c.Radius != 2 {
		t.Fatalf("zoom in: radius=%v", c.Radius)
	}
	c.Zoom(100)
	if c.Radius != 8 {
		t.Fatalf("zoom out: radius=%v", c.Radius)
	}
}

func TestOrbitPitchClamped(t *testing.T) {
	c := OrbitController{Radius: 3}
	c.Rotate(0, 10)
	if c.Pitch >= math.Pi/2 {
		t.Fatalf("pitch not clamped: %v", c.Pitch)
	}
}

func TestOrbitAutoRotate(t *testing.T) {
	c := OrbitController{Radius: 3, AutoRotate: 0.01}
	for i := 0; i < 100; i++ {
		c.Update()
	}
	if !near(c.Yaw, 1, 1e-4) {
		t.Fatalf("yaw after 100 updates = %v, want 1", c.Yaw)
	}
}

func TestOrbitDampingConverges(t *testing.T) {
	c := OrbitController{Radius: 3, Damping: 0.25}
	c.Rotate(1, 0)
	if c.Yaw != 0 {
		t.Fatalf("damped rotate applied immediately: %v", c.Yaw)
	}
	for i := 0; i < 200; i++ {
		c.Update()
	}
	if !near(c.Yaw, 1, 1e-3) {
		t.Fatalf("damped yaw = %v, want ~1", c.Yaw)
	}
}

func TestOrbitPanMovesTarget(t *testing.T) {
	c := OrbitController{Radius: 3}
	var cam Camera
	c.Apply(&cam)
	c.Pan(cam, 1, 0)
	if !near(c.Target.X, -1, 1e-5) || !near(c.Target.Y, 0, 1e-5) {
		t.Fatalf("pan target = %+v", c.Target)
	}
}
