package quarkgl

import "math"

// OrbitController provides orbit/zoom/pan interactions for a camera.
//
// It does not depend on any input system: callers translate their input
// into Rotate/Zoom/Pan calls and invoke Update once per frame.
type OrbitController struct {
	Target Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar

	// MaxPitch bounds |Pitch|. Zero means just short of the poles.
	MaxPitch Scalar

	// AutoRotate is the idle yaw speed in radians per Update.
	AutoRotate Scalar

	// Damping in (0,1) makes Rotate/Pan impulses decay over several
	// updates. Zero applies them immediately.
	Damping Scalar

	velYaw   Scalar
	velPitch Scalar
	velPan   Vec3
}

// OrbitFromPosition builds a controller that reproduces a camera placed at
// pos looking at target.
func OrbitFromPosition(target, pos Vec3) OrbitController {
	off := pos.Sub(target)
	r := Len(off)
	c := OrbitController{Target: target, Radius: r}
	if r == 0 {
		return c
	}
	c.Yaw = Scalar(math.Atan2(float64(off.X), float64(off.Z)))
	c.Pitch = -Scalar(math.Asin(float64(off.Y / r)))
	return c
}

func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.Radius
	if r == 0 {
		r = Scalar(3)
	}
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}

	m := Mat4Mul(Mat4RotateY(c.Yaw), Mat4RotateX(c.Pitch))
	p := Mat4MulV4(m, Vec4{X: 0, Y: 0, Z: r, W: 1})

	cam.Position = c.Target.Add(V3(p.X, p.Y, p.Z))
	cam.Target = c.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	if c.Damping > 0 {
		c.velYaw += deltaYaw
		c.velPitch += deltaPitch
		return
	}
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	c.clampPitch()
}

func (c *OrbitController) Zoom(delta Scalar) {
	c.Radius += delta
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}

// Pan moves the orbit target in the camera's screen plane.
func (c *OrbitController) Pan(cam Camera, dx, dy Scalar) {
	f := Normalize(cam.Target.Sub(cam.Position))
	up := cam.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	right := Normalize(Cross(f, up))
	camUp := Cross(right, f)
	move := right.Mul(-dx).Add(camUp.Mul(dy))
	if c.Damping > 0 {
		c.velPan = c.velPan.Add(move)
		return
	}
	c.Target = c.Target.Add(move)
}

// Update advances auto-rotation and damped motion by one frame.
func (c *OrbitController) Update() {
	c.Yaw += c.AutoRotate
	if c.Damping > 0 {
		c.Yaw += c.velYaw * c.Damping
		c.Pitch += c.velPitch * c.Damping
		c.Target = c.Target.Add(c.velPan.Mul(c.Damping))
		keep := 1 - c.Damping
		c.velYaw *= keep
		c.velPitch *= keep
		c.velPan = c.velPan.Mul(keep)
	}
	c.clampPitch()
}

func (c *OrbitController) clampPitch() {
	limit := c.MaxPitch
	if limit == 0 {
		limit = Scalar(math.Pi/2 - 1e-3)
	}
	if c.Pitch > limit {
		c.Pitch = limit
	}
	if c.Pitch < -limit {
		c.Pitch = -limit
	}
}
