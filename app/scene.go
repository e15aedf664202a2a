package app

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"helix/geometry"
	"helix/helix"
	"helix/internal/config"
	"helix/quarkgl"
)

var (
	// ErrQuit is returned by the step function when the user asks to exit.
	ErrQuit = errors.New("app: quit")

	ErrSceneFull = errors.New("app: scene full")
)

// Camera and group placement of the helix.
var (
	cameraStart = quarkgl.V3(10, 10, 30)
	groupEuler  = [3]quarkgl.Scalar{math.Pi / 3, 3 * math.Pi / 4, math.Pi / 4}
)

const (
	cameraFOVY = 75 * math.Pi / 180
	cameraNear = 0.1
	cameraFar  = 1000
)

// Scene is the state of one helix view: the computed geometry, the
// renderable world built from it and the orbit camera.
type Scene struct {
	Settings config.Settings
	Helix    helix.HelixConfig
	Ribbon   helix.RibbonConfig
	Colors   config.Colors

	Placements []helix.SegmentPlacement
	Centerline []helix.Point
	Ribbons    [2]helix.Ribbon

	World *quarkgl.Scene
	Orbit quarkgl.OrbitController

	home       quarkgl.OrbitController
	segmentIDs []int
	ribbonIDs  [2]int
	hideRibbon bool
}

// NewScene computes the helix geometry for s and assembles the world.
// seed drives the kink jitter and the palette choice.
func NewScene(s config.Settings, seed int64) (*Scene, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	h, err := s.Helix()
	if err != nil {
		return nil, err
	}
	colors, err := s.Colors()
	if err != nil {
		return nil, err
	}
	jitter, err := s.Jitter(seed)
	if err != nil {
		return nil, err
	}

	sc := &Scene{
		Settings: s,
		Helix:    h,
		Ribbon:   s.Ribbon(),
		Colors:   colors,
	}

	sc.Placements, err = helix.PlaceStrands(h, jitter)
	if err != nil {
		return nil, fmt.Errorf("place strands: %w", err)
	}
	sc.Centerline, err = helix.RibbonCurve(h, sc.Ribbon)
	if err != nil {
		return nil, fmt.Errorf("ribbon curve: %w", err)
	}
	sc.Ribbons = helix.Ribbons(sc.Centerline)

	sc.World = quarkgl.CreateScene(len(sc.Placements) + len(sc.Ribbons))
	sc.setupWorld()

	if err := sc.addSegments(rand.New(rand.NewSource(seed + 1))); err != nil {
		return nil, err
	}
	if err := sc.addRibbons(); err != nil {
		return nil, err
	}

	sc.Orbit = quarkgl.OrbitFromPosition(quarkgl.Vec3{}, cameraStart)
	sc.Orbit.MinRadius = 2
	sc.Orbit.MaxRadius = 400
	sc.Orbit.AutoRotate = quarkgl.Scalar(s.AutoRotate)
	sc.Orbit.Damping = quarkgl.Scalar(s.Damping)
	sc.home = sc.Orbit
	applyOrbit(&sc.Orbit, &sc.World.Camera)
	return sc, nil
}

func (sc *Scene) setupWorld() {
	w := sc.World
	w.Root = quarkgl.Mat4EulerXYZ(groupEuler[0], groupEuler[1], groupEuler[2])

	w.Camera.Type = quarkgl.CameraPerspective
	w.Camera.FOVYRad = cameraFOVY
	w.Camera.Near = cameraNear
	w.Camera.Far = cameraFar
	w.Camera.Up = quarkgl.V3(0, 1, 0)

	// White directional light from (0,1,1) plus a 0x40 grey ambient.
	w.Light.Mode = quarkgl.LightAmbientDirectional
	w.Light.Ambient = quarkgl.Scalar(0x40) / 0xFF
	w.Light.Dir = quarkgl.Normalize(quarkgl.V3(0, -1, -1))
	w.Light.DirAmount = 1
}

func (sc *Scene) addSegments(rng *rand.Rand) error {
	cyl, err := geometry.Cylinder(sc.Helix.MinorRadius, sc.Helix.MajorHeight, sc.Helix.EdgeCount)
	if err != nil {
		return fmt.Errorf("segment mesh: %w", err)
	}
	palette := sc.Colors.Palette

	sc.segmentIDs = make([]int, 0, len(sc.Placements))
	for _, p := range sc.Placements {
		m := cyl
		m.Transform = geometry.SegmentTransform(toVec3(p.Position), p.Rotation)
		attachMaterial(&m, palette[rng.Intn(len(palette))], 0)
		id := sc.World.AddMesh(m)
		if id < 0 {
			return fmt.Errorf("%w: segment %v", ErrSceneFull, p)
		}
		sc.segmentIDs = append(sc.segmentIDs, id)
	}
	return nil
}

func (sc *Scene) addRibbons() error {
	shape := toShape(helix.CrossSection(sc.Ribbon))
	mesh, err := geometry.ExtrudePath(shape, toVec3s(sc.Centerline), sc.Ribbon.SampleCount(sc.Helix))
	if err != nil {
		return fmt.Errorf("extrude ribbon: %w", err)
	}
	for i, rb := range sc.Ribbons {
		m := mesh
		m.Transform = quarkgl.Mat4RotateZ(quarkgl.Scalar(rb.RotationZ))
		attachMaterial(&m, sc.Colors.Ribbons[i], MaterialDoubleSided)
		id := sc.World.AddMesh(m)
		if id < 0 {
			return fmt.Errorf("%w: ribbon %d", ErrSceneFull, i)
		}
		sc.ribbonIDs[i] = id
	}
	return nil
}

// Tick advances the camera by one frame.
func (sc *Scene) Tick() {
	sc.Orbit.Update()
	applyOrbit(&sc.Orbit, &sc.World.Camera)
}

// ResetView returns the orbit camera to its starting pose.
func (sc *Scene) ResetView() {
	auto := sc.Orbit.AutoRotate
	sc.Orbit = sc.home
	sc.Orbit.AutoRotate = auto
	applyOrbit(&sc.Orbit, &sc.World.Camera)
}

// ToggleProjection switches the camera between perspective and
// orthographic projection.
func (sc *Scene) ToggleProjection() {
	cam := &sc.World.Camera
	if cam.Type == quarkgl.CameraOrtho {
		cam.Type = quarkgl.CameraPerspective
	} else {
		cam.Type = quarkgl.CameraOrtho
	}
	applyOrbit(&sc.Orbit, cam)
}

// ToggleRibbons shows or hides both ribbons.
func (sc *Scene) ToggleRibbons() {
	sc.hideRibbon = !sc.hideRibbon
	for _, id := range sc.ribbonIDs {
		sc.World.SetMeshEnabled(id, !sc.hideRibbon)
	}
}

// RibbonsVisible reports whether the ribbons are drawn.
func (sc *Scene) RibbonsVisible() bool { return !sc.hideRibbon }

// applyOrbit places cam and sizes an orthographic view to match the
// perspective frustum's height at the orbit target.
func applyOrbit(o *quarkgl.OrbitController, cam *quarkgl.Camera) {
	o.Apply(cam)
	cam.OrthoSize = quarkgl.Len(cam.Target.Sub(cam.Position)) * quarkgl.Scalar(math.Tan(float64(cam.FOVYRad)/2))
}

// CameraAt returns the current camera orbited by an extra yaw, leaving the
// scene untouched.
func (sc *Scene) CameraAt(yaw float64) quarkgl.Camera {
	o := sc.Orbit
	o.Yaw += quarkgl.Scalar(yaw)
	cam := sc.World.Camera
	applyOrbit(&o, &cam)
	return cam
}

// Stats reports mesh, vertex and triangle counts.
func (sc *Scene) Stats() quarkgl.SceneStats { return sc.World.Stats() }

func toVec3(p helix.Point) quarkgl.Vec3 { return quarkgl.V3f(p.X, p.Y, p.Z) }

func toVec3s(ps []helix.Point) []quarkgl.Vec3 {
	out := make([]quarkgl.Vec3, len(ps))
	for i, p := range ps {
		out[i] = toVec3(p)
	}
	return out
}

func toShape(ps []helix.Point2) []quarkgl.Vec2 {
	out := make([]quarkgl.Vec2, len(ps))
	for i, p := range ps {
		out[i] = quarkgl.V2(quarkgl.Scalar(p.X), quarkgl.Scalar(p.Y))
	}
	return out
}
