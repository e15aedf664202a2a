package geometry

import (
	"math"
	"sort"

	"helix/quarkgl"
)

// CurveType selects the Catmull-Rom parameterization.
type CurveType uint8

const (
	Centripetal CurveType = iota
	Chordal
	Uniform
)

// DefaultArcLengthDivisions is the resolution of the arc-length table used
// for evenly spaced sampling.
const DefaultArcLengthDivisions = 200

const tangentDelta = 1e-4

// Curve is a parametric 3D curve over t in [0,1].
type Curve interface {
	Point(t float64) quarkgl.Vec3
}

// CatmullRom is an open Catmull-Rom spline through Points.
//
// The end segments use mirrored phantom points, so the curve starts at the
// first point and ends at the last.
type CatmullRom struct {
	Points  []quarkgl.Vec3
	Type    CurveType
	Tension float64 // Uniform only; zero means 0.5.

	ArcLengthDivisions int

	lengths []float64
}

// NewCatmullRom returns a centripetal spline through points. The slice is
// not copied.
func NewCatmullRom(points []quarkgl.Vec3) *CatmullRom {
	return &CatmullRom{Points: points, Type: Centripetal}
}

// Point returns the curve position at t in [0,1].
func (c *CatmullRom) Point(t float64) quarkgl.Vec3 {
	switch len(c.Points) {
	case 0:
		return quarkgl.Vec3{}
	case 1:
		return c.Points[0]
	}
	return toF(c.point(t))
}

func (c *CatmullRom) point(t float64) vec3d {
	l := len(c.Points)
	if l < 2 {
		return toD(c.Point(t))
	}

	p := float64(l-1) * t
	seg := int(math.Floor(p))
	weight := p - float64(seg)
	if seg < 0 {
		seg, weight = 0, 0
	}
	if seg >= l-1 {
		seg, weight = l-2, 1
	}

	p1 := toD(c.Points[seg])
	p2 := toD(c.Points[seg+1])
	var p0, p3 vec3d
	if seg > 0 {
		p0 = toD(c.Points[seg-1])
	} else {
		p0 = p1.sub(p2).add(p1)
	}
	if seg+2 < l {
		p3 = toD(c.Points[seg+2])
	} else {
		p3 = p2.sub(p1).add(p2)
	}

	var px, py, pz cubicPoly
	switch c.Type {
	case Centripetal, Chordal:
		pow := 0.25
		if c.Type == Chordal {
			pow = 0.5
		}
		dt0 := math.Pow(p0.distSq(p1), pow)
		dt1 := math.Pow(p1.distSq(p2), pow)
		dt2 := math.Pow(p2.distSq(p3), pow)
		if dt1 < 1e-4 {
			dt1 = 1
		}
		if dt0 < 1e-4 {
			dt0 = dt1
		}
		if dt2 < 1e-4 {
			dt2 = dt1
		}
		px.initNonuniform(p0.x, p1.x, p2.x, p3.x, dt0, dt1, dt2)
		py.initNonuniform(p0.y, p1.y, p2.y, p3.y, dt0, dt1, dt2)
		pz.initNonuniform(p0.z, p1.z, p2.z, p3.z, dt0, dt1, dt2)
	default:
		tension := c.Tension
		if tension == 0 {
			tension = 0.5
		}
		px.initUniform(p0.x, p1.x, p2.x, p3.x, tension)
		py.initUniform(p0.y, p1.y, p2.y, p3.y, tension)
		pz.initUniform(p0.z, p1.z, p2.z, p3.z, tension)
	}

	return vec3d{px.at(weight), py.at(weight), pz.at(weight)}
}

// Length returns the approximate arc length.
func (c *CatmullRom) Length() float64 {
	ls := c.arcLengths()
	return ls[len(ls)-1]
}

// PointAt returns the position at arc-length fraction u in [0,1].
func (c *CatmullRom) PointAt(u float64) quarkgl.Vec3 {
	return c.Point(c.uToT(u))
}

// TangentAt returns the unit tangent at arc-length fraction u.
func (c *CatmullRom) TangentAt(u float64) quarkgl.Vec3 {
	t := c.uToT(u)
	a := c.point(math.Max(t-tangentDelta, 0))
	b := c.point(math.Min(t+tangentDelta, 1))
	return toF(b.sub(a).normalize())
}

// SpacedPoints returns divisions+1 points evenly spaced by arc length.
func (c *CatmullRom) SpacedPoints(divisions int) []quarkgl.Vec3 {
	if divisions < 1 {
		divisions = 1
	}
	out := make([]quarkgl.Vec3, divisions+1)
	for d := 0; d <= divisions; d++ {
		out[d] = c.PointAt(float64(d) / float64(divisions))
	}
	return out
}

func (c *CatmullRom) arcLengths() []float64 {
	if c.lengths != nil {
		return c.lengths
	}
	div := c.ArcLengthDivisions
	if div <= 0 {
		div = DefaultArcLengthDivisions
	}
	ls := make([]float64, div+1)
	last := c.point(0)
	for i := 1; i <= div; i++ {
		cur := c.point(float64(i) / float64(div))
		ls[i] = ls[i-1] + math.Sqrt(cur.distSq(last))
		last = cur
	}
	c.lengths = ls
	return ls
}

// uToT maps an arc-length fraction to the curve parameter.
func (c *CatmullRom) uToT(u float64) float64 {
	ls := c.arcLengths()
	n := len(ls)
	total := ls[n-1]
	if total == 0 {
		return u
	}
	target := u * total

	// Last index whose length is <= target.
	i := sort.Search(n, func(i int) bool { return ls[i] > target }) - 1
	if i < 0 {
		i = 0
	}
	if i >= n-1 {
		return 1
	}
	if ls[i] == target {
		return float64(i) / float64(n-1)
	}
	seg := ls[i+1] - ls[i]
	frac := (target - ls[i]) / seg
	return (float64(i) + frac) / float64(n-1)
}

// Tangent estimates the unit tangent of any curve at t by central
// differences.
func Tangent(c Curve, t float64) quarkgl.Vec3 {
	t1 := math.Max(t-tangentDelta, 0)
	t2 := math.Min(t+tangentDelta, 1)
	a := toD(c.Point(t1))
	b := toD(c.Point(t2))
	return toF(b.sub(a).normalize())
}

type cubicPoly struct {
	c0, c1, c2, c3 float64
}

// init sets a Hermite cubic with end values x0, x1 and end slopes t0, t1.
func (p *cubicPoly) init(x0, x1, t0, t1 float64) {
	p.c0 = x0
	p.c1 = t0
	p.c2 = -3*x0 + 3*x1 - 2*t0 - t1
	p.c3 = 2*x0 - 2*x1 + t0 + t1
}

func (p *cubicPoly) initUniform(x0, x1, x2, x3, tension float64) {
	p.init(x1, x2, tension*(x2-x0), tension*(x3-x1))
}

func (p *cubicPoly) initNonuniform(x0, x1, x2, x3, dt0, dt1, dt2 float64) {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	p.init(x1, x2, t1*dt1, t2*dt1)
}

func (p cubicPoly) at(t float64) float64 {
	t2 := t * t
	return p.c0 + p.c1*t + p.c2*t2 + p.c3*t2*t
}

// vec3d keeps curve math in float64.
type vec3d struct {
	x, y, z float64
}

func toD(v quarkgl.Vec3) vec3d {
	return vec3d{float64(v.X), float64(v.Y), float64(v.Z)}
}

func toF(v vec3d) quarkgl.Vec3 { return quarkgl.V3f(v.x, v.y, v.z) }

func (a vec3d) add(b vec3d) vec3d { return vec3d{a.x + b.x, a.y + b.y, a.z + b.z} }
func (a vec3d) sub(b vec3d) vec3d { return vec3d{a.x - b.x, a.y - b.y, a.z - b.z} }

func (a vec3d) distSq(b vec3d) float64 {
	d := a.sub(b)
	return d.x*d.x + d.y*d.y + d.z*d.z
}

func (a vec3d) normalize() vec3d {
	l := math.Sqrt(a.x*a.x + a.y*a.y + a.z*a.z)
	if l == 0 {
		return vec3d{}
	}
	return vec3d{a.x / l, a.y / l, a.z / l}
}
