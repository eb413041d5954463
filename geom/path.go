// path.go — Path/Vertex primitives, arc flattening, and arc-aware stroking
// into closed outline polygons.
//
// Complexity notes: flattening an arc costs O(steps) where steps is derived
// from the arc's included angle and the caller's tolerance; stroking a path
// of N vertices costs O(N*steps) for the worst arc-heavy path.
package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vertex is one point of a Path together with the arc angle used to reach
// the *next* vertex. Arc == 0 means a straight segment. The final vertex's
// Arc field is never consulted (there is no vertex after it).
type Vertex struct {
	Pos Point
	Arc Angle
}

// Path is an ordered sequence of vertices. It is closed iff the first and
// last vertex positions coincide.
type Path struct {
	Vertices []Vertex
}

// Closed reports whether the path's first and last vertices coincide.
func (p Path) Closed() bool {
	if len(p.Vertices) < 2 {
		return false
	}
	first := p.Vertices[0].Pos
	last := p.Vertices[len(p.Vertices)-1].Pos
	return first == last
}

// Translated returns a copy of p with every vertex shifted by d.
func (p Path) Translated(d Point) Path {
	out := Path{Vertices: make([]Vertex, len(p.Vertices))}
	for i, v := range p.Vertices {
		out.Vertices[i] = Vertex{Pos: v.Pos.Add(d), Arc: v.Arc}
	}
	return out
}

// Circle returns a closed Path approximating a circle of diameter d, made
// of two 180-degree arcs so it both closes exactly and carries a usable arc
// angle for downstream flattening.
func Circle(d PositiveLength) Path {
	r := d.Value() / 2
	half := AngleFromDegrees(180)
	return Path{Vertices: []Vertex{
		{Pos: Point{X: r, Y: 0}, Arc: half},
		{Pos: Point{X: -r, Y: 0}, Arc: half},
		{Pos: Point{X: r, Y: 0}, Arc: 0},
	}}
}

// Obround returns the closed outline of a straight stroke of width w between
// p1 and p2: a rectangle capped by two semicircles of diameter w.
func Obround(p1, p2 Point, w PositiveLength) (Path, error) {
	d := p2.Sub(p1)
	if d.X == 0 && d.Y == 0 {
		return Path{}, fmt.Errorf("geom.Obround(%v,%v): %w", p1, p2, ErrGeometryDomain)
	}
	n := unitNormal(p1, p2)
	r := float64(w.Value()) / 2
	off := Point{X: Length(math.Round(n.X * r)), Y: Length(math.Round(n.Y * r))}
	a := p1.Add(off)
	b := p2.Add(off)
	c := p2.Sub(off)
	e := p1.Sub(off)
	half := AngleFromDegrees(180)
	return Path{Vertices: []Vertex{
		{Pos: a, Arc: 0},
		{Pos: b, Arc: half},
		{Pos: c, Arc: 0},
		{Pos: e, Arc: half},
		{Pos: a, Arc: 0},
	}}, nil
}

// ToOutlineStrokes buffers the path by half of w on both sides and returns
// the single closed outline ring. For an open path the ring runs
// counter-clockwise: the right-hand offset chain, a semicircular cap of
// diameter w at the end, the left-hand chain back, and a cap at the start
// (an obround for a single straight segment). For a closed path no caps are
// added; the two offset chains are joined by a straight seam at the first
// vertex, giving a band around the path. Offsets of consecutive segments
// are connected by straight segments; no round joins are inserted at
// interior vertices. Arcs are flattened to the chord tolerance tol before
// buffering, per the max-arc-tolerance contract shared with the polygon
// algebra.
func (p Path) ToOutlineStrokes(w PositiveLength, tol UnsignedLength) (Path, error) {
	if len(p.Vertices) < 2 {
		return Path{}, fmt.Errorf("geom.Path.ToOutlineStrokes: %w", ErrGeometryDomain)
	}
	pts := p.Flatten(tol)
	if len(pts) < 2 {
		return Path{}, fmt.Errorf("geom.Path.ToOutlineStrokes: %w", ErrGeometryDomain)
	}
	r := float64(w.Value()) / 2
	closed := p.Closed()

	left := make([]Point, 0, len(pts)*2)
	right := make([]Point, 0, len(pts)*2)
	for i := 0; i < len(pts)-1; i++ {
		n := unitNormal(pts[i], pts[i+1])
		off := Point{X: Length(math.Round(n.X * r)), Y: Length(math.Round(n.Y * r))}
		left = append(left, pts[i].Add(off), pts[i+1].Add(off))
		right = append(right, pts[i].Sub(off), pts[i+1].Sub(off))
	}

	out := Path{}
	out.Vertices = append(out.Vertices, toStraightVertices(right)...)
	if !closed {
		out.Vertices = append(out.Vertices, Vertex{Pos: right[len(right)-1], Arc: AngleFromDegrees(180)})
	}
	revLeft := reversePoints(left)
	out.Vertices = append(out.Vertices, toStraightVertices(revLeft)...)
	if !closed {
		out.Vertices = append(out.Vertices, Vertex{Pos: revLeft[len(revLeft)-1], Arc: AngleFromDegrees(180)})
	}
	out.Vertices = append(out.Vertices, Vertex{Pos: right[0], Arc: 0})
	return out, nil
}

// Flatten converts the path's arcs into straight-segment chains whose chord
// deviates from the true arc by no more than tol. A tol of 0, or one not
// smaller than the arc's radius, falls back to 1% of the radius, since the
// arc still needs a finite polygon approximation.
func (p Path) Flatten(tol UnsignedLength) []Point {
	if len(p.Vertices) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(p.Vertices)*4)
	for i := 0; i < len(p.Vertices)-1; i++ {
		from := p.Vertices[i].Pos
		to := p.Vertices[i+1].Pos
		arc := p.Vertices[i].Arc
		pts = append(pts, from)
		if arc != 0 {
			pts = append(pts, flattenArc(from, to, arc, tol)...)
		}
	}
	pts = append(pts, p.Vertices[len(p.Vertices)-1].Pos)
	return dedupConsecutive(pts)
}

// flattenArc samples the arc from `from` to `to` with included angle `arc`
// into intermediate points bounded by the chord-height tolerance tol.
func flattenArc(from, to Point, arc Angle, tol UnsignedLength) []Point {
	center := arcCenter(from, to, arc)
	radius := math.Hypot(float64(from.X-center.X), float64(from.Y-center.Y))
	if radius <= 0 {
		return nil
	}
	e := float64(tol.Value())
	if e <= 0 || e >= radius {
		e = radius * 0.01
	}
	maxStep := 2 * math.Acos(1-e/radius)
	if maxStep <= 0 || math.IsNaN(maxStep) {
		maxStep = math.Pi / 18 // 10 degrees, conservative fallback
	}
	totalRad := math.Abs(arc.Degrees()) * math.Pi / 180
	steps := int(math.Ceil(totalRad / maxStep))
	if steps < 1 {
		steps = 1
	}
	sign := 1.0
	if arc < 0 {
		sign = -1.0
	}
	startAng := math.Atan2(float64(from.Y-center.Y), float64(from.X-center.X))
	out := make([]Point, 0, steps-1)
	for s := 1; s < steps; s++ {
		frac := float64(s) / float64(steps)
		ang := startAng + sign*totalRad*frac
		x := float64(center.X) + radius*math.Cos(ang)
		y := float64(center.Y) + radius*math.Sin(ang)
		out = append(out, Point{X: Length(math.Round(x)), Y: Length(math.Round(y))})
	}
	return out
}

// arcCenter recovers the arc's center given its endpoints and included
// angle, assuming both endpoints lie on a circle of the (unknown) radius
// implied by the chord and angle.
func arcCenter(from, to Point, arc Angle) Point {
	fx, fy := float64(from.X), float64(from.Y)
	tx, ty := float64(to.X), float64(to.Y)
	mx, my := (fx+tx)/2, (fy+ty)/2
	chordLen := math.Hypot(tx-fx, ty-fy)
	if chordLen == 0 {
		return from
	}
	halfAngleRad := math.Abs(arc.Degrees()) * math.Pi / 360
	if halfAngleRad <= 0 || halfAngleRad >= math.Pi {
		halfAngleRad = math.Pi / 4
	}
	// Signed distance from the chord midpoint to the center: zero for a
	// semicircle, negative (center on the bulge side) past 180 degrees.
	h := (chordLen / 2) / math.Tan(halfAngleRad)
	// Perpendicular to the chord, direction chosen by the arc's sign.
	dx, dy := tx-fx, ty-fy
	nx, ny := -dy/chordLen, dx/chordLen
	sign := 1.0
	if arc < 0 {
		sign = -1.0
	}
	return Point{
		X: Length(math.Round(mx + sign*nx*h)),
		Y: Length(math.Round(my + sign*ny*h)),
	}
}

func unitNormal(a, b Point) r2.Vec {
	d := r2.Vec{X: float64(b.X - a.X), Y: float64(b.Y - a.Y)}
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return r2.Vec{}
	}
	return r2.Vec{X: -d.Y / l, Y: d.X / l}
}

func toStraightVertices(pts []Point) []Vertex {
	out := make([]Vertex, len(pts))
	for i, p := range pts {
		out[i] = Vertex{Pos: p, Arc: 0}
	}
	return out
}

func reversePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func dedupConsecutive(pts []Point) []Point {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
