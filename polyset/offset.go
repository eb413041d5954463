package polyset

import (
	"math"

	"github.com/opencircuit/boarddrc/geom"
)

// Offset grows (delta > 0) or shrinks (delta < 0) every contour of s by
// delta along its own outward normal, using round joins at the tolerance
// carried on s. Because a hole contour's outward normal (away from the
// filled region, i.e. into the hole) points the opposite absolute direction
// from an outer contour's, applying the same signed delta to every contour
// uniformly grows the filled area and shrinks its holes for delta > 0, and
// the reverse for delta < 0 — exactly the offset semantics the clearance
// checks rely on.
//
// Expanding a contour edge-by-edge can produce self-overlap at reflex
// corners; a self-union pass through polyclip.Construct(UNION, ...) cleans
// that up, since polyclip-go has no native offset primitive of its own.
func Offset(s PolygonSet, delta geom.Length) (PolygonSet, error) {
	if delta == 0 || s.IsEmpty() {
		return s, nil
	}
	grown := Empty(s.Tolerance)
	for _, path := range s.Paths() {
		offPath, err := offsetClosedPath(path, delta, s.Tolerance)
		if err != nil {
			return PolygonSet{}, err
		}
		if len(offPath.Vertices) < 4 {
			continue // shrank to nothing
		}
		one, err := FromPaths(s.Tolerance, offPath)
		if err != nil {
			return PolygonSet{}, err
		}
		grown, err = Union(grown, one)
		if err != nil {
			return PolygonSet{}, err
		}
	}
	return grown, nil
}

// offsetClosedPath offsets every edge of the closed path outward by delta
// (outward meaning "to the right of the directed edge", the convention
// shared by CCW outer loops and CW holes under the non-zero fill rule) and
// rejoins consecutive offset edges with a round join sampled at tol.
func offsetClosedPath(path geom.Path, delta geom.Length, tol geom.UnsignedLength) (geom.Path, error) {
	pts := path.Flatten(tol)
	if len(pts) > 1 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)
	if n < 3 {
		return geom.Path{}, nil
	}
	d := float64(delta)

	out := geom.Path{}
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		nx, ny := outwardNormal(a, b)
		pa := geom.Point{X: a.X + geom.Length(math.Round(nx*d)), Y: a.Y + geom.Length(math.Round(ny*d))}
		pb := geom.Point{X: b.X + geom.Length(math.Round(nx*d)), Y: b.Y + geom.Length(math.Round(ny*d))}
		out.Vertices = append(out.Vertices, geom.Vertex{Pos: pa}, geom.Vertex{Pos: pb})

		// Round join from this edge's offset end to the next edge's offset
		// start, centered at b.
		nnx, nny := outwardNormal(b, pts[(i+2)%n])
		if nnx != nx || nny != ny {
			steps := joinSteps(math.Abs(d), tol)
			a0 := math.Atan2(ny, nx)
			a1 := math.Atan2(nny, nnx)
			for s := 1; s < steps; s++ {
				frac := float64(s) / float64(steps)
				ang := shortestAngleLerp(a0, a1, frac)
				out.Vertices = append(out.Vertices, geom.Vertex{Pos: geom.Point{
					X: b.X + geom.Length(math.Round(math.Cos(ang)*d)),
					Y: b.Y + geom.Length(math.Round(math.Sin(ang)*d)),
				}})
			}
		}
	}
	if len(out.Vertices) > 0 {
		out.Vertices = append(out.Vertices, geom.Vertex{Pos: out.Vertices[0].Pos})
	}
	return out, nil
}

func outwardNormal(a, b geom.Point) (float64, float64) {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}
	// Right-hand normal of the directed edge: outward for a CCW outer loop
	// or a CW hole loop under the shared non-zero-fill convention.
	return dy / l, -dx / l
}

func joinSteps(radius float64, tol geom.UnsignedLength) int {
	e := float64(tol.Value())
	if e <= 0 || radius <= 0 || e >= radius {
		return 4
	}
	step := 2 * math.Acos(1-e/radius)
	steps := int(math.Ceil(math.Pi / step))
	if steps < 1 {
		steps = 1
	}
	return steps
}

func shortestAngleLerp(a0, a1, frac float64) float64 {
	d := a1 - a0
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return a0 + d*frac
}
