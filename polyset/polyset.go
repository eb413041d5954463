package polyset

import (
	"fmt"

	"github.com/ctessum/polyclip-go"

	"github.com/opencircuit/boarddrc/geom"
)

// PolygonSet is a set of simple polygons-with-holes under the non-zero fill
// rule, closed under Union/Intersect/Difference/Offset. Every set in a
// single DRC run must share the same arc Tolerance, applied identically
// to every flatten and offset operation.
type PolygonSet struct {
	Tolerance geom.UnsignedLength
	poly      polyclip.Polygon
}

// Empty returns a PolygonSet with no area, carrying tol for later ops.
func Empty(tol geom.UnsignedLength) PolygonSet {
	return PolygonSet{Tolerance: tol}
}

// FromPaths builds a PolygonSet from one or more closed geom.Paths (outer
// loops and holes alike — orientation determines fill under the non-zero
// rule, exactly like the loops polyclip itself expects).
func FromPaths(tol geom.UnsignedLength, paths ...geom.Path) (PolygonSet, error) {
	out := PolygonSet{Tolerance: tol}
	for _, p := range paths {
		if !p.Closed() {
			return PolygonSet{}, fmt.Errorf("polyset.FromPaths: open path: %w", geom.ErrGeometryDomain)
		}
		for _, v := range p.Vertices {
			if v.Pos.X > geom.MaxCoordinate || v.Pos.X < -geom.MaxCoordinate ||
				v.Pos.Y > geom.MaxCoordinate || v.Pos.Y < -geom.MaxCoordinate {
				return PolygonSet{}, fmt.Errorf("polyset.FromPaths: coordinate overflow at (%d,%d): %w",
					v.Pos.X, v.Pos.Y, ErrPolygonAlgebra)
			}
		}
		out.poly = append(out.poly, toContour(p, tol))
	}
	return out, nil
}

// IsEmpty reports whether the set covers no area at all.
func (s PolygonSet) IsEmpty() bool {
	for _, c := range s.poly {
		if len(c) > 0 {
			return false
		}
	}
	return true
}

// Area returns the (non-zero-rule) signed area sum of all contours; useful
// only to test emptiness and for test assertions, not for exact geometry.
func (s PolygonSet) Area() float64 {
	total := 0.0
	for _, c := range s.poly {
		total += contourArea(c)
	}
	return total
}

// Paths returns the outline of every contour in the set as a closed
// geom.Path, suitable for use as DrcMessage locations.
func (s PolygonSet) Paths() []geom.Path {
	out := make([]geom.Path, 0, len(s.poly))
	for _, c := range s.poly {
		out = append(out, fromContour(c))
	}
	return out
}

// Union returns the boolean union of a and b. The arc tolerance of the
// result is a's (both must agree per the run-wide invariant; callers are
// expected to construct every set in a run with the same tolerance).
func Union(a, b PolygonSet) (PolygonSet, error) {
	return combine(a, b, polyclip.UNION)
}

// Intersect returns the boolean intersection of a and b. An empty result
// means a and b have no interior overlap — boundary-only contact is not
// reported as a violation by the checks that call this.
func Intersect(a, b PolygonSet) (PolygonSet, error) {
	return combine(a, b, polyclip.INTERSECTION)
}

// Difference returns a with b's area removed.
func Difference(a, b PolygonSet) (PolygonSet, error) {
	return combine(a, b, polyclip.DIFFERENCE)
}

func combine(a, b PolygonSet, op polyclip.Op) (PolygonSet, error) {
	if a.IsEmpty() {
		if op == polyclip.UNION {
			return PolygonSet{Tolerance: a.Tolerance, poly: b.poly}, nil
		}
		return Empty(a.Tolerance), nil
	}
	if b.IsEmpty() {
		switch op {
		case polyclip.UNION, polyclip.DIFFERENCE:
			return a, nil
		default:
			return Empty(a.Tolerance), nil
		}
	}
	result := a.poly.Construct(op, b.poly)
	return PolygonSet{Tolerance: a.Tolerance, poly: result}, nil
}

func toContour(p geom.Path, tol geom.UnsignedLength) polyclip.Contour {
	pts := p.Flatten(tol)
	c := make(polyclip.Contour, 0, len(pts))
	for i, pt := range pts {
		// The flattened path repeats the closing point; polyclip contours
		// are implicitly closed, so drop the duplicate last vertex.
		if i == len(pts)-1 && pt == pts[0] {
			continue
		}
		c = append(c, polyclip.Point{X: float64(pt.X), Y: float64(pt.Y)})
	}
	return c
}

func fromContour(c polyclip.Contour) geom.Path {
	verts := make([]geom.Vertex, 0, len(c)+1)
	for _, pt := range c {
		verts = append(verts, geom.Vertex{Pos: geom.Point{X: geom.Length(pt.X), Y: geom.Length(pt.Y)}})
	}
	if len(verts) > 0 {
		verts = append(verts, geom.Vertex{Pos: verts[0].Pos})
	}
	return geom.Path{Vertices: verts}
}

func contourArea(c polyclip.Contour) float64 {
	if len(c) < 3 {
		return 0
	}
	area := 0.0
	for i := range c {
		j := (i + 1) % len(c)
		area += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return area / 2
}
