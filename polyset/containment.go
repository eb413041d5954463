package polyset

import (
	"github.com/ctessum/polyclip-go"

	"github.com/opencircuit/boarddrc/geom"
)

// Contains reports whether p lies in the interior of s under the non-zero
// fill rule: the winding number summed across every contour is non-zero.
// Used by the invalid-pad-connection check to test whether
// a pad's origin actually falls inside its own copper on a given layer.
func Contains(s PolygonSet, p geom.Point) bool {
	winding := 0
	for _, c := range s.poly {
		winding += contourWinding(c, p)
	}
	return winding != 0
}

// contourWinding computes the winding number of contour c around p via the
// standard crossing-number accumulation: each edge crossing the horizontal
// ray to the right of p contributes +1/-1 depending on whether it crosses
// upward or downward.
func contourWinding(c polyclip.Contour, p geom.Point) int {
	winding := 0
	n := len(c)
	for i := 0; i < n; i++ {
		a := c[i]
		b := c[(i+1)%n]
		if a.Y <= float64(p.Y) {
			if b.Y > float64(p.Y) && isLeft(a, b, p) > 0 {
				winding++
			}
		} else {
			if b.Y <= float64(p.Y) && isLeft(a, b, p) < 0 {
				winding--
			}
		}
	}
	return winding
}

// isLeft returns > 0 if p is left of the directed line a->b, < 0 if right,
// 0 if exactly on it.
func isLeft(a, b polyclip.Point, p geom.Point) float64 {
	return (b.X-a.X)*(float64(p.Y)-a.Y) - (float64(p.X)-a.X)*(b.Y-a.Y)
}
