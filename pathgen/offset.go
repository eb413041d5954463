package pathgen

import "github.com/opencircuit/boarddrc/geom"

// ComputeClearanceOffset computes the per-object clearance offset:
// floor((clearance - max_arc_tolerance) / 2) - 1, clamped to >= 0.
// Two objects each offset by the result overlap iff their original edges are
// closer than clearance minus the tolerance's numerical slack.
//
// Complexity: O(1).
func ComputeClearanceOffset(clearance, tol geom.UnsignedLength) geom.Length {
	delta := (clearance.Value()-tol.Value())/2 - 1
	if delta < 0 {
		return 0
	}
	return delta
}
