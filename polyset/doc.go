// Package polyset implements the polygon algebra the DRC engine's clearance
// checks reduce to: boolean union/intersection/difference over closed
// polygon sets (outer loops + holes, non-zero fill), and signed offsetting
// so that "closer than clearance" becomes "offset polygons intersect".
//
// Boolean algebra is delegated to github.com/ctessum/polyclip-go (a Vatti-
// style clipper), the direct Go analogue of the ClipperLib dependency this
// DRC engine's originating tool uses for the same purpose. Offsetting is
// not something polyclip-go provides, so it is hand-built from per-edge
// displacement of each flattened contour with round joins, with a
// self-union pass through
// polyclip to resolve the overlaps naive per-edge expansion introduces.
//
//	polyset.go — PolygonSet type, conversions, Union/Intersect/Difference
//	offset.go  — Offset: per-edge displacement with round joins
//	errors.go  — ErrPolygonAlgebra sentinel
package polyset
