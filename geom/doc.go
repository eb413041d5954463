// Package geom is the fixed-point geometry kernel underlying the board DRC
// engine: Length/Angle/Point primitives, closed Paths with per-vertex arc
// angles, arc-aware stroking into outline polygons, and affine Transforms.
//
// Everything in this package is exact modulo arc flattening: lengths are
// signed int64 nanometres, angles are signed degrees x1000, and floating
// point enters only inside the kernel's trigonometry (stroke normals, via
// gonum's spatial/r2 vectors; arc flattening; rotation) — results are
// rounded back to Length at the kernel boundary.
//
//	length.go     — Length, Angle, Point, PositiveLength, UnsignedLength
//	path.go       — Path, Vertex, ToOutlineStrokes, Circle, Obround
//	transform.go  — Transform, Apply, MirrorLayerName
package geom
