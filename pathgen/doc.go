// Package pathgen adapts board objects (vias, net-lines, pads, planes,
// polygons, circles, stroke text, holes) into polyset.PolygonSet footprints
// on a given layer.
//
// Every adapter returns the object's *unoffset* footprint; callers that need
// the clearance-check offset apply polyset.Offset themselves using the delta
// ComputeClearanceOffset returns. Keeping offsetting out of the adapters
// means the same disc/obround/outline construction serves both the raw
// path-generator contract and any check that happens to want the bare
// geometry (annular-ring drill discs, pad-connection footprints, NPTH hole
// footprints, ...).
//
//	pathgen.go — Via/NetLine/Plane/Polygon/Circle/StrokeText/Pad/Hole adapters
//	offset.go  — ComputeClearanceOffset, the δ formula shared by every
//	             clearance-driven check
package pathgen
