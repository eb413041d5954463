// Package board declares the external collaborator interfaces the DRC
// engine consumes (Board, Layer, NetSignal and the shape-bearing object
// types) plus MemoryBoard, a minimal in-memory reference implementation
// good enough to construct fixtures and drive the engine's own tests
// against.
//
// The board is owned exclusively by the host application in production;
// MemoryBoard is the engine's test double, not a replacement for a real
// persistence/library layer.
//
//	types.go    — Layer and NetSignal identities, special layer names
//	objects.go  — Device/Pad/Hole/Via/NetLine/NetSegment/Plane/StrokeText/
//	              Polygon/Circle/ComponentInstance/AirWire
//	board.go    — the Board interface and MemoryBoard
//	errors.go   — sentinel errors
package board
