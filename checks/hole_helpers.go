package checks

import (
	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/geom"
)

// holeLike lets the hole-driven checks (copper/hole clearance, minimum
// drill/slot, allowed slots) share iteration code across board.Hole (used
// for both board-level and device-level drilled features) without
// depending on board.Pad's slightly different shape.
type holeLike interface {
	Diameter() geom.PositiveLength
	Slot() bool
	Plated() bool
	Path() geom.Path
	ShapeClass() board.HoleShapeClass
}

// boardHole adapts board.Hole to holeLike.
type boardHole struct{ h board.Hole }

func (b boardHole) Diameter() geom.PositiveLength     { return b.h.Diameter }
func (b boardHole) Slot() bool                        { return b.h.Slot }
func (b boardHole) Plated() bool                      { return b.h.Plated }
func (b boardHole) Path() geom.Path                   { return b.h.Path }
func (b boardHole) ShapeClass() board.HoleShapeClass  { return b.h.ShapeClass() }
