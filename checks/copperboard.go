package checks

import (
	"fmt"

	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/message"
	"github.com/opencircuit/boarddrc/polyset"
)

// CopperBoardClearance builds a band straddling the board outline,
// 2*clearance - max_arc_tolerance - 1 wide, marking the region no copper
// may enter. Every copper object (unoffset) is tested against it.
func CopperBoardClearance(ctx *Context) error {
	clearance := ctx.Settings.MinCopperBoardClearance
	if clearance.IsZero() {
		return nil
	}
	tol := ctx.Settings.MaxArcTolerance
	bandWidth := 2*clearance.Value() - tol.Value() - 1
	if bandWidth <= 0 {
		return nil
	}
	width, err := geom.NewPositiveLength(bandWidth)
	if err != nil {
		return err
	}

	r := polyset.Empty(tol)
	for _, poly := range ctx.Board.Polygons() {
		if poly.Layer != board.LayerBoardOutlines {
			continue
		}
		band, err := poly.Outline.ToOutlineStrokes(width, tol)
		if err != nil {
			continue
		}
		ps, err := polyset.FromPaths(tol, band)
		if err != nil {
			continue
		}
		if r, err = polyset.Union(r, ps); err != nil {
			return err
		}
	}
	if r.IsEmpty() {
		return nil
	}

	items, err := buildCopperItems(ctx, 0)
	if err != nil {
		return err
	}
	for _, item := range items {
		overlap, err := polyset.Intersect(r, item.Polygons)
		if err != nil || overlap.IsEmpty() {
			continue
		}
		ctx.Sink.OnMessage(message.New(message.KindCopperBoardClearanceViolation,
			fmt.Sprintf("%s is closer than the %d nm board-outline clearance", item.ID, clearance.Value()),
			item.Layer, []string{item.ID}, overlap.Paths()...))
	}
	return nil
}
