package checks

import (
	"fmt"

	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/message"
	"github.com/opencircuit/boarddrc/pathgen"
	"github.com/opencircuit/boarddrc/polyset"
)

// CopperCopperClearance tests every unordered pair of copper items on the
// same layer (or involving a through-hole via, which intersects every
// layer) and on distinct nets for interior overlap after both are offset by
// the clearance delta.
//
// Iteration order matches item-append order, each pair tested exactly once
// (a < b): swapping two items in the input order cannot change which pairs
// are tested or their outcome, so the emitted violation set is independent
// of object order.
func CopperCopperClearance(ctx *Context) error {
	clearance := ctx.Settings.MinCopperCopperClearance
	if clearance.IsZero() {
		return nil
	}
	delta := pathgen.ComputeClearanceOffset(clearance, ctx.Settings.MaxArcTolerance)

	items, err := buildCopperItems(ctx, delta)
	if err != nil {
		return err
	}

	for a := 0; a < len(items); a++ {
		if ctx.IsCancelled() {
			return ErrCancelled
		}
		for b := a + 1; b < len(items); b++ {
			ia, ib := items[a], items[b]
			if board.SameNet(ia.Net, ib.Net) {
				continue
			}
			if ia.Layer != "" && ib.Layer != "" && ia.Layer != ib.Layer {
				continue
			}
			overlap, err := polyset.Intersect(ia.Polygons, ib.Polygons)
			if err != nil || overlap.IsEmpty() {
				continue
			}
			layer := ia.Layer
			if layer == "" {
				layer = ib.Layer
			}
			ctx.Sink.OnMessage(message.New(message.KindCopperCopperClearanceViolation,
				fmt.Sprintf("%s and %s are closer than the %d nm copper/copper clearance", ia.ID, ib.ID, clearance.Value()),
				layer, []string{ia.ID, ib.ID}, overlap.Paths()...))
		}
	}
	return nil
}
