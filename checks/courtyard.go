package checks

import (
	"fmt"

	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/message"
	"github.com/opencircuit/boarddrc/polyset"
)

// courtyardOn returns a device's courtyard footprint on the given side of
// the board, in board space. A mirrored placement flips the footprint to
// the other side, so its local top courtyard lands on the bottom layer and
// vice versa. The second return is false when the device has no courtyard
// on that side.
func courtyardOn(dev board.Device, top bool, tol geom.UnsignedLength) (polyset.PolygonSet, bool) {
	local := dev.CourtyardTop
	if top == dev.Transform.Mirror {
		local = dev.CourtyardBot
	}
	if len(local.Vertices) == 0 {
		return polyset.PolygonSet{}, false
	}
	ps, err := polyset.FromPaths(tol, dev.Transform.ApplyPath(local))
	if err != nil {
		return polyset.PolygonSet{}, false
	}
	return ps, true
}

// CourtyardClearance flags every unordered pair of devices whose courtyards
// overlap on the same side of the board.
func CourtyardClearance(ctx *Context) error {
	tol := ctx.Settings.MaxArcTolerance
	devices := ctx.Board.Devices()

	for _, side := range []struct {
		top   bool
		layer string
	}{
		{top: true, layer: board.LayerTopCourtyard},
		{top: false, layer: board.LayerBotCourtyard},
	} {
		type entry struct {
			id string
			ps polyset.PolygonSet
		}
		courtyards := make([]entry, 0, len(devices))
		for _, dev := range devices {
			if ps, ok := courtyardOn(dev, side.top, tol); ok {
				courtyards = append(courtyards, entry{id: dev.ID, ps: ps})
			}
		}
		for a := 0; a < len(courtyards); a++ {
			for b := a + 1; b < len(courtyards); b++ {
				overlap, err := polyset.Intersect(courtyards[a].ps, courtyards[b].ps)
				if err != nil || overlap.IsEmpty() {
					continue
				}
				ctx.Sink.OnMessage(message.New(message.KindCourtyardOverlap,
					fmt.Sprintf("courtyards of %s and %s overlap on %s", courtyards[a].id, courtyards[b].id, side.layer),
					side.layer, []string{"device:" + courtyards[a].id, "device:" + courtyards[b].id},
					overlap.Paths()...))
			}
		}
	}
	return nil
}
