package checks

import (
	"fmt"

	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/message"
)

// MinimumDrillSlot checks minimum drill/slot dimensions in four variants:
// NPTH board holes and PTH pad holes, each checked against a drill-diameter
// minimum (round holes) or a slot-width minimum (slotted holes).
func MinimumDrillSlot(ctx *Context) error {
	checkOne := func(id string, h holeLike, drillMin, slotMin geom.UnsignedLength) {
		if h.Slot() {
			if slotMin.IsZero() || h.Diameter().Value() >= slotMin.Value() {
				return
			}
			ctx.Sink.OnMessage(message.New(message.KindMinimumSlotWidthViolation,
				fmt.Sprintf("hole %s slot width %d nm below minimum %d nm", id, h.Diameter().Value(), slotMin.Value()),
				"", []string{id}, h.Path()))
			return
		}
		if drillMin.IsZero() || h.Diameter().Value() >= drillMin.Value() {
			return
		}
		ctx.Sink.OnMessage(message.New(message.KindMinimumDrillDiameterViolation,
			fmt.Sprintf("hole %s drill diameter %d nm below minimum %d nm", id, h.Diameter().Value(), drillMin.Value()),
			"", []string{id}, h.Path()))
	}

	for _, h := range ctx.Board.Holes() {
		if h.Plated {
			continue
		}
		checkOne(h.ID, boardHole{h}, ctx.Settings.MinNpthDrillDiameter, ctx.Settings.MinNpthSlotWidth)
	}
	for _, dev := range ctx.Board.Devices() {
		for _, h := range dev.Holes {
			if h.Plated {
				continue
			}
			checkOne(h.ID, boardHole{h}, ctx.Settings.MinNpthDrillDiameter, ctx.Settings.MinNpthSlotWidth)
		}
		for _, pad := range dev.Pads {
			if pad.Hole == nil {
				continue
			}
			checkOne(pad.ID, boardHole{*pad.Hole}, ctx.Settings.MinPthDrillDiameter, ctx.Settings.MinPthSlotWidth)
		}
	}
	return nil
}
