package checks

import (
	"fmt"

	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/message"
	"github.com/opencircuit/boarddrc/settings"
)

// minimumSlotPolicy maps a hole's shape class to the least permissive
// policy that still allows it. Round holes are always allowed; curved
// slots need SlotAny.
func minimumSlotPolicy(class board.HoleShapeClass) settings.SlotPolicy {
	switch class {
	case board.HoleStraightSingleSegment:
		return settings.SlotSingleSegmentStraight
	case board.HoleStraightMultiSegment:
		return settings.SlotMultiSegmentStraight
	case board.HoleCurved:
		return settings.SlotAny
	default:
		return settings.SlotNone
	}
}

// AllowedSlots flags every drilled slot whose shape class exceeds the
// configured policy: board-level and device-level holes are governed by the
// non-plated policy, pad holes by the plated one.
func AllowedSlots(ctx *Context) error {
	checkOne := func(id string, h board.Hole, policy settings.SlotPolicy) {
		if !h.Slot {
			return
		}
		need := minimumSlotPolicy(h.ShapeClass())
		if need <= policy {
			return
		}
		ctx.Sink.OnMessage(message.New(message.KindForbiddenSlot,
			fmt.Sprintf("hole %s has a slot shape the board's slot policy forbids", id),
			"", []string{"hole:" + id}, h.Path))
	}

	for _, h := range ctx.Board.Holes() {
		checkOne(h.ID, h, ctx.Settings.AllowedNpthSlots)
	}
	for _, dev := range ctx.Board.Devices() {
		for _, h := range dev.Holes {
			checkOne(h.ID, h, ctx.Settings.AllowedNpthSlots)
		}
		for _, pad := range dev.Pads {
			if pad.Hole == nil {
				continue
			}
			checkOne(pad.ID, *pad.Hole, ctx.Settings.AllowedPthSlots)
		}
	}
	return nil
}
