package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/checks"
	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/message"
	"github.com/opencircuit/boarddrc/settings"
)

func slotHole(t *testing.T, id string, width geom.Length, plated bool) board.Hole {
	t.Helper()
	return board.Hole{
		ID:   id,
		Slot: true,
		Path: geom.Path{Vertices: []geom.Vertex{
			{Pos: geom.Point{X: 0, Y: 0}},
			{Pos: geom.Point{X: 1_000_000, Y: 0}},
		}},
		Diameter: mustPos(t, width),
		Plated:   plated,
	}
}

func TestDrillSlot_SmallNpthDrillViolates(t *testing.T) {
	b := newTestBoard()
	b.AddHole(roundHole(t, "h1", 0, 0, 200_000, false))
	ctx, rec := newCtx(t, b, settings.WithMinNpthDrillDiameter(300_000))

	require.NoError(t, checks.MinimumDrillSlot(ctx))

	msgs := rec.ByKind(message.KindMinimumDrillDiameterViolation)
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"h1"}, msgs[0].ObjectIDs)
}

func TestDrillSlot_NarrowNpthSlotViolates(t *testing.T) {
	b := newTestBoard()
	b.AddHole(slotHole(t, "h1", 200_000, false))
	ctx, rec := newCtx(t, b, settings.WithMinNpthSlotWidth(300_000))

	require.NoError(t, checks.MinimumDrillSlot(ctx))
	require.Len(t, rec.ByKind(message.KindMinimumSlotWidthViolation), 1)
}

// A slot is judged by the slot-width threshold only, never the drill one.
func TestDrillSlot_SlotNotJudgedByDrillThreshold(t *testing.T) {
	b := newTestBoard()
	b.AddHole(slotHole(t, "h1", 200_000, false))
	ctx, rec := newCtx(t, b, settings.WithMinNpthDrillDiameter(300_000))

	require.NoError(t, checks.MinimumDrillSlot(ctx))
	assert.Empty(t, rec.Messages)
}

func TestDrillSlot_PthPadHoleUsesPthThresholds(t *testing.T) {
	b := newTestBoard()
	hole := roundHole(t, "ph1", 0, 0, 200_000, true)
	require.NoError(t, b.AddDevice(board.Device{ID: "U1", Pads: []board.Pad{{
		ID: "1", Hole: &hole,
	}}}))
	ctx, rec := newCtx(t, b,
		settings.WithMinPthDrillDiameter(300_000),
		settings.WithMinNpthDrillDiameter(100_000), // met; must not matter here
	)

	require.NoError(t, checks.MinimumDrillSlot(ctx))
	require.Len(t, rec.ByKind(message.KindMinimumDrillDiameterViolation), 1)
}

func TestDrillSlot_MetThresholdsPass(t *testing.T) {
	b := newTestBoard()
	b.AddHole(roundHole(t, "h1", 0, 0, 400_000, false))
	b.AddHole(slotHole(t, "h2", 400_000, false))
	ctx, rec := newCtx(t, b,
		settings.WithMinNpthDrillDiameter(300_000),
		settings.WithMinNpthSlotWidth(300_000),
	)

	require.NoError(t, checks.MinimumDrillSlot(ctx))
	assert.Empty(t, rec.Messages)
}
