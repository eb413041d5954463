package checks_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/checks"
	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/message"
)

func padBoard(t *testing.T, copper geom.Path, connected string) *board.MemoryBoard {
	t.Helper()
	b := newTestBoard()
	n1 := board.NewNetSignal(uuid.New())
	require.NoError(t, b.AddDevice(board.Device{ID: "U1", Pads: []board.Pad{{
		ID:              "1",
		Position:        geom.Point{X: 0, Y: 0},
		Layers:          map[string]geom.Path{connected: copper},
		Net:             n1,
		ConnectedLayers: map[string]bool{connected: true},
	}}}))
	return b
}

// A pad whose bottom-layer copper does not include its origin, with a
// bottom-layer net-line connected there, is an invalid connection.
func TestPadConnection_OriginOutsideCopperViolates(t *testing.T) {
	offCentre := rect(200_000, 200_000, 400_000, 400_000)
	b := padBoard(t, offCentre, "bot_copper")
	ctx, rec := newCtx(t, b)

	require.NoError(t, checks.InvalidPadConnections(ctx))

	msgs := rec.ByKind(message.KindInvalidPadConnection)
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"pad:1"}, msgs[0].ObjectIDs)
	assert.Equal(t, "bot_copper", msgs[0].Layer)
}

func TestPadConnection_OriginInsideCopperPasses(t *testing.T) {
	centred := rect(-200_000, -200_000, 200_000, 200_000)
	b := padBoard(t, centred, "bot_copper")
	ctx, rec := newCtx(t, b)

	require.NoError(t, checks.InvalidPadConnections(ctx))
	assert.Empty(t, rec.Messages)
}

// The device transform moves the copper and the origin together, so a
// translated placement of a good pad stays good.
func TestPadConnection_TransformAppliesToBoth(t *testing.T) {
	b := newTestBoard()
	n1 := board.NewNetSignal(uuid.New())
	require.NoError(t, b.AddDevice(board.Device{
		ID:        "U1",
		Transform: geom.Transform{Translate: geom.Point{X: 3_000_000, Y: 0}},
		Pads: []board.Pad{{
			ID:              "1",
			Position:        geom.Point{X: 0, Y: 0},
			Layers:          map[string]geom.Path{"top_copper": rect(-200_000, -200_000, 200_000, 200_000)},
			Net:             n1,
			ConnectedLayers: map[string]bool{"top_copper": true},
		}},
	}))
	ctx, rec := newCtx(t, b)

	require.NoError(t, checks.InvalidPadConnections(ctx))
	assert.Empty(t, rec.Messages)
}

// A connected layer with no pad copper at all is also flagged.
func TestPadConnection_NoCopperOnConnectedLayer(t *testing.T) {
	b := newTestBoard()
	n1 := board.NewNetSignal(uuid.New())
	require.NoError(t, b.AddDevice(board.Device{ID: "U1", Pads: []board.Pad{{
		ID:              "1",
		Position:        geom.Point{X: 0, Y: 0},
		Layers:          map[string]geom.Path{"top_copper": rect(-200_000, -200_000, 200_000, 200_000)},
		Net:             n1,
		ConnectedLayers: map[string]bool{"bot_copper": true},
	}}}))
	ctx, rec := newCtx(t, b)

	require.NoError(t, checks.InvalidPadConnections(ctx))
	require.Len(t, rec.ByKind(message.KindInvalidPadConnection), 1)
}

// Unconnected layers are not checked.
func TestPadConnection_UnconnectedLayerIgnored(t *testing.T) {
	b := newTestBoard()
	n1 := board.NewNetSignal(uuid.New())
	require.NoError(t, b.AddDevice(board.Device{ID: "U1", Pads: []board.Pad{{
		ID:       "1",
		Position: geom.Point{X: 0, Y: 0},
		Layers:   map[string]geom.Path{"top_copper": rect(200_000, 200_000, 400_000, 400_000)},
		Net:      n1,
	}}}))
	ctx, rec := newCtx(t, b)

	require.NoError(t, checks.InvalidPadConnections(ctx))
	assert.Empty(t, rec.Messages)
}
