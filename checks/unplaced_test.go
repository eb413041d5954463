package checks_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/checks"
	"github.com/opencircuit/boarddrc/message"
)

// One placed device, one unplaced component, one schematic-only component:
// exactly one missing-device message, no duplicates.
func TestUnplaced_MissingDeviceReportedOnce(t *testing.T) {
	b := newTestBoard()
	placed := uuid.New()
	missing := uuid.New()
	schematicOnly := uuid.New()

	require.NoError(t, b.AddDevice(board.Device{ID: "U1", ComponentUUID: placed}))
	b.AddComponentInstance(board.ComponentInstance{UUID: placed, Designator: "U1"})
	b.AddComponentInstance(board.ComponentInstance{UUID: missing, Designator: "U2"})
	b.AddComponentInstance(board.ComponentInstance{UUID: schematicOnly, Designator: "TP1", SchematicOnly: true})

	ctx, rec := newCtx(t, b)
	require.NoError(t, checks.UnplacedComponents(ctx))

	msgs := rec.ByKind(message.KindMissingDevice)
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"component:" + missing.String()}, msgs[0].ObjectIDs)
	assert.Equal(t, message.Error, msgs[0].Severity)
}

func TestUnplaced_AllPlacedEmitsNothing(t *testing.T) {
	b := newTestBoard()
	id := uuid.New()
	require.NoError(t, b.AddDevice(board.Device{ID: "U1", ComponentUUID: id}))
	b.AddComponentInstance(board.ComponentInstance{UUID: id, Designator: "U1"})

	ctx, rec := newCtx(t, b)
	require.NoError(t, checks.UnplacedComponents(ctx))
	assert.Empty(t, rec.Messages)
}
