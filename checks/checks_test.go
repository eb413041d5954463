// Package checks_test drives every check procedure against small literal
// boards built on board.MemoryBoard. Fixtures are given in nanometres.
package checks_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/cache"
	"github.com/opencircuit/boarddrc/checks"
	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/message"
	"github.com/opencircuit/boarddrc/settings"
)

func mustPos(t *testing.T, v geom.Length) geom.PositiveLength {
	t.Helper()
	p, err := geom.NewPositiveLength(v)
	require.NoError(t, err)
	return p
}

// newTestBoard returns a two-copper-layer board with the special layers
// the checks look up by name.
func newTestBoard() *board.MemoryBoard {
	b := board.NewMemoryBoard()
	b.AddLayer(board.NewLayer("top_copper", true, true, false, true))
	b.AddLayer(board.NewLayer("bot_copper", true, false, true, true))
	b.AddLayer(board.NewLayer(board.LayerBoardOutlines, false, false, false, true))
	b.AddLayer(board.NewLayer(board.LayerTopCourtyard, false, true, false, true))
	b.AddLayer(board.NewLayer(board.LayerBotCourtyard, false, false, true, true))
	return b
}

// newCtx wires a fresh cache and recorder around b the way the coordinator
// does for a real run.
func newCtx(t *testing.T, b board.Board, opts ...settings.SettingOption) (*checks.Context, *message.Recorder) {
	t.Helper()
	s, err := settings.New(opts...)
	require.NoError(t, err)
	rec := &message.Recorder{}
	return &checks.Context{Board: b, Settings: s, Cache: cache.New(b, s), Sink: rec}, rec
}

// hline is a horizontal net-line of the given width centred on y.
func hline(t *testing.T, id, layer string, net board.NetSignal, y, width geom.Length) board.NetLine {
	t.Helper()
	return board.NetLine{
		ID: id, Layer: layer, Net: net,
		From:  geom.Point{X: 0, Y: y},
		To:    geom.Point{X: 2_000_000, Y: y},
		Width: mustPos(t, width),
	}
}

// rect is the closed CCW outline of [x0,x1] x [y0,y1].
func rect(x0, y0, x1, y1 geom.Length) geom.Path {
	return geom.Path{Vertices: []geom.Vertex{
		{Pos: geom.Point{X: x0, Y: y0}},
		{Pos: geom.Point{X: x1, Y: y0}},
		{Pos: geom.Point{X: x1, Y: y1}},
		{Pos: geom.Point{X: x0, Y: y1}},
		{Pos: geom.Point{X: x0, Y: y0}},
	}}
}

// roundHole is a round drilled hole at (x, y).
func roundHole(t *testing.T, id string, x, y, diameter geom.Length, plated bool) board.Hole {
	t.Helper()
	return board.Hole{
		ID:       id,
		Path:     geom.Path{Vertices: []geom.Vertex{{Pos: geom.Point{X: x, Y: y}}}},
		Diameter: mustPos(t, diameter),
		Plated:   plated,
	}
}
