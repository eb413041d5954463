package pathgen_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/pathgen"
	"github.com/opencircuit/boarddrc/polyset"
)

func mustPos(t *testing.T, v geom.Length) geom.PositiveLength {
	t.Helper()
	p, err := geom.NewPositiveLength(v)
	require.NoError(t, err)
	return p
}

func mustUns(t *testing.T, v geom.Length) geom.UnsignedLength {
	t.Helper()
	u, err := geom.NewUnsignedLength(v)
	require.NoError(t, err)
	return u
}

func TestComputeClearanceOffset(t *testing.T) {
	cases := []struct {
		clearance, tol, want geom.Length
	}{
		{200_000, 5000, 97_499},  // floor((200000-5000)/2) - 1
		{50_000, 5000, 22_499},   // floor(45000/2) - 1
		{0, 5000, 0},             // disabled clamps to zero
		{4000, 5000, 0},          // clearance below tolerance clamps to zero
	}
	for _, c := range cases {
		got := pathgen.ComputeClearanceOffset(mustUns(t, c.clearance), mustUns(t, c.tol))
		assert.Equal(t, c.want, got, "clearance=%d tol=%d", c.clearance, c.tol)
	}
}

func TestViaCopper_DiscAtPosition(t *testing.T) {
	pos := geom.Point{X: 1_000_000, Y: -500_000}
	ps, err := pathgen.ViaCopper(pos, mustPos(t, 400_000), mustUns(t, 5000))
	require.NoError(t, err)
	assert.True(t, polyset.Contains(ps, pos))
	assert.False(t, polyset.Contains(ps, geom.Point{}))
	// The flattened disc is inscribed in the true circle with a chord height
	// of at most the 5 um tolerance, so its area lies between pi*(r-tol)^2
	// and pi*r^2.
	r, e := 200_000.0, 5000.0
	area := math.Abs(ps.Area())
	assert.LessOrEqual(t, area, math.Pi*r*r)
	assert.GreaterOrEqual(t, area, math.Pi*(r-e)*(r-e))
}

func TestNetLine_ObroundCoversEndpoints(t *testing.T) {
	from := geom.Point{X: 0, Y: 0}
	to := geom.Point{X: 1_000_000, Y: 0}
	ps, err := pathgen.NetLine(from, to, mustPos(t, 200_000), mustUns(t, 5000))
	require.NoError(t, err)
	assert.True(t, polyset.Contains(ps, from))
	assert.True(t, polyset.Contains(ps, to))
	assert.True(t, polyset.Contains(ps, geom.Point{X: 500_000, Y: 0}))
	assert.False(t, polyset.Contains(ps, geom.Point{X: 500_000, Y: 200_000}))
}

// A circle footprint must land at the circle's actual center, not at the
// local origin.
func TestCircle_TranslatedToCenter(t *testing.T) {
	center := geom.Point{X: 2_000_000, Y: 0}
	ps, err := pathgen.Circle(center, mustPos(t, 500_000), geom.Transform{}, mustUns(t, 5000))
	require.NoError(t, err)
	assert.True(t, polyset.Contains(ps, center))
	assert.False(t, polyset.Contains(ps, geom.Point{}))
}

func TestCircle_TransformApplies(t *testing.T) {
	center := geom.Point{X: 1_000_000, Y: 0}
	tr := geom.Transform{Translate: geom.Point{X: 0, Y: 3_000_000}}
	ps, err := pathgen.Circle(center, mustPos(t, 500_000), tr, mustUns(t, 5000))
	require.NoError(t, err)
	assert.True(t, polyset.Contains(ps, geom.Point{X: 1_000_000, Y: 3_000_000}))
	assert.False(t, polyset.Contains(ps, center))
}

func TestPad_MissingLayer(t *testing.T) {
	layers := map[string]geom.Path{}
	_, err := pathgen.Pad(layers, "top_copper", geom.Transform{}, mustUns(t, 5000))
	require.Error(t, err)
	assert.True(t, errors.Is(err, pathgen.ErrNoLayerGeometry))
}

func TestHole_RoundIsDisc(t *testing.T) {
	path := geom.Path{Vertices: []geom.Vertex{{Pos: geom.Point{X: 100_000, Y: 100_000}}}}
	ps, err := pathgen.Hole(path, mustPos(t, 300_000), geom.Transform{}, mustUns(t, 5000))
	require.NoError(t, err)
	assert.True(t, polyset.Contains(ps, geom.Point{X: 100_000, Y: 100_000}))
}

func TestHole_SlotIsStrokedPath(t *testing.T) {
	path := geom.Path{Vertices: []geom.Vertex{
		{Pos: geom.Point{X: 0, Y: 0}},
		{Pos: geom.Point{X: 1_000_000, Y: 0}},
	}}
	ps, err := pathgen.Hole(path, mustPos(t, 300_000), geom.Transform{}, mustUns(t, 5000))
	require.NoError(t, err)
	assert.True(t, polyset.Contains(ps, geom.Point{X: 500_000, Y: 0}))
	assert.False(t, polyset.Contains(ps, geom.Point{X: 500_000, Y: 400_000}))
}

func TestStrokeText_UnionOfStrokes(t *testing.T) {
	strokes := []geom.Path{
		{Vertices: []geom.Vertex{{Pos: geom.Point{X: 0, Y: 0}}, {Pos: geom.Point{X: 500_000, Y: 0}}}},
		{Vertices: []geom.Vertex{{Pos: geom.Point{X: 0, Y: 0}}, {Pos: geom.Point{X: 0, Y: 500_000}}}},
	}
	ps, err := pathgen.StrokeText(strokes, mustPos(t, 100_000), geom.Transform{}, mustUns(t, 5000))
	require.NoError(t, err)
	assert.True(t, polyset.Contains(ps, geom.Point{X: 250_000, Y: 0}))
	assert.True(t, polyset.Contains(ps, geom.Point{X: 0, Y: 250_000}))
	assert.False(t, polyset.Contains(ps, geom.Point{X: 400_000, Y: 400_000}))
}
