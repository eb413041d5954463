package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencircuit/boarddrc/geom"
)

func TestTransform_Identity(t *testing.T) {
	p := geom.Point{X: 123, Y: -456}
	assert.Equal(t, p, geom.Transform{}.Apply(p))
}

func TestTransform_TranslateOnly(t *testing.T) {
	tr := geom.Transform{Translate: geom.Point{X: 10, Y: 20}}
	assert.Equal(t, geom.Point{X: 11, Y: 22}, tr.Apply(geom.Point{X: 1, Y: 2}))
}

func TestTransform_Rotate90(t *testing.T) {
	tr := geom.Transform{Rotate: geom.AngleFromDegrees(90)}
	got := tr.Apply(geom.Point{X: 1000, Y: 0})
	assert.Equal(t, geom.Point{X: 0, Y: 1000}, got)
}

// Composition order is translate(rotate(mirror(p))): mirror about the local
// Y axis first, then rotate, then translate.
func TestTransform_CompositionOrder(t *testing.T) {
	tr := geom.Transform{
		Translate: geom.Point{X: 100, Y: 0},
		Rotate:    geom.AngleFromDegrees(90),
		Mirror:    true,
	}
	// (1000, 0) --mirror--> (-1000, 0) --rot90--> (0, -1000) --move--> (100, -1000)
	got := tr.Apply(geom.Point{X: 1000, Y: 0})
	assert.Equal(t, geom.Point{X: 100, Y: -1000}, got)
}

func TestTransform_ApplyPathNegatesArcUnderMirror(t *testing.T) {
	path := geom.Path{Vertices: []geom.Vertex{
		{Pos: geom.Point{X: 0, Y: 0}, Arc: geom.AngleFromDegrees(90)},
		{Pos: geom.Point{X: 1000, Y: 1000}},
	}}
	mirrored := geom.Transform{Mirror: true}.ApplyPath(path)
	assert.Equal(t, geom.AngleFromDegrees(-90), mirrored.Vertices[0].Arc)
}

func TestMirrorLayerName(t *testing.T) {
	cases := map[string]string{
		"top_copper":     "bot_copper",
		"bot_copper":     "top_copper",
		"top_courtyard":  "bot_courtyard",
		"board_outlines": "board_outlines", // no opposite
	}
	for in, want := range cases {
		assert.Equal(t, want, geom.MirrorLayerName(in), "mirror of %s", in)
	}
}
