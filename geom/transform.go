// transform.go — affine placement transform and layer-name mirroring.
package geom

import (
	"math"
	"strings"
)

// Transform composes mirror, then rotate, then translate, applied to a
// point p as T(p) = Translate + Rotate(Mirror(p)). This fixed composition
// order matches how a device placement is specified on a board: mirror
// about the local Y axis first (flipping the footprint to the other side),
// then rotate to the placed orientation, then translate to the final
// position.
type Transform struct {
	Translate Point
	Rotate    Angle
	Mirror    bool
}

// Apply maps a local-space point p into board space.
func (t Transform) Apply(p Point) Point {
	if t.Mirror {
		p = Point{X: -p.X, Y: p.Y}
	}
	if t.Rotate != 0 {
		rad := t.Rotate.Degrees() * math.Pi / 180
		sin, cos := math.Sin(rad), math.Cos(rad)
		x := float64(p.X)*cos - float64(p.Y)*sin
		y := float64(p.X)*sin + float64(p.Y)*cos
		p = Point{X: Length(math.Round(x)), Y: Length(math.Round(y))}
	}
	return p.Add(t.Translate)
}

// ApplyPath maps every vertex of path through t, preserving arc angles
// (mirroring negates the arc's sign, since mirroring reverses winding).
func (t Transform) ApplyPath(path Path) Path {
	out := Path{Vertices: make([]Vertex, len(path.Vertices))}
	for i, v := range path.Vertices {
		arc := v.Arc
		if t.Mirror {
			arc = -arc
		}
		out.Vertices[i] = Vertex{Pos: t.Apply(v.Pos), Arc: arc}
	}
	return out
}

// layerMirrorPairs enumerates the top/bottom layer pairs that swap under a
// board-side mirror (copper, courtyard, silkscreen, soldermask). Inner
// copper layers are not listed and map to themselves, as do layers with no
// opposite (e.g. board_outlines).
var layerMirrorPairs = map[string]string{
	"top_copper":     "bot_copper",
	"bot_copper":     "top_copper",
	"top_courtyard":  "bot_courtyard",
	"bot_courtyard":  "top_courtyard",
	"top_silkscreen": "bot_silkscreen",
	"bot_silkscreen": "top_silkscreen",
	"top_soldermask": "bot_soldermask",
	"bot_soldermask": "top_soldermask",
}

// MirrorLayerName returns the opposite-side layer name for name, or name
// unchanged if it has no opposite (e.g. board_outlines).
func MirrorLayerName(name string) string {
	if opp, ok := layerMirrorPairs[name]; ok {
		return opp
	}
	if strings.HasPrefix(name, "in") {
		// Inner copper layers "inNN_copper" have no fixed mirror partner
		// without knowing the stack depth; the board supplies the mapping
		// via its layer stack in that case. Identity is the safe default.
		return name
	}
	return name
}
