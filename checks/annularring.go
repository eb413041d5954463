package checks

import (
	"fmt"

	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/message"
	"github.com/opencircuit/boarddrc/pathgen"
	"github.com/opencircuit/boarddrc/polyset"
)

// AnnularRing requires a plated hole (via or pad) to
// keep a full ring of copper on every enabled copper layer. T is the
// intersection of copper across every layer, so only regions copper on all
// layers count; a disc of drill + 2*annular - 1 must fall entirely within T.
func AnnularRing(ctx *Context) error {
	annular := ctx.Settings.MinPthAnnularRing
	if annular.IsZero() {
		return nil
	}
	tol := ctx.Settings.MaxArcTolerance

	t, ok, err := intersectAllCopperLayers(ctx)
	if err != nil {
		return err
	}

	check := func(id string, position geom.Point, drill geom.PositiveLength) error {
		discDiameter := drill.Value() + 2*annular.Value() - 1
		pd, err := geom.NewPositiveLength(discDiameter)
		if err != nil {
			return nil
		}
		disc, err := pathgen.ViaDrill(position, pd, tol)
		if err != nil {
			return nil
		}
		var residue polyset.PolygonSet
		if !ok {
			residue = disc
		} else {
			residue, err = polyset.Difference(disc, t)
			if err != nil {
				return nil
			}
		}
		if residue.IsEmpty() {
			return nil
		}
		ctx.Sink.OnMessage(message.New(message.KindMinimumAnnularRingViolation,
			fmt.Sprintf("%s has less than the %d nm minimum annular ring", id, annular.Value()),
			"", []string{id}, residue.Paths()...))
		return nil
	}

	for _, seg := range ctx.Board.NetSegments() {
		for _, via := range seg.Vias {
			if err := check("via:"+via.ID, via.Position, via.Drill); err != nil {
				return err
			}
		}
	}
	for _, dev := range ctx.Board.Devices() {
		for _, pad := range dev.Pads {
			if pad.Hole == nil || !pad.Hole.Plated {
				continue
			}
			if len(pad.Hole.Path.Vertices) == 0 {
				continue
			}
			center := dev.Transform.Apply(pad.Hole.Path.Vertices[0].Pos)
			if err := check("pad:"+pad.ID, center, pad.Hole.Diameter); err != nil {
				return err
			}
		}
	}
	return nil
}

// intersectAllCopperLayers intersects the cache's per-layer copper polygon
// sets across every enabled copper layer ("copper on all layers").
// ok is false (and the returned set meaningless) if there are no enabled
// copper layers at all.
func intersectAllCopperLayers(ctx *Context) (polyset.PolygonSet, bool, error) {
	tol := ctx.Settings.MaxArcTolerance
	layers := ctx.Board.CopperLayers()
	if len(layers) == 0 {
		return polyset.Empty(tol), false, nil
	}
	first, err := ctx.Cache.Layer(layers[0].Name(), nil, false)
	if err != nil {
		return polyset.PolygonSet{}, false, err
	}
	t := first
	for _, l := range layers[1:] {
		ps, err := ctx.Cache.Layer(l.Name(), nil, false)
		if err != nil {
			continue
		}
		if t, err = polyset.Intersect(t, ps); err != nil {
			return polyset.PolygonSet{}, false, err
		}
	}
	return t, true, nil
}
