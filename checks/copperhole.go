package checks

import (
	"fmt"

	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/message"
	"github.com/opencircuit/boarddrc/pathgen"
	"github.com/opencircuit/boarddrc/polyset"
)

// CopperHoleClearance requires the union of copper across every enabled
// copper layer to stay clear of every non-plated hole's footprint, stroked
// at diameter + 2*clearance - 2.
func CopperHoleClearance(ctx *Context) error {
	clearance := ctx.Settings.MinCopperNpthClearance
	if clearance.IsZero() {
		return nil
	}
	tol := ctx.Settings.MaxArcTolerance

	c, err := unionAllCopperLayers(ctx)
	if err != nil {
		return err
	}
	if c.IsEmpty() {
		return nil
	}

	check := func(id string, h holeLike, transform geom.Transform) error {
		if h.Plated() {
			return nil
		}
		strokeDiameter := h.Diameter().Value() + 2*clearance.Value() - 2
		pd, err := geom.NewPositiveLength(strokeDiameter)
		if err != nil {
			return nil
		}
		footprint, err := pathgen.Hole(h.Path(), pd, transform, tol)
		if err != nil {
			return nil
		}
		overlap, err := polyset.Intersect(c, footprint)
		if err != nil || overlap.IsEmpty() {
			return nil
		}
		ctx.Sink.OnMessage(message.New(message.KindCopperHoleClearanceViolation,
			fmt.Sprintf("copper is closer than the %d nm NPTH clearance to hole %s", clearance.Value(), id),
			"", []string{"hole:" + id}, overlap.Paths()...))
		return nil
	}

	for _, h := range ctx.Board.Holes() {
		if err := check(h.ID, boardHole{h}, geom.Transform{}); err != nil {
			return err
		}
	}
	for _, dev := range ctx.Board.Devices() {
		for _, h := range dev.Holes {
			if err := check(h.ID, boardHole{h}, dev.Transform); err != nil {
				return err
			}
		}
	}
	return nil
}

// unionAllCopperLayers unions the cache's per-layer copper polygon sets
// across every enabled copper layer into one bulk "all copper" set.
func unionAllCopperLayers(ctx *Context) (polyset.PolygonSet, error) {
	tol := ctx.Settings.MaxArcTolerance
	out := polyset.Empty(tol)
	for _, l := range ctx.Board.CopperLayers() {
		ps, err := ctx.Cache.Layer(l.Name(), nil, false)
		if err != nil {
			continue
		}
		var uerr error
		if out, uerr = polyset.Union(out, ps); uerr != nil {
			return polyset.PolygonSet{}, uerr
		}
	}
	return out, nil
}
