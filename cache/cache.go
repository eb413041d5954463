package cache

import (
	"sort"
	"strings"

	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/pathgen"
	"github.com/opencircuit/boarddrc/polyset"
	"github.com/opencircuit/boarddrc/settings"
)

// Key identifies one memoized polygon set: a copper layer name, the sorted
// set of net-signal UUIDs restricting it (empty string means "every net,
// unfiltered"), and whether flood planes are excluded from the union.
type Key struct {
	Layer        string
	Nets         string
	IgnorePlanes bool
}

// netsKey renders nets into Key.Nets: sorted, comma-joined UUID strings, a
// cheap and inspectable map key rather than an opaque hash.
func netsKey(nets []board.NetSignal) string {
	if len(nets) == 0 {
		return ""
	}
	ids := make([]string, 0, len(nets))
	for _, n := range nets {
		ids = append(ids, n.ID().String())
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

func netsContains(nets []board.NetSignal, n board.NetSignal) bool {
	for _, want := range nets {
		if board.SameNet(want, n) {
			return true
		}
	}
	return false
}

// Cache memoizes per-layer copper polygon sets for one DRC run. It is
// single-threaded and read-only once populated; never shared across runs.
type Cache struct {
	board    board.Board
	settings *settings.DrcSettings
	entries  map[Key]polyset.PolygonSet
}

// New constructs an empty Cache bound to b and s for the duration of one
// DRC run.
func New(b board.Board, s *settings.DrcSettings) *Cache {
	return &Cache{board: b, settings: s, entries: make(map[Key]polyset.PolygonSet)}
}

// Layer returns the union of every copper-bearing object on layer,
// optionally restricted to nets (nil/empty means every net) and optionally
// excluding flood planes, computing it on first request and memoizing the
// result under the (layer, nets, ignorePlanes) key for the rest of the run.
func (c *Cache) Layer(layer string, nets []board.NetSignal, ignorePlanes bool) (polyset.PolygonSet, error) {
	key := Key{Layer: layer, Nets: netsKey(nets), IgnorePlanes: ignorePlanes}
	if ps, ok := c.entries[key]; ok {
		return ps, nil
	}
	ps, err := c.build(layer, nets, ignorePlanes)
	if err != nil {
		return polyset.PolygonSet{}, err
	}
	c.entries[key] = ps
	return ps, nil
}

func (c *Cache) build(layer string, nets []board.NetSignal, ignorePlanes bool) (polyset.PolygonSet, error) {
	tol := c.settings.MaxArcTolerance
	out := polyset.Empty(tol)
	include := func(n board.NetSignal) bool {
		return len(nets) == 0 || netsContains(nets, n)
	}

	for _, seg := range c.board.NetSegments() {
		if !include(seg.Net) {
			continue
		}
		for _, via := range seg.Vias {
			ps, err := pathgen.ViaCopper(via.Position, via.Size, tol)
			if err != nil {
				continue
			}
			if out, err = polyset.Union(out, ps); err != nil {
				return polyset.PolygonSet{}, err
			}
		}
		for _, nl := range seg.Lines {
			if nl.Layer != layer {
				continue
			}
			ps, err := pathgen.NetLine(nl.From, nl.To, nl.Width, tol)
			if err != nil {
				continue
			}
			if out, err = polyset.Union(out, ps); err != nil {
				return polyset.PolygonSet{}, err
			}
		}
	}

	if !ignorePlanes {
		for _, pl := range c.board.Planes() {
			if pl.Layer != layer || !include(pl.Net) {
				continue
			}
			ps, err := pathgen.Plane(pl.Area, tol)
			if err != nil {
				continue
			}
			if out, err = polyset.Union(out, ps); err != nil {
				return polyset.PolygonSet{}, err
			}
		}
	}

	for _, poly := range c.board.Polygons() {
		if poly.Layer != layer || !include(poly.Net) {
			continue
		}
		ps, err := pathgen.Polygon(poly.Outline, geom.Transform{}, tol)
		if err != nil {
			continue
		}
		if out, err = polyset.Union(out, ps); err != nil {
			return polyset.PolygonSet{}, err
		}
	}

	if len(nets) == 0 {
		for _, st := range c.board.StrokeTexts() {
			if st.Layer != layer {
				continue
			}
			ps, err := pathgen.StrokeText(st.Strokes, st.Width, geom.Transform{}, tol)
			if err != nil {
				continue
			}
			if out, err = polyset.Union(out, ps); err != nil {
				return polyset.PolygonSet{}, err
			}
		}
	}

	for _, dev := range c.board.Devices() {
		for _, pad := range dev.Pads {
			if !include(pad.Net) {
				continue
			}
			ps, err := pathgen.Pad(pad.Layers, layer, dev.Transform, tol)
			if err != nil {
				continue
			}
			if out, err = polyset.Union(out, ps); err != nil {
				return polyset.PolygonSet{}, err
			}
		}
		for _, poly := range dev.Polygons {
			if poly.Layer != layer || !include(poly.Net) {
				continue
			}
			ps, err := pathgen.Polygon(poly.Outline, dev.Transform, tol)
			if err != nil {
				continue
			}
			if out, err = polyset.Union(out, ps); err != nil {
				return polyset.PolygonSet{}, err
			}
		}
		for _, circ := range dev.Circles {
			if circ.Layer != layer || !include(circ.Net) {
				continue
			}
			ps, err := pathgen.Circle(circ.Center, circ.Diameter, dev.Transform, tol)
			if err != nil {
				continue
			}
			if out, err = polyset.Union(out, ps); err != nil {
				return polyset.PolygonSet{}, err
			}
		}
		if len(nets) == 0 {
			for _, st := range dev.StrokeTexts {
				if st.Layer != layer {
					continue
				}
				ps, err := pathgen.StrokeText(st.Strokes, st.Width, dev.Transform, tol)
				if err != nil {
					continue
				}
				if out, err = polyset.Union(out, ps); err != nil {
					return polyset.PolygonSet{}, err
				}
			}
		}
	}

	return out, nil
}
