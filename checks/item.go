package checks

import (
	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/pathgen"
	"github.com/opencircuit/boarddrc/polyset"
)

// ItemKind tags which concrete board object an Item was built from. Modeled
// as a tagged variant rather than a virtual class hierarchy: every check
// operating on Items only reads the fields every kind contributes
// (Layer, Net, Polygons), never kind-specific state.
type ItemKind int

const (
	ItemVia ItemKind = iota
	ItemNetLine
	ItemPad
	ItemPlane
	ItemPolygon
	ItemCircle
	ItemStrokeText
)

// Item is one copper-bearing object's footprint for the clearance pass:
// its kind, identity, the layer it occupies (empty for a
// via, which is through-hole and intersects every layer), its net signal,
// and its (already offset) polygon footprint.
type Item struct {
	Kind     ItemKind
	ID       string
	Layer    string
	Net      board.NetSignal
	Polygons polyset.PolygonSet
}

// buildCopperItems appends one Item per copper-bearing object on every
// enabled copper layer, each offset by delta, in the order objects were
// appended (the order clearance-pass tie-breaking relies on: a pair is
// tested at most once, in the outer-loop iteration of its earlier item).
func buildCopperItems(ctx *Context, delta geom.Length) ([]Item, error) {
	tol := ctx.Settings.MaxArcTolerance
	var items []Item

	for _, seg := range ctx.Board.NetSegments() {
		for _, via := range seg.Vias {
			ps, err := pathgen.ViaCopper(via.Position, via.Size, tol)
			if err != nil {
				continue
			}
			ps, err = polyset.Offset(ps, delta)
			if err != nil {
				continue
			}
			items = append(items, Item{Kind: ItemVia, ID: "via:" + via.ID, Layer: "", Net: via.Net, Polygons: ps})
		}
		for _, nl := range seg.Lines {
			l, ok := ctx.Board.Layer(nl.Layer)
			if !ok || !l.IsCopper() || !l.IsEnabled() {
				continue
			}
			ps, err := pathgen.NetLine(nl.From, nl.To, nl.Width, tol)
			if err != nil {
				continue
			}
			ps, err = polyset.Offset(ps, delta)
			if err != nil {
				continue
			}
			items = append(items, Item{Kind: ItemNetLine, ID: "netline:" + nl.ID, Layer: nl.Layer, Net: nl.Net, Polygons: ps})
		}
	}

	for _, pl := range ctx.Board.Planes() {
		l, ok := ctx.Board.Layer(pl.Layer)
		if !ok || !l.IsCopper() || !l.IsEnabled() {
			continue
		}
		ps, err := pathgen.Plane(pl.Area, tol)
		if err != nil {
			continue
		}
		ps, err = polyset.Offset(ps, delta)
		if err != nil {
			continue
		}
		items = append(items, Item{Kind: ItemPlane, ID: "plane:" + pl.ID, Layer: pl.Layer, Net: pl.Net, Polygons: ps})
	}

	for _, poly := range ctx.Board.Polygons() {
		l, ok := ctx.Board.Layer(poly.Layer)
		if !ok || !l.IsCopper() || !l.IsEnabled() {
			continue
		}
		ps, err := pathgen.Polygon(poly.Outline, geom.Transform{}, tol)
		if err != nil {
			continue
		}
		ps, err = polyset.Offset(ps, delta)
		if err != nil {
			continue
		}
		items = append(items, Item{Kind: ItemPolygon, ID: "polygon:" + poly.ID, Layer: poly.Layer, Net: poly.Net, Polygons: ps})
	}

	for _, st := range ctx.Board.StrokeTexts() {
		l, ok := ctx.Board.Layer(st.Layer)
		if !ok || !l.IsCopper() || !l.IsEnabled() {
			continue
		}
		ps, err := pathgen.StrokeText(st.Strokes, st.Width, geom.Transform{}, tol)
		if err != nil {
			continue
		}
		ps, err = polyset.Offset(ps, delta)
		if err != nil {
			continue
		}
		items = append(items, Item{Kind: ItemStrokeText, ID: "stroketext:" + st.ID, Layer: st.Layer, Net: board.NoNet, Polygons: ps})
	}

	for _, dev := range ctx.Board.Devices() {
		for _, pad := range dev.Pads {
			for layerName := range pad.Layers {
				l, ok := ctx.Board.Layer(layerName)
				if !ok || !l.IsCopper() || !l.IsEnabled() {
					continue
				}
				ps, err := pathgen.Pad(pad.Layers, layerName, dev.Transform, tol)
				if err != nil {
					continue
				}
				ps, err = polyset.Offset(ps, delta)
				if err != nil {
					continue
				}
				items = append(items, Item{Kind: ItemPad, ID: "pad:" + pad.ID, Layer: layerName, Net: pad.Net, Polygons: ps})
			}
		}
		for _, poly := range dev.Polygons {
			l, ok := ctx.Board.Layer(poly.Layer)
			if !ok || !l.IsCopper() || !l.IsEnabled() {
				continue
			}
			ps, err := pathgen.Polygon(poly.Outline, dev.Transform, tol)
			if err != nil {
				continue
			}
			ps, err = polyset.Offset(ps, delta)
			if err != nil {
				continue
			}
			items = append(items, Item{Kind: ItemPolygon, ID: "devpolygon:" + poly.ID, Layer: poly.Layer, Net: poly.Net, Polygons: ps})
		}
		for _, circ := range dev.Circles {
			l, ok := ctx.Board.Layer(circ.Layer)
			if !ok || !l.IsCopper() || !l.IsEnabled() {
				continue
			}
			ps, err := pathgen.Circle(circ.Center, circ.Diameter, dev.Transform, tol)
			if err != nil {
				continue
			}
			ps, err = polyset.Offset(ps, delta)
			if err != nil {
				continue
			}
			items = append(items, Item{Kind: ItemCircle, ID: "circle:" + circ.ID, Layer: circ.Layer, Net: circ.Net, Polygons: ps})
		}
		for _, st := range dev.StrokeTexts {
			l, ok := ctx.Board.Layer(st.Layer)
			if !ok || !l.IsCopper() || !l.IsEnabled() {
				continue
			}
			ps, err := pathgen.StrokeText(st.Strokes, st.Width, dev.Transform, tol)
			if err != nil {
				continue
			}
			ps, err = polyset.Offset(ps, delta)
			if err != nil {
				continue
			}
			items = append(items, Item{Kind: ItemStrokeText, ID: "devstroketext:" + st.ID, Layer: st.Layer, Net: board.NoNet, Polygons: ps})
		}
	}

	return items, nil
}

// highlightWidth50um is the minimum highlight width (50 micrometres, in
// nanometres) so violation locations always render visibly even when the
// actual stroke width is razor-thin.
const highlightWidth50um geom.Length = 50000
