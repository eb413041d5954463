package pathgen

import (
	"fmt"

	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/polyset"
)

// disc builds the closed circular footprint of diameter d centred at p.
// Shared by Via (copper annulus / drill) and round Hole footprints.
func disc(p geom.Point, d geom.Length, tol geom.UnsignedLength) (polyset.PolygonSet, error) {
	pd, err := geom.NewPositiveLength(d)
	if err != nil {
		return polyset.PolygonSet{}, fmt.Errorf("pathgen.disc: %w", err)
	}
	path := geom.Circle(pd).Translated(p)
	return polyset.FromPaths(tol, path)
}

// ViaCopper returns the copper annulus footprint of a via: a disc of the
// given outer diameter centred at position.
func ViaCopper(position geom.Point, diameter geom.PositiveLength, tol geom.UnsignedLength) (polyset.PolygonSet, error) {
	return disc(position, diameter.Value(), tol)
}

// ViaDrill returns the drilled-hole footprint of a via: a disc of the given
// drill diameter centred at position.
func ViaDrill(position geom.Point, drill geom.PositiveLength, tol geom.UnsignedLength) (polyset.PolygonSet, error) {
	return disc(position, drill.Value(), tol)
}

// NetLine returns the obround footprint of a straight trace segment of the
// given width between from and to.
func NetLine(from, to geom.Point, width geom.PositiveLength, tol geom.UnsignedLength) (polyset.PolygonSet, error) {
	path, err := geom.Obround(from, to, width)
	if err != nil {
		return polyset.PolygonSet{}, fmt.Errorf("pathgen.NetLine: %w", err)
	}
	return polyset.FromPaths(tol, path)
}

// Plane returns a plane's already-computed filled area as a PolygonSet. The
// DRC engine never recomputes plane fill itself; it only reads the Area the
// host's flood-fill populated via RebuildAllPlanes.
func Plane(area geom.Path, tol geom.UnsignedLength) (polyset.PolygonSet, error) {
	return polyset.FromPaths(tol, area)
}

// Polygon returns a board or device polygon's filled footprint, with
// transform applied (identity for board-level polygons).
func Polygon(outline geom.Path, transform geom.Transform, tol geom.UnsignedLength) (polyset.PolygonSet, error) {
	return polyset.FromPaths(tol, transform.ApplyPath(outline))
}

// Circle returns a filled-disc footprint translated to center and placed by
// transform. The disc is always translated to its actual center before any
// transform is applied, never left at the local origin.
func Circle(center geom.Point, diameter geom.PositiveLength, transform geom.Transform, tol geom.UnsignedLength) (polyset.PolygonSet, error) {
	local := geom.Circle(diameter).Translated(center)
	return polyset.FromPaths(tol, transform.ApplyPath(local))
}

// StrokeText returns the union of every stroke's outline, stroked at width
// and placed by transform.
func StrokeText(strokes []geom.Path, width geom.PositiveLength, transform geom.Transform, tol geom.UnsignedLength) (polyset.PolygonSet, error) {
	out := polyset.Empty(tol)
	for _, s := range strokes {
		outline, err := s.ToOutlineStrokes(width, tol)
		if err != nil {
			// A single degenerate stroke (e.g. a dot glyph collapsed to one
			// point) should not sink the whole glyph; skip it.
			continue
		}
		one, err := polyset.FromPaths(tol, transform.ApplyPath(outline))
		if err != nil {
			continue
		}
		out, err = polyset.Union(out, one)
		if err != nil {
			return polyset.PolygonSet{}, fmt.Errorf("pathgen.StrokeText: %w", err)
		}
	}
	return out, nil
}

// Pad returns the footprint pad carries on layer, placed by transform.
// Reports ErrNoLayerGeometry if the pad has no entry for that layer.
func Pad(layers map[string]geom.Path, layer string, transform geom.Transform, tol geom.UnsignedLength) (polyset.PolygonSet, error) {
	outline, ok := layers[layer]
	if !ok {
		return polyset.PolygonSet{}, fmt.Errorf("pathgen.Pad(%s): %w", layer, ErrNoLayerGeometry)
	}
	return polyset.FromPaths(tol, transform.ApplyPath(outline))
}

// Hole returns a drilled hole's footprint stroked to diameter: a disc for a
// round hole (a single-vertex Path), or the path's outline stroked to
// diameter for a slot.
func Hole(path geom.Path, diameter geom.PositiveLength, transform geom.Transform, tol geom.UnsignedLength) (polyset.PolygonSet, error) {
	if len(path.Vertices) == 0 {
		return polyset.PolygonSet{}, fmt.Errorf("pathgen.Hole: empty path: %w", geom.ErrGeometryDomain)
	}
	placed := transform.ApplyPath(path)
	if len(placed.Vertices) == 1 {
		return disc(placed.Vertices[0].Pos, diameter.Value(), tol)
	}
	outline, err := placed.ToOutlineStrokes(diameter, tol)
	if err != nil {
		return polyset.PolygonSet{}, fmt.Errorf("pathgen.Hole: %w", err)
	}
	return polyset.FromPaths(tol, outline)
}
