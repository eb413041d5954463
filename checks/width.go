package checks

import (
	"fmt"

	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/message"
)

// MinimumCopperWidth requires every stroke-text on an enabled copper
// layer, every net-line, every plane (against its own configured minimum
// width), and every device stroke-text on a copper layer to meet the
// minimum copper width.
func MinimumCopperWidth(ctx *Context) error {
	threshold := ctx.Settings.MinCopperWidth
	if threshold.IsZero() {
		return nil
	}
	tol := ctx.Settings.MaxArcTolerance
	min := threshold.Value()

	for _, seg := range ctx.Board.NetSegments() {
		for _, nl := range seg.Lines {
			if nl.Width.Value() >= min {
				continue
			}
			if !copperEnabled(ctx.Board, nl.Layer) {
				continue
			}
			loc, err := highlightObround(nl.From, nl.To, nl.Width.Value(), tol)
			if err != nil {
				continue
			}
			ctx.Sink.OnMessage(message.New(message.KindMinimumWidthViolation,
				fmt.Sprintf("net-line %s width %d nm below minimum %d nm", nl.ID, nl.Width.Value(), min),
				nl.Layer, []string{"netline:" + nl.ID}, loc))
		}
	}

	for _, pl := range ctx.Board.Planes() {
		if pl.MinWidth.Value() >= min || !copperEnabled(ctx.Board, pl.Layer) {
			continue
		}
		ctx.Sink.OnMessage(message.New(message.KindMinimumWidthViolation,
			fmt.Sprintf("plane %s min width %d nm below minimum %d nm", pl.ID, pl.MinWidth.Value(), min),
			pl.Layer, []string{"plane:" + pl.ID}, pl.Area))
	}

	checkStrokeText := func(id string, st board.StrokeText, transform geom.Transform) {
		if st.Width.Value() >= min || !copperEnabled(ctx.Board, st.Layer) {
			return
		}
		locs := make([]geom.Path, 0, len(st.Strokes))
		for _, s := range st.Strokes {
			hw, err := geom.NewPositiveLength(maxLength(st.Width.Value(), highlightWidth50um))
			if err != nil {
				continue
			}
			outline, err := transform.ApplyPath(s).ToOutlineStrokes(hw, tol)
			if err != nil {
				continue
			}
			locs = append(locs, outline)
		}
		ctx.Sink.OnMessage(message.New(message.KindMinimumWidthViolation,
			fmt.Sprintf("stroke text %s width %d nm below minimum %d nm", id, st.Width.Value(), min),
			st.Layer, []string{"stroketext:" + id}, locs...))
	}

	for _, st := range ctx.Board.StrokeTexts() {
		checkStrokeText(st.ID, st, geom.Transform{})
	}
	for _, dev := range ctx.Board.Devices() {
		for _, st := range dev.StrokeTexts {
			checkStrokeText(st.ID, st, dev.Transform)
		}
	}

	return nil
}

func copperEnabled(b board.Board, layer string) bool {
	l, ok := b.Layer(layer)
	return ok && l.IsCopper() && l.IsEnabled()
}

func maxLength(a, b geom.Length) geom.Length {
	if a > b {
		return a
	}
	return b
}

// highlightObround builds a violation location for a net-line: its outline
// stroked at max(actual width, 50 um) so the highlight is always visible.
func highlightObround(from, to geom.Point, actualWidth geom.Length, tol geom.UnsignedLength) (geom.Path, error) {
	hw, err := geom.NewPositiveLength(maxLength(actualWidth, highlightWidth50um))
	if err != nil {
		return geom.Path{}, err
	}
	return geom.Obround(from, to, hw)
}
