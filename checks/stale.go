package checks

import (
	"fmt"

	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/message"
)

// StaleObjects flags leftover structure the editor should have cleaned up:
// net-segments that carry no lines at all, and net-points no line is
// incident on.
func StaleObjects(ctx *Context) error {
	for _, seg := range ctx.Board.NetSegments() {
		if len(seg.Lines) == 0 {
			ctx.Sink.OnMessage(message.New(message.KindEmptyNetSegment,
				fmt.Sprintf("net segment %s has no lines", seg.ID),
				"", []string{"netsegment:" + seg.ID}))
		}
		for _, pt := range seg.Points {
			if pt.LineCount != 0 {
				continue
			}
			locs := make([]geom.Path, 0, 1)
			if d, err := geom.NewPositiveLength(highlightWidth50um); err == nil {
				locs = append(locs, geom.Circle(d).Translated(pt.Position))
			}
			ctx.Sink.OnMessage(message.New(message.KindUnconnectedJunction,
				fmt.Sprintf("junction %s has no connected lines", pt.ID),
				"", []string{"netpoint:" + pt.ID}, locs...))
		}
	}
	return nil
}
