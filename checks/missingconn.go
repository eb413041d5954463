package checks

import (
	"fmt"

	"github.com/opencircuit/boarddrc/geom"
	"github.com/opencircuit/boarddrc/message"
)

// MissingConnections flags every remaining air-wire as an unrouted
// connection. The coordinator refreshes the board's air-wire list before
// this check runs (that refresh is its job, never this check's); here the
// list is only read. The highlight is an obround of 50 um between the
// air-wire's endpoints so even a hairline connection renders visibly.
func MissingConnections(ctx *Context) error {
	for i, aw := range ctx.Board.AirWires() {
		id := fmt.Sprintf("airwire:%d", i)
		locs := make([]geom.Path, 0, 1)
		if hw, err := geom.NewPositiveLength(highlightWidth50um); err == nil {
			if ob, err := geom.Obround(aw.From, aw.To, hw); err == nil {
				locs = append(locs, ob)
			}
		}
		ctx.Sink.OnMessage(message.New(message.KindMissingConnection,
			fmt.Sprintf("missing connection between (%d,%d) and (%d,%d)", aw.From.X, aw.From.Y, aw.To.X, aw.To.Y),
			"", []string{id}, locs...))
	}
	return nil
}
