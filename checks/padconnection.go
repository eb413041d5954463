package checks

import (
	"fmt"

	"github.com/opencircuit/boarddrc/message"
	"github.com/opencircuit/boarddrc/pathgen"
	"github.com/opencircuit/boarddrc/polyset"
)

// InvalidPadConnections verifies that on every copper layer carrying a
// net-line attached to a pad, the pad's filled copper actually contains the
// pad's origin point. The router connects traces to the origin; if the
// origin lies outside the copper on that layer, the connection exists only
// on paper.
func InvalidPadConnections(ctx *Context) error {
	tol := ctx.Settings.MaxArcTolerance
	for _, dev := range ctx.Board.Devices() {
		for _, pad := range dev.Pads {
			origin := dev.Transform.Apply(pad.Position)
			for layerName := range pad.ConnectedLayers {
				if !pad.ConnectedLayers[layerName] || !copperEnabled(ctx.Board, layerName) {
					continue
				}
				footprint, err := pathgen.Pad(pad.Layers, layerName, dev.Transform, tol)
				if err != nil {
					// No geometry at all on a layer the router connected to
					// is itself an invalid connection.
					ctx.Sink.OnMessage(message.New(message.KindInvalidPadConnection,
						fmt.Sprintf("pad %s has no copper on layer %s but a net-line is connected there", pad.ID, layerName),
						layerName, []string{"pad:" + pad.ID}))
					continue
				}
				if polyset.Contains(footprint, origin) {
					continue
				}
				ctx.Sink.OnMessage(message.New(message.KindInvalidPadConnection,
					fmt.Sprintf("pad %s origin is outside its copper on layer %s", pad.ID, layerName),
					layerName, []string{"pad:" + pad.ID}, footprint.Paths()...))
			}
		}
	}
	return nil
}
