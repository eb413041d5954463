package checks

import (
	"fmt"

	"github.com/opencircuit/boarddrc/message"
)

// UnplacedComponents flags every schematic component that should have a
// placed device on the board but does not. Components marked
// schematic-only are exempt.
func UnplacedComponents(ctx *Context) error {
	for _, comp := range ctx.Board.ComponentInstances() {
		if comp.SchematicOnly {
			continue
		}
		if _, ok := ctx.Board.DeviceByComponentUUID(comp.UUID); ok {
			continue
		}
		ctx.Sink.OnMessage(message.New(message.KindMissingDevice,
			fmt.Sprintf("component %s has no device placed on the board", comp.Designator),
			"", []string{"component:" + comp.UUID.String()}))
	}
	return nil
}
