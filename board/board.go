package board

import (
	"fmt"

	"github.com/google/uuid"
)

// Board is the external collaborator the DRC engine consumes. It is
// read-only for the duration of a run except for RebuildAllPlanes and
// ForceAirWiresRebuild, each invoked exactly once by the coordinator and
// never by an individual check.
type Board interface {
	CopperLayers() []Layer
	Layer(name string) (Layer, bool)

	NetSegments() []NetSegment
	Planes() []Plane
	Polygons() []Polygon
	StrokeTexts() []StrokeText
	Holes() []Hole
	Devices() []Device
	AirWires() []AirWire
	ComponentInstances() []ComponentInstance

	DeviceByComponentUUID(id uuid.UUID) (Device, bool)

	RebuildAllPlanes()
	ForceAirWiresRebuild()
}

// MemoryBoard is a minimal, directly-constructible in-memory Board,
// standing in for the host application's real board in tests and examples.
// It is not safe for concurrent mutation; callers add content before
// handing it to a DRC run, which treats the board as read-only.
type MemoryBoard struct {
	layers       []Layer
	layersByName map[string]int

	segments   []NetSegment
	planes     []Plane
	polygons   []Polygon
	strokes    []StrokeText
	holes      []Hole
	devices    []Device
	airWires   []AirWire
	components []ComponentInstance

	pendingDevices map[int]Device // PrepareAddDevice handles awaiting commit
	nextHandle     int

	planesRebuilt   int
	airWiresRebuilt int
}

// NewMemoryBoard returns an empty board with no layers.
func NewMemoryBoard() *MemoryBoard {
	return &MemoryBoard{
		layersByName:   make(map[string]int),
		pendingDevices: make(map[int]Device),
	}
}

// AddLayer appends a layer to the board's stack.
func (b *MemoryBoard) AddLayer(l Layer) {
	b.layersByName[l.name] = len(b.layers)
	b.layers = append(b.layers, l)
}

func (b *MemoryBoard) CopperLayers() []Layer {
	out := make([]Layer, 0, len(b.layers))
	for _, l := range b.layers {
		if l.IsCopper() && l.IsEnabled() {
			out = append(out, l)
		}
	}
	return out
}

func (b *MemoryBoard) Layer(name string) (Layer, bool) {
	i, ok := b.layersByName[name]
	if !ok {
		return Layer{}, false
	}
	return b.layers[i], true
}

func (b *MemoryBoard) AddNetSegment(s NetSegment)    { b.segments = append(b.segments, s) }
func (b *MemoryBoard) AddPlane(p Plane)              { b.planes = append(b.planes, p) }
func (b *MemoryBoard) AddPolygon(p Polygon)          { b.polygons = append(b.polygons, p) }
func (b *MemoryBoard) AddStrokeText(s StrokeText)    { b.strokes = append(b.strokes, s) }
func (b *MemoryBoard) AddHole(h Hole)                { b.holes = append(b.holes, h) }
func (b *MemoryBoard) AddAirWire(a AirWire)          { b.airWires = append(b.airWires, a) }
func (b *MemoryBoard) AddComponentInstance(c ComponentInstance) {
	b.components = append(b.components, c)
}

func (b *MemoryBoard) NetSegments() []NetSegment               { return b.segments }
func (b *MemoryBoard) Planes() []Plane                         { return b.planes }
func (b *MemoryBoard) Polygons() []Polygon                     { return b.polygons }
func (b *MemoryBoard) StrokeTexts() []StrokeText               { return b.strokes }
func (b *MemoryBoard) Holes() []Hole                           { return b.holes }
func (b *MemoryBoard) Devices() []Device                       { return b.devices }
func (b *MemoryBoard) AirWires() []AirWire                     { return b.airWires }
func (b *MemoryBoard) ComponentInstances() []ComponentInstance { return b.components }

// Vias aggregates every via across every net segment into one flat list.
// It is a MemoryBoard convenience, not part of the Board interface; the
// checks read vias through NetSegments.
func (b *MemoryBoard) Vias() []Via {
	out := make([]Via, 0)
	for _, seg := range b.segments {
		out = append(out, seg.Vias...)
	}
	return out
}

func (b *MemoryBoard) DeviceByComponentUUID(id uuid.UUID) (Device, bool) {
	for _, d := range b.devices {
		if d.ComponentUUID == id {
			return d, true
		}
	}
	return Device{}, false
}

// RebuildAllPlanes recomputes every plane's filled area. MemoryBoard has no
// real copper-pour algorithm to run (flood-filling is the host's library
// concern, entirely outside the DRC engine); it simply records that a
// rebuild happened so tests can assert it ran exactly
// once per non-quick run, and leaves each Plane.Area as already populated
// by the caller.
func (b *MemoryBoard) RebuildAllPlanes() { b.planesRebuilt++ }

// PlanesRebuiltCount reports how many times RebuildAllPlanes ran.
func (b *MemoryBoard) PlanesRebuiltCount() int { return b.planesRebuilt }

// ForceAirWiresRebuild recomputes the air-wire list. MemoryBoard has no
// netlist-inference engine of its own; callers populate AirWires directly
// via AddAirWire and this simply records that a rebuild was requested.
func (b *MemoryBoard) ForceAirWiresRebuild() { b.airWiresRebuilt++ }

// AirWiresRebuiltCount reports how many times ForceAirWiresRebuild ran.
func (b *MemoryBoard) AirWiresRebuiltCount() int { return b.airWiresRebuilt }

// AddDevice prepares and commits d in one step, for callers with no use
// for the two-phase protocol.
func (b *MemoryBoard) AddDevice(d Device) error {
	h, err := b.PrepareAddDevice(d)
	if err != nil {
		return err
	}
	return b.CommitAddDevice(h)
}

// PrepareAddDevice checks that a new device's pad IDs are non-empty and
// unique within the device and reserves a commit handle, without yet
// making the device visible to Devices(). If any pad fails that check,
// nothing is reserved and no handle is issued, so a partially-added device
// is never visible.
func (b *MemoryBoard) PrepareAddDevice(d Device) (handle int, err error) {
	seen := make(map[string]bool)
	for _, p := range d.Pads {
		if p.ID == "" || seen[p.ID] {
			return 0, fmt.Errorf("PrepareAddDevice(%s): pad %q: %w", d.ID, p.ID, ErrDeviceAttachFailed)
		}
		seen[p.ID] = true
	}
	b.nextHandle++
	h := b.nextHandle
	b.pendingDevices[h] = d
	return h, nil
}

// CommitAddDevice makes a previously prepared device visible.
func (b *MemoryBoard) CommitAddDevice(handle int) error {
	d, ok := b.pendingDevices[handle]
	if !ok {
		return ErrUnknownHandle
	}
	delete(b.pendingDevices, handle)
	b.devices = append(b.devices, d)
	return nil
}

// RollbackAddDevice discards a previously prepared device without ever
// making it (or any of its pads) visible on the board.
func (b *MemoryBoard) RollbackAddDevice(handle int) error {
	if _, ok := b.pendingDevices[handle]; !ok {
		return ErrUnknownHandle
	}
	delete(b.pendingDevices, handle)
	return nil
}
