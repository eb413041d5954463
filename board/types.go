package board

import "github.com/google/uuid"

// Special, stable layer names the checks look up by name.
const (
	LayerBoardOutlines = "board_outlines"
	LayerTopCourtyard  = "top_courtyard"
	LayerBotCourtyard  = "bot_courtyard"
)

// Layer is an opaque layer identity with the predicates the checks need.
type Layer struct {
	name    string
	copper  bool
	top     bool
	bottom  bool
	enabled bool
}

// NewLayer constructs a Layer. Boards build their layer stack with this at
// load time; the DRC engine only ever reads Layer values handed to it.
func NewLayer(name string, copper, top, bottom, enabled bool) Layer {
	return Layer{name: name, copper: copper, top: top, bottom: bottom, enabled: enabled}
}

func (l Layer) Name() string    { return l.name }
func (l Layer) IsCopper() bool  { return l.copper }
func (l Layer) IsTop() bool     { return l.top }
func (l Layer) IsBottom() bool  { return l.bottom }
func (l Layer) IsEnabled() bool { return l.enabled }

// NetSignal is the electrical identity shared by conductors that must be
// connected. The zero value is "None" (isolated, no net).
type NetSignal struct {
	id uuid.UUID
}

// NewNetSignal wraps an existing identity (e.g. loaded from storage).
func NewNetSignal(id uuid.UUID) NetSignal { return NetSignal{id: id} }

// NoNet is the "isolated" net signal.
var NoNet = NetSignal{}

// IsNone reports whether n represents "isolated" (no net).
func (n NetSignal) IsNone() bool { return n.id == uuid.Nil }

// ID returns the underlying UUID.
func (n NetSignal) ID() uuid.UUID { return n.id }

// SameNet reports whether a and b are the same, non-isolated net.
func SameNet(a, b NetSignal) bool {
	return !a.IsNone() && !b.IsNone() && a.id == b.id
}
