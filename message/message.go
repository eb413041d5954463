package message

import (
	"fmt"

	"github.com/opencircuit/boarddrc/geom"
)

// Severity classifies how serious a DrcMessage is.
type Severity int

const (
	Hint Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Hint:
		return "hint"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Kind identifies which check produced a DrcMessage.
type Kind int

const (
	KindMinimumWidthViolation Kind = iota
	KindCopperCopperClearanceViolation
	KindCopperBoardClearanceViolation
	KindCopperHoleClearanceViolation
	KindMinimumAnnularRingViolation
	KindMinimumDrillDiameterViolation
	KindMinimumSlotWidthViolation
	KindForbiddenSlot
	KindInvalidPadConnection
	KindCourtyardOverlap
	KindMissingDevice
	KindMissingConnection
	KindEmptyNetSegment
	KindUnconnectedJunction
	KindInternalError
)

// defaultSeverity gives every Kind its severity:
// annular-ring/clearance/width violations are Warning; unplaced
// components, missing connections, invalid pad connections and forbidden
// slots are Error; stale objects are Hint.
var defaultSeverity = map[Kind]Severity{
	KindMinimumWidthViolation:          Warning,
	KindCopperCopperClearanceViolation: Warning,
	KindCopperBoardClearanceViolation:  Warning,
	KindCopperHoleClearanceViolation:   Warning,
	KindMinimumAnnularRingViolation:    Warning,
	KindMinimumDrillDiameterViolation:  Warning,
	KindMinimumSlotWidthViolation:      Warning,
	KindForbiddenSlot:                  Error,
	KindInvalidPadConnection:           Error,
	KindCourtyardOverlap:               Warning,
	KindMissingDevice:                  Error,
	KindMissingConnection:              Error,
	KindEmptyNetSegment:                Hint,
	KindUnconnectedJunction:            Hint,
	KindInternalError:                  Error,
}

// DrcMessage is one emitted violation or internal diagnostic.
type DrcMessage struct {
	Kind        Kind
	Text        string
	Severity    Severity
	ObjectIDs   []string // identifies the involved objects, for de-duplication
	Layer       string   // empty if the message is not layer-specific
	Locations   []geom.Path
}

// New constructs a DrcMessage with Kind's default severity.
func New(kind Kind, text string, layer string, objectIDs []string, locations ...geom.Path) DrcMessage {
	return DrcMessage{
		Kind:      kind,
		Text:      text,
		Severity:  defaultSeverity[kind],
		ObjectIDs: objectIDs,
		Layer:     layer,
		Locations: locations,
	}
}

// identity returns the (Kind, involved-object-ids, layer) key message
// emission de-duplicates on.
func (m DrcMessage) identity() string {
	key := m.Layer + "|"
	for _, id := range m.ObjectIDs {
		key += id + ","
	}
	return fmt.Sprintf("%d:%s", m.Kind, key)
}

// Sink receives messages and progress/status updates from a DRC run. It is
// owned exclusively by the drc.Engine for the duration of one run and is
// not safe to share across concurrent runs.
type Sink interface {
	OnStarted()
	OnProgress(percent int)
	OnStatus(text string)
	OnMessage(msg DrcMessage)
	OnFinished(count int)
}

// DedupSink wraps another Sink and drops messages whose
// (Kind, involved-object-ids, layer) identity was already emitted this run,
// so individual checks never need to track their own de-duplication state.
type DedupSink struct {
	inner Sink
	seen  map[string]struct{}
	count int
}

// NewDedupSink wraps inner.
func NewDedupSink(inner Sink) *DedupSink {
	return &DedupSink{inner: inner, seen: make(map[string]struct{})}
}

func (d *DedupSink) OnStarted()              { d.inner.OnStarted() }
func (d *DedupSink) OnProgress(percent int)  { d.inner.OnProgress(percent) }
func (d *DedupSink) OnStatus(text string)    { d.inner.OnStatus(text) }
func (d *DedupSink) OnFinished(count int)    { d.inner.OnFinished(count) }

// Count returns the number of distinct messages emitted so far.
func (d *DedupSink) Count() int { return d.count }

func (d *DedupSink) OnMessage(msg DrcMessage) {
	key := msg.identity()
	if _, dup := d.seen[key]; dup {
		return
	}
	d.seen[key] = struct{}{}
	d.count++
	d.inner.OnMessage(msg)
}
