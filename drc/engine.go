package drc

import (
	"errors"
	"fmt"

	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/cache"
	"github.com/opencircuit/boarddrc/checks"
	"github.com/opencircuit/boarddrc/message"
	"github.com/opencircuit/boarddrc/settings"
)

// ErrCancelled is returned by Execute when the host raised the cancellation
// flag before the run finished. Messages emitted before the flag was
// observed stand; nothing further is emitted after the "cancelled" status.
var ErrCancelled = errors.New("drc: run cancelled")

// ErrAlreadyRunning is returned by Execute when a run is already in flight
// on this Engine. An Engine drives one run at a time.
var ErrAlreadyRunning = errors.New("drc: a run is already in progress")

// State is the engine's run-lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateAborted
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateAborted:
		return "aborted"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Engine coordinates one DRC run at a time over a borrowed board. It owns
// the run's cache and de-duplicating sink wrapper; the outer sink (the
// host's observer) is borrowed and receives every callback in emission
// order.
type Engine struct {
	board    board.Board
	settings *settings.DrcSettings
	sink     message.Sink
	state    State
}

// New binds an Engine to a board, a frozen settings object and the host's
// observer sink. The board is borrowed, never owned: the host must not
// mutate it while a run is in flight.
func New(b board.Board, s *settings.DrcSettings, sink message.Sink) *Engine {
	return &Engine{board: b, settings: s, sink: sink, state: StateIdle}
}

// State returns the engine's current lifecycle state.
func (e *Engine) State() State { return e.state }

// pass is one row of the run-sequence table: a status line for the host, a
// progress percentage reached when the pass completes, the check to run,
// and whether quick mode elides it.
type pass struct {
	status    string
	end       int
	fn        checks.CheckFunc
	quickSkip bool

	// rebuildAirWires marks the one pass whose input the coordinator must
	// refresh first (and only in full mode, where the pass runs at all).
	rebuildAirWires bool
}

// runSequence is the fixed pass order. Progress percentages are monotone by
// construction; quick mode skips the marked rows without disturbing the
// ordering of the rest.
var runSequence = []pass{
	{status: "checking minimum copper width", end: 14, fn: checks.MinimumCopperWidth},
	{status: "checking copper/copper clearances", end: 34, fn: checks.CopperCopperClearance},
	{status: "checking copper/board-outline clearances", end: 44, fn: checks.CopperBoardClearance},
	{status: "checking copper/hole clearances", end: 54, fn: checks.CopperHoleClearance},
	{status: "checking annular rings", end: 64, fn: checks.AnnularRing, quickSkip: true},
	{status: "checking drill and slot dimensions", end: 70, fn: checks.MinimumDrillSlot, quickSkip: true},
	{status: "checking slot shapes", end: 74, fn: checks.AllowedSlots, quickSkip: true},
	{status: "checking pad connections", end: 78, fn: checks.InvalidPadConnections, quickSkip: true},
	{status: "checking courtyard overlaps", end: 84, fn: checks.CourtyardClearance, quickSkip: true},
	{status: "checking for unplaced components", end: 88, fn: checks.UnplacedComponents, quickSkip: true},
	{status: "checking for missing connections", end: 93, fn: checks.MissingConnections, quickSkip: true, rebuildAirWires: true},
	{status: "checking for stale objects", end: 97, fn: checks.StaleObjects, quickSkip: true},
}

// Execute drives one full (or quick) run: Started, plane rebuild (full mode
// only), the run-sequence passes, Finished with the distinct-message count.
// cancel may be nil (the run is then uncancellable). Returns the number of
// distinct messages emitted, and ErrCancelled if the host aborted the run.
//
// A per-check internal failure does not abort the run: it is recorded as an
// Error-severity diagnostic message and the next pass proceeds.
func (e *Engine) Execute(quick bool, cancel *CancelFlag) (int, error) {
	if e.state == StateRunning {
		return 0, ErrAlreadyRunning
	}
	e.state = StateRunning

	sink := message.NewDedupSink(e.sink)
	ctx := &checks.Context{
		Board:    e.board,
		Settings: e.settings,
		Cache:    cache.New(e.board, e.settings),
		Sink:     sink,
	}
	if cancel != nil {
		ctx.Cancelled = cancel.Cancelled
	}

	sink.OnStarted()
	sink.OnProgress(2)

	if !quick {
		if e.abortIfCancelled(sink, cancel) {
			return sink.Count(), ErrCancelled
		}
		sink.OnStatus("rebuilding planes")
		e.board.RebuildAllPlanes()
		sink.OnProgress(12)
	}

	for _, p := range runSequence {
		if quick && p.quickSkip {
			continue
		}
		if e.abortIfCancelled(sink, cancel) {
			return sink.Count(), ErrCancelled
		}
		sink.OnStatus(p.status)
		if p.rebuildAirWires {
			e.board.ForceAirWiresRebuild()
		}
		if err := p.fn(ctx); err != nil {
			if errors.Is(err, checks.ErrCancelled) {
				e.abort(sink)
				return sink.Count(), ErrCancelled
			}
			sink.OnMessage(message.New(message.KindInternalError,
				fmt.Sprintf("internal error while %s: %v", p.status, err),
				"", []string{"check:" + p.status}))
		}
		sink.OnProgress(p.end)
	}

	count := sink.Count()
	sink.OnProgress(100)
	sink.OnFinished(count)
	e.state = StateFinished
	return count, nil
}

// abortIfCancelled polls the flag between passes; on cancellation it emits
// the final "cancelled" status and moves the engine to StateAborted.
func (e *Engine) abortIfCancelled(sink message.Sink, cancel *CancelFlag) bool {
	if cancel == nil || !cancel.Cancelled() {
		return false
	}
	e.abort(sink)
	return true
}

func (e *Engine) abort(sink message.Sink) {
	sink.OnStatus("cancelled")
	e.state = StateAborted
}
