package checks

import (
	"errors"

	"github.com/opencircuit/boarddrc/board"
	"github.com/opencircuit/boarddrc/cache"
	"github.com/opencircuit/boarddrc/message"
	"github.com/opencircuit/boarddrc/settings"
)

// ErrCancelled is returned by a check that observed the run's cancellation
// flag mid-flight. The coordinator treats it as "stop the run now" rather
// than as an internal diagnostic.
var ErrCancelled = errors.New("checks: run cancelled")

// Context bundles the inputs every check procedure needs: the board being
// checked, the thresholds to check it against, the run's shared
// copper-paths cache, the sink every emitted DrcMessage is sent to, and the
// run's cancellation poll.
type Context struct {
	Board    board.Board
	Settings *settings.DrcSettings
	Cache    *cache.Cache
	Sink     message.Sink

	// Cancelled polls the host's cancellation flag. May be nil (never
	// cancelled). Only the long outer loops of the heavyweight checks
	// consult it; everything else relies on the coordinator's between-pass
	// polling.
	Cancelled func() bool
}

// IsCancelled reports whether the host raised the cancellation flag.
func (c *Context) IsCancelled() bool {
	return c.Cancelled != nil && c.Cancelled()
}

// CheckFunc is the uniform shape of a check procedure. The coordinator
// invokes it with a Context already carrying this run's cache and sink, and
// records any returned non-cancellation error as an internal-diagnostic
// message rather than aborting the run.
type CheckFunc func(*Context) error
