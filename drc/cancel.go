package drc

import "sync/atomic"

// CancelFlag is the cancellation token a host hands to Execute. The host
// raises it (possibly from another goroutine, hence the atomic) and the
// engine polls it between passes and between the outer iteration loops of
// the copper/copper clearance pass. Once raised it stays raised; a flag is
// good for one run.
type CancelFlag struct {
	raised atomic.Bool
}

// Cancel raises the flag. Safe to call from any goroutine, idempotent.
func (c *CancelFlag) Cancel() { c.raised.Store(true) }

// Cancelled reports whether Cancel was called.
func (c *CancelFlag) Cancelled() bool { return c.raised.Load() }
