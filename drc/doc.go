// Package drc is the board design-rule-check coordinator: it owns one run's
// copper-paths cache and de-duplicating message sink, drives the check
// procedures in a fixed order, reports monotone progress, elides the
// heavyweight passes in quick mode, and observes the host's cancellation
// flag between passes.
//
// A run is single-threaded and cooperative: the board is read-only while
// the engine holds it, except for the two documented refreshes (plane
// rebuild, air-wire rebuild) which the coordinator invokes exactly once
// each and only in full mode. Observer callbacks on the sink are the
// engine's suspension points; the host pumps its own I/O (and may raise the
// cancellation flag) from inside them.
//
//	engine.go — Engine, Execute, the run-sequence table
//	cancel.go — CancelFlag, the host-raised cancellation token
package drc
