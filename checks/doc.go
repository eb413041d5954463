// Package checks implements the DRC check procedures, one file per check,
// each a func(*Context) error the drc.Engine coordinator invokes in its
// fixed run-sequence order.
//
//	context.go        — Context (board/settings/cache/sink bundle), shared helpers
//	item.go           — Item, the tagged-variant record of the clearance pass
//	width.go          — minimum copper width
//	coppercopper.go   — copper/copper clearance
//	copperboard.go    — copper/board-outline clearance
//	copperhole.go     — copper/NPTH-hole clearance
//	annularring.go    — minimum annular ring
//	drillslot.go      — minimum drill/slot dimensions
//	allowedslots.go   — allowed slot policies
//	padconnection.go  — invalid pad connections
//	courtyard.go      — courtyard clearance
//	unplaced.go       — unplaced components
//	missingconn.go    — missing connections
//	stale.go          — stale objects
package checks
