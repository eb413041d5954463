// Package boarddrc is a board design-rule-check engine for printed-circuit
// boards: it validates a fully-populated board (traces, vias, pads, planes,
// holes, polygons, stroke text, device placements) against a parameterised
// set of geometric, electrical and manufacturing constraints, and streams
// typed violation messages plus progress telemetry to its host.
//
// Everything is organized under focused subpackages:
//
//	geom/     — fixed-point geometry kernel: Length/Point/Angle, arc-aware
//	            paths, outline stroking, affine transforms
//	polyset/  — polygon algebra: boolean union/intersection/difference and
//	            signed offsetting over closed polygon sets
//	pathgen/  — adapters turning board objects into per-layer polygon
//	            footprints
//	cache/    — per-run memo of per-layer copper polygon sets
//	board/    — the consumed board-model interfaces plus an in-memory
//	            reference implementation
//	settings/ — DrcSettings, the thresholds a run checks against
//	message/  — DrcMessage, severities, the observer Sink
//	checks/   — the individual check procedures
//	drc/      — the run coordinator: ordering, quick mode, progress,
//	            cancellation
//
// A minimal run:
//
//	s, _ := settings.New(settings.WithMinCopperCopperClearance(200_000))
//	rec := &message.Recorder{}
//	engine := drc.New(myBoard, s, rec)
//	count, err := engine.Execute(false, nil)
//
// All lengths are nanometres; all polygon operations in a run share one
// maximum arc tolerance so that offsetting and intersection stay
// numerically consistent.
package boarddrc
