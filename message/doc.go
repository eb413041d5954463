// Package message defines DrcMessage, the typed violation/status union the
// DRC engine streams to its host, plus the Sink interface the checks and
// coordinator emit through. Message identity is unique per
// (Kind, involved object IDs, layer) within a run; the Sink is responsible
// for that de-duplication so individual checks can stay simple.
package message
