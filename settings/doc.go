// Package settings holds DrcSettings, the parameterised set of geometric,
// electrical and manufacturing thresholds a DRC run checks a board against.
// Settings are built with functional options (SettingOption): validate and
// default at construction, no hidden globals, zero means "disabled" for
// every numeric threshold.
package settings
