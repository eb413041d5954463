package settings

import "errors"

// ErrInvalidRange is returned by New if its built-in default arc tolerance
// fails its UnsignedLength range check. An out-of-range caller-supplied
// threshold makes its option constructor panic instead, so an invalid
// range surfaces only at construction time and never inside a run.
var ErrInvalidRange = errors.New("settings: invalid range")
