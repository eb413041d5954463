package pathgen

import "errors"

// ErrNoLayerGeometry indicates a pad has no footprint entry for the
// requested layer (a purely SMT pad queried on a layer it does not occupy).
var ErrNoLayerGeometry = errors.New("pathgen: object has no geometry on that layer")
