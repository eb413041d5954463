package polyset

import "errors"

// ErrPolygonAlgebra indicates a failure inside the boolean-operation layer
// (in practice, numerical overflow from coordinates outside
// geom.MaxCoordinate). Checks recover from this the same way they recover
// from geom.ErrGeometryDomain: skip the offending object, continue.
var ErrPolygonAlgebra = errors.New("polyset: polygon algebra failure")
