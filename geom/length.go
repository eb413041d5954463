// length.go — fixed-point length/angle/point primitives and their
// range-checked newtypes.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed.
//   - Callers MUST use errors.Is(err, ErrInvalidRange) to branch on semantics.
//   - Constructors never panic; invalid ranges return ErrInvalidRange.
package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidRange indicates a PositiveLength/UnsignedLength constructor
// received a value outside its required range.
//
// Usage: if errors.Is(err, ErrInvalidRange) { /* reject the configured value */ }.
var ErrInvalidRange = errors.New("geom: value outside required range")

// ErrGeometryDomain indicates degenerate input reached the geometry kernel
// (zero-length stroke, co-linear three-point arc). Checks recover from this
// by skipping the offending object and continuing with the next one; see
// the drc package's per-check error policy.
var ErrGeometryDomain = errors.New("geom: degenerate geometry")

// MaxCoordinate is the largest absolute coordinate value the kernel accepts,
// chosen to leave headroom for intermediate multiplications during
// stroking/offsetting. 2^52 nm is approximately ±4,500 km.
const MaxCoordinate Length = 1 << 52

// Length is a signed fixed-point distance in nanometres.
type Length int64

// Angle is a signed fixed-point rotation in degrees x1000. Zero on a Vertex
// means "straight segment to the next vertex"; non-zero means an arc of
// that included angle.
type Angle int64

// AngleFromDegrees converts a plain degree value into an Angle.
func AngleFromDegrees(deg float64) Angle {
	return Angle(deg * 1000)
}

// Degrees returns the Angle as plain floating-point degrees.
func (a Angle) Degrees() float64 {
	return float64(a) / 1000
}

// Point is a 2-D coordinate pair in nanometres.
type Point struct {
	X, Y Length
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// PositiveLength is a Length constrained to be strictly greater than zero.
// Used for widths, diameters and other dimensions that can never vanish.
type PositiveLength struct{ v Length }

// NewPositiveLength validates l > 0, returning ErrInvalidRange otherwise.
//
// Complexity: O(1) time, O(1) space.
func NewPositiveLength(l Length) (PositiveLength, error) {
	if l <= 0 {
		return PositiveLength{}, fmt.Errorf("NewPositiveLength(%d): %w", l, ErrInvalidRange)
	}
	return PositiveLength{v: l}, nil
}

// Value returns the underlying Length.
func (p PositiveLength) Value() Length { return p.v }

// UnsignedLength is a Length constrained to be greater than or equal to
// zero. Used for clearances and tolerances where "disabled" (zero) is a
// meaningful state distinct from a negative value.
type UnsignedLength struct{ v Length }

// NewUnsignedLength validates l >= 0, returning ErrInvalidRange otherwise.
//
// Complexity: O(1) time, O(1) space.
func NewUnsignedLength(l Length) (UnsignedLength, error) {
	if l < 0 {
		return UnsignedLength{}, fmt.Errorf("NewUnsignedLength(%d): %w", l, ErrInvalidRange)
	}
	return UnsignedLength{v: l}, nil
}

// Value returns the underlying Length.
func (u UnsignedLength) Value() Length { return u.v }

// IsZero reports whether this UnsignedLength represents "disabled" (0).
func (u UnsignedLength) IsZero() bool { return u.v == 0 }
