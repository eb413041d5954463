// Package geom_test validates the fixed-point primitives: range-checked
// newtype constructors, angle conversion, and point arithmetic.
package geom_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencircuit/boarddrc/geom"
)

func TestNewPositiveLength_Valid(t *testing.T) {
	p, err := geom.NewPositiveLength(1)
	require.NoError(t, err)
	assert.Equal(t, geom.Length(1), p.Value())
}

func TestNewPositiveLength_RejectsZeroAndNegative(t *testing.T) {
	for _, v := range []geom.Length{0, -1, -1000000} {
		_, err := geom.NewPositiveLength(v)
		require.Error(t, err, "value %d", v)
		assert.True(t, errors.Is(err, geom.ErrInvalidRange))
	}
}

func TestNewUnsignedLength_AcceptsZero(t *testing.T) {
	u, err := geom.NewUnsignedLength(0)
	require.NoError(t, err)
	assert.True(t, u.IsZero())
}

func TestNewUnsignedLength_RejectsNegative(t *testing.T) {
	_, err := geom.NewUnsignedLength(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, geom.ErrInvalidRange))
}

func TestAngle_RoundTrip(t *testing.T) {
	a := geom.AngleFromDegrees(90)
	assert.Equal(t, geom.Angle(90000), a)
	assert.InDelta(t, 90.0, a.Degrees(), 1e-9)
}

func TestPoint_AddSub(t *testing.T) {
	p := geom.Point{X: 10, Y: 20}
	q := geom.Point{X: 3, Y: 4}
	assert.Equal(t, geom.Point{X: 13, Y: 24}, p.Add(q))
	assert.Equal(t, geom.Point{X: 7, Y: 16}, p.Sub(q))
}
