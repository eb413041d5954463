package settings

import (
	"fmt"

	"github.com/opencircuit/boarddrc/geom"
)

// SlotPolicy classifies which drilled-slot shapes are permitted. Values are
// ordered so "class exceeds policy" is a plain integer comparison.
type SlotPolicy int

const (
	SlotNone SlotPolicy = iota
	SlotSingleSegmentStraight
	SlotMultiSegmentStraight
	SlotAny
)

// defaultMaxArcTolerance is 5 micrometres expressed in nanometres.
const defaultMaxArcTolerance geom.Length = 5000

// DrcSettings enumerates every threshold a DRC run checks a board against.
// Zero means "disabled" for every numeric field except MaxArcTolerance,
// which always carries a value (defaulting to 5 micrometres) because every
// polygon operation in a run must use the same tolerance.
type DrcSettings struct {
	MinCopperWidth           geom.UnsignedLength
	MinCopperCopperClearance geom.UnsignedLength
	MinCopperBoardClearance  geom.UnsignedLength
	MinCopperNpthClearance   geom.UnsignedLength
	MinPthAnnularRing        geom.UnsignedLength
	MinNpthDrillDiameter     geom.UnsignedLength
	MinPthDrillDiameter      geom.UnsignedLength
	MinNpthSlotWidth         geom.UnsignedLength
	MinPthSlotWidth          geom.UnsignedLength
	AllowedNpthSlots         SlotPolicy
	AllowedPthSlots          SlotPolicy
	MaxArcTolerance          geom.UnsignedLength
}

// SettingOption customizes a DrcSettings before it is frozen by New.
type SettingOption func(*DrcSettings)

// New builds a DrcSettings with every threshold disabled (zero for the
// numeric fields, SlotAny for the slot policies), MaxArcTolerance defaulted
// to 5 micrometres, then applies opts in order.
// The options validate their own inputs and panic on an out-of-range value
// when they are constructed, so New does not re-check them; it returns
// ErrInvalidRange only if its built-in default tolerance fails validation.
func New(opts ...SettingOption) (*DrcSettings, error) {
	tol, err := geom.NewUnsignedLength(defaultMaxArcTolerance)
	if err != nil {
		return nil, fmt.Errorf("settings.New: %w", ErrInvalidRange)
	}
	s := &DrcSettings{
		MaxArcTolerance:  tol,
		AllowedNpthSlots: SlotAny,
		AllowedPthSlots:  SlotAny,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func mustUnsigned(field string, nm geom.Length) geom.UnsignedLength {
	u, err := geom.NewUnsignedLength(nm)
	if err != nil {
		panic(fmt.Sprintf("settings: %s: %v", field, err))
	}
	return u
}

// WithMinCopperWidth sets the minimum stroke width on copper layers, in
// nanometres. Panics if nm < 0 (option constructors validate at
// construction time; the engine itself never panics at runtime).
func WithMinCopperWidth(nm geom.Length) SettingOption {
	u := mustUnsigned("MinCopperWidth", nm)
	return func(s *DrcSettings) { s.MinCopperWidth = u }
}

// WithMinCopperCopperClearance sets the minimum distance between
// distinct-net copper, in nanometres.
func WithMinCopperCopperClearance(nm geom.Length) SettingOption {
	u := mustUnsigned("MinCopperCopperClearance", nm)
	return func(s *DrcSettings) { s.MinCopperCopperClearance = u }
}

// WithMinCopperBoardClearance sets the minimum distance from copper to the
// board outline, in nanometres.
func WithMinCopperBoardClearance(nm geom.Length) SettingOption {
	u := mustUnsigned("MinCopperBoardClearance", nm)
	return func(s *DrcSettings) { s.MinCopperBoardClearance = u }
}

// WithMinCopperNpthClearance sets the minimum distance from copper to
// non-plated holes, in nanometres.
func WithMinCopperNpthClearance(nm geom.Length) SettingOption {
	u := mustUnsigned("MinCopperNpthClearance", nm)
	return func(s *DrcSettings) { s.MinCopperNpthClearance = u }
}

// WithMinPthAnnularRing sets the minimum full-ring copper width around
// plated holes, in nanometres.
func WithMinPthAnnularRing(nm geom.Length) SettingOption {
	u := mustUnsigned("MinPthAnnularRing", nm)
	return func(s *DrcSettings) { s.MinPthAnnularRing = u }
}

// WithMinNpthDrillDiameter sets the minimum round non-plated hole diameter,
// in nanometres.
func WithMinNpthDrillDiameter(nm geom.Length) SettingOption {
	u := mustUnsigned("MinNpthDrillDiameter", nm)
	return func(s *DrcSettings) { s.MinNpthDrillDiameter = u }
}

// WithMinPthDrillDiameter sets the minimum round plated hole diameter, in
// nanometres.
func WithMinPthDrillDiameter(nm geom.Length) SettingOption {
	u := mustUnsigned("MinPthDrillDiameter", nm)
	return func(s *DrcSettings) { s.MinPthDrillDiameter = u }
}

// WithMinNpthSlotWidth sets the minimum non-plated slot width, in
// nanometres.
func WithMinNpthSlotWidth(nm geom.Length) SettingOption {
	u := mustUnsigned("MinNpthSlotWidth", nm)
	return func(s *DrcSettings) { s.MinNpthSlotWidth = u }
}

// WithMinPthSlotWidth sets the minimum plated slot width, in nanometres.
func WithMinPthSlotWidth(nm geom.Length) SettingOption {
	u := mustUnsigned("MinPthSlotWidth", nm)
	return func(s *DrcSettings) { s.MinPthSlotWidth = u }
}

// WithAllowedNpthSlots sets the slot-shape policy for non-plated holes.
func WithAllowedNpthSlots(p SlotPolicy) SettingOption {
	return func(s *DrcSettings) { s.AllowedNpthSlots = p }
}

// WithAllowedPthSlots sets the slot-shape policy for plated (pad) holes.
func WithAllowedPthSlots(p SlotPolicy) SettingOption {
	return func(s *DrcSettings) { s.AllowedPthSlots = p }
}

// WithMaxArcTolerance overrides the default 5-micrometre chord-height error
// bound used for arc flattening throughout a run. Panics if nm <= 0, since
// a zero or negative tolerance has no geometric meaning (it is not a
// "disabled" field like the clearance thresholds).
func WithMaxArcTolerance(nm geom.Length) SettingOption {
	if nm <= 0 {
		panic(fmt.Sprintf("settings: WithMaxArcTolerance(%d): %v", nm, ErrInvalidRange))
	}
	u := mustUnsigned("MaxArcTolerance", nm)
	return func(s *DrcSettings) { s.MaxArcTolerance = u }
}
