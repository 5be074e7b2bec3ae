package models

// Bound is a clipped (min, max) pair for one physical quantity.
type Bound struct {
	Min float64
	Max float64
}

// RangeBounds are the operating-range limits derived from the active
// dataset's axes, clipped to the known-valid physical envelope.
type RangeBounds struct {
	Pressure Bound
	Speed    Bound
	Throttle Bound
	Ego      Bound
}

// ScalarConstants are the fixed calibration scalars published alongside the
// dataset. Switch values use 1 for enabled and 0 for disabled, matching the
// published workspace convention.
type ScalarConstants struct {
	Hysteresis   float64 // pressure-estimate hysteresis band
	ZeroThresh   float64 // zero-signal detection threshold
	StateRange   float64 // state-range epsilon, quantized per numeric kind
	NominalSpeed float64 // baseline engine speed
	RampRateGain float64 // integrator ramp-rate gain

	ThrottleSw float64
	SpeedSw    float64
	EgoSw      float64
	MapSw      float64
}

// SearchMethod is the breakpoint search strategy a table-lookup consumer
// should use for the active layout.
type SearchMethod int

const (
	SearchLinear SearchMethod = iota
	SearchEvenIndex
)

func (m SearchMethod) String() string {
	if m == SearchEvenIndex {
		return "even-index"
	}
	return "linear"
}

// InterpMethod is the within-cell interpolation a consumer should use.
type InterpMethod int

const (
	InterpLinear InterpMethod = iota
	InterpFlat
)

func (m InterpMethod) String() string {
	if m == InterpFlat {
		return "flat"
	}
	return "linear"
}

// ExtrapMethod is the outside-domain behaviour a consumer should use.
type ExtrapMethod int

const (
	ExtrapClip ExtrapMethod = iota
	ExtrapNone
)

func (m ExtrapMethod) String() string {
	if m == ExtrapNone {
		return "none"
	}
	return "clip"
}

// LookupPolicy is the block-level search/interpolation/extrapolation setting
// applied to every downstream table-lookup consumer for a given layout.
type LookupPolicy struct {
	Search SearchMethod
	Interp InterpMethod
	Extrap ExtrapMethod
}

// ConfigState is one complete published configuration: dataset, numeric
// format assignment, range bounds, scalar constants, and lookup policy.
// It is created fresh on every configuration call and replaced as a whole,
// never partially mutated.
type ConfigState struct {
	Layout  Layout
	Numeric NumericKind
	Dataset *Dataset
	Formats Formats
	Bounds  RangeBounds
	Scalars ScalarConstants
	Policy  LookupPolicy
}

// ParamInfo describes one published scalar parameter for display purposes.
type ParamInfo struct {
	Name        string
	Unit        string
	Description string
	MinValue    float64
	MaxValue    float64
}

// ParamInfos lists the published scalar parameters with their physical
// envelope, used by the list and tune commands.
var ParamInfos = []ParamInfo{
	{
		Name:        "hys",
		Unit:        "Pa",
		Description: "Pressure-estimate hysteresis band",
		MinValue:    0,
		MaxValue:    100,
	},
	{
		Name:        "zero_thresh",
		Unit:        "counts",
		Description: "Zero-signal detection threshold",
		MinValue:    0,
		MaxValue:    1024,
	},
	{
		Name:        "st_range",
		Unit:        "-",
		Description: "State-range epsilon in the active numeric format",
		MinValue:    0,
		MaxValue:    1,
	},
	{
		Name:        "nominal_speed",
		Unit:        "rad/s",
		Description: "Baseline engine speed",
		MinValue:    50,
		MaxValue:    650,
	},
	{
		Name:        "ramp_rate_gain",
		Unit:        "1/s",
		Description: "Integrator ramp-rate gain",
		MinValue:    0,
		MaxValue:    1,
	},
	{
		Name:        "throttle_sw",
		Unit:        "bool",
		Description: "Throttle sensor fault-injection switch",
		MinValue:    0,
		MaxValue:    1,
	},
	{
		Name:        "speed_sw",
		Unit:        "bool",
		Description: "Speed sensor fault-injection switch",
		MinValue:    0,
		MaxValue:    1,
	},
	{
		Name:        "ego_sw",
		Unit:        "bool",
		Description: "EGO sensor fault-injection switch",
		MinValue:    0,
		MaxValue:    1,
	},
	{
		Name:        "map_sw",
		Unit:        "bool",
		Description: "MAP sensor fault-injection switch",
		MinValue:    0,
		MaxValue:    1,
	},
}
