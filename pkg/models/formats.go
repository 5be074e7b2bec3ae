package models

import (
	"fmt"
	"math"
)

// NumericFormat describes one numeric representation: either single-precision
// floating point or a fixed-point format storing a scaled integer with a
// fixed number of fraction bits.
type NumericFormat struct {
	Float    bool
	Signed   bool
	WordBits uint8
	FracBits uint8
}

// Single returns the single-precision floating-point format.
func Single() NumericFormat { return NumericFormat{Float: true} }

// Fixed returns a fixed-point format descriptor.
func Fixed(signed bool, wordBits, fracBits uint8) NumericFormat {
	return NumericFormat{Signed: signed, WordBits: wordBits, FracBits: fracBits}
}

// Resolution returns the value of one least-significant bit. For the
// floating format this is 0.
func (f NumericFormat) Resolution() float64 {
	if f.Float {
		return 0
	}
	return math.Exp2(-float64(f.FracBits))
}

// Min returns the smallest representable value of a fixed-point format.
func (f NumericFormat) Min() float64 {
	if f.Float {
		return -math.MaxFloat32
	}
	if !f.Signed {
		return 0
	}
	return -math.Exp2(float64(f.WordBits-1)) * f.Resolution()
}

// Max returns the largest representable value of a fixed-point format.
func (f NumericFormat) Max() float64 {
	if f.Float {
		return math.MaxFloat32
	}
	bits := float64(f.WordBits)
	if f.Signed {
		bits--
	}
	return (math.Exp2(bits) - 1) * f.Resolution()
}

func (f NumericFormat) String() string {
	if f.Float {
		return "single"
	}
	sign := "ufix"
	if f.Signed {
		sign = "sfix"
	}
	return fmt.Sprintf("%s%d_En%d", sign, f.WordBits, f.FracBits)
}

// Formats holds the four format slots derived from a NumericKind. Each slot
// is named for the physical quantity it represents; the published workspace
// names (u8En7, s16En3, s16En7, s16En15) stay fixed across kinds.
type Formats struct {
	Pressure NumericFormat // manifold pressure, published as u8En7
	Sensor   NumericFormat // throttle and speed sensors, published as s16En3
	Ego      NumericFormat // O2 sensor voltage, published as s16En7
	Residual NumericFormat // high-resolution residual, published as s16En15
}
