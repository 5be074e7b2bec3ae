package models

import "fmt"

// ConfigError reports an unknown variant selector. The caller can correct
// the request; nothing was published.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// RangeError reports a synthesized breakpoint that falls outside the sampled
// domain of a table it would be interpolated against. The configuration
// attempt is abandoned rather than extrapolating or propagating NaN.
type RangeError struct {
	Axis  string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("axis %s: breakpoint %g outside sampled domain [%g, %g]",
		e.Axis, e.Value, e.Min, e.Max)
}

// QuantizationError reports a scalar constant that cannot be represented in
// the selected fixed-point format without overflow.
type QuantizationError struct {
	Name   string
	Value  float64
	Format NumericFormat
}

func (e *QuantizationError) Error() string {
	return fmt.Sprintf("constant %s: value %g not representable in %s [%g, %g]",
		e.Name, e.Value, e.Format, e.Format.Min(), e.Format.Max())
}
