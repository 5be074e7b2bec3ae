// Package numtype maps the data-representation choice to the four named
// numeric-format slots consumed by the controller, and quantizes scalar
// constants into those formats.
package numtype

import (
	"math"

	"fuelsys-caltool/pkg/models"
)

// Select resolves a numeric kind to the four format slots. Floating resolves
// every slot to single precision; Fixed resolves each slot to its documented
// fixed-point format.
func Select(kind models.NumericKind) (models.Formats, error) {
	switch kind {
	case models.NumericFloating:
		return models.Formats{
			Pressure: models.Single(),
			Sensor:   models.Single(),
			Ego:      models.Single(),
			Residual: models.Single(),
		}, nil
	case models.NumericFixed:
		return models.Formats{
			Pressure: models.Fixed(false, 8, 7),
			Sensor:   models.Fixed(true, 16, 3),
			Ego:      models.Fixed(true, 16, 7),
			Residual: models.Fixed(true, 16, 15),
		}, nil
	default:
		return models.Formats{}, &models.ConfigError{Msg: "unknown numeric representation"}
	}
}

// Quantize rounds x to the nearest value representable in format f. The
// floating format passes x through as a 64-bit value. A result outside the
// format's representable range is reported, never silently saturated.
func Quantize(name string, x float64, f models.NumericFormat) (float64, error) {
	if f.Float {
		return x, nil
	}
	res := f.Resolution()
	q := math.Round(x/res) * res
	if q < f.Min() || q > f.Max() {
		return 0, &models.QuantizationError{Name: name, Value: x, Format: f}
	}
	return q, nil
}
