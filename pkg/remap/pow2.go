package remap

import "fuelsys-caltool/pkg/models"

// Power-of-two breakpoint synthesis. Each working axis becomes an arithmetic
// progression with a power-of-two step over a power-of-two-aligned span,
// chosen to stay inside the canonical sampled domain so that evenly spaced
// consumers can index in O(1).
const (
	speedStart = 64
	speedStep  = 32
	speedCount = 19 // 64..640

	pressStart = 0.0625
	pressStep  = 0.03125 // 2^-5
	pressCount = 29      // 0.0625..0.9375

	throtStart = 4
	throtStep  = 2
	throtCount = 43 // 4..88

	rampStart = 128
	rampStep  = 128
	rampCount = 6 // 128..768
)

func pow2Axis(name, unit string, start, step float64, count int) models.Axis {
	pts := make([]float64, count)
	for i := range pts {
		pts[i] = start + float64(i)*step
	}
	return models.Axis{Name: name, Unit: unit, Points: pts}
}

// pow2Axes synthesizes the four replaced axes for the power-of-two layout.
func pow2Axes() (speed, throttle, pressure, ramp models.Axis) {
	speed = pow2Axis(models.AxisSpeed, "rad/s", speedStart, speedStep, speedCount)
	throttle = pow2Axis(models.AxisThrottle, "deg", throtStart, throtStep, throtCount)
	pressure = pow2Axis(models.AxisPressure, "bar", pressStart, pressStep, pressCount)
	ramp = pow2Axis(models.AxisRampX, "rad/s", rampStart, rampStep, rampCount)
	return
}
