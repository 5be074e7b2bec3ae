// Package caldata owns the canonical calibration snapshot: the irregularly
// spaced breakpoint vectors, the estimator lookup tables sampled on them,
// and the fixed scalar constants. The data is compiled in and always
// well-formed; every accessor returns a fresh copy.
package caldata

import "fuelsys-caltool/pkg/models"

// Scalar calibration constants.
const (
	Hysteresis   = 25.0
	ZeroThresh   = 250.0
	StateRange   = 1e-4
	NominalSpeed = 300.0
	RampRateGain = 0.125
)

// Canonical returns the canonical dataset. Calls are deterministic: the
// returned snapshot is structurally equal on every call and never aliases
// previously returned memory.
func Canonical() *models.Dataset {
	ds := &models.Dataset{
		Name: models.LayoutOriginal.String(),
		Axes: []models.Axis{
			{Name: models.AxisSpeed, Unit: "rad/s", Points: speedVect},
			{Name: models.AxisThrottle, Unit: "deg", Points: throtVect},
			{Name: models.AxisPressure, Unit: "bar", Points: pressVect},
			{Name: models.AxisEgo, Unit: "V", Points: egoVect},
			{Name: models.AxisRampX, Unit: "rad/s", Points: rampRateKiX},
			{Name: models.AxisRampY, Unit: "bar", Points: rampRateKiY},
		},
		Tables: []models.Table{
			{
				Name:    models.TablePressEst,
				Unit:    "bar",
				RowAxis: models.AxisThrottle,
				ColAxis: models.AxisSpeed,
				Values:  pressEst,
			},
			{
				Name:    models.TableThrotEst,
				Unit:    "deg",
				RowAxis: models.AxisPressure,
				ColAxis: models.AxisSpeed,
				Values:  throtEst,
			},
			{
				Name:    models.TableSpeedEst,
				Unit:    "rad/s",
				RowAxis: models.AxisPressure,
				ColAxis: models.AxisThrottle,
				Values:  speedEst,
			},
			{
				Name:    models.TableThrotArea,
				Unit:    "-",
				RowAxis: models.AxisThrottle,
				Values:  [][]float64{throtArea},
			},
			{
				Name:    models.TableRampRateKi,
				Unit:    "1/s",
				RowAxis: models.AxisRampX,
				ColAxis: models.AxisRampY,
				Values:  RampTable(len(rampRateKiX), len(rampRateKiY), RampRateGain),
			},
		},
	}
	return ds.Copy()
}

// RampTable derives the ramp-rate gain table for axis lengths m and n. The
// entry at (i, j) is i*j*gain with 1-based indices: the values are a pure
// analytic function of breakpoint index, not sampled plant data.
func RampTable(m, n int, gain float64) [][]float64 {
	vals := make([][]float64, m)
	for i := range vals {
		vals[i] = make([]float64, n)
		for j := range vals[i] {
			vals[i][j] = float64(i+1) * float64(j+1) * gain
		}
	}
	return vals
}

// Scalars returns the scalar constants with every fault-injection switch
// enabled, the shipped default.
func Scalars() models.ScalarConstants {
	return models.ScalarConstants{
		Hysteresis:   Hysteresis,
		ZeroThresh:   ZeroThresh,
		StateRange:   StateRange,
		NominalSpeed: NominalSpeed,
		RampRateGain: RampRateGain,
		ThrottleSw:   1,
		SpeedSw:      1,
		EgoSw:        1,
		MapSw:        1,
	}
}
