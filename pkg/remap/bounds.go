package remap

import "fuelsys-caltool/pkg/models"

// Physical envelope the derived bounds are clipped against. The speed
// ceiling and EGO ceiling are fixed regardless of layout.
const (
	pressFloor   = 0.05
	pressCeiling = 1.0
	speedFloor   = 0.0
	speedCeiling = 628.0
	throtFloor   = 3.0
	throtCeiling = 90.0
	egoFloor     = 0.0
	egoCeiling   = 1.2
)

// boundsFor derives the operating-range bounds from the active dataset's
// axes: observed extrema clipped to the fixed floors and ceilings.
func boundsFor(ds *models.Dataset) models.RangeBounds {
	press, _ := ds.Axis(models.AxisPressure)
	speed, _ := ds.Axis(models.AxisSpeed)
	throt, _ := ds.Axis(models.AxisThrottle)
	ego, _ := ds.Axis(models.AxisEgo)

	return models.RangeBounds{
		Pressure: models.Bound{
			Min: maxOf(press.Min(), pressFloor),
			Max: minOf(press.Max(), pressCeiling),
		},
		Speed: models.Bound{
			Min: maxOf(speed.Min(), speedFloor),
			Max: speedCeiling,
		},
		Throttle: models.Bound{
			Min: maxOf(throt.Min(), throtFloor),
			Max: minOf(throt.Max(), throtCeiling),
		},
		Ego: models.Bound{
			Min: maxOf(ego.Min(), egoFloor),
			Max: egoCeiling,
		},
	}
}

func maxOf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minOf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
