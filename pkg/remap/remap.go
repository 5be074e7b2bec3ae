// Package remap derives a calibration dataset for a requested breakpoint
// layout. The original layout passes the canonical dataset through
// unchanged; the power-of-two layout resamples every sampled table onto
// evenly spaced, power-of-two-stepped axes by bilinear interpolation, with
// the ramp-rate gain table recomputed analytically instead.
package remap

import (
	"fmt"

	"fuelsys-caltool/pkg/caldata"
	"fuelsys-caltool/pkg/models"
)

// Remap returns the dataset and operating-range bounds for the requested
// layout. The result is always derived from the canonical dataset, never
// from a previously derived one.
func Remap(layout models.Layout) (*models.Dataset, models.RangeBounds, error) {
	switch layout {
	case models.LayoutOriginal:
		ds := caldata.Canonical()
		return ds, boundsFor(ds), nil
	case models.LayoutPowerOfTwo:
		ds, err := powerOfTwo(caldata.Canonical())
		if err != nil {
			return nil, models.RangeBounds{}, err
		}
		return ds, boundsFor(ds), nil
	default:
		return nil, models.RangeBounds{}, &models.ConfigError{Msg: "unknown breakpoint layout"}
	}
}

// powerOfTwo builds the evenly spaced variant from the canonical snapshot.
func powerOfTwo(orig *models.Dataset) (*models.Dataset, error) {
	speed, throttle, pressure, ramp := pow2Axes()

	ego, _ := orig.Axis(models.AxisEgo)
	rampY, _ := orig.Axis(models.AxisRampY)

	out := &models.Dataset{
		Name: models.LayoutPowerOfTwo.String(),
		Axes: []models.Axis{speed, throttle, pressure, ego.Copy(), ramp, rampY.Copy()},
	}

	newAxis := func(name string) models.Axis {
		a, _ := out.Axis(name)
		return a
	}

	for _, t := range orig.Tables {
		if t.Name == models.TableRampRateKi {
			// Pure analytic function of breakpoint index; resampling it
			// from the canonical grid would be wrong.
			out.Tables = append(out.Tables, models.Table{
				Name:    t.Name,
				Unit:    t.Unit,
				RowAxis: t.RowAxis,
				ColAxis: t.ColAxis,
				Values:  caldata.RampTable(len(ramp.Points), len(rampY.Points), caldata.RampRateGain),
			})
			continue
		}

		origRow, ok := orig.Axis(t.RowAxis)
		if !ok {
			return nil, fmt.Errorf("table %s: unknown row axis %q", t.Name, t.RowAxis)
		}
		dstRow := newAxis(t.RowAxis)

		if t.Is1D() {
			vals, err := resample1(origRow, t.Values[0], dstRow)
			if err != nil {
				return nil, fmt.Errorf("table %s: %w", t.Name, err)
			}
			out.Tables = append(out.Tables, models.Table{
				Name:    t.Name,
				Unit:    t.Unit,
				RowAxis: t.RowAxis,
				Values:  [][]float64{vals},
			})
			continue
		}

		origCol, ok := orig.Axis(t.ColAxis)
		if !ok {
			return nil, fmt.Errorf("table %s: unknown column axis %q", t.Name, t.ColAxis)
		}
		vals, err := resample2(origRow, origCol, t.Values, dstRow, newAxis(t.ColAxis))
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		out.Tables = append(out.Tables, models.Table{
			Name:    t.Name,
			Unit:    t.Unit,
			RowAxis: t.RowAxis,
			ColAxis: t.ColAxis,
			Values:  vals,
		})
	}
	return out, nil
}
