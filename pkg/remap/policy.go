package remap

import (
	"math"

	"fuelsys-caltool/pkg/models"
)

// PolicyFor returns the table-lookup settings every downstream consumer
// should apply for the given layout. Evenly spaced power-of-two axes allow
// O(1) index computation, trading interpolation accuracy (flat lookup) for
// speed; the irregular layout keeps linear search and linear interpolation.
func PolicyFor(layout models.Layout) (models.LookupPolicy, error) {
	switch layout {
	case models.LayoutOriginal:
		return models.LookupPolicy{
			Search: models.SearchLinear,
			Interp: models.InterpLinear,
			Extrap: models.ExtrapClip,
		}, nil
	case models.LayoutPowerOfTwo:
		return models.LookupPolicy{
			Search: models.SearchEvenIndex,
			Interp: models.InterpFlat,
			Extrap: models.ExtrapNone,
		}, nil
	default:
		return models.LookupPolicy{}, &models.ConfigError{Msg: "unknown breakpoint layout"}
	}
}

// Evaluate performs a table lookup the way a consumer block would under the
// given policy. Out-of-range queries are clamped to the end breakpoints;
// the policy never extrapolates. For a 1-D table y is ignored.
func Evaluate(ds *models.Dataset, t models.Table, pol models.LookupPolicy, x, y float64) float64 {
	row, _ := ds.Axis(t.RowAxis)
	x = clamp(x, row.Min(), row.Max())

	if t.Is1D() {
		if pol.Interp == models.InterpFlat {
			return t.Values[0][nearest(row.Points, x, pol.Search)]
		}
		return interp1(row.Points, t.Values[0], x)
	}

	col, _ := ds.Axis(t.ColAxis)
	y = clamp(y, col.Min(), col.Max())
	if pol.Interp == models.InterpFlat {
		return t.Values[nearest(row.Points, x, pol.Search)][nearest(col.Points, y, pol.Search)]
	}
	return interp2(row.Points, col.Points, t.Values, x, y)
}

// nearest returns the index of the breakpoint closest to x. With evenly
// spaced axes the index is computed directly from the step.
func nearest(pts []float64, x float64, search models.SearchMethod) int {
	if search == models.SearchEvenIndex {
		step := pts[1] - pts[0]
		i := int(math.Round((x - pts[0]) / step))
		if i < 0 {
			i = 0
		}
		if i >= len(pts) {
			i = len(pts) - 1
		}
		return i
	}
	best := 0
	for i := 1; i < len(pts); i++ {
		if math.Abs(pts[i]-x) < math.Abs(pts[best]-x) {
			best = i
		}
	}
	return best
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
