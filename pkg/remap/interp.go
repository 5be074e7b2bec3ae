package remap

import (
	"sort"

	"fuelsys-caltool/pkg/models"
)

// cell locates the original grid cell enclosing x: it returns the index of
// the lower breakpoint and whether x sits exactly on a breakpoint. An exact
// match uses that node directly, no interpolation.
func cell(pts []float64, x float64) (int, bool) {
	i := sort.SearchFloat64s(pts, x)
	if i < len(pts) && pts[i] == x {
		return i, true
	}
	return i - 1, false
}

// interp1 evaluates a 1-D table at x by linear interpolation between the two
// enclosing breakpoints. x must lie inside [pts[0], pts[len-1]].
func interp1(pts, vals []float64, x float64) float64 {
	i, exact := cell(pts, x)
	if exact {
		return vals[i]
	}
	w := (x - pts[i]) / (pts[i+1] - pts[i])
	return vals[i]*(1-w) + vals[i+1]*w
}

// interp2 evaluates a 2-D table at (x, y) by bilinear interpolation: the
// weighted average of the four enclosing corner values, proportional to
// normalized distance along each axis. Exact matches on either axis collapse
// that dimension to the node.
func interp2(rowPts, colPts []float64, vals [][]float64, x, y float64) float64 {
	i, exactRow := cell(rowPts, x)
	j, exactCol := cell(colPts, y)

	switch {
	case exactRow && exactCol:
		return vals[i][j]
	case exactRow:
		w := (y - colPts[j]) / (colPts[j+1] - colPts[j])
		return vals[i][j]*(1-w) + vals[i][j+1]*w
	case exactCol:
		w := (x - rowPts[i]) / (rowPts[i+1] - rowPts[i])
		return vals[i][j]*(1-w) + vals[i+1][j]*w
	}

	wx := (x - rowPts[i]) / (rowPts[i+1] - rowPts[i])
	wy := (y - colPts[j]) / (colPts[j+1] - colPts[j])
	return vals[i][j]*(1-wx)*(1-wy) +
		vals[i][j+1]*(1-wx)*wy +
		vals[i+1][j]*wx*(1-wy) +
		vals[i+1][j+1]*wx*wy
}

// checkDomain verifies that every synthesized breakpoint falls inside the
// sampled domain of the original axis. Query points outside the domain are
// never extrapolated; they abort the remap instead.
func checkDomain(newAxis, orig models.Axis) error {
	for _, v := range newAxis.Points {
		if v < orig.Min() || v > orig.Max() {
			return &models.RangeError{Axis: newAxis.Name, Value: v, Min: orig.Min(), Max: orig.Max()}
		}
	}
	return nil
}

// resample1 recomputes a 1-D table onto a new breakpoint vector.
func resample1(orig models.Axis, vals []float64, dst models.Axis) ([]float64, error) {
	if err := checkDomain(dst, orig); err != nil {
		return nil, err
	}
	out := make([]float64, len(dst.Points))
	for i, x := range dst.Points {
		out[i] = interp1(orig.Points, vals, x)
	}
	return out, nil
}

// resample2 recomputes a 2-D table onto a new axis combination.
func resample2(origRow, origCol models.Axis, vals [][]float64, dstRow, dstCol models.Axis) ([][]float64, error) {
	if err := checkDomain(dstRow, origRow); err != nil {
		return nil, err
	}
	if err := checkDomain(dstCol, origCol); err != nil {
		return nil, err
	}
	out := make([][]float64, len(dstRow.Points))
	for i, x := range dstRow.Points {
		out[i] = make([]float64, len(dstCol.Points))
		for j, y := range dstCol.Points {
			out[i][j] = interp2(origRow.Points, origCol.Points, vals, x, y)
		}
	}
	return out, nil
}
