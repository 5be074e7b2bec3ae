package remap

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fuelsys-caltool/pkg/caldata"
	"fuelsys-caltool/pkg/models"
)

func TestRemapOriginalIsCanonical(t *testing.T) {
	ds, _, err := Remap(models.LayoutOriginal)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(caldata.Canonical(), ds); diff != "" {
		t.Errorf("original layout diverges from canonical (-want +got):\n%s", diff)
	}
}

func TestRemapUnknownLayout(t *testing.T) {
	_, _, err := Remap(models.Layout(99))
	var ce *models.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v (%T), want *models.ConfigError", err, err)
	}
}

func TestPowerOfTwoAxes(t *testing.T) {
	ds, _, err := Remap(models.LayoutPowerOfTwo)
	if err != nil {
		t.Fatal(err)
	}
	if err := ds.Validate(); err != nil {
		t.Fatalf("pow2 dataset failed validation: %v", err)
	}

	tests := []struct {
		axis     string
		min, max float64
		count    int
		step     float64
	}{
		{"SpeedVect", 64, 640, 19, 32},
		{"ThrotVect", 4, 88, 43, 2},
		{"PressVect", 0.0625, 0.9375, 29, 0.03125},
		{"RampRateKiX", 128, 768, 6, 128},
	}
	for _, tt := range tests {
		a, ok := ds.Axis(tt.axis)
		if !ok {
			t.Fatalf("axis %s missing", tt.axis)
		}
		if len(a.Points) != tt.count {
			t.Errorf("%s: got %d points, want %d", tt.axis, len(a.Points), tt.count)
			continue
		}
		if a.Min() != tt.min || a.Max() != tt.max {
			t.Errorf("%s: span [%g, %g], want [%g, %g]", tt.axis, a.Min(), a.Max(), tt.min, tt.max)
		}
		if exp := math.Log2(tt.step); exp != math.Trunc(exp) {
			t.Fatalf("%s: test step %g is not a power of two", tt.axis, tt.step)
		}
		for i := 1; i < len(a.Points); i++ {
			if a.Points[i]-a.Points[i-1] != tt.step {
				t.Errorf("%s: step at %d is %g, want %g", tt.axis, i, a.Points[i]-a.Points[i-1], tt.step)
			}
		}
	}
}

func TestPowerOfTwoKeepsUnreplacedAxes(t *testing.T) {
	ds, _, err := Remap(models.LayoutPowerOfTwo)
	if err != nil {
		t.Fatal(err)
	}
	orig := caldata.Canonical()

	for _, name := range []string{"EgoVect", "RampRateKiY"} {
		want, _ := orig.Axis(name)
		got, ok := ds.Axis(name)
		if !ok {
			t.Fatalf("axis %s missing", name)
		}
		if diff := cmp.Diff(want.Points, got.Points); diff != "" {
			t.Errorf("%s changed across remap (-want +got):\n%s", name, diff)
		}
	}
}

func TestPowerOfTwoAxesInsideCanonicalDomain(t *testing.T) {
	ds, _, err := Remap(models.LayoutPowerOfTwo)
	if err != nil {
		t.Fatal(err)
	}
	orig := caldata.Canonical()

	for _, name := range []string{"SpeedVect", "ThrotVect", "PressVect", "RampRateKiX"} {
		src, _ := orig.Axis(name)
		dst, _ := ds.Axis(name)
		for _, v := range dst.Points {
			if v < src.Min() || v > src.Max() {
				t.Errorf("%s: breakpoint %g outside canonical [%g, %g]", name, v, src.Min(), src.Max())
			}
		}
	}
}

// Where a synthesized breakpoint coincides with a canonical one, the
// resampled table must carry the canonical value through unchanged.
func TestPowerOfTwoExactNodes(t *testing.T) {
	ds, _, err := Remap(models.LayoutPowerOfTwo)
	if err != nil {
		t.Fatal(err)
	}
	orig := caldata.Canonical()

	srcAxis, _ := orig.Axis("ThrotVect")
	srcTbl, _ := orig.Table("ThrotArea")
	dstAxis, _ := ds.Axis("ThrotVect")
	dstTbl, _ := ds.Table("ThrotArea")

	// Canonical throttle breakpoints that also appear on the 2-deg grid.
	for _, shared := range []float64{8, 12, 18, 60} {
		si := index(srcAxis.Points, shared)
		di := index(dstAxis.Points, shared)
		if si < 0 || di < 0 {
			t.Fatalf("breakpoint %g not shared as expected", shared)
		}
		if got, want := dstTbl.Values[0][di], srcTbl.Values[0][si]; got != want {
			t.Errorf("ThrotArea at %g deg: got %g, want canonical %g", shared, got, want)
		}
	}
}

func TestPowerOfTwoValuesWithinCanonicalRange(t *testing.T) {
	ds, _, err := Remap(models.LayoutPowerOfTwo)
	if err != nil {
		t.Fatal(err)
	}
	orig := caldata.Canonical()

	for _, name := range []string{"PressEst", "ThrotEst", "SpeedEst", "ThrotArea"} {
		src, _ := orig.Table(name)
		dst, _ := ds.Table(name)
		lo, hi := src.MinMax()
		for i, row := range dst.Values {
			for j, v := range row {
				if v < lo || v > hi {
					t.Errorf("%s[%d][%d] = %g, outside canonical range [%g, %g]", name, i, j, v, lo, hi)
				}
			}
		}
	}
}

func TestPowerOfTwoRampTableIsAnalytic(t *testing.T) {
	ds, _, err := Remap(models.LayoutPowerOfTwo)
	if err != nil {
		t.Fatal(err)
	}
	tbl, ok := ds.Table("RampRateKi")
	if !ok {
		t.Fatal("RampRateKi missing")
	}
	if len(tbl.Values) != 6 || len(tbl.Values[0]) != 7 {
		t.Fatalf("RampRateKi: got %dx%d, want 6x7", len(tbl.Values), len(tbl.Values[0]))
	}
	for i, row := range tbl.Values {
		for j, v := range row {
			want := float64(i+1) * float64(j+1) * caldata.RampRateGain
			if v != want {
				t.Errorf("RampRateKi[%d][%d] = %g, want %g", i, j, v, want)
			}
		}
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		layout models.Layout
		want   models.RangeBounds
	}{
		{
			layout: models.LayoutOriginal,
			want: models.RangeBounds{
				Pressure: models.Bound{Min: 0.05, Max: 0.95},
				Speed:    models.Bound{Min: 50, Max: 628},
				Throttle: models.Bound{Min: 3, Max: 90},
				Ego:      models.Bound{Min: 0, Max: 1.2},
			},
		},
		{
			layout: models.LayoutPowerOfTwo,
			want: models.RangeBounds{
				Pressure: models.Bound{Min: 0.0625, Max: 0.9375},
				Speed:    models.Bound{Min: 64, Max: 628},
				Throttle: models.Bound{Min: 4, Max: 88},
				Ego:      models.Bound{Min: 0, Max: 1.2},
			},
		},
	}
	for _, tt := range tests {
		_, b, err := Remap(tt.layout)
		if err != nil {
			t.Fatalf("%s: %v", tt.layout, err)
		}
		if diff := cmp.Diff(tt.want, b); diff != "" {
			t.Errorf("%s bounds (-want +got):\n%s", tt.layout, diff)
		}
	}
}

func TestPolicyFor(t *testing.T) {
	pol, err := PolicyFor(models.LayoutOriginal)
	if err != nil {
		t.Fatal(err)
	}
	if pol.Search != models.SearchLinear || pol.Interp != models.InterpLinear || pol.Extrap != models.ExtrapClip {
		t.Errorf("original policy: %+v", pol)
	}

	pol, err = PolicyFor(models.LayoutPowerOfTwo)
	if err != nil {
		t.Fatal(err)
	}
	if pol.Search != models.SearchEvenIndex || pol.Interp != models.InterpFlat || pol.Extrap != models.ExtrapNone {
		t.Errorf("pow2 policy: %+v", pol)
	}

	if _, err := PolicyFor(models.Layout(99)); err == nil {
		t.Error("PolicyFor accepted an unknown layout")
	}
}

func TestEvaluate(t *testing.T) {
	origDs, _, err := Remap(models.LayoutOriginal)
	if err != nil {
		t.Fatal(err)
	}
	origPol, _ := PolicyFor(models.LayoutOriginal)
	area, _ := origDs.Table("ThrotArea")

	// Linear interpolation midway between the 5 and 8 deg breakpoints.
	got := Evaluate(origDs, area, origPol, 6.5, 0)
	want := (0.204 + 0.2642) / 2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("linear lookup at 6.5 deg: got %g, want %g", got, want)
	}

	// Out-of-range queries clamp to the end breakpoints.
	if got := Evaluate(origDs, area, origPol, 500, 0); got != 1.0 {
		t.Errorf("clamped lookup above range: got %g, want 1", got)
	}
	if got := Evaluate(origDs, area, origPol, -10, 0); got != 0.154 {
		t.Errorf("clamped lookup below range: got %g, want 0.154", got)
	}

	powDs, _, err := Remap(models.LayoutPowerOfTwo)
	if err != nil {
		t.Fatal(err)
	}
	powPol, _ := PolicyFor(models.LayoutPowerOfTwo)
	powArea, _ := powDs.Table("ThrotArea")

	// Flat lookup snaps to the nearest even-spaced breakpoint: 8.4 deg
	// rounds to the node at 8, which is shared with the canonical axis.
	if got := Evaluate(powDs, powArea, powPol, 8.4, 0); got != 0.2642 {
		t.Errorf("flat lookup at 8.4 deg: got %g, want 0.2642", got)
	}
}

func TestNearest(t *testing.T) {
	pts := []float64{4, 6, 8, 10}

	tests := []struct {
		x      float64
		search models.SearchMethod
		want   int
	}{
		{4.9, models.SearchEvenIndex, 0},
		{5.1, models.SearchEvenIndex, 1},
		{10, models.SearchEvenIndex, 3},
		{4.9, models.SearchLinear, 0},
		{7.8, models.SearchLinear, 2},
	}
	for _, tt := range tests {
		if got := nearest(pts, tt.x, tt.search); got != tt.want {
			t.Errorf("nearest(%g, %v) = %d, want %d", tt.x, tt.search, got, tt.want)
		}
	}
}

func index(pts []float64, x float64) int {
	for i, v := range pts {
		if v == x {
			return i
		}
	}
	return -1
}
