package caldata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCanonicalDeterministic(t *testing.T) {
	a := Canonical()
	b := Canonical()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Canonical() differs between calls (-first +second):\n%s", diff)
	}
}

func TestCanonicalDoesNotAliasPreviousCalls(t *testing.T) {
	a := Canonical()
	a.Axes[0].Points[0] = -999
	a.Tables[0].Values[0][0] = -999

	b := Canonical()
	if b.Axes[0].Points[0] == -999 {
		t.Error("mutating a returned axis leaked into a later Canonical() call")
	}
	if b.Tables[0].Values[0][0] == -999 {
		t.Error("mutating a returned table leaked into a later Canonical() call")
	}
}

func TestCanonicalValidates(t *testing.T) {
	if err := Canonical().Validate(); err != nil {
		t.Fatalf("canonical dataset failed validation: %v", err)
	}
}

func TestCanonicalShapes(t *testing.T) {
	ds := Canonical()

	axisLens := map[string]int{
		"SpeedVect":   14,
		"ThrotVect":   11,
		"PressVect":   19,
		"EgoVect":     13,
		"RampRateKiX": 5,
		"RampRateKiY": 7,
	}
	for name, want := range axisLens {
		a, ok := ds.Axis(name)
		if !ok {
			t.Fatalf("axis %s missing", name)
		}
		if got := len(a.Points); got != want {
			t.Errorf("axis %s: got %d points, want %d", name, got, want)
		}
	}

	press, _ := ds.Axis("PressVect")
	if press.Min() != 0.05 || press.Max() != 0.95 {
		t.Errorf("PressVect span [%g, %g], want [0.05, 0.95]", press.Min(), press.Max())
	}
}

func TestRampTable(t *testing.T) {
	vals := RampTable(5, 7, RampRateGain)
	if len(vals) != 5 || len(vals[0]) != 7 {
		t.Fatalf("RampTable(5, 7): got %dx%d", len(vals), len(vals[0]))
	}
	for i := range vals {
		for j := range vals[i] {
			want := float64(i+1) * float64(j+1) * RampRateGain
			if vals[i][j] != want {
				t.Errorf("RampTable[%d][%d] = %g, want %g", i, j, vals[i][j], want)
			}
		}
	}

	tbl, ok := Canonical().Table("RampRateKi")
	if !ok {
		t.Fatal("canonical RampRateKi missing")
	}
	if diff := cmp.Diff(vals, tbl.Values); diff != "" {
		t.Errorf("canonical RampRateKi is not the analytic table (-want +got):\n%s", diff)
	}
}

func TestScalarsDefaults(t *testing.T) {
	s := Scalars()
	if s.Hysteresis != 25 || s.ZeroThresh != 250 || s.StateRange != 1e-4 {
		t.Errorf("unexpected constants: %+v", s)
	}
	if s.ThrottleSw != 1 || s.SpeedSw != 1 || s.EgoSw != 1 || s.MapSw != 1 {
		t.Errorf("fault switches should default to enabled: %+v", s)
	}
}
