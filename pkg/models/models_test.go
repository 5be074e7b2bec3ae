package models

import (
	"strings"
	"testing"
)

func validDataset() *Dataset {
	return &Dataset{
		Name: "test",
		Axes: []Axis{
			{Name: "x", Points: []float64{1, 2, 3}},
			{Name: "y", Points: []float64{10, 20}},
		},
		Tables: []Table{
			{Name: "grid", RowAxis: "x", ColAxis: "y", Values: [][]float64{{1, 2}, {3, 4}, {5, 6}}},
			{Name: "line", RowAxis: "y", Values: [][]float64{{7, 8}}},
		},
	}
}

func TestDatasetValidate(t *testing.T) {
	if err := validDataset().Validate(); err != nil {
		t.Fatalf("valid dataset rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Dataset)
		wantMsg string
	}{
		{
			"non-increasing axis",
			func(d *Dataset) { d.Axes[0].Points = []float64{1, 3, 2} },
			"strictly increasing",
		},
		{
			"duplicate breakpoint",
			func(d *Dataset) { d.Axes[0].Points = []float64{1, 2, 2} },
			"strictly increasing",
		},
		{
			"unknown row axis",
			func(d *Dataset) { d.Tables[0].RowAxis = "z" },
			"unknown row axis",
		},
		{
			"unknown column axis",
			func(d *Dataset) { d.Tables[0].ColAxis = "z" },
			"unknown column axis",
		},
		{
			"row count mismatch",
			func(d *Dataset) { d.Tables[0].Values = d.Tables[0].Values[:2] },
			"rows",
		},
		{
			"column count mismatch",
			func(d *Dataset) { d.Tables[0].Values[1] = []float64{1} },
			"columns",
		},
		{
			"1-D length mismatch",
			func(d *Dataset) { d.Tables[1].Values = [][]float64{{7}} },
			"1x2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDataset()
			tt.mutate(d)
			err := d.Validate()
			if err == nil {
				t.Fatal("Validate accepted a malformed dataset")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestDatasetCopyIsDeep(t *testing.T) {
	d := validDataset()
	c := d.Copy()

	c.Axes[0].Points[0] = -1
	c.Tables[0].Values[0][0] = -1

	if d.Axes[0].Points[0] != 1 {
		t.Error("axis copy shares backing array")
	}
	if d.Tables[0].Values[0][0] != 1 {
		t.Error("table copy shares backing array")
	}
}

func TestTableMinMax(t *testing.T) {
	tbl := Table{Values: [][]float64{{3, -2}, {8, 0}}}
	lo, hi := tbl.MinMax()
	if lo != -2 || hi != 8 {
		t.Errorf("MinMax() = %g, %g, want -2, 8", lo, hi)
	}
}

func TestVariantStrings(t *testing.T) {
	if LayoutOriginal.String() != "original" || LayoutPowerOfTwo.String() != "pow2" {
		t.Error("layout strings changed; they are published contract surface")
	}
	if NumericFloating.String() != "float" || NumericFixed.String() != "fixed" {
		t.Error("numeric kind strings changed; they are published contract surface")
	}
}
