package models

import "fmt"

// Layout selects the breakpoint spacing strategy for a calibration dataset.
type Layout int

const (
	// LayoutOriginal keeps the irregularly spaced canonical breakpoints.
	LayoutOriginal Layout = iota
	// LayoutPowerOfTwo replaces the working axes with evenly spaced,
	// power-of-two-stepped breakpoints.
	LayoutPowerOfTwo
)

func (l Layout) String() string {
	switch l {
	case LayoutOriginal:
		return "original"
	case LayoutPowerOfTwo:
		return "pow2"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// NumericKind selects the numeric representation used by the controller.
type NumericKind int

const (
	NumericFloating NumericKind = iota
	NumericFixed
)

func (k NumericKind) String() string {
	switch k {
	case NumericFloating:
		return "float"
	case NumericFixed:
		return "fixed"
	default:
		return fmt.Sprintf("numeric(%d)", int(k))
	}
}

// Published axis and table names. These are contract surface: downstream
// consumers resolve the same names regardless of which variant is active.
const (
	AxisSpeed    = "SpeedVect"
	AxisThrottle = "ThrotVect"
	AxisPressure = "PressVect"
	AxisEgo      = "EgoVect"
	AxisRampX    = "RampRateKiX"
	AxisRampY    = "RampRateKiY"

	TablePressEst   = "PressEst"
	TableThrotEst   = "ThrotEst"
	TableSpeedEst   = "SpeedEst"
	TableThrotArea  = "ThrotArea"
	TableRampRateKi = "RampRateKi"
)

// Axis is one independent variable's breakpoint grid: an ordered sequence of
// strictly increasing sample points.
type Axis struct {
	Name   string
	Unit   string
	Points []float64
}

// Min returns the first breakpoint.
func (a Axis) Min() float64 { return a.Points[0] }

// Max returns the last breakpoint.
func (a Axis) Max() float64 { return a.Points[len(a.Points)-1] }

// Copy returns an Axis with its own backing array.
func (a Axis) Copy() Axis {
	pts := make([]float64, len(a.Points))
	copy(pts, a.Points)
	return Axis{Name: a.Name, Unit: a.Unit, Points: pts}
}

// Validate checks the breakpoint invariants: at least two points, strictly
// increasing.
func (a Axis) Validate() error {
	if len(a.Points) < 2 {
		return fmt.Errorf("axis %s: need at least 2 breakpoints, have %d", a.Name, len(a.Points))
	}
	for i := 1; i < len(a.Points); i++ {
		if a.Points[i] <= a.Points[i-1] {
			return fmt.Errorf("axis %s: breakpoints not strictly increasing at index %d (%g then %g)",
				a.Name, i, a.Points[i-1], a.Points[i])
		}
	}
	return nil
}

// Table is a named lookup table indexed by one or two axes of its dataset.
// A 2-D table's rows follow RowAxis and columns follow ColAxis. A 1-D table
// has an empty ColAxis and a single row of values along RowAxis.
type Table struct {
	Name    string
	Unit    string
	RowAxis string
	ColAxis string
	Values  [][]float64
}

// Is1D reports whether the table is indexed by a single axis.
func (t Table) Is1D() bool { return t.ColAxis == "" }

// Copy returns a Table with its own backing arrays.
func (t Table) Copy() Table {
	vals := make([][]float64, len(t.Values))
	for i, row := range t.Values {
		vals[i] = make([]float64, len(row))
		copy(vals[i], row)
	}
	t.Values = vals
	return t
}

// MinMax returns the smallest and largest values in the table.
func (t Table) MinMax() (float64, float64) {
	min := t.Values[0][0]
	max := t.Values[0][0]
	for _, row := range t.Values {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

// Dataset is one complete calibration snapshot: a named collection of axes
// and the tables indexed by them. Tables reference axes by name and only
// within the same dataset.
type Dataset struct {
	Name   string
	Axes   []Axis
	Tables []Table
}

// Axis looks up an axis by name.
func (d *Dataset) Axis(name string) (Axis, bool) {
	for _, a := range d.Axes {
		if a.Name == name {
			return a, true
		}
	}
	return Axis{}, false
}

// Table looks up a table by name.
func (d *Dataset) Table(name string) (Table, bool) {
	for _, t := range d.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// Copy returns a Dataset whose axes and tables have their own backing arrays.
func (d *Dataset) Copy() *Dataset {
	out := &Dataset{Name: d.Name}
	for _, a := range d.Axes {
		out.Axes = append(out.Axes, a.Copy())
	}
	for _, t := range d.Tables {
		out.Tables = append(out.Tables, t.Copy())
	}
	return out
}

// Validate checks every dataset invariant: axis monotonicity, axis
// references, and exact shape agreement between each table and its axes.
func (d *Dataset) Validate() error {
	for _, a := range d.Axes {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	for _, t := range d.Tables {
		row, ok := d.Axis(t.RowAxis)
		if !ok {
			return fmt.Errorf("table %s: unknown row axis %q", t.Name, t.RowAxis)
		}
		if t.Is1D() {
			if len(t.Values) != 1 || len(t.Values[0]) != len(row.Points) {
				return fmt.Errorf("table %s: want 1x%d values, have %dx%d",
					t.Name, len(row.Points), len(t.Values), width(t.Values))
			}
			continue
		}
		col, ok := d.Axis(t.ColAxis)
		if !ok {
			return fmt.Errorf("table %s: unknown column axis %q", t.Name, t.ColAxis)
		}
		if len(t.Values) != len(row.Points) {
			return fmt.Errorf("table %s: want %d rows, have %d", t.Name, len(row.Points), len(t.Values))
		}
		for i, r := range t.Values {
			if len(r) != len(col.Points) {
				return fmt.Errorf("table %s: row %d wants %d columns, has %d",
					t.Name, i, len(col.Points), len(r))
			}
		}
	}
	return nil
}

func width(vals [][]float64) int {
	if len(vals) == 0 {
		return 0
	}
	return len(vals[0])
}
