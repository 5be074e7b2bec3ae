package compare

import (
	"fmt"
	"math"
	"strings"

	"github.com/pterm/pterm"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"fuelsys-caltool/pkg/models"
	"fuelsys-caltool/pkg/remap"
)

// Layouts probes each table of both breakpoint layouts at the canonical
// grid nodes, each through its own lookup policy, and reports the error the
// power-of-two variant introduces at those operating points.
func Layouts() error {
	orig, _, err := remap.Remap(models.LayoutOriginal)
	if err != nil {
		return err
	}
	pow2, _, err := remap.Remap(models.LayoutPowerOfTwo)
	if err != nil {
		return err
	}
	origPol, _ := remap.PolicyFor(models.LayoutOriginal)
	pow2Pol, _ := remap.PolicyFor(models.LayoutPowerOfTwo)

	pterm.DefaultHeader.WithFullWidth().Println("Breakpoint Layout Comparison")

	for _, t := range orig.Tables {
		pterm.Println()
		pterm.DefaultSection.Printf("Comparing: %s\n", t.Name)

		p2, ok := pow2.Table(t.Name)
		if !ok {
			pterm.Error.Printf("Table %s missing from pow2 dataset\n", t.Name)
			continue
		}

		diff := probeDiff(orig, t, origPol, pow2, p2, pow2Pol)
		displayStats(t, diff)
		visualizeDifferences(orig, t, diff)
	}
	return nil
}

// probeDiff evaluates both variants at every canonical breakpoint node and
// returns pow2 minus original, table-shaped.
func probeDiff(orig *models.Dataset, ot models.Table, origPol models.LookupPolicy,
	pow2 *models.Dataset, pt models.Table, pow2Pol models.LookupPolicy) [][]float64 {

	row, _ := orig.Axis(ot.RowAxis)

	if ot.Is1D() {
		diff := make([]float64, len(row.Points))
		for j, x := range row.Points {
			a := remap.Evaluate(orig, ot, origPol, x, 0)
			b := remap.Evaluate(pow2, pt, pow2Pol, x, 0)
			diff[j] = b - a
		}
		return [][]float64{diff}
	}

	col, _ := orig.Axis(ot.ColAxis)
	diff := make([][]float64, len(row.Points))
	for i, x := range row.Points {
		diff[i] = make([]float64, len(col.Points))
		for j, y := range col.Points {
			a := remap.Evaluate(orig, ot, origPol, x, y)
			b := remap.Evaluate(pow2, pt, pow2Pol, x, y)
			diff[i][j] = b - a
		}
	}
	return diff
}

func displayStats(t models.Table, diff [][]float64) {
	var flat []float64
	for _, row := range diff {
		flat = append(flat, row...)
	}
	abs := make([]float64, len(flat))
	for i, v := range flat {
		abs[i] = math.Abs(v)
	}

	changed := 0
	for _, v := range flat {
		if v != 0 {
			changed++
		}
	}

	pterm.Info.Printf("Probed points: %d, changed: %d (%.1f%%)\n",
		len(flat), changed, float64(changed)/float64(len(flat))*100)
	pterm.Info.Printf("Mean |error|: %.4g %s\n", stat.Mean(abs, nil), t.Unit)
	pterm.Info.Printf("Max increase: %.4g %s\n", floats.Max(flat), t.Unit)
	pterm.Info.Printf("Max decrease: %.4g %s\n", floats.Min(flat), t.Unit)
}

func visualizeDifferences(ds *models.Dataset, t models.Table, diff [][]float64) {
	var result strings.Builder

	maxAbs := 0.0
	for _, row := range diff {
		for _, v := range row {
			if math.Abs(v) > maxAbs {
				maxAbs = math.Abs(v)
			}
		}
	}

	axisName := t.ColAxis
	if t.Is1D() {
		axisName = t.RowAxis
	}
	result.WriteString(fmt.Sprintf("%12s |", axisName+" →"))
	result.WriteString(strings.Repeat("---", len(diff[0])) + "\n")

	row, _ := ds.Axis(t.RowAxis)
	for i, rowVals := range diff {
		label := ""
		if !t.Is1D() {
			label = fmt.Sprintf("%10.4g ↓", row.Points[i])
		}
		result.WriteString(fmt.Sprintf("%12s |", label))
		for _, v := range rowVals {
			result.WriteString(getDiffSymbol(v, maxAbs))
		}
		result.WriteString("\n")
	}

	result.WriteString("\nLegend: ")
	result.WriteString(pterm.FgBlue.Sprint("▼▼") + " Large Decrease  ")
	result.WriteString(pterm.FgCyan.Sprint("▼ ") + " Small Decrease  ")
	result.WriteString(pterm.FgGray.Sprint("··") + " No Change  ")
	result.WriteString(pterm.FgYellow.Sprint("▲ ") + " Small Increase  ")
	result.WriteString(pterm.FgRed.Sprint("▲▲") + " Large Increase")

	pterm.DefaultBox.Println(result.String())
}

func getDiffSymbol(val, maxAbs float64) string {
	if val == 0 || maxAbs == 0 {
		return pterm.FgGray.Sprint("·· ")
	}

	normalized := val / maxAbs

	switch {
	case normalized < -0.5:
		return pterm.FgBlue.Sprint("▼▼ ")
	case normalized < -0.1:
		return pterm.FgCyan.Sprint("▼  ")
	case normalized > 0.5:
		return pterm.FgRed.Sprint("▲▲ ")
	case normalized > 0.1:
		return pterm.FgYellow.Sprint("▲  ")
	default:
		return pterm.FgGray.Sprint("·  ")
	}
}
