// Package plot renders calibration tables as PNG heatmaps for offline
// inspection of a remapped dataset.
package plot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"fuelsys-caltool/pkg/models"
)

// tableGrid adapts a 2-D calibration table to plotter.GridXYZ. Rows map to
// the Y axis and columns to the X axis so the breakpoint units label the
// plot axes directly.
type tableGrid struct {
	rowPts []float64
	colPts []float64
	vals   [][]float64
}

func (g tableGrid) Dims() (int, int)   { return len(g.colPts), len(g.rowPts) }
func (g tableGrid) Z(c, r int) float64 { return g.vals[r][c] }
func (g tableGrid) X(c int) float64    { return g.colPts[c] }
func (g tableGrid) Y(r int) float64    { return g.rowPts[r] }

// Heatmaps writes one PNG heatmap per 2-D table in the dataset. 1-D tables
// are skipped; they carry too little structure to plot this way.
func Heatmaps(ds *models.Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create plot directory: %w", err)
	}

	for _, t := range ds.Tables {
		if t.Is1D() {
			continue
		}
		if err := heatmap(ds, t, dir); err != nil {
			return fmt.Errorf("plot %s: %w", t.Name, err)
		}
	}
	return nil
}

func heatmap(ds *models.Dataset, t models.Table, dir string) error {
	row, _ := ds.Axis(t.RowAxis)
	col, _ := ds.Axis(t.ColAxis)

	grid := tableGrid{rowPts: row.Points, colPts: col.Points, vals: t.Values}
	hm := plotter.NewHeatMap(grid, palette.Heat(16, 1))

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%s) [%s]", t.Name, ds.Name, t.Unit)
	p.X.Label.Text = fmt.Sprintf("%s [%s]", t.ColAxis, col.Unit)
	p.Y.Label.Text = fmt.Sprintf("%s [%s]", t.RowAxis, row.Unit)
	p.Add(hm)

	name := filepath.Join(dir, strings.ToLower(t.Name)+"_"+ds.Name+".png")
	return p.Save(6*vg.Inch, 4*vg.Inch, name)
}
