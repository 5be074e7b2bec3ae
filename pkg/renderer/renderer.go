package renderer

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"fuelsys-caltool/pkg/models"
)

// RenderTable displays one table with its breakpoint headers and a color
// scale over the value range.
func RenderTable(ds *models.Dataset, t models.Table, displayMode string) {
	min, max := t.MinMax()
	shape := fmt.Sprintf("1x%d", len(t.Values[0]))
	if !t.Is1D() {
		shape = fmt.Sprintf("%dx%d", len(t.Values), len(t.Values[0]))
	}
	title := fmt.Sprintf("%s | %s | %s | Range: %.4g-%.4g %s",
		t.Name, ds.Name, shape, min, max, t.Unit)

	pterm.DefaultBox.WithTitle(title).WithTitleTopLeft().Println(BuildTableString(ds, t, displayMode, min, max))
}

// BuildTableString creates a formatted string representation of the table.
func BuildTableString(ds *models.Dataset, t models.Table, displayMode string, min, max float64) string {
	var result strings.Builder

	row, _ := ds.Axis(t.RowAxis)
	colName := t.RowAxis
	colPts := row.Points
	if !t.Is1D() {
		col, _ := ds.Axis(t.ColAxis)
		colName = t.ColAxis
		colPts = col.Points
	}

	// Column breakpoint header
	result.WriteString(fmt.Sprintf("%12s |", colName+" →"))
	for _, bp := range colPts {
		result.WriteString(fmt.Sprintf(" %8.4g", bp))
	}
	result.WriteString("\n")
	result.WriteString(strings.Repeat("-", 14+9*len(colPts)) + "\n")

	for i, rowVals := range t.Values {
		label := ""
		if !t.Is1D() {
			label = fmt.Sprintf("%10.4g ↓", row.Points[i])
		}
		result.WriteString(fmt.Sprintf("%12s |", label))
		for _, v := range rowVals {
			switch displayMode {
			case "symbols":
				result.WriteString("   " + getSymbolForValue(v, min, max) + getSymbolForValue(v, min, max) + "    ")
			case "heatmap":
				result.WriteString("   " + getHeatmapBlock(v, min, max) + "    ")
			default:
				color := getColorStyle(v, min, max)
				result.WriteString(color.Sprintf(" %8.4g", v))
			}
		}
		result.WriteString("\n")
	}

	if displayMode == "symbols" || displayMode == "heatmap" {
		result.WriteString("\nLegend: ")
		result.WriteString(pterm.FgCyan.Sprint("░") + " Low  ")
		result.WriteString(pterm.FgGreen.Sprint("▒") + " Med  ")
		result.WriteString(pterm.FgYellow.Sprint("▓") + " High  ")
		result.WriteString(pterm.FgRed.Sprint("█") + " Max")
	}

	return result.String()
}

func getHeatmapBlock(value, min, max float64) string {
	if max == min {
		return pterm.BgGray.Sprint("  ")
	}

	normalized := (value - min) / (max - min)

	switch {
	case normalized < 0.2:
		return pterm.NewStyle(pterm.BgBlue, pterm.FgWhite).Sprint("▄▄")
	case normalized < 0.4:
		return pterm.NewStyle(pterm.BgCyan, pterm.FgBlack).Sprint("▄▄")
	case normalized < 0.6:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack).Sprint("▄▄")
	case normalized < 0.8:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack).Sprint("▄▄")
	default:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite).Sprint("▄▄")
	}
}

func getSymbolForValue(value, min, max float64) string {
	if max == min {
		return pterm.FgGray.Sprint("·")
	}

	normalized := (value - min) / (max - min)

	switch {
	case normalized < 0.25:
		return pterm.FgCyan.Sprint("░")
	case normalized < 0.5:
		return pterm.FgGreen.Sprint("▒")
	case normalized < 0.75:
		return pterm.FgYellow.Sprint("▓")
	default:
		return pterm.FgRed.Sprint("█")
	}
}

func getColorStyle(value, min, max float64) *pterm.Style {
	if max == min {
		return pterm.NewStyle(pterm.FgGray)
	}

	normalized := (value - min) / (max - min)

	switch {
	case normalized < 0.25:
		return pterm.NewStyle(pterm.FgCyan)
	case normalized < 0.5:
		return pterm.NewStyle(pterm.FgGreen)
	case normalized < 0.75:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgRed)
	}
}

// ListDataset displays the axes, tables, and scalar parameters of the
// active configuration.
func ListDataset(st *models.ConfigState) {
	pterm.DefaultHeader.WithFullWidth().Printf("Calibration Dataset: %s / %s\n", st.Layout, st.Numeric)

	axisData := [][]string{{"Axis", "Unit", "Points", "Min", "Max"}}
	for _, a := range st.Dataset.Axes {
		axisData = append(axisData, []string{
			a.Name,
			a.Unit,
			fmt.Sprintf("%d", len(a.Points)),
			fmt.Sprintf("%.4g", a.Min()),
			fmt.Sprintf("%.4g", a.Max()),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(axisData).Render()
	pterm.Println()

	tableData := [][]string{{"Table", "Axes", "Size", "Unit"}}
	for _, t := range st.Dataset.Tables {
		axes := t.RowAxis
		size := fmt.Sprintf("1x%d", len(t.Values[0]))
		if !t.Is1D() {
			axes += " x " + t.ColAxis
			size = fmt.Sprintf("%dx%d", len(t.Values), len(t.Values[0]))
		}
		tableData = append(tableData, []string{t.Name, axes, size, t.Unit})
	}
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Println()

	paramData := [][]string{{"Parameter", "Unit", "Description"}}
	for _, p := range models.ParamInfos {
		paramData = append(paramData, []string{p.Name, p.Unit, p.Description})
	}
	pterm.DefaultTable.WithHasHeader().WithData(paramData).Render()
}

// ShowFormats displays the four numeric-format slots.
func ShowFormats(st *models.ConfigState) {
	data := [][]string{
		{"Slot", "Quantity", "Format"},
		{"u8En7", "manifold pressure", st.Formats.Pressure.String()},
		{"s16En3", "throttle/speed sensors", st.Formats.Sensor.String()},
		{"s16En7", "O2 sensor voltage", st.Formats.Ego.String()},
		{"s16En15", "high-resolution residual", st.Formats.Residual.String()},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
