package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"fuelsys-caltool/pkg/models"
)

// TablesToCSV exports every table of the dataset to one CSV file per table
// under dir, with real breakpoint headers.
func TablesToCSV(ds *models.Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	spinner, _ := pterm.DefaultSpinner.Start("Exporting calibration tables to CSV...")

	for _, t := range ds.Tables {
		name := filepath.Join(dir, strings.ToLower(t.Name)+"_"+ds.Name+".csv")
		if err := tableToCSV(ds, t, name); err != nil {
			spinner.Fail(fmt.Sprintf("Failed to export %s", t.Name))
			return err
		}
	}

	spinner.Success(fmt.Sprintf("Tables exported to %s", dir))
	return nil
}

func tableToCSV(ds *models.Dataset, t models.Table, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{fmt.Sprintf("# %s (%s)", t.Name, ds.Name)})
	writer.Write([]string{fmt.Sprintf("# Unit: %s", t.Unit)})

	row, _ := ds.Axis(t.RowAxis)

	if t.Is1D() {
		writer.Write([]string{""})
		header := []string{t.RowAxis}
		for _, bp := range row.Points {
			header = append(header, fmt.Sprintf("%g", bp))
		}
		writer.Write(header)

		line := []string{t.Name}
		for _, v := range t.Values[0] {
			line = append(line, fmt.Sprintf("%g", v))
		}
		return writer.Write(line)
	}

	col, _ := ds.Axis(t.ColAxis)
	writer.Write([]string{""})

	header := []string{t.RowAxis + `\` + t.ColAxis}
	for _, bp := range col.Points {
		header = append(header, fmt.Sprintf("%g", bp))
	}
	writer.Write(header)

	for i, rowVals := range t.Values {
		line := []string{fmt.Sprintf("%g", row.Points[i])}
		for _, v := range rowVals {
			line = append(line, fmt.Sprintf("%g", v))
		}
		if err := writer.Write(line); err != nil {
			return err
		}
	}

	return nil
}
