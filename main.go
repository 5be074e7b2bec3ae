package main

import (
	"flag"
	"os"

	"github.com/pterm/pterm"

	"fuelsys-caltool/pkg/compare"
	"fuelsys-caltool/pkg/config"
	"fuelsys-caltool/pkg/editor"
	"fuelsys-caltool/pkg/engine"
	"fuelsys-caltool/pkg/export"
	"fuelsys-caltool/pkg/plot"
	"fuelsys-caltool/pkg/renderer"
	"fuelsys-caltool/pkg/web"
	"fuelsys-caltool/pkg/workspace"
)

func main() {
	configPath := flag.String("config", "", "caltool YAML config file")
	layoutFlag := flag.String("layout", "", "breakpoint layout: original or pow2")
	numericFlag := flag.String("numeric", "", "numeric representation: float or fixed")
	list := flag.Bool("list", false, "list axes, tables, and parameters")
	show := flag.String("show", "", "table to render: PressEst, ThrotEst, SpeedEst, ThrotArea, RampRateKi, or all")
	display := flag.String("display", "values", "display mode: values, symbols, or heatmap")
	exportDir := flag.String("export", "", "export tables to CSV files in this directory")
	plotDir := flag.String("plot", "", "write PNG heatmaps of the 2-D tables to this directory")
	doCompare := flag.Bool("compare", false, "compare the two breakpoint layouts")
	tune := flag.Bool("tune", false, "interactive configuration session")
	verify := flag.Bool("verify", false, "validate dataset invariants for both layouts")
	serve := flag.Bool("serve", false, "serve the published configuration over HTTP")
	port := flag.Int("port", 8080, "HTTP port for -serve")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			pterm.Error.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	// Flags override the config file.
	if *layoutFlag != "" {
		cfg.Layout = *layoutFlag
	}
	if *numericFlag != "" {
		cfg.Numeric = *numericFlag
	}
	if *exportDir != "" {
		cfg.ExportDir = *exportDir
	}

	layout, err := config.ParseLayout(cfg.Layout)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	kind, err := config.ParseNumeric(cfg.Numeric)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	ws := workspace.NewMemory()
	eng := engine.New(ws)
	eng.SetFaultSwitches(cfg.Faults.Enabled())

	if *tune {
		editor.InteractiveTune(eng)
		return
	}

	st, err := eng.Configure(layout, kind)
	if err != nil {
		pterm.Error.Printf("Configuration failed, nothing published: %v\n", err)
		os.Exit(1)
	}

	pterm.DefaultHeader.WithFullWidth().
		WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightWhite)).
		Println("Fuel System Calibration Tool")

	ran := false

	if *verify {
		ran = true
		runVerify(eng)
	}

	if *list {
		ran = true
		renderer.ListDataset(st)
		pterm.Println()
		renderer.ShowFormats(st)
	}

	if *show != "" {
		ran = true
		for _, t := range st.Dataset.Tables {
			if *show == "all" || t.Name == *show {
				renderer.RenderTable(st.Dataset, t, *display)
				pterm.Println()
			}
		}
	}

	if *doCompare {
		ran = true
		if err := compare.Layouts(); err != nil {
			pterm.Error.Printf("Comparison failed: %v\n", err)
			os.Exit(1)
		}
	}

	if *exportDir != "" {
		ran = true
		if err := export.TablesToCSV(st.Dataset, cfg.ExportDir); err != nil {
			pterm.Error.Printf("Export failed: %v\n", err)
			os.Exit(1)
		}
	}

	if *plotDir != "" {
		ran = true
		if err := plot.Heatmaps(st.Dataset, *plotDir); err != nil {
			pterm.Error.Printf("Plotting failed: %v\n", err)
			os.Exit(1)
		}
		pterm.Success.Printf("Heatmaps written to %s\n", *plotDir)
	}

	if *serve {
		ran = true
		if err := web.NewServer(ws, *port).Start(); err != nil {
			pterm.Error.Printf("Server failed: %v\n", err)
			os.Exit(1)
		}
	}

	if !ran {
		renderer.ListDataset(st)
	}
}

func runVerify(eng *engine.Engine) {
	pterm.DefaultSection.Println("Dataset verification")

	canonical := eng.Canonical()
	if err := canonical.Validate(); err != nil {
		pterm.Error.Printf("Canonical dataset invalid: %v\n", err)
		os.Exit(1)
	}
	pterm.Success.Printf("Canonical dataset: %d axes, %d tables, invariants hold\n",
		len(canonical.Axes), len(canonical.Tables))

	for _, layout := range []string{"original", "pow2"} {
		l, _ := config.ParseLayout(layout)
		st, err := eng.Remap(l)
		if err != nil {
			pterm.Error.Printf("Remap %s failed: %v\n", layout, err)
			os.Exit(1)
		}
		if err := st.Dataset.Validate(); err != nil {
			pterm.Error.Printf("Dataset %s invalid: %v\n", layout, err)
			os.Exit(1)
		}
		pterm.Success.Printf("Layout %s: invariants hold\n", layout)
	}
}
