package editor

import (
	"github.com/pterm/pterm"

	"fuelsys-caltool/pkg/engine"
	"fuelsys-caltool/pkg/models"
	"fuelsys-caltool/pkg/renderer"
)

// InteractiveTune walks through a full configuration interactively: pick the
// breakpoint layout and numeric representation, toggle the fault-injection
// switches, confirm, and publish.
func InteractiveTune(eng *engine.Engine) {
	pterm.DefaultHeader.WithFullWidth().
		WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("INTERACTIVE CALIBRATION TUNING")

	pterm.Info.Println("Changes replace the published configuration for every downstream consumer.")

	layoutChoice, _ := pterm.DefaultInteractiveSelect.
		WithOptions([]string{"original (irregular breakpoints)", "pow2 (evenly spaced breakpoints)"}).
		Show("Select breakpoint layout:")
	layout := models.LayoutOriginal
	if layoutChoice[:4] == "pow2" {
		layout = models.LayoutPowerOfTwo
	}

	numericChoice, _ := pterm.DefaultInteractiveSelect.
		WithOptions([]string{"float (single precision)", "fixed (fixed point)"}).
		Show("Select numeric representation:")
	kind := models.NumericFloating
	if numericChoice[:5] == "fixed" {
		kind = models.NumericFixed
	}

	throttle := askSwitch("throttle sensor")
	speed := askSwitch("speed sensor")
	ego := askSwitch("EGO sensor")
	mapSensor := askSwitch("MAP sensor")
	eng.SetFaultSwitches(throttle, speed, ego, mapSensor)

	pterm.Info.Printf("Will publish layout=%s numeric=%s\n", layout, kind)
	ok, _ := pterm.DefaultInteractiveConfirm.Show("Publish this configuration?")
	if !ok {
		pterm.Info.Println("Cancelled, published state unchanged.")
		return
	}

	st, err := eng.Configure(layout, kind)
	if err != nil {
		pterm.Error.Printf("Configuration failed, nothing published: %v\n", err)
		return
	}

	pterm.Success.Println("Configuration published.")
	renderer.ShowFormats(st)
}

func askSwitch(name string) bool {
	on, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(true).
		Show("Enable " + name + " fault-injection switch?")
	return on
}
