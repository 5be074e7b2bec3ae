// Package engine ties the calibration pipeline together: table store →
// breakpoint remapper → publisher, with the numeric type selector feeding
// both the publisher and the quantized scalar constants. Every operation is
// synchronous and recomputes from the canonical dataset; the engine retains
// only the variant selectors, never a derived dataset.
package engine

import (
	"fuelsys-caltool/pkg/caldata"
	"fuelsys-caltool/pkg/models"
	"fuelsys-caltool/pkg/numtype"
	"fuelsys-caltool/pkg/remap"
	"fuelsys-caltool/pkg/workspace"
)

// Engine publishes calibration configurations into an injected workspace.
// It is the workspace's sole writer. Not safe for concurrent use; callers
// serialize configuration against reads.
type Engine struct {
	ws       workspace.Workspace
	layout   models.Layout
	numeric  models.NumericKind
	switches models.ScalarConstants
}

// New returns an engine targeting ws, starting from the original layout and
// floating-point representation.
func New(ws workspace.Workspace) *Engine {
	return &Engine{
		ws:       ws,
		layout:   models.LayoutOriginal,
		numeric:  models.NumericFloating,
		switches: caldata.Scalars(),
	}
}

// SetFaultSwitches overrides the fault-injection switch states applied on
// the next publish. All switches default to enabled.
func (e *Engine) SetFaultSwitches(throttle, speed, ego, mapSensor bool) {
	e.switches.ThrottleSw = boolToSw(throttle)
	e.switches.SpeedSw = boolToSw(speed)
	e.switches.EgoSw = boolToSw(ego)
	e.switches.MapSw = boolToSw(mapSensor)
}

// Configure performs a full initialization: derive the dataset for layout,
// resolve the numeric formats for kind, and publish the complete
// configuration. Any failure leaves the previously published state intact.
func (e *Engine) Configure(layout models.Layout, kind models.NumericKind) (*models.ConfigState, error) {
	st, err := e.build(layout, kind)
	if err != nil {
		return nil, err
	}
	workspace.PublishAll(e.ws, st)
	e.layout = layout
	e.numeric = kind
	return st, nil
}

// Remap switches the breakpoint layout, reusing the currently selected
// numeric representation.
func (e *Engine) Remap(layout models.Layout) (*models.ConfigState, error) {
	st, err := e.build(layout, e.numeric)
	if err != nil {
		return nil, err
	}
	workspace.PublishDataset(e.ws, st)
	e.layout = layout
	return st, nil
}

// SelectNumeric switches the numeric representation, reusing the currently
// active layout's dataset.
func (e *Engine) SelectNumeric(kind models.NumericKind) (*models.ConfigState, error) {
	st, err := e.build(e.layout, kind)
	if err != nil {
		return nil, err
	}
	workspace.PublishFormats(e.ws, st)
	e.numeric = kind
	return st, nil
}

// Canonical exports the original calibration tables, independent of any
// published state.
func (e *Engine) Canonical() *models.Dataset {
	return caldata.Canonical()
}

// Layout returns the currently active breakpoint layout.
func (e *Engine) Layout() models.Layout { return e.layout }

// Numeric returns the currently active numeric representation.
func (e *Engine) Numeric() models.NumericKind { return e.numeric }

// build derives a complete configuration state without publishing. Every
// error is detected here, before any workspace write.
func (e *Engine) build(layout models.Layout, kind models.NumericKind) (*models.ConfigState, error) {
	formats, err := numtype.Select(kind)
	if err != nil {
		return nil, err
	}
	ds, bounds, err := remap.Remap(layout)
	if err != nil {
		return nil, err
	}
	pol, err := remap.PolicyFor(layout)
	if err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	scalars := e.switches
	scalars.StateRange, err = numtype.Quantize(workspace.NameStateRange, caldata.StateRange, formats.Residual)
	if err != nil {
		return nil, err
	}

	return &models.ConfigState{
		Layout:  layout,
		Numeric: kind,
		Dataset: ds,
		Formats: formats,
		Bounds:  bounds,
		Scalars: scalars,
		Policy:  pol,
	}, nil
}

func boolToSw(on bool) float64 {
	if on {
		return 1
	}
	return 0
}
