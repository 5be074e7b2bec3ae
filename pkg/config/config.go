// Package config loads the optional caltool YAML configuration and parses
// the variant selector strings shared with the command-line flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fuelsys-caltool/pkg/models"
)

// FaultSwitches selects which sensor fault-injection switches start enabled.
// Omitted switches keep the shipped default (enabled).
type FaultSwitches struct {
	Throttle *bool `yaml:"throttle"`
	Speed    *bool `yaml:"speed"`
	Ego      *bool `yaml:"ego"`
	Map      *bool `yaml:"map"`
}

// ToolConfig is the top-level structure for caltool.yaml.
type ToolConfig struct {
	Layout    string        `yaml:"layout"`  // "original" or "pow2"
	Numeric   string        `yaml:"numeric"` // "float" or "fixed"
	ExportDir string        `yaml:"export_dir"`
	Faults    FaultSwitches `yaml:"faults"`
}

// Default returns the configuration used when no file is given: original
// layout, floating point, all switches enabled.
func Default() *ToolConfig {
	return &ToolConfig{
		Layout:    models.LayoutOriginal.String(),
		Numeric:   models.NumericFloating.String(),
		ExportDir: "export",
	}
}

// Load reads and parses a caltool YAML config file. Omitted fields keep
// their defaults, so partial configs are safe.
func Load(path string) (*ToolConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tool config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse tool config: %w", err)
	}
	if _, err := ParseLayout(cfg.Layout); err != nil {
		return nil, err
	}
	if _, err := ParseNumeric(cfg.Numeric); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (f FaultSwitches) switchOr(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// Enabled returns the effective state of the four switches in
// throttle, speed, ego, map order.
func (f FaultSwitches) Enabled() (bool, bool, bool, bool) {
	return f.switchOr(f.Throttle), f.switchOr(f.Speed), f.switchOr(f.Ego), f.switchOr(f.Map)
}

// ParseLayout maps a selector string to a breakpoint layout.
func ParseLayout(s string) (models.Layout, error) {
	switch s {
	case "original", "":
		return models.LayoutOriginal, nil
	case "pow2":
		return models.LayoutPowerOfTwo, nil
	default:
		return 0, fmt.Errorf("unknown layout %q (want original or pow2)", s)
	}
}

// ParseNumeric maps a selector string to a numeric representation.
func ParseNumeric(s string) (models.NumericKind, error) {
	switch s {
	case "float", "":
		return models.NumericFloating, nil
	case "fixed":
		return models.NumericFixed, nil
	default:
		return 0, fmt.Errorf("unknown numeric representation %q (want float or fixed)", s)
	}
}
