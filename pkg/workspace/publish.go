package workspace

import "fuelsys-caltool/pkg/models"

// Publish scopes. Each configuration operation replaces only the scopes it
// recomputes; names within a scope are stable across variants.
const (
	ScopeDataset = "dataset"
	ScopeBounds  = "bounds"
	ScopeParams  = "params"
	ScopeFormats = "formats"
	ScopePolicy  = "policy"
)

// Published scalar, bound, format, and policy names.
const (
	NameHys          = "hys"
	NameZeroThresh   = "zero_thresh"
	NameStateRange   = "st_range"
	NameNominalSpeed = "nominal_speed"
	NameRampRateGain = "ramp_rate_gain"
	NameThrottleSw   = "throttle_sw"
	NameSpeedSw      = "speed_sw"
	NameEgoSw        = "ego_sw"
	NameMapSw        = "map_sw"

	NameMinPress = "min_press"
	NameMaxPress = "max_press"
	NameMinSpeed = "min_speed"
	NameMaxSpeed = "max_speed"
	NameMinThrot = "min_throt"
	NameMaxThrot = "max_throt"
	NameMinEgo   = "min_ego"
	NameMaxEgo   = "max_ego"

	NameFormatU8En7   = "u8En7"
	NameFormatS16En3  = "s16En3"
	NameFormatS16En7  = "s16En7"
	NameFormatS16En15 = "s16En15"

	NameBpSearch  = "bp_search"
	NameTblInterp = "tbl_interp"
	NameTblExtrap = "tbl_extrap"
)

// PublishAll replaces the full configuration in one atomic swap. It must be
// called only after every upstream derivation succeeded.
func PublishAll(ws Workspace, st *models.ConfigState) {
	ws.Replace(map[string]map[string]any{
		ScopeDataset: datasetGroup(st.Dataset),
		ScopeBounds:  boundsGroup(st.Bounds),
		ScopeParams:  paramsGroup(st.Scalars),
		ScopeFormats: formatsGroup(st.Formats),
		ScopePolicy:  policyGroup(st.Policy),
	})
}

// PublishDataset replaces the layout-dependent scopes, leaving the numeric
// format assignment untouched.
func PublishDataset(ws Workspace, st *models.ConfigState) {
	ws.Replace(map[string]map[string]any{
		ScopeDataset: datasetGroup(st.Dataset),
		ScopeBounds:  boundsGroup(st.Bounds),
		ScopePolicy:  policyGroup(st.Policy),
	})
}

// PublishFormats replaces the representation-dependent scopes. The scalar
// params go with them because the state-range epsilon is re-expressed in the
// active residual format.
func PublishFormats(ws Workspace, st *models.ConfigState) {
	ws.Replace(map[string]map[string]any{
		ScopeFormats: formatsGroup(st.Formats),
		ScopeParams:  paramsGroup(st.Scalars),
	})
}

// datasetGroup flattens a dataset into published names. Axes publish their
// breakpoint vectors, 1-D tables a vector, 2-D tables their value matrix;
// everything is copied so workspace readers never alias engine memory.
func datasetGroup(ds *models.Dataset) map[string]any {
	out := make(map[string]any, len(ds.Axes)+len(ds.Tables))
	for _, a := range ds.Axes {
		out[a.Name] = a.Copy().Points
	}
	for _, t := range ds.Tables {
		c := t.Copy()
		if t.Is1D() {
			out[t.Name] = c.Values[0]
			continue
		}
		out[t.Name] = c.Values
	}
	return out
}

func boundsGroup(b models.RangeBounds) map[string]any {
	return map[string]any{
		NameMinPress: b.Pressure.Min,
		NameMaxPress: b.Pressure.Max,
		NameMinSpeed: b.Speed.Min,
		NameMaxSpeed: b.Speed.Max,
		NameMinThrot: b.Throttle.Min,
		NameMaxThrot: b.Throttle.Max,
		NameMinEgo:   b.Ego.Min,
		NameMaxEgo:   b.Ego.Max,
	}
}

func paramsGroup(s models.ScalarConstants) map[string]any {
	return map[string]any{
		NameHys:          s.Hysteresis,
		NameZeroThresh:   s.ZeroThresh,
		NameStateRange:   s.StateRange,
		NameNominalSpeed: s.NominalSpeed,
		NameRampRateGain: s.RampRateGain,
		NameThrottleSw:   s.ThrottleSw,
		NameSpeedSw:      s.SpeedSw,
		NameEgoSw:        s.EgoSw,
		NameMapSw:        s.MapSw,
	}
}

func formatsGroup(f models.Formats) map[string]any {
	return map[string]any{
		NameFormatU8En7:   f.Pressure,
		NameFormatS16En3:  f.Sensor,
		NameFormatS16En7:  f.Ego,
		NameFormatS16En15: f.Residual,
	}
}

func policyGroup(p models.LookupPolicy) map[string]any {
	return map[string]any{
		NameBpSearch:  p.Search.String(),
		NameTblInterp: p.Interp.String(),
		NameTblExtrap: p.Extrap.String(),
	}
}
