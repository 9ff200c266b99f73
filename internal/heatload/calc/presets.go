package calc

// Preset U-value tables: a baseline per construction era multiplied by an
// insulation-level factor, rounded to two decimals. Wall, window, ceiling and
// floor carry independent tables because retrofits affect them differently
// (replacing windows is common, wrapping a 1950s wall is not).

var wallBaselineU = map[Era]float64{
	EraPre1978:    1.30,
	Era1978to1983: 1.00,
	Era1984to1994: 0.80,
	Era1995to2001: 0.50,
	Era2002to2008: 0.35,
	Era2009to2015: 0.28,
	EraFrom2016:   0.20,
}

var windowBaselineU = map[Era]float64{
	EraPre1978:    4.70,
	Era1978to1983: 3.50,
	Era1984to1994: 3.00,
	Era1995to2001: 1.80,
	Era2002to2008: 1.40,
	Era2009to2015: 1.10,
	EraFrom2016:   0.90,
}

var ceilingBaselineU = map[Era]float64{
	EraPre1978:    1.40,
	Era1978to1983: 0.80,
	Era1984to1994: 0.60,
	Era1995to2001: 0.40,
	Era2002to2008: 0.30,
	Era2009to2015: 0.24,
	EraFrom2016:   0.18,
}

var floorBaselineU = map[Era]float64{
	EraPre1978:    1.20,
	Era1978to1983: 0.90,
	Era1984to1994: 0.70,
	Era1995to2001: 0.50,
	Era2002to2008: 0.40,
	Era2009to2015: 0.35,
	EraFrom2016:   0.30,
}

var wallLevelMultiplier = map[InsulationLevel]float64{
	InsulationNone:    1.00,
	InsulationPartial: 0.65,
	InsulationGood:    0.40,
	InsulationPremium: 0.25,
}

var windowLevelMultiplier = map[InsulationLevel]float64{
	InsulationNone:    1.00,
	InsulationPartial: 0.80,
	InsulationGood:    0.60,
	InsulationPremium: 0.45,
}

var ceilingLevelMultiplier = map[InsulationLevel]float64{
	InsulationNone:    1.00,
	InsulationPartial: 0.60,
	InsulationGood:    0.35,
	InsulationPremium: 0.22,
}

var floorLevelMultiplier = map[InsulationLevel]float64{
	InsulationNone:    1.00,
	InsulationPartial: 0.70,
	InsulationGood:    0.45,
	InsulationPremium: 0.30,
}

func presetU(baseline map[Era]float64, multiplier map[InsulationLevel]float64, era Era, level InsulationLevel) float64 {
	base, ok := baseline[era]
	if !ok {
		base = baseline[EraPre1978]
	}
	mult, ok := multiplier[level]
	if !ok {
		mult = multiplier[InsulationNone]
	}
	return round2(base * mult)
}

// WallPresetU returns the preset wall U-value for an era and insulation level.
func WallPresetU(era Era, level InsulationLevel) float64 {
	return presetU(wallBaselineU, wallLevelMultiplier, era, level)
}

// WindowPresetU returns the preset window U-value.
func WindowPresetU(era Era, level InsulationLevel) float64 {
	return presetU(windowBaselineU, windowLevelMultiplier, era, level)
}

// CeilingPresetU returns the preset ceiling/roof U-value.
func CeilingPresetU(era Era, level InsulationLevel) float64 {
	return presetU(ceilingBaselineU, ceilingLevelMultiplier, era, level)
}

// FloorPresetU returns the preset floor U-value.
func FloorPresetU(era Era, level InsulationLevel) float64 {
	return presetU(floorBaselineU, floorLevelMultiplier, era, level)
}

// PresetOptions controls ApplyPresets.
type PresetOptions struct {
	// Force overwrites user-entered U-values instead of only filling gaps.
	Force bool
}

// ApplyPresets returns a copy of the room with missing surface U-values
// filled from the era/insulation tables. A U-value is missing when it is
// unset or non-positive. User-entered positive values are never touched
// unless Force is set; walls that resolve through an explicit R-value are
// likewise left alone.
func ApplyPresets(room Room, era Era, level InsulationLevel, opts PresetOptions) Room {
	out := room

	out.Walls = make([]Wall, len(room.Walls))
	for i, w := range room.Walls {
		if opts.Force || (w.UValue <= 0 && w.RValue <= 0) {
			w.UValue = WallPresetU(era, level)
			w.RValue = 0
		}
		out.Walls[i] = w
	}

	out.Windows = make([]Window, len(room.Windows))
	for i, w := range room.Windows {
		if opts.Force || w.UValue <= 0 {
			w.UValue = WindowPresetU(era, level)
		}
		out.Windows[i] = w
	}

	out.Doors = make([]Door, len(room.Doors))
	for i, d := range room.Doors {
		if opts.Force || d.UValue <= 0 {
			d.UValue = FallbackDoorU
		}
		out.Doors[i] = d
	}

	if opts.Force || out.Ceiling.UValue <= 0 {
		out.Ceiling.UValue = CeilingPresetU(era, level)
	}
	if opts.Force || out.Floor.UValue <= 0 {
		out.Floor.UValue = FloorPresetU(era, level)
	}

	out.ThermalBridges = append([]ThermalBridge(nil), room.ThermalBridges...)

	return out
}

// EraForYear maps a construction year to its era bucket.
func EraForYear(year int) Era {
	switch {
	case year <= 0:
		return EraPre1978
	case year < 1978:
		return EraPre1978
	case year <= 1983:
		return Era1978to1983
	case year <= 1994:
		return Era1984to1994
	case year <= 2001:
		return Era1995to2001
	case year <= 2008:
		return Era2002to2008
	case year <= 2015:
		return Era2009to2015
	default:
		return EraFrom2016
	}
}
