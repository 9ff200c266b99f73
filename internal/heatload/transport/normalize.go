package transport

import (
	"math"

	"heatload_backend/internal/heatload/calc"
)

// Normalization is the single place where payload shapes, including every
// legacy field alias, are mapped onto the canonical calc types. Past this
// point no alias exists anywhere in the system.

// NormalizedInput is a fully resolved calculation input.
type NormalizedInput struct {
	Building calc.BuildingMetadata
	Floors   []calc.Floor
	Meta     calc.ProjectMeta

	ApplyPresets bool
	ForcePresets bool
	Era          calc.Era
	Insulation   calc.InsulationLevel
}

// NormalizeCalculateRequest maps a stateless calculation request to calc types.
func NormalizeCalculateRequest(req CalculateRequest) NormalizedInput {
	return normalize(req.Building, req.Floors, req.Settings)
}

// NormalizeSaveRequest maps a save request to calc types.
func NormalizeSaveRequest(req SaveRequest) NormalizedInput {
	return normalize(req.Building, req.Floors, req.Settings)
}

func normalize(building BuildingPayload, floors []FloorPayload, settings SettingsPayload) NormalizedInput {
	meta := calc.ProjectMeta{
		IntermittentFactor: settings.IntermittentFactor.Float(),
	}
	if settings.ThermalBridgeFactor != nil {
		v := settings.ThermalBridgeFactor.Float()
		meta.ThermalBridgeFactor = &v
	}

	era := calc.Era(building.Era)
	if building.Era == "" {
		era = calc.EraForYear(building.ConstructionYear)
	}
	insulation := calc.InsulationLevel(building.Insulation)
	if building.Insulation == "" {
		insulation = calc.InsulationNone
	}

	out := NormalizedInput{
		Building:     normalizeBuilding(building),
		Meta:         meta,
		ApplyPresets: settings.ApplyPresets,
		ForcePresets: settings.ForcePresets,
		Era:          era,
		Insulation:   insulation,
	}

	out.Floors = make([]calc.Floor, 0, len(floors))
	for _, f := range floors {
		floor := calc.Floor{ID: f.ID, Name: f.Name}
		floor.Rooms = make([]calc.Room, 0, len(f.Rooms))
		for _, r := range f.Rooms {
			floor.Rooms = append(floor.Rooms, normalizeRoom(r))
		}
		out.Floors = append(out.Floors, floor)
	}

	return out
}

func normalizeBuilding(p BuildingPayload) calc.BuildingMetadata {
	b := calc.BuildingMetadata{
		ConstructionYear:         p.ConstructionYear,
		Era:                      calc.Era(p.Era),
		Insulation:               calc.InsulationLevel(p.Insulation),
		FloorCount:               p.FloorCount,
		Residents:                p.Residents,
		DesignOutdoorTempC:       floatOrZero(p.DesignOutdoorTemp),
		DHWLitersPerPersonPerDay: p.DHWLitersPerPersonPerDay.Float(),
		AirtightnessN50:          p.AirtightnessN50.Float(),
	}

	if p.ManualDesignOutdoorTemp != nil {
		v := p.ManualDesignOutdoorTemp.Float()
		b.ManualDesignOutdoorTempC = &v
	}
	if p.HeatPump != nil {
		hp := &calc.HeatPumpConfig{}
		if p.HeatPump.BivalenceTempC != nil {
			v := p.HeatPump.BivalenceTempC.Float()
			hp.BivalenceTempC = &v
		}
		b.HeatPump = hp
	}
	if p.PV != nil {
		b.PV = &calc.PVConfig{
			PeakPowerKWp:     p.PV.PeakPowerKWp.Float(),
			SupportsHeatPump: p.PV.SupportsHeatPump,
		}
	}

	return b
}

func normalizeRoom(p RoomPayload) calc.Room {
	room := calc.Room{
		ID:      p.ID,
		Name:    p.Name,
		AreaM2:  p.AreaM2.Float(),
		HeightM: p.HeightM.Float(),
	}

	room.Walls = make([]calc.Wall, 0, len(p.Walls))
	for _, w := range p.Walls {
		room.Walls = append(room.Walls, calc.Wall{
			Name:    w.Name,
			AreaM2:  w.AreaM2.Float(),
			UValue:  w.UValue.Float(),
			RValue:  w.RValue.Float(),
			LengthM: w.LengthM.Float(),
		})
	}
	room.Windows = make([]calc.Window, 0, len(p.Windows))
	for _, w := range p.Windows {
		room.Windows = append(room.Windows, calc.Window{
			Name:   w.Name,
			AreaM2: w.AreaM2.Float(),
			UValue: w.UValue.Float(),
		})
	}
	room.Doors = make([]calc.Door, 0, len(p.Doors))
	for _, d := range p.Doors {
		room.Doors = append(room.Doors, calc.Door{
			Name:   d.Name,
			AreaM2: d.AreaM2.Float(),
			UValue: d.UValue.Float(),
		})
	}

	if p.Ceiling != nil {
		room.Ceiling = calc.CeilingConfig{
			AreaM2: p.Ceiling.AreaM2.Float(),
			UValue: p.Ceiling.UValue.Float(),
		}
	}
	if p.Floor != nil {
		room.Floor = calc.FloorConfig{
			AreaM2: p.Floor.AreaM2.Float(),
			UValue: p.Floor.UValue.Float(),
			Type:   calc.FloorType(p.Floor.Type),
		}
	}

	if p.Ventilation != nil {
		room.Ventilation = normalizeVentilation(*p.Ventilation)
	}

	room.ThermalBridges = make([]calc.ThermalBridge, 0, len(p.ThermalBridges))
	for _, tb := range p.ThermalBridges {
		room.ThermalBridges = append(room.ThermalBridges, calc.ThermalBridge{
			ID:       tb.ID,
			Name:     tb.Name,
			PsiValue: tb.PsiValue.Float(),
			LengthM:  tb.LengthM.Float(),
		})
	}

	return room
}

func normalizeVentilation(p VentilationPayload) *calc.VentilationConfig {
	cfg := &calc.VentilationConfig{
		RoomType:          calc.RoomType(p.RoomType),
		TargetTempC:       p.TargetTempC.Float(),
		Mechanical:        p.Mechanical,
		MechanicalFlowM3h: floatOrZero(p.MechanicalFlowM3h),
		InfiltrationACH:   floatOrZero(p.InfiltrationACH),
		InternalGainsW:    p.InternalGainsW.Float(),
	}

	// First non-zero alias wins, newest field name first. infiltrationACH
	// doubles as the last ACH fallback for the oldest payload generation,
	// while still feeding the infiltration loss on its own above.
	if ach, ok := firstSet(p.AirChangesPerHour, p.ACH, p.AirExchangeRate, p.InfiltrationACH); ok {
		cfg.AirChangesPerHour = ach
	}

	if eta, ok := firstSet(p.HeatRecoveryEfficiency, p.HeatRecovery, p.HRVEfficiency, p.RecoveryRate); ok {
		cfg.HeatRecoveryEfficiency = math.Min(calc.NormalizeEfficiency(eta), calc.MaxHeatRecoveryEfficiency)
	}

	return cfg
}
