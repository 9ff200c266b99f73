package calc

// Ventilation and infiltration losses. Mechanical ventilation earns a
// heat-recovery credit, infiltration never does. Both are exactly zero when
// the room has no volume or no positive temperature difference.

// NormalizeEfficiency maps a raw heat-recovery efficiency to a fraction:
// values above 1 are treated as percentages, the result is clamped to [0, 1].
func NormalizeEfficiency(raw float64) float64 {
	if raw > 1 {
		raw = raw / 100
	}
	return clamp(raw, 0, 1)
}

// mechanicalFlowM3s resolves the mechanical air flow in m³/s: an explicit
// volumetric flow wins, otherwise volume × ACH.
func mechanicalFlowM3s(room Room) float64 {
	cfg := room.Ventilation
	if cfg == nil || !cfg.Mechanical {
		return 0
	}
	if flow := nonNegative(cfg.MechanicalFlowM3h); flow > 0 {
		return flow / 3600
	}
	ach := nonNegative(cfg.AirChangesPerHour)
	return room.Volume() * ach / 3600
}

// infiltrationFlowM3s resolves the uncontrolled air flow in m³/s. Rooms
// without a mechanical system fall back to the general air-change rate when
// no dedicated infiltration rate is set, so every room carries at least its
// hygienic air exchange.
func infiltrationFlowM3s(room Room) float64 {
	volume := room.Volume()
	if volume <= 0 {
		return 0
	}

	cfg := room.Ventilation
	if cfg == nil {
		rt := RoomOther
		_, ach := RoomTypeDefaults(rt)
		return volume * ach / 3600
	}

	ach := nonNegative(cfg.InfiltrationACH)
	if ach == 0 && !cfg.Mechanical {
		ach = nonNegative(cfg.AirChangesPerHour)
		if ach == 0 {
			_, ach = RoomTypeDefaults(cfg.RoomType)
		}
	}
	return volume * ach / 3600
}

// VentilationLoss computes the mechanical ventilation loss in Watts with the
// heat-recovery credit applied: flow × ρ × cp × ΔT × (1 − η).
func VentilationLoss(room Room, deltaT float64) float64 {
	if deltaT <= 0 || room.Volume() <= 0 {
		return 0
	}
	flow := mechanicalFlowM3s(room)
	if flow <= 0 {
		return 0
	}
	eta := NormalizeEfficiency(room.Ventilation.HeatRecoveryEfficiency)
	return flow * AirDensity * AirHeatCapacity * deltaT * (1 - eta)
}

// InfiltrationLoss computes the infiltration loss in Watts at the raw ΔT.
// There is no recovery credit for uncontrolled air exchange.
func InfiltrationLoss(room Room, deltaT float64) float64 {
	if deltaT <= 0 || room.Volume() <= 0 {
		return 0
	}
	flow := infiltrationFlowM3s(room)
	if flow <= 0 {
		return 0
	}
	return flow * AirDensity * AirHeatCapacity * deltaT
}
