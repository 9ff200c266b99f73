package calc

// Building aggregation: runs the room calculators over every floor, applies
// the bivalence clamp for heat-pump sizing and adds the continuous domestic
// hot-water allowance.

// EffectiveOutdoorTemp applies the bivalence clamp: the system is never sized
// for temperatures below the bivalence point, the auxiliary heater covers the
// rest. Returns the clamped temperature and whether the clamp changed it.
func EffectiveOutdoorTemp(raw float64, hp *HeatPumpConfig) (float64, bool) {
	if hp == nil || hp.BivalenceTempC == nil {
		return raw, false
	}
	if bivalence := *hp.BivalenceTempC; raw < bivalence {
		return bivalence, true
	}
	return raw, false
}

// DHWAllowanceKW returns the continuous domestic-hot-water allowance in kW:
// residents × liters-per-person-per-day × 0.046 kWh/L spread over 24 h.
// This is an average draw for generator sizing, not a peak demand figure.
func DHWAllowanceKW(residents int, litersPerPersonPerDay float64) float64 {
	if residents <= 0 {
		return 0
	}
	liters := positiveOr(litersPerPersonPerDay, DefaultDHWLitersPerPersonPerDay)
	return float64(residents) * liters * DHWEnergyPerLiterKWh / 24
}

// CalculateBuilding runs the full calculation: per-room DIN sections, the
// simple summaries, building totals and the DIN rollup. It is a pure
// function of its inputs and safe to re-run on every edit.
func CalculateBuilding(building BuildingMetadata, floors []Floor, meta ProjectMeta) BuildingResult {
	raw := building.DesignOutdoorTemp()
	outdoor, clamped := EffectiveOutdoorTemp(raw, building.HeatPump)

	var (
		rooms     []RoomResult
		summaries []RoomSummary
		totals    DinTotals
		heatedM2  float64
	)

	for _, floor := range floors {
		for _, room := range floor.Rooms {
			result := CalculateRoom(room, outdoor, meta)
			rooms = append(rooms, result)
			summaries = append(summaries, SummarizeRoom(room, outdoor, meta))

			totals.TransmissionW += result.TransmissionW
			totals.ThermalBridgeW += result.ThermalBridgeW
			totals.VentilationW += result.VentilationW + result.InfiltrationW
			totals.TotalW += result.TotalW
			heatedM2 += result.AreaM2
		}
	}

	heatingKW := totals.TotalW / 1000
	dhwKW := DHWAllowanceKW(building.Residents, building.DHWLitersPerPersonPerDay)

	var specific float64
	if heatedM2 > 0 {
		specific = totals.TotalW / heatedM2
	}

	return BuildingResult{
		Rooms:              rooms,
		Summary:            summaries,
		DinTotals:          totals,
		HeatingLoadKW:      heatingKW,
		DHWAllowanceKW:     dhwKW,
		TotalKW:            heatingKW + dhwKW,
		DesignOutdoorTempC: outdoor,
		BivalenceApplied:   clamped,
		HeatedAreaM2:       heatedM2,
		SpecificLoadWPerM2: specific,
	}
}
