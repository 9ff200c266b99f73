package calc

// Room aggregation comes in two historical flavors that are kept as separate,
// named paths on purpose:
//
//   - CalculateRoom: the DIN-section path. Internal gains are subtracted
//     (floored at zero) and the intermittent-heating multiplier is applied.
//   - SummarizeRoom: the simple-summary path used by the results screen and
//     the exports. No gains subtraction, a flat 10% safety margin instead.
//
// The two models produce intentionally different numbers and are not
// reconciled; which one is authoritative is an open product question.

// CalculateRoom runs the DIN-section calculation for one room against the
// effective outdoor design temperature.
func CalculateRoom(room Room, outdoorTempC float64, meta ProjectMeta) RoomResult {
	indoor := room.TargetTempC()
	deltaT := indoor - outdoorTempC

	surfaces, transmission := TransmissionLosses(room, deltaT)
	bridges, bridgeSum, allowance := ThermalBridgeLosses(room, transmission, deltaT, meta.BridgeFactor())
	ventilation := VentilationLoss(room, deltaT)
	infiltration := InfiltrationLoss(room, deltaT)

	var gains float64
	if room.Ventilation != nil {
		gains = nonNegative(room.Ventilation.InternalGainsW)
	}

	totalBefore := transmission + bridgeSum + ventilation + infiltration - gains
	if totalBefore < 0 {
		totalBefore = 0
	}

	factor := meta.Intermittent()

	return RoomResult{
		RoomID:             room.ID,
		RoomName:           room.Name,
		AreaM2:             nonNegative(room.AreaM2),
		IndoorTempC:        indoor,
		OutdoorTempC:       outdoorTempC,
		DeltaTK:            deltaT,
		Surfaces:           surfaces,
		TransmissionW:      transmission,
		Bridges:            bridges,
		BridgeAllowance:    allowance,
		ThermalBridgeW:     bridgeSum,
		VentilationW:       ventilation,
		InfiltrationW:      infiltration,
		InternalGainsW:     gains,
		IntermittentFactor: factor,
		TotalW:             totalBefore * factor,
	}
}

// SummarizeRoom runs the simple-summary calculation for one room. Values are
// reported in kW for the results screen and the exports.
func SummarizeRoom(room Room, outdoorTempC float64, meta ProjectMeta) RoomSummary {
	indoor := room.TargetTempC()
	deltaT := indoor - outdoorTempC

	_, transmission := TransmissionLosses(room, deltaT)
	_, bridgeSum, _ := ThermalBridgeLosses(room, transmission, deltaT, meta.BridgeFactor())
	ventilation := VentilationLoss(room, deltaT) + InfiltrationLoss(room, deltaT)

	base := transmission + ventilation + bridgeSum
	safety := base * SafetyMarginFactor

	return RoomSummary{
		RoomID:          room.ID,
		RoomName:        room.Name,
		AreaM2:          nonNegative(room.AreaM2),
		TransmissionKW:  transmission / 1000,
		VentilationKW:   ventilation / 1000,
		ThermalBridgeKW: bridgeSum / 1000,
		SafetyMarginKW:  safety / 1000,
		TotalKW:         (base + safety) / 1000,
	}
}
