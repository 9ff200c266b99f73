package calc

// Thermal bridges: either an explicit list of linear bridges (ψ × length × ΔT)
// or a flat percentage allowance on the transmission sum. The explicit list
// fully replaces the allowance, it is never blended with it.

// ThermalBridgeLosses computes the thermal-bridge loss of a room. When the
// room carries explicit bridges they are summed individually; otherwise
// transmissionW × factor is applied and allowance reports true.
func ThermalBridgeLosses(room Room, transmissionW, deltaT, factor float64) (bridges []BridgeLoss, sum float64, allowance bool) {
	if len(room.ThermalBridges) == 0 {
		return nil, nonNegative(transmissionW) * nonNegative(factor), true
	}

	bridges = make([]BridgeLoss, 0, len(room.ThermalBridges))
	for _, tb := range room.ThermalBridges {
		psi := nonNegative(tb.PsiValue)
		length := nonNegative(tb.LengthM)
		loss := psi * length * deltaT
		if loss < 0 {
			loss = 0
		}
		bridges = append(bridges, BridgeLoss{
			Name:     labelOr(tb.Name, "Thermal bridge"),
			PsiValue: psi,
			LengthM:  length,
			LossW:    loss,
		})
		sum += loss
	}
	return bridges, sum, false
}
