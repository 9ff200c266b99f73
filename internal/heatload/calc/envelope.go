package calc

// Transmission losses through the room envelope: area × U × ΔT per surface.
// Surfaces with malformed data contribute 0 instead of failing; this is a
// best-effort design tool, not a validation engine.

func surfaceLoss(label string, kind SurfaceKind, area, uValue, deltaT float64) SurfaceLoss {
	a := nonNegative(area)
	u := nonNegative(uValue)
	loss := a * u * deltaT
	if loss < 0 {
		loss = 0
	}
	return SurfaceLoss{
		Label:   label,
		Kind:    kind,
		AreaM2:  a,
		UValue:  u,
		DeltaTK: deltaT,
		LossW:   loss,
	}
}

func resolveWallU(w Wall) float64 {
	if w.UValue > 0 {
		return w.UValue
	}
	if w.RValue > 0 {
		return 1 / w.RValue
	}
	return FallbackWallU
}

func labelOr(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}

// TransmissionLosses computes the per-surface transmission losses of a room
// for the given indoor-minus-outdoor temperature difference. The returned
// sum is in Watts. Ceiling and floor areas default to the room's own area
// when not separately specified.
func TransmissionLosses(room Room, deltaT float64) ([]SurfaceLoss, float64) {
	surfaces := make([]SurfaceLoss, 0, len(room.Walls)+len(room.Windows)+len(room.Doors)+2)

	for _, w := range room.Walls {
		surfaces = append(surfaces, surfaceLoss(labelOr(w.Name, "Wall"), SurfaceWall, w.AreaM2, resolveWallU(w), deltaT))
	}
	for _, w := range room.Windows {
		surfaces = append(surfaces, surfaceLoss(labelOr(w.Name, "Window"), SurfaceWindow, w.AreaM2, positiveOr(w.UValue, FallbackWindowU), deltaT))
	}
	for _, d := range room.Doors {
		surfaces = append(surfaces, surfaceLoss(labelOr(d.Name, "Door"), SurfaceDoor, d.AreaM2, positiveOr(d.UValue, FallbackDoorU), deltaT))
	}

	ceilingArea := positiveOr(room.Ceiling.AreaM2, nonNegative(room.AreaM2))
	surfaces = append(surfaces, surfaceLoss("Ceiling", SurfaceCeiling, ceilingArea, positiveOr(room.Ceiling.UValue, FallbackCeilingU), deltaT))

	floorArea := positiveOr(room.Floor.AreaM2, nonNegative(room.AreaM2))
	surfaces = append(surfaces, surfaceLoss("Floor", SurfaceFloor, floorArea, positiveOr(room.Floor.UValue, FallbackFloorU(room.Floor.Type)), deltaT))

	var sum float64
	for _, s := range surfaces {
		sum += s.LossW
	}
	return surfaces, sum
}
