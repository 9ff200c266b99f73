package calc

import (
	"math"
	"testing"
)

func ventilatedRoom(eta float64) Room {
	return Room{
		AreaM2:  20,
		HeightM: 2.5,
		Ventilation: &VentilationConfig{
			Mechanical:             true,
			AirChangesPerHour:      0.5,
			HeatRecoveryEfficiency: eta,
		},
	}
}

func TestVentilationLoss_HeatRecoveryCreditIsLinear(t *testing.T) {
	withRecovery := VentilationLoss(ventilatedRoom(0.8), 30)
	withoutRecovery := VentilationLoss(ventilatedRoom(0), 30)

	if withoutRecovery <= 0 {
		t.Fatalf("expected positive loss without recovery, got %v", withoutRecovery)
	}
	if diff := math.Abs(withRecovery - 0.2*withoutRecovery); diff > 1e-9 {
		t.Fatalf("expected eta=0.8 loss to be exactly 0.2x, got %v vs %v", withRecovery, withoutRecovery)
	}
}

func TestVentilationLoss_MatchesFormula(t *testing.T) {
	// volume 50 m³, 0.5 ACH -> 25 m³/h -> 25/3600 m³/s
	flow := 50.0 * 0.5 / 3600
	want := flow * AirDensity * AirHeatCapacity * 30

	got := VentilationLoss(ventilatedRoom(0), 30)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v W, got %v", want, got)
	}
}

func TestVentilationLoss_ExplicitFlowWinsOverACH(t *testing.T) {
	room := ventilatedRoom(0)
	room.Ventilation.MechanicalFlowM3h = 90

	want := 90.0 / 3600 * AirDensity * AirHeatCapacity * 30
	got := VentilationLoss(room, 30)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v W from explicit flow, got %v", want, got)
	}
}

func TestVentilationLoss_ZeroWithoutPositiveDeltaTOrVolume(t *testing.T) {
	if got := VentilationLoss(ventilatedRoom(0), 0); got != 0 {
		t.Fatalf("expected 0 W at deltaT=0, got %v", got)
	}
	if got := VentilationLoss(ventilatedRoom(0), -10); got != 0 {
		t.Fatalf("expected 0 W at negative deltaT, got %v", got)
	}

	room := ventilatedRoom(0)
	room.AreaM2 = 0
	if got := VentilationLoss(room, 30); got != 0 {
		t.Fatalf("expected 0 W for zero volume, got %v", got)
	}
}

func TestInfiltrationLoss_NeverGetsRecoveryCredit(t *testing.T) {
	mechanical := Room{
		AreaM2:  20,
		HeightM: 2.5,
		Ventilation: &VentilationConfig{
			Mechanical:             true,
			AirChangesPerHour:      0.5,
			HeatRecoveryEfficiency: 0.8,
		},
	}
	leaky := Room{
		AreaM2:  20,
		HeightM: 2.5,
		Ventilation: &VentilationConfig{
			InfiltrationACH: 0.5,
		},
	}

	mechLoss := VentilationLoss(mechanical, 30)
	infilLoss := InfiltrationLoss(leaky, 30)

	// Same ACH, volume and deltaT: only the (1 - eta) factor may differ.
	if diff := math.Abs(mechLoss - 0.2*infilLoss); diff > 1e-9 {
		t.Fatalf("expected mechanical loss = 0.2x infiltration loss, got %v vs %v", mechLoss, infilLoss)
	}
}

func TestNormalizeEfficiency_PercentAndClamp(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.8, 0.8},
		{80, 0.8},
		{150, 1.0},
		{-0.5, 0},
		{1.0, 1.0},
	}
	for _, tc := range cases {
		if got := NormalizeEfficiency(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("NormalizeEfficiency(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestInfiltrationLoss_FallsBackToGeneralACHWithoutMechanicalSystem(t *testing.T) {
	room := Room{
		AreaM2:  20,
		HeightM: 2.5,
		Ventilation: &VentilationConfig{
			AirChangesPerHour: 0.7,
		},
	}

	want := 50.0 * 0.7 / 3600 * AirDensity * AirHeatCapacity * 30
	got := InfiltrationLoss(room, 30)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v W, got %v", want, got)
	}
}
