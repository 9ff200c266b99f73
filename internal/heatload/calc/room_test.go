package calc

import (
	"math"
	"testing"
)

func testRoom() Room {
	return Room{
		ID:      "r1",
		Name:    "Living room",
		AreaM2:  20,
		HeightM: 2.5,
		Walls:   []Wall{{Name: "South", AreaM2: 12, UValue: 1.0}},
		Windows: []Window{{AreaM2: 3, UValue: 1.2}},
		Ceiling: CeilingConfig{UValue: 0.25},
		Floor:   FloorConfig{UValue: 0.35},
		Ventilation: &VentilationConfig{
			RoomType:          RoomLiving,
			TargetTempC:       20,
			AirChangesPerHour: 0.5,
		},
	}
}

func TestCalculateRoom_NeverNegative(t *testing.T) {
	room := testRoom()
	room.Ventilation.InternalGainsW = 100000

	result := CalculateRoom(room, -12, ProjectMeta{})
	if result.TotalW != 0 {
		t.Fatalf("expected total clamped to 0 with huge gains, got %v", result.TotalW)
	}
}

func TestCalculateRoom_GainsReduceTotal(t *testing.T) {
	room := testRoom()
	base := CalculateRoom(room, -12, ProjectMeta{})

	room.Ventilation.InternalGainsW = 200
	reduced := CalculateRoom(room, -12, ProjectMeta{})

	if diff := math.Abs((base.TotalW - reduced.TotalW) - 200); diff > 1e-9 {
		t.Fatalf("expected gains to subtract exactly 200 W, base %v reduced %v", base.TotalW, reduced.TotalW)
	}
}

func TestCalculateRoom_IntermittentFactorInflates(t *testing.T) {
	room := testRoom()
	base := CalculateRoom(room, -12, ProjectMeta{})
	inflated := CalculateRoom(room, -12, ProjectMeta{IntermittentFactor: 1.2})

	if diff := math.Abs(inflated.TotalW - 1.2*base.TotalW); diff > 1e-9 {
		t.Fatalf("expected 1.2x total, got %v vs base %v", inflated.TotalW, base.TotalW)
	}
}

func TestCalculateRoom_IntermittentFactorBelowOneIsCoerced(t *testing.T) {
	room := testRoom()
	base := CalculateRoom(room, -12, ProjectMeta{})
	coerced := CalculateRoom(room, -12, ProjectMeta{IntermittentFactor: 0.5})

	if coerced.TotalW != base.TotalW {
		t.Fatalf("expected factor < 1 to be treated as 1, got %v vs %v", coerced.TotalW, base.TotalW)
	}
	if coerced.IntermittentFactor != 1 {
		t.Fatalf("expected reported factor 1, got %v", coerced.IntermittentFactor)
	}
}

func TestCalculateRoom_DeltaTFromRoomTarget(t *testing.T) {
	room := testRoom()
	room.Ventilation.TargetTempC = 24

	result := CalculateRoom(room, -6, ProjectMeta{})
	if result.DeltaTK != 30 {
		t.Fatalf("expected deltaT 30 K, got %v", result.DeltaTK)
	}
	if result.IndoorTempC != 24 {
		t.Fatalf("expected indoor 24 °C, got %v", result.IndoorTempC)
	}
}

func TestCalculateRoom_RoomTypeDefaultTargetTemp(t *testing.T) {
	room := testRoom()
	room.Ventilation.TargetTempC = 0
	room.Ventilation.RoomType = RoomBathroom

	result := CalculateRoom(room, -12, ProjectMeta{})
	if result.IndoorTempC != 24 {
		t.Fatalf("expected bathroom default 24 °C, got %v", result.IndoorTempC)
	}
}

func TestSummarizeRoom_FlatSafetyMargin(t *testing.T) {
	room := testRoom()
	summary := SummarizeRoom(room, -12, ProjectMeta{})

	base := summary.TransmissionKW + summary.VentilationKW + summary.ThermalBridgeKW
	if diff := math.Abs(summary.SafetyMarginKW - base*SafetyMarginFactor); diff > 1e-12 {
		t.Fatalf("expected 10%% margin on %v, got %v", base, summary.SafetyMarginKW)
	}
	if diff := math.Abs(summary.TotalKW - base*1.1); diff > 1e-12 {
		t.Fatalf("expected total %v, got %v", base*1.1, summary.TotalKW)
	}
}

func TestSummarizeRoom_IgnoresGainsAndIntermittentFactor(t *testing.T) {
	room := testRoom()
	plain := SummarizeRoom(room, -12, ProjectMeta{})

	room.Ventilation.InternalGainsW = 500
	withGains := SummarizeRoom(room, -12, ProjectMeta{IntermittentFactor: 1.5})

	if plain.TotalKW != withGains.TotalKW {
		t.Fatalf("summary path must ignore gains and intermittent factor: %v vs %v", plain.TotalKW, withGains.TotalKW)
	}
}
