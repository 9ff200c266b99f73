package transport

import (
	"encoding/json"
	"testing"

	"heatload_backend/internal/heatload/calc"
)

func flex(v float64) *FlexNumber {
	f := FlexNumber(v)
	return &f
}

func TestFlexNumber_DecodesNumbersAndLocaleStrings(t *testing.T) {
	var payload struct {
		A FlexNumber `json:"a"`
		B FlexNumber `json:"b"`
		C FlexNumber `json:"c"`
		D FlexNumber `json:"d"`
	}

	raw := `{"a": 1.5, "b": "1,5", "c": "1.250,75", "d": "abc"}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.A != 1.5 || payload.B != 1.5 {
		t.Fatalf("expected 1.5 for number and comma string, got %v / %v", payload.A, payload.B)
	}
	if payload.C != 1250.75 {
		t.Fatalf("expected 1250.75 for thousands string, got %v", payload.C)
	}
	if payload.D != 0 {
		t.Fatalf("expected 0 for garbage, got %v", payload.D)
	}
}

func TestFlexNumber_NullAndMissing(t *testing.T) {
	var payload struct {
		A FlexNumber  `json:"a"`
		B *FlexNumber `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a": null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.A != 0 || payload.B != nil {
		t.Fatalf("expected zero and nil, got %v / %v", payload.A, payload.B)
	}
}

func TestNormalizeVentilation_ACHAliases(t *testing.T) {
	cases := []struct {
		name    string
		payload VentilationPayload
		want    float64
	}{
		{"current name", VentilationPayload{AirChangesPerHour: flex(0.5)}, 0.5},
		{"ach alias", VentilationPayload{ACH: flex(0.6)}, 0.6},
		{"airExchangeRate alias", VentilationPayload{AirExchangeRate: flex(0.7)}, 0.7},
		{"current name wins over alias", VentilationPayload{AirChangesPerHour: flex(0.5), ACH: flex(9)}, 0.5},
		{"zero current name does not shadow older alias", VentilationPayload{AirChangesPerHour: flex(0), ACH: flex(3)}, 3},
		{"infiltrationACH is the final fallback", VentilationPayload{InfiltrationACH: flex(0.3)}, 0.3},
	}
	for _, tc := range cases {
		cfg := normalizeVentilation(tc.payload)
		if cfg.AirChangesPerHour != tc.want {
			t.Fatalf("%s: expected ACH %v, got %v", tc.name, tc.want, cfg.AirChangesPerHour)
		}
	}
}

func TestNormalizeVentilation_EfficiencyAliasesAndPercent(t *testing.T) {
	cases := []struct {
		name    string
		payload VentilationPayload
		want    float64
	}{
		{"fraction", VentilationPayload{HeatRecoveryEfficiency: flex(0.8)}, 0.8},
		{"percent form normalized", VentilationPayload{HeatRecovery: flex(80)}, 0.8},
		{"hrvEfficiency alias", VentilationPayload{HRVEfficiency: flex(0.75)}, 0.75},
		{"recoveryRate alias", VentilationPayload{RecoveryRate: flex(0.9)}, 0.9},
		{"current name wins", VentilationPayload{HeatRecoveryEfficiency: flex(0.8), RecoveryRate: flex(0.1)}, 0.8},
		{"zero current name does not shadow older alias", VentilationPayload{HeatRecoveryEfficiency: flex(0), HRVEfficiency: flex(0.6)}, 0.6},
		{"capped at the storage maximum", VentilationPayload{HeatRecoveryEfficiency: flex(1.0)}, calc.MaxHeatRecoveryEfficiency},
		{"percent form capped", VentilationPayload{RecoveryRate: flex(100)}, calc.MaxHeatRecoveryEfficiency},
	}
	for _, tc := range cases {
		cfg := normalizeVentilation(tc.payload)
		if cfg.HeatRecoveryEfficiency != tc.want {
			t.Fatalf("%s: expected eta %v, got %v", tc.name, tc.want, cfg.HeatRecoveryEfficiency)
		}
	}
}

func TestNormalizeVentilation_InfiltrationStaysSeparate(t *testing.T) {
	cfg := normalizeVentilation(VentilationPayload{
		AirChangesPerHour: flex(0.5),
		InfiltrationACH:   flex(0.2),
	})
	if cfg.AirChangesPerHour != 0.5 || cfg.InfiltrationACH != 0.2 {
		t.Fatalf("expected 0.5 / 0.2, got %v / %v", cfg.AirChangesPerHour, cfg.InfiltrationACH)
	}
}

func TestNormalize_EraFallsBackToConstructionYear(t *testing.T) {
	input := NormalizeCalculateRequest(CalculateRequest{
		Building: BuildingPayload{ConstructionYear: 1990},
	})
	if input.Era != calc.Era1984to1994 {
		t.Fatalf("expected era from year 1990, got %q", input.Era)
	}
	if input.Insulation != calc.InsulationNone {
		t.Fatalf("expected insulation default none, got %q", input.Insulation)
	}
}

func TestNormalize_ExplicitEraWins(t *testing.T) {
	input := NormalizeCalculateRequest(CalculateRequest{
		Building: BuildingPayload{ConstructionYear: 1990, Era: "from2016", Insulation: "good"},
	})
	if input.Era != calc.EraFrom2016 || input.Insulation != calc.InsulationGood {
		t.Fatalf("expected explicit era/insulation, got %q / %q", input.Era, input.Insulation)
	}
}

func TestNormalize_ManualDesignTempAndBivalence(t *testing.T) {
	manual := flex(-14)
	bivalence := flex(-5)
	input := NormalizeCalculateRequest(CalculateRequest{
		Building: BuildingPayload{
			DesignOutdoorTemp:       flex(-10),
			ManualDesignOutdoorTemp: manual,
			HeatPump:                &HeatPumpPayload{BivalenceTempC: bivalence},
		},
	})

	b := input.Building
	if b.ManualDesignOutdoorTempC == nil || *b.ManualDesignOutdoorTempC != -14 {
		t.Fatalf("expected manual -14, got %v", b.ManualDesignOutdoorTempC)
	}
	if b.HeatPump == nil || b.HeatPump.BivalenceTempC == nil || *b.HeatPump.BivalenceTempC != -5 {
		t.Fatalf("expected bivalence -5, got %+v", b.HeatPump)
	}
}

func TestNormalize_FullRoomRoundTrip(t *testing.T) {
	raw := `{
		"building": {"era": "pre1978", "residents": 4},
		"floors": [{
			"id": "f1",
			"name": "EG",
			"rooms": [{
				"id": "r1",
				"name": "Wohnzimmer",
				"area": "24,5",
				"height": 2.6,
				"walls": [{"name": "Süd", "area": "12,0", "uValue": "1,3"}],
				"windows": [{"area": 3, "uValue": 1.1}],
				"ventilation": {
					"roomType": "living",
					"targetTemp": 21,
					"airExchangeRate": "0,5",
					"recoveryRate": 85
				}
			}]
		}],
		"settings": {"thermalBridgeFactor": 0.1, "intermittentFactor": 1.2}
	}`

	var req CalculateRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	input := NormalizeCalculateRequest(req)
	room := input.Floors[0].Rooms[0]

	if room.AreaM2 != 24.5 || room.HeightM != 2.6 {
		t.Fatalf("expected area 24.5 / height 2.6, got %v / %v", room.AreaM2, room.HeightM)
	}
	if room.Walls[0].AreaM2 != 12 || room.Walls[0].UValue != 1.3 {
		t.Fatalf("expected wall 12 m² U=1.3, got %+v", room.Walls[0])
	}
	if room.Ventilation.AirChangesPerHour != 0.5 {
		t.Fatalf("expected ACH 0.5 via alias, got %v", room.Ventilation.AirChangesPerHour)
	}
	if room.Ventilation.HeatRecoveryEfficiency != 0.85 {
		t.Fatalf("expected eta 0.85 from percent alias, got %v", room.Ventilation.HeatRecoveryEfficiency)
	}
	if input.Meta.ThermalBridgeFactor == nil || *input.Meta.ThermalBridgeFactor != 0.1 {
		t.Fatalf("expected bridge factor 0.1, got %v", input.Meta.ThermalBridgeFactor)
	}
	if input.Meta.IntermittentFactor != 1.2 {
		t.Fatalf("expected intermittent 1.2, got %v", input.Meta.IntermittentFactor)
	}
}
