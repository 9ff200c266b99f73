package calc

import "testing"

func TestWallPresetU_Pre1978NoInsulation(t *testing.T) {
	if got := WallPresetU(EraPre1978, InsulationNone); got != 1.30 {
		t.Fatalf("expected 1.30 W/(m²K), got %v", got)
	}
}

func TestPresetU_UnknownKeysFallBack(t *testing.T) {
	if got := WallPresetU(Era("victorian"), InsulationNone); got != 1.30 {
		t.Fatalf("unknown era: expected pre-1978 baseline 1.30, got %v", got)
	}
	if got := WallPresetU(EraPre1978, InsulationLevel("platinum")); got != 1.30 {
		t.Fatalf("unknown level: expected none multiplier, got %v", got)
	}
}

func TestApplyPresets_FillsOnlyMissingValues(t *testing.T) {
	room := Room{
		AreaM2: 20,
		Walls: []Wall{
			{Name: "entered", UValue: 1.5},
			{Name: "blank"},
		},
		Windows: []Window{{UValue: 0}},
		Doors:   []Door{{}},
	}

	out := ApplyPresets(room, EraFrom2016, InsulationPremium, PresetOptions{})

	if out.Walls[0].UValue != 1.5 {
		t.Fatalf("user-entered wall U must survive a preset pass, got %v", out.Walls[0].UValue)
	}
	if want := WallPresetU(EraFrom2016, InsulationPremium); out.Walls[1].UValue != want {
		t.Fatalf("blank wall: expected %v, got %v", want, out.Walls[1].UValue)
	}
	if want := WindowPresetU(EraFrom2016, InsulationPremium); out.Windows[0].UValue != want {
		t.Fatalf("blank window: expected %v, got %v", want, out.Windows[0].UValue)
	}
	if out.Doors[0].UValue != FallbackDoorU {
		t.Fatalf("blank door: expected fallback %v, got %v", FallbackDoorU, out.Doors[0].UValue)
	}
	if out.Ceiling.UValue <= 0 || out.Floor.UValue <= 0 {
		t.Fatalf("ceiling/floor must be filled: %v / %v", out.Ceiling.UValue, out.Floor.UValue)
	}
}

func TestApplyPresets_RValueWallIsLeftAlone(t *testing.T) {
	room := Room{Walls: []Wall{{RValue: 2}}}

	out := ApplyPresets(room, EraPre1978, InsulationNone, PresetOptions{})
	if out.Walls[0].UValue != 0 || out.Walls[0].RValue != 2 {
		t.Fatalf("wall with explicit R-value must not be overwritten, got U=%v R=%v", out.Walls[0].UValue, out.Walls[0].RValue)
	}
}

func TestApplyPresets_ForceOverwritesEverything(t *testing.T) {
	room := Room{
		Walls:   []Wall{{UValue: 1.5, RValue: 2}},
		Windows: []Window{{UValue: 0.7}},
	}

	out := ApplyPresets(room, EraPre1978, InsulationNone, PresetOptions{Force: true})
	if out.Walls[0].UValue != 1.30 || out.Walls[0].RValue != 0 {
		t.Fatalf("force: expected wall U 1.30 and cleared R, got U=%v R=%v", out.Walls[0].UValue, out.Walls[0].RValue)
	}
	if out.Windows[0].UValue != 4.70 {
		t.Fatalf("force: expected window U 4.70, got %v", out.Windows[0].UValue)
	}
}

func TestApplyPresets_DoesNotMutateInput(t *testing.T) {
	room := Room{Walls: []Wall{{Name: "blank"}}}

	_ = ApplyPresets(room, EraPre1978, InsulationNone, PresetOptions{})
	if room.Walls[0].UValue != 0 {
		t.Fatalf("input room mutated: wall U became %v", room.Walls[0].UValue)
	}
}

func TestPresetRoundTrip_WallTransmission(t *testing.T) {
	room := Room{Walls: []Wall{{Name: "North", AreaM2: 10}}}
	filled := ApplyPresets(room, EraPre1978, InsulationNone, PresetOptions{})

	_, sum := TransmissionLosses(filled, 30)
	if sum != 10*1.30*30 {
		t.Fatalf("expected %v W, got %v", 10*1.30*30, sum)
	}
}

func TestEraForYear_Buckets(t *testing.T) {
	cases := []struct {
		year int
		want Era
	}{
		{0, EraPre1978},
		{1960, EraPre1978},
		{1978, Era1978to1983},
		{1983, Era1978to1983},
		{1990, Era1984to1994},
		{2000, Era1995to2001},
		{2005, Era2002to2008},
		{2012, Era2009to2015},
		{2024, EraFrom2016},
	}
	for _, tc := range cases {
		if got := EraForYear(tc.year); got != tc.want {
			t.Fatalf("EraForYear(%d): expected %q, got %q", tc.year, tc.want, got)
		}
	}
}
