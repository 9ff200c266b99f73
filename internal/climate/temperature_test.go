package climate

import "testing"

func TestDesignTempForLocation_LatitudeBands(t *testing.T) {
	cases := []struct {
		name string
		lat  float64
		lon  float64
		want float64
	}{
		{"alpine south (Oberstdorf)", 47.4, 10.3, -16},
		{"south (Stuttgart)", 48.8, 9.2, -14},
		{"central (Frankfurt)", 50.1, 8.7, -12},
		{"north maritime (Hamburg)", 53.6, 10.0, -10},
	}
	for _, tc := range cases {
		if got := designTempForLocation(tc.lat, tc.lon); got != tc.want {
			t.Fatalf("%s: expected %v °C, got %v", tc.name, tc.want, got)
		}
	}
}

func TestDesignTempForLocation_ContinentalEast(t *testing.T) {
	// Dresden sits east of 12°E and gets the continental adjustment.
	if got := designTempForLocation(51.0, 13.7); got != -14 {
		t.Fatalf("expected -14 °C for Dresden, got %v", got)
	}
	// Cologne at the same latitude stays at the band base.
	if got := designTempForLocation(50.9, 6.9); got != -12 {
		t.Fatalf("expected -12 °C for Cologne, got %v", got)
	}
}

func TestDesignTempForLocation_StaysInPlausibleRange(t *testing.T) {
	for lat := 47.0; lat <= 55.0; lat += 0.5 {
		for lon := 6.0; lon <= 15.0; lon += 0.5 {
			got := designTempForLocation(lat, lon)
			if got < minDesignTempC || got > maxDesignTempC {
				t.Fatalf("lat %v lon %v: %v outside [%v, %v]", lat, lon, got, minDesignTempC, maxDesignTempC)
			}
		}
	}
}

func TestNormalizeQuery(t *testing.T) {
	if got := normalizeQuery("  Musterstraße   12,  Berlin "); got != "musterstraße 12, berlin" {
		t.Fatalf("unexpected normalization: %q", got)
	}
	if got := normalizeQuery("   "); got != "" {
		t.Fatalf("expected empty for whitespace, got %q", got)
	}
}
