package plan

import "testing"

func TestTab_NextPrevWrap(t *testing.T) {
	if got := TabAll.Prev(); got != TabAirHumidity {
		t.Errorf("expected all.Prev() to wrap to air_humidity, got %s", got)
	}
	if got := TabAirHumidity.Next(); got != TabAll {
		t.Errorf("expected air_humidity.Next() to wrap to all, got %s", got)
	}

	tab := TabAll
	for range Tabs() {
		tab = tab.Next()
	}
	if tab != TabAll {
		t.Errorf("expected full cycle to return to all, got %s", tab)
	}
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab("  Brightness ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tab != TabBrightness {
		t.Errorf("expected brightness, got %s", tab)
	}

	if _, err := ParseTab("rain"); err == nil {
		t.Error("expected error for unknown tab")
	}
}

func TestSensorTabs(t *testing.T) {
	tabs := SensorTabs()
	if len(tabs) != 5 {
		t.Fatalf("expected 5 sensor tabs, got %d", len(tabs))
	}
	for _, tab := range tabs {
		if tab == TabAll {
			t.Error("sensor tabs must not include all")
		}
		if tab.Label() == string(tab) {
			t.Errorf("expected a caption for %s", tab)
		}
	}
}
