package plan

import (
	"fmt"
	"strings"
)

// Tab is one sensor filter shown above the workflow diagram. Selecting a tab
// only changes highlighting; it never filters tasks.
type Tab string

const (
	TabAll             Tab = "all"
	TabSoilMoisture    Tab = "soil_moisture"
	TabSoilTemperature Tab = "soil_temperature"
	TabBrightness      Tab = "brightness"
	TabAirTemperature  Tab = "air_temperature"
	TabAirHumidity     Tab = "air_humidity"
)

var tabOrder = []Tab{
	TabAll,
	TabSoilMoisture,
	TabSoilTemperature,
	TabBrightness,
	TabAirTemperature,
	TabAirHumidity,
}

// Tabs returns every tab in display order.
func Tabs() []Tab {
	tabs := make([]Tab, len(tabOrder))
	copy(tabs, tabOrder)
	return tabs
}

// SensorTabs returns the tabs that correspond to a physical sensor.
func SensorTabs() []Tab {
	return Tabs()[1:]
}

// Label returns the pt-BR tab caption.
func (t Tab) Label() string {
	switch t {
	case TabAll:
		return "Todas"
	case TabSoilMoisture:
		return "Umidade Solo"
	case TabSoilTemperature:
		return "Temp. Solo"
	case TabBrightness:
		return "Luminosidade"
	case TabAirTemperature:
		return "Temp. Ar"
	case TabAirHumidity:
		return "Umidade Ar"
	default:
		return string(t)
	}
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return tabOrder[(t.index()+1)%len(tabOrder)]
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return tabOrder[(t.index()-1+len(tabOrder))%len(tabOrder)]
}

func (t Tab) index() int {
	for i, tab := range tabOrder {
		if tab == t {
			return i
		}
	}
	return 0
}

// ParseTab validates and normalizes a tab value.
func ParseTab(value string) (Tab, error) {
	v := Tab(strings.ToLower(strings.TrimSpace(value)))
	for _, tab := range tabOrder {
		if tab == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid tab %q (valid: all, soil_moisture, soil_temperature, brightness, air_temperature, air_humidity)", value)
}
