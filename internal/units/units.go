// Package units defines the unit system preference shared by every fetch.
package units

// System selects the unit system used for API requests and display.
type System int

const (
	Metric System = iota
	Imperial
)

// Toggle returns the other system.
func (s System) Toggle() System {
	if s == Metric {
		return Imperial
	}
	return Metric
}

// APIParam returns the value for the OpenWeatherMap "units" query parameter.
func (s System) APIParam() string {
	if s == Imperial {
		return "imperial"
	}
	return "metric"
}

// TempSymbol returns the temperature symbol for display.
func (s System) TempSymbol() string {
	if s == Imperial {
		return "°F"
	}
	return "°C"
}

// SpeedSymbol returns the wind speed symbol for display.
func (s System) SpeedSymbol() string {
	if s == Imperial {
		return "mph"
	}
	return "km/h"
}

// String implements fmt.Stringer and doubles as the prefs file value.
func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "metric"
}

// Parse maps a prefs file value back to a System. Unknown values fall back
// to Metric.
func Parse(v string) System {
	if v == "imperial" {
		return Imperial
	}
	return Metric
}
