package state

import (
	"fmt"

	"github.com/mvanholt/breeze/internal/owm"
	"github.com/mvanholt/breeze/internal/units"
)

// ViewState is everything the weather panel displays. Zero value is the
// blank "no city fetched yet" state.
type ViewState struct {
	Temperature   string
	Condition     string
	Details       string
	Status        string
	ConditionMain string // drives the theme
	Busy          bool
	HasReading    bool
	Forecast      []string
	ShowForecast  bool
}

// Blank returns the initial view state.
func Blank() ViewState {
	return ViewState{
		Temperature: "—",
		Condition:   "—",
		Status:      "Enter a city and press enter.",
	}
}

// ApplyReading replaces the displayed weather with a fresh reading.
func (v *ViewState) ApplyReading(r owm.Reading, system units.System, city string) {
	v.Temperature = fmt.Sprintf("%.1f %s", r.Temperature, system.TempSymbol())
	v.Condition = r.ConditionDescription
	if v.Condition == "" {
		v.Condition = r.ConditionMain
	}
	if v.Condition == "" {
		v.Condition = "—"
	}
	v.Details = fmt.Sprintf("Humidity: %d%% | Wind: %.1f %s | Feels like: %.1f %s",
		r.Humidity, r.WindSpeed, system.SpeedSymbol(), r.FeelsLike, system.TempSymbol())
	v.ConditionMain = r.ConditionMain
	if v.ConditionMain == "" {
		v.ConditionMain = r.ConditionDescription
	}
	v.Status = "Updated for " + city
	v.Busy = false
	v.HasReading = true
	v.Forecast = nil
	v.ShowForecast = false
}

// ApplyForecast replaces the forecast panel contents.
func (v *ViewState) ApplyForecast(days []owm.DailyMax, system units.System) {
	lines := make([]string, 0, len(days))
	for _, d := range days {
		lines = append(lines, fmt.Sprintf("%s  %.1f %s", d.Date, d.MaxTemp, system.TempSymbol()))
	}
	v.Forecast = lines
	v.ShowForecast = len(lines) > 0
	v.Busy = false
}

// ApplyError records a failed fetch: status text updates and the busy
// indicator clears so the controls stay usable.
func (v *ViewState) ApplyError(status string) {
	v.Status = status
	v.Busy = false
}

// SetBusy flips the busy indicator and, when entering the busy state, shows
// progress in the status line.
func (v *ViewState) SetBusy(busy bool, status string) {
	v.Busy = busy
	if status != "" {
		v.Status = status
	}
}
