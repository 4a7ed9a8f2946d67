package state

import (
	"testing"

	"github.com/mvanholt/breeze/internal/owm"
	"github.com/mvanholt/breeze/internal/units"
)

func TestApplyReading_MetricFormatting(t *testing.T) {
	v := Blank()
	v.ApplyReading(owm.Reading{
		Temperature:          18.3,
		FeelsLike:            17.9,
		Humidity:             60,
		WindSpeed:            3.2,
		ConditionMain:        "Clouds",
		ConditionDescription: "Scattered Clouds",
		IconID:               "04d",
	}, units.Metric, "Paris")

	if v.Temperature != "18.3 °C" {
		t.Errorf("Temperature = %q, want %q", v.Temperature, "18.3 °C")
	}
	wantDetails := "Humidity: 60% | Wind: 3.2 km/h | Feels like: 17.9 °C"
	if v.Details != wantDetails {
		t.Errorf("Details = %q, want %q", v.Details, wantDetails)
	}
	if v.Status != "Updated for Paris" {
		t.Errorf("Status = %q, want %q", v.Status, "Updated for Paris")
	}
	if v.ConditionMain != "Clouds" {
		t.Errorf("ConditionMain = %q, want Clouds", v.ConditionMain)
	}
	if v.Busy {
		t.Errorf("Busy = true, want false after a reading lands")
	}
	if !v.HasReading {
		t.Errorf("HasReading = false, want true")
	}
}

func TestApplyReading_ImperialSymbols(t *testing.T) {
	v := Blank()
	v.ApplyReading(owm.Reading{Temperature: 64.9, FeelsLike: 64.2, Humidity: 60, WindSpeed: 7.2}, units.Imperial, "Austin")

	if v.Temperature != "64.9 °F" {
		t.Errorf("Temperature = %q, want %q", v.Temperature, "64.9 °F")
	}
	wantDetails := "Humidity: 60% | Wind: 7.2 mph | Feels like: 64.2 °F"
	if v.Details != wantDetails {
		t.Errorf("Details = %q, want %q", v.Details, wantDetails)
	}
}

func TestApplyReading_EmptyConditionFallsBackToDash(t *testing.T) {
	v := Blank()
	v.ApplyReading(owm.Reading{Temperature: 2}, units.Metric, "Nowhere")

	if v.Condition != "—" {
		t.Errorf("Condition = %q, want dash placeholder", v.Condition)
	}
}

func TestApplyForecast(t *testing.T) {
	v := Blank()
	v.SetBusy(true, "Fetching forecast…")
	v.ApplyForecast([]owm.DailyMax{
		{Date: "2025-03-01", MaxTemp: 15},
		{Date: "2025-03-02", MaxTemp: 11.5},
	}, units.Metric)

	if len(v.Forecast) != 2 {
		t.Fatalf("Forecast lines = %d, want 2", len(v.Forecast))
	}
	if v.Forecast[0] != "2025-03-01  15.0 °C" {
		t.Errorf("Forecast[0] = %q, want %q", v.Forecast[0], "2025-03-01  15.0 °C")
	}
	if !v.ShowForecast {
		t.Errorf("ShowForecast = false, want true")
	}
	if v.Busy {
		t.Errorf("Busy = true, want cleared")
	}
}

func TestApplyError_ClearsBusy(t *testing.T) {
	v := Blank()
	v.SetBusy(true, "Fetching weather…")
	v.ApplyError("api error: city not found")

	if v.Busy {
		t.Errorf("Busy = true, want false after error")
	}
	if v.Status != "api error: city not found" {
		t.Errorf("Status = %q, want error text", v.Status)
	}
}
