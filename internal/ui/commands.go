package ui

import (
	"context"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvanholt/breeze/internal/owm"
	"github.com/mvanholt/breeze/internal/suggest"
	"github.com/mvanholt/breeze/internal/units"
)

// Every network fetch runs as a command on its own goroutine and reports
// back through one of these messages. Bubble Tea applies messages to Update
// serially, so no other synchronization exists anywhere in the UI. Delivery
// order across different fetch kinds is unspecified; only autocomplete
// results carry an epoch for staleness detection.

type weatherMsg struct {
	city    string
	reading owm.Reading
}

type weatherErrMsg struct {
	city string
	err  error
}

// iconMsg carries the decoded icon, or nil when the fetch or decode failed;
// icon absence is non-fatal.
type iconMsg struct {
	img image.Image
}

type forecastMsg struct {
	days []owm.DailyMax
}

type forecastErrMsg struct {
	err error
}

type suggestionsMsg struct {
	epoch int
	items []owm.Suggestion
}

type debounceMsg struct {
	seq int
}

type refreshTickMsg time.Time

func fetchWeatherCmd(ctx context.Context, f owm.Fetcher, city string, system units.System, apiKey string) tea.Cmd {
	return func() tea.Msg {
		reading, err := f.CurrentWeather(ctx, city, system, apiKey)
		if err != nil {
			return weatherErrMsg{city: city, err: err}
		}
		return weatherMsg{city: city, reading: reading}
	}
}

func fetchIconCmd(ctx context.Context, f owm.Fetcher, iconID string) tea.Cmd {
	return func() tea.Msg {
		img, err := f.Icon(ctx, iconID)
		if err != nil {
			return iconMsg{img: nil}
		}
		return iconMsg{img: img}
	}
}

func fetchForecastCmd(ctx context.Context, f owm.Fetcher, city string, system units.System, apiKey string) tea.Cmd {
	return func() tea.Msg {
		days, err := f.Forecast(ctx, city, system, apiKey)
		if err != nil {
			return forecastErrMsg{err: err}
		}
		return forecastMsg{days: days}
	}
}

func fetchSuggestionsCmd(ctx context.Context, f owm.Fetcher, epoch int, prefix, apiKey string) tea.Cmd {
	return func() tea.Msg {
		return suggestionsMsg{epoch: epoch, items: f.Suggestions(ctx, prefix, apiKey)}
	}
}

func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(suggest.DebounceInterval, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func refreshTickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}
