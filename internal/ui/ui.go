// Package ui implements the Breeze terminal interface. The Bubble Tea
// update loop is the single thread allowed to mutate view state; background
// fetches complete by posting messages into it.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mvanholt/breeze/internal/owm"
	"github.com/mvanholt/breeze/internal/prefs"
	"github.com/mvanholt/breeze/internal/state"
	"github.com/mvanholt/breeze/internal/suggest"
	"github.com/mvanholt/breeze/internal/units"
)

const defaultRefreshEvery = 10 * time.Minute

// Options configures the UI.
type Options struct {
	Context      context.Context
	Client       owm.Fetcher
	Units        units.System
	APIKeyFunc   func() string // resolved per fetch action
	PrefsPath    string
	InitialCity  string // restored from prefs; fetched on startup when set
	RefreshEvery time.Duration
	Log          *zap.SugaredLogger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx          context.Context
	client       owm.Fetcher
	keyFunc      func() string
	prefsPath    string
	refreshEvery time.Duration
	log          *zap.SugaredLogger

	keys  keyMap
	theme Theme
	units units.System

	input textinput.Model
	spin  spinner.Model

	view    state.ViewState
	iconArt string
	coord   *suggest.Coordinator
	city    string // last submitted city
	modal   *modalState

	width  int
	height int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	keyFunc := opts.APIKeyFunc
	if keyFunc == nil {
		keyFunc = func() string { return "" }
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	refreshEvery := opts.RefreshEvery
	if refreshEvery <= 0 {
		refreshEvery = defaultRefreshEvery
	}

	input := textinput.New()
	input.Placeholder = "City name"
	input.CharLimit = 64
	input.Width = 32
	input.SetValue(opts.InitialCity)
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		ctx:          ctx,
		client:       opts.Client,
		keyFunc:      keyFunc,
		prefsPath:    opts.PrefsPath,
		refreshEvery: refreshEvery,
		log:          log,
		keys:         DefaultKeyMap(),
		theme:        ThemeForCondition(""),
		units:        opts.Units,
		input:        input,
		spin:         spin,
		view:         state.Blank(),
		coord:        suggest.New(),
		city:         strings.TrimSpace(opts.InitialCity),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		refreshTickCmd(m.refreshEvery),
	}
	// Fetch the restored city immediately when a key is available.
	if city := strings.TrimSpace(m.input.Value()); city != "" && m.keyFunc() != "" {
		cmds = append(cmds,
			m.spin.Tick,
			fetchWeatherCmd(m.ctx, m.client, city, m.units, m.keyFunc()),
		)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case weatherMsg:
		return m.handleWeather(msg)

	case weatherErrMsg:
		return m.handleFetchError(msg.err)

	case iconMsg:
		// The previous icon art is dropped the moment a replacement (or a
		// failed fetch) lands; only one icon is ever retained.
		m.iconArt = renderIconArt(msg.img)
		return m, nil

	case forecastMsg:
		m.view.ApplyForecast(msg.days, m.units)
		return m, nil

	case forecastErrMsg:
		return m.handleFetchError(msg.err)

	case suggestionsMsg:
		m.coord.Deliver(msg.epoch, msg.items)
		return m, nil

	case debounceMsg:
		return m.handleDebounce(msg.seq)

	case refreshTickMsg:
		return m.handleRefreshTick()

	case spinner.TickMsg:
		if !m.view.Busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A modal dialog blocks everything else until dismissed.
	if m.modal != nil {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit), key.Matches(msg, m.keys.Dismiss):
			m.modal = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		if label, ok := m.coord.Select(); ok {
			m.input.SetValue(label)
			m.input.CursorEnd()
		}
		return m.submitFetch()

	case key.Matches(msg, m.keys.Down):
		if m.coord.Visible() {
			m.coord.Next()
			return m, nil
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.coord.Visible() {
			m.coord.Prev()
			return m, nil
		}
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		if m.coord.Visible() {
			m.coord.Blur()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleUnits):
		return m.toggleUnits()

	case key.Matches(msg, m.keys.Forecast):
		return m.toggleForecast()
	}

	// Everything else belongs to the city input. A changed value arms a
	// fresh debounce timer, superseding any pending one.
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		seq := m.coord.Keystroke(after)
		return m, tea.Batch(cmd, debounceCmd(seq))
	}
	return m, cmd
}

// submitFetch starts a current-weather fetch for the typed city.
func (m Model) submitFetch() (tea.Model, tea.Cmd) {
	city := strings.TrimSpace(m.input.Value())
	if city == "" {
		m.view.SetBusy(false, "Please enter a city name.")
		return m, nil
	}
	apiKey := m.keyFunc()
	if apiKey == "" {
		m.modal = credentialModal()
		return m, nil
	}

	m.coord.Blur()
	m.view.SetBusy(true, "Fetching weather…")
	return m, tea.Batch(
		m.spin.Tick,
		fetchWeatherCmd(m.ctx, m.client, city, m.units, apiKey),
	)
}

// handleWeather applies a completed current-weather fetch.
func (m Model) handleWeather(msg weatherMsg) (tea.Model, tea.Cmd) {
	m.city = msg.city
	m.view.ApplyReading(msg.reading, m.units, msg.city)
	m.theme = ThemeForCondition(msg.reading.ConditionMain)
	m.iconArt = ""
	m.savePrefs()

	if msg.reading.IconID == "" {
		return m, nil
	}
	return m, fetchIconCmd(m.ctx, m.client, msg.reading.IconID)
}

// handleFetchError surfaces a failed weather or forecast fetch. The busy
// indicator always clears; no failure leaves the UI stuck.
func (m Model) handleFetchError(err error) (tea.Model, tea.Cmd) {
	title, status := owm.Classify(err)
	m.log.Warnw("fetch failed", "error", err)
	m.view.ApplyError(status)
	m.modal = &modalState{title: title, message: err.Error()}
	return m, nil
}

// handleDebounce runs when an autocomplete debounce timer fires.
func (m Model) handleDebounce(seq int) (tea.Model, tea.Cmd) {
	epoch, query, ok := m.coord.TimerFired(seq)
	if !ok {
		return m, nil
	}
	apiKey := m.keyFunc()
	if apiKey == "" {
		// Suggestion failures are silent, including a missing key.
		m.coord.Blur()
		return m, nil
	}
	return m, fetchSuggestionsCmd(m.ctx, m.client, epoch, query, apiKey)
}

// handleRefreshTick silently re-fetches the displayed city at a fixed
// cadence, then schedules the next tick.
func (m Model) handleRefreshTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{refreshTickCmd(m.refreshEvery)}
	apiKey := m.keyFunc()
	if m.city != "" && !m.view.Busy && apiKey != "" {
		cmds = append(cmds, fetchWeatherCmd(m.ctx, m.client, m.city, m.units, apiKey))
	}
	return m, tea.Batch(cmds...)
}

// toggleUnits flips Celsius/Fahrenheit and re-fetches the displayed city.
func (m Model) toggleUnits() (tea.Model, tea.Cmd) {
	m.units = m.units.Toggle()
	m.savePrefs()
	if m.city == "" {
		return m, nil
	}
	apiKey := m.keyFunc()
	if apiKey == "" {
		m.modal = credentialModal()
		return m, nil
	}
	m.view.SetBusy(true, "Fetching weather…")
	return m, tea.Batch(
		m.spin.Tick,
		fetchWeatherCmd(m.ctx, m.client, m.city, m.units, apiKey),
	)
}

// toggleForecast shows or hides the 5-day forecast panel.
func (m Model) toggleForecast() (tea.Model, tea.Cmd) {
	if m.view.ShowForecast {
		m.view.ShowForecast = false
		return m, nil
	}
	if m.city == "" {
		m.view.SetBusy(false, "Fetch a city first.")
		return m, nil
	}
	apiKey := m.keyFunc()
	if apiKey == "" {
		m.modal = credentialModal()
		return m, nil
	}
	m.view.SetBusy(true, "Fetching forecast…")
	return m, tea.Batch(
		m.spin.Tick,
		fetchForecastCmd(m.ctx, m.client, m.city, m.units, apiKey),
	)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Units: m.units.String(), LastCity: m.city}); err != nil {
		m.log.Warnw("save prefs failed", "error", err)
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
