package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.modal != nil {
		return m.renderModal()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")

	if m.coord.Visible() {
		b.WriteString(m.renderSuggestions())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderWeather())

	if m.view.ShowForecast {
		b.WriteString("\n")
		b.WriteString(m.renderForecast())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader draws the title bar with the unit indicator.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	title := styles.AccentText.Render("breeze")
	unitTag := styles.MutedText.Render(m.units.TempSymbol())
	return styles.Header.Render(title + "  " + unitTag)
}

func (m Model) renderInput() string {
	return "  " + m.input.View()
}

// renderSuggestions draws the autocomplete list under the input, with the
// highlighted row inverted.
func (m Model) renderSuggestions() string {
	styles := m.theme.Styles()
	var b strings.Builder
	for i, s := range m.coord.Items() {
		b.WriteString("  ")
		if i == m.coord.Selected() {
			b.WriteString(styles.Selected.Render(" " + s.Label + " "))
		} else {
			b.WriteString(styles.MutedText.Render(" " + s.Label + " "))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderWeather draws the current-conditions panel.
func (m Model) renderWeather() string {
	styles := m.theme.Styles()

	var lines []string
	if m.iconArt != "" {
		lines = append(lines, m.iconArt, "")
	}
	lines = append(lines,
		styles.AccentText.Render(m.view.Temperature),
		styles.Text.Render(m.view.Condition),
	)
	if m.view.Details != "" {
		lines = append(lines, styles.MutedText.Render(m.view.Details))
	}

	panel := styles.Panel.Render(strings.Join(lines, "\n"))

	status := m.view.Status
	if m.view.Busy {
		status = m.spin.View() + " " + status
	}
	return panel + "\n" + styles.MutedText.Render("  "+status)
}

// renderForecast draws the 5-day maximum-temperature panel.
func (m Model) renderForecast() string {
	styles := m.theme.Styles()
	lines := make([]string, 0, len(m.view.Forecast)+1)
	lines = append(lines, styles.AccentText.Render("5-day forecast"))
	for _, line := range m.view.Forecast {
		lines = append(lines, styles.Text.Render(line))
	}
	return styles.Panel.Render(strings.Join(lines, "\n"))
}

// renderFooter draws the key hints line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	hints := []string{
		hint(styles, m.keys.Submit.Help().Key, m.keys.Submit.Help().Desc),
		hint(styles, m.keys.ToggleUnits.Help().Key, m.keys.ToggleUnits.Help().Desc),
		hint(styles, m.keys.Forecast.Help().Key, m.keys.Forecast.Help().Desc),
		hint(styles, m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc),
	}
	line := strings.Join(hints, "  ")
	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Render("  " + line)
	}
	return "  " + line
}

func hint(styles Styles, k, desc string) string {
	return styles.AccentText.Render(k) + styles.MutedText.Render(":"+desc)
}
