package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the palette for the weather panel. The active theme follows
// the displayed condition rather than a user setting.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text   string
	Muted  string
	Accent string
	Danger string
}

// Styles returns pre-built lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(0, 2),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Background)),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(t.Danger)).
			Padding(1, 3),
	}
}

// Styles contains pre-built lipgloss styles for the theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	AccentText lipgloss.Style
	DangerText lipgloss.Style

	Header   lipgloss.Style
	Panel    lipgloss.Style
	Selected lipgloss.Style
	Modal    lipgloss.Style
}

// Theme definitions. Base colors stay dark; the accent shifts with the
// weather the way the classic desktop app shifted its window background.

func sunnyTheme() Theme {
	return Theme{
		Name:       "Sunny",
		Background: "#191A21",
		Surface:    "#282A36",
		Text:       "#F8F8F2",
		Muted:      "#6272A4",
		Accent:     "#F1FA8C", // warm yellow
		Danger:     "#FF5555",
	}
}

func grayTheme() Theme {
	return Theme{
		Name:       "Overcast",
		Background: "#191A21",
		Surface:    "#282A36",
		Text:       "#F8F8F2",
		Muted:      "#6272A4",
		Accent:     "#9EA3B0", // neutral gray
		Danger:     "#FF5555",
	}
}

func rainTheme() Theme {
	return Theme{
		Name:       "Rain",
		Background: "#191A21",
		Surface:    "#282A36",
		Text:       "#F8F8F2",
		Muted:      "#6272A4",
		Accent:     "#8BE9FD", // cool blue
		Danger:     "#FF5555",
	}
}

func defaultTheme() Theme {
	return Theme{
		Name:       "Default",
		Background: "#191A21",
		Surface:    "#282A36",
		Text:       "#F8F8F2",
		Muted:      "#6272A4",
		Accent:     "#BD93F9", // neutral purple
		Danger:     "#FF5555",
	}
}

// ThemeForCondition maps a condition's main category to a palette.
// Case-insensitive substring match, first match wins.
func ThemeForCondition(conditionMain string) Theme {
	cond := strings.ToLower(conditionMain)
	switch {
	case strings.Contains(cond, "clear"):
		return sunnyTheme()
	case strings.Contains(cond, "cloud"):
		return grayTheme()
	case strings.Contains(cond, "rain"),
		strings.Contains(cond, "drizzle"),
		strings.Contains(cond, "thunder"):
		return rainTheme()
	default:
		return defaultTheme()
	}
}
