package ui

import "github.com/charmbracelet/lipgloss"

// modalState is a blocking error dialog. While set, it swallows input until
// dismissed; every path that sets it has already re-enabled the controls.
type modalState struct {
	title   string
	message string
}

func credentialModal() *modalState {
	return &modalState{
		title:   "Missing API Key",
		message: "Set environment variable OWM_API_KEY or create a .env file with OWM_API_KEY=your_key",
	}
}

// renderModal draws the dialog centered in the window.
func (m Model) renderModal() string {
	styles := m.theme.Styles()

	body := styles.DangerText.Render(m.modal.title) + "\n\n" +
		styles.Text.Width(48).Render(m.modal.message) + "\n\n" +
		styles.MutedText.Render("enter/esc to dismiss")

	box := styles.Modal.Render(body)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
