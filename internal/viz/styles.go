package viz

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	helpKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

// VerdictLine formats a classification verdict for terminal output.
func VerdictLine(stable, valid bool) string {
	s := "UNSTABLE"
	style := warnStyle
	if stable {
		s = "STABLE"
		style = okStyle
	}
	if !valid {
		return style.Render(s) + " " + warnStyle.Render("(declared assumption inconsistent)")
	}
	return style.Render(s)
}
