package cli

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Accent     lipgloss.Style
	AccentBold lipgloss.Style
	Muted      lipgloss.Style
	Success    lipgloss.Style
	Warn       lipgloss.Style
	Danger     lipgloss.Style
}

func defaultStyles() styles {
	accent := lipgloss.Color("#00FFFF")
	muted := lipgloss.Color("#7D7D7D")
	success := lipgloss.Color("#00FF00")
	warn := lipgloss.Color("#FFBF00")
	danger := lipgloss.Color("#FF0055")

	return styles{
		Accent:     lipgloss.NewStyle().Foreground(accent),
		AccentBold: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:      lipgloss.NewStyle().Foreground(muted),
		Success:    lipgloss.NewStyle().Foreground(success),
		Warn:       lipgloss.NewStyle().Foreground(warn),
		Danger:     lipgloss.NewStyle().Foreground(danger),
	}
}

const logo = `
  ███████╗██╗  ██╗██████╗ ████████╗███╗   ██╗██████╗
  ██╔════╝██║  ██║██╔══██╗╚══██╔══╝████╗  ██║██╔══██╗
  ███████╗███████║██████╔╝   ██║   ██╔██╗ ██║██████╔╝
  ╚════██║██╔══██║██╔══██╗   ██║   ██║╚██╗██║██╔══██╗
  ███████║██║  ██║██║  ██║   ██║   ██║ ╚████║██║  ██║
  ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═══╝╚═╝  ╚═╝
`
