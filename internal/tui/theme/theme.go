// Package theme holds the lipgloss styles shared by the palette TUI and the
// CLI's styled output.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	IconStar     = "★"
	IconStarOff  = "☆"
	IconPremium  = "◆"
	IconExpanded = "▾"
	IconFolded   = "▸"
	IconCursor   = "▶ "
)

// Theme is a set of named styles.
type Theme struct {
	Header    lipgloss.Style
	Info      lipgloss.Style
	Highlight lipgloss.Style
	Selected  lipgloss.Style
	Muted     lipgloss.Style
	Disabled  lipgloss.Style
	Favorite  lipgloss.Style
	Premium   lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Border    lipgloss.Style
}

var DefaultTheme = Theme{
	Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0078d4")),
	Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("#0078d4")).Bold(true),
	Selected:  lipgloss.NewStyle().Background(lipgloss.Color("237")),
	Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Disabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	Favorite:  lipgloss.NewStyle().Foreground(lipgloss.Color("#fbbf24")),
	Premium:   lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa")),
	Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
	ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(lipgloss.Color("#0078d4")),
	Border:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
}

// hues maps palette hue names used by catalog colour tokens to xterm colours.
var hues = map[string]string{
	"blue":    "33",
	"sky":     "39",
	"cyan":    "37",
	"teal":    "30",
	"emerald": "35",
	"green":   "34",
	"lime":    "112",
	"yellow":  "178",
	"amber":   "214",
	"orange":  "208",
	"red":     "160",
	"rose":    "197",
	"pink":    "205",
	"fuchsia": "170",
	"purple":  "135",
	"violet":  "99",
	"indigo":  "62",
	"gray":    "245",
	"slate":   "103",
	"zinc":    "244",
	"stone":   "138",
}

// TokenColor converts a "text-<hue>-<shade>" colour token to a terminal
// colour. Unknown tokens map to the muted grey.
func TokenColor(token string) lipgloss.Color {
	parts := strings.Split(strings.TrimPrefix(token, "text-"), "-")
	if c, ok := hues[parts[0]]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color("245")
}

// Token returns a foreground style for a catalog colour token.
func Token(token string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TokenColor(token))
}
