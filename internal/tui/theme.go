package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	Teal       = lipgloss.Color("#14B8A6")
	BrightTeal = lipgloss.Color("#5EEAD4")

	White     = lipgloss.Color("#FFFFFF")
	LightGray = lipgloss.Color("#9CA3AF")
	DimGray   = lipgloss.Color("#6B7280")
	DarkGray  = lipgloss.Color("#374151")

	Success = lipgloss.Color("#22C55E")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#EF4444")
)

// Styles contains the dashboard styles.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Active   lipgloss.Style

	Help    lipgloss.Style
	HelpKey lipgloss.Style

	Card lipgloss.Style

	Warning lipgloss.Style
	Banner  lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// DefaultStyles returns the shared Styles instance.
func DefaultStyles() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		Subtitle: lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(LightGray),

		Muted: lipgloss.NewStyle().
			Foreground(DimGray),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		Cursor: lipgloss.NewStyle().
			Foreground(BrightTeal).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(Teal),

		Active: lipgloss.NewStyle().
			Foreground(Success),

		Help: lipgloss.NewStyle().
			Foreground(DimGray).
			MarginTop(1),

		HelpKey: lipgloss.NewStyle().
			Foreground(LightGray).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGray).
			Padding(0, 1),

		Warning: lipgloss.NewStyle().
			Foreground(Warning),

		Banner: lipgloss.NewStyle().
			Foreground(White).
			Background(Error).
			Padding(0, 1),
	}
}
