package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Perfect Day theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconStar    = "🌟"
	IconForm    = "📝"
	IconDone    = "✅"
	IconMiss    = "❌"
	IconTrophy  = "🏆"
	IconFire    = "🔥"
	IconChart   = "📈"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSparkle = "✨"
)

var (
	cTheme = lipgloss.Color("#1DB954") // spotify green, the app color
	cGood  = lipgloss.Color("42")      // green
	cWarn  = lipgloss.Color("214")     // orange
	cBad   = lipgloss.Color("196")     // red
	cMuted = lipgloss.Color("244")     // gray
	cGold  = lipgloss.Color("220")     // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cTheme)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cTheme)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cTheme)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ScoreText colors a score by band: full days gold, half days green,
// anything less muted.
func ScoreText(score float64) string {
	s := fmt.Sprintf("%.0f%%", score)
	switch {
	case score >= 100:
		return Gold.Render(s)
	case score >= 50:
		return Good.Render(s)
	default:
		return Muted.Render(s)
	}
}

// StreakText renders the displayed streak line.
func StreakText(n int) string {
	unit := "days"
	if n == 1 {
		unit = "day"
	}
	return Key.Render(fmt.Sprintf("%s Current Streak: %d %s", IconFire, n, unit))
}

// TaskColor builds a style for a catalog task's configured color.
func TaskColor(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

func CheckIcon(done bool) string {
	if done {
		return IconDone
	}
	return IconMiss
}
