// Package ui holds the text styles used by the CLI's text output format.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	IconBook   = "📖"
	IconReview = "🔁"
	IconStar   = "⭐"
	IconFire   = "🔥"
	IconChart  = "📊"
	IconWarn   = "⚠️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Big   = lipgloss.NewStyle().Bold(true).Foreground(cAccent).Padding(0, 2)
	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
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

// MasteryText colors a mastery score: weak items red, mastered green.
func MasteryText(score, threshold int) string {
	s := fmt.Sprintf("%d", score)
	switch {
	case score >= threshold:
		return Good.Render(s)
	case score >= threshold/2:
		return Warn.Render(s)
	default:
		return Bad.Render(s)
	}
}

// MasteryBar renders score out of 100 as a fixed-width bar.
func MasteryBar(score, width int) string {
	if width <= 0 {
		return ""
	}
	score = max(0, min(100, score))
	filled := score * width / 100
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}
