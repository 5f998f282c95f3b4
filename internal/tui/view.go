package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
	"github.com/emiliopalmerini/hyperfocus/internal/util"
)

// View implements tea.Model
func (m *Model) View() string {
	parts := []string{m.renderHeader()}

	if m.snap.Error != "" {
		parts = append(parts, m.styles.Banner.Render(m.snap.Error))
	}

	if m.snap.UserID == "" {
		parts = append(parts, "", m.styles.Muted.Render("No active user. Press d to seed demo data, or run 'hyperfocus load <user-id>'."))
	} else {
		top := lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.Card.Render(m.renderSummary()),
			" ",
			m.styles.Card.Render(m.renderTypes()),
			" ",
			m.styles.Card.Render(m.renderPeak()),
		)
		parts = append(parts, "", top, "", m.renderSessions())
		if m.snap.SelectedSessionID != nil {
			parts = append(parts, "", m.renderInterruptions())
		}
		parts = append(parts, "", m.renderPatterns())
	}

	parts = append(parts, helpBar(m.styles, dashboardKeys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderHeader() string {
	title := m.styles.Title.Render("HYPERFOCUS")
	var sub string
	if m.snap.UserID != "" {
		sub = m.styles.Muted.Render(fmt.Sprintf("user %s  %s", m.snap.UserID, m.snap.Range.Label()))
	}
	status := ""
	switch {
	case m.busy != "":
		status = m.styles.Warning.Render(m.busy + "...")
	case m.snap.Loading:
		status = m.styles.Warning.Render("loading...")
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", sub, "  ", status)
}

func (m *Model) unavailable() string {
	return m.styles.Muted.Render("unavailable")
}

func (m *Model) renderSummary() string {
	lines := []string{m.styles.Subtitle.Render("Summary")}
	slot := m.snap.Views.Summary
	if !slot.Present {
		return strings.Join(append(lines, m.unavailable()), "\n")
	}
	s := slot.Value
	row := func(label, value string) string {
		return m.styles.Muted.Render(fmt.Sprintf("%-14s", label)) + m.styles.Bold.Render(value)
	}
	lines = append(lines,
		row("Sessions", fmt.Sprintf("%d", s.TotalSessions)),
		row("Interruptions", fmt.Sprintf("%d", s.TotalInterruptions)),
		row("Worked", util.FormatDuration(s.TotalTimeWorkedSeconds)),
		row("Lost", util.FormatDuration(s.TotalTimeLostSeconds)),
		row("Effective", util.FormatDuration(s.EffectiveTimeSeconds)),
		row("Per hour", util.FormatRate(s.InterruptionsPerHour)),
	)
	return strings.Join(lines, "\n")
}

func (m *Model) renderTypes() string {
	lines := []string{m.styles.Subtitle.Render("Types")}
	slot := m.snap.Views.TypeStats
	switch {
	case !slot.Present:
		lines = append(lines, m.unavailable())
	case slot.Value.TotalInterruptions == 0:
		lines = append(lines, m.styles.Muted.Render("none in range"))
	default:
		stats := slot.Value
		keys := make([]string, 0, len(stats.Counts))
		for k := range stats.Counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%-12s %3d  %s",
				k, stats.Counts[k], util.FormatPercent(stats.Share(domain.InterruptionType(k)))))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderPeak() string {
	lines := []string{m.styles.Subtitle.Render("Peak")}
	slot := m.snap.Views.PeakStats
	switch {
	case !slot.Present:
		lines = append(lines, m.unavailable())
	case !slot.Value.HasPeak():
		lines = append(lines, m.styles.Muted.Render("none in range"))
	default:
		p := slot.Value
		lines = append(lines,
			m.styles.Bold.Render(util.FormatHour(*p.PeakHour)),
			m.styles.Muted.Render(fmt.Sprintf("%d of %d", p.PeakInterruptions, p.TotalInterruptions)),
		)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderSessions() string {
	lines := []string{m.styles.Subtitle.Render("Sessions")}
	slot := m.snap.Views.Sessions
	switch {
	case !slot.Present:
		lines = append(lines, m.unavailable())
	case len(slot.Value) == 0:
		lines = append(lines, m.styles.Muted.Render("No sessions yet. Press s to start one."))
	default:
		now := m.now()
		for i, s := range slot.Value {
			cursor := "  "
			if i == m.cursor {
				cursor = m.styles.Cursor.Render("> ")
			}
			state := m.styles.Muted.Render(fmt.Sprintf("%-8s", s.State()))
			if s.IsActive() {
				state = m.styles.Active.Render(fmt.Sprintf("%-8s", s.State()))
			}
			line := fmt.Sprintf("%-6d %s %s  %s",
				s.ID, state, util.FormatDateTime(s.StartTime, time.Local), util.FormatDuration(util.SessionDuration(s, now)))
			if m.snap.SelectedSessionID != nil && *m.snap.SelectedSessionID == s.ID {
				line = m.styles.Selected.Render(line)
			}
			lines = append(lines, cursor+line)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderInterruptions() string {
	lines := []string{m.styles.Subtitle.Render(fmt.Sprintf("Interruptions for session %d", *m.snap.SelectedSessionID))}
	slot := m.snap.Views.Interruptions
	switch {
	case !slot.Present:
		lines = append(lines, m.unavailable())
	case len(slot.Value) == 0:
		lines = append(lines, m.styles.Muted.Render("None recorded"))
	default:
		for _, i := range slot.Value {
			lines = append(lines, fmt.Sprintf("  %-12s %s-%s  %-8s %s",
				i.Type, util.FormatClock(i.StartTime, time.Local), util.FormatClock(i.EndTime, time.Local),
				util.FormatDuration(i.Duration), i.Description))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderPatterns() string {
	hours := []string{m.styles.Subtitle.Render("Productive hours")}
	if slot := m.snap.Views.HourStats; !slot.Present {
		hours = append(hours, m.unavailable())
	} else {
		for _, h := range slot.Value {
			hours = append(hours, fmt.Sprintf("%s  %-8s %d", util.FormatHour(h.Hour), util.FormatDuration(h.WorkSeconds), h.Interruptions))
		}
	}

	weekly := []string{m.styles.Subtitle.Render("Weekly pattern")}
	if slot := m.snap.Views.WeeklyStats; !slot.Present {
		weekly = append(weekly, m.unavailable())
	} else {
		for _, d := range slot.Value {
			weekly = append(weekly, fmt.Sprintf("%-10s %-8s %d", d.WeekdayName, util.FormatDuration(d.EffectiveTimeSeconds), d.Interruptions))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Card.Render(strings.Join(hours, "\n")),
		" ",
		m.styles.Card.Render(strings.Join(weekly, "\n")),
	)
}
