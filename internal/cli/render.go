package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/emiliopalmerini/hyperfocus/internal/controller"
	"github.com/emiliopalmerini/hyperfocus/internal/domain"
	"github.com/emiliopalmerini/hyperfocus/internal/util"
)

const unavailable = "  (unavailable)"

// renderDashboard prints every view of snap as plain text sections.
func renderDashboard(w io.Writer, snap controller.Snapshot, now time.Time) {
	fmt.Fprintf(w, "User %s, %s\n\n", snap.UserID, snap.Range.Label())
	renderSummary(w, snap.Views)
	renderSessions(w, snap, now)
	renderTypeStats(w, snap.Views)
	renderHourStats(w, snap.Views)
	renderWeeklyStats(w, snap.Views)
	renderPeak(w, snap.Views)
	if snap.SelectedSessionID != nil {
		renderInterruptions(w, snap)
	}
	renderError(w, snap)
}

func renderError(w io.Writer, snap controller.Snapshot) {
	if snap.Error != "" {
		fmt.Fprintf(w, "\nerror: %s\n", snap.Error)
	}
}

func renderSummary(w io.Writer, views controller.ViewStore) {
	fmt.Fprintln(w, "Summary")
	if !views.Summary.Present {
		fmt.Fprintln(w, unavailable)
		fmt.Fprintln(w)
		return
	}
	s := views.Summary.Value
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Sessions\t%d\n", s.TotalSessions)
	fmt.Fprintf(tw, "  Interruptions\t%d\n", s.TotalInterruptions)
	fmt.Fprintf(tw, "  Time worked\t%s\n", util.FormatDuration(s.TotalTimeWorkedSeconds))
	fmt.Fprintf(tw, "  Time lost\t%s\n", util.FormatDuration(s.TotalTimeLostSeconds))
	fmt.Fprintf(tw, "  Effective time\t%s\n", util.FormatDuration(s.EffectiveTimeSeconds))
	fmt.Fprintf(tw, "  Avg interruption\t%s\n", util.FormatDuration(int64(s.AverageInterruptionDurationSeconds)))
	fmt.Fprintf(tw, "  Interruptions/hour\t%s\n", util.FormatRate(s.InterruptionsPerHour))
	tw.Flush()
	fmt.Fprintln(w)
}

func renderSessions(w io.Writer, snap controller.Snapshot, now time.Time) {
	fmt.Fprintln(w, "Sessions")
	if !snap.Views.Sessions.Present {
		fmt.Fprintln(w, unavailable)
		fmt.Fprintln(w)
		return
	}
	if len(snap.Views.Sessions.Value) == 0 {
		fmt.Fprintln(w, "  No sessions yet")
		fmt.Fprintln(w)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "   ID\tSTATE\tSTART\tEND\tDURATION")
	for _, s := range snap.Views.Sessions.Value {
		marker := " "
		if snap.SelectedSessionID != nil && *snap.SelectedSessionID == s.ID {
			marker = "*"
		}
		end := "-"
		if s.EndTime != nil {
			end = util.FormatDateTime(*s.EndTime, time.Local)
		}
		fmt.Fprintf(tw, " %s %d\t%s\t%s\t%s\t%s\n",
			marker, s.ID, s.State(),
			util.FormatDateTime(s.StartTime, time.Local), end,
			util.FormatDuration(util.SessionDuration(s, now)))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func renderTypeStats(w io.Writer, views controller.ViewStore) {
	fmt.Fprintln(w, "Interruption types")
	if !views.TypeStats.Present {
		fmt.Fprintln(w, unavailable)
		fmt.Fprintln(w)
		return
	}
	stats := views.TypeStats.Value
	if stats.TotalInterruptions == 0 {
		fmt.Fprintln(w, "  No interruptions in range")
		fmt.Fprintln(w)
		return
	}

	keys := make([]string, 0, len(stats.Counts))
	for k := range stats.Counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if stats.Counts[keys[i]] != stats.Counts[keys[j]] {
			return stats.Counts[keys[i]] > stats.Counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "  %s\t%d\t%s\n", k, stats.Counts[k], util.FormatPercent(stats.Share(domain.InterruptionType(k))))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func renderHourStats(w io.Writer, views controller.ViewStore) {
	fmt.Fprintln(w, "Productive hours")
	if !views.HourStats.Present {
		fmt.Fprintln(w, unavailable)
		fmt.Fprintln(w)
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, h := range views.HourStats.Value {
		fmt.Fprintf(tw, "  %s\t%s worked\t%d interruptions\t%s/h\n",
			util.FormatHour(h.Hour), util.FormatDuration(h.WorkSeconds), h.Interruptions, util.FormatRate(h.InterruptionsPerHour))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func renderWeeklyStats(w io.Writer, views controller.ViewStore) {
	fmt.Fprintln(w, "Weekly pattern")
	if !views.WeeklyStats.Present {
		fmt.Fprintln(w, unavailable)
		fmt.Fprintln(w)
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, d := range views.WeeklyStats.Value {
		fmt.Fprintf(tw, "  %s\t%s worked\t%s lost\t%s effective\t%d interruptions\n",
			d.WeekdayName, util.FormatDuration(d.WorkSeconds), util.FormatDuration(d.TimeLostSeconds),
			util.FormatDuration(d.EffectiveTimeSeconds), d.Interruptions)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func renderPeak(w io.Writer, views controller.ViewStore) {
	fmt.Fprintln(w, "Peak distraction")
	switch {
	case !views.PeakStats.Present:
		fmt.Fprintln(w, unavailable)
	case !views.PeakStats.Value.HasPeak():
		fmt.Fprintln(w, "  No interruptions in range")
	default:
		p := views.PeakStats.Value
		fmt.Fprintf(w, "  %s (%d of %d interruptions)\n", util.FormatHour(*p.PeakHour), p.PeakInterruptions, p.TotalInterruptions)
	}
	fmt.Fprintln(w)
}

func renderInterruptions(w io.Writer, snap controller.Snapshot) {
	fmt.Fprintf(w, "Interruptions for session %d\n", *snap.SelectedSessionID)
	if !snap.Views.Interruptions.Present {
		fmt.Fprintln(w, unavailable)
		return
	}
	if len(snap.Views.Interruptions.Value) == 0 {
		fmt.Fprintln(w, "  None recorded")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  TYPE\tSTART\tEND\tDURATION\tDESCRIPTION")
	for _, i := range snap.Views.Interruptions.Value {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n",
			i.Type, util.FormatClock(i.StartTime, time.Local), util.FormatClock(i.EndTime, time.Local),
			util.FormatDuration(i.Duration), i.Description)
	}
	tw.Flush()
}
