package templates

import (
	"sort"
	"strconv"
	"time"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
	"github.com/emiliopalmerini/hyperfocus/internal/util"
)

type statRow struct {
	label string
	value string
}

func summaryRows(s domain.StatsSummary) []statRow {
	return []statRow{
		{"Sessions", strconv.FormatInt(s.TotalSessions, 10)},
		{"Interruptions", strconv.FormatInt(s.TotalInterruptions, 10)},
		{"Time worked", util.FormatDuration(s.TotalTimeWorkedSeconds)},
		{"Time lost", util.FormatDuration(s.TotalTimeLostSeconds)},
		{"Effective time", util.FormatDuration(s.EffectiveTimeSeconds)},
		{"Avg interruption", util.FormatDuration(int64(s.AverageInterruptionDurationSeconds))},
		{"Interruptions/hour", util.FormatRate(s.InterruptionsPerHour)},
	}
}

func endTime(s domain.Session, loc *time.Location) string {
	if s.EndTime == nil {
		return "-"
	}
	return util.FormatDateTime(*s.EndTime, loc)
}

func sessionPath(id int64, action string) string {
	return "/sessions/" + strconv.FormatInt(id, 10) + "/" + action
}

// sortedByCount orders type keys by descending count, then name.
func sortedByCount(counts map[string]int64) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
