package controller

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

// View names one slot of the ViewStore.
type View string

const (
	ViewSummary       View = "summary"
	ViewSessions      View = "sessions"
	ViewTypeStats     View = "type_stats"
	ViewHourStats     View = "hour_stats"
	ViewWeeklyStats   View = "weekly_stats"
	ViewPeakStats     View = "peak_stats"
	ViewInterruptions View = "interruptions"
)

// RangeViews returns the six views scoped by (user, range), in display order.
func RangeViews() []View {
	return []View{
		ViewSummary,
		ViewSessions,
		ViewTypeStats,
		ViewHourStats,
		ViewWeeklyStats,
		ViewPeakStats,
	}
}

const (
	pathUsers         = "/users/"
	pathStartSession  = "/sessions/start"
	pathInterruptions = "/interruptions/"
)

func viewPath(v View, userID string) string {
	user := url.PathEscape(userID)
	switch v {
	case ViewSummary:
		return "/users/" + user + "/stats/summary"
	case ViewSessions:
		return "/sessions/user/" + user
	case ViewTypeStats:
		return "/users/" + user + "/stats/interruption-types"
	case ViewHourStats:
		return "/users/" + user + "/stats/productive-hours"
	case ViewWeeklyStats:
		return "/users/" + user + "/stats/weekly-pattern"
	case ViewPeakStats:
		return "/users/" + user + "/stats/peak-distraction-time"
	default:
		panic(fmt.Sprintf("controller: view %q has no range path", v))
	}
}

// viewQuery returns the range query for aggregate views. The sessions list is unscoped.
func viewQuery(v View, rng domain.Range) url.Values {
	if v == ViewSessions {
		return nil
	}
	return url.Values{"range": {string(rng)}}
}

func sessionInterruptionsPath(sessionID int64) string {
	return "/interruptions/session/" + strconv.FormatInt(sessionID, 10)
}

func endSessionPath(sessionID int64) string {
	return "/sessions/" + strconv.FormatInt(sessionID, 10) + "/end"
}
