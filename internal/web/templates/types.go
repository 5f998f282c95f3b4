package templates

import (
	"time"

	"github.com/emiliopalmerini/hyperfocus/internal/controller"
	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

// DashboardData is everything the dashboard page renders.
type DashboardData struct {
	Snapshot controller.Snapshot
	Now      time.Time
	Location *time.Location
}

func (d DashboardData) loc() *time.Location {
	if d.Location == nil {
		return time.Local
	}
	return d.Location
}

func (d DashboardData) selected(id int64) bool {
	return d.Snapshot.SelectedSessionID != nil && *d.Snapshot.SelectedSessionID == id
}

func (d DashboardData) hasUser() bool {
	return d.Snapshot.UserID != ""
}

func rangeOptions() []domain.Range {
	return domain.Ranges()
}

func typeOptions() []domain.InterruptionType {
	return domain.InterruptionTypes()
}
