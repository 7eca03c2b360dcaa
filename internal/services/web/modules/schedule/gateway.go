// Package schedule serves the public agenda pages, text renderings, and
// machine-readable exports.
package schedule

import (
	"context"

	agendaschedule "github.com/callboard/callboard/internal/services/agenda/schedule"
)

// ScheduleGateway loads published schedules from the upstream programme
// service. Schedule content is fetched per request and never persisted.
type ScheduleGateway interface {
	LatestSchedule(ctx context.Context) (agendaschedule.Schedule, error)
	ScheduleByVersion(ctx context.Context, version string) (agendaschedule.Schedule, error)
	ScheduleVersions(ctx context.Context) ([]string, error)
}
