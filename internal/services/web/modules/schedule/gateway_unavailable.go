package schedule

import (
	"context"

	agendaschedule "github.com/callboard/callboard/internal/services/agenda/schedule"
	apperrors "github.com/callboard/callboard/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) LatestSchedule(context.Context) (agendaschedule.Schedule, error) {
	return agendaschedule.Schedule{}, apperrors.E(apperrors.KindUnavailable, "programme service is not configured")
}

func (unavailableGateway) ScheduleByVersion(context.Context, string) (agendaschedule.Schedule, error) {
	return agendaschedule.Schedule{}, apperrors.E(apperrors.KindUnavailable, "programme service is not configured")
}

func (unavailableGateway) ScheduleVersions(context.Context) ([]string, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "programme service is not configured")
}
