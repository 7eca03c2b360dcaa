package schedule

import (
	"context"
	"strings"

	"github.com/callboard/callboard/internal/services/agenda/export"
	agendaschedule "github.com/callboard/callboard/internal/services/agenda/schedule"
	apperrors "github.com/callboard/callboard/internal/services/web/platform/errors"
)

type service struct {
	gateway ScheduleGateway
	exports *export.Registry
}

func newService(gateway ScheduleGateway, exports *export.Registry) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if exports == nil {
		exports = export.DefaultRegistry()
	}
	return service{gateway: gateway, exports: exports}
}

func (s service) latest(ctx context.Context) (agendaschedule.Schedule, error) {
	return s.gateway.LatestSchedule(ctx)
}

func (s service) byVersion(ctx context.Context, version string) (agendaschedule.Schedule, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return agendaschedule.Schedule{}, apperrors.E(apperrors.KindNotFound, "schedule version not found")
	}
	return s.gateway.ScheduleByVersion(ctx, version)
}

// versions returns the published version identifiers for the picker. A
// failure here degrades the picker instead of the page.
func (s service) versions(ctx context.Context) []string {
	versions, err := s.gateway.ScheduleVersions(ctx)
	if err != nil {
		return nil
	}
	return versions
}

// exportArtifact renders one export of the latest schedule.
func (s service) exportArtifact(ctx context.Context, name string) (export.Exporter, agendaschedule.Schedule, error) {
	exporter, ok := s.exports.Find(name)
	if !ok || !exporter.Public() {
		return nil, agendaschedule.Schedule{}, apperrors.E(apperrors.KindNotFound, "exporter not found")
	}
	sched, err := s.latest(ctx)
	if err != nil {
		return nil, agendaschedule.Schedule{}, err
	}
	return exporter, sched, nil
}
