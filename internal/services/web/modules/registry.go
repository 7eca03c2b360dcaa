package modules

import (
	"github.com/callboard/callboard/internal/services/web/modules/changelog"
	"github.com/callboard/callboard/internal/services/web/modules/ingest"
	"github.com/callboard/callboard/internal/services/web/modules/schedule"
	"github.com/callboard/callboard/internal/services/web/platform/modulehandler"
)

// DefaultModules returns the stable web modules in mount order.
func DefaultModules(deps Dependencies) []Module {
	base := modulehandler.NewBase()
	return []Module{
		schedule.NewWithGateway(deps.Programme, deps.Exports, base),
		changelog.NewWithStore(deps.ChangeSets, base),
		ingest.NewWithStore(deps.ChangeSets, deps.IngestToken),
	}
}
