// Package modules defines web module registry helpers.
package modules

import (
	"github.com/callboard/callboard/internal/services/agenda/export"
	"github.com/callboard/callboard/internal/services/agenda/storage"
	module "github.com/callboard/callboard/internal/services/web/module"
	"github.com/callboard/callboard/internal/services/web/modules/schedule"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the store, gateway and shared config required to
// compose the web module registry. Each field is typed as the narrow
// interface defined by the consuming module, so modules physically cannot
// access collaborators they were not given.
type Dependencies struct {
	// ChangeSets persists and serves the published changelog feed.
	ChangeSets storage.ChangeSetStore

	// Programme serves schedule content from the upstream programme service.
	Programme schedule.ScheduleGateway

	// Exports lists the schedule export formats offered over HTTP. When nil
	// the default registry is used.
	Exports *export.Registry

	// IngestToken authenticates the programme service on the ingest API.
	IngestToken string
}
