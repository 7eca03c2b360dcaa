package schedule

import (
	"net/http"

	"github.com/callboard/callboard/internal/services/agenda/export"
	module "github.com/callboard/callboard/internal/services/web/module"
	"github.com/callboard/callboard/internal/services/web/platform/modulehandler"
	"github.com/callboard/callboard/internal/services/web/routepath"
)

// Module provides the public schedule routes.
type Module struct {
	gateway ScheduleGateway
	exports *export.Registry
	base    modulehandler.Base
}

// New returns a schedule module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a schedule module with explicit dependencies.
func NewWithGateway(gateway ScheduleGateway, exports *export.Registry, base modulehandler.Base) Module {
	return Module{gateway: gateway, exports: exports, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "schedule" }

// Healthy reports whether the schedule module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires schedule route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway, m.exports)
	h := newHandlers(svc, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Schedule, Handler: mux}, nil
}
