// Package changelog serves the public schedule-changes feed.
package changelog

import (
	"net/http"

	"github.com/callboard/callboard/internal/services/agenda/storage"
	module "github.com/callboard/callboard/internal/services/web/module"
	"github.com/callboard/callboard/internal/services/web/platform/modulehandler"
	"github.com/callboard/callboard/internal/services/web/routepath"
)

// Module provides the changelog feed routes.
type Module struct {
	store storage.ChangeSetStore
	base  modulehandler.Base
}

// New returns a changelog module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithStore returns a changelog module backed by a change-set store.
func NewWithStore(store storage.ChangeSetStore, base modulehandler.Base) Module {
	return Module{store: store, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "changelog" }

// Healthy reports whether the changelog module has an operational store.
func (m Module) Healthy() bool {
	return m.store != nil
}

// Mount wires changelog route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.store)
	h := newHandlers(svc, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Changelog, Handler: mux}, nil
}
