// Package ingest accepts published change sets from the programme service.
package ingest

import (
	"net/http"

	"github.com/callboard/callboard/internal/services/agenda/storage"
	module "github.com/callboard/callboard/internal/services/web/module"
	"github.com/callboard/callboard/internal/services/web/routepath"
)

// Module provides the authenticated change-set ingest API.
type Module struct {
	store storage.ChangeSetStore
	token string
}

// New returns an ingest module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithStore returns an ingest module guarded by the given bearer token.
func NewWithStore(store storage.ChangeSetStore, token string) Module {
	return Module{store: store, token: token}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "ingest" }

// Healthy reports whether the ingest module can accept change sets.
func (m Module) Healthy() bool {
	return m.store != nil && m.token != ""
}

// Mount wires ingest route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.store, m.token)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.APIChangeSets, Handler: mux}, nil
}
