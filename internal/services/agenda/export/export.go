// Package export provides pluggable schedule exporters for machine-readable
// agenda downloads.
package export

import (
	"strings"

	"github.com/callboard/callboard/internal/services/agenda/schedule"
)

// Exporter renders one machine-readable representation of a schedule.
type Exporter interface {
	// Identifier is the stable name used in export URLs.
	Identifier() string
	// Public reports whether unauthenticated visitors may use the exporter.
	Public() bool
	// CORS returns the Access-Control-Allow-Origin value, or "" for none.
	CORS() string
	// Render produces the export artifact.
	Render(sched schedule.Schedule) (fileName string, contentType string, data []byte, err error)
}

// Registry holds the configured exporters in registration order.
type Registry struct {
	exporters []Exporter
}

// NewRegistry builds a registry from the given exporters.
func NewRegistry(exporters ...Exporter) *Registry {
	return &Registry{exporters: exporters}
}

// DefaultRegistry returns the built-in JSON and XML exporters.
func DefaultRegistry() *Registry {
	return NewRegistry(JSONExporter{}, XMLExporter{})
}

// Find resolves an exporter by identifier. A legacy "export." prefix on the
// identifier is accepted and stripped.
func (r *Registry) Find(identifier string) (Exporter, bool) {
	identifier = strings.TrimSpace(identifier)
	identifier = strings.TrimPrefix(identifier, "export.")
	if r == nil || identifier == "" {
		return nil, false
	}
	for _, exporter := range r.exporters {
		if exporter.Identifier() == identifier {
			return exporter, true
		}
	}
	return nil, false
}

// All returns the exporters in registration order.
func (r *Registry) All() []Exporter {
	if r == nil {
		return nil
	}
	return append([]Exporter(nil), r.exporters...)
}
