package schedule

import (
	"net/http"

	"github.com/callboard/callboard/internal/services/web/platform/httpx"
	"github.com/callboard/callboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Schedule, h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.Schedule, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(http.MethodGet+" "+routepath.ScheduleVersionPattern, h.handleVersionRoute)
	mux.HandleFunc(http.MethodGet+" "+routepath.ScheduleExportPattern, h.handleExportRoute)
	mux.HandleFunc(http.MethodGet+" "+routepath.SchedulePrefix+"{rest...}", h.WriteNotFound)
}
