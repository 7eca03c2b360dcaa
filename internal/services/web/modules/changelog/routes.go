package changelog

import (
	"net/http"

	"github.com/callboard/callboard/internal/services/web/platform/httpx"
	"github.com/callboard/callboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Changelog, h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.Changelog, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(http.MethodGet+" "+routepath.ChangelogPrefix+"{rest...}", h.WriteNotFound)
}
