package ingest

import (
	"net/http"

	"github.com/callboard/callboard/internal/services/web/platform/httpx"
	"github.com/callboard/callboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc("POST "+routepath.APIChangeSets, h.handleCreate)
	mux.Handle(routepath.APIChangeSets, httpx.MethodNotAllowed(http.MethodPost))
}
