package changelog

import (
	"net/http"

	"github.com/callboard/callboard/internal/services/web/platform/httpx"
	"github.com/callboard/callboard/internal/services/web/platform/modulehandler"
	webtemplates "github.com/callboard/callboard/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	sets, err := h.service.listFeed(httpx.RequestContext(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view, err := feedView(loc, lang, sets)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.changelog.title"), http.StatusOK, webtemplates.ChangelogFragment(view, loc))
}
