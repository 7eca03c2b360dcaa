package schedule

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	agendaschedule "github.com/callboard/callboard/internal/services/agenda/schedule"
	agendatext "github.com/callboard/callboard/internal/services/agenda/text"
	apperrors "github.com/callboard/callboard/internal/services/web/platform/errors"
	"github.com/callboard/callboard/internal/services/web/platform/httpx"
	"github.com/callboard/callboard/internal/services/web/platform/modulehandler"
	"github.com/callboard/callboard/internal/services/web/routepath"
	webtemplates "github.com/callboard/callboard/internal/services/web/templates"
)

const (
	formatList  = "list"
	formatTable = "table"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	// Old-style ?version= links redirect permanently to the canonical path.
	if version := strings.TrimSpace(r.URL.Query().Get(routepath.VersionQueryKey)); version != "" {
		http.Redirect(w, r, routepath.ScheduleVersion(version), http.StatusMovedPermanently)
		return
	}
	// Browsers list application/xml in their default Accept header, so an
	// HTML preference always wins over export negotiation.
	if !acceptsHTML(r) {
		if target, ok := negotiatedExportPath(r); ok {
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
	}

	ctx := httpx.RequestContext(r)
	sched, err := h.service.latest(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if h.writeTextFormat(w, r, sched) {
		return
	}
	h.writeSchedulePage(w, r, sched)
}

func (h handlers) handleVersionRoute(w http.ResponseWriter, r *http.Request) {
	version := strings.TrimSpace(r.PathValue("version"))
	if version == "" {
		h.WriteNotFound(w, r)
		return
	}
	sched, err := h.service.byVersion(httpx.RequestContext(r), version)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if h.writeTextFormat(w, r, sched) {
		return
	}
	h.writeSchedulePage(w, r, sched)
}

func (h handlers) handleExportRoute(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		h.WriteNotFound(w, r)
		return
	}
	exporter, sched, err := h.service.exportArtifact(httpx.RequestContext(r), name)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	fileName, contentType, data, err := exporter.Render(sched)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	sum := sha1.Sum(data)
	etag := `"` + hex.EncodeToString(sum[:]) + `"`
	if cors := exporter.CORS(); cors != "" {
		w.Header().Set("Access-Control-Allow-Origin", cors)
		w.Header().Set("Access-Control-Allow-Headers", "authorization,content-type")
	}
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", contentType)
	// Machine-readable payloads render inline; everything else downloads.
	if contentType != "application/json" && contentType != "text/xml" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// writeTextFormat renders the schedule as terminal text when requested via
// ?format=list or ?format=table, or when the client does not negotiate an
// HTML page (curl and friends). It reports whether it handled the request.
func (h handlers) writeTextFormat(w http.ResponseWriter, r *http.Request, sched agendaschedule.Schedule) bool {
	format := strings.TrimSpace(r.URL.Query().Get(routepath.FormatQueryKey))
	if format == "" {
		if acceptsHTML(r) {
			return false
		}
		format = formatTable
	}
	loc, _ := h.PageLocalizer(w, r)
	switch format {
	case formatList:
		_ = httpx.WriteText(w, http.StatusOK, agendatext.List(loc, sched))
	case formatTable:
		_ = httpx.WriteText(w, http.StatusOK, agendatext.Table(loc, sched))
	default:
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, fmt.Sprintf("unknown schedule format %q", format)))
	}
	return true
}

func (h handlers) writeSchedulePage(w http.ResponseWriter, r *http.Request, sched agendaschedule.Schedule) {
	loc, _ := h.PageLocalizer(w, r)
	versions := h.service.versions(httpx.RequestContext(r))
	view := scheduleView(sched, versions, h.service.exports)
	title := sched.Event
	if title == "" {
		title = webtemplates.T(loc, "web.nav.schedule")
	}
	h.WritePage(w, r, title, http.StatusOK, webtemplates.ScheduleFragment(view, loc))
}

// acceptsHTML reports whether the client negotiates an HTML page. Clients
// sending only */*, text/plain, or no Accept header at all get the terminal
// text rendering instead.
func acceptsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	for _, part := range strings.Split(accept, ",") {
		switch strings.TrimSpace(strings.SplitN(part, ";", 2)[0]) {
		case "text/html", "application/xhtml+xml":
			return true
		}
	}
	return false
}

// negotiatedExportPath maps machine-readable Accept headers to export routes.
func negotiatedExportPath(r *http.Request) (string, bool) {
	accept := r.Header.Get("Accept")
	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		switch mediaType {
		case "application/json":
			return routepath.ScheduleExport("schedule.json"), true
		case "application/xml", "text/xml":
			return routepath.ScheduleExport("schedule.xml"), true
		}
	}
	return "", false
}
