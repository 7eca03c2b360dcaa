// Package modulehandler provides a composable base for web module handlers.
//
// Modules share common handler infrastructure for localization, page
// rendering, and error handling. This package extracts that scaffold so
// modules embed it rather than duplicating it.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/callboard/callboard/internal/services/web/i18nhttp"
	apperrors "github.com/callboard/callboard/internal/services/web/platform/errors"
	"github.com/callboard/callboard/internal/services/web/platform/httpx"
	webtemplates "github.com/callboard/callboard/internal/services/web/templates"
)

// Base carries the shared rendering helpers used by module handlers.
// Embed this in module handler structs to get standard localization,
// page rendering, and error writing without duplicating boilerplate.
type Base struct{}

// NewBase builds a handler base.
func NewBase() Base {
	return Base{}
}

// PageLocalizer resolves a localizer and language for the request, persisting
// explicit lang selections as a cookie.
func (Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	printer, tag := i18nhttp.ResolveLocalizer(w, r)
	return printer, tag.String()
}

// WritePage renders a full module page with the given title and content fragment.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	loc, lang := b.PageLocalizer(w, r)
	pc := webtemplates.PageContext{
		Lang:        lang,
		Loc:         loc,
		CurrentPath: requestPath(r),
		Title:       title,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := webtemplates.Layout(pc, fragment).Render(httpx.RequestContext(r), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	b.writeErrorPage(w, r, statusCode)
}

// WriteNotFound renders a 404 error page within the page shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	b.writeErrorPage(w, r, http.StatusNotFound)
}

func (b Base) writeErrorPage(w http.ResponseWriter, r *http.Request, statusCode int) {
	loc, lang := b.PageLocalizer(w, r)
	pc := webtemplates.PageContext{
		Lang:        lang,
		Loc:         loc,
		CurrentPath: requestPath(r),
		Title:       webtemplates.ErrorPageTitle(statusCode, loc),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := webtemplates.Layout(pc, webtemplates.ErrorState(statusCode, loc)).Render(httpx.RequestContext(r), w); err != nil {
		http.Error(w, err.Error(), statusCode)
	}
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
