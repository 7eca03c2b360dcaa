package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, "web.error.page_title_not_found")
	}
	return T(loc, "web.error.page_title_server_error")
}

// ErrorState renders the error body shown inside the page shell.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		heading := T(loc, "web.error.title_server_error")
		detail := T(loc, "web.error.message_server_error")
		if normalizeErrorStatus(statusCode) == http.StatusNotFound {
			heading = T(loc, "web.error.title_not_found")
			detail = T(loc, "web.error.message_not_found")
		}
		_, err := fmt.Fprintf(w, `<section class="error-state"><h1>%s</h1><p>%s</p></section>`,
			html.EscapeString(heading), html.EscapeString(detail))
		return err
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
