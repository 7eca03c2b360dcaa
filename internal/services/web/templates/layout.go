// Package templates renders web page components.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"github.com/callboard/callboard/internal/platform/branding"
	"github.com/callboard/callboard/internal/services/web/routepath"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	CurrentPath string
	Title       string
}

func (pc PageContext) pageTitle() string {
	if pc.Title == "" {
		return branding.AppName
	}
	return pc.Title + " · " + branding.AppName
}

type navLink struct {
	href string
	key  string
}

var navLinks = []navLink{
	{routepath.Schedule, "web.nav.schedule"},
	{routepath.Changelog, "web.nav.changelog"},
}

// Layout wraps a body component in the shared page shell.
func Layout(pc PageContext, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := pc.Lang
		if lang == "" {
			lang = "en-US"
		}
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang=%q><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="/static/app.css"></head><body><header class="site"><h1>%s</h1><nav class="site">`,
			lang, html.EscapeString(pc.pageTitle()), html.EscapeString(branding.AppName),
		); err != nil {
			return err
		}
		for _, link := range navLinks {
			class := ""
			if link.href == pc.CurrentPath {
				class = ` class="active"`
			}
			if _, err := fmt.Fprintf(w, `<a href=%q%s>%s</a>`,
				link.href, class, html.EscapeString(T(pc.Loc, link.key))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</nav></header><main>`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
