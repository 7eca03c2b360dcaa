package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"github.com/callboard/callboard/internal/services/agenda/render"
)

// ChangelogEntryView carries one rendered change set for the feed page.
type ChangelogEntryView struct {
	Version        string
	VersionURL     string
	PublishedLabel string
	Output         render.Output
}

// ChangelogPageView carries the full changelog feed, newest entry first.
type ChangelogPageView struct {
	Entries []ChangelogEntryView
}

// ChangelogFragment renders the changelog feed body.
func ChangelogFragment(view ChangelogPageView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="changelog"><h1>%s</h1>`,
			html.EscapeString(T(loc, "web.changelog.title"))); err != nil {
			return err
		}
		if len(view.Entries) == 0 {
			if _, err := fmt.Fprintf(w, `<p class="empty">%s</p></section>`,
				html.EscapeString(T(loc, "web.changelog.empty"))); err != nil {
				return err
			}
			return nil
		}
		for _, entry := range view.Entries {
			if err := writeChangelogEntry(w, entry); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func writeChangelogEntry(w io.Writer, entry ChangelogEntryView) error {
	if _, err := fmt.Fprintf(w,
		`<article class="changelog-entry"><h2><a href=%q>%s</a></h2><time>%s</time>`,
		entry.VersionURL,
		html.EscapeString(entry.Version),
		html.EscapeString(entry.PublishedLabel),
	); err != nil {
		return err
	}
	if err := writeChangeSet(w, entry.Output); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</article>`)
	return err
}

// writeChangeSet emits the renderer output. Intro and section strings are
// already HTML; they must not be escaped again.
func writeChangeSet(w io.Writer, out render.Output) error {
	switch out.Intro.Kind {
	case render.IntroComment:
		if _, err := io.WriteString(w, out.Intro.HTML); err != nil {
			return err
		}
	case render.IntroFirstSchedule, render.IntroNoChanges:
		if _, err := fmt.Fprintf(w, `<p>%s</p>`, out.Intro.HTML); err != nil {
			return err
		}
	}
	for _, section := range out.Sections {
		if section.Singular {
			if _, err := fmt.Fprintf(w, `<p>%s</p>`, section.LeadHTML); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, `<p>%s</p><ul>`, section.LeadHTML); err != nil {
			return err
		}
		for _, item := range section.Items {
			if _, err := fmt.Fprintf(w, `<li>%s</li>`, item); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul>`); err != nil {
			return err
		}
	}
	return nil
}
