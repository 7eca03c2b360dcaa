package changelog

import (
	"strings"

	agendalog "github.com/callboard/callboard/internal/services/agenda/changelog"
	"github.com/callboard/callboard/internal/services/agenda/render"
	"github.com/callboard/callboard/internal/services/agenda/richtext"
	"github.com/callboard/callboard/internal/services/web/routepath"
	webtemplates "github.com/callboard/callboard/internal/services/web/templates"
)

const publishedAtLayout = "2006-01-02 15:04"

// renderOptionsForLang picks locale-typographic quote glyphs for the renderer.
func renderOptionsForLang(lang string) render.Options {
	opts := render.Options{RichText: richtext.Renderer{}}
	if strings.HasPrefix(lang, "de") {
		opts.OpenQuote = "„"
		opts.CloseQuote = "“"
	}
	return opts
}

func feedEntryView(loc webtemplates.Localizer, lang string, set agendalog.ChangeSet) (webtemplates.ChangelogEntryView, error) {
	out, err := render.Render(asRenderLocalizer(loc), renderOptionsForLang(lang), set)
	if err != nil {
		return webtemplates.ChangelogEntryView{}, err
	}
	entry := webtemplates.ChangelogEntryView{
		Version:    set.Version,
		VersionURL: routepath.ScheduleVersion(set.Version),
		Output:     out,
	}
	if !set.PublishedAt.IsZero() {
		entry.PublishedLabel = set.PublishedAt.Format(publishedAtLayout)
	}
	return entry, nil
}

func feedView(loc webtemplates.Localizer, lang string, sets []agendalog.ChangeSet) (webtemplates.ChangelogPageView, error) {
	view := webtemplates.ChangelogPageView{Entries: make([]webtemplates.ChangelogEntryView, 0, len(sets))}
	for _, set := range sets {
		entry, err := feedEntryView(loc, lang, set)
		if err != nil {
			return webtemplates.ChangelogPageView{}, err
		}
		view.Entries = append(view.Entries, entry)
	}
	return view, nil
}

// asRenderLocalizer adapts the web Localizer to the renderer contract.
// Both name Sprintf with the same signature, so a nil-safe pass-through suffices.
func asRenderLocalizer(loc webtemplates.Localizer) render.Localizer {
	if loc == nil {
		return nil
	}
	return loc
}
