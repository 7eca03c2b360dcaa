package templates

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/callboard/callboard/internal/services/agenda/render"
	"golang.org/x/text/message"
)

type fakeLocalizer struct{}

func (fakeLocalizer) Sprintf(key message.Reference, args ...any) string {
	keyString, _ := key.(string)
	if len(args) == 0 {
		return keyString
	}
	return fmt.Sprintf("%s:%v", keyString, args)
}

func TestLayoutWrapsBodyAndMarksActiveNav(t *testing.T) {
	t.Parallel()

	pc := PageContext{Lang: "de", Loc: fakeLocalizer{}, CurrentPath: "/changelog", Title: "Changes & more"}
	var b strings.Builder
	err := Layout(pc, ChangelogFragment(ChangelogPageView{}, fakeLocalizer{})).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("render layout: %v", err)
	}
	got := b.String()
	if !strings.Contains(got, `<html lang="de">`) {
		t.Fatalf("expected lang attribute, got %q", got)
	}
	if !strings.Contains(got, "Changes &amp; more · Callboard") {
		t.Fatalf("expected escaped page title, got %q", got)
	}
	if !strings.Contains(got, `<a href="/changelog" class="active">`) {
		t.Fatalf("expected active changelog link, got %q", got)
	}
	if !strings.Contains(got, `<a href="/schedule">`) {
		t.Fatalf("expected schedule link, got %q", got)
	}
	if !strings.Contains(got, "web.changelog.empty") {
		t.Fatalf("expected body inside layout, got %q", got)
	}
}

func TestChangelogFragmentRendersEntrySectionsVerbatim(t *testing.T) {
	t.Parallel()

	view := ChangelogPageView{Entries: []ChangelogEntryView{{
		Version:        "0.3",
		VersionURL:     "/schedule/v/0.3",
		PublishedLabel: "2026-03-14",
		Output: render.Output{
			Intro: render.Intro{Kind: render.IntroComment, HTML: "<p>We <em>moved</em> things.</p>"},
			Sections: []render.Section{
				{Kind: render.SectionNewTalks, Singular: true, LeadHTML: "We have a new session: “Intro”."},
				{Kind: render.SectionMovedTalks, LeadHTML: "We had to move some sessions around:",
					Items: []string{`<a href="/talk">Keynote</a> (10:00 → 11:00)`}},
			},
		},
	}}}

	var b strings.Builder
	if err := ChangelogFragment(view, fakeLocalizer{}).Render(context.Background(), &b); err != nil {
		t.Fatalf("render fragment: %v", err)
	}
	got := b.String()
	if !strings.Contains(got, "<p>We <em>moved</em> things.</p>") {
		t.Fatalf("expected comment HTML untouched, got %q", got)
	}
	if !strings.Contains(got, "<p>We have a new session: “Intro”.</p>") {
		t.Fatalf("expected singular sentence, got %q", got)
	}
	if !strings.Contains(got, `<li><a href="/talk">Keynote</a> (10:00 → 11:00)</li>`) {
		t.Fatalf("expected moved item, got %q", got)
	}
	if !strings.Contains(got, `<a href="/schedule/v/0.3">0.3</a>`) {
		t.Fatalf("expected version link, got %q", got)
	}
}

func TestChangelogFragmentWrapsPlaceholderIntro(t *testing.T) {
	t.Parallel()

	view := ChangelogPageView{Entries: []ChangelogEntryView{{
		Version: "0.4",
		Output:  render.Output{Intro: render.Intro{Kind: render.IntroNoChanges, HTML: "–"}},
	}}}
	var b strings.Builder
	if err := ChangelogFragment(view, fakeLocalizer{}).Render(context.Background(), &b); err != nil {
		t.Fatalf("render fragment: %v", err)
	}
	if !strings.Contains(b.String(), "<p>–</p>") {
		t.Fatalf("expected placeholder paragraph, got %q", b.String())
	}
}

func TestScheduleFragmentRendersRoomsAndExports(t *testing.T) {
	t.Parallel()

	view := SchedulePageView{
		Event:          "DevConf <2026>",
		Version:        "0.2",
		PublishedLabel: "2026-03-10",
		Days: []ScheduleDayView{{
			DateLabel: "Saturday, March 14",
			Rooms: []ScheduleRoomView{{
				Name: "Main Hall",
				Talks: []ScheduleTalkView{{
					Title:     "Opening <Keynote>",
					URL:       "/talks/opening",
					TimeLabel: "10:00",
					Speakers:  "Ada Lovelace",
					Locale:    "en",
				}},
			}},
		}},
		Versions: []ScheduleVersionOption{
			{Version: "0.2", Active: true},
			{Version: "0.1", URL: "/schedule/v/0.1"},
		},
		Exports: []ScheduleExportLink{{Label: "schedule.json", URL: "/schedule/export/schedule.json"}},
	}

	var b strings.Builder
	if err := ScheduleFragment(view, fakeLocalizer{}).Render(context.Background(), &b); err != nil {
		t.Fatalf("render fragment: %v", err)
	}
	got := b.String()
	if !strings.Contains(got, "DevConf &lt;2026&gt;") {
		t.Fatalf("expected escaped event name, got %q", got)
	}
	if !strings.Contains(got, "Opening &lt;Keynote&gt;") {
		t.Fatalf("expected escaped talk title, got %q", got)
	}
	if !strings.Contains(got, `<a href="/talks/opening">`) {
		t.Fatalf("expected talk link, got %q", got)
	}
	if !strings.Contains(got, "<strong>0.2</strong>") {
		t.Fatalf("expected active version without link, got %q", got)
	}
	if !strings.Contains(got, `<a href="/schedule/v/0.1">0.1</a>`) {
		t.Fatalf("expected older version link, got %q", got)
	}
	if !strings.Contains(got, `<a href="/schedule/export/schedule.json">schedule.json</a>`) {
		t.Fatalf("expected export link, got %q", got)
	}
}

func TestScheduleFragmentEmptyDayPlaceholder(t *testing.T) {
	t.Parallel()

	view := SchedulePageView{Days: []ScheduleDayView{{DateLabel: "Sunday", Rooms: []ScheduleRoomView{{Name: "Hall"}}}}}
	var b strings.Builder
	if err := ScheduleFragment(view, fakeLocalizer{}).Render(context.Background(), &b); err != nil {
		t.Fatalf("render fragment: %v", err)
	}
	if !strings.Contains(b.String(), "web.schedule.no_talks") {
		t.Fatalf("expected empty-day placeholder, got %q", b.String())
	}
}

func TestErrorStateDistinguishesNotFound(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := ErrorState(http.StatusNotFound, fakeLocalizer{}).Render(context.Background(), &b); err != nil {
		t.Fatalf("render error state: %v", err)
	}
	if !strings.Contains(b.String(), "web.error.title_not_found") {
		t.Fatalf("expected 404 heading key, got %q", b.String())
	}

	b.Reset()
	if err := ErrorState(http.StatusBadGateway, fakeLocalizer{}).Render(context.Background(), &b); err != nil {
		t.Fatalf("render error state: %v", err)
	}
	if !strings.Contains(b.String(), "web.error.title_server_error") {
		t.Fatalf("expected server-error heading key, got %q", b.String())
	}
}

func TestTFallsBackToKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "web.nav.schedule"); got != "web.nav.schedule" {
		t.Fatalf("T(nil) = %q", got)
	}
}
