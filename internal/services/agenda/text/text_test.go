package text

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/message"

	"github.com/callboard/callboard/internal/services/agenda/schedule"
)

var ansiEscapes = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(value string) string {
	return ansiEscapes.ReplaceAllString(value, "")
}

func sampleSchedule() schedule.Schedule {
	base := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	return schedule.Schedule{
		Event:   "GopherConf",
		Version: "0.2",
		Days: []schedule.Day{{
			Start: base,
			Rooms: []schedule.Room{
				{Name: "Main Hall", Talks: []schedule.Talk{{
					Title:               "Intro to Generics",
					DisplaySpeakerNames: "Ada Lovelace",
					ContentLocale:       "en",
					Room:                "Main Hall",
					Start:               base,
					End:                 base.Add(30 * time.Minute),
				}}},
				{Name: "Workshop", Talks: []schedule.Talk{{
					Title:         "Lunch Break",
					Description:   "Lunch",
					ContentLocale: "en",
					Room:          "Workshop",
					Start:         base,
					End:           base.Add(30 * time.Minute),
				}}},
			},
		}},
	}
}

func TestListRendersTalksChronologically(t *testing.T) {
	t.Parallel()

	out := stripANSI(List(testLocalizer(), sampleSchedule()))
	if !strings.Contains(out, "2026-09-12") {
		t.Fatalf("out = %q, want day header", out)
	}
	if !strings.Contains(out, "* 10:00 Intro to Generics, Ada Lovelace (en); in Main Hall") {
		t.Fatalf("out = %q, want talk entry", out)
	}
}

func TestListFallsBackForMissingSpeakers(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	sched := schedule.Schedule{Days: []schedule.Day{{
		Start: base,
		Rooms: []schedule.Room{{Name: "Main Hall", Talks: []schedule.Talk{{
			Title:         "Anonymous Talk",
			ContentLocale: "en",
			Room:          "Main Hall",
			Start:         base,
			End:           base.Add(30 * time.Minute),
		}}}},
	}}}

	out := stripANSI(List(testLocalizer(), sched))
	if !strings.Contains(out, "Anonymous Talk, No speakers (en)") {
		t.Fatalf("out = %q, want no-speakers fallback", out)
	}
}

func TestTableDrawsAlignedGrid(t *testing.T) {
	t.Parallel()

	out := stripANSI(Table(testLocalizer(), sampleSchedule()))
	if !strings.Contains(out, "Main Hall") || !strings.Contains(out, "Workshop") {
		t.Fatalf("out = %q, want room headers", out)
	}
	// A 30-minute card has room for one title line, so the long title is
	// cut to the column width with an ellipsis.
	if !strings.Contains(out, "Intro to Generi…") {
		t.Fatalf("out = %q, want truncated talk title", out)
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "└") {
		t.Fatalf("out = %q, want box borders", out)
	}
	if !strings.Contains(out, "10:00 --") {
		t.Fatalf("out = %q, want half-hour tick", out)
	}

	var rowWidth int
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "        ") && !strings.HasPrefix(line, "10:") {
			continue
		}
		if strings.Contains(line, "|") {
			continue // header row is narrower than grid rows
		}
		width := len([]rune(line))
		if rowWidth == 0 {
			rowWidth = width
			continue
		}
		if width != rowWidth {
			t.Fatalf("row %q is %d cells, want %d", line, width, rowWidth)
		}
	}
	if rowWidth == 0 {
		t.Fatal("no grid rows rendered")
	}
}

func TestTableRendersPlaceholderForEmptyDay(t *testing.T) {
	t.Parallel()

	sched := schedule.Schedule{Days: []schedule.Day{{
		Start: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}}}
	out := stripANSI(Table(testLocalizer(), sched))
	if !strings.Contains(out, "No talks on this day.") {
		t.Fatalf("out = %q, want empty-day placeholder", out)
	}
}

func testLocalizer() Localizer {
	return fakeLocalizer{values: map[string]string{
		"agenda.text.no_speakers": "No speakers",
		"agenda.text.no_talks":    "No talks on this day.",
	}}
}

type fakeLocalizer struct {
	values map[string]string
}

func (f fakeLocalizer) Sprintf(key message.Reference, args ...any) string {
	asString, ok := key.(string)
	if !ok {
		return ""
	}
	template := f.values[asString]
	if template == "" {
		return asString
	}
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}
