package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// ScheduleTalkView carries one talk row on the schedule page.
type ScheduleTalkView struct {
	Title     string
	URL       string
	TimeLabel string
	Speakers  string
	Locale    string
}

// ScheduleRoomView groups talks under a room column.
type ScheduleRoomView struct {
	Name  string
	Talks []ScheduleTalkView
}

// ScheduleDayView carries one conference day.
type ScheduleDayView struct {
	DateLabel string
	Rooms     []ScheduleRoomView
}

// ScheduleVersionOption is one entry of the version picker.
type ScheduleVersionOption struct {
	Version string
	URL     string
	Active  bool
}

// ScheduleExportLink is one download link.
type ScheduleExportLink struct {
	Label string
	URL   string
}

// SchedulePageView carries the rendered schedule page.
type SchedulePageView struct {
	Event          string
	Version        string
	PublishedLabel string
	Days           []ScheduleDayView
	Versions       []ScheduleVersionOption
	Exports        []ScheduleExportLink
}

// ScheduleFragment renders the schedule page body.
func ScheduleFragment(view SchedulePageView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="schedule"><h1>%s</h1>`,
			html.EscapeString(view.Event)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<p class="schedule-version">%s</p>`,
			html.EscapeString(T(loc, "web.schedule.version_label", view.Version, view.PublishedLabel))); err != nil {
			return err
		}
		if err := writeVersionPicker(w, view.Versions, loc); err != nil {
			return err
		}
		for _, day := range view.Days {
			if err := writeScheduleDay(w, day, loc); err != nil {
				return err
			}
		}
		if err := writeExportLinks(w, view.Exports, loc); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func writeVersionPicker(w io.Writer, versions []ScheduleVersionOption, loc Localizer) error {
	if len(versions) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, `<nav class="schedule-versions"><span>%s</span>`,
		html.EscapeString(T(loc, "web.schedule.versions"))); err != nil {
		return err
	}
	for _, option := range versions {
		if option.Active {
			if _, err := fmt.Fprintf(w, `<strong>%s</strong>`, html.EscapeString(option.Version)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, `<a href=%q>%s</a>`, option.URL, html.EscapeString(option.Version)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</nav>`)
	return err
}

func writeScheduleDay(w io.Writer, day ScheduleDayView, loc Localizer) error {
	if _, err := fmt.Fprintf(w, `<section class="schedule-day"><h2>%s</h2>`,
		html.EscapeString(day.DateLabel)); err != nil {
		return err
	}
	empty := true
	for _, room := range day.Rooms {
		if len(room.Talks) == 0 {
			continue
		}
		empty = false
		if _, err := fmt.Fprintf(w, `<section class="schedule-room"><h3>%s</h3><ul>`,
			html.EscapeString(room.Name)); err != nil {
			return err
		}
		for _, talk := range room.Talks {
			if err := writeScheduleTalk(w, talk); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul></section>`); err != nil {
			return err
		}
	}
	if empty {
		if _, err := fmt.Fprintf(w, `<p class="empty">%s</p>`,
			html.EscapeString(T(loc, "web.schedule.no_talks"))); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</section>`)
	return err
}

func writeScheduleTalk(w io.Writer, talk ScheduleTalkView) error {
	title := html.EscapeString(talk.Title)
	if talk.URL != "" {
		title = fmt.Sprintf(`<a href=%q>%s</a>`, talk.URL, title)
	}
	if _, err := fmt.Fprintf(w, `<li><time>%s</time> %s`,
		html.EscapeString(talk.TimeLabel), title); err != nil {
		return err
	}
	if talk.Speakers != "" {
		if _, err := fmt.Fprintf(w, ` <span class="speakers">%s</span>`,
			html.EscapeString(talk.Speakers)); err != nil {
			return err
		}
	}
	if talk.Locale != "" {
		if _, err := fmt.Fprintf(w, ` <span class="locale">%s</span>`,
			html.EscapeString(talk.Locale)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</li>`)
	return err
}

func writeExportLinks(w io.Writer, exports []ScheduleExportLink, loc Localizer) error {
	if len(exports) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, `<nav class="schedule-exports"><span>%s</span>`,
		html.EscapeString(T(loc, "web.schedule.exports"))); err != nil {
		return err
	}
	for _, export := range exports {
		if _, err := fmt.Fprintf(w, `<a href=%q>%s</a>`, export.URL, html.EscapeString(export.Label)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</nav>`)
	return err
}
