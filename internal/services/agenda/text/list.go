package text

import (
	"strings"

	"github.com/callboard/callboard/internal/services/agenda/schedule"
)

// List renders the schedule as a chronological per-day talk list.
func List(loc Localizer, sched schedule.Schedule) string {
	var b strings.Builder
	for _, day := range sched.Days {
		talks := day.Talks()
		if len(talks) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(dateStyle.Render(day.Start.Format("2006-01-02")))
		b.WriteString("\n")
		for _, talk := range talks {
			b.WriteString("* ")
			b.WriteString(timeStyle.Render(talk.Start.Format("15:04")))
			b.WriteString(" ")
			b.WriteString(listEntry(loc, talk))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func listEntry(loc Localizer, talk schedule.Talk) string {
	if !talk.HasSubmission() {
		return talk.Description + " in " + talk.Room
	}
	speakers := talk.DisplaySpeakerNames
	if speakers == "" {
		speakers = localize(loc, "agenda.text.no_speakers")
	}
	return talk.Title + ", " + speakers + " (" + talk.ContentLocale + "); in " + talk.Room
}
