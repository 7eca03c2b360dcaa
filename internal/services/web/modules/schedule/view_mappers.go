package schedule

import (
	"github.com/callboard/callboard/internal/services/agenda/export"
	agendaschedule "github.com/callboard/callboard/internal/services/agenda/schedule"
	"github.com/callboard/callboard/internal/services/web/routepath"
	webtemplates "github.com/callboard/callboard/internal/services/web/templates"
)

const (
	dayLayout         = "Monday, 2006-01-02"
	talkTimeLayout    = "15:04"
	publishedAtLayout = "2006-01-02 15:04"
)

func scheduleView(sched agendaschedule.Schedule, versions []string, exports *export.Registry) webtemplates.SchedulePageView {
	view := webtemplates.SchedulePageView{
		Event:   sched.Event,
		Version: sched.Version,
	}
	if !sched.PublishedAt.IsZero() {
		view.PublishedLabel = sched.PublishedAt.Format(publishedAtLayout)
	}
	for _, day := range sched.Days {
		view.Days = append(view.Days, dayView(day))
	}
	for _, version := range versions {
		option := webtemplates.ScheduleVersionOption{Version: version}
		if version == sched.Version {
			option.Active = true
		} else {
			option.URL = routepath.ScheduleVersion(version)
		}
		view.Versions = append(view.Versions, option)
	}
	if exports != nil {
		for _, exporter := range exports.All() {
			if !exporter.Public() {
				continue
			}
			view.Exports = append(view.Exports, webtemplates.ScheduleExportLink{
				Label: exporter.Identifier(),
				URL:   routepath.ScheduleExport(exporter.Identifier()),
			})
		}
	}
	return view
}

func dayView(day agendaschedule.Day) webtemplates.ScheduleDayView {
	view := webtemplates.ScheduleDayView{}
	if !day.Start.IsZero() {
		view.DateLabel = day.Start.Format(dayLayout)
	}
	for _, room := range day.Rooms {
		roomView := webtemplates.ScheduleRoomView{Name: room.Name}
		for _, talk := range room.Talks {
			roomView.Talks = append(roomView.Talks, talkView(talk))
		}
		view.Rooms = append(view.Rooms, roomView)
	}
	return view
}

func talkView(talk agendaschedule.Talk) webtemplates.ScheduleTalkView {
	view := webtemplates.ScheduleTalkView{
		Title:    talk.Title,
		Speakers: talk.DisplaySpeakerNames,
		Locale:   talk.ContentLocale,
	}
	if !talk.HasSubmission() {
		view.Title = talk.Description
	} else {
		view.URL = talk.PublicURL
	}
	if !talk.Start.IsZero() {
		view.TimeLabel = talk.Start.Format(talkTimeLayout)
	}
	return view
}
