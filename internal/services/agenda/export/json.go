package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/callboard/callboard/internal/services/agenda/schedule"
)

// JSONExporter renders the widely consumed JSON schedule format.
type JSONExporter struct{}

func (JSONExporter) Identifier() string { return "schedule.json" }
func (JSONExporter) Public() bool       { return true }

// CORS is open: the JSON export is consumed by third-party schedule apps.
func (JSONExporter) CORS() string { return "*" }

type jsonSchedule struct {
	Schedule jsonScheduleBody `json:"schedule"`
}

type jsonScheduleBody struct {
	Event   string    `json:"event"`
	Version string    `json:"version"`
	Days    []jsonDay `json:"days"`
}

type jsonDay struct {
	Date  string                `json:"date"`
	Rooms map[string][]jsonTalk `json:"rooms"`
}

type jsonTalk struct {
	Code     string `json:"code,omitempty"`
	Title    string `json:"title"`
	Speakers string `json:"speakers,omitempty"`
	Locale   string `json:"locale,omitempty"`
	Room     string `json:"room"`
	Start    string `json:"start"`
	End      string `json:"end"`
	URL      string `json:"url,omitempty"`
}

func (JSONExporter) Render(sched schedule.Schedule) (string, string, []byte, error) {
	body := jsonScheduleBody{
		Event:   sched.Event,
		Version: sched.Version,
		Days:    make([]jsonDay, 0, len(sched.Days)),
	}
	for _, day := range sched.Days {
		rooms := make(map[string][]jsonTalk, len(day.Rooms))
		for _, room := range day.Rooms {
			talks := make([]jsonTalk, 0, len(room.Talks))
			for _, talk := range room.Talks {
				talks = append(talks, jsonTalkFrom(talk))
			}
			rooms[room.Name] = talks
		}
		body.Days = append(body.Days, jsonDay{
			Date:  day.Start.Format("2006-01-02"),
			Rooms: rooms,
		})
	}

	data, err := json.MarshalIndent(jsonSchedule{Schedule: body}, "", "  ")
	if err != nil {
		return "", "", nil, fmt.Errorf("marshal schedule json: %w", err)
	}
	return "schedule.json", "application/json", data, nil
}

func jsonTalkFrom(talk schedule.Talk) jsonTalk {
	title := talk.Title
	if !talk.HasSubmission() {
		title = talk.Description
	}
	return jsonTalk{
		Code:     talk.Code,
		Title:    title,
		Speakers: talk.DisplaySpeakerNames,
		Locale:   talk.ContentLocale,
		Room:     talk.Room,
		Start:    talk.Start.Format(time.RFC3339),
		End:      talk.End.Format(time.RFC3339),
		URL:      talk.PublicURL,
	}
}
