package export

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/callboard/callboard/internal/services/agenda/schedule"
)

// XMLExporter renders the legacy XML schedule format.
type XMLExporter struct{}

func (XMLExporter) Identifier() string { return "schedule.xml" }
func (XMLExporter) Public() bool       { return true }
func (XMLExporter) CORS() string       { return "" }

type xmlSchedule struct {
	XMLName xml.Name `xml:"schedule"`
	Event   string   `xml:"event"`
	Version string   `xml:"version"`
	Days    []xmlDay `xml:"day"`
}

type xmlDay struct {
	Date  string    `xml:"date,attr"`
	Rooms []xmlRoom `xml:"room"`
}

type xmlRoom struct {
	Name  string    `xml:"name,attr"`
	Talks []xmlTalk `xml:"talk"`
}

type xmlTalk struct {
	Code     string `xml:"code,attr,omitempty"`
	Title    string `xml:"title"`
	Speakers string `xml:"speakers,omitempty"`
	Locale   string `xml:"locale,omitempty"`
	Start    string `xml:"start"`
	End      string `xml:"end"`
	URL      string `xml:"url,omitempty"`
}

func (XMLExporter) Render(sched schedule.Schedule) (string, string, []byte, error) {
	doc := xmlSchedule{
		Event:   sched.Event,
		Version: sched.Version,
		Days:    make([]xmlDay, 0, len(sched.Days)),
	}
	for _, day := range sched.Days {
		rooms := make([]xmlRoom, 0, len(day.Rooms))
		for _, room := range day.Rooms {
			talks := make([]xmlTalk, 0, len(room.Talks))
			for _, talk := range room.Talks {
				title := talk.Title
				if !talk.HasSubmission() {
					title = talk.Description
				}
				talks = append(talks, xmlTalk{
					Code:     talk.Code,
					Title:    title,
					Speakers: talk.DisplaySpeakerNames,
					Locale:   talk.ContentLocale,
					Start:    talk.Start.Format(time.RFC3339),
					End:      talk.End.Format(time.RFC3339),
					URL:      talk.PublicURL,
				})
			}
			rooms = append(rooms, xmlRoom{Name: room.Name, Talks: talks})
		}
		doc.Days = append(doc.Days, xmlDay{
			Date:  day.Start.Format("2006-01-02"),
			Rooms: rooms,
		})
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", "", nil, fmt.Errorf("marshal schedule xml: %w", err)
	}
	return "schedule.xml", "text/xml", append([]byte(xml.Header), data...), nil
}
