package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/callboard/callboard/internal/platform/timeouts"
	agendaschedule "github.com/callboard/callboard/internal/services/agenda/schedule"
	apperrors "github.com/callboard/callboard/internal/services/web/platform/errors"
)

// NewHTTPGateway builds the production schedule gateway against the
// programme service's JSON API. An empty base URL yields a degraded gateway.
func NewHTTPGateway(baseURL string, client *http.Client) ScheduleGateway {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return unavailableGateway{}
	}
	if client == nil {
		client = &http.Client{Timeout: timeouts.Gateway}
	}
	return httpGateway{baseURL: baseURL, client: client}
}

type httpGateway struct {
	baseURL string
	client  *http.Client
}

type talkDoc struct {
	Code                string `json:"code"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	DisplaySpeakerNames string `json:"display_speaker_names"`
	ContentLocale       string `json:"content_locale"`
	PublicURL           string `json:"public_url"`
	Start               string `json:"start"`
	End                 string `json:"end"`
}

type dayDoc struct {
	Date       string               `json:"date"`
	FirstStart string               `json:"first_start"`
	LastEnd    string               `json:"last_end"`
	Rooms      map[string][]talkDoc `json:"rooms"`
	RoomOrder  []string             `json:"room_order"`
}

type scheduleDoc struct {
	Event       string   `json:"event"`
	Version     string   `json:"version"`
	PublishedAt string   `json:"published_at"`
	Days        []dayDoc `json:"days"`
}

type versionsDoc struct {
	Versions []string `json:"versions"`
}

func (g httpGateway) LatestSchedule(ctx context.Context) (agendaschedule.Schedule, error) {
	return g.fetchSchedule(ctx, g.baseURL+"/api/v1/schedule")
}

func (g httpGateway) ScheduleByVersion(ctx context.Context, version string) (agendaschedule.Schedule, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return agendaschedule.Schedule{}, apperrors.E(apperrors.KindNotFound, "schedule version not found")
	}
	return g.fetchSchedule(ctx, g.baseURL+"/api/v1/schedule/versions/"+url.PathEscape(version))
}

func (g httpGateway) ScheduleVersions(ctx context.Context) ([]string, error) {
	body, err := g.fetch(ctx, g.baseURL+"/api/v1/schedule/versions")
	if err != nil {
		return nil, err
	}
	var doc versionsDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode schedule versions: %w", err)
	}
	return doc.Versions, nil
}

func (g httpGateway) fetchSchedule(ctx context.Context, endpoint string) (agendaschedule.Schedule, error) {
	body, err := g.fetch(ctx, endpoint)
	if err != nil {
		return agendaschedule.Schedule{}, err
	}
	var doc scheduleDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return agendaschedule.Schedule{}, fmt.Errorf("decode schedule: %w", err)
	}
	return mapScheduleDoc(doc)
}

func (g httpGateway) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build programme request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "programme service is unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.E(apperrors.KindNotFound, "schedule version not found")
	case resp.StatusCode != http.StatusOK:
		return nil, apperrors.E(apperrors.KindUnavailable,
			fmt.Sprintf("programme service returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read programme response: %w", err)
	}
	return body, nil
}

func mapScheduleDoc(doc scheduleDoc) (agendaschedule.Schedule, error) {
	sched := agendaschedule.Schedule{
		Event:   doc.Event,
		Version: doc.Version,
	}
	if doc.PublishedAt != "" {
		publishedAt, err := time.Parse(time.RFC3339, doc.PublishedAt)
		if err != nil {
			return agendaschedule.Schedule{}, fmt.Errorf("parse published_at: %w", err)
		}
		sched.PublishedAt = publishedAt.UTC()
	}
	for _, day := range doc.Days {
		mapped, err := mapDayDoc(day)
		if err != nil {
			return agendaschedule.Schedule{}, err
		}
		sched.Days = append(sched.Days, mapped)
	}
	return sched, nil
}

func mapDayDoc(doc dayDoc) (agendaschedule.Day, error) {
	day := agendaschedule.Day{}
	if doc.Date != "" {
		date, err := time.Parse("2006-01-02", doc.Date)
		if err != nil {
			return agendaschedule.Day{}, fmt.Errorf("parse day date %q: %w", doc.Date, err)
		}
		day.Start = date.UTC()
	}
	if doc.FirstStart != "" {
		firstStart, err := time.Parse(time.RFC3339, doc.FirstStart)
		if err != nil {
			return agendaschedule.Day{}, fmt.Errorf("parse first_start: %w", err)
		}
		day.FirstStart = firstStart.UTC()
	}
	if doc.LastEnd != "" {
		lastEnd, err := time.Parse(time.RFC3339, doc.LastEnd)
		if err != nil {
			return agendaschedule.Day{}, fmt.Errorf("parse last_end: %w", err)
		}
		day.LastEnd = lastEnd.UTC()
	}

	for _, name := range roomOrder(doc) {
		room := agendaschedule.Room{Name: name}
		for _, talk := range doc.Rooms[name] {
			mapped, err := mapTalkDoc(talk, name)
			if err != nil {
				return agendaschedule.Day{}, err
			}
			room.Talks = append(room.Talks, mapped)
		}
		day.Rooms = append(day.Rooms, room)
	}
	return day, nil
}

// roomOrder honors the upstream display order when given, falling back to
// map iteration order sorted by name.
func roomOrder(doc dayDoc) []string {
	if len(doc.RoomOrder) > 0 {
		return doc.RoomOrder
	}
	names := make([]string, 0, len(doc.Rooms))
	for name := range doc.Rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mapTalkDoc(doc talkDoc, room string) (agendaschedule.Talk, error) {
	talk := agendaschedule.Talk{
		Code:                doc.Code,
		Title:               doc.Title,
		Description:         doc.Description,
		DisplaySpeakerNames: doc.DisplaySpeakerNames,
		ContentLocale:       doc.ContentLocale,
		PublicURL:           doc.PublicURL,
		Room:                room,
	}
	if doc.Start != "" {
		start, err := time.Parse(time.RFC3339, doc.Start)
		if err != nil {
			return agendaschedule.Talk{}, fmt.Errorf("parse talk start: %w", err)
		}
		talk.Start = start.UTC()
	}
	if doc.End != "" {
		end, err := time.Parse(time.RFC3339, doc.End)
		if err != nil {
			return agendaschedule.Talk{}, fmt.Errorf("parse talk end: %w", err)
		}
		talk.End = end.UTC()
	}
	return talk, nil
}
