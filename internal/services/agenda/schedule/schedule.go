// Package schedule models a published conference schedule version as served
// by the upstream programme service. The agenda service renders this data;
// it never stores or recomputes it.
package schedule

import (
	"sort"
	"time"
)

// Talk is one scheduled slot. Breaks and other slots without a submission
// carry a Description instead of a Title.
type Talk struct {
	Code                string
	Title               string
	Description         string
	DisplaySpeakerNames string
	ContentLocale       string
	PublicURL           string
	Room                string
	Start               time.Time
	End                 time.Time
}

// HasSubmission reports whether the slot belongs to a submitted talk, as
// opposed to a break or other unsubmitted slot.
func (t Talk) HasSubmission() bool {
	return t.Title != ""
}

// Duration returns the slot length.
func (t Talk) Duration() time.Duration {
	if t.End.Before(t.Start) {
		return 0
	}
	return t.End.Sub(t.Start)
}

// Room groups the talks scheduled in one room on one day.
type Room struct {
	Name  string
	Talks []Talk
}

// Day is one conference day of the schedule.
type Day struct {
	Start      time.Time
	FirstStart time.Time
	LastEnd    time.Time
	Rooms      []Room
}

// Talks returns all of the day's talks across rooms, sorted by start time
// and then title.
func (d Day) Talks() []Talk {
	var talks []Talk
	for _, room := range d.Rooms {
		talks = append(talks, room.Talks...)
	}
	sort.SliceStable(talks, func(i, j int) bool {
		if !talks[i].Start.Equal(talks[j].Start) {
			return talks[i].Start.Before(talks[j].Start)
		}
		return talks[i].Title < talks[j].Title
	})
	return talks
}

// Bounds returns the day's first start and last end, preferring the
// published bounds and falling back to the talks themselves.
func (d Day) Bounds() (time.Time, time.Time) {
	first, last := d.FirstStart, d.LastEnd
	if !first.IsZero() && !last.IsZero() {
		return first, last
	}
	for _, talk := range d.Talks() {
		if first.IsZero() || talk.Start.Before(first) {
			first = talk.Start
		}
		if last.IsZero() || talk.End.After(last) {
			last = talk.End
		}
	}
	return first, last
}

// Schedule is one published version of an event's schedule.
type Schedule struct {
	Event       string
	Version     string
	PublishedAt time.Time
	Days        []Day
}

// InitialDay picks the day an agenda page should open on: today when the
// event is running, otherwise the first day.
func (s Schedule) InitialDay(now time.Time) (Day, bool) {
	if len(s.Days) == 0 {
		return Day{}, false
	}
	today := now.UTC().Truncate(24 * time.Hour)
	firstDay := s.Days[0].Start.UTC().Truncate(24 * time.Hour)
	lastDay := s.Days[len(s.Days)-1].Start.UTC().Truncate(24 * time.Hour)
	if !today.Before(firstDay) && !today.After(lastDay) {
		for _, day := range s.Days {
			if day.Start.UTC().Truncate(24 * time.Hour).Equal(today) {
				return day, true
			}
		}
	}
	return s.Days[0], true
}
