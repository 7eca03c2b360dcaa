// Package changelog defines the published schedule change-set model.
//
// Change sets are computed by the upstream programme service when a new
// schedule version is released and pushed to this service over the ingest
// API. This package only describes the published result; it never diffs
// schedules itself.
package changelog

import (
	"fmt"
	"strings"
	"time"
)

// Action describes how a schedule version came to exist.
type Action string

const (
	// ActionCreate marks the very first published schedule of an event.
	ActionCreate Action = "create"
	// ActionUpdate marks a re-release of an already published schedule.
	ActionUpdate Action = "update"
)

// Submission carries the talk metadata referenced by a change entry.
type Submission struct {
	Title               string
	PublicURL           string
	Speakers            []string
	DisplaySpeakerNames string
}

// HasSpeakers reports whether the submission has at least one speaker.
func (s Submission) HasSpeakers() bool {
	return len(s.Speakers) > 0
}

// TalkChange records one session's before/after state between two versions.
//
// New and canceled talks carry only the submission reference; old/new room
// and start are populated for moved talks. Zero times mean "not set".
type TalkChange struct {
	Submission Submission
	OldRoom    string
	NewRoom    string
	OldStart   time.Time
	NewStart   time.Time
}

// RoomChanged reports whether the talk moved to a different room.
func (c TalkChange) RoomChanged() bool {
	return c.OldRoom != c.NewRoom
}

// StartChanged reports whether the talk moved to a different start time.
func (c TalkChange) StartChanged() bool {
	return !c.OldStart.Equal(c.NewStart)
}

// ChangeSet describes the difference between two published schedule versions.
type ChangeSet struct {
	Version     string
	Action      Action
	Comment     string
	Count       int
	PublishedAt time.Time

	NewTalks      []TalkChange
	CanceledTalks []TalkChange
	MovedTalks    []TalkChange
}

// TotalChanges returns the number of change entries across all sections.
func (cs ChangeSet) TotalChanges() int {
	return len(cs.NewTalks) + len(cs.CanceledTalks) + len(cs.MovedTalks)
}

// Validate checks the change-set contract supplied by the diff engine.
func (cs ChangeSet) Validate() error {
	if strings.TrimSpace(cs.Version) == "" {
		return fmt.Errorf("change set version is required")
	}
	switch cs.Action {
	case ActionCreate, ActionUpdate:
	case "":
		return fmt.Errorf("change set action is required")
	default:
		return fmt.Errorf("unknown change set action %q", cs.Action)
	}
	if cs.Count < 0 {
		return fmt.Errorf("change count must not be negative, got %d", cs.Count)
	}
	if total := cs.TotalChanges(); cs.Count != total {
		return fmt.Errorf("change count %d does not match %d change entries", cs.Count, total)
	}
	for idx, change := range cs.NewTalks {
		if strings.TrimSpace(change.Submission.Title) == "" {
			return fmt.Errorf("new talk %d is missing a title", idx)
		}
	}
	for idx, change := range cs.CanceledTalks {
		if strings.TrimSpace(change.Submission.Title) == "" {
			return fmt.Errorf("canceled talk %d is missing a title", idx)
		}
	}
	for idx, change := range cs.MovedTalks {
		if strings.TrimSpace(change.Submission.Title) == "" {
			return fmt.Errorf("moved talk %d is missing a title", idx)
		}
	}
	return nil
}
