package ingest

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/callboard/callboard/internal/services/agenda/changelog"
	"github.com/callboard/callboard/internal/services/agenda/storage"
	"github.com/callboard/callboard/internal/services/web/platform/httpx"
)

// maxBodyBytes bounds ingest payloads; a change set for one release is small.
const maxBodyBytes = 1 << 20

type handlers struct {
	store storage.ChangeSetStore
	token string
}

func newHandlers(store storage.ChangeSetStore, token string) handlers {
	return handlers{store: store, token: strings.TrimSpace(token)}
}

type talkChangeDoc struct {
	Title               string   `json:"title"`
	PublicURL           string   `json:"public_url"`
	Speakers            []string `json:"speakers"`
	DisplaySpeakerNames string   `json:"display_speaker_names"`
	OldRoom             string   `json:"old_room"`
	NewRoom             string   `json:"new_room"`
	OldStart            string   `json:"old_start"`
	NewStart            string   `json:"new_start"`
}

type changeSetDoc struct {
	Version       string          `json:"version"`
	Action        string          `json:"action"`
	Comment       string          `json:"comment"`
	Count         int             `json:"count"`
	PublishedAt   string          `json:"published_at"`
	NewTalks      []talkChangeDoc `json:"new_talks"`
	CanceledTalks []talkChangeDoc `json:"canceled_talks"`
	MovedTalks    []talkChangeDoc `json:"moved_talks"`
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		w.Header().Set("WWW-Authenticate", `Bearer realm="ingest"`)
		_ = httpx.WriteJSONError(w, http.StatusUnauthorized, "invalid or missing bearer token")
		return
	}
	if h.store == nil {
		_ = httpx.WriteJSONError(w, http.StatusServiceUnavailable, "changelog storage is unavailable")
		return
	}

	var doc changeSetDoc
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("decode change set: %v", err))
		return
	}

	set, err := mapChangeSetDoc(doc)
	if err != nil {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := set.Validate(); err != nil {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.store.SaveChangeSet(r.Context(), set); err != nil {
		_ = httpx.WriteJSONError(w, http.StatusInternalServerError, "save change set failed")
		return
	}
	_ = httpx.WriteJSON(w, http.StatusCreated, map[string]string{"version": set.Version})
}

func (h handlers) authorized(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return false
	}
	presented := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return subtle.ConstantTimeCompare([]byte(presented), []byte(h.token)) == 1
}

func mapChangeSetDoc(doc changeSetDoc) (changelog.ChangeSet, error) {
	set := changelog.ChangeSet{
		Version: strings.TrimSpace(doc.Version),
		Action:  changelog.Action(doc.Action),
		Comment: doc.Comment,
		Count:   doc.Count,
	}
	if doc.PublishedAt != "" {
		publishedAt, err := time.Parse(time.RFC3339, doc.PublishedAt)
		if err != nil {
			return changelog.ChangeSet{}, fmt.Errorf("parse published_at: %w", err)
		}
		set.PublishedAt = publishedAt.UTC()
	}
	var err error
	if set.NewTalks, err = mapTalkChangeDocs(doc.NewTalks); err != nil {
		return changelog.ChangeSet{}, err
	}
	if set.CanceledTalks, err = mapTalkChangeDocs(doc.CanceledTalks); err != nil {
		return changelog.ChangeSet{}, err
	}
	if set.MovedTalks, err = mapTalkChangeDocs(doc.MovedTalks); err != nil {
		return changelog.ChangeSet{}, err
	}
	return set, nil
}

func mapTalkChangeDocs(docs []talkChangeDoc) ([]changelog.TalkChange, error) {
	var changes []changelog.TalkChange
	for _, doc := range docs {
		change := changelog.TalkChange{
			Submission: changelog.Submission{
				Title:               doc.Title,
				PublicURL:           doc.PublicURL,
				Speakers:            doc.Speakers,
				DisplaySpeakerNames: doc.DisplaySpeakerNames,
			},
			OldRoom: doc.OldRoom,
			NewRoom: doc.NewRoom,
		}
		if doc.OldStart != "" {
			oldStart, err := time.Parse(time.RFC3339, doc.OldStart)
			if err != nil {
				return nil, fmt.Errorf("parse old_start: %w", err)
			}
			change.OldStart = oldStart.UTC()
		}
		if doc.NewStart != "" {
			newStart, err := time.Parse(time.RFC3339, doc.NewStart)
			if err != nil {
				return nil, fmt.Errorf("parse new_start: %w", err)
			}
			change.NewStart = newStart.UTC()
		}
		changes = append(changes, change)
	}
	return changes, nil
}
