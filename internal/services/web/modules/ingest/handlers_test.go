package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/callboard/callboard/internal/services/agenda/changelog"
	"github.com/callboard/callboard/internal/services/agenda/storage"
)

const testToken = "ingest-secret"

type fakeStore struct {
	saved []changelog.ChangeSet
	err   error
}

func (f *fakeStore) SaveChangeSet(_ context.Context, set changelog.ChangeSet) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, set)
	return nil
}

func (f *fakeStore) GetChangeSet(context.Context, string) (changelog.ChangeSet, error) {
	return changelog.ChangeSet{}, storage.ErrNotFound
}

func (f *fakeStore) ListChangeSets(context.Context, int) ([]changelog.ChangeSet, error) {
	return nil, nil
}

func mountModule(t *testing.T, store storage.ChangeSetStore, token string) http.Handler {
	t.Helper()
	mount, err := NewWithStore(store, token).Mount()
	if err != nil {
		t.Fatalf("mount module: %v", err)
	}
	return mount.Handler
}

func postChangeSet(handler http.Handler, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/changesets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

const validPayload = `{
	"version": "0.4",
	"action": "update",
	"count": 2,
	"published_at": "2026-03-14T09:30:00Z",
	"new_talks": [{
		"title": "Intro to Scheduling",
		"public_url": "https://talks.example.com/intro",
		"speakers": ["Ada Lovelace"]
	}],
	"moved_talks": [{
		"title": "Closing Keynote",
		"old_room": "Main Hall",
		"new_room": "Studio B",
		"old_start": "2026-03-20T16:00:00Z",
		"new_start": "2026-03-20T17:00:00Z"
	}]
}`

func TestHandleCreateStoresChangeSet(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	rec := postChangeSet(mountModule(t, store, testToken), testToken, validPayload)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %q", rec.Code, rec.Body.String())
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved %d change sets, want 1", len(store.saved))
	}
	set := store.saved[0]
	if set.Version != "0.4" || set.Action != changelog.ActionUpdate {
		t.Fatalf("saved set = %+v", set)
	}
	wantPublished := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	if !set.PublishedAt.Equal(wantPublished) {
		t.Fatalf("published at = %v, want %v", set.PublishedAt, wantPublished)
	}
	if len(set.NewTalks) != 1 || set.NewTalks[0].Submission.Title != "Intro to Scheduling" {
		t.Fatalf("new talks = %+v", set.NewTalks)
	}
	moved := set.MovedTalks
	if len(moved) != 1 || moved[0].OldRoom != "Main Hall" || moved[0].NewRoom != "Studio B" {
		t.Fatalf("moved talks = %+v", moved)
	}
	if !moved[0].StartChanged() {
		t.Fatal("expected moved talk start change")
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["version"] != "0.4" {
		t.Fatalf("response version = %q", resp["version"])
	}
}

func TestHandleCreateRejectsMissingToken(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	rec := postChangeSet(mountModule(t, store, testToken), "", validPayload)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("WWW-Authenticate"); !strings.Contains(got, "Bearer") {
		t.Fatalf("WWW-Authenticate = %q", got)
	}
	if len(store.saved) != 0 {
		t.Fatal("unauthorized request must not persist")
	}
}

func TestHandleCreateRejectsWrongToken(t *testing.T) {
	t.Parallel()

	rec := postChangeSet(mountModule(t, &fakeStore{}, testToken), "not-the-token", validPayload)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandleCreateRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	rec := postChangeSet(mountModule(t, &fakeStore{}, testToken), testToken, `{"version": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandleCreateRejectsInvalidChangeSet(t *testing.T) {
	t.Parallel()

	body := `{"version": "0.4", "action": "update", "count": 3, "published_at": "2026-03-14T09:30:00Z"}`
	rec := postChangeSet(mountModule(t, &fakeStore{}, testToken), testToken, body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "change count") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestHandleCreateRejectsBadTimestamp(t *testing.T) {
	t.Parallel()

	body := `{"version": "0.4", "action": "update", "count": 0, "published_at": "next tuesday"}`
	rec := postChangeSet(mountModule(t, &fakeStore{}, testToken), testToken, body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandleCreateWithoutStore(t *testing.T) {
	t.Parallel()

	rec := postChangeSet(mountModule(t, nil, testToken), testToken, validPayload)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandleCreateStoreFailure(t *testing.T) {
	t.Parallel()

	store := &fakeStore{err: errors.New("disk full")}
	rec := postChangeSet(mountModule(t, store, testToken), testToken, validPayload)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetIsNotAllowed(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/changesets", nil)
	mountModule(t, &fakeStore{}, testToken).ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("Allow = %q", got)
	}
}

func TestModuleHealth(t *testing.T) {
	t.Parallel()

	if NewWithStore(&fakeStore{}, testToken).Healthy() != true {
		t.Fatal("configured module should be healthy")
	}
	if NewWithStore(nil, testToken).Healthy() {
		t.Fatal("module without store should be unhealthy")
	}
	if NewWithStore(&fakeStore{}, "").Healthy() {
		t.Fatal("module without token should be unhealthy")
	}
}
