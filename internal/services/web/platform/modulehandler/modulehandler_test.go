package modulehandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	apperrors "github.com/callboard/callboard/internal/services/web/platform/errors"
)

func textComponent(payload string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, payload)
		return err
	})
}

func TestWritePageRendersLayoutWithFragment(t *testing.T) {
	t.Parallel()

	base := NewBase()
	req := httptest.NewRequest(http.MethodGet, "/changelog", nil)
	rec := httptest.NewRecorder()
	base.WritePage(rec, req, "Changes", http.StatusOK, textComponent("<p>hello</p>"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<p>hello</p>") {
		t.Fatalf("expected fragment in body, got %q", body)
	}
	if !strings.Contains(body, "<title>Changes · Callboard</title>") {
		t.Fatalf("expected page title, got %q", body)
	}
}

func TestWritePageResolvesGermanFromQuery(t *testing.T) {
	t.Parallel()

	base := NewBase()
	req := httptest.NewRequest(http.MethodGet, "/changelog?lang=de", nil)
	rec := httptest.NewRecorder()
	base.WritePage(rec, req, "", http.StatusOK, nil)

	if !strings.Contains(rec.Body.String(), `<html lang="de">`) {
		t.Fatalf("expected German lang attribute, got %q", rec.Body.String())
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Fatal("expected language cookie to be set")
	}
}

func TestWriteErrorMapsTypedStatus(t *testing.T) {
	t.Parallel()

	base := NewBase()
	req := httptest.NewRequest(http.MethodGet, "/schedule/v/nope", nil)
	rec := httptest.NewRecorder()
	base.WriteError(rec, req, apperrors.E(apperrors.KindNotFound, "version not found"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Fatalf("expected 404 page body, got %q", rec.Body.String())
	}
}

func TestWriteNotFoundRendersErrorPage(t *testing.T) {
	t.Parallel()

	base := NewBase()
	rec := httptest.NewRecorder()
	base.WriteNotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}
