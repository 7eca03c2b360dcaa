package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	module "github.com/callboard/callboard/internal/services/web/module"
	"github.com/callboard/callboard/internal/services/web/modules"
)

type fakeModule struct {
	id      string
	prefix  string
	healthy bool
}

func (f fakeModule) ID() string { return f.id }

func (f fakeModule) Healthy() bool { return f.healthy }

func (f fakeModule) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(f.prefix, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(f.id))
	})
	return module.Mount{Prefix: f.prefix, Handler: mux}, nil
}

func buildHandler(t *testing.T, mounted []modules.Module) http.Handler {
	t.Helper()
	handler, err := BuildRootHandler(Config{Modules: mounted})
	if err != nil {
		t.Fatalf("build root handler: %v", err)
	}
	return handler
}

func TestBuildRootHandlerMountsModules(t *testing.T) {
	t.Parallel()

	handler := buildHandler(t, []modules.Module{
		fakeModule{id: "schedule", prefix: "/schedule", healthy: true},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "schedule" {
		t.Fatalf("status = %d, body = %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestBuildRootHandlerRejectsDuplicatePrefix(t *testing.T) {
	t.Parallel()

	_, err := BuildRootHandler(Config{Modules: []modules.Module{
		fakeModule{id: "a", prefix: "/schedule"},
		fakeModule{id: "b", prefix: "/schedule"},
	}})
	if err == nil || !strings.Contains(err.Error(), "duplicates prefix") {
		t.Fatalf("err = %v", err)
	}
}

func TestRootRedirectsToSchedule(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	buildHandler(t, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/schedule" {
		t.Fatalf("location = %q", got)
	}
}

func TestStaticStylesheetIsServed(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	buildHandler(t, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "nav.site") {
		t.Fatal("expected stylesheet body")
	}
}

func TestHealthReportsOK(t *testing.T) {
	t.Parallel()

	handler := buildHandler(t, []modules.Module{
		fakeModule{id: "schedule", prefix: "/schedule", healthy: true},
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHealthReportsDegradedModules(t *testing.T) {
	t.Parallel()

	handler := buildHandler(t, []modules.Module{
		fakeModule{id: "schedule", prefix: "/schedule", healthy: true},
		fakeModule{id: "ingest", prefix: "/api/v1/changesets", healthy: false},
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Status   string   `json:"status"`
		Degraded []string `json:"degraded"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode health body: %v", err)
	}
	if body.Status != "degraded" || len(body.Degraded) != 1 || body.Degraded[0] != "ingest" {
		t.Fatalf("health body = %+v", body)
	}
}

func TestHealthDegradedWithoutDependencies(t *testing.T) {
	t.Parallel()

	handler, err := BuildRootHandler(Config{})
	if err != nil {
		t.Fatalf("build root handler: %v", err)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestNewServerRequiresAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{}); err == nil {
		t.Fatal("expected error for missing address")
	}
}

func TestListenAndServeShutsDown(t *testing.T) {
	t.Parallel()

	server, err := NewServer(Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		result <- server.ListenAndServe(ctx)
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-result:
		if err != nil {
			t.Fatalf("listen and serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListenAndServeReturnsServeError(t *testing.T) {
	t.Parallel()

	server, err := NewServer(Config{HTTPAddr: "256.256.256.256:99999"})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected serve error for invalid address")
	}
}
