package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/callboard/callboard/internal/platform/timeouts"
	module "github.com/callboard/callboard/internal/services/web/module"
	"github.com/callboard/callboard/internal/services/web/modules"
	"github.com/callboard/callboard/internal/services/web/platform/httpx"
	"github.com/callboard/callboard/internal/services/web/routepath"
	"github.com/callboard/callboard/internal/services/web/static"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr     string
	Dependencies modules.Dependencies

	// Modules overrides the default registry when non-nil. Used by tests
	// and experimental deployments.
	Modules []modules.Module
}

// Server hosts the schedule and changelog HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds a configured web server from the module registry.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := BuildRootHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return &Server{httpAddr: httpAddr, httpServer: httpServer}, nil
}

// BuildRootHandler composes the root handler: module mounts, static assets,
// the root redirect, and the health endpoint, wrapped in shared middleware.
func BuildRootHandler(config Config) (http.Handler, error) {
	mounted := config.Modules
	if mounted == nil {
		mounted = modules.DefaultModules(config.Dependencies)
	}

	mux := http.NewServeMux()
	seen := make(map[string]string)
	for _, feature := range mounted {
		if feature == nil {
			return nil, errors.New("module is nil")
		}
		if err := mountModule(mux, feature, seen); err != nil {
			return nil, err
		}
	}

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routepath.Schedule, http.StatusFound)
	})
	mux.HandleFunc("GET "+routepath.Health, healthHandler(mounted))

	return httpx.Chain(mux, httpx.RecoverPanic(), httpx.RequestID()), nil
}

// mountModule registers a module handler under its prefix and, for page
// modules, the subtree below it. Module muxes route full paths, so the
// subtree registration only forwards requests.
func mountModule(mux *http.ServeMux, feature module.Module, seen map[string]string) error {
	mount, err := feature.Mount()
	if err != nil {
		return fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := strings.TrimSpace(mount.Prefix)
	if prefix == "" || !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("mount module %q has invalid prefix %q", feature.ID(), mount.Prefix)
	}
	if mount.Handler == nil {
		return fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()

	mux.Handle(prefix, mount.Handler)
	if !strings.HasSuffix(prefix, "/") {
		mux.Handle(prefix+"/", mount.Handler)
	}
	return nil
}

// healthHandler aggregates module health reports. Modules that do not
// report health count as healthy.
func healthHandler(mounted []modules.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var degraded []string
		for _, feature := range mounted {
			reporter, ok := feature.(module.HealthReporter)
			if ok && !reporter.Healthy() {
				degraded = append(degraded, feature.ID())
			}
		}
		if len(degraded) > 0 {
			_ = httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status":   "degraded",
				"degraded": degraded,
			})
			return
		}
		_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
