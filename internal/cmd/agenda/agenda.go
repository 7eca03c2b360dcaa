// Package agenda parses agenda service flags and launches the service.
package agenda

import (
	"context"
	"flag"
	"fmt"
	"log"

	entrypoint "github.com/callboard/callboard/internal/platform/cmd"
	"github.com/callboard/callboard/internal/services/agenda/storage/sqlite"
	"github.com/callboard/callboard/internal/services/web"
	"github.com/callboard/callboard/internal/services/web/modules"
	"github.com/callboard/callboard/internal/services/web/modules/schedule"
)

// Config holds agenda command configuration.
type Config struct {
	HTTPAddr string `env:"CALLBOARD_HTTP_ADDR" envDefault:":8080"`
	// DatabasePath locates the sqlite changelog feed database.
	DatabasePath string `env:"CALLBOARD_DB_PATH" envDefault:"callboard.db"`
	// ProgrammeBaseURL points at the upstream programme service. When empty
	// the schedule pages run in degraded mode.
	ProgrammeBaseURL string `env:"CALLBOARD_PROGRAMME_URL"`
	// IngestToken authenticates changelog pushes from the programme service.
	IngestToken string `env:"CALLBOARD_INGEST_TOKEN"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http", cfg.HTTPAddr, "The HTTP listen address")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "The sqlite changelog database path")
	fs.StringVar(&cfg.ProgrammeBaseURL, "programme-url", cfg.ProgrammeBaseURL, "The programme service base URL")
	fs.StringVar(&cfg.IngestToken, "ingest-token", cfg.IngestToken, "The changelog ingest bearer token")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the agenda web service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAgenda, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("open changelog store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close changelog store: %v", err)
			}
		}()

		server, err := web.NewServer(web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Dependencies: modules.Dependencies{
				ChangeSets:  store,
				Programme:   schedule.NewHTTPGateway(cfg.ProgrammeBaseURL, nil),
				IngestToken: cfg.IngestToken,
			},
		})
		if err != nil {
			return fmt.Errorf("build web server: %w", err)
		}
		return server.ListenAndServe(ctx)
	})
}
