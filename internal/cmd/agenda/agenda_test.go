package agenda

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.DatabasePath != "callboard.db" {
		t.Fatalf("database path = %q", cfg.DatabasePath)
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("CALLBOARD_HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("CALLBOARD_PROGRAMME_URL", "https://programme.internal")
	t.Setenv("CALLBOARD_INGEST_TOKEN", "env-token")

	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9090" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.ProgrammeBaseURL != "https://programme.internal" {
		t.Fatalf("programme url = %q", cfg.ProgrammeBaseURL)
	}
	if cfg.IngestToken != "env-token" {
		t.Fatalf("ingest token = %q", cfg.IngestToken)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CALLBOARD_HTTP_ADDR", "env:1")

	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http", "flag:2", "-db", "/tmp/feed.db"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag:2" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.DatabasePath != "/tmp/feed.db" {
		t.Fatalf("database path = %q", cfg.DatabasePath)
	}
}
