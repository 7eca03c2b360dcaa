// Package sqlite provides a SQLite-backed changelog feed store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/callboard/callboard/internal/platform/storage/sqlitemigrate"
	"github.com/callboard/callboard/internal/services/agenda/changelog"
	"github.com/callboard/callboard/internal/services/agenda/storage"
	"github.com/callboard/callboard/internal/services/agenda/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const (
	kindNew      = "new"
	kindCanceled = "canceled"
	kindMoved    = "moved"
)

// Store persists published change sets in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite changelog store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveChangeSet inserts or replaces the change set for its version.
func (s *Store) SaveChangeSet(ctx context.Context, set changelog.ChangeSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if err := set.Validate(); err != nil {
		return fmt.Errorf("validate change set: %w", err)
	}
	publishedAt := set.PublishedAt.UTC()
	if publishedAt.IsZero() {
		publishedAt = time.Now().UTC()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save change set: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO schedule_versions (version, action, comment, change_count, published_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(version) DO UPDATE SET
		   action = excluded.action,
		   comment = excluded.comment,
		   change_count = excluded.change_count,
		   published_at = excluded.published_at`,
		set.Version,
		string(set.Action),
		set.Comment,
		set.Count,
		toMillis(publishedAt),
	); err != nil {
		return fmt.Errorf("save schedule version: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_changes WHERE version = ?`, set.Version); err != nil {
		return fmt.Errorf("clear schedule changes: %w", err)
	}

	if err := insertChanges(ctx, tx, set.Version, kindNew, set.NewTalks); err != nil {
		return err
	}
	if err := insertChanges(ctx, tx, set.Version, kindCanceled, set.CanceledTalks); err != nil {
		return err
	}
	if err := insertChanges(ctx, tx, set.Version, kindMoved, set.MovedTalks); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save change set: %w", err)
	}
	return nil
}

func insertChanges(ctx context.Context, tx *sql.Tx, version, kind string, changes []changelog.TalkChange) error {
	for position, change := range changes {
		speakers, err := json.Marshal(change.Submission.Speakers)
		if err != nil {
			return fmt.Errorf("encode speakers: %w", err)
		}
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO schedule_changes (
			   version, kind, position,
			   title, public_url, speakers, display_speaker_names,
			   old_room, new_room, old_start, new_start
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			version,
			kind,
			position,
			change.Submission.Title,
			change.Submission.PublicURL,
			string(speakers),
			change.Submission.DisplaySpeakerNames,
			change.OldRoom,
			change.NewRoom,
			nullableMillis(change.OldStart),
			nullableMillis(change.NewStart),
		); err != nil {
			return fmt.Errorf("save schedule change: %w", err)
		}
	}
	return nil
}

func nullableMillis(value time.Time) sql.NullInt64 {
	if value.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(value), Valid: true}
}

// GetChangeSet returns the change set for one schedule version.
func (s *Store) GetChangeSet(ctx context.Context, version string) (changelog.ChangeSet, error) {
	if err := ctx.Err(); err != nil {
		return changelog.ChangeSet{}, err
	}
	if s == nil || s.sqlDB == nil {
		return changelog.ChangeSet{}, fmt.Errorf("storage is not configured")
	}
	version = strings.TrimSpace(version)
	if version == "" {
		return changelog.ChangeSet{}, fmt.Errorf("version is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT version, action, comment, change_count, published_at
		   FROM schedule_versions
		  WHERE version = ?`,
		version,
	)
	set, err := scanVersion(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return changelog.ChangeSet{}, storage.ErrNotFound
		}
		return changelog.ChangeSet{}, fmt.Errorf("get schedule version: %w", err)
	}
	if err := s.loadChanges(ctx, &set); err != nil {
		return changelog.ChangeSet{}, err
	}
	return set, nil
}

// ListChangeSets returns up to limit change sets, newest publication first.
func (s *Store) ListChangeSets(ctx context.Context, limit int) ([]changelog.ChangeSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT version, action, comment, change_count, published_at
		   FROM schedule_versions
		  ORDER BY published_at DESC, version DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list schedule versions: %w", err)
	}
	defer rows.Close()

	var sets []changelog.ChangeSet
	for rows.Next() {
		set, err := scanVersion(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list schedule versions: %w", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list schedule versions: %w", err)
	}

	for idx := range sets {
		if err := s.loadChanges(ctx, &sets[idx]); err != nil {
			return nil, err
		}
	}
	return sets, nil
}

func scanVersion(scan func(dest ...any) error) (changelog.ChangeSet, error) {
	var set changelog.ChangeSet
	var action string
	var publishedAt int64
	if err := scan(&set.Version, &action, &set.Comment, &set.Count, &publishedAt); err != nil {
		return changelog.ChangeSet{}, err
	}
	set.Action = changelog.Action(action)
	set.PublishedAt = fromMillis(publishedAt)
	return set, nil
}

func (s *Store) loadChanges(ctx context.Context, set *changelog.ChangeSet) error {
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT kind, title, public_url, speakers, display_speaker_names,
		        old_room, new_room, old_start, new_start
		   FROM schedule_changes
		  WHERE version = ?
		  ORDER BY kind, position`,
		set.Version,
	)
	if err != nil {
		return fmt.Errorf("load schedule changes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var change changelog.TalkChange
		var speakers string
		var oldStart sql.NullInt64
		var newStart sql.NullInt64
		if err := rows.Scan(
			&kind,
			&change.Submission.Title,
			&change.Submission.PublicURL,
			&speakers,
			&change.Submission.DisplaySpeakerNames,
			&change.OldRoom,
			&change.NewRoom,
			&oldStart,
			&newStart,
		); err != nil {
			return fmt.Errorf("load schedule changes: %w", err)
		}
		if err := json.Unmarshal([]byte(speakers), &change.Submission.Speakers); err != nil {
			return fmt.Errorf("decode speakers: %w", err)
		}
		if oldStart.Valid {
			change.OldStart = fromMillis(oldStart.Int64)
		}
		if newStart.Valid {
			change.NewStart = fromMillis(newStart.Int64)
		}
		switch kind {
		case kindNew:
			set.NewTalks = append(set.NewTalks, change)
		case kindCanceled:
			set.CanceledTalks = append(set.CanceledTalks, change)
		case kindMoved:
			set.MovedTalks = append(set.MovedTalks, change)
		default:
			return fmt.Errorf("unknown schedule change kind %q", kind)
		}
	}
	return rows.Err()
}

var _ storage.ChangeSetStore = (*Store)(nil)
