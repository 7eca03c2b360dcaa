// Package storage defines persistence contracts for the schedule changelog feed.
package storage

import (
	"context"
	"errors"

	"github.com/callboard/callboard/internal/services/agenda/changelog"
)

// ErrNotFound indicates a requested schedule version is missing.
var ErrNotFound = errors.New("record not found")

// ChangeSetStore persists published schedule change sets.
//
// Only the changelog feed is stored: version metadata plus the talk-level
// change rows. Schedule content itself is never persisted here.
type ChangeSetStore interface {
	// SaveChangeSet inserts or replaces the change set for its version.
	SaveChangeSet(ctx context.Context, set changelog.ChangeSet) error
	// GetChangeSet returns the change set for one schedule version.
	GetChangeSet(ctx context.Context, version string) (changelog.ChangeSet, error)
	// ListChangeSets returns up to limit change sets, newest publication first.
	ListChangeSets(ctx context.Context, limit int) ([]changelog.ChangeSet, error)
}
