package changelog

import (
	"context"

	agendalog "github.com/callboard/callboard/internal/services/agenda/changelog"
	"github.com/callboard/callboard/internal/services/agenda/storage"
	apperrors "github.com/callboard/callboard/internal/services/web/platform/errors"
)

// feedLimit bounds how many published versions the feed page shows.
const feedLimit = 50

type service struct {
	store storage.ChangeSetStore
}

func newService(store storage.ChangeSetStore) service {
	return service{store: store}
}

func (s service) listFeed(ctx context.Context) ([]agendalog.ChangeSet, error) {
	if s.store == nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "changelog storage is unavailable")
	}
	sets, err := s.store.ListChangeSets(ctx, feedLimit)
	if err != nil {
		return nil, err
	}
	if sets == nil {
		sets = []agendalog.ChangeSet{}
	}
	return sets, nil
}
