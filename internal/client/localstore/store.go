package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dmitrijs2005/docshare/internal/logging"
	"github.com/google/uuid"
)

const (
	sessionKey       = "uploadSessionId"
	viewedKeyPattern = "viewed_files_%s"
)

// ViewedKey is the storage key of a link's viewed set.
func ViewedKey(linkID string) string {
	return fmt.Sprintf(viewedKeyPattern, linkID)
}

// Store exposes the two documented entries on top of a Repository.
type Store struct {
	repo Repository
	log  logging.Logger
}

func NewStore(repo Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// SessionID returns the persisted upload session ID, creating and storing a
// random UUID on first use.
func (s *Store) SessionID(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, sessionKey)
	if err != nil {
		return "", err
	}
	if len(v) > 0 {
		return string(v), nil
	}

	id := uuid.NewString()
	if err := s.repo.Set(ctx, sessionKey, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}

// SetSessionID replaces the session ID, e.g. with one issued by the server.
func (s *Store) SetSessionID(ctx context.Context, id string) error {
	return s.repo.Set(ctx, sessionKey, []byte(id))
}

// LoadViewed reads the viewed set of linkID. A missing entry yields an
// empty set; an unreadable one is logged and also yields an empty set.
func (s *Store) LoadViewed(ctx context.Context, linkID string) (*ViewedSet, error) {
	v, err := s.repo.Get(ctx, ViewedKey(linkID))
	if err != nil {
		return NewViewedSet(), err
	}
	if len(v) == 0 {
		return NewViewedSet(), nil
	}

	var ids []models.FileID
	if err := json.Unmarshal(v, &ids); err != nil {
		s.log.Warn(ctx, "discarding unreadable viewed set", "link_id", linkID, "error", err)
		return NewViewedSet(), nil
	}
	return NewViewedSet(ids...), nil
}

// SaveViewed persists set as a JSON array under the link's key.
func (s *Store) SaveViewed(ctx context.Context, linkID string, set *ViewedSet) error {
	b, err := json.Marshal(set.IDs())
	if err != nil {
		return fmt.Errorf("encode viewed set: %w", err)
	}
	return s.repo.Set(ctx, ViewedKey(linkID), b)
}
