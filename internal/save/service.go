package save

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/logger"
	"github.com/osse101/PortalQuest_Go/internal/progression"
	"github.com/osse101/PortalQuest_Go/internal/repository"
)

// LoadResult is a loaded or freshly created player
type LoadResult struct {
	Player     *domain.Player
	FreshStart bool
	Reason     string
}

// Service loads and stores players through a SaveStore
type Service interface {
	Load(ctx context.Context, name string) (*LoadResult, error)
	Store(ctx context.Context, p *domain.Player) error
	Delete(ctx context.Context, name string) error
	Key(name string) string
}

type service struct {
	store   repository.SaveStore
	catalog progression.Catalog
	prefix  string
	now     func() time.Time
}

// NewService creates a new save service
func NewService(store repository.SaveStore, catalog progression.Catalog, prefix string) Service {
	return &service{
		store:   store,
		catalog: catalog,
		prefix:  prefix,
		now:     time.Now,
	}
}

// NormalizeName trims the name and checks it is usable
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameEmpty)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameLong)
	}
	return name, nil
}

// Key returns the store key for a player name
func (s *service) Key(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if s.prefix == "" {
		return key
	}
	return s.prefix + KeySeparator + key
}

// Load never fails on bad data: missing, stale and unreadable saves all yield a fresh player.
// Only store errors are returned.
func (s *service) Load(ctx context.Context, name string) (*LoadResult, error) {
	log := logger.FromContext(ctx)
	key := s.Key(name)

	data, err := s.store.Get(ctx, key)
	if errors.Is(err, domain.ErrSaveNotFound) {
		return s.fresh(name, FreshReasonNew), nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadFmt, key, err)
	}

	p, err := Decode(data, name, s.catalog, s.now())
	switch {
	case errors.Is(err, domain.ErrStaleSession):
		log.Info(LogMsgStaleSaveDiscarded, "key", key)
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf(ErrMsgDeleteFmt, key, delErr)
		}
		return s.fresh(name, FreshReasonStale), nil
	case err != nil:
		log.Warn(LogMsgCorruptSaveDiscarded, "key", key, "error", err)
		return s.fresh(name, FreshReasonCorrupt), nil
	}

	log.Debug(LogMsgSaveLoaded, "key", key, "level", p.Level)
	return &LoadResult{Player: p}, nil
}

func (s *service) fresh(name, reason string) *LoadResult {
	p := domain.NewPlayer(name)
	progression.ApplyCatalogBaseline(p, s.catalog)
	return &LoadResult{Player: p, FreshStart: true, Reason: reason}
}

// Store stamps LastSeen and writes the whole blob
func (s *service) Store(ctx context.Context, p *domain.Player) error {
	key := s.Key(p.Name)
	p.LastSeen = s.now().UTC()
	data, err := Encode(p, s.catalog)
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, key, data); err != nil {
		return fmt.Errorf(ErrMsgStoreFmt, key, err)
	}
	logger.FromContext(ctx).Debug(LogMsgSaveStored, "key", key)
	return nil
}

// Delete removes the player's save
func (s *service) Delete(ctx context.Context, name string) error {
	key := s.Key(name)
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf(ErrMsgDeleteFmt, key, err)
	}
	return nil
}
