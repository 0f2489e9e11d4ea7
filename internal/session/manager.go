package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PortalQuest_Go/internal/combat"
	"github.com/osse101/PortalQuest_Go/internal/cooldown"
	"github.com/osse101/PortalQuest_Go/internal/daily"
	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/duel"
	"github.com/osse101/PortalQuest_Go/internal/economy"
	"github.com/osse101/PortalQuest_Go/internal/event"
	"github.com/osse101/PortalQuest_Go/internal/logger"
	"github.com/osse101/PortalQuest_Go/internal/metrics"
	"github.com/osse101/PortalQuest_Go/internal/oracle"
	"github.com/osse101/PortalQuest_Go/internal/portal"
	"github.com/osse101/PortalQuest_Go/internal/progression"
	"github.com/osse101/PortalQuest_Go/internal/save"
	"github.com/osse101/PortalQuest_Go/internal/utils"
	"github.com/osse101/PortalQuest_Go/internal/worker"
)

// Service is the trigger surface of the game. Every method addresses one player by name.
type Service interface {
	Login(ctx context.Context, name string) (*LoginResult, error)
	Logout(ctx context.Context, name string) error
	State(ctx context.Context, name string) (*View, error)
	Key(name string) string

	EnterPortal(ctx context.Context, name string) (*PortalOutcome, error)
	Attack(ctx context.Context, name string) (*AttackOutcome, error)

	Shop(ctx context.Context, name string) ([]domain.ShopEntry, error)
	Buy(ctx context.Context, name, itemID string) (*PurchaseOutcome, error)

	Ask(ctx context.Context, name, question string) (*AskOutcome, error)

	OpenArena(ctx context.Context, name string) (*ArenaOutcome, error)
	ArenaAction(ctx context.Context, name string, action domain.ArenaAction) (*ArenaOutcome, error)
	LeaveArena(ctx context.Context, name string) (*ArenaOutcome, error)

	DailyOffer(ctx context.Context, name string) (*daily.Offer, error)
	ClaimDaily(ctx context.Context, name string) (*DailyOutcome, error)

	Reset(ctx context.Context, name string) (*View, error)
}

// Config tunes the session cache
type Config struct {
	CacheSize    int
	TTL          time.Duration
	PortalFlavor bool
}

// Deps are the collaborators a Manager drives
type Deps struct {
	Saves     save.Service
	Catalog   *economy.Catalog
	Combat    combat.Service
	Portal    portal.Service
	Duel      duel.Service
	Daily     daily.Service
	Oracle    oracle.Service
	Cooldowns cooldown.Service
	Bus       event.Bus
	Pool      *worker.Pool
}

// Manager owns every live session
type Manager struct {
	cfg  Config
	deps Deps

	sessions *expirable.LRU[string, *Session]
	loadMu   sync.Mutex
	active   atomic.Int64

	rnd func() float64 // For fallback line picks
}

// NewManager creates the session manager
func NewManager(cfg Config, deps Deps) *Manager {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if deps.Oracle == nil {
		deps.Oracle = oracle.NewService(nil)
	}
	if deps.Bus == nil {
		deps.Bus = event.NewMemoryBus()
	}
	m := &Manager{cfg: cfg, deps: deps, rnd: utils.RandomFloat}
	m.sessions = expirable.NewLRU[string, *Session](cfg.CacheSize, m.onEvict, cfg.TTL)
	return m
}

// Key returns the player key used for saves, cooldowns and event routing
func (m *Manager) Key(name string) string {
	return m.deps.Saves.Key(name)
}

// Login loads the player's save (or starts fresh) and caches the session
func (m *Manager) Login(ctx context.Context, name string) (*LoginResult, error) {
	name, err := save.NormalizeName(name)
	if err != nil {
		return nil, err
	}
	key := m.Key(name)
	ctx = logger.WithPlayer(ctx, key)

	res := &LoginResult{}
	var s *Session
	for {
		s, err = m.getOrLoad(ctx, key, name, res)
		if err != nil {
			return nil, err
		}
		m.touch(key, s)
		s.mu.Lock()
		if !s.closed {
			break
		}
		// Evicted between lookup and lock; load it again
		s.mu.Unlock()
	}
	defer s.mu.Unlock()

	switch {
	case res.Reason == save.FreshReasonStale:
		m.notify(ctx, s, &res.Notices, domain.NoticeWarning, NoticeStaleSave)
	case res.Reason == save.FreshReasonCorrupt:
		m.notify(ctx, s, &res.Notices, domain.NoticeWarning, NoticeCorruptSave)
	case res.FreshStart:
		m.notify(ctx, s, &res.Notices, domain.NoticeInfo, fmt.Sprintf(NoticeWelcomeFmt, s.player.Name))
	default:
		m.notify(ctx, s, &res.Notices, domain.NoticeInfo, fmt.Sprintf(NoticeWelcomeBackFmt, s.player.Name))
	}

	res.Daily = m.deps.Daily.Evaluate(s.player)
	if res.Daily.Claimable {
		m.notify(ctx, s, &res.Notices, domain.NoticeSuccess, fmt.Sprintf(NoticeDailyAvailableFmt, res.Daily.Streak))
	}
	res.State = s.view(m.deps.Catalog.Items())
	return res, nil
}

// getOrLoad returns the cached session or loads and caches it, recording how it was loaded in res.
// loadMu keeps two logins from loading the same save twice.
func (m *Manager) getOrLoad(ctx context.Context, key, name string, res *LoginResult) (*Session, error) {
	if s, ok := m.sessions.Get(key); ok && !s.isClosed() {
		return s, nil
	}

	m.loadMu.Lock()
	defer m.loadMu.Unlock()

	if s, ok := m.sessions.Get(key); ok && !s.isClosed() {
		return s, nil
	}
	// An expired entry stays cached until the sweep reaches it. Removing it
	// runs onEvict, which stops its encounter and writes its final save
	// before the load below reads it.
	m.sessions.Remove(key)

	loaded, err := m.deps.Saves.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	res.FreshStart = loaded.FreshStart
	res.Reason = loaded.Reason
	s := &Session{key: key, player: loaded.Player}
	if loaded.FreshStart {
		m.store(ctx, s)
	}

	m.sessions.Add(key, s)
	metrics.ActiveSessions.Set(float64(m.active.Add(1)))
	logger.FromContext(ctx).Info(LogMsgSessionCreated, "fresh", loaded.FreshStart, "reason", loaded.Reason)
	return s, nil
}

// Logout flushes and drops the session
func (m *Manager) Logout(ctx context.Context, name string) error {
	key := m.Key(name)
	if !m.sessions.Remove(key) {
		return fmt.Errorf(ErrMsgSessionFmt, key, domain.ErrSessionNotFound)
	}
	return nil
}

// State returns a snapshot of the player's session
func (m *Manager) State(ctx context.Context, name string) (*View, error) {
	var v View
	err := m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
		v = s.view(m.deps.Catalog.Items())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// withSession runs fn with the session locked. A session closed by eviction
// between lookup and lock is treated as missing. A successful call counts as
// activity and restarts the idle TTL.
func (m *Manager) withSession(ctx context.Context, name string, fn func(ctx context.Context, s *Session) error) error {
	key := m.Key(name)
	s, ok := m.sessions.Get(key)
	if !ok {
		return fmt.Errorf(ErrMsgSessionFmt, key, domain.ErrSessionNotFound)
	}
	if err := m.locked(ctx, s, fn); err != nil {
		return err
	}
	m.touch(key, s)
	return nil
}

func (m *Manager) locked(ctx context.Context, s *Session, fn func(ctx context.Context, s *Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf(ErrMsgSessionFmt, s.key, domain.ErrSessionNotFound)
	}
	return fn(logger.WithPlayer(ctx, s.key), s)
}

// touch re-adds s to restart its TTL. Get alone does not renew it. loadMu keeps
// touch from writing s back over a session that getOrLoad just installed.
func (m *Manager) touch(key string, s *Session) {
	m.loadMu.Lock()
	defer m.loadMu.Unlock()
	if cur, ok := m.sessions.Peek(key); !ok || cur != s || s.isClosed() {
		return
	}
	m.sessions.Add(key, s)
}

// onEvict runs with the cache lock held: it must not call back into the cache.
// The final save is written before it returns, so a login that follows
// always loads the latest progress.
func (m *Manager) onEvict(key string, s *Session) {
	ctx, cancel := context.WithTimeout(logger.WithPlayer(context.Background(), key), worker.DefaultJobTimeout)
	defer cancel()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	m.endEncounter(ctx, s, event.CombatEndEvicted)
	if s.arena != nil {
		var notices []domain.Notice
		if err := m.forfeitArena(ctx, s, &notices); err != nil {
			logger.FromContext(ctx).Warn(LogMsgArenaForfeitFailed, "error", err)
		}
	}
	job := m.snapshotJob(s)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(m.active.Add(-1)))
	logger.FromContext(ctx).Info(LogMsgSessionEvicted)

	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "error", err)
	}
}

// Close evicts every session, which stops encounters and flushes saves
func (m *Manager) Close(ctx context.Context) {
	n := m.sessions.Len()
	m.sessions.Purge()
	logger.FromContext(ctx).Info(LogMsgSessionsFlushed, "sessions", n)
}

// Reset wipes the player's progress and starts over at level 1
func (m *Manager) Reset(ctx context.Context, name string) (*View, error) {
	var v View
	err := m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
		m.endEncounter(ctx, s, event.CombatEndReset)
		s.arena = nil

		if err := m.deps.Saves.Delete(ctx, s.player.Name); err != nil {
			return err
		}
		for _, action := range []string{domain.ActionArena, domain.ActionOracle} {
			if err := m.deps.Cooldowns.ResetCooldown(ctx, s.key, action); err != nil {
				logger.FromContext(ctx).Warn(LogMsgCooldownResetError, "action", action, "error", err)
			}
		}

		p := domain.NewPlayer(s.player.Name)
		progression.ApplyCatalogBaseline(p, m.deps.Catalog)
		s.player = p
		m.store(ctx, s)

		var notices []domain.Notice
		m.notify(ctx, s, &notices, domain.NoticeInfo, NoticeReset)
		v = s.view(m.deps.Catalog.Items())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (m *Manager) publish(ctx context.Context, evt event.Event) {
	if err := m.deps.Bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// notify records a notice for the response and streams it to the player
func (m *Manager) notify(ctx context.Context, s *Session, list *[]domain.Notice, kind domain.NoticeKind, msg string) {
	*list = append(*list, domain.Notice{Kind: kind, Message: msg})
	m.publish(ctx, event.NewNotice(s.key, kind, msg))
}

// publishGain announces level-ups from an experience grant
func (m *Manager) publishGain(ctx context.Context, s *Session, list *[]domain.Notice, gain progression.GainResult) {
	if gain.LevelsGained == 0 {
		return
	}
	m.publish(ctx, event.New(event.PlayerLeveledUp, s.key, event.PlayerLeveledUpPayloadV1{
		OldLevel:        gain.NewLevel - gain.LevelsGained,
		NewLevel:        gain.NewLevel,
		CurrencyGranted: gain.CurrencyGranted,
	}))
	m.notify(ctx, s, list, domain.NoticeSuccess, fmt.Sprintf(NoticeLevelUpFmt, gain.NewLevel, gain.CurrencyGranted))
}
