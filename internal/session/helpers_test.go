package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/osse101/PortalQuest_Go/internal/combat"
	"github.com/osse101/PortalQuest_Go/internal/cooldown"
	"github.com/osse101/PortalQuest_Go/internal/daily"
	"github.com/osse101/PortalQuest_Go/internal/database/memory"
	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/duel"
	"github.com/osse101/PortalQuest_Go/internal/economy"
	"github.com/osse101/PortalQuest_Go/internal/event"
	"github.com/osse101/PortalQuest_Go/internal/portal"
	"github.com/osse101/PortalQuest_Go/internal/progression"
	"github.com/osse101/PortalQuest_Go/internal/save"
	"github.com/osse101/PortalQuest_Go/internal/scheduler"
	"github.com/osse101/PortalQuest_Go/internal/worker"
)

// fakePortal pays a fixed reward and starts combat on demand
type fakePortal struct {
	mu       sync.Mutex
	currency int
	combat   bool
}

func (f *fakePortal) set(currency int, startCombat bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.currency = currency
	f.combat = startCombat
}

func (f *fakePortal) Enter(_ context.Context, p *domain.Player, inCombat bool) *portal.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	progression.AddCurrency(p, f.currency)
	return &portal.Result{
		Currency:    f.currency,
		Experience:  progression.GainExperience(p, 1),
		StartCombat: f.combat && !inCombat,
	}
}

// fakeOracle returns canned results
type fakeOracle struct {
	mu       sync.Mutex
	opponent domain.Opponent
	oppErr   error
	answer   string
	askErr   error
	asked    int
	onAsk    func() // runs while the question is in flight
}

func (f *fakeOracle) GenerateOpponent(_ context.Context, _ string, _ int) (domain.Opponent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opponent, f.oppErr
}

func (f *fakeOracle) Ask(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	f.asked++
	hook := f.onAsk
	answer, err := f.answer, f.askErr
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return answer, err
}

func (f *fakeOracle) PortalFlavor(_ context.Context, _ int) (string, error) {
	return "The air hums.", nil
}

// recorder captures every published event
type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) handle(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *recorder) ofType(t event.Type) []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Event
	for _, evt := range r.events {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

type testEnv struct {
	manager *Manager
	store   *memory.Store
	saves   save.Service
	portal  *fakePortal
	oracle  *fakeOracle
	events  *recorder
	sched   *scheduler.Scheduler
}

func newTestEnv(t *testing.T, attackInterval time.Duration) *testEnv {
	t.Helper()
	return newTestEnvWith(t, attackInterval, Config{CacheSize: 16, TTL: time.Hour}, nil)
}

// newTestEnvWith builds an env with a custom cache config and an optional save pool
func newTestEnvWith(t *testing.T, attackInterval time.Duration, cfg Config, pool *worker.Pool) *testEnv {
	t.Helper()

	catalog := economy.NewCatalog()
	store := memory.New()
	saves := save.NewService(store, catalog, "test")
	sched := scheduler.New()
	bus := event.NewMemoryBus()
	rec := &recorder{}
	for _, typ := range event.AllTypes() {
		bus.Subscribe(typ, rec.handle)
	}

	env := &testEnv{
		store:  store,
		saves:  saves,
		portal: &fakePortal{currency: 10},
		oracle: &fakeOracle{answer: "The stars say yes."},
		events: rec,
		sched:  sched,
	}
	env.manager = NewManager(cfg, Deps{
		Saves:     saves,
		Catalog:   catalog,
		Combat:    combat.NewService(sched, attackInterval),
		Portal:    env.portal,
		Duel:      duel.NewService(),
		Daily:     daily.NewService(),
		Oracle:    env.oracle,
		Cooldowns: cooldown.NewMemoryService(cooldown.Config{}),
		Bus:       bus,
		Pool:      pool,
	})

	t.Cleanup(func() {
		env.manager.Close(context.Background())
		sched.Stop()
		if pool != nil {
			pool.Stop()
		}
	})
	return env
}

// fund gives the player currency through the portal
func (env *testEnv) fund(t *testing.T, name string, amount int) {
	t.Helper()
	env.portal.set(amount, false)
	_, err := env.manager.EnterPortal(context.Background(), name)
	if err != nil {
		t.Fatalf("fund: %v", err)
	}
	env.portal.set(10, false)
}
