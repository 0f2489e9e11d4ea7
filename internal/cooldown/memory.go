package cooldown

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/PortalQuest_Go/internal/logger"
)

type memoryKey struct {
	player string
	action string
}

// memoryBackend keeps cooldowns in process memory
type memoryBackend struct {
	mu       sync.Mutex
	lastUsed map[memoryKey]time.Time
	inFlight map[memoryKey]bool
	config   Config
	now      func() time.Time
}

// NewMemoryService creates a cooldown service that lives and dies with the process
func NewMemoryService(config Config) Service {
	return &memoryBackend{
		lastUsed: make(map[memoryKey]time.Time),
		inFlight: make(map[memoryKey]bool),
		config:   config,
		now:      time.Now,
	}
}

func (b *memoryBackend) CheckCooldown(ctx context.Context, playerKey, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	on, rem := b.checkLocked(memoryKey{playerKey, action})
	return on, rem, nil
}

func (b *memoryBackend) checkLocked(k memoryKey) (bool, time.Duration) {
	duration := b.config.Duration(k.action)
	if b.inFlight[k] {
		return true, duration
	}
	t, ok := b.lastUsed[k]
	if !ok {
		return false, 0
	}
	return remaining(&t, duration, b.now())
}

func (b *memoryBackend) EnforceCooldown(ctx context.Context, playerKey, action string, fn func() error) error {
	log := logger.FromContext(ctx)
	k := memoryKey{playerKey, action}

	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "action", action, "player", playerKey)
		return fn()
	}

	b.mu.Lock()
	if on, rem := b.checkLocked(k); on {
		b.mu.Unlock()
		return ErrOnCooldown{Action: action, Remaining: rem}
	}
	b.inFlight[k] = true
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	delete(b.inFlight, k)
	if err == nil {
		b.lastUsed[k] = b.now()
	}
	b.mu.Unlock()

	if err != nil {
		return err
	}
	log.Debug(LogMsgCooldownEnforced, "action", action, "player", playerKey)
	return nil
}

func (b *memoryBackend) StartCooldown(ctx context.Context, playerKey, action string) error {
	b.mu.Lock()
	b.lastUsed[memoryKey{playerKey, action}] = b.now()
	b.mu.Unlock()
	logger.FromContext(ctx).Debug(LogMsgCooldownStarted, "action", action, "player", playerKey)
	return nil
}

func (b *memoryBackend) ResetCooldown(ctx context.Context, playerKey, action string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.lastUsed, memoryKey{playerKey, action})
	return nil
}

func (b *memoryBackend) GetLastUsed(ctx context.Context, playerKey, action string) (*time.Time, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.lastUsed[memoryKey{playerKey, action}]
	if !ok {
		return nil, nil
	}
	return &t, nil
}
