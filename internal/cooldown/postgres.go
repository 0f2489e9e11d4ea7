package cooldown

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PortalQuest_Go/internal/logger"
)

// postgresBackend implements Service using PostgreSQL
type postgresBackend struct {
	db     *pgxpool.Pool
	config Config
}

// NewPostgresService creates a new cooldown service with Postgres backend
func NewPostgresService(db *pgxpool.Pool, config Config) Service {
	return &postgresBackend{
		db:     db,
		config: config,
	}
}

// CheckCooldown checks if a player's action is on cooldown (unlocked read)
func (b *postgresBackend) CheckCooldown(ctx context.Context, playerKey, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}

	lastUsed, err := b.getLastUsed(ctx, b.db, playerKey, action)
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
	}

	onCooldown, rem := remaining(lastUsed, b.config.Duration(action), time.Now())
	return onCooldown, rem, nil
}

// EnforceCooldown uses check-then-lock: an unlocked read rejects most requests,
// then an advisory lock serializes the recheck, fn and the timestamp update.
func (b *postgresBackend) EnforceCooldown(ctx context.Context, playerKey, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	onCooldown, rem, err := b.CheckCooldown(ctx, playerKey, action)
	if err != nil {
		return err
	}
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: rem}
	}

	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "action", action, "player", playerKey)
		return fn()
	}

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Advisory locks work even when no row exists (unlike SELECT FOR UPDATE)
	if _, err = tx.Exec(ctx, SQLAdvisoryLock, hashPlayerAction(playerKey, action)); err != nil {
		return fmt.Errorf(ErrMsgAcquireLockFailed, err)
	}

	lastUsed, err := b.getLastUsed(ctx, tx, playerKey, action)
	if err != nil {
		return fmt.Errorf(ErrMsgGetCooldownTxFailed, err)
	}
	if on, rem := remaining(lastUsed, b.config.Duration(action), time.Now()); on {
		log.Debug(LogMsgRaceConditionDetected, "action", action, "player", playerKey, "remaining", rem)
		return ErrOnCooldown{Action: action, Remaining: rem}
	}

	if err := fn(); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, SQLUpsertCooldown, playerKey, action, time.Now()); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}

	// Commit transaction (releases advisory lock automatically)
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Debug(LogMsgCooldownEnforced, "action", action, "player", playerKey)
	return nil
}

func (b *postgresBackend) StartCooldown(ctx context.Context, playerKey, action string) error {
	if _, err := b.db.Exec(ctx, SQLUpsertCooldown, playerKey, action, time.Now()); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}
	logger.FromContext(ctx).Debug(LogMsgCooldownStarted, "action", action, "player", playerKey)
	return nil
}

// ResetCooldown manually resets a cooldown
func (b *postgresBackend) ResetCooldown(ctx context.Context, playerKey, action string) error {
	if _, err := b.db.Exec(ctx, SQLDeleteCooldown, playerKey, action); err != nil {
		return fmt.Errorf(ErrMsgResetCooldownFailed, err)
	}
	return nil
}

// GetLastUsed returns when action was last performed
func (b *postgresBackend) GetLastUsed(ctx context.Context, playerKey, action string) (*time.Time, error) {
	return b.getLastUsed(ctx, b.db, playerKey, action)
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (b *postgresBackend) getLastUsed(ctx context.Context, q rowQuerier, playerKey, action string) (*time.Time, error) {
	var lastUsed time.Time
	err := q.QueryRow(ctx, SQLSelectLastUsed, playerKey, action).Scan(&lastUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No cooldown record
		}
		return nil, fmt.Errorf(ErrMsgGetLastUsedFailed, err)
	}
	return &lastUsed, nil
}

// hashPlayerAction creates a consistent int64 hash from player key + action for advisory locking
func hashPlayerAction(playerKey, action string) int64 {
	h := sha256.Sum256([]byte(playerKey + HashSeparator + action))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}
