package cooldown

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/osse101/PortalQuest_Go/internal/logger"
)

// RedisOptions configures the redis connection
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// redisPingTimeout bounds the connection check in NewRedisClient
const redisPingTimeout = 5 * time.Second

// NewRedisClient connects to redis and verifies the connection
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf(ErrMsgRedisPingFailed, err)
	}
	return client, nil
}

// redisBackend stores last-used timestamps as unix nanoseconds with a TTL equal to the cooldown
type redisBackend struct {
	client *redis.Client
	config Config
	now    func() time.Time
}

// NewRedisService creates a cooldown service shared by every process using the same redis
func NewRedisService(client *redis.Client, config Config) Service {
	return &redisBackend{
		client: client,
		config: config,
		now:    time.Now,
	}
}

func redisKey(prefix, playerKey, action string) string {
	return strings.Join([]string{prefix, playerKey, action}, HashSeparator)
}

func (b *redisBackend) CheckCooldown(ctx context.Context, playerKey, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}

	duration := b.config.Duration(action)
	held, err := b.client.Exists(ctx, redisKey(RedisLockKeyPrefix, playerKey, action)).Result()
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
	}
	if held > 0 {
		return true, duration, nil
	}

	lastUsed, err := b.GetLastUsed(ctx, playerKey, action)
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
	}
	on, rem := remaining(lastUsed, duration, b.now())
	return on, rem, nil
}

func (b *redisBackend) EnforceCooldown(ctx context.Context, playerKey, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "action", action, "player", playerKey)
		return fn()
	}

	// PHASE 1: Cheap check - fast rejection
	onCooldown, rem, err := b.CheckCooldown(ctx, playerKey, action)
	if err != nil {
		return err
	}
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: rem}
	}

	// PHASE 2: Hold the action while fn runs; the TTL frees it if this process dies
	duration := b.config.Duration(action)
	lockTTL := duration
	if lockTTL <= 0 {
		lockTTL = DefaultCooldownDuration
	}
	lockKey := redisKey(RedisLockKeyPrefix, playerKey, action)
	acquired, err := b.client.SetNX(ctx, lockKey, b.now().UnixNano(), lockTTL).Result()
	if err != nil {
		return fmt.Errorf(ErrMsgAcquireLockFailed, err)
	}
	if !acquired {
		log.Debug(LogMsgRaceConditionDetected, "action", action, "player", playerKey)
		return ErrOnCooldown{Action: action, Remaining: duration}
	}
	defer func() {
		if err := b.client.Del(context.WithoutCancel(ctx), lockKey).Err(); err != nil {
			log.Warn(LogMsgLockReleaseFailed, "action", action, "player", playerKey, "error", err)
		}
	}()

	if err := fn(); err != nil {
		return err
	}

	if err := b.set(ctx, playerKey, action, duration); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}
	log.Debug(LogMsgCooldownEnforced, "action", action, "player", playerKey)
	return nil
}

func (b *redisBackend) set(ctx context.Context, playerKey, action string, duration time.Duration) error {
	return b.client.Set(ctx, redisKey(RedisKeyPrefix, playerKey, action), b.now().UnixNano(), duration).Err()
}

func (b *redisBackend) StartCooldown(ctx context.Context, playerKey, action string) error {
	if err := b.set(ctx, playerKey, action, b.config.Duration(action)); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}
	logger.FromContext(ctx).Debug(LogMsgCooldownStarted, "action", action, "player", playerKey)
	return nil
}

func (b *redisBackend) ResetCooldown(ctx context.Context, playerKey, action string) error {
	if err := b.client.Del(ctx, redisKey(RedisKeyPrefix, playerKey, action)).Err(); err != nil {
		return fmt.Errorf(ErrMsgResetCooldownFailed, err)
	}
	return nil
}

func (b *redisBackend) GetLastUsed(ctx context.Context, playerKey, action string) (*time.Time, error) {
	raw, err := b.client.Get(ctx, redisKey(RedisKeyPrefix, playerKey, action)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetLastUsedFailed, err)
	}
	nanos, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseLastUsedFailed, raw, err)
	}
	t := time.Unix(0, nanos)
	return &t, nil
}
