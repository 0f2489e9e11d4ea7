package combat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/logger"
	"github.com/osse101/PortalQuest_Go/internal/progression"
	"github.com/osse101/PortalQuest_Go/internal/scheduler"
	"github.com/osse101/PortalQuest_Go/internal/utils"
)

// TickFunc receives the id of the encounter whose attack timer fired.
// The owner must ignore ids that no longer match its current encounter.
type TickFunc func(encounterID uuid.UUID)

// Reward is granted when an enemy is defeated
type Reward struct {
	Currency   int                    `json:"currency"`
	Doubled    bool                   `json:"doubled"`
	Experience progression.GainResult `json:"experience"`
}

// AttackResult is the outcome of a player attack
type AttackResult struct {
	Dodged      bool    `json:"dodged"`
	Damage      int     `json:"damage"`
	EnemyHealth int     `json:"enemy_health"`
	Victory     bool    `json:"victory"`
	Reward      *Reward `json:"reward,omitempty"`
}

// EnemyAttackResult is the outcome of one enemy strike
type EnemyAttackResult struct {
	Damage        int  `json:"damage"`
	Burst         bool `json:"burst"`
	PlayerHealth  int  `json:"player_health"`
	Defeated      bool `json:"defeated"`
	CurrencyLost  int  `json:"currency_lost,omitempty"`
	RespawnHealth int  `json:"respawn_health,omitempty"`
}

// Service runs the PvE state machine: Idle -> InCombat -> Idle
type Service interface {
	Begin(ctx context.Context, p *domain.Player, onTick TickFunc) *domain.Encounter
	PlayerAttack(ctx context.Context, p *domain.Player, enc *domain.Encounter) (*AttackResult, error)
	EnemyAttack(ctx context.Context, p *domain.Player, enc *domain.Encounter) (*EnemyAttackResult, error)
	End(ctx context.Context, enc *domain.Encounter, reason string)
}

type service struct {
	sched    *scheduler.Scheduler
	interval time.Duration
	rnd      func() float64 // For rolling RNG
}

// NewService creates the combat service. Enemy attacks run on sched every interval.
func NewService(sched *scheduler.Scheduler, interval time.Duration) Service {
	if interval <= 0 {
		interval = DefaultAttackInterval
	}
	return &service{
		sched:    sched,
		interval: interval,
		rnd:      utils.RandomFloat,
	}
}

// EnemyMaxHealth is linear in enemy level
func EnemyMaxHealth(level int) int {
	return EnemyBaseHealth + EnemyHealthPerLevel*level
}

func (s *service) Begin(ctx context.Context, p *domain.Player, onTick TickFunc) *domain.Encounter {
	archetype := domain.Archetypes[utils.RollInt(s.rnd, 0, len(domain.Archetypes)-1)]
	level := p.Level + utils.RollInt(s.rnd, -EnemyLevelSpread, EnemyLevelSpread)
	if level < 1 {
		level = 1
	}
	maxHealth := EnemyMaxHealth(level)

	enc := &domain.Encounter{
		ID:        uuid.New(),
		Name:      EnemyName(archetype, s.rnd()),
		Archetype: archetype,
		Level:     level,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}

	id := enc.ID
	enc.Attacks = s.sched.Schedule(s.interval, func() { onTick(id) })

	logger.FromContext(ctx).Info(LogMsgEncounterStarted,
		"player", p.Name, "encounter_id", enc.ID, "enemy", enc.Name, "archetype", archetype, "level", level)
	return enc
}

func (s *service) PlayerAttack(ctx context.Context, p *domain.Player, enc *domain.Encounter) (*AttackResult, error) {
	if enc == nil {
		return nil, fmt.Errorf(ErrMsgNoEncounterFmt, domain.ErrNotInCombat)
	}

	if enc.Archetype == domain.ArchetypeLurker && s.rnd() < LurkerDodgeChance {
		return &AttackResult{Dodged: true, EnemyHealth: enc.Health}, nil
	}

	damage := PlayerBaseDamage + PlayerDamagePerLevel*p.Level + utils.RollInt(s.rnd, 0, PlayerDamageRandMax)
	if enc.Archetype == domain.ArchetypeGolem {
		damage += p.Bonuses.GolemAttackBonus
	}

	enc.Health -= damage
	if enc.Health < 0 {
		enc.Health = 0
	}
	res := &AttackResult{Damage: damage, EnemyHealth: enc.Health}
	if !enc.IsDefeated() {
		return res, nil
	}

	currency := RewardCurrencyPerLevel*enc.Level + utils.RollInt(s.rnd, 0, RewardCurrencyRandMax)
	doubled := p.Bonuses.RewardDoubleChance > 0 && s.rnd() < p.Bonuses.RewardDoubleChance
	if doubled {
		currency *= RewardDoubleFactor
	}
	progression.AddCurrency(p, currency)
	gain := progression.GainExperience(p, RewardXPPerLevel*enc.Level)

	res.Victory = true
	res.Reward = &Reward{Currency: currency, Doubled: doubled, Experience: gain}

	logger.FromContext(ctx).Info(LogMsgEnemyDefeated,
		"player", p.Name, "encounter_id", enc.ID, "currency", currency, "doubled", doubled, "xp", gain.Gained)
	s.End(ctx, enc, "victory")
	return res, nil
}

func (s *service) EnemyAttack(ctx context.Context, p *domain.Player, enc *domain.Encounter) (*EnemyAttackResult, error) {
	if enc == nil {
		return nil, fmt.Errorf(ErrMsgNoEncounterFmt, domain.ErrNotInCombat)
	}

	raw := float64(EnemyBaseDamage + EnemyDamagePerLevel*enc.Level)
	burst := enc.Archetype == domain.ArchetypeElemental && s.rnd() < ElementalBurstChance
	if burst {
		raw *= ElementalBurstMultiplier
	}
	damage := int(raw * (1 - p.Bonuses.DamageReduction))
	if damage < MinEnemyDamage {
		damage = MinEnemyDamage
	}

	p.Health -= damage
	res := &EnemyAttackResult{Damage: damage, Burst: burst}
	if p.Health > 0 {
		res.PlayerHealth = p.Health
		return res, nil
	}

	p.Health = 0
	kept := utils.FloorScale(p.Currency, DefeatCurrencyFraction)
	res.CurrencyLost = p.Currency - kept
	p.Currency = kept
	p.Health = utils.FloorScale(p.MaxHealth, RespawnHealthFraction)

	res.Defeated = true
	res.RespawnHealth = p.Health
	res.PlayerHealth = p.Health

	logger.FromContext(ctx).Info(LogMsgPlayerDefeated,
		"player", p.Name, "encounter_id", enc.ID, "currency_lost", res.CurrencyLost)
	s.End(ctx, enc, "defeat")
	return res, nil
}

// End stops the encounter's attack timer. Safe to call on any exit path, repeatedly.
func (s *service) End(ctx context.Context, enc *domain.Encounter, reason string) {
	if enc == nil || enc.Attacks == nil {
		return
	}
	enc.Attacks.Stop()
	logger.FromContext(ctx).Debug(LogMsgEncounterEnded, "encounter_id", enc.ID, "reason", reason)
}
