package domain

import "time"

// Buff is a timed modifier that loses one use each time the event it boosts happens
type Buff struct {
	UsesLeft int    `json:"uses_left"`
	Label    string `json:"label"`
}

// Bonuses holds the derived values produced by replaying purchased upgrades.
// They are never persisted; see progression.ApplyCatalogBaseline.
type Bonuses struct {
	PortalMinBonus     int     `json:"portal_min_bonus"`
	PortalMaxBonus     int     `json:"portal_max_bonus"`
	GolemAttackBonus   int     `json:"golem_attack_bonus"`
	XPMultiplier       float64 `json:"xp_multiplier"`
	DamageReduction    float64 `json:"damage_reduction"`
	ArenaHealBonus     float64 `json:"arena_heal_bonus"`
	RewardDoubleChance float64 `json:"reward_double_chance"`
}

// BaselineBonuses returns the zero-state bonuses every player starts from
func BaselineBonuses() Bonuses {
	return Bonuses{XPMultiplier: BaseXPMultiplier}
}

// Player is the single mutable aggregate owned by a session
type Player struct {
	Name string `json:"name"`

	Level         int `json:"level"`
	Experience    int `json:"experience"`
	XPToNextLevel int `json:"xp_to_next_level"`
	Currency      int `json:"currency"`

	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`

	Purchased map[string]bool  `json:"-"`
	Buffs     map[string]*Buff `json:"buffs"`

	LastLogin string    `json:"last_login,omitempty"` // YYYY-MM-DD of the last claimed daily reward
	Streak    int       `json:"streak"`
	LastSeen  time.Time `json:"last_seen"`

	Bonuses Bonuses `json:"-"`
}

// NewPlayer returns a fresh level 1 player
func NewPlayer(name string) *Player {
	return &Player{
		Name:          name,
		Level:         1,
		XPToNextLevel: BaseXPToNextLevel,
		Health:        BaseMaxHealth,
		MaxHealth:     BaseMaxHealth,
		Purchased:     make(map[string]bool),
		Buffs:         make(map[string]*Buff),
		Bonuses:       BaselineBonuses(),
	}
}

// HasBuff reports whether the buff is present with uses remaining
func (p *Player) HasBuff(key string) bool {
	b, ok := p.Buffs[key]
	return ok && b != nil && b.UsesLeft > 0
}

// AddBuff adds uses to a buff, creating it when absent
func (p *Player) AddBuff(key, label string, uses int) {
	if p.Buffs == nil {
		p.Buffs = make(map[string]*Buff)
	}
	if b, ok := p.Buffs[key]; ok && b != nil {
		b.UsesLeft += uses
		b.Label = label
		return
	}
	p.Buffs[key] = &Buff{UsesLeft: uses, Label: label}
}

// ConsumeBuff removes one use and deletes the buff when it runs out.
// Returns false when the buff was not active.
func (p *Player) ConsumeBuff(key string) bool {
	if !p.HasBuff(key) {
		delete(p.Buffs, key)
		return false
	}
	b := p.Buffs[key]
	b.UsesLeft--
	if b.UsesLeft <= 0 {
		delete(p.Buffs, key)
	}
	return true
}

// IsDead reports whether health has reached zero
func (p *Player) IsDead() bool {
	return p.Health <= 0
}
