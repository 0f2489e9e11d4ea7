package progression

import (
	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/utils"
)

// Catalog is the upgrade list replayed by ApplyCatalogBaseline
type Catalog interface {
	Items() []domain.UpgradeItem
	ApplyEffect(p *domain.Player, item domain.UpgradeItem)
}

// GainResult describes what a single experience grant did to the player
type GainResult struct {
	Gained          int  `json:"gained"`
	LevelsGained    int  `json:"levels_gained"`
	CurrencyGranted int  `json:"currency_granted"`
	BoostUsed       bool `json:"boost_used"`
	NewLevel        int  `json:"new_level"`
}

// LevelUpResult is the outcome of EvaluateLevelUp
type LevelUpResult struct {
	LevelsGained    int
	CurrencyGranted int
}

// MaxHealthForLevel is the only source of max health; stored values are never trusted
func MaxHealthForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return domain.BaseMaxHealth + domain.HealthPerLevel*(level-1)
}

// XPThresholdForLevel returns the experience needed to leave the given level
func XPThresholdForLevel(level int) int {
	threshold := domain.BaseXPToNextLevel
	for l := 1; l < level; l++ {
		threshold = utils.FloorScale(threshold, XPGrowthFactor)
	}
	return threshold
}

// GainExperience scales amount by the experience multiplier and the xp_boost buff,
// adds it and cascades level-ups. An active boost loses one use per call.
func GainExperience(p *domain.Player, amount int) GainResult {
	multiplier := p.Bonuses.XPMultiplier
	boosted := p.ConsumeBuff(domain.BuffXPBoost)
	if boosted {
		multiplier *= XPBoostFactor
	}

	gained := int(float64(amount) * multiplier)
	if gained < 0 {
		gained = 0
	}
	p.Experience += gained

	lvl := EvaluateLevelUp(p)
	return GainResult{
		Gained:          gained,
		LevelsGained:    lvl.LevelsGained,
		CurrencyGranted: lvl.CurrencyGranted,
		BoostUsed:       boosted,
		NewLevel:        p.Level,
	}
}

// EvaluateLevelUp levels the player while experience covers the threshold.
// Each level restores health to the new max and grants currency.
func EvaluateLevelUp(p *domain.Player) LevelUpResult {
	var res LevelUpResult
	if p.XPToNextLevel <= 0 {
		p.XPToNextLevel = XPThresholdForLevel(p.Level)
	}

	for p.Experience >= p.XPToNextLevel && res.LevelsGained < MaxLevelUpsPerGain {
		p.Level++
		p.Experience -= p.XPToNextLevel
		p.XPToNextLevel = utils.FloorScale(p.XPToNextLevel, XPGrowthFactor)
		p.MaxHealth = MaxHealthForLevel(p.Level)
		p.Health = p.MaxHealth

		reward := p.Level * LevelUpCurrencyPerLevel
		p.Currency += reward

		res.LevelsGained++
		res.CurrencyGranted += reward
	}
	return res
}

// ApplyCatalogBaseline resets derived bonuses and replays purchased permanent upgrades
// in catalog order. Calling it repeatedly yields the same bonuses.
func ApplyCatalogBaseline(p *domain.Player, catalog Catalog) {
	p.Bonuses = domain.BaselineBonuses()
	for _, item := range catalog.Items() {
		if item.Consumable || !p.Purchased[item.ID] {
			continue
		}
		catalog.ApplyEffect(p, item)
	}
}

// AddCurrency credits or debits currency, never going below zero
func AddCurrency(p *domain.Player, amount int) {
	p.Currency += amount
	if p.Currency < 0 {
		p.Currency = 0
	}
}

// Heal restores health up to max and returns the amount actually restored
func Heal(p *domain.Player, amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.Health
	p.Health = utils.Clamp(p.Health+amount, 0, p.MaxHealth)
	return p.Health - before
}

// ClampVitals repairs out-of-range values in place; violations are never surfaced
func ClampVitals(p *domain.Player) {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.XPToNextLevel <= 0 {
		p.XPToNextLevel = XPThresholdForLevel(p.Level)
	}
	if p.Experience < 0 {
		p.Experience = 0
	}
	if p.Currency < 0 {
		p.Currency = 0
	}
	p.MaxHealth = MaxHealthForLevel(p.Level)
	p.Health = utils.Clamp(p.Health, 0, p.MaxHealth)
	if p.Purchased == nil {
		p.Purchased = make(map[string]bool)
	}
	if p.Buffs == nil {
		p.Buffs = make(map[string]*domain.Buff)
	}
	for key, b := range p.Buffs {
		if b == nil || b.UsesLeft <= 0 {
			delete(p.Buffs, key)
		}
	}
}
