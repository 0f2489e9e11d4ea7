package economy

import (
	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/progression"
	"github.com/osse101/PortalQuest_Go/internal/utils"
)

// effectFunc is a pure transform applied when an upgrade is bought or replayed
type effectFunc func(p *domain.Player)

// effects is the strategy table keyed by effect kind.
// Permanent effects only add to the baseline so replaying them is safe.
var effects = map[domain.EffectKind]effectFunc{
	domain.EffectPortalRewards: func(p *domain.Player) {
		p.Bonuses.PortalMinBonus += PortalMinBonusStep
		p.Bonuses.PortalMaxBonus += PortalMaxBonusStep
	},
	domain.EffectGolemBreaker: func(p *domain.Player) {
		p.Bonuses.GolemAttackBonus += GolemAttackBonusStep
	},
	domain.EffectXPMultiplier: func(p *domain.Player) {
		p.Bonuses.XPMultiplier += XPMultiplierStep
	},
	domain.EffectDamageReduction: func(p *domain.Player) {
		p.Bonuses.DamageReduction += DamageReductionStep
		if p.Bonuses.DamageReduction > MaxDamageReduction {
			p.Bonuses.DamageReduction = MaxDamageReduction
		}
	},
	domain.EffectArenaHeal: func(p *domain.Player) {
		p.Bonuses.ArenaHealBonus += ArenaHealBonusStep
	},
	domain.EffectRewardDouble: func(p *domain.Player) {
		p.Bonuses.RewardDoubleChance += RewardDoubleChanceStep
	},
	domain.EffectXPPotion: func(p *domain.Player) {
		p.AddBuff(domain.BuffXPBoost, domain.BuffXPBoostLabel, XPPotionUses)
	},
	domain.EffectHealthPotion: func(p *domain.Player) {
		progression.Heal(p, utils.FloorScale(p.MaxHealth, HealthPotionHealPercent))
	},
}

var defaultItems = []domain.UpgradeItem{
	{
		ID:          ItemPortalAttunement,
		Name:        "Portal Attunement",
		Description: "Portals yield +1 minimum and +2 maximum currency.",
		Cost:        50,
		Effect:      domain.EffectPortalRewards,
	},
	{
		ID:          ItemGolemBreaker,
		Name:        "Golem Breaker",
		Description: "+5 damage against golems.",
		Cost:        100,
		Effect:      domain.EffectGolemBreaker,
	},
	{
		ID:          ItemScholarsTome,
		Name:        "Scholar's Tome",
		Description: "+25% experience from every source.",
		Cost:        150,
		Effect:      domain.EffectXPMultiplier,
	},
	{
		ID:          ItemIronSkin,
		Name:        "Iron Skin",
		Description: "Enemy attacks deal 15% less damage.",
		Cost:        200,
		Effect:      domain.EffectDamageReduction,
	},
	{
		ID:          ItemArenaMedic,
		Name:        "Arena Medic",
		Description: "Arena heals restore 50% more health.",
		Cost:        120,
		Effect:      domain.EffectArenaHeal,
	},
	{
		ID:          ItemLuckyCharm,
		Name:        "Lucky Charm",
		Description: "20% chance to double currency from defeated enemies.",
		Cost:        250,
		Effect:      domain.EffectRewardDouble,
	},
	{
		ID:          ItemXPPotion,
		Name:        "XP Potion",
		Description: "Double experience for the next 10 gains.",
		Cost:        40,
		Consumable:  true,
		Effect:      domain.EffectXPPotion,
	},
	{
		ID:          ItemHealthPotion,
		Name:        "Health Potion",
		Description: "Restore half of your max health.",
		Cost:        25,
		Consumable:  true,
		Effect:      domain.EffectHealthPotion,
	},
}

// Catalog is the static, ordered upgrade list
type Catalog struct {
	items []domain.UpgradeItem
	index map[string]int
}

// NewCatalog returns the built-in catalog
func NewCatalog() *Catalog {
	return newCatalog(defaultItems)
}

func newCatalog(items []domain.UpgradeItem) *Catalog {
	c := &Catalog{
		items: make([]domain.UpgradeItem, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(c.items, items)
	for i, item := range c.items {
		c.index[item.ID] = i
	}
	return c
}

// Items returns the catalog in replay order
func (c *Catalog) Items() []domain.UpgradeItem {
	out := make([]domain.UpgradeItem, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup finds an item by id
func (c *Catalog) Lookup(id string) (domain.UpgradeItem, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.UpgradeItem{}, false
	}
	return c.items[i], true
}

// ApplyEffect runs the item's transform; unknown effect kinds are a no-op
func (c *Catalog) ApplyEffect(p *domain.Player, item domain.UpgradeItem) {
	if fn, ok := effects[item.Effect]; ok {
		fn(p)
	}
}

// Shop annotates every item with the player's purchase state
func (c *Catalog) Shop(p *domain.Player) []domain.ShopEntry {
	entries := make([]domain.ShopEntry, 0, len(c.items))
	for _, item := range c.items {
		purchased := !item.Consumable && p.Purchased[item.ID]
		entries = append(entries, domain.ShopEntry{
			UpgradeItem: item,
			Purchased:   purchased,
			Affordable:  !purchased && p.Currency >= item.Cost,
		})
	}
	return entries
}
