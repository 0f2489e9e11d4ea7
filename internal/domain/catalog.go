package domain

// EffectKind identifies the state transform an upgrade applies.
// The transforms themselves live in the economy package strategy table.
type EffectKind string

const (
	EffectPortalRewards   EffectKind = "portal_rewards"
	EffectGolemBreaker    EffectKind = "golem_breaker"
	EffectXPMultiplier    EffectKind = "xp_multiplier"
	EffectDamageReduction EffectKind = "damage_reduction"
	EffectArenaHeal       EffectKind = "arena_heal"
	EffectRewardDouble    EffectKind = "reward_double"
	EffectXPPotion        EffectKind = "xp_potion"
	EffectHealthPotion    EffectKind = "health_potion"
)

// UpgradeItem is an immutable shop definition
type UpgradeItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Cost        int        `json:"cost"`
	Consumable  bool       `json:"consumable"`
	Effect      EffectKind `json:"effect"`
}

// ShopEntry is a catalog item annotated with the player's purchase state
type ShopEntry struct {
	UpgradeItem
	Purchased  bool `json:"purchased"`
	Affordable bool `json:"affordable"`
}
