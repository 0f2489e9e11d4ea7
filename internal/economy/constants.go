package economy

// ==================== Catalog Item IDs ====================

const (
	ItemPortalAttunement = "portal_attunement"
	ItemGolemBreaker     = "golem_breaker"
	ItemScholarsTome     = "scholars_tome"
	ItemIronSkin         = "iron_skin"
	ItemArenaMedic       = "arena_medic"
	ItemLuckyCharm       = "lucky_charm"
	ItemXPPotion         = "xp_potion"
	ItemHealthPotion     = "health_potion"
)

// ==================== Effect Magnitudes ====================

const (
	PortalMinBonusStep      = 1
	PortalMaxBonusStep      = 2
	GolemAttackBonusStep    = 5
	XPMultiplierStep        = 0.25
	DamageReductionStep     = 0.15
	ArenaHealBonusStep      = 0.5
	RewardDoubleChanceStep  = 0.2
	XPPotionUses            = 10
	HealthPotionHealPercent = 0.5
)

// MaxDamageReduction caps stacked reduction so enemy hits always land
const MaxDamageReduction = 0.9

// ==================== Error Messages ====================

const (
	ErrMsgItemNotFoundFmt      = "item %q: %w"
	ErrMsgAlreadyPurchasedFmt  = "item %q: %w"
	ErrMsgInsufficientFundsFmt = "item %q costs %d, balance %d: %w"
	ErrMsgUnknownEffectFmt     = "item %q has no effect handler for %q"
)

// ==================== Log Messages ====================

const (
	LogMsgPurchaseCalled    = "Purchase called"
	LogMsgItemPurchased     = "Upgrade purchased"
	LogMsgPurchaseRejected  = "Purchase rejected"
	LogMsgUnknownEffectKind = "Catalog item has no effect handler"
)
