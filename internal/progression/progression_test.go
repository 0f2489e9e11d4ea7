package progression

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PortalQuest_Go/internal/domain"
)

type fakeCatalog struct {
	items   []domain.UpgradeItem
	applied []string
}

func (c *fakeCatalog) Items() []domain.UpgradeItem { return c.items }

func (c *fakeCatalog) ApplyEffect(p *domain.Player, item domain.UpgradeItem) {
	c.applied = append(c.applied, item.ID)
	switch item.Effect {
	case domain.EffectXPMultiplier:
		p.Bonuses.XPMultiplier += 0.25
	case domain.EffectPortalRewards:
		p.Bonuses.PortalMinBonus++
		p.Bonuses.PortalMaxBonus += 2
	case domain.EffectXPPotion:
		p.AddBuff(domain.BuffXPBoost, domain.BuffXPBoostLabel, 10)
	}
}

func newCatalog() *fakeCatalog {
	return &fakeCatalog{items: []domain.UpgradeItem{
		{ID: "portal_attunement", Cost: 50, Effect: domain.EffectPortalRewards},
		{ID: "scholars_tome", Cost: 150, Effect: domain.EffectXPMultiplier},
		{ID: "xp_potion", Cost: 40, Consumable: true, Effect: domain.EffectXPPotion},
	}}
}

func TestMaxHealthForLevel(t *testing.T) {
	assert.Equal(t, 100, MaxHealthForLevel(1))
	assert.Equal(t, 110, MaxHealthForLevel(2))
	assert.Equal(t, 190, MaxHealthForLevel(10))
	assert.Equal(t, 100, MaxHealthForLevel(0), "levels below 1 are treated as 1")
}

func TestXPThresholdForLevel(t *testing.T) {
	assert.Equal(t, 100, XPThresholdForLevel(1))
	assert.Equal(t, 150, XPThresholdForLevel(2))
	assert.Equal(t, 225, XPThresholdForLevel(3))
	assert.Equal(t, 337, XPThresholdForLevel(4))
}

func TestGainExperience_ExactThreshold(t *testing.T) {
	// ARRANGE
	p := domain.NewPlayer("alice")
	p.Experience = 40
	p.Health = 30

	// ACT
	res := GainExperience(p, 60)

	// ASSERT
	assert.Equal(t, 2, p.Level, "level increments exactly once")
	assert.Equal(t, 0, p.Experience, "experience resets to the remainder")
	assert.Equal(t, 150, p.XPToNextLevel)
	assert.Equal(t, 110, p.MaxHealth)
	assert.Equal(t, 110, p.Health, "health fully restored")
	assert.Equal(t, 20, p.Currency, "level 2 grants 20 currency")
	assert.Equal(t, 1, res.LevelsGained)
	assert.Equal(t, 60, res.Gained)
}

func TestGainExperience_Cascade(t *testing.T) {
	p := domain.NewPlayer("bob")

	res := GainExperience(p, 100+150+225+10)

	assert.Equal(t, 4, p.Level)
	assert.Equal(t, 10, p.Experience)
	assert.Equal(t, 337, p.XPToNextLevel)
	assert.Equal(t, 3, res.LevelsGained)
	assert.Equal(t, 20+30+40, res.CurrencyGranted)
	assert.Equal(t, 20+30+40, p.Currency)
	assert.Equal(t, MaxHealthForLevel(4), p.MaxHealth)
}

func TestGainExperience_Multipliers(t *testing.T) {
	t.Run("permanent multiplier truncates", func(t *testing.T) {
		p := domain.NewPlayer("c")
		p.Bonuses.XPMultiplier = 1.25

		res := GainExperience(p, 10)

		assert.Equal(t, 12, res.Gained)
		assert.Equal(t, 12, p.Experience)
		assert.False(t, res.BoostUsed)
	})

	t.Run("boost doubles and loses one use", func(t *testing.T) {
		p := domain.NewPlayer("d")
		p.AddBuff(domain.BuffXPBoost, domain.BuffXPBoostLabel, 2)

		res := GainExperience(p, 10)

		assert.Equal(t, 20, res.Gained)
		assert.True(t, res.BoostUsed)
		require.Contains(t, p.Buffs, domain.BuffXPBoost)
		assert.Equal(t, 1, p.Buffs[domain.BuffXPBoost].UsesLeft)
	})

	t.Run("boost is removed at zero uses", func(t *testing.T) {
		p := domain.NewPlayer("e")
		p.AddBuff(domain.BuffXPBoost, domain.BuffXPBoostLabel, 1)

		GainExperience(p, 10)
		res := GainExperience(p, 10)

		assert.NotContains(t, p.Buffs, domain.BuffXPBoost)
		assert.False(t, res.BoostUsed)
		assert.Equal(t, 30, p.Experience)
	})
}

// Level only increases, experience stays below the threshold and max health follows level
func TestGainExperience_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	p := domain.NewPlayer("prop")

	for i := 0; i < 500; i++ {
		before := p.Level
		GainExperience(p, r.Intn(400))

		assert.GreaterOrEqual(t, p.Level, before)
		assert.Less(t, p.Experience, p.XPToNextLevel)
		assert.GreaterOrEqual(t, p.Experience, 0)
		assert.Equal(t, MaxHealthForLevel(p.Level), p.MaxHealth)
		assert.LessOrEqual(t, p.Health, p.MaxHealth)
	}
}

func TestApplyCatalogBaseline_Idempotent(t *testing.T) {
	// ARRANGE
	catalog := newCatalog()
	p := domain.NewPlayer("f")
	p.Purchased["scholars_tome"] = true
	p.Purchased["portal_attunement"] = true
	p.Purchased["xp_potion"] = true

	// ACT
	ApplyCatalogBaseline(p, catalog)
	first := p.Bonuses
	ApplyCatalogBaseline(p, catalog)

	// ASSERT
	assert.Equal(t, first, p.Bonuses)
	assert.InDelta(t, 1.25, p.Bonuses.XPMultiplier, 1e-9)
	assert.Equal(t, 1, p.Bonuses.PortalMinBonus)
	assert.Equal(t, 2, p.Bonuses.PortalMaxBonus)
	assert.Equal(t, []string{"portal_attunement", "scholars_tome", "portal_attunement", "scholars_tome"}, catalog.applied,
		"consumables are skipped and items replay in catalog order")
	assert.NotContains(t, p.Buffs, domain.BuffXPBoost)
}

func TestApplyCatalogBaseline_ClearsStaleBonuses(t *testing.T) {
	p := domain.NewPlayer("g")
	p.Bonuses.DamageReduction = 0.9
	p.Bonuses.XPMultiplier = 7

	ApplyCatalogBaseline(p, newCatalog())

	assert.Equal(t, domain.BaselineBonuses(), p.Bonuses)
}

func TestHealAndCurrency(t *testing.T) {
	p := domain.NewPlayer("h")
	p.Health = 90

	assert.Equal(t, 10, Heal(p, 50))
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 0, Heal(p, -5))

	AddCurrency(p, 30)
	AddCurrency(p, -50)
	assert.Equal(t, 0, p.Currency)
}

func TestClampVitals(t *testing.T) {
	p := &domain.Player{
		Name:       "broken",
		Level:      3,
		Health:     999,
		MaxHealth:  999,
		Experience: -4,
		Currency:   -1,
		Buffs:      map[string]*domain.Buff{"dead": {UsesLeft: 0}, "nil": nil},
	}

	ClampVitals(p)

	assert.Equal(t, 120, p.MaxHealth)
	assert.Equal(t, 120, p.Health)
	assert.Equal(t, 0, p.Experience)
	assert.Equal(t, 0, p.Currency)
	assert.Equal(t, 225, p.XPToNextLevel)
	assert.Empty(t, p.Buffs)
	assert.NotNil(t, p.Purchased)
}
