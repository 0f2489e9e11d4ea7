package save

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PortalQuest_Go/internal/database/memory"
	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/economy"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(store *memory.Store) *service {
	svc := NewService(store, economy.NewCatalog(), "portalquest").(*service)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestKey(t *testing.T) {
	svc := newTestService(memory.New())
	assert.Equal(t, "portalquest:hero", svc.Key("  HeRo "))

	bare := NewService(memory.New(), economy.NewCatalog(), "")
	assert.Equal(t, "hero", bare.Key("Hero"))
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"trims", "  Aria  ", "Aria", false},
		{"empty", "", "", true},
		{"blank", "   \t", "", true},
		{"max length", "abcdefghijabcdefghijabcdefghijab", "abcdefghijabcdefghijabcdefghijab", false},
		{"too long", "abcdefghijabcdefghijabcdefghijabc", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStoreThenLoad(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	store := memory.New()
	svc := newTestService(store)

	p := domain.NewPlayer("Hero")
	p.Level = 3
	p.XPToNextLevel = 225
	p.Experience = 40
	p.Currency = 321
	p.Health = 50
	p.Streak = 4
	p.LastLogin = "2026-03-10"
	p.Purchased[economy.ItemGolemBreaker] = true
	p.AddBuff(domain.BuffXPBoost, domain.BuffXPBoostLabel, 7)

	// ACT
	require.NoError(t, svc.Store(ctx, p))
	res, err := svc.Load(ctx, "hero")

	// ASSERT
	require.NoError(t, err)
	assert.False(t, res.FreshStart)
	got := res.Player
	assert.Equal(t, "Hero", got.Name)
	assert.Equal(t, 3, got.Level)
	assert.Equal(t, 40, got.Experience)
	assert.Equal(t, 225, got.XPToNextLevel)
	assert.Equal(t, 321, got.Currency)
	assert.Equal(t, 50, got.Health)
	assert.Equal(t, 120, got.MaxHealth)
	assert.Equal(t, 4, got.Streak)
	assert.Equal(t, "2026-03-10", got.LastLogin)
	assert.True(t, got.Purchased[economy.ItemGolemBreaker])
	assert.Equal(t, economy.GolemAttackBonusStep, got.Bonuses.GolemAttackBonus)
	require.True(t, got.HasBuff(domain.BuffXPBoost))
	assert.Equal(t, 7, got.Buffs[domain.BuffXPBoost].UsesLeft)
	assert.Equal(t, testNow, got.LastSeen)
}

func TestEncode_BlobShape(t *testing.T) {
	catalog := economy.NewCatalog()
	p := domain.NewPlayer("Hero")
	p.Purchased[economy.ItemIronSkin] = true

	data, err := Encode(p, catalog)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "playerState")
	assert.Contains(t, raw, "catalog")

	var records []CatalogRecord
	require.NoError(t, json.Unmarshal(raw["catalog"], &records))
	require.Len(t, records, len(catalog.Items()))
	for i, item := range catalog.Items() {
		assert.Equal(t, item.ID, records[i].ID)
		assert.Equal(t, item.ID == economy.ItemIronSkin, records[i].Purchased)
	}
}

func TestLoad_Missing(t *testing.T) {
	res, err := newTestService(memory.New()).Load(context.Background(), "Nobody")

	require.NoError(t, err)
	assert.True(t, res.FreshStart)
	assert.Equal(t, FreshReasonNew, res.Reason)
	assert.Equal(t, "Nobody", res.Player.Name)
	assert.Equal(t, 1, res.Player.Level)
}

func TestLoad_StaleSaveDiscarded(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	store := memory.New()
	svc := newTestService(store)
	blob := `{"playerState":{"name":"Hero","level":5,"currency":900,"last_seen":"2026-03-08T11:59:00Z"},"catalog":[]}`
	require.NoError(t, store.Put(ctx, "portalquest:hero", []byte(blob)))

	// ACT
	res, err := svc.Load(ctx, "Hero")

	// ASSERT
	require.NoError(t, err)
	assert.True(t, res.FreshStart)
	assert.Equal(t, FreshReasonStale, res.Reason)
	assert.Equal(t, 1, res.Player.Level)
	assert.Equal(t, 0, res.Player.Currency)
	assert.Equal(t, 0, store.Len(), "stale save is deleted")
}

func TestLoad_JustUnderThresholdIsKept(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := newTestService(store)
	blob := `{"playerState":{"name":"Hero","level":2,"last_seen":"2026-03-08T12:01:00Z"},"catalog":[]}`
	require.NoError(t, store.Put(ctx, "portalquest:hero", []byte(blob)))

	res, err := svc.Load(ctx, "Hero")

	require.NoError(t, err)
	assert.False(t, res.FreshStart)
	assert.Equal(t, 2, res.Player.Level)
}

func TestLoad_CorruptSaveStartsFresh(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Put(ctx, "portalquest:hero", []byte("{not json")))

	res, err := newTestService(store).Load(ctx, "Hero")

	require.NoError(t, err)
	assert.True(t, res.FreshStart)
	assert.Equal(t, FreshReasonCorrupt, res.Reason)
}

type failingStore struct{ memory.Store }

func (*failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func TestLoad_StoreErrorIsReturned(t *testing.T) {
	svc := NewService(&failingStore{}, economy.NewCatalog(), "portalquest")

	_, err := svc.Load(context.Background(), "Hero")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestDecode(t *testing.T) {
	catalog := economy.NewCatalog()

	t.Run("merges onto defaults", func(t *testing.T) {
		p, err := Decode([]byte(`{"playerState":{"currency":12}}`), "Hero", catalog, testNow)

		require.NoError(t, err)
		assert.Equal(t, "Hero", p.Name)
		assert.Equal(t, 1, p.Level)
		assert.Equal(t, 12, p.Currency)
		assert.Equal(t, domain.BaseXPToNextLevel, p.XPToNextLevel)
		assert.Equal(t, domain.BaseMaxHealth, p.Health)
		assert.NotNil(t, p.Buffs)
		assert.Equal(t, domain.BaseXPMultiplier, p.Bonuses.XPMultiplier)
	})

	t.Run("max health recomputed and health clamped", func(t *testing.T) {
		p, err := Decode([]byte(`{"playerState":{"level":2,"xp_to_next_level":150,"health":999,"max_health":999}}`), "Hero", catalog, testNow)

		require.NoError(t, err)
		assert.Equal(t, 110, p.MaxHealth)
		assert.Equal(t, 110, p.Health)
	})

	t.Run("negative values clamped", func(t *testing.T) {
		p, err := Decode([]byte(`{"playerState":{"level":0,"currency":-5,"experience":-3,"health":-10}}`), "Hero", catalog, testNow)

		require.NoError(t, err)
		assert.Equal(t, 1, p.Level)
		assert.Equal(t, 0, p.Currency)
		assert.Equal(t, 0, p.Experience)
		assert.Equal(t, 0, p.Health)
	})

	t.Run("experience overflow levels up", func(t *testing.T) {
		p, err := Decode([]byte(`{"playerState":{"level":1,"experience":260,"xp_to_next_level":100}}`), "Hero", catalog, testNow)

		require.NoError(t, err)
		assert.Equal(t, 3, p.Level)
		assert.Equal(t, 10, p.Experience)
	})

	t.Run("unknown and consumable purchase flags ignored", func(t *testing.T) {
		blob := `{"playerState":{},"catalog":[{"id":"ancient_relic","purchased":true},{"id":"xp_potion","purchased":true},{"id":"scholars_tome","purchased":true}]}`

		p, err := Decode([]byte(blob), "Hero", catalog, testNow)

		require.NoError(t, err)
		assert.Equal(t, map[string]bool{economy.ItemScholarsTome: true}, p.Purchased)
		assert.InDelta(t, domain.BaseXPMultiplier+economy.XPMultiplierStep, p.Bonuses.XPMultiplier, 1e-9)
	})

	t.Run("stale by last login day when never stamped", func(t *testing.T) {
		_, err := Decode([]byte(`{"playerState":{"last_login":"2026-03-07"}}`), "Hero", catalog, testNow)

		assert.ErrorIs(t, err, domain.ErrStaleSession)
	})
}
