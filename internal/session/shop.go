package session

import (
	"context"
	"fmt"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/event"
)

// Shop lists the catalog annotated for the player
func (m *Manager) Shop(ctx context.Context, name string) ([]domain.ShopEntry, error) {
	var entries []domain.ShopEntry
	err := m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
		entries = m.deps.Catalog.Shop(s.player)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Buy purchases an upgrade or consumable. Health potions are refused while a
// match is in play: the match end overwrites health with the arena's.
func (m *Manager) Buy(ctx context.Context, name, itemID string) (*PurchaseOutcome, error) {
	out := &PurchaseOutcome{}
	err := m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
		if item, ok := m.deps.Catalog.Lookup(itemID); ok && item.Effect == domain.EffectHealthPotion && s.arenaActive() {
			return fmt.Errorf(ErrMsgArenaPotionFmt, domain.ErrArenaBusy)
		}
		res, err := m.deps.Catalog.Purchase(ctx, s.player, itemID)
		if err != nil {
			return err
		}
		out.Purchase = res
		m.publish(ctx, event.New(event.ItemPurchased, s.key, event.ItemPurchasedPayloadV1{
			ItemID: res.Item.ID,
			Cost:   res.Spent,
		}))
		m.notify(ctx, s, &out.Notices, domain.NoticeSuccess, fmt.Sprintf(NoticePurchasedFmt, res.Item.Name))
		m.store(ctx, s)
		out.State = s.view(m.deps.Catalog.Items())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
