package economy

import (
	"context"
	"fmt"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/logger"
)

// PurchaseResult contains the outcome of a successful purchase
type PurchaseResult struct {
	Item      domain.UpgradeItem `json:"item"`
	Spent     int                `json:"spent"`
	Remaining int                `json:"remaining"`
}

// Purchase debits the item's cost, flags permanent items and applies the effect.
// Every failure leaves the player untouched.
func (c *Catalog) Purchase(ctx context.Context, p *domain.Player, id string) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgPurchaseCalled, "player", p.Name, "item", id)

	item, ok := c.Lookup(id)
	if !ok {
		return nil, fmt.Errorf(ErrMsgItemNotFoundFmt, id, domain.ErrItemNotFound)
	}
	if !item.Consumable && p.Purchased[item.ID] {
		log.Debug(LogMsgPurchaseRejected, "player", p.Name, "item", id, "reason", domain.ErrMsgAlreadyPurchased)
		return nil, fmt.Errorf(ErrMsgAlreadyPurchasedFmt, id, domain.ErrAlreadyPurchased)
	}
	if p.Currency < item.Cost {
		log.Debug(LogMsgPurchaseRejected, "player", p.Name, "item", id, "reason", domain.ErrMsgInsufficientFunds)
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, id, item.Cost, p.Currency, domain.ErrInsufficientFunds)
	}
	if _, ok := effects[item.Effect]; !ok {
		log.Warn(LogMsgUnknownEffectKind, "item", id, "effect", item.Effect)
		return nil, fmt.Errorf(ErrMsgUnknownEffectFmt, id, item.Effect)
	}

	p.Currency -= item.Cost
	if !item.Consumable {
		if p.Purchased == nil {
			p.Purchased = make(map[string]bool)
		}
		p.Purchased[item.ID] = true
	}
	c.ApplyEffect(p, item)

	log.Info(LogMsgItemPurchased, "player", p.Name, "item", id, "cost", item.Cost, "balance", p.Currency)
	return &PurchaseResult{Item: item, Spent: item.Cost, Remaining: p.Currency}, nil
}
