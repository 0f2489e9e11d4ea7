package save

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/progression"
)

// Blob is the persisted shape: the player plus one purchased flag per catalog item
type Blob struct {
	PlayerState *domain.Player  `json:"playerState"`
	Catalog     []CatalogRecord `json:"catalog"`
}

// CatalogRecord is the persisted purchase flag of one catalog item
type CatalogRecord struct {
	ID        string `json:"id"`
	Purchased bool   `json:"purchased"`
}

// Encode serializes the player with the catalog's purchased flags in catalog order
func Encode(p *domain.Player, catalog progression.Catalog) ([]byte, error) {
	items := catalog.Items()
	records := make([]CatalogRecord, 0, len(items))
	for _, item := range items {
		records = append(records, CatalogRecord{ID: item.ID, Purchased: !item.Consumable && p.Purchased[item.ID]})
	}
	data, err := json.Marshal(Blob{PlayerState: p, Catalog: records})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeFmt, err)
	}
	return data, nil
}

// Decode merges a stored blob onto a fresh player so fields missing from older saves keep their defaults.
// Returns domain.ErrStaleSession when the save is older than domain.StaleSaveAge.
// Derived values are rebuilt: max health from level, bonuses from the catalog.
func Decode(data []byte, name string, catalog progression.Catalog, now time.Time) (*domain.Player, error) {
	p := domain.NewPlayer(name)
	blob := Blob{PlayerState: p}
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeFmt, err)
	}
	if IsStale(p, now) {
		return nil, domain.ErrStaleSession
	}
	if p.Name == "" {
		p.Name = name
	}

	known := make(map[string]bool)
	for _, item := range catalog.Items() {
		if !item.Consumable {
			known[item.ID] = true
		}
	}
	p.Purchased = make(map[string]bool)
	for _, rec := range blob.Catalog {
		if rec.Purchased && known[rec.ID] {
			p.Purchased[rec.ID] = true
		}
	}

	progression.ClampVitals(p)
	progression.EvaluateLevelUp(p)
	progression.ApplyCatalogBaseline(p, catalog)
	return p, nil
}

// IsStale reports whether the player was last seen more than domain.StaleSaveAge ago.
// Saves without a LastSeen stamp fall back to the last claimed daily reward.
func IsStale(p *domain.Player, now time.Time) bool {
	last := p.LastSeen
	if last.IsZero() && p.LastLogin != "" {
		day, err := time.ParseInLocation(domain.DateLayout, p.LastLogin, now.Location())
		if err == nil {
			last = day
		}
	}
	if last.IsZero() {
		return false
	}
	return now.Sub(last) > domain.StaleSaveAge
}
