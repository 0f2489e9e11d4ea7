package session

import (
	"sync"

	"github.com/osse101/PortalQuest_Go/internal/domain"
)

// Session owns one player's mutable state. Every field but savedSeq is
// guarded by mu; triggers and combat ticks both take it.
type Session struct {
	mu sync.Mutex

	key       string
	player    *domain.Player
	encounter *domain.Encounter
	arena     *domain.Arena

	flavorBusy bool
	closed     bool
	saveSeq    uint64 // number of the latest queued snapshot

	saveMu   sync.Mutex
	savedSeq uint64 // guarded by saveMu
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// View is a copy of a session's state that is safe to read without the lock
type View struct {
	Player    *domain.Player    `json:"player"`
	Purchased []string          `json:"purchased"`
	Bonuses   domain.Bonuses    `json:"bonuses"`
	Encounter *domain.Encounter `json:"encounter,omitempty"`
	Arena     *domain.Arena     `json:"arena,omitempty"`
}

// view must be called with s.mu held
func (s *Session) view(catalogOrder []domain.UpgradeItem) View {
	v := View{
		Player:  clonePlayer(s.player),
		Bonuses: s.player.Bonuses,
	}
	v.Purchased = make([]string, 0, len(s.player.Purchased))
	for _, item := range catalogOrder {
		if s.player.Purchased[item.ID] {
			v.Purchased = append(v.Purchased, item.ID)
		}
	}
	if s.encounter != nil {
		enc := *s.encounter
		enc.Attacks = nil
		v.Encounter = &enc
	}
	if s.arena != nil {
		a := *s.arena
		a.Log = append([]string(nil), s.arena.Log...)
		v.Arena = &a
	}
	return v
}

func clonePlayer(p *domain.Player) *domain.Player {
	c := *p
	c.Purchased = make(map[string]bool, len(p.Purchased))
	for k, v := range p.Purchased {
		c.Purchased[k] = v
	}
	c.Buffs = make(map[string]*domain.Buff, len(p.Buffs))
	for k, b := range p.Buffs {
		if b != nil {
			copied := *b
			c.Buffs[k] = &copied
		}
	}
	return &c
}
