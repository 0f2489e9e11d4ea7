package domain

import "github.com/google/uuid"

// Archetype is a PvE enemy kind; each has one special combat rule
type Archetype string

const (
	ArchetypeGolem     Archetype = "golem"     // takes the golem attack bonus
	ArchetypeLurker    Archetype = "lurker"    // may dodge player attacks
	ArchetypeElemental Archetype = "elemental" // may burst for double damage
)

// Archetypes lists the enemy kinds in roll order
var Archetypes = []Archetype{ArchetypeGolem, ArchetypeLurker, ArchetypeElemental}

// Stopper cancels a recurring task
type Stopper interface {
	Stop()
}

// Encounter exists only while the player is in PvE combat
type Encounter struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Archetype Archetype `json:"archetype"`
	Level     int       `json:"level"`
	Health    int       `json:"health"`
	MaxHealth int       `json:"max_health"`

	Attacks Stopper `json:"-"`
}

// IsDefeated reports whether the enemy has no health left
func (e *Encounter) IsDefeated() bool {
	return e.Health <= 0
}
