package combat

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/utils"
)

var epithets = map[domain.Archetype][]string{
	domain.ArchetypeGolem:     {"mossy", "granite", "cracked", "ancient"},
	domain.ArchetypeLurker:    {"shadow", "hollow", "silent", "creeping"},
	domain.ArchetypeElemental: {"ember", "frost", "storm", "void"},
}

var titleCaser = cases.Title(language.English)

// EnemyName builds a display name such as "Granite Golem"
func EnemyName(archetype domain.Archetype, roll float64) string {
	words := epithets[archetype]
	if len(words) == 0 {
		return titleCaser.String(string(archetype))
	}
	i := utils.Clamp(int(roll*float64(len(words))), 0, len(words)-1)
	return titleCaser.String(fmt.Sprintf("%s %s", words[i], archetype))
}
