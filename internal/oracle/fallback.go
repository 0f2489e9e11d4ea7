package oracle

import "github.com/osse101/PortalQuest_Go/internal/utils"

var fallbackAnswers = []string{
	"The crystal clouds over. Ask again when the stars are kinder.",
	"Mist swirls within the glass, and it keeps its secrets for now.",
	"The seer hums softly. Some answers must be earned in the portals.",
	"Your reflection stares back. Perhaps the answer was always yours.",
}

var fallbackFlavor = []string{
	"The portal shimmers and spits you back out, pockets a little heavier.",
	"You glimpse a sky of violet moons before the rift snaps shut.",
	"Ancient runes flicker along the portal's edge as you step through.",
	"A warm wind carries the scent of distant markets through the rift.",
	"For a heartbeat you hear a thousand bells, then only silence.",
}

// FallbackAnswer picks a static seer answer
func FallbackAnswer(rnd func() float64) string {
	return pick(fallbackAnswers, rnd)
}

// FallbackFlavor picks a static portal line
func FallbackFlavor(rnd func() float64) string {
	return pick(fallbackFlavor, rnd)
}

func pick(lines []string, rnd func() float64) string {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return lines[utils.RollInt(rnd, 0, len(lines)-1)]
}
