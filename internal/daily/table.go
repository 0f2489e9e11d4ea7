package daily

// Tier is one step of the daily reward table
type Tier struct {
	Day       int    `json:"day"`
	Currency  int    `json:"currency"`
	Bonus     string `json:"bonus,omitempty"`
	BoostUses int    `json:"boost_uses,omitempty"`
}

// Table is ordered by streak day; streaks past the end repeat the last tier
var Table = []Tier{
	{Day: 1, Currency: 50},
	{Day: 2, Currency: 75},
	{Day: 3, Currency: 100, Bonus: "XP Boost for 20 gains", BoostUses: BonusBoostUses},
	{Day: 4, Currency: 125},
	{Day: 5, Currency: 150},
	{Day: 6, Currency: 200},
	{Day: 7, Currency: 300, Bonus: "XP Boost for 20 gains", BoostUses: BonusBoostUses},
}

// TierFor returns the tier for a streak: index min(streak-1, len-1)
func TierFor(streak int) Tier {
	i := streak - 1
	if i < 0 {
		i = 0
	}
	if i > len(Table)-1 {
		i = len(Table) - 1
	}
	return Table[i]
}
