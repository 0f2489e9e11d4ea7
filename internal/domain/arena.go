package domain

// ArenaPhase is the state of a PvP match
type ArenaPhase string

const (
	ArenaAwaitingOpponent ArenaPhase = "awaiting_opponent"
	ArenaPlayerTurn       ArenaPhase = "player_turn"
	ArenaResolving        ArenaPhase = "resolving"
	ArenaMatchOver        ArenaPhase = "match_over"
)

// ArenaAction is what the player picks each turn
type ArenaAction string

const (
	ActionAttack ArenaAction = "attack"
	ActionBlock  ArenaAction = "block"
	ActionHeal   ArenaAction = "heal"
)

// OpponentMove is what the opponent telegraphs before the player chooses
type OpponentMove string

const (
	MoveAttack      OpponentMove = "attack"
	MovePowerAttack OpponentMove = "power_attack"
	MoveBlock       OpponentMove = "block"
)

// ArenaResult is the final outcome of a match
type ArenaResult string

const (
	ResultVictory ArenaResult = "victory"
	ResultDefeat  ArenaResult = "defeat"
)

// Opponent is the generated PvP rival
type Opponent struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Level int    `json:"level"`
}

// Arena exists only while an arena match is open
type Arena struct {
	Phase ArenaPhase `json:"phase"`
	Turn  int        `json:"turn"`

	PlayerHealth    int `json:"player_health"`
	PlayerMaxHealth int `json:"player_max_health"`

	Opponent          Opponent     `json:"opponent"`
	OpponentHealth    int          `json:"opponent_health"`
	OpponentMaxHealth int          `json:"opponent_max_health"`
	NextMove          OpponentMove `json:"next_move"`

	PlayerAction ArenaAction `json:"player_action,omitempty"`
	HealUsed     bool        `json:"heal_used"`
	GameOver     bool        `json:"game_over"`
	Result       ArenaResult `json:"result,omitempty"`

	Log []string `json:"log"`
}

// AddLog appends a line to the match log
func (a *Arena) AddLog(line string) {
	a.Log = append(a.Log, line)
}
