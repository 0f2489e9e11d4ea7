package duel

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/logger"
	"github.com/osse101/PortalQuest_Go/internal/progression"
	"github.com/osse101/PortalQuest_Go/internal/utils"
)

// Reward is granted on victory
type Reward struct {
	Currency   int                    `json:"currency"`
	Experience progression.GainResult `json:"experience"`
}

// TurnResult describes one resolved exchange
type TurnResult struct {
	Action         domain.ArenaAction  `json:"action"`
	OpponentMove   domain.OpponentMove `json:"opponent_move"`
	DamageDealt    int                 `json:"damage_dealt"`
	DamageTaken    int                 `json:"damage_taken"`
	Healed         int                 `json:"healed,omitempty"`
	PlayerHealth   int                 `json:"player_health"`
	OpponentHealth int                 `json:"opponent_health"`
	GameOver       bool                `json:"game_over"`
	Result         domain.ArenaResult  `json:"result,omitempty"`
	Reward         *Reward             `json:"reward,omitempty"`
}

// Service runs the arena state machine:
// AwaitingOpponent -> PlayerTurn -> Resolving -> (PlayerTurn | MatchOver)
type Service interface {
	Open(p *domain.Player) *domain.Arena
	Start(ctx context.Context, p *domain.Player, a *domain.Arena, opp domain.Opponent) error
	Act(ctx context.Context, p *domain.Player, a *domain.Arena, action domain.ArenaAction) (*TurnResult, error)
	Forfeit(ctx context.Context, p *domain.Player, a *domain.Arena) error
}

type service struct {
	rnd func() float64 // For rolling RNG
}

// NewService creates a new arena service
func NewService() Service {
	return &service{rnd: utils.RandomFloat}
}

var titleCaser = cases.Title(language.English)

// DefaultOpponent is used whenever opponent generation fails
func DefaultOpponent(level int) domain.Opponent {
	if level < 1 {
		level = 1
	}
	return domain.Opponent{Name: DefaultOpponentName, Title: DefaultOpponentTitle, Level: level}
}

// NormalizeOpponent trims and title-cases generated text and keeps the level near the player's.
// Returns false when the opponent is unusable.
func NormalizeOpponent(opp domain.Opponent, playerLevel int) (domain.Opponent, bool) {
	name := strings.TrimSpace(opp.Name)
	if name == "" {
		return domain.Opponent{}, false
	}
	name = utils.TruncateRunes(name, MaxOpponentNameLength)
	title := utils.TruncateRunes(opp.Title, MaxOpponentTitleLength)

	minLevel := playerLevel - OpponentLevelBelow
	if minLevel < 1 {
		minLevel = 1
	}
	return domain.Opponent{
		Name:  titleCaser.String(name),
		Title: title,
		Level: utils.Clamp(opp.Level, minLevel, playerLevel+OpponentLevelAbove),
	}, true
}

// OpponentMaxHealth is linear in opponent level
func OpponentMaxHealth(level int) int {
	return OpponentBaseHealth + OpponentHealthPerLevel*level
}

func (s *service) Open(p *domain.Player) *domain.Arena {
	return &domain.Arena{
		Phase:           domain.ArenaAwaitingOpponent,
		PlayerHealth:    p.Health,
		PlayerMaxHealth: p.MaxHealth,
	}
}

func (s *service) Start(ctx context.Context, p *domain.Player, a *domain.Arena, opp domain.Opponent) error {
	if a == nil {
		return domain.ErrNoArena
	}
	if a.Phase != domain.ArenaAwaitingOpponent {
		return domain.ErrArenaBusy
	}

	a.Opponent = opp
	a.PlayerHealth = p.Health
	a.PlayerMaxHealth = p.MaxHealth
	a.OpponentMaxHealth = OpponentMaxHealth(opp.Level)
	a.OpponentHealth = a.OpponentMaxHealth
	a.Turn = 1
	a.Phase = domain.ArenaPlayerTurn
	s.telegraph(a)

	logger.FromContext(ctx).Info(LogMsgMatchStarted,
		"player", p.Name, "opponent", opp.Name, "opponent_level", opp.Level)
	return nil
}

func (s *service) telegraph(a *domain.Arena) {
	moves := []domain.OpponentMove{domain.MoveAttack, domain.MovePowerAttack, domain.MoveBlock}
	i := utils.WeightedPick(s.rnd(), []int{WeightAttack, WeightPowerAttack, WeightBlock})
	if i < 0 {
		i = 0
	}
	a.NextMove = moves[i]
	a.AddLog(fmt.Sprintf(LogLineTelegraph, a.Opponent.Name, strings.ReplaceAll(string(a.NextMove), "_", " ")))
}

func (s *service) Act(ctx context.Context, p *domain.Player, a *domain.Arena, action domain.ArenaAction) (*TurnResult, error) {
	if a == nil {
		return nil, fmt.Errorf(ErrMsgActFmt, action, domain.ErrNoArena)
	}
	if a.Phase != domain.ArenaPlayerTurn {
		return nil, fmt.Errorf(ErrMsgActFmt, action, domain.ErrNotPlayerTurn)
	}

	res := &TurnResult{Action: action, OpponentMove: a.NextMove}

	switch action {
	case domain.ActionAttack, domain.ActionBlock:
	case domain.ActionHeal:
		healed, err := s.heal(ctx, p, a)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgActFmt, action, err)
		}
		res.Healed = healed
	default:
		return nil, fmt.Errorf(ErrMsgActFmt, action, domain.ErrInvalidInput)
	}

	a.PlayerAction = action
	a.Phase = domain.ArenaResolving
	s.resolve(p, a, res)

	if s.checkEnd(ctx, p, a, res) {
		return res, nil
	}

	a.PlayerAction = ""
	a.Turn++
	a.Phase = domain.ArenaPlayerTurn
	s.telegraph(a)
	return res, nil
}

// heal spends currency and restores arena health. Failure keeps the turn with the player.
func (s *service) heal(ctx context.Context, p *domain.Player, a *domain.Arena) (int, error) {
	log := logger.FromContext(ctx)
	if a.HealUsed {
		log.Debug(LogMsgHealRejected, "player", p.Name, "reason", domain.ErrMsgHealUsed)
		return 0, domain.ErrHealUsed
	}
	if p.Currency < HealCost {
		log.Debug(LogMsgHealRejected, "player", p.Name, "reason", domain.ErrMsgInsufficientFunds)
		a.AddLog(fmt.Sprintf(LogLineHealNoFunds, HealCost))
		return 0, fmt.Errorf(ErrMsgHealFundsFmt, HealCost, p.Currency, domain.ErrInsufficientFunds)
	}

	p.Currency -= HealCost
	a.HealUsed = true
	amount := int(float64(a.PlayerMaxHealth) * HealFraction * (1 + p.Bonuses.ArenaHealBonus))
	before := a.PlayerHealth
	a.PlayerHealth = utils.Clamp(a.PlayerHealth+amount, 0, a.PlayerMaxHealth)
	healed := a.PlayerHealth - before
	a.AddLog(fmt.Sprintf(LogLinePlayerHeal, healed))
	return healed, nil
}

// resolve reveals both choices at once and applies damage
func (s *service) resolve(p *domain.Player, a *domain.Arena, res *TurnResult) {
	if a.PlayerAction == domain.ActionAttack {
		raw := float64(PlayerBaseDamage + PlayerDamagePerLevel*p.Level + utils.RollInt(s.rnd, 0, PlayerDamageRandMax))
		if a.NextMove == domain.MoveBlock {
			raw *= 1 - BlockReduction
		}
		res.DamageDealt = int(raw)
		a.AddLog(fmt.Sprintf(LogLinePlayerAttack, a.Opponent.Name, res.DamageDealt))
	} else if a.PlayerAction == domain.ActionBlock {
		a.AddLog(LogLinePlayerBlock)
	}

	switch a.NextMove {
	case domain.MoveAttack, domain.MovePowerAttack:
		raw := float64(OpponentBaseDamage+OpponentDamagePerLevel*a.Opponent.Level) * OpponentDamageFactor
		if a.NextMove == domain.MovePowerAttack {
			raw *= PowerAttackMultiplier
		}
		raw += float64(utils.RollInt(s.rnd, 0, OpponentDamageRandMax))
		if a.PlayerAction == domain.ActionBlock {
			raw *= 1 - BlockReduction
		}
		res.DamageTaken = int(raw)
		line := LogLineOpponentAttack
		if a.NextMove == domain.MovePowerAttack {
			line = LogLineOpponentPower
		}
		a.AddLog(fmt.Sprintf(line, a.Opponent.Name, res.DamageTaken))
	case domain.MoveBlock:
		a.AddLog(fmt.Sprintf(LogLineOpponentBlock, a.Opponent.Name))
	}

	a.OpponentHealth = utils.Clamp(a.OpponentHealth-res.DamageDealt, 0, a.OpponentMaxHealth)
	a.PlayerHealth = utils.Clamp(a.PlayerHealth-res.DamageTaken, 0, a.PlayerMaxHealth)
	res.OpponentHealth = a.OpponentHealth
	res.PlayerHealth = a.PlayerHealth
}

// checkEnd finishes the match when either side is down. Opponent defeat is checked first.
func (s *service) checkEnd(ctx context.Context, p *domain.Player, a *domain.Arena, res *TurnResult) bool {
	switch {
	case a.OpponentHealth <= 0:
		a.AddLog(fmt.Sprintf(LogLineVictory, a.Opponent.Name))
		s.finish(ctx, p, a, domain.ResultVictory)
		currency := VictoryCurrencyPerLevel * a.Opponent.Level
		progression.AddCurrency(p, currency)
		gain := progression.GainExperience(p, VictoryXPPerLevel*a.Opponent.Level)
		res.Reward = &Reward{Currency: currency, Experience: gain}
	case a.PlayerHealth <= 0:
		a.AddLog(fmt.Sprintf(LogLineDefeat, a.Opponent.Name))
		s.finish(ctx, p, a, domain.ResultDefeat)
	default:
		return false
	}
	res.GameOver = true
	res.Result = a.Result
	res.PlayerHealth = p.Health
	return true
}

// finish writes arena health back to the player. Arena losses never drop below 1 health.
func (s *service) finish(ctx context.Context, p *domain.Player, a *domain.Arena, result domain.ArenaResult) {
	a.Phase = domain.ArenaMatchOver
	a.GameOver = true
	a.Result = result
	a.PlayerAction = ""

	health := a.PlayerHealth
	if result == domain.ResultDefeat {
		health = DefeatHealth
	}
	p.Health = utils.Clamp(health, DefeatHealth, p.MaxHealth)

	logger.FromContext(ctx).Info(LogMsgMatchEnded,
		"player", p.Name, "opponent", a.Opponent.Name, "result", result, "turns", a.Turn)
}

// Forfeit ends an open match under the defeat rules: health written back, no reward.
// An arena still waiting for its opponent is simply discarded.
func (s *service) Forfeit(ctx context.Context, p *domain.Player, a *domain.Arena) error {
	if a == nil {
		return domain.ErrNoArena
	}
	switch a.Phase {
	case domain.ArenaMatchOver:
		return nil
	case domain.ArenaAwaitingOpponent:
		a.Phase = domain.ArenaMatchOver
		return nil
	}

	a.AddLog(LogLineForfeit)
	a.Phase = domain.ArenaMatchOver
	a.GameOver = true
	a.Result = domain.ResultDefeat
	p.Health = utils.Clamp(a.PlayerHealth, DefeatHealth, p.MaxHealth)

	logger.FromContext(ctx).Info(LogMsgMatchForfeited, "player", p.Name, "opponent", a.Opponent.Name, "turn", a.Turn)
	return nil
}
