package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/duel"
	"github.com/osse101/PortalQuest_Go/internal/logger"
	"github.com/osse101/PortalQuest_Go/internal/utils"
)

// opponentSchema asks for structured output matching domain.Opponent
var opponentSchema = Schema{
	"type": "object",
	"properties": map[string]any{
		"name":  map[string]any{"type": "string"},
		"title": map[string]any{"type": "string"},
		"level": map[string]any{"type": "integer"},
	},
	"required": []string{"name", "title", "level"},
}

// Service wraps a Generator with the game's prompts.
// Every method returns an error wrapping domain.ErrExternalService on failure; callers pick the fallback.
type Service interface {
	GenerateOpponent(ctx context.Context, playerName string, playerLevel int) (domain.Opponent, error)
	Ask(ctx context.Context, question string) (string, error)
	PortalFlavor(ctx context.Context, playerLevel int) (string, error)
}

type service struct {
	gen Generator
}

// NewService creates a new oracle service
func NewService(gen Generator) Service {
	if gen == nil {
		gen = NewDisabledGenerator()
	}
	return &service{gen: gen}
}

func (s *service) generate(ctx context.Context, op string, req Request) (string, error) {
	log := logger.FromContext(ctx)
	res, err := s.gen.Generate(ctx, req)
	if err != nil {
		log.Warn(LogMsgGenerateFailed, "op", op, "error", err)
		return "", fmt.Errorf(ErrMsgWrapFmt, op, domain.ErrExternalService, err)
	}
	log.Debug(LogMsgGenerated, "op", op, "length", len(res.Text))
	return res.Text, nil
}

func (s *service) GenerateOpponent(ctx context.Context, playerName string, playerLevel int) (domain.Opponent, error) {
	text, err := s.generate(ctx, "opponent", Request{
		Instruction: InstructionOpponent,
		Content:     fmt.Sprintf(ContentOpponentFmt, playerName, playerLevel, playerLevel),
		Schema:      opponentSchema,
	})
	if err != nil {
		return domain.Opponent{}, err
	}

	text = stripCodeFence(text)
	if !gjson.Valid(text) {
		return domain.Opponent{}, fmt.Errorf("%w: %s", domain.ErrExternalService, ErrMsgBadOpponent)
	}
	var opp domain.Opponent
	if err := json.Unmarshal([]byte(text), &opp); err != nil {
		// Level may come back as a string; read fields individually
		opp = domain.Opponent{
			Name:  gjson.Get(text, "name").String(),
			Title: gjson.Get(text, "title").String(),
			Level: int(gjson.Get(text, "level").Int()),
		}
	}
	normalized, ok := duel.NormalizeOpponent(opp, playerLevel)
	if !ok {
		return domain.Opponent{}, fmt.Errorf("%w: %s", domain.ErrExternalService, ErrMsgBadOpponent)
	}
	return normalized, nil
}

func (s *service) Ask(ctx context.Context, question string) (string, error) {
	text, err := s.generate(ctx, "seer", Request{
		Instruction: InstructionSeer,
		Content:     question,
	})
	if err != nil {
		return "", err
	}
	return utils.TruncateRunes(text, MaxAnswerLength), nil
}

func (s *service) PortalFlavor(ctx context.Context, playerLevel int) (string, error) {
	text, err := s.generate(ctx, "flavor", Request{
		Instruction: InstructionFlavor,
		Content:     fmt.Sprintf(ContentFlavorFmt, playerLevel),
	})
	if err != nil {
		return "", err
	}
	return utils.TruncateRunes(text, MaxFlavorLength), nil
}

// stripCodeFence removes a ```json fence some models wrap structured replies in
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
