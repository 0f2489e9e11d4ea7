package oracle

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/duel"
)

type fakeGenerator struct {
	text string
	err  error
	last Request
}

func (f *fakeGenerator) Generate(_ context.Context, req Request) (*Response, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &Response{Text: f.text}, nil
}

func TestService_GenerateOpponent(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    domain.Opponent
		wantErr bool
	}{
		{
			name: "plain json",
			text: `{"name":"vexa the bold","title":"Ash Queen","level":6}`,
			want: domain.Opponent{Name: "Vexa The Bold", Title: "Ash Queen", Level: 6},
		},
		{
			name: "fenced json with string level",
			text: "```json\n{\"name\":\"Korr\",\"title\":\"Pit Boss\",\"level\":\"7\"}\n```",
			want: domain.Opponent{Name: "Korr", Title: "Pit Boss", Level: 7},
		},
		{
			name: "level clamped near player",
			text: `{"name":"Titan","title":"Giant","level":99}`,
			want: domain.Opponent{Name: "Titan", Title: "Giant", Level: 5 + duel.OpponentLevelAbove},
		},
		{name: "not json", text: "a mighty warrior appears", wantErr: true},
		{name: "missing name", text: `{"title":"Nobody","level":5}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			gen := &fakeGenerator{text: tt.text}
			svc := NewService(gen)

			// ACT
			opp, err := svc.GenerateOpponent(context.Background(), "Hero", 5)

			// ASSERT
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrExternalService)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, opp)
			assert.NotNil(t, gen.last.Schema)
			assert.Contains(t, gen.last.Content, "Hero")
		})
	}
}

func TestService_WrapsGeneratorErrors(t *testing.T) {
	svc := NewService(&fakeGenerator{err: errors.New("boom")})
	ctx := context.Background()

	_, err := svc.GenerateOpponent(ctx, "Hero", 1)
	assert.ErrorIs(t, err, domain.ErrExternalService)

	_, err = svc.Ask(ctx, "will I win?")
	assert.ErrorIs(t, err, domain.ErrExternalService)
	assert.Contains(t, err.Error(), "boom")

	_, err = svc.PortalFlavor(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestService_NilGeneratorIsDisabled(t *testing.T) {
	_, err := NewService(nil).Ask(context.Background(), "anyone there?")

	assert.ErrorIs(t, err, domain.ErrExternalService)
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestService_AskTruncatesLongAnswers(t *testing.T) {
	gen := &fakeGenerator{text: strings.Repeat("a", MaxAnswerLength+50)}

	answer, err := NewService(gen).Ask(context.Background(), "tell me everything")

	require.NoError(t, err)
	assert.Len(t, answer, MaxAnswerLength)
	assert.Equal(t, InstructionSeer, gen.last.Instruction)
	assert.Equal(t, "tell me everything", gen.last.Content)
	assert.Nil(t, gen.last.Schema)
}

func TestService_PortalFlavor(t *testing.T) {
	gen := &fakeGenerator{text: "You see a city of glass."}

	line, err := NewService(gen).PortalFlavor(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "You see a city of glass.", line)
	assert.Contains(t, gen.last.Content, "level 4")
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, fallbackAnswers[0], FallbackAnswer(func() float64 { return 0 }))
	assert.Equal(t, fallbackAnswers[len(fallbackAnswers)-1], FallbackAnswer(func() float64 { return 0.999 }))
	assert.Equal(t, fallbackFlavor[0], FallbackFlavor(func() float64 { return 0 }))
	assert.NotEmpty(t, FallbackFlavor(nil))
}
