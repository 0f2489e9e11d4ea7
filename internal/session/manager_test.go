package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/economy"
	"github.com/osse101/PortalQuest_Go/internal/event"
	"github.com/osse101/PortalQuest_Go/internal/save"
)

func TestLogin_FreshPlayer(t *testing.T) {
	// ARRANGE
	env := newTestEnv(t, time.Hour)
	ctx := context.Background()

	// ACT
	res, err := env.manager.Login(ctx, "  Aria ")

	// ASSERT
	require.NoError(t, err)
	assert.True(t, res.FreshStart)
	assert.Equal(t, save.FreshReasonNew, res.Reason)
	assert.Equal(t, "Aria", res.State.Player.Name)
	assert.Equal(t, 1, res.State.Player.Level)
	assert.True(t, res.Daily.Claimable)
	assert.Equal(t, 1, env.store.Len(), "fresh players are saved immediately")
	require.NotEmpty(t, res.Notices)
	assert.Contains(t, res.Notices[0].Message, "Welcome, Aria")
	assert.NotEmpty(t, env.events.ofType(event.Notice))
}

func TestLogin_SecondLoginReusesSession(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	ctx := context.Background()

	_, err := env.manager.Login(ctx, "Aria")
	require.NoError(t, err)
	env.fund(t, "Aria", 40)

	res, err := env.manager.Login(ctx, "aria")
	require.NoError(t, err)
	assert.False(t, res.FreshStart)
	assert.Equal(t, 40, res.State.Player.Currency)
	assert.Contains(t, res.Notices[0].Message, "Welcome back")
}

func TestLogin_InvalidName(t *testing.T) {
	env := newTestEnv(t, time.Hour)

	_, err := env.manager.Login(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_StaleSaveStartsFresh(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	ctx := context.Background()

	old := domain.NewPlayer("Old")
	old.Currency = 500
	old.LastSeen = time.Now().UTC().Add(-72 * time.Hour)
	stale, err := save.Encode(old, economy.NewCatalog())
	require.NoError(t, err)
	require.NoError(t, env.store.Put(ctx, env.manager.Key("Old"), stale))

	res, err := env.manager.Login(ctx, "Old")
	require.NoError(t, err)
	assert.True(t, res.FreshStart)
	assert.Equal(t, save.FreshReasonStale, res.Reason)
	assert.Equal(t, 0, res.State.Player.Currency)
	assert.Equal(t, domain.NoticeWarning, res.Notices[0].Kind)
}

func TestOperationsRequireLogin(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	ctx := context.Background()

	_, err := env.manager.State(ctx, "Nobody")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = env.manager.EnterPortal(ctx, "Nobody")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = env.manager.Ask(ctx, "Nobody", "hello?")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, 0, env.oracle.asked)
	assert.ErrorIs(t, env.manager.Logout(ctx, "Nobody"), domain.ErrSessionNotFound)
}

func TestLogout_FlushesSave(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	ctx := context.Background()

	_, err := env.manager.Login(ctx, "Aria")
	require.NoError(t, err)
	env.fund(t, "Aria", 75)

	require.NoError(t, env.manager.Logout(ctx, "Aria"))

	loaded, err := env.saves.Load(ctx, "Aria")
	require.NoError(t, err)
	assert.False(t, loaded.FreshStart)
	assert.Equal(t, 75, loaded.Player.Currency)

	_, err = env.manager.State(ctx, "Aria")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestLogout_StopsEncounter(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	ctx := context.Background()

	_, err := env.manager.Login(ctx, "Aria")
	require.NoError(t, err)
	env.portal.set(0, true)
	out, err := env.manager.EnterPortal(ctx, "Aria")
	require.NoError(t, err)
	require.NotNil(t, out.State.Encounter)
	require.Eventually(t, func() bool { return env.sched.Active() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, env.manager.Logout(ctx, "Aria"))

	assert.Eventually(t, func() bool { return env.sched.Active() == 0 }, time.Second, 5*time.Millisecond)
	ended := env.events.ofType(event.CombatEnded)
	require.Len(t, ended, 1)
	assert.Equal(t, event.CombatEndEvicted, ended[0].Payload.(event.CombatEndedPayloadV1).Reason)
}

func TestClose_FlushesEverySession(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	ctx := context.Background()

	for _, name := range []string{"Aria", "Bram"} {
		_, err := env.manager.Login(ctx, name)
		require.NoError(t, err)
		env.fund(t, name, 20)
	}

	env.manager.Close(ctx)

	for _, name := range []string{"Aria", "Bram"} {
		loaded, err := env.saves.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, 20, loaded.Player.Currency, name)
	}
}

func TestReset(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	ctx := context.Background()

	_, err := env.manager.Login(ctx, "Aria")
	require.NoError(t, err)
	env.fund(t, "Aria", 300)
	_, err = env.manager.Buy(ctx, "Aria", "scholars_tome")
	require.NoError(t, err)

	v, err := env.manager.Reset(ctx, "Aria")

	require.NoError(t, err)
	assert.Equal(t, 0, v.Player.Currency)
	assert.Equal(t, 1, v.Player.Level)
	assert.Empty(t, v.Purchased)
	assert.Equal(t, domain.BaselineBonuses(), v.Bonuses)

	loaded, err := env.saves.Load(ctx, "Aria")
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Player.Currency)
}
