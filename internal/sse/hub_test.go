package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PortalQuest_Go/internal/event"
)

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt := <-c.EventChannel:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func assertNothing(t *testing.T, c *Client) {
	t.Helper()
	select {
	case evt := <-c.EventChannel:
		t.Fatalf("unexpected event %+v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_FiltersByPlayerAndType(t *testing.T) {
	// ARRANGE
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	aria := hub.Register("portalquest:aria", nil)
	bram := hub.Register("portalquest:bram", []string{"combat.ended"})
	admin := hub.Register("", nil)
	waitForClients(t, hub, 3)

	// ACT
	hub.Publish("portalquest:aria", "notice", "hello aria")
	hub.Publish("portalquest:bram", "notice", "hello bram")
	hub.Publish("portalquest:bram", "combat.ended", "victory")

	// ASSERT
	got := receive(t, aria)
	assert.Equal(t, "notice", got.Type)
	assert.Equal(t, "hello aria", got.Payload)
	assertNothing(t, aria)

	got = receive(t, bram)
	assert.Equal(t, "combat.ended", got.Type)
	assertNothing(t, bram)

	for i := 0; i < 3; i++ {
		receive(t, admin)
	}
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register("p", nil)
	waitForClients(t, hub, 1)

	hub.Unregister(c.ID)
	waitForClients(t, hub, 0)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestHub_StopIsIdempotentAndClosesClients(t *testing.T) {
	hub := NewHub()
	hub.Start()
	c := hub.Register("p", nil)
	waitForClients(t, hub, 1)

	hub.Stop()
	hub.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)

	late := hub.Register("p", nil)
	_, ok = <-late.EventChannel
	assert.False(t, ok, "registering after stop yields a closed channel")
	hub.Unregister(late.ID)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: "notice", Payload: map[string]string{"k": "v"}})

	require.NoError(t, err)
	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: 1\nevent: notice\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	c := hub.Register("portalquest:aria", nil)
	waitForClients(t, hub, 1)

	require.NoError(t, bus.Publish(context.Background(), event.New(event.CombatEnded, "portalquest:aria", "payload")))

	got := receive(t, c)
	assert.Equal(t, string(event.CombatEnded), got.Type)
	assert.Equal(t, "portalquest:aria", got.Player)
}

func TestHandler_StreamsConnectedEvent(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	resolve := func(r *http.Request) (string, bool) {
		name := r.URL.Query().Get("player")
		return "portalquest:" + name, name != ""
	}
	srv := httptest.NewServer(Handler(hub, resolve))
	defer srv.Close()

	t.Run("unknown player", func(t *testing.T) {
		res, err := http.Get(srv.URL)
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("stream", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?player=aria", nil)
		require.NoError(t, err)

		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))
		reader := bufio.NewReader(res.Body)
		_, err = reader.ReadString('\n') // id line
		require.NoError(t, err)
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		assert.Equal(t, "event: connected\n", line)

		waitForClients(t, hub, 1)
		hub.Publish("portalquest:aria", "notice", "hi")
		var found bool
		for i := 0; i < 6 && !found; i++ {
			line, err = reader.ReadString('\n')
			require.NoError(t, err)
			found = line == "event: notice\n"
		}
		assert.True(t, found)
	})
}
