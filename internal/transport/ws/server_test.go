package ws

import (
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alien-defense/internal/event"
	"alien-defense/pkg/gridmap"
)

func dial(t *testing.T, srv *Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(srv.WSHandler())
	t.Cleanup(ts.Close)
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Eventually(t, func() bool { return srv.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)
	return conn
}

func TestServer_BroadcastsNotifications(t *testing.T) {
	srv := NewServer(log.New(io.Discard, "", 0))
	d := event.NewDispatcher()
	srv.Attach(d)
	conn := dial(t, srv)

	d.Dispatch(event.Event{Type: event.GoalReached, Data: event.AlienData{Alien: 7, Tile: gridmap.Tile{X: 3, Y: 4}}})
	d.Dispatch(event.Event{Type: event.SpawnDropped, Data: event.SpawnData{SpawnPoint: 2, Tile: gridmap.Tile{X: 1, Y: 1}}})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got struct {
		Type event.EventType `json:"type"`
		Seq  uint64          `json:"seq"`
		Data event.AlienData `json:"data"`
	}
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, event.GoalReached, got.Type)
	assert.Equal(t, uint64(1), got.Seq)
	assert.Equal(t, event.AlienData{Alien: 7, Tile: gridmap.Tile{X: 3, Y: 4}}, got.Data)

	_, raw, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"SpawnDropped"`)
}

func TestServer_SlowClientDropsInsteadOfBlocking(t *testing.T) {
	srv := NewServer(log.New(io.Discard, "", 0))
	sid, _ := srv.join()
	defer srv.leave(sid)

	done := make(chan struct{})
	go func() {
		for i := 0; i < clientBuffer+10; i++ {
			srv.Publish([]byte("{}"))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full client")
	}
	assert.Equal(t, uint64(10), srv.Dropped())
}

func TestServer_DisconnectUnregisters(t *testing.T) {
	srv := NewServer(log.New(io.Discard, "", 0))
	conn := dial(t, srv)
	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return srv.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestIsLoopbackRemote(t *testing.T) {
	assert.True(t, isLoopbackRemote("127.0.0.1:5000"))
	assert.True(t, isLoopbackRemote("[::1]:5000"))
	assert.False(t, isLoopbackRemote("10.0.0.2:5000"))
	assert.False(t, isLoopbackRemote("garbage"))
}
