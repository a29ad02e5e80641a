package spectate

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jtestard/classic-pong/pong"
	"golang.org/x/net/websocket"
)

type wireState struct {
	Player1 struct {
		Score int `json:"score"`
	} `json:"player1"`
	Player2 struct {
		Score int `json:"score"`
	} `json:"player2"`
	Ball struct {
		Position pong.Vector `json:"position"`
	} `json:"ball"`
	Status string `json:"status"`
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ws, err := websocket.Dial(url, "", "http://localhost/")
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	return ws
}

func receive(t *testing.T, ws *websocket.Conn) wireState {
	t.Helper()
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got wireState
	if err := websocket.JSON.Receive(ws, &got); err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	return got
}

func TestSpectatorGetsLatestOnConnect(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	g := pong.NewGame()
	hub.Publish(g.Snapshot())

	ws := dial(t, srv)
	defer ws.Close()

	got := receive(t, ws)
	if got.Ball.Position != (pong.Vector{X: 250, Y: 200}) {
		t.Errorf("Expected ball at (250,200), got %+v", got.Ball.Position)
	}
	if got.Status != "running" {
		t.Errorf("Expected running, got %q", got.Status)
	}
}

func TestSpectatorFollowsFrames(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	g := pong.NewGame()
	hub.Publish(g.Snapshot())

	ws := dial(t, srv)
	defer ws.Close()
	receive(t, ws)

	if n := hub.Clients(); n != 1 {
		t.Fatalf("Expected 1 client, got %d", n)
	}

	g.Frame(idle{}, nopSurface{})
	hub.Publish(g.Snapshot())

	got := receive(t, ws)
	if got.Ball.Position != (pong.Vector{X: 254, Y: 201}) {
		t.Errorf("Expected ball at (254,201), got %+v", got.Ball.Position)
	}
}

func TestSlowSpectatorSeesNewest(t *testing.T) {
	hub := NewHub()
	ch := hub.subscribe()
	defer hub.unsubscribe(ch)

	for i := 0; i < 5; i++ {
		hub.Publish(pong.Snapshot{Player1: pong.Paddle{Score: i}})
	}

	select {
	case s := <-ch:
		if s.Player1.Score != 4 {
			t.Errorf("Expected newest snapshot, got score %d", s.Player1.Score)
		}
	default:
		t.Fatal("Expected a queued snapshot")
	}
}
