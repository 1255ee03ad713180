package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"requisicoes/internal/adapter/realtime"
	"requisicoes/internal/domain/entities"
	"requisicoes/internal/infrastructure/auth"
	"requisicoes/internal/infrastructure/changefeed"
)

func newWebSocketServer(t *testing.T) (*httptest.Server, *realtime.Hub, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := quietLogger()
	tokens := auth.NewTokenService("test-secret")
	hub := realtime.NewHub(realtime.SessionDeps{
		Feed:    changefeed.NewBroker(logger),
		Catalog: entities.DefaultStatusCatalog(),
		Logger:  logger,
	})
	h := NewWebSocketHandler(hub, tokens, []string{"*"}, logger)

	r := gin.New()
	r.GET("/v1/ws", h.Serve)
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		hub.CloseAll()
		srv.Close()
	})
	return srv, hub, tokens
}

func TestWebSocketHandler_RejectsMissingToken(t *testing.T) {
	srv, _, _ := newWebSocketServer(t)

	resp, err := http.Get(srv.URL + "/v1/ws")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	resp2, err := http.Get(srv.URL + "/v1/ws?token=garbage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp2.StatusCode)
	}
}

func TestWebSocketHandler_PingPong(t *testing.T) {
	srv, hub, tokens := newWebSocketServer(t)

	token, err := tokens.Generate(requesterClaims, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(realtime.Inbound{Type: realtime.MsgPing}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var out struct {
		Type string `json:"type"`
	}
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if out.Type != realtime.MsgPong {
		t.Fatalf("expected pong, got %q", out.Type)
	}
	if hub.Count() != 1 {
		t.Fatalf("expected 1 session, got %d", hub.Count())
	}
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://app.empresa.com"})

	req := httptest.NewRequest(http.MethodGet, "/v1/ws", nil)
	if !check(req) {
		t.Fatalf("requests without origin must pass")
	}
	req.Header.Set("Origin", "https://APP.empresa.com")
	if !check(req) {
		t.Fatalf("origin comparison must ignore case")
	}
	req.Header.Set("Origin", "https://evil.example")
	if check(req) {
		t.Fatalf("unexpected origin accepted")
	}
}
