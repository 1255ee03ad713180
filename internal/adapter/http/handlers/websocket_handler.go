package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"requisicoes/internal/adapter/realtime"
	"requisicoes/internal/usecase/interfaces"
)

const wsReadLimit = 8 << 10

// WebSocketHandler authenticates the caller and hands the upgraded connection to the
// realtime hub. Browsers cannot set headers on a websocket handshake, so the token
// may also come in the `token` query parameter.
type WebSocketHandler struct {
	hub      *realtime.Hub
	verifier interfaces.ITokenVerifier
	upgrader websocket.Upgrader
	log      logrus.FieldLogger
}

func NewWebSocketHandler(hub *realtime.Hub, verifier interfaces.ITokenVerifier, allowedOrigins []string, logger logrus.FieldLogger) *WebSocketHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &WebSocketHandler{
		hub:      hub,
		verifier: verifier,
		log:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// Serve
//
// @Summary      Realtime notifications
// @Tags         realtime
// @Param        token query string false "JWT, when the Authorization header cannot be set"
// @Success      101
// @Failure      401 {object} pkg.HTTPError
// @Router       /ws [get]
func (h *WebSocketHandler) Serve(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		token = c.GetHeader("Authorization")
	}
	if token == "" {
		respondError(c, errUnauthorized)
		return
	}
	claims, err := h.verifier.Verify(token)
	if err != nil {
		h.log.WithError(err).Warn("[realtime][handler] invalid token")
		respondError(c, errUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader already answered the client
		h.log.WithError(err).Warn("[realtime][handler] upgrade failed")
		return
	}
	conn.SetReadLimit(wsReadLimit)
	h.hub.Serve(c.Request.Context(), conn, claims)
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || strings.EqualFold(a, origin) {
				return true
			}
		}
		return false
	}
}
