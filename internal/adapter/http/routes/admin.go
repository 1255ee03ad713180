package routes

import (
	"github.com/gin-gonic/gin"

	"requisicoes/internal/adapter/http/handlers"
)

const (
	PathAdmin    = "/admin"
	PathRealtime = "/ws"
)

// The password reset handler checks the bearer token and the admin role itself.
func addAdminRoutes(rg *gin.RouterGroup, h *handlers.PasswordResetHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.POST("/reset-password", h.Reset)
	}
}

func addRealtimeRoutes(rg *gin.RouterGroup, h *handlers.WebSocketHandler) {
	rg.GET(PathRealtime, h.Serve)
}
