package routes

import (
	"github.com/gin-gonic/gin"

	"requisicoes/internal/adapter/http/handlers"
	"requisicoes/internal/adapter/http/middleware"
	"requisicoes/internal/domain/entities"
)

const PathNotifications = "/notifications"

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.List)
		notifications.DELETE("", h.Clear)
		notifications.POST("/read-all", h.MarkAllRead)
		notifications.POST("/:id/read", h.MarkRead)
		notifications.POST("/status-email", middleware.Authorize(entities.RoleAdmin, entities.RoleComprador), h.SendStatusEmail)
	}
}
