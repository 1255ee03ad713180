package routes

import (
	"github.com/gin-gonic/gin"

	"requisicoes/internal/adapter/http/handlers"
	"requisicoes/internal/adapter/http/middleware"
	"requisicoes/internal/domain/entities"
)

const PathRequisitions = "/requisitions"

func addRequisitionRoutes(rg *gin.RouterGroup, h *handlers.RequisitionHandler) {
	staff := middleware.Authorize(entities.RoleAdmin, entities.RoleComprador)

	requisitions := rg.Group(PathRequisitions)
	{
		requisitions.POST("", h.Create)
		requisitions.GET("", h.List)
		requisitions.POST("/wizard/validate", h.ValidateStep)
		requisitions.GET("/stats", h.Stats)
		requisitions.GET("/export", staff, h.Export)

		requisitions.GET("/:id", h.GetByID)
		requisitions.GET("/:id/history", h.History)
		requisitions.GET("/:id/timeline", h.Timeline)

		requisitions.PATCH("/:id/status", staff, h.UpdateStatus)
		requisitions.POST("/:id/revert", staff, h.Revert)
		requisitions.POST("/:id/reopen", staff, h.Reopen)
		requisitions.PATCH("/:id/value", staff, h.UpdateValue)
		requisitions.PATCH("/:id/supplier", staff, h.UpdateSupplierName)
	}
}
