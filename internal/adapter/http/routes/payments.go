package routes

import (
	"github.com/gin-gonic/gin"

	"requisicoes/internal/adapter/http/handlers"
	"requisicoes/internal/adapter/http/middleware"
	"requisicoes/internal/domain/entities"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PurchasePaymentHandler) {
	staff := middleware.Authorize(entities.RoleAdmin, entities.RoleComprador)

	rg.POST(PathRequisitions+"/:id/payments", staff, h.CreateByRequisitionID)
	rg.GET(PathRequisitions+"/:id/payments", staff, h.GetLatestByRequisitionID)

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", staff, h.GetByID)
	}
}
