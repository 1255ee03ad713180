package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"requisicoes/internal/adapter/http/dto/request"
	"requisicoes/internal/adapter/http/dto/response"
	"requisicoes/internal/adapter/http/middleware"
	"requisicoes/internal/usecase"
	"requisicoes/pkg"
)

// NotificationHandler exposes the caller's notification log and the status email
// sender.

type NotificationHandler struct {
	notifications usecase.INotificationLog
	email         usecase.IStatusEmailUseCase
	log           logrus.FieldLogger
}

func NewNotificationHandler(notifications usecase.INotificationLog, email usecase.IStatusEmailUseCase, logger logrus.FieldLogger) *NotificationHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &NotificationHandler{notifications: notifications, email: email, log: logger}
}

// List
//
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Success      200 {object} response.NotificationListResponse
// @Security     Bearer
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	items, err := h.notifications.List(c.Request.Context(), claims.Email)
	if err != nil {
		respondError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(items))
}

// Clear
//
// @Summary      Clear notifications
// @Tags         notifications
// @Success      204
// @Security     Bearer
// @Router       /notifications [delete]
func (h *NotificationHandler) Clear(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	if err := h.notifications.Clear(c.Request.Context(), claims.Email); err != nil {
		respondError(c, mapNotificationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkRead
//
// @Summary      Mark one notification as read
// @Tags         notifications
// @Param        id path string true "Notification id"
// @Success      204
// @Failure      404 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	if err := h.notifications.MarkRead(c.Request.Context(), claims.Email, c.Param("id")); err != nil {
		respondError(c, mapNotificationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead
//
// @Summary      Mark every notification as read
// @Tags         notifications
// @Success      204
// @Security     Bearer
// @Router       /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	if err := h.notifications.MarkAllRead(c.Request.Context(), claims.Email); err != nil {
		respondError(c, mapNotificationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SendStatusEmail sends the status change email. Delivery problems come back as a
// warning with status 200.
//
// @Summary      Send status email
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request body request.StatusEmailRequest true "Email content"
// @Success      200 {object} usecase.EmailOutcome
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /notifications/status-email [post]
func (h *NotificationHandler) SendStatusEmail(c *gin.Context) {
	var req request.StatusEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	outcome, err := h.email.Send(c.Request.Context(), req.ToStatusEmail())
	if err != nil {
		h.log.WithError(err).Warn("[notification][handler] status email rejected")
		respondError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwner):
		return errUnauthorized
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidEmailRecipient):
		return pkg.NewDomainErrorSimple("INVALID_RECIPIENT", "Invalid email recipient", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEmailStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
