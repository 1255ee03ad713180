package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"requisicoes/internal/adapter/http/dto/request"
	"requisicoes/internal/adapter/http/dto/response"
	"requisicoes/internal/usecase"
)

// PasswordResetHandler lets an administrator set another user's password. It does its
// own bearer check, so the route is not behind the Authenticate middleware.

type PasswordResetHandler struct {
	usecase usecase.IPasswordResetUseCase
	log     logrus.FieldLogger
}

func NewPasswordResetHandler(uc usecase.IPasswordResetUseCase, logger logrus.FieldLogger) *PasswordResetHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PasswordResetHandler{usecase: uc, log: logger}
}

// Reset
//
// @Summary      Reset a user's password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body request.ResetPasswordRequest true "Target user and new password"
// @Success      200 {object} response.ResetPasswordResponse
// @Failure      400 {object} response.ResetPasswordResponse
// @Failure      401 {object} response.ResetPasswordResponse
// @Failure      403 {object} response.ResetPasswordResponse
// @Failure      404 {object} response.ResetPasswordResponse
// @Security     Bearer
// @Router       /admin/reset-password [post]
func (h *PasswordResetHandler) Reset(c *gin.Context) {
	// The caller is authenticated before the body is judged, so a malformed body from
	// an anonymous caller still answers 401.
	var req request.ResetPasswordRequest
	bindErr := c.ShouldBindJSON(&req)
	if bindErr != nil {
		req = request.ResetPasswordRequest{}
	}

	err := h.usecase.Reset(c.Request.Context(), c.GetHeader("Authorization"), req.UserID, req.NewPassword)
	if bindErr != nil && (err == nil || errors.Is(err, usecase.ErrInvalidResetRequest)) {
		c.JSON(http.StatusBadRequest, response.ResetPasswordResponse{Error: "Corpo da requisição inválido"})
		return
	}
	if err != nil {
		status, msg := mapPasswordResetError(err)
		h.log.WithError(err).WithField("status", status).Warn("[admin][handler] password reset failed")
		c.JSON(status, response.ResetPasswordResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, response.ResetPasswordResponse{Success: true})
}

func mapPasswordResetError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrMissingCredential):
		return http.StatusUnauthorized, "Token de autenticação ausente"
	case errors.Is(err, usecase.ErrInvalidCredential):
		return http.StatusUnauthorized, "Token de autenticação inválido"
	case errors.Is(err, usecase.ErrNotAdmin):
		return http.StatusForbidden, "Apenas administradores podem redefinir senhas"
	case errors.Is(err, usecase.ErrInvalidResetRequest):
		return http.StatusBadRequest, "Usuário e nova senha são obrigatórios"
	case errors.Is(err, usecase.ErrPasswordTooShort):
		return http.StatusBadRequest, "A senha deve ter pelo menos 6 caracteres"
	case errors.Is(err, usecase.ErrUserNotFound):
		return http.StatusNotFound, "Usuário não encontrado"
	default:
		return http.StatusInternalServerError, "Não foi possível redefinir a senha"
	}
}
