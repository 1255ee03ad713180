package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"requisicoes/internal/adapter/http/middleware"
	"requisicoes/internal/domain/entities"
	"requisicoes/pkg"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// isStaff reports whether the caller may see and manage every requisition.
func isStaff(claims entities.Claims) bool {
	return claims.Role == entities.RoleAdmin || claims.Role == entities.RoleComprador
}

// actor is what gets recorded as the author of a change.
func actor(c *gin.Context) string {
	claims, _ := middleware.ClaimsFrom(c)
	if v := strings.TrimSpace(claims.Email); v != "" {
		return v
	}
	return claims.UserID
}
