package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase/interfaces"
	"requisicoes/pkg"
)

const claimsKey = "auth_claims"

// Authenticate verifies the bearer token and stores its claims in the gin context.
func Authenticate(verifier interfaces.ITokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization header is required", http.StatusUnauthorized))
			return
		}
		claims, err := verifier.Verify(token)
		if err != nil {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized))
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Authorize lets through only callers whose role is one of roles.
func Authorize(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized))
			return
		}
		for _, r := range roles {
			if r == claims.Role {
				c.Next()
				return
			}
		}
		abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have permission to access this resource", http.StatusForbidden))
	}
}

func ClaimsFrom(c *gin.Context) (entities.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return entities.Claims{}, false
	}
	claims, ok := v.(entities.Claims)
	return claims, ok
}

// SetClaims stores claims where Authenticate would. Handler tests use it in place of
// a signed token.
func SetClaims(c *gin.Context, claims entities.Claims) {
	c.Set(claimsKey, claims)
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
