package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"requisicoes/internal/adapter/http/middleware"
	"requisicoes/internal/domain/entities"
)

func quietLogger() logrus.FieldLogger {
	l, _ := logtest.NewNullLogger()
	return l
}

// routerAs returns an engine whose requests are already authenticated as claims.
func routerAs(claims entities.Claims) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetClaims(c, claims)
		c.Next()
	})
	return r
}

var (
	adminClaims     = entities.Claims{UserID: "u-admin", Email: "admin@empresa.com", Role: entities.RoleAdmin}
	requesterClaims = entities.Claims{UserID: "u-ana", Email: "ana@empresa.com", Role: entities.RoleSolicitante}
)
