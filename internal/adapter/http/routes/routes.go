package routes

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "requisicoes/docs"
	"requisicoes/internal/adapter/http/handlers"
	"requisicoes/internal/adapter/http/middleware"
	"requisicoes/internal/usecase/interfaces"
)

// Handlers is everything the router mounts.
type Handlers struct {
	Requisition   *handlers.RequisitionHandler
	Payment       *handlers.PurchasePaymentHandler
	Notification  *handlers.NotificationHandler
	PasswordReset *handlers.PasswordResetHandler
	WebSocket     *handlers.WebSocketHandler
	Metrics       http.Handler
}

// NewRouter builds the gin engine with every public and authenticated route.
func NewRouter(h Handlers, verifier interfaces.ITokenVerifier, corsOrigins []string, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, corsOrigins, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAdminRoutes(v1, h.PasswordReset)
	addRealtimeRoutes(v1, h.WebSocket)

	// Rotas autenticadas
	authed := v1.Group("")
	authed.Use(middleware.Authenticate(verifier))
	addRequisitionRoutes(authed, h.Requisition)
	addPaymentRoutes(authed, h.Payment)
	addNotificationRoutes(authed, h.Notification)

	return router
}

func setMiddlewares(router *gin.Engine, corsOrigins []string, log logrus.FieldLogger) {
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(cors.New(corsConfig(corsOrigins)))
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
	}
	var allowed []string
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "*" {
			cfg.AllowAllOrigins = true
			cfg.AllowCredentials = false
			return cfg
		}
		if o != "" {
			allowed = append(allowed, o)
		}
	}
	if len(allowed) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}
	cfg.AllowOrigins = allowed
	return cfg
}
