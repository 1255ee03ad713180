package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	_ "requisicoes/docs"
	"requisicoes/internal/adapter/http/routes"
	"requisicoes/internal/infrastructure/config"
	"requisicoes/internal/infrastructure/logging"
)

// @title           Requisições de Compra API
// @version         1.0
// @description     Purchase requisition lifecycle: wizard, approvals, values, payments and realtime notifications.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", false).WithError(err).Fatal("[bootstrap] invalid configuration")
	}
	log := logging.New(cfg.LogLevel, cfg.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("[bootstrap] failed to startup the application")
	}
}
