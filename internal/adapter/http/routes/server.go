package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"requisicoes/internal/adapter/http/handlers"
	"requisicoes/internal/adapter/kv"
	"requisicoes/internal/adapter/persistence/repository"
	"requisicoes/internal/adapter/realtime"
	"requisicoes/internal/domain/entities"
	"requisicoes/internal/domain/wizard"
	"requisicoes/internal/infrastructure/auth"
	"requisicoes/internal/infrastructure/awsconfig"
	"requisicoes/internal/infrastructure/cache"
	"requisicoes/internal/infrastructure/changefeed"
	"requisicoes/internal/infrastructure/config"
	"requisicoes/internal/infrastructure/database"
	"requisicoes/internal/infrastructure/email"
	"requisicoes/internal/infrastructure/metrics"
	"requisicoes/internal/infrastructure/payments"
	"requisicoes/internal/infrastructure/storage"
	"requisicoes/internal/usecase"
	"requisicoes/internal/usecase/interfaces"
)

const shutdownTimeout = 10 * time.Second

// Run wires the service from cfg and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	app, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("[http] listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("[http] shutting down")
	app.hub.CloseAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type application struct {
	router http.Handler
	hub    *realtime.Hub
	close  func()
}

func build(ctx context.Context, cfg config.Config, log *logrus.Logger) (*application, error) {
	catalog, err := config.LoadStatusCatalog(cfg.StatusLabelsFile, entities.DefaultStatusCatalog())
	if err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.Load(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	ddb := database.NewDynamoDBClient(awsCfg, cfg.AWS.DynamoDBEndpoint)

	requisitionRepo := repository.NewRequisitionDynamoRepository(ddb)
	historyRepo := repository.NewValueHistoryDynamoRepository(ddb)
	paymentRepo := repository.NewPurchasePaymentDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)

	closers := []func(){}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var store interfaces.IKeyValueStore = kv.NewMemoryStore()
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("[bootstrap] redis unavailable, notifications kept in memory")
		} else {
			store = kv.NewRedisStore(client)
			closers = append(closers, func() { _ = client.Close() })
		}
	}

	var attachments interfaces.IAttachmentStorage
	if cfg.Storage.Bucket != "" {
		attachments = storage.NewS3Uploader(storage.NewS3Client(awsCfg, cfg.Storage.Endpoint), cfg.Storage.Bucket, cfg.AWS.Region, cfg.Storage.PublicDomain)
	} else {
		log.Warn("[bootstrap] S3_BUCKET not set, attachments disabled")
	}

	var sender interfaces.IEmailSender
	if cfg.Email.From != "" {
		sender = email.NewSESSender(sesv2.NewFromConfig(awsCfg), cfg.Email.From)
	} else {
		log.Warn("[bootstrap] EMAIL_FROM not set, status emails disabled")
	}

	var gateway interfaces.IPaymentGateway
	if !cfg.Payment.Mock {
		mp, err := payments.NewMercadoPagoGateway(cfg.Payment.AccessToken, log)
		if err != nil {
			log.WithError(err).Warn("[bootstrap] Mercado Pago gateway not configured")
		} else {
			gateway = mp
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	broker := changefeed.NewBroker(log)
	tokens := auth.NewTokenService(cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		log.Warn("[bootstrap] JWT_SECRET not set, every authenticated route will answer 401")
	}

	emailUseCase := usecase.NewStatusEmailUseCase(sender, catalog, cfg.Email.AppURL, recorder, log)
	requisitionUseCase := usecase.NewRequisitionUseCase(usecase.RequisitionDeps{
		Repo:      requisitionRepo,
		History:   historyRepo,
		Storage:   attachments,
		Feed:      broker,
		Email:     emailUseCase,
		Validator: wizard.NewValidator(),
		Catalog:   catalog,
		Metrics:   recorder,
		Logger:    log,
	})
	paymentUseCase := usecase.NewPurchasePaymentUseCase(paymentRepo, requisitionRepo, gateway, usecase.PaymentOptions{
		Mock:            cfg.Payment.Mock,
		AccessToken:     cfg.Payment.AccessToken,
		TestPayerEmail:  cfg.Payment.TestPayerEmail,
		TestPayerUserID: cfg.Payment.TestPayerUserID,
	}, log)
	notificationLog := usecase.NewNotificationLog(store, log)
	passwordResetUseCase := usecase.NewPasswordResetUseCase(tokens, userRepo, userRepo, auth.NewBcryptHasher(0), log)

	closers = append(closers, usecase.NewNotificationRecorder(notificationLog, catalog, log).Subscribe(broker))

	hub := realtime.NewHub(realtime.SessionDeps{
		Feed:    broker,
		Catalog: catalog,
		Saver:   requisitionUseCase,
		Metrics: recorder,
		Config:  realtime.DefaultSessionConfig(),
		Logger:  log,
	})

	router := NewRouter(Handlers{
		Requisition:   handlers.NewRequisitionHandler(requisitionUseCase, catalog, log),
		Payment:       handlers.NewPurchasePaymentHandler(paymentUseCase, cfg.Payment.Mock, log),
		Notification:  handlers.NewNotificationHandler(notificationLog, emailUseCase, log),
		PasswordReset: handlers.NewPasswordResetHandler(passwordResetUseCase, log),
		WebSocket:     handlers.NewWebSocketHandler(hub, tokens, cfg.CORSOrigins, log),
		Metrics:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}, tokens, cfg.CORSOrigins, log)

	return &application{router: router, hub: hub, close: closeAll}, nil
}
