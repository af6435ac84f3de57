package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"fotkaj"
	"fotkaj/config"
	"fotkaj/internal/application/usecase"
	"fotkaj/internal/infrastructure/binding"
	"fotkaj/internal/infrastructure/broker"
	"fotkaj/internal/infrastructure/database"
	"fotkaj/internal/infrastructure/minio"
	"fotkaj/internal/infrastructure/whatsapp"
	"fotkaj/internal/presentation/handler"
	"fotkaj/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running fotkaj", "version", fotkaj.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	bindings, err := binding.New(cfg.BindingStore)
	if err != nil {
		ExitOnError(err)
	}

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	publisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	minioClient, err := minio.New(cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	uploader := minio.NewUploader(minioClient.MinioClient, cfg.MinIOUploader)
	remover := minio.NewRemover(minioClient.MinioClient, cfg.MinIORemover)

	waClient := whatsapp.New(cfg.WhatsApp)

	engine := usecase.NewEngine(
		database.NewAlbumDirectory(db),
		bindings,
		waClient,
		waClient,
		database.NewMediaWriter(db),
		database.NewMediaRetriever(db),
		database.NewMediaRemover(db),
		uploader,
		remover,
		publisher,
	)

	webhookHandler := handler.NewWebhookHandler(engine, cfg.VerifyToken)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("1M"))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.GET("/api/whatsapp/webhook", webhookHandler.HandleVerify)
	e.POST("/api/whatsapp/webhook", webhookHandler.HandleDelivery)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if err := db.Stop(); err != nil {
		logger.Error("couldn't stop db instance", "err", err.Error())
	}
	if err := bindings.Close(); err != nil {
		logger.Error("couldn't close binding store", "err", err.Error())
	}
	if err := brokerClient.Close(); err != nil {
		logger.Error("couldn't close broker client", "err", err.Error())
	}
}
