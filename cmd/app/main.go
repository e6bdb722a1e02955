package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deliveryapi/cmd"
	httpapi "deliveryapi/internal/adapters/in/http"
	"deliveryapi/internal/adapters/out/postgres"
	"deliveryapi/internal/adapters/out/rabbitmq"
	"deliveryapi/internal/core/ports"

	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustGormOpen(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	publisher, closePublisher := mustPublisher(configs, logger)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager, err := app.Jobs()
	if err != nil {
		log.Fatalf("create jobs: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN:                  configs.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	return gormDB
}

// mustPublisher connects to RabbitMQ when a URL is configured and otherwise
// falls back to logging the events.
func mustPublisher(configs cmd.Config, logger *slog.Logger) (ports.OrderEventPublisher, func()) {
	if configs.RabbitMQURL == "" {
		logger.Warn("RABBITMQ_URL is not set, order events are only logged")
		return rabbitmq.NewLogPublisher(logger), func() {}
	}

	publisher, err := rabbitmq.Dial(configs.RabbitMQURL, configs.RabbitMQExchange, logger)
	if err != nil {
		log.Fatalf("connect to rabbitmq: %v", err)
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("close rabbitmq publisher", slog.Any("error", err))
		}
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	tokens, err := app.TokenIssuer()
	if err != nil {
		log.Fatalf("create token issuer: %v", err)
	}

	e, err := httpapi.NewServer(app.HTTPHandlers(), tokens, logger).Echo(ctx)
	if err != nil {
		log.Fatalf("create http server: %v", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server started", slog.String("port", port))
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", slog.Any("error", err))
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.Any("error", err))
	}
	logger.Info("http server stopped")
}
