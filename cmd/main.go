package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/commercegate/checkout-service/internal/app"
	"github.com/commercegate/checkout-service/internal/config"
	"github.com/commercegate/checkout-service/internal/events"
	"github.com/commercegate/checkout-service/internal/handler"
	"github.com/commercegate/checkout-service/internal/payment"
	"github.com/commercegate/checkout-service/internal/postgres"
	"github.com/commercegate/checkout-service/internal/repo"
	"github.com/commercegate/checkout-service/internal/service"
	"github.com/commercegate/checkout-service/pkg/cache"
	"github.com/commercegate/checkout-service/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	storeRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	producer := events.NewProducer(logger, conf.Kafka)
	stripeClient := payment.New(logger, conf.Stripe)

	checkoutSvc := service.NewCheckoutService(
		logger, txManager, storeRepo, storeRepo,
		stripeClient, producer, orderCache, conf.Stripe.Currency,
	)
	sweeper := service.NewSweeper(logger, storeRepo, conf.Sweeper.Interval, conf.Sweeper.MaxAge)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, checkoutSvc)
	webhookHandler := handler.NewWebhookHandler(logger, conf.Stripe.WebhookSecret, checkoutSvc)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler, webhookHandler)
	app.SetStarters(orderCache, sweeper)
	app.SetClosers(producer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
