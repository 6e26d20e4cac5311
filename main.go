// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"concert-booking/cmd"
	"concert-booking/internal/data/entity"
	"concert-booking/internal/data/repository"
	"concert-booking/internal/event"
	"concert-booking/internal/usecase"
	"concert-booking/internal/wire"
	"concert-booking/pkg/clock"
	"concert-booking/pkg/database"
	"concert-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("session_store", config.Session.Store),
	)

	promos, err := loadPromos(config.Promo)
	if err != nil {
		logger.Fatal("Invalid promo configuration", zap.Error(err))
	}
	logger.Info("Promo codes loaded", zap.Strings("codes", promos.Codes()))

	// Connect to redis when requested; fall back to memory if it is down
	var rdb redis.UniversalClient
	if config.Session.Store == utils.SessionStoreRedis {
		client, err := database.InitRedis(config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, using in-memory sessions",
				zap.String("addr", config.Redis.Addr),
				zap.Error(err))
		} else {
			defer client.Close()
			rdb = client
			logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))
		}
	}

	clk := clock.NewRealClock()
	repos := repository.NewRepository(config.Session, config.Redis, rdb, clk, logger)

	// Booking events
	watermillLogger := event.NewLoggerAdapter(logger)
	pubSub := event.NewPubSub(watermillLogger)
	defer pubSub.Close()

	eventBus, err := event.NewEventBus(pubSub, watermillLogger)
	if err != nil {
		logger.Fatal("Failed to create event bus", zap.Error(err))
	}

	eventRouter, err := event.NewRouter(event.RouterDeps{
		Subscriber: pubSub,
		Logger:     watermillLogger,
		Log:        logger,
	})
	if err != nil {
		logger.Fatal("Failed to create event router", zap.Error(err))
	}

	go func() {
		if err := eventRouter.Run(ctx); err != nil {
			logger.Error("Event router stopped", zap.Error(err))
		}
	}()
	<-eventRouter.Running()

	// Wire all dependencies
	app := wire.Wiring(repos, usecase.Options{
		Promos:    promos,
		Publisher: eventBus,
		Clock:     clk,
	}, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}

// loadPromos builds the promo table from PROMO_CODES, or the built-in codes
// when it is empty.
func loadPromos(config utils.PromoConfig) (*entity.PromoTable, error) {
	rates := entity.DefaultPromoRates()
	if config.Codes != "" {
		parsed, err := entity.ParsePromoRates(config.Codes)
		if err != nil {
			return nil, err
		}
		if len(parsed) > 0 {
			rates = parsed
		}
	}
	return entity.NewPromoTable(rates)
}
