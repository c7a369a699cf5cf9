package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/goglobe/api"
	"github.com/Domenick1991/goglobe/config"
	"github.com/Domenick1991/goglobe/internal/auth"
	"github.com/Domenick1991/goglobe/internal/bootstrap"
	"github.com/Domenick1991/goglobe/internal/cache"
	"github.com/Domenick1991/goglobe/internal/kafka"
	"github.com/Domenick1991/goglobe/internal/logger"
	"github.com/Domenick1991/goglobe/internal/repository"
	"github.com/Domenick1991/goglobe/internal/service/booking"
	"github.com/Domenick1991/goglobe/internal/service/catalog"
	"github.com/Domenick1991/goglobe/internal/service/offers"
	"github.com/Domenick1991/goglobe/internal/service/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnvFiles(".env")

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	logger.SetupLogger(cfg.Log.Level)
	log := logrus.StandardLogger()

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("auth.jwt_secret (or JWT_SECRET) must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.OffersCacheTTL)*time.Second)
	defer redisCache.Close()

	// A nil interface disables event publishing.
	var producer booking.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		p := kafka.NewProducer(cfg.Kafka.Brokers)
		defer p.Close()
		if err := p.CheckConnection(ctx); err != nil {
			log.WithError(err).Warn("kafka is not reachable, booking events may be lost")
		}
		producer = p
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	bookingRepo := repository.NewBookingRepository(pool)
	offerRepo := repository.NewTravelOfferRepository(pool)

	bookingService := booking.NewBookingService(
		bookingRepo,
		producer,
		cfg.Kafka.BookingEventsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithLogger(log),
	)
	offerService := offers.NewOfferService(offerRepo, redisCache, log)
	userService := users.NewUserService(repository.NewUserRepository(pool), tokens, log)

	if err := api.RegisterValidators(); err != nil {
		log.Fatalf("register validators: %v", err)
	}
	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(cfg.HTTP, tokens, log,
		api.NewBookingHandler(bookingService),
		api.NewOfferHandler(offerService),
		api.NewAgencyHandler(catalog.NewAgencyService(repository.NewAgencyRepository(pool))),
		api.NewHotelHandler(catalog.NewHotelService(repository.NewHotelRepository(pool))),
		api.NewPropertyHandler(catalog.NewPropertyService(repository.NewPropertyRepository(pool))),
		api.NewLocationHandler(catalog.NewLocationService(repository.NewLocationRepository(pool))),
		api.NewUserHandler(userService),
	)

	if err := bootstrap.Run(ctx, cfg.HTTP, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
