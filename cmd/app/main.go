package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/bootstrap"
	"github.com/Domenick1991/railbooking/internal/cache"
	"github.com/Domenick1991/railbooking/internal/kafka"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/Domenick1991/railbooking/internal/service/passengers"
	"github.com/Domenick1991/railbooking/internal/service/trains"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.TrainsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	trainRepo := repository.NewTrainRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	trainService := trains.NewTrainService(trainRepo, redisCache)
	passengerService := passengers.NewPassengerService(passengerRepo)
	bookingService := booking.NewBookingService(
		trainRepo,
		passengerRepo,
		ticketRepo,
		redisCache,
		producer,
		cfg.Kafka.TicketsTopic,
		time.Duration(cfg.Booking.TrainLockSeconds)*time.Second,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, trainService, bookingService, passengerService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
