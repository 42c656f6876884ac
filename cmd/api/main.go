package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/stayloop/hotel-bookings/internal/http/handlers"
	authmw "github.com/stayloop/hotel-bookings/internal/http/middleware"
	"github.com/stayloop/hotel-bookings/internal/mailer"
	"github.com/stayloop/hotel-bookings/internal/notify"
	"github.com/stayloop/hotel-bookings/internal/repo/postgres"
	redisrepo "github.com/stayloop/hotel-bookings/internal/repo/redis"
	"github.com/stayloop/hotel-bookings/internal/service"
	"github.com/stayloop/hotel-bookings/pkg/config"
	"github.com/stayloop/hotel-bookings/pkg/database"
	"github.com/stayloop/hotel-bookings/pkg/events"
	"github.com/stayloop/hotel-bookings/pkg/logger"
	mw "github.com/stayloop/hotel-bookings/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Connect to database
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Connect to Redis (rate limiting)
	redisOpts, err := goredis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	redisClient := goredis.NewClient(redisOpts)
	defer redisClient.Close()

	// Connect to event bus
	eventBus, err := events.NewNATSEventBus(cfg.NATS.URL)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer eventBus.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(pool)
	hotelRepo := postgres.NewHotelRepo(pool)
	roomRepo := postgres.NewRoomRepo(pool)
	bookingRepo := postgres.NewBookingRepo(pool)
	rateLimitRepo := redisrepo.NewRateLimitRepo(redisClient)

	// Services
	mailSvc := mailer.FromConfig(cfg)
	authService := service.NewAuthService(userRepo, hotelRepo, mailSvc, eventBus, cfg)
	hotelService := service.NewHotelService(hotelRepo, eventBus)
	roomService := service.NewRoomService(roomRepo, hotelRepo)
	bookingService := service.NewBookingService(bookingRepo, hotelRepo, roomRepo, userRepo, eventBus)

	// Booking confirmations ride the event bus
	consumer := notify.NewConsumer(eventBus, mailSvc)
	if err := consumer.Start(); err != nil {
		logger.Error("Failed to start notify consumer", "error", err)
		os.Exit(1)
	}

	// Gate and handlers
	gate := authmw.NewGate(cfg.Auth.JWTSecret)
	limiter := authmw.NewRateLimiter(rateLimitRepo, 10, time.Minute, cfg.Server.TrustProxyHeaders)

	userHandler := handlers.NewUserHandler(authService, gate, limiter)
	hotelHandler := handlers.NewHotelHandler(hotelService, roomService, gate)
	bookingHandler := handlers.NewBookingHandler(bookingService, gate)

	// Router
	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.Health)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/users", userHandler.Routes())
		r.Mount("/hotels", hotelHandler.Routes())
		r.Mount("/bookings", bookingHandler.Routes())
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting hotel bookings API", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
