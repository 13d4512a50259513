package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"travelbook/internal/api"
	"travelbook/internal/auth"
	"travelbook/internal/cache"
	"travelbook/internal/events"
	"travelbook/internal/ports"
	"travelbook/internal/repository"
	"travelbook/internal/service"
	"travelbook/pkg/config"
	"travelbook/pkg/health"
)

type App struct {
	config   *config.Config
	server   *http.Server
	db       *pgxpool.Pool
	redis    *redis.Client
	producer ports.EventProducer
}

func NewApp(cfg *config.Config) *App {
	return &App{config: cfg}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := a.setupDatabase(ctx); err != nil {
		return fmt.Errorf("database setup failed: %w", err)
	}

	if err := a.setupRedis(ctx); err != nil {
		return fmt.Errorf("redis setup failed: %w", err)
	}

	a.setupProducer()

	if err := a.setupServer(); err != nil {
		return fmt.Errorf("server setup failed: %w", err)
	}

	return nil
}

func (a *App) setupDatabase(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	return nil
}

func (a *App) setupRedis(ctx context.Context) error {
	if !a.config.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.config.Redis.Addr,
		Password: a.config.Redis.Password,
		DB:       a.config.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info().Str("addr", a.config.Redis.Addr).Msg("connected to redis")
	a.redis = client
	return nil
}

func (a *App) setupProducer() {
	if !a.config.Kafka.Enabled {
		return
	}
	a.producer = events.NewProducer(a.config.Kafka.Brokers, a.config.Kafka.Topic)
	log.Info().Strs("brokers", a.config.Kafka.Brokers).Str("topic", a.config.Kafka.Topic).Msg("booking event producer enabled")
}

func (a *App) setupServer() error {
	services := a.setupServices()
	router := a.setupRouter(services)

	a.server = &http.Server{
		Addr:         a.config.Server.Address,
		Handler:      router,
		WriteTimeout: a.config.Server.WriteTimeout,
		ReadTimeout:  a.config.Server.ReadTimeout,
		IdleTimeout:  a.config.Server.IdleTimeout,
	}

	return nil
}

type Services struct {
	TravelService  ports.TravelService
	BookingService ports.BookingService
	ProfileService ports.ProfileService
}

func (a *App) setupServices() Services {
	travelRepo := repository.NewTravelRepository(a.db)
	bookingRepo := repository.NewBookingRepository(a.db)
	profileRepo := repository.NewProfileRepository(a.db)

	var travelOpts []service.TravelServiceOption
	if a.redis != nil {
		travelOpts = append(travelOpts, service.WithSearchCache(cache.NewRedisCache(a.redis, a.config.Redis.QueryTTL)))
	}

	var bookingOpts []service.BookingServiceOption
	if a.producer != nil {
		bookingOpts = append(bookingOpts, service.WithEventProducer(a.producer))
	}

	return Services{
		TravelService:  service.NewTravelService(travelRepo, travelOpts...),
		BookingService: service.NewBookingService(bookingRepo, bookingOpts...),
		ProfileService: service.NewProfileService(profileRepo),
	}
}

func (a *App) setupRouter(services Services) http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(api.RequestLogger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	authenticated := auth.Middleware([]byte(a.config.Auth.JWTSecret))

	router.Route("/v1", func(r chi.Router) {
		r.Get("/health", health.HealthGet(a.healthCheckers()))

		// public catalog surface
		r.Get("/api/travel-options", api.QueryTravelOptions(services.TravelService))
		r.Get("/travel-options", api.SearchTravelOptions(services.TravelService))
		r.Get("/travel-options/featured", api.FeaturedTravelOptions(services.TravelService))
		r.Get("/travel-options/{travel_id}", api.GetTravelOption(services.TravelService))

		r.Group(func(r chi.Router) {
			r.Use(authenticated)

			r.Post("/travel-options", api.CreateTravelOption(services.TravelService))

			r.Post("/bookings", api.CreateBooking(services.BookingService))
			r.Get("/bookings", api.AllBookings(services.BookingService))
			r.Get("/bookings/{booking_id}", api.GetBooking(services.BookingService))
			r.Post("/bookings/{booking_id}/cancel", api.CancelBooking(services.BookingService))

			r.Get("/profile", api.GetProfile(services.ProfileService))
			r.Put("/profile", api.UpdateProfile(services.ProfileService))
		})
	})

	return router
}

func (a *App) healthCheckers() map[string]health.Checker {
	checkers := map[string]health.Checker{
		"postgres": func(ctx context.Context) error { return a.db.Ping(ctx) },
	}
	if a.redis != nil {
		checkers["redis"] = func(ctx context.Context) error { return a.redis.Ping(ctx).Err() }
	}
	return checkers
}

func (a *App) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().Str("addr", a.server.Addr).Msg("starting server")
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-shutdown:
		log.Info().Msg("starting graceful shutdown")
		return a.Shutdown(ctx)
	case <-ctx.Done():
		return a.Shutdown(ctx)
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			log.Warn().Err(err).Msg("producer close failed")
		}
	}
	if a.redis != nil {
		a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}

	return nil
}

func setupLogger(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

func main() {
	ctx := context.Background()

	// .env is optional; real deployments configure the environment
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg.Server.LogLevel)

	app := NewApp(cfg)
	if err := app.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}

	if err := app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("application error")
	}
}
