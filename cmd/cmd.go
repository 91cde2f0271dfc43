package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mosorio19/Lomito/internal/config"
	"github.com/mosorio19/Lomito/internal/handlers"
	"github.com/mosorio19/Lomito/internal/middleware"
	"github.com/mosorio19/Lomito/internal/repository"
	"github.com/mosorio19/Lomito/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Connect to database
	db, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Database connection established")

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	petRepo := repository.NewPetRepository(db)
	adoptionRepo := repository.NewAdoptionRepository(db)

	// Initialize photo storage
	uploader, err := services.NewS3Uploader(cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create S3 uploader")
	}

	// Push notifications are optional
	apnsClient, err := services.NewAPNsClient(cfg.APNs)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create APNs client")
	}
	if apnsClient == nil {
		log.Info().Msg("APNs push disabled")
	}

	// Initialize services
	wsHub := services.NewWSHub()
	notifier := services.NewNotifier(wsHub, apnsClient, accountRepo)
	accountService := services.NewAccountService(accountRepo, sessionRepo, uploader, cfg.JWT.Secret)
	petService := services.NewPetService(petRepo, uploader)
	adoptionService := services.NewAdoptionService(adoptionRepo, petRepo, notifier)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	petHandler := handlers.NewPetHandler(petService)
	adoptionHandler := handlers.NewAdoptionHandler(adoptionService)
	wsHandler := handlers.NewWebSocketHandler(wsHub, accountService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	// Public routes
	r.Get("/", accountHandler.Landing)
	r.Get("/login", accountHandler.LoginForm)
	r.Post("/login", accountHandler.Login)
	r.Get("/logout", accountHandler.Logout)
	r.Get("/signup", accountHandler.SignupForm)
	r.Post("/signup", accountHandler.Signup)
	r.Post("/signup_step_2", accountHandler.SignupStep2)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(accountService))

		r.Get("/mascotas/new", petHandler.NewForm)
		r.Post("/mascotas", petHandler.Create)
		r.Get("/mascotas/{id}", petHandler.Get)
		r.Get("/mascotas/delete/{id}", petHandler.Delete)
		r.Get("/mascotas", petHandler.ListAvailable)
		r.Get("/mascotas/my_pets/all", petHandler.ListMine)

		r.Get("/adopcion/new", adoptionHandler.NewForm)
		r.Post("/adopcion", adoptionHandler.Create)
		r.Get("/adopcion/{id}", adoptionHandler.Get)
		r.Get("/adopcion", adoptionHandler.ListIncoming)
		r.Get("/adopcion/my_adoptions", adoptionHandler.ListMine)

		r.Get("/profile", accountHandler.Profile)
		r.Put("/profile/push_token", accountHandler.UpdatePushToken)
	})

	// WebSocket route
	r.Get("/ws", wsHandler.HandleWebSocket)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
