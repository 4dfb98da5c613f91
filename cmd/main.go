package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/barterup-bff/docs"
	"github.com/sbilibin2017/barterup-bff/internal/facades"
	"github.com/sbilibin2017/barterup-bff/internal/handlers"
	"github.com/sbilibin2017/barterup-bff/internal/jwt"
	"github.com/sbilibin2017/barterup-bff/internal/logger"
	"github.com/sbilibin2017/barterup-bff/internal/middlewares"
	"github.com/sbilibin2017/barterup-bff/internal/repositories"
	"github.com/sbilibin2017/barterup-bff/internal/services"
	"github.com/sbilibin2017/barterup-bff/internal/validation"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title BarterUp BFF API
// @version 0.1.0
// @description Backend for the BarterUp skill exchange frontend. Auth and data are delegated to Supabase.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// eventBatchTimeout bounds how long a publish on the request path waits for
// its batch to fill.
const eventBatchTimeout = 10 * time.Millisecond

// newEventWriter returns the Kafka writer for domain events, or nil when no
// brokers are configured.
func newEventWriter(cfg *Config) services.KafkaWriter {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: eventBatchTimeout,
	}
}

// run wires the Supabase client, database pool, optional Redis cache and
// Kafka writer into the HTTP server and serves until ctx is cancelled or a
// shutdown signal arrives.
func run(ctx context.Context, cfg *Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	logger.Log.Infow("Supabase configured",
		"url", cfg.SupabaseURL,
		"anon_key", logger.MaskKey(cfg.SupabaseAnonKey),
		"service_role_key", logger.MaskKey(cfg.SupabaseServiceRoleKey),
	)

	// Connect to PostgreSQL
	db, err := sqlx.Open("pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL pool error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGPoolSize)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Warnw("PostgreSQL not reachable at startup", "host", cfg.PGHost, "error", err)
	}

	// Optional Redis profile cache
	var cache services.ProfileCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis not reachable at startup", "addr", cfg.RedisAddr, "error", err)
		}
		cache = repositories.NewProfileCacheRepository(rdb, time.Duration(cfg.ProfileCacheTTLSec)*time.Second)
		logger.Log.Infow("Profile cache enabled", "addr", cfg.RedisAddr, "ttl_seconds", cfg.ProfileCacheTTLSec)
	}

	// Optional Kafka event publishing
	writer := newEventWriter(cfg)
	if writer != nil {
		logger.Log.Infow("Event publishing enabled", "brokers", cfg.Brokers(), "topic", cfg.KafkaTopic)
	}
	publisher := services.NewKafkaPublisher(writer)
	defer publisher.Close()

	// Token extraction
	extractor := jwt.New(cfg.SupabaseJWTSecret)
	if !extractor.Verified() {
		logger.Log.Warn("SUPABASE_JWT_SECRET is not set: bearer tokens are NOT verified")
	}

	// Supabase client and repositories
	httpClient := &http.Client{Timeout: time.Duration(cfg.HTTPClientTimeoutSec) * time.Second}
	supabase := facades.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseServiceRoleKey, httpClient)

	profileRepo := repositories.NewProfileRepository(supabase)
	postRepo := repositories.NewPostRepository(supabase)
	pictureStore := repositories.NewPictureStore(cfg.UploadDir)
	healthRepo := repositories.NewHealthRepository(db)
	logger.Log.Infow("Profile pictures stored on local disk", "dir", pictureStore.Dir())

	// Initialize services
	profileService := services.NewProfileService(profileRepo, cache, pictureStore, publisher)
	authService := services.NewAuthService(facades.NewAuthFacade(supabase), profileService, publisher)
	postService := services.NewPostService(postRepo, publisher, cfg.PostsListLimit)

	bodyValidator, err := validation.NewBodyValidator()
	if err != nil {
		return err
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware(cfg.Origins()))

	// Public routes
	handlers.RegisterSignupHandler(r, handlers.NewSignupHandler(authService, bodyValidator))
	handlers.RegisterLoginHandler(r, handlers.NewLoginHandler(authService, bodyValidator))
	handlers.RegisterCompleteProfileHandler(r, handlers.NewCompleteProfileHandler(authService, bodyValidator))
	handlers.RegisterSkillsHandler(r, handlers.NewSkillsHandler())
	handlers.RegisterServePictureHandler(r, handlers.NewServePictureHandler(pictureStore))
	handlers.RegisterDiagnosticsHandlers(r,
		handlers.NewSupabaseTestHandler(supabase),
		handlers.NewDatabaseTestHandler(healthRepo),
	)

	// Public routes that recognise the caller when a token is sent
	r.Group(func(r chi.Router) {
		r.Use(middlewares.OptionalAuth(extractor))
		handlers.RegisterListPostsHandlers(r,
			handlers.NewListPostsHandler(postService),
			handlers.NewListUserPostsHandler(postService),
		)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAuth(extractor))
		handlers.RegisterProfileHandlers(r,
			handlers.NewGetProfileHandler(profileService),
			handlers.NewUpdateProfileHandler(profileService, bodyValidator),
		)
		handlers.RegisterPictureHandlers(r,
			handlers.NewUploadPictureHandler(profileService, bodyValidator),
			handlers.NewSkipPictureHandler(),
		)
		handlers.RegisterCreatePostHandler(r, handlers.NewCreatePostHandler(postService, bodyValidator))
	})

	docs.SwaggerInfo.Version = buildVersion
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	addr := fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
