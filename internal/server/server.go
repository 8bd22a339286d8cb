package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cookmate/backend/config"
	"github.com/cookmate/backend/internal/api"
	"github.com/cookmate/backend/internal/database"
	"github.com/cookmate/backend/internal/middleware"
	"github.com/cookmate/backend/internal/service"
	"github.com/cookmate/backend/internal/store"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server and the connections it owns
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	redis  *redis.Client
	log    *zap.Logger
}

// Open connects to the database, applies migrations and, when configured,
// connects to Redis and S3 before building the server.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, error) {
	db, err := database.New(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir, log); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = database.NewRedisClient(cfg, log)
		if err != nil {
			// rate limiting is skipped without redis
			log.Warn("redis unavailable, continuing without rate limiting", zap.Error(err))
			redisClient = nil
		}
	}

	var presigner service.Presigner
	s3cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		log.Warn("s3 unavailable, recipe images will not be presigned", zap.Error(err))
	} else if s3cfg != nil {
		presigner = s3cfg
	}

	return New(cfg, db, redisClient, presigner, log), nil
}

// New builds the services and routes over already opened connections.
// redisClient and presigner may be nil.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, presigner service.Presigner, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	favorites := store.NewFavoriteStore(db)
	ratings := store.NewRatingStore(db)
	recipes := store.NewRecipeStore(db)
	images := service.NewImageResolver(presigner, log)

	deps := &api.Dependencies{
		DB:          db,
		Redis:       redisClient,
		Auth:        service.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL, log),
		Favorites:   service.NewFavoriteService(favorites, ratings, recipes, service.NewTransactor(db, favorites, ratings), log),
		Recipes:     service.NewRecipeService(recipes, ratings, images),
		Preferences: service.NewPreferenceService(store.NewPreferenceStore(db)),
		WriteLimiter: middleware.NewWriteRateLimiter(redisClient,
			cfg.RateLimitWindow, cfg.RateLimitRequests, log),
		FavoritesEmptyAs404: cfg.FavoritesEmptyAs404,
		SecureCookies:       config.IsProduction(),
		Logger:              log,
	}
	if cfg.AIServiceURL != "" {
		deps.Recommender = service.NewRecommenderClient(cfg.AIServiceURL, cfg.AIServiceTimeout, log)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	if len(cfg.CORSOrigins) > 0 {
		router.Use(middleware.CORS(cfg.CORSOrigins))
	}

	api.SetupAPI(router, deps)

	return &Server{
		cfg:    cfg,
		router: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		db:    db,
		redis: redisClient,
		log:   log,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, then closes Redis and the database.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.http.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}
	if s.db != nil {
		if err := database.Close(s.db); err != nil {
			errs = append(errs, fmt.Errorf("database close: %w", err))
		}
	}
	return errors.Join(errs...)
}
