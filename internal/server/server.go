package server

import (
	"fmt"
	"net/http"
	"time"

	"stylevault/internal/config"
	"stylevault/internal/middleware"
	"stylevault/internal/moodboard"
	"stylevault/internal/pinterest"
	"stylevault/internal/repository"
	"stylevault/internal/service"
	"stylevault/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, redisClient *redis.Client) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.DefaultMiddlewareStack()...)
	router.Use(middleware.ErrorHandlingMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.CORSMiddleware(nil, cfg.Server.Env != "production"))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(redisClient)
	orderRepo := repository.NewOrderRepository(redisClient)
	moodboardRepo := repository.NewMoodboardRepository(redisClient)
	socialRepo := repository.NewSocialRepository(redisClient)
	wishlistRepo := repository.NewWishlistRepository(redisClient)
	styleRepo := repository.NewStyleRepository(redisClient)
	pinterestRepo := repository.NewPinterestRepository(redisClient)

	// Initialize services
	wardrobeService := service.NewWardrobeService(orderRepo)
	moodboardService := service.NewMoodboardService(
		orderRepo, moodboardRepo, styleRepo, moodboard.NewDefaultGenerator(),
	)
	pinterestClient := pinterest.NewClient(
		cfg.Pinterest.AppID, cfg.Pinterest.AppSecret, cfg.Pinterest.RedirectURI,
	)
	pinterestService := service.NewPinterestService(pinterestClient, pinterestRepo)

	// Initialize handlers
	profileHandler := transport.NewProfileHandler(profileRepo, logger)
	orderHandler := transport.NewOrderHandler(orderRepo, wardrobeService, logger)
	moodboardHandler := transport.NewMoodboardHandler(moodboardService, logger)
	socialHandler := transport.NewSocialHandler(socialRepo, logger)
	wishlistHandler := transport.NewWishlistHandler(wishlistRepo, logger)
	styleHandler := transport.NewStyleHandler(styleRepo, logger)
	pinterestHandler := transport.NewPinterestHandler(pinterestService, logger)

	// Create middleware guards
	authMiddleware := middleware.AuthMiddleware(cfg.Auth.JWTSecret, logger)
	selfOnly := middleware.RequireSelf(logger)
	rateLimit := middleware.RateLimitMiddleware(redisClient, middleware.RateLimitConfig{
		RequestsPerWindow: 120,
		Window:            time.Minute,
		KeyPrefix:         "ratelimit",
	}, logger)

	// Register routes
	router.Route("/api", func(r chi.Router) {
		r.Use(rateLimit)
		r.Use(authMiddleware)

		profileHandler.RegisterRoutes(r, selfOnly)
		orderHandler.RegisterRoutes(r, selfOnly)
		moodboardHandler.RegisterRoutes(r, selfOnly)
		socialHandler.RegisterRoutes(r, selfOnly)
		wishlistHandler.RegisterRoutes(r, selfOnly)
		styleHandler.RegisterRoutes(r, selfOnly)
		pinterestHandler.RegisterRoutes(r, selfOnly)
	})

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
