package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ShyneADL/recipe-app/config"
	"github.com/ShyneADL/recipe-app/internal/api"
	"github.com/ShyneADL/recipe-app/internal/catalog"
	"github.com/ShyneADL/recipe-app/internal/gateway"
	"github.com/ShyneADL/recipe-app/internal/middleware"
	"github.com/ShyneADL/recipe-app/internal/router"
	"github.com/ShyneADL/recipe-app/internal/service"
	"github.com/ShyneADL/recipe-app/internal/wishlist"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// Options carries the optional collaborators. Redis and S3 are
// nil-able: without Redis the catalog cache is purely in-memory and
// rate limiting is off; without S3 avatar upload returns an error.
type Options struct {
	Redis *redis.Client
	S3    *config.S3Config
}

// New wires the full application: gateway, catalog cache, stores,
// services, handlers and routes.
func New(cfg *config.Config, db *gorm.DB, opts Options) (*Server, error) {
	store, err := wishlist.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open wishlist store: %w", err)
	}

	cache := catalog.New(gateway.NewClient(cfg), opts.Redis)

	authService := service.NewAuthService(db, cfg.JWTSecret)
	oauthService := service.NewOAuthService(db, authService, cfg)
	profileService := service.NewProfileService(db)
	imageService := service.NewImageService(opts.S3)

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService, oauthService, cfg),
		Recipe:    api.NewRecipeHandler(cache),
		Wishlist:  api.NewWishlistHandler(store, cache),
		Profile:   api.NewProfileHandler(profileService, imageService),
		Validator: authService,
	}
	if opts.Redis != nil {
		handlers.CatalogLimit = middleware.NewCatalogRateLimiter(opts.Redis)
		handlers.AuthLimit = middleware.NewAuthRateLimiter(opts.Redis)
	}

	engine := router.SetupRouter(cfg, handlers)

	return &Server{
		cfg:    cfg,
		router: engine,
		http: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: engine,
		},
	}, nil
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the route table, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
