// Package server wires configuration, storage, and routes into the HTTP API
// and runs it with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hyrahs/shopstore-api/app/controllers"
	"github.com/hyrahs/shopstore-api/app/repositories"
	"github.com/hyrahs/shopstore-api/app/routes"
	"github.com/hyrahs/shopstore-api/app/services"
	"github.com/hyrahs/shopstore-api/config"
	"github.com/hyrahs/shopstore-api/pkg/auth"
	"github.com/hyrahs/shopstore-api/pkg/cache"
	"github.com/hyrahs/shopstore-api/pkg/database"
	"github.com/hyrahs/shopstore-api/pkg/logger"
	"github.com/hyrahs/shopstore-api/pkg/metrics"
	"github.com/hyrahs/shopstore-api/pkg/middleware"
	"github.com/hyrahs/shopstore-api/pkg/reqid"
	"github.com/hyrahs/shopstore-api/pkg/router"
	"github.com/hyrahs/shopstore-api/pkg/storage"
)

// Per-IP rate limit applied across the whole API.
const (
	rateLimitMax    = 300
	rateLimitWindow = time.Minute
)

// Server is the composed HTTP API.
type Server struct {
	http     *http.Server
	router   *router.Router
	mongoLog *logger.MongoHandler
}

// New loads configuration, connects the backing services, and builds the
// route table. MongoDB is required; Redis and the Mongo log sink are
// optional and degrade with a warning.
func New() (*Server, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("server: load config: %w", err)
	}

	secret := config.JWTSecret()
	if secret == config.InsecureDefaultSecret && config.AppEnv() != "local" {
		logger.Warn("JWT_SECRET is not set; using the insecure built-in fallback",
			"env", config.AppEnv(),
		)
	}

	if err := database.Connect(); err != nil {
		return nil, err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable; product cache disabled", "error", err)
	}

	if err := storage.Connect(); err != nil {
		return nil, err
	}

	s := &Server{}

	// Optional MongoDB log sink, fanned out alongside the console handler.
	if uri := config.Get("LOG_MONGO_URI", ""); uri != "" {
		mh, err := logger.NewMongoHandler(uri, config.Get("LOG_MONGO_DATABASE", config.MongoDatabase()), "logs")
		if err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		} else {
			s.mongoLog = mh
			logger.SetHandler(logger.NewMultiHandler(logger.L.Handler(), mh))
		}
	}

	tokens := auth.NewTokenService(secret)

	db := database.DB()
	authSvc := services.NewAuthService(repositories.NewUserRepository(db), tokens)
	orderSvc := services.NewOrderService(repositories.NewOrderRepository(db))
	productSvc := services.NewProductService(repositories.NewProductRepository(db), storage.Default())
	contactSvc := services.NewContactService(nil)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions(config.CORSOrigins())),
		middleware.RateLimit(rateLimitMax, rateLimitWindow),
	)

	routes.RegisterAPI(r, &routes.Controllers{
		Auth:    controllers.NewAuthController(authSvc),
		Orders:  controllers.NewOrderController(orderSvc),
		Product: controllers.NewProductController(productSvc),
		Contact: controllers.NewContactController(contactSvc),
		Tokens:  tokens,
	})

	s.router = r
	s.http = &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

// Router exposes the route table (used by the route:list command).
func (s *Server) Router() *router.Router {
	return s.router
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		logger.Info("server listening", "addr", s.http.Addr, "env", config.AppEnv())
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	s.Close()
	return nil
}

// Close releases backing connections. Safe after a failed boot.
func (s *Server) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.mongoLog != nil {
		s.mongoLog.Close()
	}
	_ = cache.Close()
	_ = database.Disconnect(ctx)
}
