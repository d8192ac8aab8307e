package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	_ "romaneio_api/docs" // generated by swag init
	"romaneio_api/internal/adapter/http/handlers"
	"romaneio_api/internal/adapter/http/middleware"
	"romaneio_api/internal/adapter/persistence"
	"romaneio_api/internal/infrastructure/config"
	"romaneio_api/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	shutdownTimeout = 10 * time.Second
	janitorInterval = time.Minute
)

// Run opens the configured storage and serves the API until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	repos, err := persistence.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[server] storage close failed err=%v", err)
		}
	}()

	limiter := newLimiterStore(cfg.RateLimit)
	if limiter != nil {
		limiter.StartJanitor(ctx, janitorInterval)
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           NewRouter(repos, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] listening addr=%s storage=%s", srv.Addr, cfg.Storage.Driver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Printf("[server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter wires use cases and handlers over repos. A nil limiter disables
// rate limiting.
func NewRouter(repos persistence.Repositories, limiter *middleware.LimiterStore) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, limiter)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	driverUseCase := usecase.NewDriverUseCase(repos.Drivers)
	manifestUseCase := usecase.NewManifestUseCase(repos.Manifests, repos.Drivers)
	deliveryUseCase := usecase.NewDeliveryUseCase(repos.Deliveries, repos.Manifests)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRomaneioRoutes(
		v1,
		handlers.NewDriverHandler(driverUseCase),
		handlers.NewManifestHandler(manifestUseCase),
		handlers.NewDeliveryHandler(deliveryUseCase),
	)
	return router
}

func setMiddlewares(router *gin.Engine, limiter *middleware.LimiterStore) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimit(limiter))
}

func newLimiterStore(cfg config.RateLimitConfig) *middleware.LimiterStore {
	if cfg.RPS <= 0 {
		return nil
	}
	return middleware.NewLimiterStore(cfg.RPS, cfg.Burst)
}
