package server

import (
	"context"

	"github.com/abduss/objcopy/internal/auth"
	"github.com/abduss/objcopy/internal/config"
	"github.com/abduss/objcopy/internal/copier"
	"github.com/abduss/objcopy/internal/logger"
	"github.com/abduss/objcopy/internal/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Check probes one backend for readiness.
type Check struct {
	Component string
	Probe     func(ctx context.Context) error
}

// Dependencies groups the services required by the HTTP router.
type Dependencies struct {
	Config   config.Config
	Logger   *zap.Logger
	Checks   []Check
	Verifier *auth.Verifier
	Copier   *copier.Service
}

// NewRouter builds a Gin engine with foundational middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.Middleware(log))
	router.Use(metrics.Middleware())

	registerHealthRoutes(router, deps)
	metrics.Register(router, deps.Config.Metrics.PrometheusPath)

	api := router.Group("/v1")
	if deps.Copier != nil {
		protected := api.Group("/")
		protected.Use(auth.Middleware(deps.Verifier))
		copier.RegisterRoutes(protected, deps.Copier)
	}

	return router
}
