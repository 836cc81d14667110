// Package api exposes the prediction engine over HTTP: scoring, differential
// ranking, Bayesian calculators, missing-symptom analysis, prediction history
// and the aggregate dashboard, plus a websocket feed of dashboard updates.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/disease-risk-server/internal/cache"
	"github.com/disease-risk-server/internal/domain"
	"github.com/disease-risk-server/internal/engine"
	"github.com/disease-risk-server/internal/history"
	"github.com/disease-risk-server/internal/knowledge"
	"github.com/disease-risk-server/internal/middleware"
	"github.com/disease-risk-server/internal/repository"
)

// Server is the HTTP server wiring the engine, the history store and the
// caches behind the REST and websocket endpoints.
type Server struct {
	cfg    *domain.Config
	logger *logrus.Logger
	router *gin.Engine
	server *http.Server

	base      *knowledge.Base
	scorer    *engine.Scorer
	analyzer  *engine.MissingAnalyzer
	store     history.Store
	predCache *cache.PredictionCache
	dashCache *cache.DashboardCache
	dashboard *repository.DashboardRepository
	limiter   *middleware.RateLimiter
}

// Deps carries the constructed collaborators into NewServer.
type Deps struct {
	Base      *knowledge.Base
	Scorer    *engine.Scorer
	Analyzer  *engine.MissingAnalyzer
	Store     history.Store
	PredCache *cache.PredictionCache
	DashCache *cache.DashboardCache           // nil when caching is disabled
	Dashboard *repository.DashboardRepository // nil on the sqlite backend
}

// NewServer creates a new HTTP server instance.
func NewServer(cfg *domain.Config, deps Deps, logger *logrus.Logger) *Server {
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.AuditLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(corsMiddleware())

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, logger)
		router.Use(limiter.Handler())
	}

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		router:    router,
		base:      deps.Base,
		scorer:    deps.Scorer,
		analyzer:  deps.Analyzer,
		store:     deps.Store,
		predCache: deps.PredCache,
		dashCache: deps.DashCache,
		dashboard: deps.Dashboard,
		limiter:   limiter,
	}
	s.setupRoutes()
	return s
}

// Router exposes the configured handler, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the HTTP server until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if s.limiter != nil {
		s.limiter.Close()
	}

	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/predict", s.handlePredict)
		v1.POST("/predict/all", s.handlePredictAll)

		v1.GET("/diseases", s.handleListDiseases)
		v1.GET("/diseases/:name/symptoms", s.handleDiseaseSymptoms)
		v1.POST("/diseases/:name/missing-symptoms", s.handleMissingSymptoms)

		v1.POST("/bayes/posterior", s.handlePosterior)
		v1.POST("/bayes/test", s.handleTestPosterior)
		v1.GET("/risk-level", s.handleRiskLevel)

		v1.GET("/history", s.handleHistory)

		v1.GET("/dashboard/stats", s.handleDashboardStats)
		v1.GET("/dashboard/activity", s.handleDashboardActivity)
		v1.GET("/dashboard/live", s.handleDashboardLive)
	}
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"diseases":  len(s.base.Diseases()),
	})
}

// corsMiddleware adds CORS headers to responses.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Correlation-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length, X-Correlation-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
