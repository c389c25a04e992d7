package handlers

import (
	"net/http"

	"profit_leak/leakdetector/internal/analysis"
	"profit_leak/leakdetector/internal/auth"
	"profit_leak/leakdetector/internal/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NewRouter(
	engine *analysis.Engine,
	clients *auth.ClientRegistry,
	tokens *auth.TokenManager,
	metrics *monitoring.MetricsCollector,
	logger *logrus.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if metrics != nil {
		r.Use(metrics.MetricsMiddleware())
		r.GET("/metrics", metrics.MetricsHandler())
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- PUBLIC ROUTES ---
	authHandler := NewAuthHandler(clients, tokens, logger)
	r.POST("/api/auth/login", authHandler.Login)
	r.POST("/api/auth/refresh", authHandler.Refresh)

	// --- PROTECTED ROUTES (Require Login) ---
	analysisHandler := NewAnalysisHandler(engine, logger)
	protected := r.Group("/api", auth.AccessMiddleware(tokens))
	protected.POST("/analyze", analysisHandler.Analyze)
	protected.POST("/scenario", analysisHandler.Scenario)
	protected.GET("/thresholds", analysisHandler.Thresholds)

	return r
}
