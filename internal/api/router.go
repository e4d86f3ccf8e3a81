package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"TradingAdvisor/internal/advisor"
	"TradingAdvisor/internal/model"
)

// NewRouter builds the HTTP router for the analysis API.
func NewRouter(svc *advisor.Service, defaultPeriod model.Period, corsOrigin string) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), requestLogger(), gin.Recovery())
	if corsOrigin != "" {
		router.Use(cors(corsOrigin))
	}

	h := NewHandlers(svc, defaultPeriod)

	router.GET("/", h.HandleRoot)
	api := router.Group("/api")
	{
		api.GET("/health", h.HandleHealth)
		api.GET("/analyze/:symbol", h.HandleAnalyze)
	}

	return router
}

// requestID tags every request so log lines can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request handled")
	}
}

func cors(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
