package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"TradingAdvisor/internal/advisor"
	"TradingAdvisor/internal/collector"
	"TradingAdvisor/internal/model"
)

// Version is the API version reported by the root and health endpoints.
const Version = "1.0.0"

// Handlers contains the HTTP handlers for the analysis API.
type Handlers struct {
	svc           *advisor.Service
	defaultPeriod model.Period
}

// NewHandlers creates handlers for the given analysis service.
func NewHandlers(svc *advisor.Service, defaultPeriod model.Period) *Handlers {
	return &Handlers{svc: svc, defaultPeriod: defaultPeriod}
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleRoot handles GET /.
func (h *Handlers) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Trading Advisor API",
		"version": Version,
		"status":  "running",
	})
}

// HandleHealth handles GET /api/health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": Version,
	})
}

// HandleAnalyze handles GET /api/analyze/:symbol?period=6mo.
func (h *Handlers) HandleAnalyze(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "symbol is required"})
		return
	}

	period := h.defaultPeriod
	if raw := c.Query("period"); raw != "" {
		parsed, err := model.ParsePeriod(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		period = parsed
	}

	analysis, err := h.svc.Analyze(c.Request.Context(), symbol, period)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, analysis)
	case errors.Is(err, collector.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "could not fetch data for " + symbol})
	case errors.Is(err, model.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"symbol":     symbol,
		}).Error("analysis failed")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "analysis failed"})
	}
}
