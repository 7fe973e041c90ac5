package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trait-match/internal/worker"
)

// MatchingRunner ejecuta una corrida completa de matching.
type MatchingRunner interface {
	Run(ctx context.Context, matchingID string, teamSize int) error
}

// MatchingHandler mantiene dependencias para el endpoint de disparo de
// matching.
type MatchingHandler struct {
	logger  *zap.Logger
	pool    *worker.Pool
	matcher MatchingRunner
}

// NewMatchingHandler crea una instancia de MatchingHandler.
func NewMatchingHandler(logger *zap.Logger, pool *worker.Pool, matcher MatchingRunner) *MatchingHandler {
	return &MatchingHandler{
		logger:  logger,
		pool:    pool,
		matcher: matcher,
	}
}

// StartMatching maneja POST /matching/start. Encola la corrida y responde 202
// de inmediato; el resultado se entrega de forma asincronica por el event sink.
func (h *MatchingHandler) StartMatching(c *gin.Context) {
	var req struct {
		TeamSize int `json:"teamSize" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid start matching request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	matchingID, ok := GetMatchingID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	teamSize := req.TeamSize
	job := func(ctx context.Context) {
		if err := h.matcher.Run(ctx, matchingID, teamSize); err != nil {
			h.logger.Error("matching run failed",
				zap.String("matching_id", matchingID),
				zap.Error(err),
			)
		}
	}

	if err := h.pool.Submit(job); err != nil {
		if errors.Is(err, worker.ErrQueueFull) {
			h.logger.Warn("matching queue saturated", zap.String("matching_id", matchingID))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "too many pending runs"})
			return
		}
		h.logger.Error("submit matching run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start matching"})
		return
	}

	c.Status(http.StatusAccepted)
}
