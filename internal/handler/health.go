package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
)

// HealthHandler reports process liveness plus the state of the two things
// this service cannot live without: Redis and the upstream circuit.
type HealthHandler struct {
	rdb *redis.Client
	api *upstream.Client
}

func NewHealthHandler(rdb *redis.Client, api *upstream.Client) *HealthHandler {
	return &HealthHandler{rdb: rdb, api: api}
}

func (h *HealthHandler) Health(c *gin.Context) {
	redisStatus := "ok"
	if err := h.rdb.Ping(c.Request.Context()).Err(); err != nil {
		redisStatus = "down"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"redis":    redisStatus,
		"upstream": h.api.BreakerState().String(),
	})
}
