package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"notekeeper/internal/adapters/http/dto"
)

// ClockHandler serves the server-time endpoint.
type ClockHandler struct {
	started time.Time
	now     func() time.Time
}

// NewClockHandler creates a clock handler anchored at the process
// start time. The now function defaults to time.Now.
func NewClockHandler(started time.Time, now func() time.Time) *ClockHandler {
	if now == nil {
		now = time.Now
	}

	return &ClockHandler{started: started, now: now}
}

// ServerTime handles GET /api/time.
func (h *ClockHandler) ServerTime(c *gin.Context) {
	current := h.now()

	c.JSON(http.StatusOK, dto.TimeResponse{
		NowISO:        current.UTC().Format(time.RFC3339),
		UptimeSeconds: int64(current.Sub(h.started).Seconds()),
	})
}
