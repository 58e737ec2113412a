package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/middleware"
	"github.com/gabevillegas628/dsap-backend/internal/sse"
)

type SSEHandler struct {
	log *logger.Logger
	hub *sse.SSEHub
}

func NewSSEHandler(log *logger.Logger, hub *sse.SSEHub) *SSEHandler {
	return &SSEHandler{
		log: log.With("handler", "SSEHandler"),
		hub: hub,
	}
}

// GET /sse/stream
// Every caller is subscribed to their own student channel; staff may also
// watch a clone's channel with ?clone_id=.
func (h *SSEHandler) Stream(c *gin.Context) {
	userID := middleware.UserID(c)
	client := h.hub.NewSSEClient(userID)
	h.hub.AddChannel(client, sse.StudentChannel(userID))

	if cloneParam := c.Query("clone_id"); cloneParam != "" {
		cloneID, err := uuid.Parse(cloneParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clone id"})
			return
		}
		if middleware.Role(c).IsStaff() {
			h.hub.AddChannel(client, sse.CloneChannel(cloneID))
		}
	}

	defer h.hub.CloseClient(client)
	h.hub.ServeHTTP(c.Writer, c.Request, client)
}
