package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/middleware"
	"github.com/gabevillegas628/dsap-backend/internal/services"
)

type DiscussionHandler struct {
	log           *logger.Logger
	discussionSvc services.DiscussionService
}

func NewDiscussionHandler(log *logger.Logger, discussionSvc services.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{
		log:           log.With("handler", "DiscussionHandler"),
		discussionSvc: discussionSvc,
	}
}

// GET /api/clones/:cloneId/messages
func (h *DiscussionHandler) ListMessages(c *gin.Context) {
	cloneID, err := uuid.Parse(c.Param("cloneId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clone id"})
		return
	}
	msgs, err := h.discussionSvc.ListMessages(c.Request.Context(), cloneID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// POST /api/clones/:cloneId/messages
func (h *DiscussionHandler) PostMessage(c *gin.Context) {
	cloneID, err := uuid.Parse(c.Param("cloneId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clone id"})
		return
	}

	var body struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.discussionSvc.PostMessage(c.Request.Context(), cloneID, middleware.UserID(c), body.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}
