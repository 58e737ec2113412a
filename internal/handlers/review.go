package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/middleware"
	"github.com/gabevillegas628/dsap-backend/internal/services"
	"github.com/gabevillegas628/dsap-backend/internal/status"
)

type ReviewHandler struct {
	log       *logger.Logger
	reviewSvc services.ReviewService
}

func NewReviewHandler(log *logger.Logger, reviewSvc services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		log:       log.With("handler", "ReviewHandler"),
		reviewSvc: reviewSvc,
	}
}

// GET /api/review/waiting
func (h *ReviewHandler) ListWaiting(c *gin.Context) {
	rows, err := h.reviewSvc.ListWaiting(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": rows})
}

// GET /api/review/:progressId
func (h *ReviewHandler) GetSubmission(c *gin.Context) {
	progressID, err := uuid.Parse(c.Param("progressId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress id"})
		return
	}
	rec, err := h.reviewSvc.GetSubmission(c.Request.Context(), progressID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"submission": rec})
}

// POST /api/review/:progressId/comments
func (h *ReviewHandler) AddComments(c *gin.Context) {
	progressID, err := uuid.Parse(c.Param("progressId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress id"})
		return
	}

	var body struct {
		Comments []services.NewComment `json:"comments" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.reviewSvc.AddComments(c.Request.Context(), progressID, middleware.UserID(c), body.Comments)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comments": created})
}

// PUT /api/review/:progressId/comments/visibility
func (h *ReviewHandler) SetCommentVisibility(c *gin.Context) {
	progressID, err := uuid.Parse(c.Param("progressId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress id"})
		return
	}

	var body struct {
		CommentIDs []uuid.UUID `json:"comment_ids" binding:"required"`
		Visible    bool        `json:"visible"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.reviewSvc.SetCommentVisibility(c.Request.Context(), progressID, body.CommentIDs, body.Visible); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment_ids": body.CommentIDs, "visible": body.Visible})
}

// PUT /api/review/:progressId/status
func (h *ReviewHandler) UpdateStatus(c *gin.Context) {
	progressID, err := uuid.Parse(c.Param("progressId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress id"})
		return
	}

	var body struct {
		Status status.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.reviewSvc.UpdateStatus(c.Request.Context(), progressID, body.Status)
	var illegal *status.IllegalTransitionError
	if errors.As(err, &illegal) {
		c.JSON(http.StatusConflict, gin.H{
			"error": illegal.Error(),
			"from":  illegal.From,
			"to":    illegal.To,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": body.Status})
}
