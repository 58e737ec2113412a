package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/middleware"
	"github.com/gabevillegas628/dsap-backend/internal/repos"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

type CloneHandler struct {
	log          *logger.Logger
	cloneRepo    repos.CloneRepo
	progressRepo repos.CloneProgressRepo
}

func NewCloneHandler(log *logger.Logger, cloneRepo repos.CloneRepo, progressRepo repos.CloneProgressRepo) *CloneHandler {
	return &CloneHandler{
		log:          log.With("handler", "CloneHandler"),
		cloneRepo:    cloneRepo,
		progressRepo: progressRepo,
	}
}

// GET /api/clones
// The caller's assigned clones plus the shared practice set, with the
// caller's progress records alongside.
func (h *CloneHandler) ListMine(c *gin.Context) {
	userID := middleware.UserID(c)

	assigned, err := h.cloneRepo.ListAssignedTo(c.Request.Context(), nil, userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	practice, err := h.cloneRepo.ListPractice(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	progressRows, err := h.progressRepo.ListByStudent(c.Request.Context(), nil, userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assigned": assigned,
		"practice": practice,
		"progress": progressRows,
	})
}

// POST /api/clones   (staff)
func (h *CloneHandler) Create(c *gin.Context) {
	var body struct {
		CloneName  string `json:"clone_name" binding:"required"`
		Library    string `json:"library"`
		Sequence   string `json:"sequence"`
		IsPractice bool   `json:"is_practice"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.cloneRepo.Create(c.Request.Context(), nil, []*types.Clone{{
		CloneName:  body.CloneName,
		Library:    body.Library,
		Sequence:   body.Sequence,
		IsPractice: body.IsPractice,
	}})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"clone": rows[0]})
}

// PUT /api/clones/:cloneId/assign   (staff)
func (h *CloneHandler) Assign(c *gin.Context) {
	cloneID, err := uuid.Parse(c.Param("cloneId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clone id"})
		return
	}

	var body struct {
		StudentID *uuid.UUID `json:"student_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.cloneRepo.Assign(c.Request.Context(), nil, cloneID, body.StudentID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clone_id": cloneID, "student_id": body.StudentID})
}
