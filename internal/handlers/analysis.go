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
	"github.com/gabevillegas628/dsap-backend/internal/types"
	"github.com/gabevillegas628/dsap-backend/internal/workflow"
)

// AnalysisHandler exposes one student's working session on one clone: the
// current snapshot, answer edits, save, and submit-for-review.
type AnalysisHandler struct {
	log        *logger.Logger
	sessionSvc services.SessionService
	policy     *status.Policy
}

func NewAnalysisHandler(log *logger.Logger, sessionSvc services.SessionService, policy *status.Policy) *AnalysisHandler {
	return &AnalysisHandler{
		log:        log.With("handler", "AnalysisHandler"),
		sessionSvc: sessionSvc,
		policy:     policy,
	}
}

func (h *AnalysisHandler) session(c *gin.Context) (*workflow.Session, bool) {
	cloneID, err := uuid.Parse(c.Param("cloneId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clone id"})
		return nil, false
	}
	kind := types.ProgressKindAssigned
	if c.Query("practice") == "true" {
		kind = types.ProgressKindPractice
	}
	sess, err := h.sessionSvc.GetOrCreate(c.Request.Context(), middleware.UserID(c), cloneID, kind)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return nil, false
	}
	return sess, true
}

// GET /api/clones/:cloneId/analysis
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	st := sess.Status()
	steps := make(map[string]int, len(types.StepOrder))
	for _, step := range types.StepOrder {
		steps[string(step)] = sess.StepProgress(step)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          st,
		"status_metadata": sess.StatusMetadata(),
		"can_edit":        h.policy.CanEdit(st),
		"read_only":       h.policy.IsReadOnly(st),
		"shows_feedback":  h.policy.ShowsFeedback(st),
		"current_step":    sess.CurrentStep(),
		"questions":       sess.Questions(),
		"help_topics":     sess.HelpTopics(),
		"answers":         sess.Answers(),
		"progress":        sess.OverallProgress(),
		"step_progress":   steps,
		"dirty":           sess.Dirty(),
		"last_saved":      sess.LastSaved(),
		"submitted_at":    sess.SubmittedAt(),
	})
}

// PUT /api/clones/:cloneId/answers
func (h *AnalysisHandler) SetAnswer(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var body struct {
		QuestionID string `json:"question_id" binding:"required"`
		Value      any    `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.SetAnswer(body.QuestionID, body.Value)
	c.JSON(http.StatusOK, gin.H{
		"dirty":    sess.Dirty(),
		"progress": sess.OverallProgress(),
	})
}

// PUT /api/clones/:cloneId/step
func (h *AnalysisHandler) SetStep(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var body struct {
		Step types.AnalysisStep `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.SetCurrentStep(body.Step)
	c.JSON(http.StatusOK, gin.H{"current_step": sess.CurrentStep()})
}

// POST /api/clones/:cloneId/save
func (h *AnalysisHandler) Save(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	if err := sess.Save(c.Request.Context()); err != nil {
		if errors.Is(err, workflow.ErrSaveInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		// Edits stay in memory with the dirty flag set; the client retries.
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "dirty": sess.Dirty()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"last_saved": sess.LastSaved(),
		"progress":   sess.OverallProgress(),
	})
}

// POST /api/clones/:cloneId/submit
func (h *AnalysisHandler) SubmitForReview(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	if err := sess.SubmitForReview(c.Request.Context()); err != nil {
		if errors.Is(err, workflow.ErrSaveInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "dirty": sess.Dirty()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          sess.Status(),
		"status_metadata": sess.StatusMetadata(),
		"submitted_at":    sess.SubmittedAt(),
	})
}

// GET /api/clones/:cloneId/feedback/:questionId
func (h *AnalysisHandler) QuestionFeedback(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	questionID, err := uuid.Parse(c.Param("questionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid question id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"comments":   sess.QuestionComments(questionID),
		"is_correct": sess.IsQuestionCorrect(questionID),
	})
}
