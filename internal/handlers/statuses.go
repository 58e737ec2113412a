package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabevillegas628/dsap-backend/internal/status"
)

// StatusHandler serves the status directory: every pipeline status with its
// display metadata, permission booleans, and legal next statuses. Feeds the
// staff dashboards.
type StatusHandler struct {
	policy *status.Policy
}

func NewStatusHandler(policy *status.Policy) *StatusHandler {
	return &StatusHandler{policy: policy}
}

// GET /api/statuses
func (h *StatusHandler) ListStatuses(c *gin.Context) {
	out := make([]gin.H, 0, len(status.All))
	for _, s := range status.All {
		out = append(out, gin.H{
			"status":         s,
			"metadata":       status.MetadataFor(s),
			"can_edit":       h.policy.CanEdit(s),
			"read_only":      h.policy.IsReadOnly(s),
			"shows_feedback": h.policy.ShowsFeedback(s),
			"legal_next":     status.LegalTransitions(s),
		})
	}
	c.JSON(http.StatusOK, gin.H{"statuses": out})
}
