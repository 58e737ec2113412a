package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/repos"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

type UserHandler struct {
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserHandler(log *logger.Logger, userRepo repos.UserRepo) *UserHandler {
	return &UserHandler{
		log:      log.With("handler", "UserHandler"),
		userRepo: userRepo,
	}
}

// GET /api/users?role=student   (staff)
// Roster for clone assignment and the review queue.
func (h *UserHandler) ListByRole(c *gin.Context) {
	role := types.UserRole(c.DefaultQuery("role", string(types.RoleStudent)))
	switch role {
	case types.RoleStudent, types.RoleInstructor, types.RoleDirector:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	users, err := h.userRepo.ListByRole(c.Request.Context(), nil, role)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
