package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deoc136/eatsopinion-server/internal/middleware"
	"github.com/deoc136/eatsopinion-server/internal/repository"
)

// ToggleLikeRequest is the JSON payload for POST /toggle-like. The userid
// field is kept for older clients; a session identity overrides it.
type ToggleLikeRequest struct {
	RestaurantID int64 `json:"restaurantId" binding:"required"`
	UserID       int64 `json:"userid"`
}

type FavoriteHandler struct {
	Repo *repository.FavoriteRepository
}

func (h *FavoriteHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/toggle-like", h.Toggle)
}

// Toggle handles POST /toggle-like: removes the favorite when present,
// creates it otherwise.
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	var req ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := req.UserID
	if ident, ok := middleware.CurrentIdentity(c); ok {
		userID = ident.UserID
	}
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "a user is required to like a restaurant"})
		return
	}

	liked, err := h.Repo.Toggle(c.Request.Context(), userID, req.RestaurantID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Restaurant unliked"
	if liked {
		message = "Restaurant liked"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "liked": liked})
}
