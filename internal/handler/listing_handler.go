package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deoc136/eatsopinion-server/internal/middleware"
	"github.com/deoc136/eatsopinion-server/internal/service"
)

type ListingHandler struct {
	listings *service.ListingService
}

func NewListingHandler(listings *service.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

func (h *ListingHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/res", h.List)
}

// List handles GET /res?userid=&query=. The session identity wins over the
// userid query parameter, which is kept for older clients; with neither,
// browsing is anonymous and isFavorite is false everywhere. A malformed
// userid is treated as anonymous rather than failing the request.
func (h *ListingHandler) List(c *gin.Context) {
	var userID *int64
	if ident, ok := middleware.CurrentIdentity(c); ok {
		userID = &ident.UserID
	} else if raw := c.Query("userid"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			userID = &id
		}
	}

	listings, err := h.listings.List(c.Request.Context(), userID, c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}
