package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deoc136/eatsopinion-server/internal/model"
	"github.com/deoc136/eatsopinion-server/internal/repository"
)

// CreateRestaurantRequest is the JSON payload for POST /resadd. Field
// names follow the original web client.
type CreateRestaurantRequest struct {
	RestaurantName string  `json:"restaurantname" binding:"required"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	Scheduler      *string `json:"scheduler"`
	City           *string `json:"city"`
	Webpage        *string `json:"webpage"`
	ShortDesc      *string `json:"short_desc"`
	NIT            *string `json:"nit"`
	Menu           *string `json:"menu"`
	LogoName       *string `json:"logoname"`
	UserID         *int64  `json:"id"`
	PetFriendly    bool    `json:"pet_friendly"`
}

// UpdateRestaurantRequest is the JSON payload for PUT /resupdate/:id.
type UpdateRestaurantRequest struct {
	RestaurantName string  `json:"restaurantname" binding:"required"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	Scheduler      *string `json:"scheduler"`
	City           *string `json:"city"`
	Webpage        *string `json:"webpage"`
	ShortDesc      *string `json:"short_desc"`
	PetFriendly    bool    `json:"pet_friendly"`
}

type RestaurantHandler struct {
	Repo *repository.RestaurantRepository
}

func (h *RestaurantHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/resadd", h.Create)
	r.GET("/res/:id", h.GetByID)
	r.PUT("/resupdate/:id", h.Update)
	r.DELETE("/res/:id", h.Delete)
}

// Create handles POST /resadd and answers with the new id.
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := &model.Restaurant{
		RestaurantName: req.RestaurantName,
		Address:        req.Address,
		Phone:          req.Phone,
		Scheduler:      req.Scheduler,
		City:           req.City,
		Webpage:        req.Webpage,
		ShortDesc:      req.ShortDesc,
		NIT:            req.NIT,
		Menu:           req.Menu,
		Logo:           req.LogoName,
		UserID:         req.UserID,
		PetFriendly:    req.PetFriendly,
	}
	if err := h.Repo.Create(c.Request.Context(), res); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurantId": res.RestaurantID})
}

// GetByID handles GET /res/:id.
func (h *RestaurantHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Update handles PUT /resupdate/:id and answers with the updated row.
// Mutations are keyed by id; the original name-keyed update is gone.
func (h *RestaurantHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Repo.Update(c.Request.Context(), &model.Restaurant{
		RestaurantID:   id,
		RestaurantName: req.RestaurantName,
		Address:        req.Address,
		Phone:          req.Phone,
		Scheduler:      req.Scheduler,
		City:           req.City,
		Webpage:        req.Webpage,
		ShortDesc:      req.ShortDesc,
		PetFriendly:    req.PetFriendly,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /res/:id.
func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}
