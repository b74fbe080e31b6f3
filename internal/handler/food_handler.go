package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deoc136/eatsopinion-server/internal/model"
	"github.com/deoc136/eatsopinion-server/internal/repository"
)

// CreateFoodRequest is the JSON payload for POST /foodadd. The price is a
// pointer so an explicit 0 (a free dish) still binds; only a missing or
// negative price is rejected.
type CreateFoodRequest struct {
	RestaurantID int64    `json:"restaurantid" binding:"required"`
	FoodName     string   `json:"foodName" binding:"required"`
	FoodType     *string  `json:"foodType"`
	FoodCategory *string  `json:"foodCategory"`
	FoodDesc     *string  `json:"foodDesc"`
	FoodPrice    *float64 `json:"foodPrice" binding:"required,min=0"`
}

// UpdateFoodRequest is the JSON payload for PUT /foodupdate/:id.
type UpdateFoodRequest struct {
	FoodName     string   `json:"foodName" binding:"required"`
	FoodType     *string  `json:"foodType"`
	FoodCategory *string  `json:"foodCategory"`
	FoodDesc     *string  `json:"foodDesc"`
	FoodPrice    *float64 `json:"foodPrice" binding:"required,min=0"`
}

type FoodHandler struct {
	Repo        *repository.FoodRepository
	Restaurants *repository.RestaurantRepository
}

func (h *FoodHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/foodadd", h.Create)
	r.PUT("/foodupdate/:id", h.Update)
	r.GET("/platos", h.ListNames)
	r.GET("/platos/:resid", h.ListByRestaurant)
	r.GET("/resfood/:id", h.ListRated)
}

// Create handles POST /foodadd.
func (h *FoodHandler) Create(c *gin.Context) {
	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := h.Restaurants.Exists(c.Request.Context(), req.RestaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}

	food := &model.Food{
		RestaurantID: req.RestaurantID,
		FoodName:     req.FoodName,
		FoodType:     req.FoodType,
		FoodCategory: req.FoodCategory,
		Price:        *req.FoodPrice,
		Description:  req.FoodDesc,
	}
	if err := h.Repo.Create(c.Request.Context(), food); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foodid": food.FoodID})
}

// Update handles PUT /foodupdate/:id, keyed by id.
func (h *FoodHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Repo.Update(c.Request.Context(), &model.Food{
		FoodID:       id,
		FoodName:     req.FoodName,
		FoodType:     req.FoodType,
		FoodCategory: req.FoodCategory,
		Price:        *req.FoodPrice,
		Description:  req.FoodDesc,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food updated"})
}

// ListNames handles GET /platos: every dish name in the catalog.
func (h *FoodHandler) ListNames(c *gin.Context) {
	names, err := h.Repo.ListNames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// ListByRestaurant handles GET /platos/:resid.
func (h *FoodHandler) ListByRestaurant(c *gin.Context) {
	resID, ok := pathID(c, "resid")
	if !ok {
		return
	}
	food, err := h.Repo.ListByRestaurant(c.Request.Context(), resID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// ListRated handles GET /resfood/:id: the menu with per-dish average
// ratings.
func (h *FoodHandler) ListRated(c *gin.Context) {
	resID, ok := pathID(c, "id")
	if !ok {
		return
	}
	rated, err := h.Repo.ListRated(c.Request.Context(), resID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rated)
}
