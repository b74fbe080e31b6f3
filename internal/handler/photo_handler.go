package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deoc136/eatsopinion-server/internal/media"
	"github.com/deoc136/eatsopinion-server/internal/repository"
)

// PhotoHandler bridges restaurant logo images to the image-upload
// collaborator. Only the boundary lives here: bytes in, opaque reference
// stored on the restaurant row, bytes back out.
type PhotoHandler struct {
	Images      media.ImageStore
	Restaurants *repository.RestaurantRepository
}

func (h *PhotoHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/upload", h.Upload)
	r.GET("/restaurant-images/:id", h.Download)
}

// Upload handles POST /upload: multipart "image" file plus a restaurantid
// form field. The stored reference is saved as the restaurant's logo.
func (h *PhotoHandler) Upload(c *gin.Context) {
	var form struct {
		RestaurantID int64 `form:"restaurantid" binding:"required"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurantid is required"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot open file"})
		return
	}
	defer file.Close()

	name := fmt.Sprintf("restaurant_%d_%s", form.RestaurantID, fileHeader.Filename)
	ref, err := h.Images.Upload(c.Request.Context(), name, file)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Restaurants.UpdateLogo(c.Request.Context(), form.RestaurantID, ref); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": fmt.Sprintf("/restaurant-images/%d", form.RestaurantID), "ref": ref})
}

// Download handles GET /restaurant-images/:id: resolves the restaurant's
// logo reference back to bytes.
func (h *PhotoHandler) Download(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := h.Restaurants.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if res.Logo == nil || *res.Logo == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no image for this restaurant"})
		return
	}
	data, err := h.Images.Download(c.Request.Context(), *res.Logo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/jpeg", data)
}
