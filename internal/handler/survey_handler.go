package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deoc136/eatsopinion-server/internal/middleware"
	"github.com/deoc136/eatsopinion-server/internal/model"
	"github.com/deoc136/eatsopinion-server/internal/service"
)

// DishRating is one per-dish rating inside a survey submission. Field
// names follow the original web client.
type DishRating struct {
	IDPlato      int64   `json:"idPlato" binding:"required"`
	RatePlato    int     `json:"ratePlato" binding:"required,min=1,max=5"`
	CommentPlato *string `json:"commentPlato"`
}

// SubmitSurveyRequest is the JSON payload for POST /surveyAdd. Either
// restaurantid or the legacy id field names the restaurant.
type SubmitSurveyRequest struct {
	RestaurantID       int64        `json:"restaurantid"`
	LegacyID           int64        `json:"id"`
	FoodRating         *int         `json:"foodRating"`
	FoodComment        *string      `json:"foodComment"`
	ServiceRating      *int         `json:"serviceRating"`
	ServiceComment     *string      `json:"serviceComment"`
	EnvironmentRating  *int         `json:"environmentRating"`
	EnvironmentComment *string      `json:"environmentComment"`
	PlatoRateData      []DishRating `json:"platoRateData"`
}

func (r *SubmitSurveyRequest) restaurantID() int64 {
	if r.RestaurantID != 0 {
		return r.RestaurantID
	}
	return r.LegacyID
}

type SurveyHandler struct {
	surveys *service.SurveyService
	ratings *service.RatingService
}

func NewSurveyHandler(surveys *service.SurveyService, ratings *service.RatingService) *SurveyHandler {
	return &SurveyHandler{surveys: surveys, ratings: ratings}
}

func (h *SurveyHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/surveyAdd", h.Submit)
	r.GET("/ressurvey/:id", h.ListByRestaurant)
	r.GET("/resavg/:id", h.Summary)
	r.GET("/reporte/:resid", h.DailyReport)
	r.GET("/foodreport/:resid", h.FoodReport)
}

// Submit handles POST /surveyAdd. The survey row and all its dish ratings
// commit atomically; the created survey row is echoed back.
func (h *SurveyHandler) Submit(c *gin.Context) {
	var req SubmitSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.restaurantID() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurantid is required"})
		return
	}

	survey := &model.Survey{
		RestaurantID:       req.restaurantID(),
		RatingFood:         req.FoodRating,
		RatingService:      req.ServiceRating,
		RatingEnvironment:  req.EnvironmentRating,
		FoodComment:        req.FoodComment,
		ServiceComment:     req.ServiceComment,
		EnvironmentComment: req.EnvironmentComment,
	}
	if ident, ok := middleware.CurrentIdentity(c); ok {
		survey.UserID = &ident.UserID
	}

	ratings := make([]model.FoodRating, 0, len(req.PlatoRateData))
	for _, dish := range req.PlatoRateData {
		ratings = append(ratings, model.FoodRating{
			FoodID:      dish.IDPlato,
			FoodRating:  dish.RatePlato,
			FoodComment: dish.CommentPlato,
		})
	}

	if err := h.surveys.Submit(c.Request.Context(), survey, ratings); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, survey)
}

// ListByRestaurant handles GET /ressurvey/:id, newest first.
func (h *SurveyHandler) ListByRestaurant(c *gin.Context) {
	resID, ok := pathID(c, "id")
	if !ok {
		return
	}
	surveys, err := h.surveys.ListByRestaurant(c.Request.Context(), resID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, surveys)
}

// Summary handles GET /resavg/:id?startDate=&endDate=.
func (h *SurveyHandler) Summary(c *gin.Context) {
	resID, ok := pathID(c, "id")
	if !ok {
		return
	}
	summary, err := h.ratings.Summary(c.Request.Context(), resID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DailyReport handles GET /reporte/:resid?startDate=&endDate=.
func (h *SurveyHandler) DailyReport(c *gin.Context) {
	resID, ok := pathID(c, "resid")
	if !ok {
		return
	}
	report, err := h.ratings.Daily(c.Request.Context(), resID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// FoodReport handles GET /foodreport/:resid?startDate=&endDate=. Both
// bounds together or neither; a single bound is a 400.
func (h *SurveyHandler) FoodReport(c *gin.Context) {
	resID, ok := pathID(c, "resid")
	if !ok {
		return
	}
	report, err := h.ratings.PerFood(c.Request.Context(), resID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
