package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deoc136/eatsopinion-server/internal/config"
	"github.com/deoc136/eatsopinion-server/internal/db"
	"github.com/deoc136/eatsopinion-server/internal/handler"
	"github.com/deoc136/eatsopinion-server/internal/media"
	"github.com/deoc136/eatsopinion-server/internal/middleware"
	"github.com/deoc136/eatsopinion-server/internal/repository"
	"github.com/deoc136/eatsopinion-server/internal/service"
	"github.com/deoc136/eatsopinion-server/internal/session"
	"github.com/deoc136/eatsopinion-server/pkg/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("bad configuration", "error", err)
		os.Exit(1)
	}

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	restaurantRepo := repository.NewRestaurantRepository(pool)
	foodRepo := repository.NewFoodRepository(pool)
	surveyRepo := repository.NewSurveyRepository(pool)
	ratingRepo := repository.NewRatingRepository(pool)
	favoriteRepo := repository.NewFavoriteRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	listingRepo := repository.NewListingRepository(pool)

	tokens := session.NewTokenManager(cfg.SessionSecret)
	authSvc := service.NewAuthService(userRepo, sessionRepo, tokens, cfg.SessionTTL)
	listingSvc := service.NewListingService(listingRepo)
	ratingSvc := service.NewRatingService(ratingRepo)
	surveySvc := service.NewSurveyService(surveyRepo, foodRepo, restaurantRepo)

	r := gin.Default()
	r.Use(middleware.RequestLogger(), middleware.Metrics(), middleware.Identity(authSvc))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.NewAuthHandler(authSvc, int(cfg.SessionTTL.Seconds())).RegisterRoutes(r)
	handler.NewListingHandler(listingSvc).RegisterRoutes(r)
	handler.NewSurveyHandler(surveySvc, ratingSvc).RegisterRoutes(r)
	(&handler.RestaurantHandler{Repo: restaurantRepo}).RegisterRoutes(r)
	(&handler.FoodHandler{Repo: foodRepo, Restaurants: restaurantRepo}).RegisterRoutes(r)
	(&handler.FavoriteHandler{Repo: favoriteRepo}).RegisterRoutes(r)

	// Image endpoints only mount when MongoDB is configured; the rest of
	// the service does not depend on it.
	if cfg.MongoURI != "" {
		images, err := media.NewGridFSStore(context.Background(), cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			slog.Error("media storage setup failed", "error", err)
			os.Exit(1)
		}
		(&handler.PhotoHandler{Images: images, Restaurants: restaurantRepo}).RegisterRoutes(r)
	} else {
		slog.Warn("MONGO_URI not set, image endpoints disabled")
	}

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
