package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deoc136/eatsopinion-server/internal/middleware"
	"github.com/deoc136/eatsopinion-server/internal/model"
	"github.com/deoc136/eatsopinion-server/internal/service"
)

// LoginRequest is the JSON payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON payload for POST /register.
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    *string `json:"phone"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
}

type AuthHandler struct {
	auth      *service.AuthService
	cookieTTL int
}

func NewAuthHandler(auth *service.AuthService, cookieTTLSeconds int) *AuthHandler {
	return &AuthHandler{auth: auth, cookieTTL: cookieTTLSeconds}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/getUser", h.GetUser)
	r.POST("/register", h.Register)
}

// Login handles POST /login. Missing fields are a 400 before any store
// access; bad credentials are a 401 with no hint about which factor
// failed.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
		return
	}

	token, ident, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, h.cookieTTL, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": "Logged in successfully", "user": ident})
}

// Logout handles GET /logout. Always 200, even when no session existed.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		h.auth.Logout(c.Request.Context(), token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": "Logout successful"})
}

// GetUser handles GET /getUser: the current identity, or 401.
func (h *AuthHandler) GetUser(c *gin.Context) {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, ident)
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name, email and password are required"})
		return
	}

	user := &model.User{
		Username:  req.Name,
		UserEmail: req.Email,
		Phone:     req.Phone,
	}
	if err := h.auth.Register(c.Request.Context(), user, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": "New user " + req.Name + " created!"})
}
