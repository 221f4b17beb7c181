package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arnavshah/vacancy-bidding-api/pkg/audit"
	"github.com/arnavshah/vacancy-bidding-api/pkg/auth"
	"github.com/arnavshah/vacancy-bidding-api/pkg/bidding"
	"github.com/arnavshah/vacancy-bidding-api/pkg/models"
)

// Version is reported by the index route
const Version = "3.0.0"

// Handler contains dependencies for the route handlers
type Handler struct {
	DB       *gorm.DB
	Tokens   *auth.Tokens
	Audit    *audit.Logger
	Settings models.Settings
	Log      *zap.Logger
	NewID    bidding.IDGenerator
}

// Register mounts every route on r
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Vacancy Bidding API",
			"version": Version,
		})
	})
	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/admin/login", h.Login)

	api := r.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		api.POST("/recommend", h.Recommend)
		api.POST("/ranges/deadline", h.Deadline)
		api.POST("/ranges/coverage", h.Coverage)
		api.POST("/bids/warnings", h.Warnings)
		api.POST("/bids/bulk", h.BulkApply)
		api.POST("/bundles/attach", h.AttachBundle)
		api.POST("/vacancies/offering", h.ChangeOffering)
		api.GET("/audit", h.ListAudit)
		api.DELETE("/audit", h.ClearAudit)
		api.POST("/validate", h.ValidateInput)
	}
}

// AuthMiddleware verifies the JWT token and stores the username as the actor
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}
		token = strings.TrimPrefix(token, "Bearer ")

		claims, err := h.Tokens.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

func actor(c *gin.Context) string {
	return c.GetString("username")
}

// Health reports whether the database answers
func (h *Handler) Health(c *gin.Context) {
	if h.DB != nil {
		sqlDB, err := h.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Login handles admin login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Login is not available"})
		return
	}

	user, err := auth.Login(h.DB, req.Username, req.Password)
	if err != nil {
		h.Log.Info("login rejected", zap.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.Tokens.CreateToken(user.Username)
	if err != nil {
		h.Log.Error("token creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}
