// Package handler exposes the word book over a JSON REST API.
package handler

import (
	"net/http"
	"strconv"

	"wordbook/internal/domain"
	"wordbook/internal/middleware"
	"wordbook/internal/service"
	"wordbook/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the /api routes
type Handler struct {
	userService  *service.UserService
	wordService  *service.WordService
	statsService *service.StatsService
	sessions     *session.Manager
	logger       *zap.Logger
	secureCookie bool
}

// NewHandler creates a new handler instance
func NewHandler(
	userService *service.UserService,
	wordService *service.WordService,
	statsService *service.StatsService,
	sessions *session.Manager,
	logger *zap.Logger,
	secureCookie bool,
) *Handler {
	return &Handler{
		userService:  userService,
		wordService:  wordService,
		statsService: statsService,
		sessions:     sessions,
		logger:       logger,
		secureCookie: secureCookie,
	}
}

// RegisterRoutes mounts the API on r
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")
	api.Use(middleware.Session(h.sessions, h.logger))

	users := api.Group("/users")
	users.POST("/register", h.register)
	users.POST("/login", h.login)
	users.GET("/login", h.currentUser)
	users.POST("/logout", h.logout)
	users.PUT("/update", middleware.RequireAuth(), h.updateUser)
	users.DELETE("/delete", middleware.RequireAuth(), h.deleteUser)

	words := api.Group("/words")
	words.POST("", middleware.RequireAuth(), h.addWord)
	words.POST("/force", middleware.RequireAuth(), h.forceAddWord)
	words.GET("", h.listWords)
	words.GET("/search", h.searchWords)
	words.GET("/sorted", h.sortedWords)
	words.GET("/filter", h.filterWords)
	words.GET("/statistics", h.statistics)
	words.GET("/chart-data", h.chartData)
	words.GET("/:id", h.getWord)
	words.PUT("/:id", h.updateWord)
	words.DELETE("/:id", h.deleteWord)
}

// sessionScope limits queries to the logged-in user, or spans all words
func sessionScope(c *gin.Context) domain.Scope {
	if auth, ok := middleware.AuthFrom(c); ok {
		return domain.ForUser(auth.UserID)
	}
	return domain.AllUsers()
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Validation("invalid word id")
	}
	return id, nil
}

// writeError maps domain error kinds to HTTP status codes
func (h *Handler) writeError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindDuplicateEmail, domain.KindLookupFailed:
		status = http.StatusBadRequest
	case domain.KindUnauthorized:
		status = http.StatusUnauthorized
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"exists": true, "message": err.Error()})
		return
	default:
		h.logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
