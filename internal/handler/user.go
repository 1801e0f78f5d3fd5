package handler

import (
	"errors"
	"net/http"

	"wordbook/internal/domain"
	"wordbook/internal/middleware"
	"wordbook/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type updateUserRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	CurrentPassword string `json:"currentPassword"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, domain.Validation("invalid request body"))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, domain.Validation("invalid request body"))
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	token, _, err := h.sessions.Start(c.Request.Context(), user.ID, user.Email)
	if err != nil {
		h.logger.Error("Failed to start session", zap.Int64("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
		return
	}

	h.setSessionCookie(c, token, int(h.sessions.TTL().Seconds()))
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *Handler) currentUser(c *gin.Context) {
	auth, ok := middleware.AuthFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), auth.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *Handler) logout(c *gin.Context) {
	if auth, ok := middleware.AuthFrom(c); ok {
		if err := h.sessions.End(c.Request.Context(), auth); err != nil {
			h.logger.Warn("Failed to delete session", zap.Error(err))
		}
	}
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) updateUser(c *gin.Context) {
	auth, _ := middleware.AuthFrom(c)

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, domain.Validation("invalid request body"))
		return
	}

	user, err := h.userService.Update(c.Request.Context(), auth.UserID, domain.UpdateUserInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		CurrentPassword: req.CurrentPassword,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.sessions.SetEmail(c.Request.Context(), auth, user.Email); err != nil {
		h.logger.Warn("Failed to refresh session email", zap.Int64("user_id", user.ID), zap.Error(err))
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *Handler) deleteUser(c *gin.Context) {
	auth, _ := middleware.AuthFrom(c)

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, domain.Validation("invalid request body"))
		return
	}

	if err := h.userService.Delete(c.Request.Context(), auth.UserID, req.CurrentPassword); err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.sessions.End(c.Request.Context(), auth); err != nil {
		h.logger.Warn("Failed to delete session", zap.Error(err))
	}
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, value, maxAge, "/", "", h.secureCookie, true)
}
