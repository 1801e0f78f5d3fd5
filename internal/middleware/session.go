package middleware

import (
	"errors"
	"net/http"

	"wordbook/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const authKey = "auth"

// Session resolves the session cookie and stores the auth context on the request.
// Requests without a valid session continue anonymously.
func Session(manager *session.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		auth, err := manager.Resolve(c.Request.Context(), token)
		if err != nil {
			switch {
			case session.IsExpired(err):
				logger.Debug("Session token expired", zap.String("path", c.Request.URL.Path))
			case !errors.Is(err, session.ErrNoSession):
				logger.Warn("Failed to load session", zap.Error(err))
			}
			c.Next()
			return
		}

		c.Set(authKey, auth)
		c.Next()
	}
}

// RequireAuth aborts with 401 when the request has no session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := AuthFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}
		c.Next()
	}
}

// AuthFrom returns the auth context set by Session
func AuthFrom(c *gin.Context) (*session.Auth, bool) {
	v, ok := c.Get(authKey)
	if !ok {
		return nil, false
	}
	auth, ok := v.(*session.Auth)
	return auth, ok
}
