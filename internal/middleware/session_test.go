package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wordbook/internal/session"
	"wordbook/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSessionRouter(m *session.Manager) *gin.Engine {
	return newSessionRouterWithLogger(m, zap.NewNop())
}

func newSessionRouterWithLogger(m *session.Manager, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(Session(m, logger))
	r.GET("/open", func(c *gin.Context) {
		if auth, ok := AuthFrom(c); ok {
			c.JSON(http.StatusOK, gin.H{"user_id": auth.UserID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": nil})
	})
	r.GET("/closed", RequireAuth(), func(c *gin.Context) {
		auth, _ := AuthFrom(c)
		c.JSON(http.StatusOK, gin.H{"email": auth.Email})
	})
	return r
}

func TestSession(t *testing.T) {
	m := session.NewManager(testutil.NewMemorySessionStore(), session.NewSigner("secret"), time.Hour)
	token, _, err := m.Start(context.Background(), 9, "a@b.c")
	require.NoError(t, err)

	tests := []struct {
		name         string
		path         string
		cookie       string
		expectedCode int
		expectedBody string
	}{
		{name: "anonymous open", path: "/open", expectedCode: http.StatusOK, expectedBody: `{"user_id":null}`},
		{name: "logged in open", path: "/open", cookie: token, expectedCode: http.StatusOK, expectedBody: `{"user_id":9}`},
		{name: "bad token open", path: "/open", cookie: "junk", expectedCode: http.StatusOK, expectedBody: `{"user_id":null}`},
		{name: "anonymous closed", path: "/closed", expectedCode: http.StatusUnauthorized, expectedBody: `{"error":"Not logged in"}`},
		{name: "logged in closed", path: "/closed", cookie: token, expectedCode: http.StatusOK, expectedBody: `{"email":"a@b.c"}`},
	}

	r := newSessionRouter(m)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestSession_Ended(t *testing.T) {
	m := session.NewManager(testutil.NewMemorySessionStore(), session.NewSigner("secret"), time.Hour)
	token, auth, err := m.Start(context.Background(), 9, "a@b.c")
	require.NoError(t, err)
	require.NoError(t, m.End(context.Background(), auth))

	req := httptest.NewRequest(http.MethodGet, "/closed", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	w := httptest.NewRecorder()

	newSessionRouter(m).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_ExpiredToken(t *testing.T) {
	signer := session.NewSigner("secret")
	m := session.NewManager(testutil.NewMemorySessionStore(), signer, time.Hour)
	_, auth, err := m.Start(context.Background(), 9, "a@b.c")
	require.NoError(t, err)

	stale, err := signer.Sign(auth.SessionID, 9, -time.Minute)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: stale})
	w := httptest.NewRecorder()

	newSessionRouterWithLogger(m, zap.New(core)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":null}`, w.Body.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
	assert.Equal(t, "Session token expired", logs.All()[0].Message)
}

func TestLogger(t *testing.T) {
	r := gin.New()
	r.Use(Logger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}
