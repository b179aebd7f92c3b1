package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/lshigami/edulearn/config"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(auth *Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/", auth.RequireAuth())
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": UserID(c), "role": UserRole(c)})
	})
	protected.GET("/teach", RequireRole(model.RoleTeacher, model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	auth := NewAuthenticator(&config.Config{Auth: config.Auth{JWTSecret: "test-secret"}})
	router := newTestRouter(auth)

	valid, err := auth.Sign("user-1", model.RoleStudent, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})
	require.NoError(t, err)
	expired, err := auth.Sign("user-1", model.RoleStudent, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))})
	require.NoError(t, err)
	foreign, err := NewAuthenticator(&config.Config{Auth: config.Auth{JWTSecret: "other"}}).Sign("user-1", model.RoleAdmin, jwt.RegisteredClaims{})
	require.NoError(t, err)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: model.RoleAdmin}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"lowercase scheme", "bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"no subject", "Bearer " + noSubject, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"id":"user-1","role":"student"}`, w.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	auth := NewAuthenticator(&config.Config{Auth: config.Auth{JWTSecret: "test-secret"}})
	router := newTestRouter(auth)

	for role, want := range map[string]int{
		model.RoleStudent: http.StatusForbidden,
		model.RoleTeacher: http.StatusNoContent,
		model.RoleAdmin:   http.StatusNoContent,
	} {
		token, err := auth.Sign("u", role, jwt.RegisteredClaims{})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/teach", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, role)
	}
}

func TestParseWithoutSecret(t *testing.T) {
	signer := NewAuthenticator(&config.Config{Auth: config.Auth{JWTSecret: "s"}})
	token, err := signer.Sign("u", model.RoleStudent, jwt.RegisteredClaims{})
	require.NoError(t, err)

	_, err = NewAuthenticator(&config.Config{}).Parse(token)
	assert.Error(t, err)
}
