package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/lshigami/edulearn/config"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/rs/zerolog/log"
)

const (
	userIDKey   = "user_id"
	userRoleKey = "user_role"
)

// Claims are the JWT claims the API reads: the subject is the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	secret []byte
}

func NewAuthenticator(cfg *config.Config) *Authenticator {
	return &Authenticator{secret: []byte(cfg.Auth.JWTSecret)}
}

// RequireAuth rejects requests without a valid HS256 bearer token and stores
// the caller's id and role on the gin context.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		claims, err := a.Parse(tokenString)
		if err != nil {
			log.Warn().Err(err).Str("path", c.FullPath()).Msg("Rejected bearer token")
			abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Set(userRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := UserRole(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, "insufficient role")
	}
}

func (a *Authenticator) Parse(tokenString string) (*Claims, error) {
	if len(a.secret) == 0 {
		return nil, errors.New("JWT secret is not configured")
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

// Sign issues a token for userID. The API never hands tokens out itself;
// cmd/seed and tests use it.
func (a *Authenticator) Sign(userID, role string, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = userID
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: role, RegisteredClaims: claims})
	return token.SignedString(a.secret)
}

func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func UserRole(c *gin.Context) string {
	return c.GetString(userRoleKey)
}

// IsSelfOrAdmin reports whether the caller may read userID's records.
func IsSelfOrAdmin(c *gin.Context, userID string) bool {
	return UserID(c) == userID || UserRole(c) == model.RoleAdmin
}

func bearerToken(header string) (string, error) {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return "", errors.New("no token provided")
	}
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}
	return fields[1], nil
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Message: msg})
}
