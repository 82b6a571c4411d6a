package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type contextKey string

const UserKey contextKey = "user"

type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

type Config struct {
	// SigningKey verifies HS256 bearer tokens.
	SigningKey []byte
}

// Middleware rejects any request without a valid bearer token before it can
// reach a handler. The check is binary: a valid token authenticates, roles
// and permissions are never inspected.
func Middleware(cfg Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				return cfg.SigningKey, nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			identity := claims.Username
			if identity == "" {
				identity = claims.Subject
			}

			ctx := context.WithValue(c.Request().Context(), UserKey, identity)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// UserFromContext returns the authenticated identity, or "" when the request
// did not pass through the middleware.
func UserFromContext(ctx context.Context) string {
	user, _ := ctx.Value(UserKey).(string)
	return user
}
