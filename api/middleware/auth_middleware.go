package middleware

import (
	"net/http"
	"strings"

	"campuseats/internal/utils"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates route groups on a bearer session token and its
// account kind. A valid token of the wrong kind is forbidden, not
// unauthorized.
type AuthMiddleware struct {
	JWT *utils.TokenManager
}

func (m AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireKind(utils.KindUser, next)
}

func (m AuthMiddleware) RequireRestaurant(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireKind(utils.KindRestaurant, next)
}

func (m AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireKind(utils.KindAdmin, next)
}

func (m AuthMiddleware) requireKind(kind string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.JWT == nil {
			return authError(c, http.StatusUnauthorized, "invalid_token")
		}
		token := extractBearerToken(c.Request())
		if token == "" {
			return authError(c, http.StatusUnauthorized, "missing_token")
		}
		claims, err := m.JWT.Parse(token)
		if err != nil {
			return authError(c, http.StatusUnauthorized, "invalid_token")
		}
		accountID, err := claims.AccountID()
		if err != nil {
			return authError(c, http.StatusUnauthorized, "invalid_token")
		}
		if claims.Kind != kind {
			return authError(c, http.StatusForbidden, "forbidden")
		}
		SetAuthContext(c, accountID, claims.Kind)
		return next(c)
	}
}

func authError(c echo.Context, status int, code string) error {
	return c.JSON(status, map[string]string{"error": code})
}

func extractBearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
