package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextAccountIDKey = "auth_account_id"
	contextKindKey      = "auth_kind"
)

func SetAuthContext(c echo.Context, accountID uuid.UUID, kind string) {
	c.Set(contextAccountIDKey, accountID)
	c.Set(contextKindKey, kind)
}

func AccountIDFromContext(c echo.Context) (uuid.UUID, bool) {
	value := c.Get(contextAccountIDKey)
	accountID, ok := value.(uuid.UUID)
	return accountID, ok
}

func KindFromContext(c echo.Context) (string, bool) {
	value := c.Get(contextKindKey)
	kind, ok := value.(string)
	return kind, ok
}
