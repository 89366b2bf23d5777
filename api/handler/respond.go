package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"campuseats/internal/service"

	"github.com/labstack/echo/v4"
)

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, code string) error {
	return c.JSON(status, map[string]string{"error": code})
}

// writeServiceError maps service sentinels onto HTTP statuses. Sentinel
// messages are the wire codes, so the error serializes as-is; anything
// unrecognized is reported as a generic internal error.
func writeServiceError(c echo.Context, err error) error {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrNoPendingVerification),
		errors.Is(err, service.ErrCodeExpired),
		errors.Is(err, service.ErrInvalidCode),
		errors.Is(err, service.ErrAlreadyVerified),
		errors.Is(err, service.ErrInvalidReset),
		errors.Is(err, service.ErrMissingRestaurantID),
		errors.Is(err, service.ErrMissingItems),
		errors.Is(err, service.ErrInvalidPaymentType),
		errors.Is(err, service.ErrInvalidItem),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrItemNotOnMenu),
		errors.Is(err, service.ErrInvalidTip),
		errors.Is(err, service.ErrMissingOrderID),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidPoints),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrMFANotEnabled):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrInvalidMFAToken),
		errors.Is(err, service.ErrInvalidMFACode):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailNotVerified),
		errors.Is(err, service.ErrRestaurantRejected),
		errors.Is(err, service.ErrRestaurantPending),
		errors.Is(err, service.ErrRestaurantUnavailable),
		errors.Is(err, service.ErrMenuNotAllowed):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrEmailInUse):
		status = http.StatusConflict
	case errors.Is(err, service.ErrResendTooSoon):
		status = http.StatusTooManyRequests
	case errors.Is(err, service.ErrDeliveryFailed):
		status = http.StatusInternalServerError
	default:
		return writeError(c, http.StatusInternalServerError, "internal_error")
	}
	return writeError(c, status, err.Error())
}

func clientIP(c echo.Context) *string {
	ip := c.RealIP()
	if ip == "" {
		return nil
	}
	return &ip
}
