package handler

import (
	"context"
	"net/http"

	"campuseats/api/middleware"
	"campuseats/internal/dto"
	"campuseats/internal/entity"
	"campuseats/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminHandler exposes the administrator surface: login (with the optional
// TOTP step), MFA management and the restaurant approval workflow.
type AdminHandler struct {
	Admins   *service.AdminService
	Validate *validator.Validate
}

func NewAdminHandler(admins *service.AdminService, validate *validator.Validate) *AdminHandler {
	return &AdminHandler{Admins: admins, Validate: validate}
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	result, err := h.Admins.Login(c.Request().Context(), req.Email, req.Password, clientIP(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AdminLoginResponse{
		Token:       result.Token,
		MFARequired: result.MFARequired,
		MFAToken:    result.MFAToken,
	})
}

func (h *AdminHandler) LoginMFA(c echo.Context) error {
	var req dto.MFALoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	result, err := h.Admins.LoginMFA(c.Request().Context(), req.MFAToken, req.Code, clientIP(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AdminLoginResponse{Token: result.Token})
}

func (h *AdminHandler) EnableMFA(c echo.Context) error {
	adminID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized")
	}
	otpauthURL, err := h.Admins.EnableMFA(c.Request().Context(), adminID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MFAEnableResponse{OTPAuthURL: otpauthURL})
}

func (h *AdminHandler) VerifyMFA(c echo.Context) error {
	adminID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized")
	}
	var req dto.MFAVerifyRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	if err := h.Admins.VerifyMFA(c.Request().Context(), adminID, req.Code); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CodeResponse{Message: "mfa enabled"})
}

func (h *AdminHandler) DisableMFA(c echo.Context) error {
	adminID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized")
	}
	if err := h.Admins.DisableMFA(c.Request().Context(), adminID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CodeResponse{Message: "mfa disabled"})
}

func (h *AdminHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.Admins.ListRestaurants(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, restaurants)
}

func (h *AdminHandler) ApproveRestaurant(c echo.Context) error {
	return h.setApproval(c, h.Admins.ApproveRestaurant)
}

func (h *AdminHandler) RejectRestaurant(c echo.Context) error {
	return h.setApproval(c, h.Admins.RejectRestaurant)
}

func (h *AdminHandler) setApproval(
	c echo.Context,
	apply func(ctx context.Context, adminID, restaurantID uuid.UUID) (*entity.Restaurant, error),
) error {
	adminID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized")
	}
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_restaurant_id")
	}
	restaurant, err := apply(c.Request().Context(), adminID, restaurantID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, restaurant)
}

func (h *AdminHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
