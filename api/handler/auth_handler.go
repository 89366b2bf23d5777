package handler

import (
	"net/http"

	"campuseats/api/middleware"
	"campuseats/internal/dto"
	"campuseats/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AuthHandler exposes the end-user surface: signup and verification,
// login, password reset and the profile endpoints.
type AuthHandler struct {
	Users    *service.UserService
	Validate *validator.Validate
}

func NewAuthHandler(users *service.UserService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{Users: users, Validate: validate}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	code, err := h.Users.Signup(c.Request().Context(), service.UserSignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		PhoneNo:   req.PhoneNo,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.CodeResponse{Message: "verification code sent", Code: code})
}

func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req dto.VerifyEmailRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	if err := h.Users.Verify(c.Request().Context(), req.Email, req.Code); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CodeResponse{Message: "email verified"})
}

func (h *AuthHandler) ResendCode(c echo.Context) error {
	var req dto.ResendCodeRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	code, err := h.Users.ResendCode(c.Request().Context(), req.Email)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CodeResponse{Message: "verification code sent", Code: code})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	token, err := h.Users.Login(c.Request().Context(), req.Email, req.Password, clientIP(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req dto.ForgotPasswordRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	code, err := h.Users.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CodeResponse{Message: "password reset code sent", Code: code})
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req dto.ResetPasswordRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	if err := h.Users.ResetPassword(c.Request().Context(), req.Email, req.Code, req.NewPassword); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CodeResponse{Message: "password reset"})
}

func (h *AuthHandler) Profile(c echo.Context) error {
	userID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized")
	}
	user, err := h.Users.Profile(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized")
	}
	var req dto.UpdateProfileRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	user, err := h.Users.UpdateProfile(c.Request().Context(), userID, service.UserProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		PhoneNo:   req.PhoneNo,
		CWID:      req.CWID,
		Location:  req.Location,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) AddMealPoints(c echo.Context) error {
	userID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized")
	}
	var req dto.MealPointsRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	balance, err := h.Users.AddMealPoints(c.Request().Context(), userID, req.Points)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MealPointsResponse{MealPoints: balance})
}

func (h *AuthHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
