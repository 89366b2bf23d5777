package handler

import (
	"net/http"

	"campuseats/api/middleware"
	"campuseats/internal/dto"
	"campuseats/internal/entity"
	"campuseats/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RestaurantHandler exposes the restaurant-side surface: signup through
// approval, the self profile, menu management and order processing.
type RestaurantHandler struct {
	Restaurants *service.RestaurantService
	Menu        *service.MenuService
	Orders      *service.OrderService
	Validate    *validator.Validate
}

func NewRestaurantHandler(
	restaurants *service.RestaurantService,
	menu *service.MenuService,
	orders *service.OrderService,
	validate *validator.Validate,
) *RestaurantHandler {
	return &RestaurantHandler{
		Restaurants: restaurants,
		Menu:        menu,
		Orders:      orders,
		Validate:    validate,
	}
}

func (h *RestaurantHandler) Signup(c echo.Context) error {
	var req dto.RestaurantSignupRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	code, err := h.Restaurants.Signup(c.Request().Context(), service.RestaurantSignupInput{
		Email:              req.Email,
		Password:           req.Password,
		PhoneNo:            req.PhoneNo,
		OwnerName:          req.Name,
		RestaurantName:     req.RestaurantName,
		RestaurantLocation: req.RestaurantLocation,
		License:            req.License,
		TaxID:              req.TaxID,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.CodeResponse{Message: "verification code sent", Code: code})
}

func (h *RestaurantHandler) VerifyEmail(c echo.Context) error {
	var req dto.VerifyEmailRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	if err := h.Restaurants.Verify(c.Request().Context(), req.Email, req.Code); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CodeResponse{Message: "email verified"})
}

func (h *RestaurantHandler) ResendCode(c echo.Context) error {
	var req dto.ResendCodeRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	code, err := h.Restaurants.ResendCode(c.Request().Context(), req.Email)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CodeResponse{Message: "verification code sent", Code: code})
}

func (h *RestaurantHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	token, err := h.Restaurants.Login(c.Request().Context(), req.Email, req.Password, clientIP(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

func (h *RestaurantHandler) ForgotPassword(c echo.Context) error {
	var req dto.ForgotPasswordRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	code, err := h.Restaurants.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CodeResponse{Message: "password reset code sent", Code: code})
}

func (h *RestaurantHandler) ResetPassword(c echo.Context) error {
	var req dto.ResetPasswordRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, "missing_fields")
	}
	if err := h.Restaurants.ResetPassword(c.Request().Context(), req.Email, req.Code, req.NewPassword); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CodeResponse{Message: "password reset"})
}

func (h *RestaurantHandler) Me(c echo.Context) error {
	restaurantID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized")
	}
	restaurant, err := h.Restaurants.Get(c.Request().Context(), restaurantID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) AddMenuItem(c echo.Context) error {
	restaurantID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized")
	}
	var req dto.AddMenuItemRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	item, err := h.Menu.AddItem(c.Request().Context(), restaurantID, service.AddMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *RestaurantHandler) ListOrders(c echo.Context) error {
	restaurantID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized")
	}
	orders, err := h.Orders.ListByRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *RestaurantHandler) UpdateOrderStatus(c echo.Context) error {
	restaurantID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized")
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_order_id")
	}
	var req dto.UpdateOrderStatusRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}
	order, _, err := h.Orders.UpdateOrderStatus(c.Request().Context(), restaurantID, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *RestaurantHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
