package service

import "errors"

// Sentinel errors use their wire codes as messages; handlers serialize them
// directly into the {"error": code} response body.
var (
	ErrMissingFields = errors.New("missing_fields")
	ErrWeakPassword  = errors.New("weak_password")
	ErrEmailInUse    = errors.New("email_in_use")
	ErrNotFound      = errors.New("not_found")

	ErrDeliveryFailed        = errors.New("email_send_failed")
	ErrNoPendingVerification = errors.New("no_pending_verification")
	ErrCodeExpired           = errors.New("code_expired")
	ErrInvalidCode           = errors.New("invalid_code")
	ErrAlreadyVerified       = errors.New("already_verified")
	ErrResendTooSoon         = errors.New("resend_too_soon")
	ErrInvalidReset          = errors.New("invalid_reset")

	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailNotVerified   = errors.New("email_not_verified")
	ErrRestaurantRejected = errors.New("restaurant_rejected")
	ErrRestaurantPending  = errors.New("restaurant_pending_approval")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrMissingRestaurantID   = errors.New("missing_restaurant_id")
	ErrMissingItems          = errors.New("missing_items")
	ErrInvalidPaymentType    = errors.New("invalid_payment_type")
	ErrRestaurantNotFound    = errors.New("restaurant_not_found")
	ErrRestaurantUnavailable = errors.New("restaurant_not_available")
	ErrInvalidItem           = errors.New("invalid_item")
	ErrInvalidQuantity       = errors.New("invalid_quantity")
	ErrItemNotOnMenu         = errors.New("item_not_in_restaurant_menu")
	ErrInvalidTip            = errors.New("invalid_tip")
	ErrMissingOrderID        = errors.New("missing_order_id")
	ErrInvalidStatus         = errors.New("invalid_status")
	ErrOrderNotFound         = errors.New("order_not_found")

	ErrInvalidPoints  = errors.New("invalid_points")
	ErrInvalidPrice   = errors.New("invalid_price")
	ErrMenuNotAllowed = errors.New("only_approved_restaurants_can_add_menu")

	ErrMFANotEnabled   = errors.New("mfa_not_enabled")
	ErrInvalidMFACode  = errors.New("invalid_mfa_code")
	ErrInvalidMFAToken = errors.New("invalid_mfa_token")
)
