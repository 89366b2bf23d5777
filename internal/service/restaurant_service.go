package service

import (
	"context"
	"strings"

	"campuseats/internal/entity"
	"campuseats/internal/repository"
	"campuseats/internal/utils"

	"github.com/google/uuid"
)

type RestaurantSignupInput struct {
	Email              string
	Password           string
	PhoneNo            string
	OwnerName          string
	RestaurantName     string
	RestaurantLocation string
	License            string
	TaxID              string
}

type RestaurantService struct {
	restaurants  repository.RestaurantRepository
	verification *VerificationService
	hasher       PasswordHasher
	tokens       utils.TokenManager
	audit        *Auditor
}

func NewRestaurantService(
	restaurants repository.RestaurantRepository,
	verification *VerificationService,
	hasher PasswordHasher,
	tokens utils.TokenManager,
	audit *Auditor,
) *RestaurantService {
	return &RestaurantService{
		restaurants:  restaurants,
		verification: verification,
		hasher:       hasher,
		tokens:       tokens,
		audit:        audit,
	}
}

func (s *RestaurantService) Signup(ctx context.Context, input RestaurantSignupInput) (string, error) {
	email := utils.NormalizeEmail(input.Email)
	phoneNo := strings.TrimSpace(input.PhoneNo)
	ownerName := strings.TrimSpace(input.OwnerName)
	restaurantName := strings.TrimSpace(input.RestaurantName)
	restaurantLocation := strings.TrimSpace(input.RestaurantLocation)
	license := strings.TrimSpace(input.License)
	taxID := strings.TrimSpace(input.TaxID)
	if email == "" || strings.TrimSpace(input.Password) == "" || phoneNo == "" || ownerName == "" ||
		restaurantName == "" || restaurantLocation == "" || license == "" || taxID == "" {
		return "", ErrMissingFields
	}

	restaurant := &entity.Restaurant{
		Email:              email,
		PhoneNo:            phoneNo,
		OwnerName:          ownerName,
		RestaurantName:     restaurantName,
		RestaurantLocation: restaurantLocation,
		License:            license,
		TaxID:              taxID,
		Status:             entity.ApprovalPending,
	}
	return s.verification.Signup(ctx, restaurant, input.Password)
}

func (s *RestaurantService) Verify(ctx context.Context, email string, code string) error {
	return s.verification.Verify(ctx, email, code)
}

func (s *RestaurantService) ResendCode(ctx context.Context, email string) (string, error) {
	return s.verification.Resend(ctx, email)
}

func (s *RestaurantService) ForgotPassword(ctx context.Context, email string) (string, error) {
	return s.verification.RequestReset(ctx, email)
}

func (s *RestaurantService) ResetPassword(ctx context.Context, email string, code string, newPassword string) error {
	if err := s.verification.ConfirmReset(ctx, email, code, newPassword); err != nil {
		return err
	}
	s.audit.Record(ctx, nil, utils.KindRestaurant, nil, entity.AuditPasswordReset,
		map[string]any{"email": utils.NormalizeEmail(email)})
	return nil
}

// Login requires a verified email and admin approval on top of the
// password check.
func (s *RestaurantService) Login(ctx context.Context, email string, password string, ip *string) (string, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	restaurant, err := s.restaurants.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if restaurant == nil {
		s.audit.Record(ctx, nil, utils.KindRestaurant, ip, entity.AuditLoginFailed, map[string]any{"email": email})
		return "", ErrInvalidCredentials
	}
	if !restaurant.Verified {
		return "", ErrEmailNotVerified
	}
	if restaurant.Status == entity.ApprovalRejected {
		return "", ErrRestaurantRejected
	}
	if restaurant.Status != entity.ApprovalApproved {
		return "", ErrRestaurantPending
	}
	if !s.hasher.Verify(restaurant.PasswordHash, password) {
		s.audit.Record(ctx, &restaurant.ID, utils.KindRestaurant, ip, entity.AuditLoginFailed, nil)
		return "", ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(restaurant.ID, utils.KindRestaurant)
	if err != nil {
		return "", err
	}
	s.audit.Record(ctx, &restaurant.ID, utils.KindRestaurant, ip, entity.AuditLoginSuccess, nil)
	return token, nil
}

func (s *RestaurantService) Get(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrNotFound
	}
	return restaurant, nil
}

// ListPublic returns only verified, approved restaurants.
func (s *RestaurantService) ListPublic(ctx context.Context) ([]entity.Restaurant, error) {
	return s.restaurants.ListAvailable(ctx)
}

func (s *RestaurantService) GetPublic(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil || !restaurant.Available() {
		return nil, ErrNotFound
	}
	return restaurant, nil
}
