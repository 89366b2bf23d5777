package service

import (
	"context"
	"time"

	"campuseats/internal/entity"
	"campuseats/internal/repository"
	"campuseats/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AdminLoginResult struct {
	Token       string
	MFARequired bool
	MFAToken    string
}

// AdminService covers the administrator surface: the seeded login, the
// restaurant approval workflow and optional TOTP MFA.
type AdminService struct {
	admins      repository.AdminRepository
	restaurants repository.RestaurantRepository
	hasher      PasswordHasher
	tokens      utils.TokenManager
	mfaTokens   MFATokenIssuer
	totp        *TOTPProvider
	audit       *Auditor
	logger      *logrus.Logger
}

func NewAdminService(
	admins repository.AdminRepository,
	restaurants repository.RestaurantRepository,
	hasher PasswordHasher,
	tokens utils.TokenManager,
	mfaTokens MFATokenIssuer,
	totp *TOTPProvider,
	audit *Auditor,
	logger *logrus.Logger,
) *AdminService {
	return &AdminService{
		admins:      admins,
		restaurants: restaurants,
		hasher:      hasher,
		tokens:      tokens,
		mfaTokens:   mfaTokens,
		totp:        totp,
		audit:       audit,
		logger:      logger,
	}
}

// SeedIfMissing creates the bootstrap admin from configuration when the
// admin table is empty. Missing configuration is not an error.
func (s *AdminService) SeedIfMissing(ctx context.Context, email string, password string) error {
	count, err := s.admins.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		if s.logger != nil {
			s.logger.Info("no admin credentials configured, skipping seed")
		}
		return nil
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	return s.admins.Create(ctx, &entity.Admin{
		Email:        email,
		Name:         "Administrator",
		PasswordHash: hash,
	})
}

func (s *AdminService) Login(ctx context.Context, email string, password string, ip *string) (*AdminLoginResult, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !s.hasher.Verify(admin.PasswordHash, password) {
		s.audit.Record(ctx, nil, utils.KindAdmin, ip, entity.AuditLoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if admin.MFAEnabled() {
		mfaToken, _, err := s.mfaTokens.Issue(admin.ID)
		if err != nil {
			return nil, err
		}
		return &AdminLoginResult{MFARequired: true, MFAToken: mfaToken}, nil
	}

	token, _, err := s.tokens.Issue(admin.ID, utils.KindAdmin)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, &admin.ID, utils.KindAdmin, ip, entity.AuditLoginSuccess, nil)
	return &AdminLoginResult{Token: token}, nil
}

func (s *AdminService) LoginMFA(ctx context.Context, mfaToken string, code string, ip *string) (*AdminLoginResult, error) {
	adminID, err := s.mfaTokens.Parse(mfaToken)
	if err != nil {
		return nil, ErrInvalidMFAToken
	}
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}
	if !admin.MFAEnabled() {
		return nil, ErrMFANotEnabled
	}
	if !s.totp.ValidateCode(*admin.TOTPSecret, code) {
		s.audit.Record(ctx, &admin.ID, utils.KindAdmin, ip, entity.AuditAdminMFAFailed, nil)
		return nil, ErrInvalidMFACode
	}

	token, _, err := s.tokens.Issue(admin.ID, utils.KindAdmin)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, &admin.ID, utils.KindAdmin, ip, entity.AuditLoginSuccess, map[string]any{"mfa": true})
	return &AdminLoginResult{Token: token}, nil
}

// EnableMFA stores a fresh TOTP secret, disabled until verified, and
// returns the otpauth enrollment URL.
func (s *AdminService) EnableMFA(ctx context.Context, adminID uuid.UUID) (string, error) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", ErrNotFound
	}

	secret, err := s.totp.GenerateSecret()
	if err != nil {
		return "", err
	}
	admin.TOTPSecret = &secret
	admin.TOTPEnabledAt = nil
	if err := s.admins.Update(ctx, admin); err != nil {
		return "", err
	}
	return s.totp.QRCodeURL(admin.Email, secret), nil
}

func (s *AdminService) VerifyMFA(ctx context.Context, adminID uuid.UUID, code string) error {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}
	if admin.TOTPSecret == nil {
		return ErrMFANotEnabled
	}
	if !s.totp.ValidateCode(*admin.TOTPSecret, code) {
		return ErrInvalidMFACode
	}

	now := time.Now()
	admin.TOTPEnabledAt = &now
	return s.admins.Update(ctx, admin)
}

func (s *AdminService) DisableMFA(ctx context.Context, adminID uuid.UUID) error {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}
	admin.TOTPSecret = nil
	admin.TOTPEnabledAt = nil
	return s.admins.Update(ctx, admin)
}

// ListRestaurants filters by approval status when a valid one is given;
// unknown filter values are ignored rather than rejected.
func (s *AdminService) ListRestaurants(ctx context.Context, statusFilter string) ([]entity.Restaurant, error) {
	var status *entity.ApprovalStatus
	switch entity.ApprovalStatus(statusFilter) {
	case entity.ApprovalPending, entity.ApprovalApproved, entity.ApprovalRejected:
		value := entity.ApprovalStatus(statusFilter)
		status = &value
	}
	return s.restaurants.List(ctx, status)
}

func (s *AdminService) ApproveRestaurant(ctx context.Context, adminID, restaurantID uuid.UUID) (*entity.Restaurant, error) {
	return s.setApproval(ctx, adminID, restaurantID, entity.ApprovalApproved, entity.AuditRestaurantApproved)
}

func (s *AdminService) RejectRestaurant(ctx context.Context, adminID, restaurantID uuid.UUID) (*entity.Restaurant, error) {
	return s.setApproval(ctx, adminID, restaurantID, entity.ApprovalRejected, entity.AuditRestaurantRejected)
}

func (s *AdminService) setApproval(
	ctx context.Context,
	adminID, restaurantID uuid.UUID,
	status entity.ApprovalStatus,
	action entity.AuditAction,
) (*entity.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrNotFound
	}
	restaurant.Status = status
	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, &adminID, utils.KindAdmin, nil, action,
		map[string]any{"restaurant_id": restaurantID.String()})
	return restaurant, nil
}
