package service

import (
	"context"
	"math"
	"strings"

	"campuseats/internal/entity"
	"campuseats/internal/repository"
	"campuseats/internal/utils"

	"github.com/google/uuid"
)

type UserSignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	PhoneNo   string
}

type UserProfileUpdate struct {
	FirstName *string
	LastName  *string
	PhoneNo   *string
	CWID      *string
	Location  *string
}

type UserService struct {
	users        repository.UserRepository
	verification *VerificationService
	hasher       PasswordHasher
	tokens       utils.TokenManager
	audit        *Auditor
}

func NewUserService(
	users repository.UserRepository,
	verification *VerificationService,
	hasher PasswordHasher,
	tokens utils.TokenManager,
	audit *Auditor,
) *UserService {
	return &UserService{
		users:        users,
		verification: verification,
		hasher:       hasher,
		tokens:       tokens,
		audit:        audit,
	}
}

func (s *UserService) Signup(ctx context.Context, input UserSignupInput) (string, error) {
	email := utils.NormalizeEmail(input.Email)
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	phoneNo := strings.TrimSpace(input.PhoneNo)
	if email == "" || firstName == "" || lastName == "" || phoneNo == "" || strings.TrimSpace(input.Password) == "" {
		return "", ErrMissingFields
	}

	user := &entity.User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		PhoneNo:   phoneNo,
	}
	return s.verification.Signup(ctx, user, input.Password)
}

func (s *UserService) Verify(ctx context.Context, email string, code string) error {
	return s.verification.Verify(ctx, email, code)
}

func (s *UserService) ResendCode(ctx context.Context, email string) (string, error) {
	return s.verification.Resend(ctx, email)
}

func (s *UserService) ForgotPassword(ctx context.Context, email string) (string, error) {
	return s.verification.RequestReset(ctx, email)
}

func (s *UserService) ResetPassword(ctx context.Context, email string, code string, newPassword string) error {
	if err := s.verification.ConfirmReset(ctx, email, code, newPassword); err != nil {
		return err
	}
	s.audit.Record(ctx, nil, "user", nil, entity.AuditPasswordReset,
		map[string]any{"email": utils.NormalizeEmail(email)})
	return nil
}

// Login rejects unverified accounts before even looking at the password.
func (s *UserService) Login(ctx context.Context, email string, password string, ip *string) (string, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		s.audit.Record(ctx, nil, "user", ip, entity.AuditLoginFailed, map[string]any{"email": email})
		return "", ErrInvalidCredentials
	}
	if !user.Verified {
		return "", ErrEmailNotVerified
	}
	if !s.hasher.Verify(user.PasswordHash, password) {
		s.audit.Record(ctx, &user.ID, "user", ip, entity.AuditLoginFailed, nil)
		return "", ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user.ID, utils.KindUser)
	if err != nil {
		return "", err
	}
	s.audit.Record(ctx, &user.ID, "user", ip, entity.AuditLoginSuccess, nil)
	return token, nil
}

func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, update UserProfileUpdate) (*entity.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		user.LastName = strings.TrimSpace(*update.LastName)
	}
	if update.PhoneNo != nil {
		user.PhoneNo = strings.TrimSpace(*update.PhoneNo)
	}
	if update.CWID != nil {
		user.CWID = strings.TrimSpace(*update.CWID)
	}
	if update.Location != nil {
		user.Location = strings.TrimSpace(*update.Location)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddMealPoints only ever increases the balance; spending is out of scope.
func (s *UserService) AddMealPoints(ctx context.Context, userID uuid.UUID, points float64) (float64, error) {
	if points <= 0 || math.IsNaN(points) || math.IsInf(points, 0) {
		return 0, ErrInvalidPoints
	}

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return 0, err
	}
	user.MealPoints += points
	if err := s.users.Update(ctx, user); err != nil {
		return 0, err
	}
	return user.MealPoints, nil
}
