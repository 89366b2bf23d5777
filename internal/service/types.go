package service

import (
	"context"
	"time"

	"campuseats/internal/entity"
	"campuseats/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Account is the verifiable-credential capability shared by end users and
// restaurants. Admin accounts are seeded verified and never implement it.
type Account interface {
	AccountID() uuid.UUID
	AccountEmail() string
	CredentialState() *entity.Credential
}

// AccountStore adapts a kind-specific repository for the verification
// engine. FindByEmail returns (nil, nil) when no account matches.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (Account, error)
	Create(ctx context.Context, account Account) error
	Save(ctx context.Context, account Account) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type Mailer interface {
	SendVerificationCode(ctx context.Context, to string, code string) error
	SendPasswordResetCode(ctx context.Context, to string, code string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

type CodeGenerator interface {
	Generate() (string, error)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// VerificationConfig is built once at startup from the environment and
// passed by value; core logic never reads ambient configuration.
type VerificationConfig struct {
	CodeTTL        time.Duration
	ResendCooldown time.Duration
	// IncludeDevCodes echoes plaintext one-time codes in operation results.
	// Gated on an explicit debug flag or a non-delivering mail transport.
	IncludeDevCodes bool
}

func (c VerificationConfig) codeTTL() time.Duration {
	if c.CodeTTL > 0 {
		return c.CodeTTL
	}
	return 10 * time.Minute
}

func (c VerificationConfig) resendCooldown() time.Duration {
	if c.ResendCooldown > 0 {
		return c.ResendCooldown
	}
	return 60 * time.Second
}

type BcryptPasswordHasher struct {
	Cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptPasswordHasher) Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type NumericCodeGenerator struct {
	Digits int
}

func (g NumericCodeGenerator) Generate() (string, error) {
	digits := g.Digits
	if digits == 0 {
		digits = 6
	}
	return utils.GenerateNumericCode(digits)
}
