package service

import (
	"context"
	"strings"

	"campuseats/internal/utils"

	"github.com/sirupsen/logrus"
)

const minPasswordLength = 8

// VerificationService owns the one-time-code lifecycle for a single account
// kind: signup with emailed verification codes, verify, resend with a
// cooldown, and the password-reset flow. It works against the AccountStore
// abstraction so the same engine serves both end users and restaurants.
type VerificationService struct {
	accounts AccountStore
	mailer   Mailer
	hasher   PasswordHasher
	codes    CodeGenerator
	clock    Clock
	logger   *logrus.Logger
	config   VerificationConfig
}

func NewVerificationService(
	accounts AccountStore,
	mailer Mailer,
	hasher PasswordHasher,
	codes CodeGenerator,
	clock Clock,
	logger *logrus.Logger,
	config VerificationConfig,
) *VerificationService {
	if clock == nil {
		clock = RealClock{}
	}
	return &VerificationService{
		accounts: accounts,
		mailer:   mailer,
		hasher:   hasher,
		codes:    codes,
		clock:    clock,
		logger:   logger,
		config:   config,
	}
}

// Signup persists the given unverified account and emails it a verification
// code. The caller builds the account with its kind-specific profile fields
// already validated and its email normalized. If delivery fails the account
// is deleted again: signup has not happened until the code went out.
// The returned string is the plaintext code when dev visibility is on.
func (s *VerificationService) Signup(ctx context.Context, account Account, password string) (string, error) {
	password = strings.TrimSpace(password)
	if len(password) < minPasswordLength {
		return "", ErrWeakPassword
	}

	existing, err := s.accounts.FindByEmail(ctx, account.AccountEmail())
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailInUse
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	cred := account.CredentialState()
	cred.PasswordHash = passwordHash
	cred.Verified = false

	code, err := s.stampVerificationCode(account)
	if err != nil {
		return "", err
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return "", err
	}

	if err := s.mailer.SendVerificationCode(ctx, account.AccountEmail(), code); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("email", account.AccountEmail()).
				Warn("verification mail failed, rolling back signup")
		}
		if delErr := s.accounts.DeleteByID(ctx, account.AccountID()); delErr != nil && s.logger != nil {
			s.logger.WithError(delErr).Warn("signup rollback failed")
		}
		return "", ErrDeliveryFailed
	}

	return s.devCode(code), nil
}

// Verify marks the account verified when the submitted code matches the
// pending one. Expiry is checked before the hash comparison.
func (s *VerificationService) Verify(ctx context.Context, email string, code string) error {
	account, err := s.accounts.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if account == nil {
		return ErrNotFound
	}

	cred := account.CredentialState()
	if cred.VerifyCodeHash == nil || cred.VerifyCodeExpiresAt == nil {
		return ErrNoPendingVerification
	}
	if s.clock.Now().After(*cred.VerifyCodeExpiresAt) {
		return ErrCodeExpired
	}
	if !s.hasher.Verify(*cred.VerifyCodeHash, code) {
		return ErrInvalidCode
	}

	cred.Verified = true
	cred.ClearVerification()
	return s.accounts.Save(ctx, account)
}

// Resend issues a fresh verification code, invalidating the previous one.
// Delivery failure is surfaced but the account stays; the new code remains
// pending and a later resend can retry.
func (s *VerificationService) Resend(ctx context.Context, email string) (string, error) {
	account, err := s.accounts.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", ErrNotFound
	}

	cred := account.CredentialState()
	if cred.Verified {
		return "", ErrAlreadyVerified
	}
	now := s.clock.Now()
	if cred.LastCodeSentAt != nil && now.Sub(*cred.LastCodeSentAt) < s.config.resendCooldown() {
		return "", ErrResendTooSoon
	}

	code, err := s.stampVerificationCode(account)
	if err != nil {
		return "", err
	}
	if err := s.accounts.Save(ctx, account); err != nil {
		return "", err
	}
	if err := s.mailer.SendVerificationCode(ctx, account.AccountEmail(), code); err != nil {
		return "", ErrDeliveryFailed
	}

	return s.devCode(code), nil
}

// RequestReset stores and delivers a password-reset code. The response is
// the same whether or not the account exists, so the endpoint cannot be
// used to probe for registered emails.
func (s *VerificationService) RequestReset(ctx context.Context, email string) (string, error) {
	code, err := s.codes.Generate()
	if err != nil {
		return "", err
	}

	account, err := s.accounts.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	if account != nil {
		codeHash, err := s.hasher.Hash(code)
		if err != nil {
			return "", err
		}
		cred := account.CredentialState()
		expiresAt := s.clock.Now().Add(s.config.codeTTL())
		cred.ResetCodeHash = &codeHash
		cred.ResetCodeExpiresAt = &expiresAt
		if err := s.accounts.Save(ctx, account); err != nil {
			return "", err
		}
		if err := s.mailer.SendPasswordResetCode(ctx, account.AccountEmail(), code); err != nil {
			return "", ErrDeliveryFailed
		}
	}

	return s.devCode(code), nil
}

// ConfirmReset replaces the password when the submitted reset code matches
// the pending, unexpired one.
func (s *VerificationService) ConfirmReset(ctx context.Context, email string, code string, newPassword string) error {
	account, err := s.accounts.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if account == nil {
		return ErrInvalidReset
	}

	cred := account.CredentialState()
	if cred.ResetCodeHash == nil || cred.ResetCodeExpiresAt == nil {
		return ErrInvalidReset
	}
	if s.clock.Now().After(*cred.ResetCodeExpiresAt) {
		return ErrCodeExpired
	}
	if !s.hasher.Verify(*cred.ResetCodeHash, code) {
		return ErrInvalidCode
	}

	newPassword = strings.TrimSpace(newPassword)
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}
	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	cred.PasswordHash = passwordHash
	cred.ClearReset()
	return s.accounts.Save(ctx, account)
}

// stampVerificationCode generates a code and writes its hash, expiry and
// last-sent timestamp onto the account, replacing any prior pending code.
func (s *VerificationService) stampVerificationCode(account Account) (string, error) {
	code, err := s.codes.Generate()
	if err != nil {
		return "", err
	}
	codeHash, err := s.hasher.Hash(code)
	if err != nil {
		return "", err
	}

	now := s.clock.Now()
	expiresAt := now.Add(s.config.codeTTL())
	cred := account.CredentialState()
	cred.VerifyCodeHash = &codeHash
	cred.VerifyCodeExpiresAt = &expiresAt
	cred.LastCodeSentAt = &now
	return code, nil
}

func (s *VerificationService) devCode(code string) string {
	if s.config.IncludeDevCodes {
		return code
	}
	return ""
}
