// Package users implements the identity service: registration, credential
// verification (password or one-time code), and token issuance.
package users

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/acadex/acadex/internal/common"
	"github.com/acadex/acadex/internal/server/auth"
	"github.com/acadex/acadex/internal/server/config"
	"github.com/acadex/acadex/internal/server/models"
)

type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
	otpCode       string
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		otpCode:       cfg.OTPCode,
	}
}

// Register validates the submission, hashes the password, persists the new
// identity and issues a token for it.
func (s *Service) Register(ctx context.Context, name, email, phone, password string) (*models.User, string, error) {

	if name == "" || password == "" || (email == "" && phone == "") {
		return nil, "", ErrMissingFields
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", ErrUserExists
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// checkOTP compares a submitted one-time code against the fixed reference
// value.
func (s *Service) checkOTP(otp string) bool {
	return subtle.ConstantTimeCompare([]byte(otp), []byte(s.otpCode)) == 1
}

// Login verifies a credential submission and issues a token. When a one-time
// code is supplied it takes precedence and the password field is ignored.
func (s *Service) Login(ctx context.Context, email, phone, password, otp string) (*models.User, string, error) {

	if (email == "" && phone == "") || (password == "" && otp == "") {
		return nil, "", ErrMissingCredentials
	}

	user, err := s.repo.FindByIdentifier(ctx, email, phone)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", common.ErrorInternal
	}

	if otp != "" {
		if !s.checkOTP(otp) {
			return nil, "", ErrInvalidOTP
		}
	} else {
		if !auth.CheckPassword(user.PasswordHash, password) {
			return nil, "", ErrInvalidPassword
		}
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// GetByID returns the identity bound to id, or common.ErrorNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}
