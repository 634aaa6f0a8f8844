// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, and
// issuing/validating session tokens.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samuelnapitupulu18/NusaCare/internal/common"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/auth"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/config"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/models"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/repositories/users"
)

// WiFiIDPrefix is the required prefix of a pre-provisioned WiFi ID.
const WiFiIDPrefix = "NUSA-"

// UserSummary is the client-facing view of an account. It never carries the
// password hash.
type UserSummary struct {
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
}

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint a session token
// - ValidateToken: verify a presented token and return its claims
type UserService struct {
	repo                  users.Repository
	secretKey             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using the credential store and
// server config.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                  repo,
		secretKey:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new USER-role account and returns its ID. Input is
// validated before the store is touched; conflicts from the store pass
// through verbatim. The raw password is hashed immediately and never stored.
func (s *UserService) Register(ctx context.Context, name, email, password, wifiID string) (string, error) {
	if name == "" || email == "" || password == "" || wifiID == "" {
		return "", common.ErrorMissingFields
	}
	if !strings.HasPrefix(wifiID, WiFiIDPrefix) {
		return "", common.ErrorInvalidWiFiID
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		WiFiID:       wifiID,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) || errors.Is(err, common.ErrorWiFiIDTaken) {
			return "", err
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return created.ID, nil
}

// Login verifies the credentials and, on success, returns a signed session
// token plus a summary of the account. A missing user and a wrong password
// are indistinguishable to the caller; a burn comparison keeps the timing
// of the two cases alike.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *UserSummary, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.BurnPasswordCheck(password)
			return "", nil, common.ErrorInvalidCredentials
		}
		return "", nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Email, user.Role, s.secretKey, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, &UserSummary{Email: user.Email, Name: user.Name, Role: user.Role}, nil
}

// ValidateToken checks signature and expiry of a presented token and returns
// the decoded claims.
func (s *UserService) ValidateToken(token string) (*auth.Claims, error) {
	return auth.ParseToken(token, s.secretKey)
}
