// Package services contains server-side business logic. This file implements
// UserService: registration, login, and token-based authentication.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopkeeper/shopkeeper/internal/common"
	"github.com/shopkeeper/shopkeeper/internal/server/auth"
	"github.com/shopkeeper/shopkeeper/internal/server/config"
	"github.com/shopkeeper/shopkeeper/internal/server/models"
	"github.com/shopkeeper/shopkeeper/internal/server/repositories/repomanager"
	"github.com/shopkeeper/shopkeeper/internal/server/validation"
)

// UserService provides the account and session flow:
//   - Register: validate credentials, hash the password, create the account
//   - Login: verify credentials and mint a session token
//   - Authenticate: resolve a session token back to its account
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	hasher                *auth.Hasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		hasher:                auth.NewHasher(cfg.BcryptCost),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new account. The email is normalized (trimmed,
// lowercased) before any other work; credentials are validated before the
// expensive hash. The existence check only provides the friendly duplicate
// message; the unique index on users.email decides races, and its
// violation surfaces as common.ErrDuplicateAccount as well.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	normalized := validation.NormalizeEmail(email)

	if _, err := repo.GetByEmail(ctx, normalized); err == nil {
		return nil, common.ErrDuplicateAccount
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	if msgs := validation.CheckCredentials(normalized, password); len(msgs) > 0 {
		return nil, &validation.Error{Messages: msgs}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{Name: name, Email: normalized, PasswordHash: hash}
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			return nil, common.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the submitted credentials and, on success, returns the
// account and a signed session token. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", common.ErrInternal
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, "", common.ErrInternal
	}
	if !ok {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Name, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrInternal
	}

	return user, token, nil
}

// Authenticate verifies a session token and resolves the account it was
// issued for, without the password hash. Bad signatures, expired tokens,
// and since-vanished accounts all yield common.ErrInvalidToken.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	return user, nil
}

// List returns all accounts, password hashes excluded.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}
