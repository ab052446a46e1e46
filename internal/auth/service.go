// Package auth validates credentials and manages database-backed
// sessions. The same opaque token is held by the client (cookie for the
// UI, header for the API) and stored in the sessions table; a session
// authenticates only while its expiration is in the future.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"pasteboard/internal/common"
	"pasteboard/internal/database/models"
	"pasteboard/internal/database/repositories"
	"pasteboard/internal/utils"
)

type Service struct {
	accounts repositories.AccountRepository
	sessions repositories.SessionRepository

	bcryptCost int
	sessionTTL time.Duration

	now func() time.Time
}

func NewService(accounts repositories.AccountRepository, sessions repositories.SessionRepository, bcryptCost int, sessionTTL time.Duration) *Service {
	return &Service{
		accounts:   accounts,
		sessions:   sessions,
		bcryptCost: bcryptCost,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// Register validates the registration form, creates the account, and
// establishes a session immediately (auto-login). token may carry the
// caller's existing session token; when empty a fresh one is issued.
func (s *Service) Register(ctx context.Context, email, password, confirmPassword, token string) (*models.Account, *models.Session, error) {
	if email == "" || password == "" || confirmPassword == "" {
		return nil, nil, common.ErrFieldsRequired
	}
	if password != confirmPassword {
		return nil, nil, common.ErrPasswordMismatch
	}
	if len(password) < 6 {
		return nil, nil, common.ErrPasswordTooShort
	}

	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, nil, err
	}

	account := &models.Account{Email: email, PasswordHash: hash}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, nil, err
	}

	session, err := s.startSession(ctx, account.ID, token)
	if err != nil {
		return nil, nil, err
	}
	return account, session, nil
}

// Login checks the credentials and creates or replaces the session row
// for token. A missing account and a wrong password produce the same
// error so callers cannot tell which field was wrong.
func (s *Service) Login(ctx context.Context, email, password, token string) (*models.Account, *models.Session, error) {
	if email == "" || password == "" {
		return nil, nil, common.ErrMissingCredential
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		return nil, nil, common.ErrInvalidCredentials
	}

	session, err := s.startSession(ctx, account.ID, token)
	if err != nil {
		return nil, nil, err
	}
	return account, session, nil
}

func (s *Service) startSession(ctx context.Context, accountID int64, token string) (*models.Session, error) {
	if token == "" {
		token = uuid.NewString()
	}
	session := &models.Session{
		Token:     token,
		UserID:    accountID,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}
	if err := s.sessions.Upsert(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout removes the session row for token. It is idempotent; logging
// out an unknown token succeeds.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves token to the owning account id. A missing,
// unknown, or expired token yields common.ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, common.ErrUnauthorized
	}
	session, err := s.sessions.GetValid(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, common.ErrUnauthorized
		}
		return 0, err
	}
	return session.UserID, nil
}
