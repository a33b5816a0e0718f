// Package services contains server-side business logic. AuthService handles
// registration and credential checks against the account table;
// JournalService appends, lists and aggregates a user's mood records.
package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/moodyssey/internal/common"
	"github.com/dmitrijs2005/moodyssey/internal/logging"
	"github.com/dmitrijs2005/moodyssey/internal/models"
	"github.com/dmitrijs2005/moodyssey/internal/repositories/accounts"
)

// User-facing outcome messages.
const (
	MsgAccountCreated     = "Account created successfully! You can now log in."
	MsgUsernameTaken      = "Username already exists."
	MsgAccountSaveFailed  = "Failed to create account due to a saving error."
	MsgUsernameRequired   = "Username must not be empty."
	MsgPasswordRequired   = "Password must not be empty."
	MsgPasswordTooLong    = "Password must be at most 72 bytes."
	MsgLoggedIn           = "Logged in successfully!"
	MsgUsernameNotFound   = "Username not found."
	MsgIncorrectPassword  = "Incorrect password."
	MsgAuthenticateFailed = "Could not verify credentials."
)

// Result is the outcome of an auth operation. Err is nil on success and
// otherwise one of the common sentinels.
type Result struct {
	Success bool
	Message string
	Err     error
}

func ok(msg string) Result { return Result{Success: true, Message: msg} }

func fail(err error, msg string) Result { return Result{Message: msg, Err: err} }

// AuthService registers accounts and verifies passwords.
type AuthService struct {
	accounts accounts.Repository
	cost     int
	logger   logging.Logger
}

// NewAuthService returns an AuthService hashing with the given bcrypt cost;
// values outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewAuthService(repo accounts.Repository, cost int, logger logging.Logger) *AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		accounts: repo,
		cost:     cost,
		logger:   logger.With("module", "auth_service"),
	}
}

// Register creates an account. An existing account is never modified.
func (s *AuthService) Register(ctx context.Context, username string, password []byte) Result {
	if username == "" {
		return fail(common.ErrInvalidUsername, MsgUsernameRequired)
	}
	if len(password) == 0 {
		return fail(common.ErrInvalidPassword, MsgPasswordRequired)
	}

	table, err := s.accounts.Load(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrCorruptData) {
			return fail(common.ErrStorageUnavailable, MsgAccountSaveFailed)
		}
		s.logger.Warn(ctx, "discarding corrupt account table", "error", err.Error())
	}

	if _, exists := table[username]; exists {
		return fail(common.ErrDuplicateUsername, MsgUsernameTaken)
	}

	hash, err := bcrypt.GenerateFromPassword(password, s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fail(common.ErrInvalidPassword, MsgPasswordTooLong)
		}
		s.logger.Error(ctx, "hashing password failed", "error", err.Error())
		return fail(common.ErrPersistence, MsgAccountSaveFailed)
	}

	table[username] = models.Account{HashedPassword: string(hash)}
	if err := s.accounts.Save(ctx, table); err != nil {
		return fail(common.ErrPersistence, MsgAccountSaveFailed)
	}

	s.logger.Info(ctx, "account registered", "username", username)
	return ok(MsgAccountCreated)
}

// Authenticate checks password against the stored hash for username.
func (s *AuthService) Authenticate(ctx context.Context, username string, password []byte) Result {
	table, err := s.accounts.Load(ctx)
	if err != nil && !errors.Is(err, common.ErrCorruptData) {
		return fail(common.ErrStorageUnavailable, MsgAuthenticateFailed)
	}

	account, exists := table[username]
	if !exists {
		return fail(common.ErrUnknownUsername, MsgUsernameNotFound)
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.HashedPassword), password)
	switch {
	case err == nil:
		return ok(MsgLoggedIn)
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return fail(common.ErrInvalidCredential, MsgIncorrectPassword)
	default:
		// A malformed stored hash can never match.
		s.logger.Warn(ctx, "stored password hash unusable", "username", username, "error", err.Error())
		return fail(common.ErrInvalidCredential, MsgIncorrectPassword)
	}
}
