package services

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"quest/internal/auth"
	"quest/internal/models"
	"quest/internal/store"
)

type AccountService struct {
	accounts store.AccountStore
	tokens   *auth.TokenManager
}

type AccountServiceDeps struct {
	AccountStore store.AccountStore
	Tokens       *auth.TokenManager
}

func NewAccountService(deps AccountServiceDeps) *AccountService {
	return &AccountService{
		accounts: deps.AccountStore,
		tokens:   deps.Tokens,
	}
}

// Register creates an account with a hashed password. A duplicate email
// surfaces as a store failure that the boundary maps to "already exists".
func (s *AccountService) Register(ctx context.Context, na models.NewAccount) error {
	if na.Email == "" || na.Password == "" {
		return models.ValidationError(errors.New("email and password are required"))
	}

	hash, err := auth.HashPassword(na.Password)
	if err != nil {
		return err
	}
	na.Password = hash

	if err := s.accounts.AddAccount(ctx, na); err != nil {
		return models.StoreError(err)
	}
	return nil
}

// Login verifies credentials and returns a session token. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, creds models.NewAccount) (string, error) {
	if creds.Email == "" || creds.Password == "" {
		return "", models.ValidationError(errors.New("email and password are required"))
	}

	account, err := s.accounts.GetAccountByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", models.UnauthorizedError()
		}
		return "", models.StoreError(err)
	}

	if !auth.CheckPassword(account.Password, creds.Password) {
		log.WithField("account_id", account.ID).Info("rejected login with wrong password")
		return "", models.UnauthorizedError()
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		// Signing failure is not part of the per-request taxonomy; the
		// boundary maps unclassified errors to a generic internal error.
		return "", err
	}
	return token, nil
}
