package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quest/internal/auth"
	"quest/internal/models"
	"quest/internal/services"
	"quest/internal/store"
	mockstore "quest/internal/tests/mocks/store"
)

func newAccountService(t *testing.T, accounts *mockstore.AccountStore) *services.AccountService {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	return services.NewAccountService(services.AccountServiceDeps{
		AccountStore: accounts,
		Tokens:       tokens,
	})
}

func TestRegisterHashesPassword(t *testing.T) {
	accounts := new(mockstore.AccountStore)
	svc := newAccountService(t, accounts)

	accounts.On("AddAccount", mock.Anything, mock.MatchedBy(func(na models.NewAccount) bool {
		return na.Email == "ada@example.com" && na.Password != "hunter2" && na.Password != ""
	})).Return(nil).Once()

	err := svc.Register(context.Background(), models.NewAccount{Email: "ada@example.com", Password: "hunter2"})
	require.NoError(t, err)
	accounts.AssertExpectations(t)
}

func TestRegisterMissingFields(t *testing.T) {
	accounts := new(mockstore.AccountStore)
	svc := newAccountService(t, accounts)

	err := svc.Register(context.Background(), models.NewAccount{Email: "ada@example.com"})
	assert.Equal(t, models.KindValidation, errorKind(t, err))
	accounts.AssertNotCalled(t, "AddAccount", mock.Anything, mock.Anything)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	accounts := new(mockstore.AccountStore)
	svc := newAccountService(t, accounts)

	accounts.On("AddAccount", mock.Anything, mock.Anything).
		Return(fmt.Errorf("account with email already exists: %w", store.ErrDuplicate)).Once()

	err := svc.Register(context.Background(), models.NewAccount{Email: "ada@example.com", Password: "hunter2"})
	assert.Equal(t, models.KindStore, errorKind(t, err))
	// The duplicate sentinel stays reachable for the boundary mapping.
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	accounts := new(mockstore.AccountStore)
	svc := newAccountService(t, accounts)

	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	accounts.On("GetAccountByEmail", mock.Anything, "ada@example.com").
		Return(&models.Account{ID: 7, Email: "ada@example.com", Password: hash}, nil).Once()

	token, err := svc.Login(context.Background(), models.NewAccount{Email: "ada@example.com", Password: "hunter2"})
	require.NoError(t, err)

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	session, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 7, session.AccountID)
}

func TestLoginWrongPassword(t *testing.T) {
	accounts := new(mockstore.AccountStore)
	svc := newAccountService(t, accounts)

	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	accounts.On("GetAccountByEmail", mock.Anything, "ada@example.com").
		Return(&models.Account{ID: 7, Email: "ada@example.com", Password: hash}, nil).Once()

	_, err = svc.Login(context.Background(), models.NewAccount{Email: "ada@example.com", Password: "hunter3"})
	assert.Equal(t, models.KindUnauthorized, errorKind(t, err))
}

func TestLoginUnknownEmailReadsAsUnauthorized(t *testing.T) {
	accounts := new(mockstore.AccountStore)
	svc := newAccountService(t, accounts)

	accounts.On("GetAccountByEmail", mock.Anything, "ghost@example.com").
		Return(nil, fmt.Errorf("account %q: %w", "ghost@example.com", store.ErrNotFound)).Once()

	_, err := svc.Login(context.Background(), models.NewAccount{Email: "ghost@example.com", Password: "hunter2"})
	assert.Equal(t, models.KindUnauthorized, errorKind(t, err))
}
