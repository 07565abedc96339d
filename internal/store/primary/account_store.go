package primary

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"quest/internal/models"
	"quest/internal/store"
)

// AddAccount inserts a new account. The email column carries a unique
// constraint; a violation is detected by SQLSTATE, not by matching the
// error text.
func (s *StoreImpl) AddAccount(ctx context.Context, na models.NewAccount) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO accounts (email, password) VALUES ($1, $2)`,
		na.Email, na.Password,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("account with email already exists: %w", store.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

func (s *StoreImpl) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var a models.Account
	err := s.db.QueryRow(ctx,
		`SELECT id, email, password FROM accounts WHERE email = $1`,
		email,
	).Scan(&a.ID, &a.Email, &a.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %q: %w", email, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return &a, nil
}
