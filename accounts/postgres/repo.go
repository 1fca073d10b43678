// Package postgres implements the accounts.Repo contract on PostgreSQL.
// Email uniqueness is enforced by the table's UNIQUE constraint; the
// resulting unique-violation error is mapped to accounts.ErrDuplicateEmail.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rmcgill/medialounge/accounts"
	"github.com/rmcgill/medialounge/internal/dbx"
)

// SQLSTATE for unique constraint violations.
const uniqueViolationCode = "23505"

type Repository struct {
	db dbx.DBTX
}

func NewRepository(db dbx.DBTX) *Repository {
	return &Repository{db: db}
}

var _ accounts.Repo = (*Repository)(nil)

func (r *Repository) Create(ctx context.Context, email, passwordHash string) (*accounts.Account, error) {
	query := `INSERT INTO accounts (email, password_hash)
	          VALUES ($1, $2)
	          RETURNING id, email, password_hash, created_at`

	account := &accounts.Account{}
	err := r.db.QueryRowContext(ctx, query, accounts.NormalizeEmail(email), passwordHash).
		Scan(&account.ID, &account.Email, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, accounts.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: insert account: %v", accounts.ErrStorageUnavailable, err)
	}

	return account, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	query := `SELECT id, email, password_hash, created_at FROM accounts
	          WHERE email = $1`

	account := &accounts.Account{}
	err := r.db.QueryRowContext(ctx, query, accounts.NormalizeEmail(email)).
		Scan(&account.ID, &account.Email, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accounts.ErrNotFound
		}
		return nil, fmt.Errorf("%w: select account: %v", accounts.ErrStorageUnavailable, err)
	}

	return account, nil
}

func (r *Repository) List(ctx context.Context) ([]*accounts.Account, error) {
	query := `SELECT id, email, password_hash, created_at FROM accounts
	          ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list accounts: %v", accounts.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var list []*accounts.Account
	for rows.Next() {
		account := &accounts.Account{}
		if err := rows.Scan(&account.ID, &account.Email, &account.PasswordHash, &account.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan account: %v", accounts.ErrStorageUnavailable, err)
		}
		list = append(list, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list accounts: %v", accounts.ErrStorageUnavailable, err)
	}

	return list, nil
}

func (r *Repository) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE accounts SET password_hash = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("%w: update password hash: %v", accounts.ErrStorageUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: update password hash: %v", accounts.ErrStorageUnavailable, err)
	}
	if affected == 0 {
		return accounts.ErrNotFound
	}

	return nil
}
