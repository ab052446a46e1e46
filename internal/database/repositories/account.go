package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pasteboard/internal/common"
	"pasteboard/internal/database/models"
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	now := time.Now()
	query := `INSERT INTO accounts (email, password_hash, created_at) VALUES (?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, account.Email, account.PasswordHash, now.Unix())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return common.ErrEmailTaken
		}
		return fmt.Errorf("error creating account: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error getting inserted account id: %w", err)
	}
	account.ID = id
	account.CreatedAt = now
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	account := models.Account{}
	var createdAt int64
	query := `SELECT id, email, password_hash, created_at FROM accounts WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&account.ID, &account.Email, &account.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting account: %w", err)
	}
	account.CreatedAt = time.Unix(createdAt, 0)
	return &account, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	account := models.Account{}
	var createdAt int64
	query := `SELECT id, email, password_hash, created_at FROM accounts WHERE email = ?`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&account.ID, &account.Email, &account.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting account by email: %w", err)
	}
	account.CreatedAt = time.Unix(createdAt, 0)
	return &account, nil
}
