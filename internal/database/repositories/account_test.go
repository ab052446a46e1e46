package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasteboard/internal/common"
	"pasteboard/internal/database/models"
)

func TestAccountCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := newTestAccount(t, db, "alice@example.com")

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byEmail.ID)
	assert.Equal(t, "alice@example.com", byEmail.Email)

	byID, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, byEmail.Email, byID.Email)
}

func TestAccountEmailConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	first := &models.Account{Email: "dup@example.com", PasswordHash: "original-hash"}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.Account{Email: "dup@example.com", PasswordHash: "other-hash"}
	err := repo.Create(ctx, second)
	require.ErrorIs(t, err, common.ErrEmailTaken)

	// The original account is untouched by the failed insert.
	stored, err := repo.GetByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "original-hash", stored.PasswordHash)
}

func TestAccountGetMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = repo.GetByID(ctx, 12345)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAccountGetByEmailStorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, created_at FROM accounts WHERE email = ?`)).
		WithArgs("alice@example.com").
		WillReturnError(errors.New("disk I/O error"))

	_, err = NewAccountRepository(db).GetByEmail(context.Background(), "alice@example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
