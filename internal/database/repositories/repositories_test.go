package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"pasteboard/internal/database"
	"pasteboard/internal/database/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	svc, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc.DB()
}

func newTestAccount(t *testing.T, db *sql.DB, email string) *models.Account {
	t.Helper()
	account := &models.Account{Email: email, PasswordHash: "x"}
	require.NoError(t, NewAccountRepository(db).Create(context.Background(), account))
	require.NotZero(t, account.ID)
	return account
}
