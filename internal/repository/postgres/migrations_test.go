package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUpMigrations_Order(t *testing.T) {
	names, err := upMigrations()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"001_users.up.sql",
		"002_plans.up.sql",
		"003_promos.up.sql",
		"004_orders.up.sql",
	}, names)
}

func TestRunMigrations(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS plans`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS promos`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS orders`).WillReturnResult(pgxmock.NewResult("CREATE", 0))

		require.NoError(t, RunMigrations(ctx, mock, zap.NewNop()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Stops on first failure", func(t *testing.T) {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnError(errors.New("permission denied"))

		err := RunMigrations(ctx, mock, zap.NewNop())
		assert.ErrorContains(t, err, "001_users.up.sql")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
