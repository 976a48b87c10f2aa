package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepository_GetDashboardStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAnalyticsRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"revenue", "total", "active", "pending_count", "pending_amount", "users"}).
			AddRow(decimal.RequireFromString("1500.50"), int64(12), int64(4), int64(3), decimal.NewFromInt(270), int64(8))

		mock.ExpectQuery(`SELECT .+ FROM orders`).WillReturnRows(rows)

		stats, err := repo.GetDashboardStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1500.5", stats.TotalRevenue.String())
		assert.Equal(t, int64(12), stats.TotalOrders)
		assert.Equal(t, int64(4), stats.ActiveOrders)
		assert.Equal(t, int64(3), stats.PendingPayments.Count)
		assert.True(t, stats.PendingPayments.Amount.Equal(decimal.NewFromInt(270)))
		assert.Equal(t, int64(8), stats.TotalUsers)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM orders`).WillReturnError(errors.New("database error"))

		stats, err := repo.GetDashboardStats(ctx)
		assert.Error(t, err)
		assert.Nil(t, stats)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
