package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planColumnNames = []string{"id", "name", "type", "processor", "category_id", "price", "features", "is_active", "created_at"}

func addPlanRow(rows *pgxmock.Rows, id int64, name string, typ domain.PlanType, price string, features string) *pgxmock.Rows {
	return rows.AddRow(id, name, typ, (*string)(nil), (*int64)(nil), decimal.RequireFromString(price), []byte(features), true, time.Now())
}

func TestPlanRepository_GetPlan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlanRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := addPlanRow(pgxmock.NewRows(planColumnNames), 1, "Bot Starter", domain.PlanTypeBot, "30.00", `["1 GB RAM","24/7"]`)

		mock.ExpectQuery(`SELECT .+ FROM plans WHERE id`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		plan, err := repo.GetPlan(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Bot Starter", plan.Name)
		assert.Equal(t, domain.PlanTypeBot, plan.Type)
		assert.True(t, plan.Price.Equal(decimal.NewFromInt(30)))
		assert.Equal(t, []string{"1 GB RAM", "24/7"}, plan.Features)
		assert.Nil(t, plan.Processor)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM plans WHERE id`).
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		plan, err := repo.GetPlan(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrPlanNotFound)
		assert.Nil(t, plan)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Corrupt features", func(t *testing.T) {
		rows := addPlanRow(pgxmock.NewRows(planColumnNames), 2, "Broken", domain.PlanTypeVPS, "10.00", `{not json`)

		mock.ExpectQuery(`SELECT .+ FROM plans WHERE id`).
			WithArgs(int64(2)).
			WillReturnRows(rows)

		plan, err := repo.GetPlan(ctx, 2)
		assert.Error(t, err)
		assert.Nil(t, plan)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlanRepository_GetPlansByIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlanRepository(mock)
	ctx := context.Background()

	t.Run("Only existing plans returned", func(t *testing.T) {
		rows := pgxmock.NewRows(planColumnNames)
		addPlanRow(rows, 1, "Bot Starter", domain.PlanTypeBot, "30.00", `[]`)
		addPlanRow(rows, 2, "VPS Pro", domain.PlanTypeVPS, "60.00", `[]`)

		ids := []int64{1, 2, 99}
		mock.ExpectQuery(`SELECT .+ FROM plans WHERE id = ANY`).
			WithArgs(ids).
			WillReturnRows(rows)

		plans, err := repo.GetPlansByIDs(ctx, ids)
		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.Equal(t, int64(2), plans[1].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty ids skip the query", func(t *testing.T) {
		plans, err := repo.GetPlansByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, plans)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM plans WHERE id = ANY`).
			WithArgs([]int64{1}).
			WillReturnError(errors.New("database error"))

		plans, err := repo.GetPlansByIDs(ctx, []int64{1})
		assert.Error(t, err)
		assert.Nil(t, plans)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlanRepository_IsPlanActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlanRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT is_active FROM plans WHERE id`).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"is_active"}).AddRow(false))

	active, err := repo.IsPlanActive(ctx, 3)
	require.NoError(t, err)
	assert.False(t, active)

	mock.ExpectQuery(`SELECT is_active FROM plans WHERE id`).
		WithArgs(int64(4)).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.IsPlanActive(ctx, 4)
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepository_ListPlans(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlanRepository(mock)

	rows := pgxmock.NewRows(planColumnNames)
	addPlanRow(rows, 1, "Bot Starter", domain.PlanTypeBot, "30.00", `[]`)
	addPlanRow(rows, 2, "VPS Pro", domain.PlanTypeVPS, "60.00", `["2 vCPU"]`)

	mock.ExpectQuery(`SELECT .+ FROM plans ORDER BY type, price`).
		WillReturnRows(rows)

	plans, err := repo.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Empty(t, plans[0].Features)
	assert.Equal(t, []string{"2 vCPU"}, plans[1].Features)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepository_Write(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlanRepository(mock)
	ctx := context.Background()

	plan := &domain.Plan{
		ID:       5,
		Name:     "VPS Lite",
		Type:     domain.PlanTypeVPS,
		Price:    decimal.RequireFromString("120.00"),
		Features: []string{"1 vCPU"},
		IsActive: true,
	}

	t.Run("Create", func(t *testing.T) {
		rows := addPlanRow(pgxmock.NewRows(planColumnNames), 5, plan.Name, plan.Type, "120.00", `["1 vCPU"]`)

		mock.ExpectQuery(`INSERT INTO plans`).
			WithArgs(plan.Name, plan.Type, plan.Processor, plan.CategoryID, plan.Price, []byte(`["1 vCPU"]`), true).
			WillReturnRows(rows)

		created, err := repo.CreatePlan(ctx, plan)
		require.NoError(t, err)
		assert.Equal(t, int64(5), created.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update missing plan", func(t *testing.T) {
		mock.ExpectExec(`UPDATE plans`).
			WithArgs(plan.ID, plan.Name, plan.Type, plan.Processor, plan.CategoryID, plan.Price, pgxmock.AnyArg(), true).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdatePlan(ctx, plan)
		assert.ErrorIs(t, err, domain.ErrPlanNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM plans WHERE id`).
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeletePlan(ctx, 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
