package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/hosting-storefront/internal/domain"
	domainmocks "github.com/avc/hosting-storefront/internal/domain/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreatePlan(t *testing.T) {
	mockPlanRepo := domainmocks.NewPlanRepositoryMock(t)
	svc := NewCatalogService(mockPlanRepo)
	ctx := context.Background()

	valid := func() *domain.Plan {
		return &domain.Plan{
			Name:     " VPS Pro ",
			Type:     domain.PlanTypeVPS,
			Price:    decimal.NewFromInt(60),
			Features: []string{"2 vCPU", " ", "4 GB RAM"},
			IsActive: true,
		}
	}

	t.Run("Success", func(t *testing.T) {
		mockPlanRepo.EXPECT().
			CreatePlan(mock.Anything, mock.MatchedBy(func(p *domain.Plan) bool {
				return p.Name == "VPS Pro" && len(p.Features) == 2
			})).
			Return(&domain.Plan{ID: 1, Name: "VPS Pro"}, nil).Once()

		plan, err := svc.CreatePlan(ctx, valid())
		require.NoError(t, err)
		assert.Equal(t, int64(1), plan.ID)
	})

	tests := []struct {
		name   string
		mutate func(p *domain.Plan)
		field  string
	}{
		{name: "Empty name", mutate: func(p *domain.Plan) { p.Name = "" }, field: "name"},
		{name: "Unknown type", mutate: func(p *domain.Plan) { p.Type = "dedicated" }, field: "type"},
		{name: "Zero price", mutate: func(p *domain.Plan) { p.Price = decimal.Zero }, field: "price"},
		{name: "No features", mutate: func(p *domain.Plan) { p.Features = []string{" "} }, field: "features"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)

			_, err := svc.CreatePlan(ctx, p)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestCatalogService_Read(t *testing.T) {
	mockPlanRepo := domainmocks.NewPlanRepositoryMock(t)
	svc := NewCatalogService(mockPlanRepo)
	ctx := context.Background()

	t.Run("Empty catalog is an empty list", func(t *testing.T) {
		mockPlanRepo.EXPECT().ListPlans(mock.Anything).Return(nil, nil).Once()

		plans, err := svc.ListPlans(ctx)
		require.NoError(t, err)
		assert.NotNil(t, plans)
		assert.Empty(t, plans)
	})

	t.Run("Not found passes through", func(t *testing.T) {
		mockPlanRepo.EXPECT().GetPlan(mock.Anything, int64(9)).Return(nil, domain.ErrPlanNotFound).Once()

		_, err := svc.GetPlan(ctx, 9)
		assert.Equal(t, domain.ErrPlanNotFound, err)
	})

	t.Run("Storage error is wrapped", func(t *testing.T) {
		dbErr := errors.New("db error")
		mockPlanRepo.EXPECT().DeletePlan(mock.Anything, int64(9)).Return(dbErr).Once()

		err := svc.DeletePlan(ctx, 9)
		assert.ErrorIs(t, err, dbErr)
		assert.ErrorContains(t, err, "catalog service")
	})
}
