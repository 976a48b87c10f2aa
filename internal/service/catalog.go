package service

import (
	"context"
	"strings"

	"github.com/avc/hosting-storefront/internal/domain"
)

// CatalogService реализует domain.CatalogService
type CatalogService struct {
	planRepo domain.PlanRepository
}

// NewCatalogService создает новый CatalogService
func NewCatalogService(planRepo domain.PlanRepository) *CatalogService {
	return &CatalogService{planRepo: planRepo}
}

// ListPlans возвращает каталог
func (s *CatalogService) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	plans, err := s.planRepo.ListPlans(ctx)
	if err != nil {
		return nil, wrap(err, "catalog service: failed to list plans")
	}
	if plans == nil {
		plans = []*domain.Plan{}
	}
	return plans, nil
}

// GetPlan возвращает тариф по ID
func (s *CatalogService) GetPlan(ctx context.Context, id int64) (*domain.Plan, error) {
	plan, err := s.planRepo.GetPlan(ctx, id)
	if err != nil {
		return nil, wrap(err, "catalog service: failed to get plan %d", id)
	}
	return plan, nil
}

// CreatePlan добавляет тариф в каталог
func (s *CatalogService) CreatePlan(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	if err := validatePlan(plan); err != nil {
		return nil, err
	}

	created, err := s.planRepo.CreatePlan(ctx, plan)
	if err != nil {
		return nil, wrap(err, "catalog service: failed to create plan %q", plan.Name)
	}
	return created, nil
}

// UpdatePlan изменяет тариф
func (s *CatalogService) UpdatePlan(ctx context.Context, plan *domain.Plan) error {
	if err := validatePlan(plan); err != nil {
		return err
	}

	if err := s.planRepo.UpdatePlan(ctx, plan); err != nil {
		return wrap(err, "catalog service: failed to update plan %d", plan.ID)
	}
	return nil
}

// DeletePlan удаляет тариф
func (s *CatalogService) DeletePlan(ctx context.Context, id int64) error {
	if err := s.planRepo.DeletePlan(ctx, id); err != nil {
		return wrap(err, "catalog service: failed to delete plan %d", id)
	}
	return nil
}

func validatePlan(plan *domain.Plan) error {
	plan.Name = strings.TrimSpace(plan.Name)

	features := plan.Features[:0]
	for _, f := range plan.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	plan.Features = features

	switch {
	case plan.Name == "":
		return domain.NewValidationError("name", "is required")
	case plan.Type != domain.PlanTypeBot && plan.Type != domain.PlanTypeVPS:
		return domain.NewValidationError("type", "must be bot or vps")
	case !plan.Price.IsPositive():
		return domain.NewValidationError("price", "must be greater than zero")
	case len(plan.Features) == 0:
		return domain.NewValidationError("features", "at least one feature is required")
	}

	return nil
}
