package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	gocache "github.com/patrickmn/go-cache"
)

const listKey = "plans:all"

// PlanRepository кэширует чтение каталога поверх другого domain.PlanRepository.
// Любая запись сбрасывает кэш целиком.
type PlanRepository struct {
	next  domain.PlanRepository
	cache *gocache.Cache
}

// NewPlanRepository создает кэширующий PlanRepository с временем жизни ttl
func NewPlanRepository(next domain.PlanRepository, ttl time.Duration) *PlanRepository {
	return &PlanRepository{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func planKey(id int64) string {
	return "plan:" + strconv.FormatInt(id, 10)
}

func (r *PlanRepository) cached(id int64) (*domain.Plan, bool) {
	if x, found := r.cache.Get(planKey(id)); found {
		return x.(*domain.Plan), true
	}
	return nil, false
}

func (r *PlanRepository) store(plan *domain.Plan) {
	r.cache.Set(planKey(plan.ID), plan, gocache.DefaultExpiration)
}

// GetPlan возвращает тариф из кэша или из хранилища
func (r *PlanRepository) GetPlan(ctx context.Context, id int64) (*domain.Plan, error) {
	if plan, ok := r.cached(id); ok {
		return plan, nil
	}

	plan, err := r.next.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(plan)

	return plan, nil
}

// GetPlansByIDs добирает из хранилища только отсутствующие в кэше тарифы
func (r *PlanRepository) GetPlansByIDs(ctx context.Context, ids []int64) ([]*domain.Plan, error) {
	found := make(map[int64]*domain.Plan, len(ids))
	seen := make(map[int64]bool, len(ids))
	var missing []int64

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if plan, ok := r.cached(id); ok {
			found[id] = plan
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		plans, err := r.next.GetPlansByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, plan := range plans {
			r.store(plan)
			found[plan.ID] = plan
		}
	}

	result := make([]*domain.Plan, 0, len(found))
	added := make(map[int64]bool, len(found))
	for _, id := range ids {
		if plan, ok := found[id]; ok && !added[id] {
			result = append(result, plan)
			added[id] = true
		}
	}

	return result, nil
}

// IsPlanActive проверяет флаг доступности тарифа
func (r *PlanRepository) IsPlanActive(ctx context.Context, id int64) (bool, error) {
	plan, err := r.GetPlan(ctx, id)
	if err != nil {
		return false, err
	}
	return plan.IsActive, nil
}

// ListPlans возвращает весь каталог
func (r *PlanRepository) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	if x, found := r.cache.Get(listKey); found {
		return x.([]*domain.Plan), nil
	}

	plans, err := r.next.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.Set(listKey, plans, gocache.DefaultExpiration)

	return plans, nil
}

// CreatePlan создает тариф и сбрасывает кэш
func (r *PlanRepository) CreatePlan(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	created, err := r.next.CreatePlan(ctx, plan)
	if err != nil {
		return nil, err
	}
	r.cache.Flush()

	return created, nil
}

// UpdatePlan обновляет тариф и сбрасывает кэш
func (r *PlanRepository) UpdatePlan(ctx context.Context, plan *domain.Plan) error {
	if err := r.next.UpdatePlan(ctx, plan); err != nil {
		return err
	}
	r.cache.Flush()

	return nil
}

// DeletePlan удаляет тариф и сбрасывает кэш
func (r *PlanRepository) DeletePlan(ctx context.Context, id int64) error {
	if err := r.next.DeletePlan(ctx, id); err != nil {
		return err
	}
	r.cache.Flush()

	return nil
}
