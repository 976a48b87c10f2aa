package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
)

const planColumns = `id, name, type, processor, category_id, price, features, is_active, created_at`

// PlanRepository реализует каталог тарифов.
type PlanRepository struct {
	db DBTX
}

// NewPlanRepository создает новый PlanRepository
func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	plan := &domain.Plan{}
	var features []byte

	if err := row.Scan(
		&plan.ID, &plan.Name, &plan.Type, &plan.Processor, &plan.CategoryID,
		&plan.Price, &features, &plan.IsActive, &plan.CreatedAt,
	); err != nil {
		return nil, err
	}

	plan.Features = []string{}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &plan.Features); err != nil {
			return nil, fmt.Errorf("repository: failed to decode features of plan %d: %w", plan.ID, err)
		}
	}

	return plan, nil
}

func collectPlans(rows pgx.Rows) ([]*domain.Plan, error) {
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan plan: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: failed to iterate plans: %w", err)
	}

	return plans, nil
}

// GetPlan получает тариф по ID
func (r *PlanRepository) GetPlan(ctx context.Context, id int64) (*domain.Plan, error) {
	plan, err := scanPlan(r.db.QueryRow(ctx,
		`SELECT `+planColumns+`
		 FROM plans
		 WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("repository: failed to get plan %d: %w", id, err)
	}

	return plan, nil
}

// GetPlansByIDs получает существующие тарифы из списка ID.
// Несуществующие ID пропускаются.
func (r *PlanRepository) GetPlansByIDs(ctx context.Context, ids []int64) ([]*domain.Plan, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+planColumns+`
		 FROM plans
		 WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get plans by ids: %w", err)
	}

	return collectPlans(rows)
}

// IsPlanActive проверяет, доступен ли тариф для заказа
func (r *PlanRepository) IsPlanActive(ctx context.Context, id int64) (bool, error) {
	var active bool

	err := r.db.QueryRow(ctx,
		`SELECT is_active FROM plans WHERE id = $1`,
		id,
	).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, domain.ErrPlanNotFound
		}
		return false, fmt.Errorf("repository: failed to check plan %d: %w", id, err)
	}

	return active, nil
}

// ListPlans возвращает все тарифы, сгруппированные по типу и цене
func (r *PlanRepository) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+planColumns+`
		 FROM plans
		 ORDER BY type, price`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list plans: %w", err)
	}

	return collectPlans(rows)
}

// CreatePlan создает тариф
func (r *PlanRepository) CreatePlan(ctx context.Context, p *domain.Plan) (*domain.Plan, error) {
	features, err := jsonArg(p.Features)
	if err != nil {
		return nil, err
	}

	plan, err := scanPlan(r.db.QueryRow(ctx,
		`INSERT INTO plans (name, type, processor, category_id, price, features, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+planColumns,
		p.Name, p.Type, p.Processor, p.CategoryID, p.Price, features, p.IsActive,
	))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create plan %q: %w", p.Name, err)
	}

	return plan, nil
}

// UpdatePlan обновляет тариф. Заказы хранят снимок позиций и не меняются.
func (r *PlanRepository) UpdatePlan(ctx context.Context, p *domain.Plan) error {
	features, err := jsonArg(p.Features)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE plans
		 SET name = $2, type = $3, processor = $4, category_id = $5, price = $6, features = $7, is_active = $8
		 WHERE id = $1`,
		p.ID, p.Name, p.Type, p.Processor, p.CategoryID, p.Price, features, p.IsActive,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update plan %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlanNotFound
	}

	return nil
}

// DeletePlan удаляет тариф
func (r *PlanRepository) DeletePlan(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete plan %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlanNotFound
	}

	return nil
}
