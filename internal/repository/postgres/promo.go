package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
)

const promoColumns = `id, code, type, value, expiry_date, usage_limit, used_count, applicable_plans, is_active, created_at`

// PromoRepository реализует репозиторий промокодов.
type PromoRepository struct {
	db DBTX
}

// NewPromoRepository создает новый PromoRepository
func NewPromoRepository(db DBTX) *PromoRepository {
	return &PromoRepository{db: db}
}

func scanPromo(row pgx.Row) (*domain.Promo, error) {
	promo := &domain.Promo{}
	var plans []byte

	if err := row.Scan(
		&promo.ID, &promo.Code, &promo.Kind, &promo.Value, &promo.ExpiryDate,
		&promo.UsageLimit, &promo.UsedCount, &plans, &promo.IsActive, &promo.CreatedAt,
	); err != nil {
		return nil, err
	}

	promo.ApplicablePlans = []int64{}
	if len(plans) > 0 {
		if err := json.Unmarshal(plans, &promo.ApplicablePlans); err != nil {
			return nil, fmt.Errorf("repository: failed to decode applicable plans of promo %d: %w", promo.ID, err)
		}
	}

	return promo, nil
}

// consumePromoUsage занимает один слот использования промокода.
// Возвращает false, если промокод неактивен или лимит исчерпан.
func consumePromoUsage(ctx context.Context, db DBTX, promoID int64) (bool, error) {
	tag, err := db.Exec(ctx,
		`UPDATE promos
		 SET used_count = used_count + 1
		 WHERE id = $1 AND is_active AND (usage_limit IS NULL OR used_count < usage_limit)`,
		promoID,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to consume usage of promo %d: %w", promoID, err)
	}

	return tag.RowsAffected() == 1, nil
}

// GetActivePromoByCode получает активный промокод по коду
func (r *PromoRepository) GetActivePromoByCode(ctx context.Context, code string) (*domain.Promo, error) {
	promo, err := scanPromo(r.db.QueryRow(ctx,
		`SELECT `+promoColumns+`
		 FROM promos
		 WHERE code = $1 AND is_active`,
		code,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPromoNotFound
		}
		return nil, fmt.Errorf("repository: failed to get promo %q: %w", code, err)
	}

	return promo, nil
}

// ListPromos возвращает все промокоды, новые первыми
func (r *PromoRepository) ListPromos(ctx context.Context) ([]*domain.Promo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+promoColumns+`
		 FROM promos
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list promos: %w", err)
	}
	defer rows.Close()

	var promos []*domain.Promo
	for rows.Next() {
		promo, err := scanPromo(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan promo: %w", err)
		}
		promos = append(promos, promo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: failed to iterate promos: %w", err)
	}

	return promos, nil
}

// CreatePromo создает промокод
func (r *PromoRepository) CreatePromo(ctx context.Context, p *domain.Promo) (*domain.Promo, error) {
	plans, err := jsonArg(applicablePlans(p))
	if err != nil {
		return nil, err
	}

	promo, err := scanPromo(r.db.QueryRow(ctx,
		`INSERT INTO promos (code, type, value, expiry_date, usage_limit, applicable_plans, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+promoColumns,
		p.Code, p.Kind, p.Value, p.ExpiryDate, p.UsageLimit, plans, p.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrPromoExists
		}
		return nil, fmt.Errorf("repository: failed to create promo %q: %w", p.Code, err)
	}

	return promo, nil
}

// UpdatePromo обновляет промокод. Счетчик использований не меняется.
func (r *PromoRepository) UpdatePromo(ctx context.Context, p *domain.Promo) error {
	plans, err := jsonArg(applicablePlans(p))
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE promos
		 SET code = $2, type = $3, value = $4, expiry_date = $5, usage_limit = $6, applicable_plans = $7, is_active = $8
		 WHERE id = $1`,
		p.ID, p.Code, p.Kind, p.Value, p.ExpiryDate, p.UsageLimit, plans, p.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPromoExists
		}
		return fmt.Errorf("repository: failed to update promo %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPromoNotFound
	}

	return nil
}

// DeletePromo удаляет промокод
func (r *PromoRepository) DeletePromo(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM promos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete promo %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPromoNotFound
	}

	return nil
}

func applicablePlans(p *domain.Promo) []int64 {
	if p.ApplicablePlans == nil {
		return []int64{}
	}
	return p.ApplicablePlans
}
