package service

import (
	"context"
	"strings"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PromoService реализует domain.PromoService
type PromoService struct {
	promoRepo domain.PromoRepository
	now       func() time.Time
}

// NewPromoService создает новый PromoService. now задает текущее время для проверки срока действия.
func NewPromoService(promoRepo domain.PromoRepository, now func() time.Time) *PromoService {
	if now == nil {
		now = time.Now
	}
	return &PromoService{promoRepo: promoRepo, now: now}
}

// NormalizeCode приводит промокод к каноническому виду
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Discount считает скидку промокода для цены: процент или фиксированная сумма,
// округление до копеек, не больше самой цены.
func Discount(promo *domain.Promo, price decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch promo.Kind {
	case domain.DiscountPercentage:
		d = price.Mul(promo.Value).Div(hundred)
	case domain.DiscountFlat:
		d = promo.Value
	}

	d = d.Round(2)
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(price) {
		return price
	}
	return d
}

// Validate проверяет промокод для одного тарифа без расхода использований
func (s *PromoService) Validate(ctx context.Context, req domain.ValidatePromoRequest) (*domain.PromoQuote, error) {
	if NormalizeCode(req.Code) == "" {
		return nil, domain.NewValidationError("code", "is required")
	}
	if req.PlanID <= 0 {
		return nil, domain.NewValidationError("planId", "is required")
	}

	return s.Quote(ctx, req.Code, []int64{req.PlanID}, req.Price)
}

// Quote проверяет промокод для набора тарифов и считает итог.
// Проверки идут в порядке: существование, срок, лимит, применимость.
func (s *PromoService) Quote(ctx context.Context, code string, planIDs []int64, price decimal.Decimal) (*domain.PromoQuote, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, domain.NewValidationError("code", "is required")
	}
	if price.IsNegative() {
		return nil, domain.NewValidationError("price", "must not be negative")
	}

	promo, err := s.promoRepo.GetActivePromoByCode(ctx, code)
	if err != nil {
		return nil, wrap(err, "promo service: failed to get promo %q", code)
	}

	if promo.ExpiryDate != nil && s.now().After(*promo.ExpiryDate) {
		return nil, domain.ErrPromoExpired
	}
	if promo.UsageLimit != nil && promo.UsedCount >= *promo.UsageLimit {
		return nil, domain.ErrPromoLimitReached
	}

	applicable := false
	for _, id := range planIDs {
		if promo.AppliesTo(id) {
			applicable = true
			break
		}
	}
	if !applicable {
		return nil, domain.ErrPromoNotApplicable
	}

	discount := Discount(promo, price)
	return &domain.PromoQuote{
		PromoID:        promo.ID,
		Code:           promo.Code,
		DiscountAmount: discount,
		FinalPrice:     price.Sub(discount),
	}, nil
}

// ListPromos возвращает все промокоды
func (s *PromoService) ListPromos(ctx context.Context) ([]*domain.Promo, error) {
	promos, err := s.promoRepo.ListPromos(ctx)
	if err != nil {
		return nil, wrap(err, "promo service: failed to list promos")
	}
	if promos == nil {
		promos = []*domain.Promo{}
	}
	return promos, nil
}

// CreatePromo создает промокод
func (s *PromoService) CreatePromo(ctx context.Context, promo *domain.Promo) (*domain.Promo, error) {
	if err := validatePromo(promo); err != nil {
		return nil, err
	}

	created, err := s.promoRepo.CreatePromo(ctx, promo)
	if err != nil {
		return nil, wrap(err, "promo service: failed to create promo %q", promo.Code)
	}
	return created, nil
}

// UpdatePromo изменяет промокод
func (s *PromoService) UpdatePromo(ctx context.Context, promo *domain.Promo) error {
	if err := validatePromo(promo); err != nil {
		return err
	}

	if err := s.promoRepo.UpdatePromo(ctx, promo); err != nil {
		return wrap(err, "promo service: failed to update promo %d", promo.ID)
	}
	return nil
}

// DeletePromo удаляет промокод
func (s *PromoService) DeletePromo(ctx context.Context, id int64) error {
	if err := s.promoRepo.DeletePromo(ctx, id); err != nil {
		return wrap(err, "promo service: failed to delete promo %d", id)
	}
	return nil
}

func validatePromo(promo *domain.Promo) error {
	promo.Code = NormalizeCode(promo.Code)

	switch {
	case promo.Code == "":
		return domain.NewValidationError("code", "is required")
	case promo.Kind != domain.DiscountPercentage && promo.Kind != domain.DiscountFlat:
		return domain.NewValidationError("type", "must be percentage or flat")
	case promo.Value.IsNegative():
		return domain.NewValidationError("value", "must not be negative")
	case promo.Kind == domain.DiscountPercentage && promo.Value.GreaterThan(hundred):
		return domain.NewValidationError("value", "percentage must not exceed 100")
	case promo.UsageLimit != nil && *promo.UsageLimit < 0:
		return domain.NewValidationError("usageLimit", "must not be negative")
	}

	return nil
}
