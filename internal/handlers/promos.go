package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PromosHandler обслуживает проверку и администрирование промокодов
type PromosHandler struct {
	promos domain.PromoService
	logger *zap.Logger
}

func NewPromosHandler(promos domain.PromoService, logger *zap.Logger) *PromosHandler {
	return &PromosHandler{
		promos: promos,
		logger: logger,
	}
}

type validatePromoRequest struct {
	Code   string           `json:"code" validate:"required"`
	PlanID int64            `json:"planId" validate:"required,gt=0"`
	Price  *decimal.Decimal `json:"price"`
}

type validatePromoResponse struct {
	Valid bool `json:"valid"`
	*domain.PromoQuote
}

type promosResponse struct {
	Promos []*domain.Promo `json:"promos"`
}

type promoRequest struct {
	Code            string              `json:"code" validate:"required"`
	Kind            domain.DiscountKind `json:"type" validate:"required,oneof=percentage flat"`
	Value           decimal.Decimal     `json:"value"`
	ExpiryDate      string              `json:"expiryDate"`
	UsageLimit      *int                `json:"usageLimit" validate:"omitempty,gte=0"`
	ApplicablePlans []int64             `json:"applicablePlans"`
	IsActive        *bool               `json:"isActive"`
}

func (req promoRequest) promo(id int64) (*domain.Promo, error) {
	// Пустая дата означает бессрочный промокод
	var expiry *time.Time
	if strings.TrimSpace(req.ExpiryDate) != "" {
		t, err := parseDate("expiryDate", strings.TrimSpace(req.ExpiryDate))
		if err != nil {
			return nil, err
		}
		expiry = &t
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	plans := req.ApplicablePlans
	if plans == nil {
		plans = []int64{}
	}
	return &domain.Promo{
		ID:              id,
		Code:            req.Code,
		Kind:            req.Kind,
		Value:           req.Value,
		ExpiryDate:      expiry,
		UsageLimit:      req.UsageLimit,
		ApplicablePlans: plans,
		IsActive:        active,
	}, nil
}

// Validate считает скидку без расхода использований
func (h *PromosHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validatePromoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err, "invalid promo validation request")
		return
	}
	if req.Price == nil {
		writeError(w, h.logger, domain.NewValidationError("price", "is required"), "invalid promo validation request")
		return
	}

	quote, err := h.promos.Validate(r.Context(), domain.ValidatePromoRequest{
		Code:   req.Code,
		PlanID: req.PlanID,
		Price:  *req.Price,
	})
	if err != nil {
		writeError(w, h.logger, err, "failed to validate promo", zap.String("promo_code", req.Code))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, validatePromoResponse{Valid: true, PromoQuote: quote})
}

func (h *PromosHandler) List(w http.ResponseWriter, r *http.Request) {
	promos, err := h.promos.ListPromos(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to list promos")
		return
	}
	if promos == nil {
		promos = []*domain.Promo{}
	}
	writeJSON(w, h.logger, http.StatusOK, promosResponse{Promos: promos})
}

func (h *PromosHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req promoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err, "invalid promo request")
		return
	}

	promo, err := req.promo(0)
	if err != nil {
		writeError(w, h.logger, err, "invalid promo request")
		return
	}

	created, err := h.promos.CreatePromo(r.Context(), promo)
	if err != nil {
		writeError(w, h.logger, err, "failed to create promo", zap.String("promo_code", req.Code))
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, createdResponse{Message: "Promo created successfully", ID: created.ID})
}

func (h *PromosHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, err, "invalid promo id")
		return
	}

	var req promoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err, "invalid promo request")
		return
	}

	promo, err := req.promo(id)
	if err != nil {
		writeError(w, h.logger, err, "invalid promo request")
		return
	}

	if err := h.promos.UpdatePromo(r.Context(), promo); err != nil {
		writeError(w, h.logger, err, "failed to update promo", zap.Int64("promo_id", id))
		return
	}
	writeMessage(w, h.logger, http.StatusOK, "Promo code updated successfully")
}

func (h *PromosHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, err, "invalid promo id")
		return
	}

	if err := h.promos.DeletePromo(r.Context(), id); err != nil {
		writeError(w, h.logger, err, "failed to delete promo", zap.Int64("promo_id", id))
		return
	}
	writeMessage(w, h.logger, http.StatusOK, "Promo code deleted successfully")
}
