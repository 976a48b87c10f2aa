package handlers

import (
	"net/http"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PlansHandler обслуживает каталог тарифов
type PlansHandler struct {
	catalog domain.CatalogService
	logger  *zap.Logger
}

func NewPlansHandler(catalog domain.CatalogService, logger *zap.Logger) *PlansHandler {
	return &PlansHandler{
		catalog: catalog,
		logger:  logger,
	}
}

type planRequest struct {
	Name       string          `json:"name" validate:"required"`
	Type       domain.PlanType `json:"type" validate:"required,oneof=bot vps"`
	Processor  *string         `json:"processor"`
	CategoryID *int64          `json:"categoryId"`
	Price      decimal.Decimal `json:"price"`
	Features   []string        `json:"features" validate:"required,min=1"`
	IsActive   *bool           `json:"isActive"`
}

func (req planRequest) plan(id int64) *domain.Plan {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &domain.Plan{
		ID:         id,
		Name:       req.Name,
		Type:       req.Type,
		Processor:  req.Processor,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Features:   req.Features,
		IsActive:   active,
	}
}

type plansResponse struct {
	Plans []*domain.Plan `json:"plans"`
}

type planResponse struct {
	Plan *domain.Plan `json:"plan"`
}

func (h *PlansHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.catalog.ListPlans(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to list plans")
		return
	}
	if plans == nil {
		plans = []*domain.Plan{}
	}
	writeJSON(w, h.logger, http.StatusOK, plansResponse{Plans: plans})
}

func (h *PlansHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, err, "invalid plan id")
		return
	}

	plan, err := h.catalog.GetPlan(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err, "failed to get plan", zap.Int64("plan_id", id))
		return
	}
	writeJSON(w, h.logger, http.StatusOK, planResponse{Plan: plan})
}

func (h *PlansHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err, "invalid plan request")
		return
	}

	plan, err := h.catalog.CreatePlan(r.Context(), req.plan(0))
	if err != nil {
		writeError(w, h.logger, err, "failed to create plan")
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, createdResponse{Message: "Plan created successfully", ID: plan.ID})
}

func (h *PlansHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, err, "invalid plan id")
		return
	}

	var req planRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err, "invalid plan request")
		return
	}

	if err := h.catalog.UpdatePlan(r.Context(), req.plan(id)); err != nil {
		writeError(w, h.logger, err, "failed to update plan", zap.Int64("plan_id", id))
		return
	}
	writeMessage(w, h.logger, http.StatusOK, "Plan updated successfully")
}

func (h *PlansHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, err, "invalid plan id")
		return
	}

	if err := h.catalog.DeletePlan(r.Context(), id); err != nil {
		writeError(w, h.logger, err, "failed to delete plan", zap.Int64("plan_id", id))
		return
	}
	writeMessage(w, h.logger, http.StatusOK, "Plan deleted successfully")
}
