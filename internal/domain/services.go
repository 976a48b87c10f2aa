package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest данные для создания заказа
type CreateOrderRequest struct {
	PlanIDs   []int64
	PromoCode string
}

// CreateOrderResult созданный заказ и исход применения промокода
type CreateOrderResult struct {
	Order        *Order
	PromoOutcome PromoOutcome
}

// PaymentUpload данные загруженного подтверждения оплаты
type PaymentUpload struct {
	ScreenshotRef string
	ScreenshotURL string
	TransactionID string
}

// VerifyRequest данные для активации заказа
type VerifyRequest struct {
	VPSDetails  VPSDetails
	RenewalDate time.Time
}

// ValidatePromoRequest запрос на предпросмотр скидки
type ValidatePromoRequest struct {
	Code   string
	PlanID int64
	Price  decimal.Decimal
}

// PromoQuote результат проверки промокода
type PromoQuote struct {
	PromoID        int64           `json:"-"`
	Code           string          `json:"promoCode"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	FinalPrice     decimal.Decimal `json:"finalPrice"`
}

// PaymentQR QR-код оплаты заказа
type PaymentQR struct {
	QRCode string          `json:"qrCode"`
	Amount decimal.Decimal `json:"amount"`
}

// OrderService определяет жизненный цикл заказа
type OrderService interface {
	CreateOrder(ctx context.Context, userID int64, req CreateOrderRequest) (*CreateOrderResult, error)
	GetOrder(ctx context.Context, orderID int64, requester Identity) (*Order, error)
	GetPaymentQR(ctx context.Context, orderID int64, requester Identity) (*PaymentQR, error)
	UploadPayment(ctx context.Context, orderID, requesterID int64, upload PaymentUpload) error
	VerifyOrder(ctx context.Context, orderID int64, admin Identity, req VerifyRequest) error
	RejectOrder(ctx context.Context, orderID int64, admin Identity, reason string) error
	CancelOrder(ctx context.Context, orderID, requesterID int64) error
	ListUserOrders(ctx context.Context, userID int64, requester Identity) ([]*Order, error)
	ListAllOrders(ctx context.Context) ([]*OrderView, error)
	ListActive(ctx context.Context) ([]*ManagedOrder, error)
	ListExpired(ctx context.Context) ([]*ManagedOrder, error)
	SweepExpired(ctx context.Context) (int64, error)
}

// PromoService определяет проверку и администрирование промокодов
type PromoService interface {
	Validate(ctx context.Context, req ValidatePromoRequest) (*PromoQuote, error)
	// Quote проверяет промокод для заказа из нескольких тарифов: он применим,
	// если в списке есть хотя бы один из planIDs.
	Quote(ctx context.Context, code string, planIDs []int64, price decimal.Decimal) (*PromoQuote, error)
	ListPromos(ctx context.Context) ([]*Promo, error)
	CreatePromo(ctx context.Context, promo *Promo) (*Promo, error)
	UpdatePromo(ctx context.Context, promo *Promo) error
	DeletePromo(ctx context.Context, id int64) error
}

// CatalogService определяет чтение и администрирование каталога
type CatalogService interface {
	ListPlans(ctx context.Context) ([]*Plan, error)
	GetPlan(ctx context.Context, id int64) (*Plan, error)
	CreatePlan(ctx context.Context, plan *Plan) (*Plan, error)
	UpdatePlan(ctx context.Context, plan *Plan) error
	DeletePlan(ctx context.Context, id int64) error
}

// AnalyticsService определяет сводку для админ-панели
type AnalyticsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
