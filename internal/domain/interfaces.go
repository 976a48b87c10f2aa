package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

// PlanRepository определяет методы каталога тарифов
type PlanRepository interface {
	GetPlan(ctx context.Context, id int64) (*Plan, error)
	GetPlansByIDs(ctx context.Context, ids []int64) ([]*Plan, error)
	IsPlanActive(ctx context.Context, id int64) (bool, error)
	ListPlans(ctx context.Context) ([]*Plan, error)
	CreatePlan(ctx context.Context, plan *Plan) (*Plan, error)
	UpdatePlan(ctx context.Context, plan *Plan) error
	DeletePlan(ctx context.Context, id int64) error
}

// PromoRepository определяет методы для работы с промокодами
type PromoRepository interface {
	GetActivePromoByCode(ctx context.Context, code string) (*Promo, error)
	ListPromos(ctx context.Context) ([]*Promo, error)
	CreatePromo(ctx context.Context, promo *Promo) (*Promo, error)
	UpdatePromo(ctx context.Context, promo *Promo) error
	DeletePromo(ctx context.Context, id int64) error
}

// OrderRepository определяет методы для работы с заказами.
// Методы переходов возвращают applied=false, если условие на текущий статус не выполнилось.
type OrderRepository interface {
	// CreateOrder сохраняет заказ. Если promoID задан, в той же транзакции
	// расходуется один слот промокода; если слотов нет, возвращается
	// ErrPromoLimitReached и ничего не сохраняется.
	CreateOrder(ctx context.Context, order *Order, promoID *int64) (*Order, error)
	GetOrderByID(ctx context.Context, id int64) (*Order, error)
	GetOrdersByUserID(ctx context.Context, userID int64) ([]*Order, error)
	ListOrders(ctx context.Context) ([]*OrderView, error)
	AttachPayment(ctx context.Context, id, userID int64, screenshot string, transactionID *string) (bool, error)
	Activate(ctx context.Context, id int64, from OrderStatus, details VPSDetails, renewalDate time.Time) (bool, error)
	Reject(ctx context.Context, id int64, from OrderStatus, reason string) (bool, error)
	DeleteOrder(ctx context.Context, id, userID int64, statuses []OrderStatus) (bool, error)
	ExpireOrders(ctx context.Context, before time.Time) (int64, error)
	ListActive(ctx context.Context) ([]*ManagedOrder, error)
	ListExpired(ctx context.Context, before time.Time) ([]*ManagedOrder, error)
}

// AnalyticsRepository определяет агрегаты для админ-панели
type AnalyticsRepository interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

// Notifier доставляет события заказа во внешний канал
type Notifier interface {
	Notify(ctx context.Context, event OrderEvent) error
}

// EventPublisher принимает события без блокировки вызывающего
type EventPublisher interface {
	Publish(ctx context.Context, event OrderEvent)
}

// BlobStore хранит скриншоты оплаты
type BlobStore interface {
	Save(ctx context.Context, ext string, data []byte) (string, error)
	Delete(ctx context.Context, ref string) error
}

// QRGenerator строит QR-код оплаты на сумму
type QRGenerator interface {
	PaymentQR(amount decimal.Decimal) (string, error)
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (string, *User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	CurrentUser(ctx context.Context, userID int64) (*User, error)
}

// RegisterRequest данные регистрации
type RegisterRequest struct {
	FullName    string
	Email       string
	PhoneNumber string
	DiscordID   string
	Password    string
}
