package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role представляет роль пользователя
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// PlanType представляет тип тарифа
type PlanType string

const (
	PlanTypeBot PlanType = "bot"
	PlanTypeVPS PlanType = "vps"
)

// DiscountKind представляет тип скидки промокода
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFlat       DiscountKind = "flat"
)

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPendingUpload   OrderStatus = "pending_upload"
	OrderStatusPaymentUploaded OrderStatus = "payment_uploaded"
	OrderStatusActive          OrderStatus = "active"
	OrderStatusRejected        OrderStatus = "rejected"
	OrderStatusExpired         OrderStatus = "expired"
)

// CancellableStatuses статусы, из которых клиент может отменить заказ
var CancellableStatuses = []OrderStatus{OrderStatusPendingUpload, OrderStatusRejected}

// PromoOutcome результат применения промокода при создании заказа
type PromoOutcome string

const (
	PromoNone           PromoOutcome = "none"
	PromoApplied        PromoOutcome = "applied"
	PromoSkippedInvalid PromoOutcome = "skipped_invalid"
)

// Identity описывает вызывающего: кто он и с какой ролью
type Identity struct {
	UserID int64
	Role   Role
	Email  string
}

// IsAdmin сообщает, является ли вызывающий администратором
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// User представляет пользователя системы
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	DiscordID    *string   `json:"discordId,omitempty"`
	PasswordHash string    `json:"-"` // Не отправляем хеш в JSON
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Plan представляет тарифный план каталога
type Plan struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Type       PlanType        `json:"type"`
	Processor  *string         `json:"processor,omitempty"`
	CategoryID *int64          `json:"categoryId,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Features   []string        `json:"features"`
	IsActive   bool            `json:"isActive"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Promo представляет промокод
type Promo struct {
	ID              int64           `json:"id"`
	Code            string          `json:"code"`
	Kind            DiscountKind    `json:"type"`
	Value           decimal.Decimal `json:"value"`
	ExpiryDate      *time.Time      `json:"expiryDate,omitempty"`
	UsageLimit      *int            `json:"usageLimit,omitempty"`
	UsedCount       int             `json:"usedCount"`
	ApplicablePlans []int64         `json:"applicablePlans"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// AppliesTo сообщает, применим ли промокод к тарифу. Пустой список означает все тарифы.
func (p *Promo) AppliesTo(planID int64) bool {
	if len(p.ApplicablePlans) == 0 {
		return true
	}
	for _, id := range p.ApplicablePlans {
		if id == planID {
			return true
		}
	}
	return false
}

// LineItem снимок позиции заказа на момент создания
type LineItem struct {
	PlanID int64           `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Type   PlanType        `json:"type"`
}

// VPSDetails учетные данные выданного сервиса
type VPSDetails struct {
	IPAddress string `json:"ipAddress,omitempty"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	PanelLink string `json:"panelLink,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Order представляет заказ пользователя
type Order struct {
	ID                int64           `json:"id"`
	UserID            int64           `json:"userId"`
	Items             []LineItem      `json:"items"`
	OriginalPrice     decimal.Decimal `json:"originalPrice"`
	PromoCode         *string         `json:"promoCode"`
	DiscountAmount    decimal.Decimal `json:"discountAmount"`
	FinalPrice        decimal.Decimal `json:"finalPrice"`
	PaymentScreenshot *string         `json:"paymentScreenshot"`
	TransactionID     *string         `json:"transactionId"`
	Status            OrderStatus     `json:"status"`
	RejectionReason   *string         `json:"rejectionReason"`
	VPSDetails        *VPSDetails     `json:"vpsDetails"`
	RenewalDate       *time.Time      `json:"renewalDate"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// PlanNames возвращает имена тарифов заказа через запятую
func (o *Order) PlanNames() string {
	names := ""
	for i, item := range o.Items {
		if i > 0 {
			names += ", "
		}
		names += item.Name
	}
	return names
}

// OrderView заказ вместе с данными клиента для админки
type OrderView struct {
	Order
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// ManagedOrder проекция заказа для страницы менеджера
type ManagedOrder struct {
	ID              int64           `json:"id"`
	Customer        string          `json:"customer"`
	CustomerEmail   string          `json:"customerEmail"`
	Plan            string          `json:"plan"`
	PlanType        PlanType        `json:"planType"`
	OrderDate       time.Time       `json:"orderDate"`
	RenewalDate     *time.Time      `json:"renewalDate"`
	Amount          decimal.Decimal `json:"amount"`
	Status          OrderStatus     `json:"status"`
	DaysSinceExpiry int             `json:"daysSinceExpiry,omitempty"`
}

// PendingPayments агрегат неоплаченных заказов
type PendingPayments struct {
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// DashboardStats сводка для админ-панели
type DashboardStats struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalOrders     int64           `json:"totalOrders"`
	ActiveOrders    int64           `json:"activeOrders"`
	PendingPayments PendingPayments `json:"pendingPayments"`
	TotalUsers      int64           `json:"totalUsers"`
}

// EventKind тип события жизненного цикла заказа
type EventKind string

const (
	EventPaymentUploaded EventKind = "payment_uploaded"
	EventVerified        EventKind = "verified"
	EventRejected        EventKind = "rejected"
)

// OrderEvent событие для внешних уведомлений
type OrderEvent struct {
	Kind          EventKind `json:"kind"`
	Order         Order     `json:"order"`
	Customer      *User     `json:"customer,omitempty"`
	ScreenshotURL string    `json:"screenshotUrl,omitempty"`
	AdminEmail    string    `json:"adminEmail,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}
