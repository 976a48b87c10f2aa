package domain

import (
	"errors"
	"fmt"
)

// Корневые виды ошибок. Конкретные ошибки оборачивают один из них,
// поэтому обработчики проверяют errors.Is по виду.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrExternal     = errors.New("external failure")
)

// kindError ошибка с текстом для клиента, относящаяся к одному из корневых видов
type kindError struct {
	msg  string
	root error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.root }

func kind(root error, msg string) error {
	return &kindError{msg: msg, root: root}
}

// Ошибки пользователей
var (
	ErrUserExists         = kind(ErrConflict, "user already exists")
	ErrUserNotFound       = kind(ErrNotFound, "user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Ошибки каталога
var (
	ErrPlanNotFound = kind(ErrNotFound, "plan not found")
)

// Ошибки промокодов
var (
	ErrPromoNotFound      = kind(ErrNotFound, "invalid promo code")
	ErrPromoExpired       = kind(ErrValidation, "promo code expired")
	ErrPromoLimitReached  = kind(ErrValidation, "promo code usage limit reached")
	ErrPromoNotApplicable = kind(ErrValidation, "promo code not applicable for this plan")
	ErrPromoExists        = kind(ErrConflict, "promo code already exists")
)

// Ошибки заказов
var (
	ErrOrderNotFound      = kind(ErrNotFound, "order not found")
	ErrOrderForbidden     = kind(ErrForbidden, "order owned by another user")
	ErrEmptyOrder         = kind(ErrValidation, "no items or plan provided")
	ErrMissingScreenshot  = kind(ErrValidation, "screenshot is required")
	ErrCannotCancel       = kind(ErrInvalidState, "cannot cancel order in current status")
	ErrCannotUpload       = kind(ErrInvalidState, "payment can only be uploaded for orders awaiting payment")
	ErrCannotReview       = kind(ErrInvalidState, "only orders with an uploaded payment can be reviewed")
	ErrAdminRequired      = kind(ErrForbidden, "admin access required")
	ErrQRGenerationFailed = kind(ErrExternal, "failed to generate QR code")
)

// ValidationError ошибка валидации конкретного поля
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap относит ошибку к виду ErrValidation
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError создает ошибку валидации поля
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
