package notify

import (
	"context"
	"errors"

	"github.com/avc/hosting-storefront/internal/domain"
)

// Multi рассылает событие всем уведомителям и объединяет ошибки
type Multi []domain.Notifier

// Notify вызывает каждый уведомитель, даже если предыдущий вернул ошибку
func (m Multi) Notify(ctx context.Context, event domain.OrderEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
