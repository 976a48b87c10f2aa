package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, user_id, items, original_price, promo_code, discount_amount, final_price,
	payment_screenshot, transaction_id, status, rejection_reason, vps_details, renewal_date, created_at, updated_at`

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// orderScanTargets возвращает приемники колонок orderColumns
func orderScanTargets(o *domain.Order, items, vps *[]byte) []any {
	return []any{
		&o.ID, &o.UserID, items, &o.OriginalPrice, &o.PromoCode, &o.DiscountAmount, &o.FinalPrice,
		&o.PaymentScreenshot, &o.TransactionID, &o.Status, &o.RejectionReason, vps, &o.RenewalDate,
		&o.CreatedAt, &o.UpdatedAt,
	}
}

func decodeOrder(o *domain.Order, items, vps []byte) error {
	o.Items = []domain.LineItem{}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return fmt.Errorf("repository: failed to decode items of order %d: %w", o.ID, err)
		}
	}

	if len(vps) > 0 {
		o.VPSDetails = &domain.VPSDetails{}
		if err := json.Unmarshal(vps, o.VPSDetails); err != nil {
			return fmt.Errorf("repository: failed to decode vps details of order %d: %w", o.ID, err)
		}
	}

	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := &domain.Order{}
	var items, vps []byte

	if err := row.Scan(orderScanTargets(order, &items, &vps)...); err != nil {
		return nil, err
	}
	if err := decodeOrder(order, items, vps); err != nil {
		return nil, err
	}

	return order, nil
}

// CreateOrder создает заказ. При заданном promoID слот промокода расходуется
// в той же транзакции; если слот занять не удалось, заказ не сохраняется.
func (r *OrderRepository) CreateOrder(ctx context.Context, o *domain.Order, promoID *int64) (*domain.Order, error) {
	items, err := jsonArg(o.Items)
	if err != nil {
		return nil, err
	}

	var created *domain.Order
	err = inTx(ctx, r.db, func(tx pgx.Tx) error {
		if promoID != nil {
			applied, err := consumePromoUsage(ctx, tx, *promoID)
			if err != nil {
				return err
			}
			if !applied {
				return domain.ErrPromoLimitReached
			}
		}

		order, err := scanOrder(tx.QueryRow(ctx,
			`INSERT INTO orders (user_id, items, original_price, promo_code, discount_amount, final_price, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING `+orderColumns,
			o.UserID, items, o.OriginalPrice, o.PromoCode, o.DiscountAmount, o.FinalPrice, domain.OrderStatusPendingUpload,
		))
		if err != nil {
			return fmt.Errorf("repository: failed to create order for user %d: %w", o.UserID, err)
		}
		created = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetOrderByID получает заказ по ID
func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %d: %w", id, err)
	}

	return order, nil
}

// GetOrdersByUserID получает все заказы пользователя, новые первыми
func (r *OrderRepository) GetOrdersByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get orders for user %d: %w", userID, err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: failed to iterate orders: %w", err)
	}

	return orders, nil
}

// ListOrders возвращает все заказы с данными клиентов
func (r *OrderRepository) ListOrders(ctx context.Context) ([]*domain.OrderView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT o.id, o.user_id, o.items, o.original_price, o.promo_code, o.discount_amount, o.final_price,
		        o.payment_screenshot, o.transaction_id, o.status, o.rejection_reason, o.vps_details,
		        o.renewal_date, o.created_at, o.updated_at, u.full_name, u.email
		 FROM orders o
		 JOIN users u ON u.id = o.user_id
		 ORDER BY o.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list orders: %w", err)
	}
	defer rows.Close()

	var views []*domain.OrderView
	for rows.Next() {
		view := &domain.OrderView{}
		var items, vps []byte

		targets := append(orderScanTargets(&view.Order, &items, &vps), &view.UserName, &view.UserEmail)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		if err := decodeOrder(&view.Order, items, vps); err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: failed to iterate orders: %w", err)
	}

	return views, nil
}

// AttachPayment сохраняет подтверждение оплаты, если заказ принадлежит
// пользователю и ожидает оплату.
func (r *OrderRepository) AttachPayment(ctx context.Context, id, userID int64, screenshot string, transactionID *string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET payment_screenshot = $3, transaction_id = $4, status = $5, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2 AND status = $6`,
		id, userID, screenshot, transactionID, domain.OrderStatusPaymentUploaded, domain.OrderStatusPendingUpload,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to attach payment to order %d: %w", id, err)
	}

	return tag.RowsAffected() == 1, nil
}

// Activate активирует заказ из статуса from
func (r *OrderRepository) Activate(ctx context.Context, id int64, from domain.OrderStatus, details domain.VPSDetails, renewalDate time.Time) (bool, error) {
	vps, err := jsonArg(details)
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET status = $3, vps_details = $4, renewal_date = $5, rejection_reason = NULL, updated_at = NOW()
		 WHERE id = $1 AND status = $2`,
		id, from, domain.OrderStatusActive, vps, renewalDate,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to activate order %d: %w", id, err)
	}

	return tag.RowsAffected() == 1, nil
}

// Reject отклоняет заказ из статуса from с указанием причины
func (r *OrderRepository) Reject(ctx context.Context, id int64, from domain.OrderStatus, reason string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET status = $3, rejection_reason = $4, updated_at = NOW()
		 WHERE id = $1 AND status = $2`,
		id, from, domain.OrderStatusRejected, reason,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to reject order %d: %w", id, err)
	}

	return tag.RowsAffected() == 1, nil
}

// DeleteOrder удаляет заказ пользователя, если он в одном из статусов statuses
func (r *OrderRepository) DeleteOrder(ctx context.Context, id, userID int64, statuses []domain.OrderStatus) (bool, error) {
	allowed := make([]string, len(statuses))
	for i, s := range statuses {
		allowed[i] = string(s)
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM orders
		 WHERE id = $1 AND user_id = $2 AND status = ANY($3)`,
		id, userID, allowed,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to delete order %d: %w", id, err)
	}

	return tag.RowsAffected() == 1, nil
}

// ExpireOrders переводит активные заказы с датой продления раньше before в expired
func (r *OrderRepository) ExpireOrders(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET status = $1, updated_at = NOW()
		 WHERE status = $2 AND renewal_date < $3`,
		domain.OrderStatusExpired, domain.OrderStatusActive, before,
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to expire orders: %w", err)
	}

	return tag.RowsAffected(), nil
}

const managedSelect = `SELECT o.id, u.full_name, u.email, o.items, o.created_at, o.renewal_date, o.final_price, o.status
	 FROM orders o
	 JOIN users u ON u.id = o.user_id`

// ListActive возвращает активные заказы по дате продления
func (r *OrderRepository) ListActive(ctx context.Context) ([]*domain.ManagedOrder, error) {
	rows, err := r.db.Query(ctx,
		managedSelect+`
		 WHERE o.status = $1
		 ORDER BY o.renewal_date ASC NULLS LAST`,
		domain.OrderStatusActive,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list active orders: %w", err)
	}

	return collectManaged(rows, time.Time{})
}

// ListExpired возвращает активные заказы, чья дата продления раньше before
func (r *OrderRepository) ListExpired(ctx context.Context, before time.Time) ([]*domain.ManagedOrder, error) {
	rows, err := r.db.Query(ctx,
		managedSelect+`
		 WHERE o.status = $1 AND o.renewal_date < $2
		 ORDER BY o.renewal_date ASC`,
		domain.OrderStatusActive, before,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list expired orders: %w", err)
	}

	return collectManaged(rows, before)
}

// collectManaged читает проекции заказов. При ненулевом today
// вычисляется число полных дней с даты продления.
func collectManaged(rows pgx.Rows, today time.Time) ([]*domain.ManagedOrder, error) {
	defer rows.Close()

	var result []*domain.ManagedOrder
	for rows.Next() {
		m := &domain.ManagedOrder{}
		var itemsRaw []byte

		if err := rows.Scan(
			&m.ID, &m.Customer, &m.CustomerEmail, &itemsRaw, &m.OrderDate, &m.RenewalDate, &m.Amount, &m.Status,
		); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}

		order := domain.Order{ID: m.ID}
		if err := decodeOrder(&order, itemsRaw, nil); err != nil {
			return nil, err
		}
		m.Plan = order.PlanNames()
		if len(order.Items) > 0 {
			m.PlanType = order.Items[0].Type
		}

		if !today.IsZero() && m.RenewalDate != nil {
			m.DaysSinceExpiry = int(today.Sub(*m.RenewalDate).Hours() / 24)
		}

		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: failed to iterate orders: %w", err)
	}

	return result, nil
}
