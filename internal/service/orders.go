package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderService реализует domain.OrderService
type OrderService struct {
	orderRepo domain.OrderRepository
	planRepo  domain.PlanRepository
	userRepo  domain.UserRepository
	promos    domain.PromoService
	publisher domain.EventPublisher
	qr        domain.QRGenerator
	blobs     domain.BlobStore
	now       func() time.Time
	logger    *zap.Logger
}

// NewOrderService создает новый OrderService
func NewOrderService(
	orderRepo domain.OrderRepository,
	planRepo domain.PlanRepository,
	userRepo domain.UserRepository,
	promos domain.PromoService,
	publisher domain.EventPublisher,
	qr domain.QRGenerator,
	blobs domain.BlobStore,
	now func() time.Time,
	logger *zap.Logger,
) *OrderService {
	if now == nil {
		now = time.Now
	}
	return &OrderService{
		orderRepo: orderRepo,
		planRepo:  planRepo,
		userRepo:  userRepo,
		promos:    promos,
		publisher: publisher,
		qr:        qr,
		blobs:     blobs,
		now:       now,
		logger:    logger,
	}
}

// today возвращает начало текущих суток в UTC
func (s *OrderService) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CreateOrder оформляет заказ на набор тарифов с необязательным промокодом.
// Непригодный промокод не мешает заказу: он оформляется по полной цене.
func (s *OrderService) CreateOrder(ctx context.Context, userID int64, req domain.CreateOrderRequest) (*domain.CreateOrderResult, error) {
	if len(req.PlanIDs) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	unique := make([]int64, 0, len(req.PlanIDs))
	seen := make(map[int64]struct{}, len(req.PlanIDs))
	for _, id := range req.PlanIDs {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}

	plans, err := s.planRepo.GetPlansByIDs(ctx, unique)
	if err != nil {
		return nil, wrap(err, "order service: failed to resolve plans for user %d", userID)
	}

	byID := make(map[int64]*domain.Plan, len(plans))
	for _, p := range plans {
		byID[p.ID] = p
	}

	var items []domain.LineItem
	original := decimal.Zero
	for _, id := range req.PlanIDs {
		plan, ok := byID[id]
		if !ok {
			continue
		}
		items = append(items, domain.LineItem{PlanID: plan.ID, Name: plan.Name, Price: plan.Price, Type: plan.Type})
		original = original.Add(plan.Price)
	}
	if len(items) == 0 {
		return nil, domain.ErrPlanNotFound
	}
	if len(items) < len(req.PlanIDs) {
		s.logger.Warn("unknown plans dropped from order",
			zap.Int64("user_id", userID),
			zap.Int("requested", len(req.PlanIDs)),
			zap.Int("resolved", len(items)),
		)
	}

	order := &domain.Order{
		UserID:         userID,
		Items:          items,
		OriginalPrice:  original,
		DiscountAmount: decimal.Zero,
		FinalPrice:     original,
		Status:         domain.OrderStatusPendingUpload,
	}

	outcome := domain.PromoNone
	var promoID *int64

	if code := NormalizeCode(req.PromoCode); code != "" {
		resolved := make([]int64, 0, len(items))
		for _, item := range items {
			resolved = append(resolved, item.PlanID)
		}

		quote, err := s.promos.Quote(ctx, code, resolved, original)
		switch {
		case err == nil:
			promoID = &quote.PromoID
			order.PromoCode = &quote.Code
			order.DiscountAmount = quote.DiscountAmount
			order.FinalPrice = quote.FinalPrice
			outcome = domain.PromoApplied
		case isDomainError(err):
			s.logger.Info("promo code skipped",
				zap.Int64("user_id", userID),
				zap.String("promo_code", code),
				zap.Error(err),
			)
			outcome = domain.PromoSkippedInvalid
		default:
			return nil, wrap(err, "order service: failed to quote promo %q", code)
		}
	}

	created, err := s.orderRepo.CreateOrder(ctx, order, promoID)
	if errors.Is(err, domain.ErrPromoLimitReached) {
		// Последний слот промокода ушел параллельному заказу
		s.logger.Info("promo code exhausted during checkout, charging full price",
			zap.Int64("user_id", userID),
			zap.Stringp("promo_code", order.PromoCode),
		)
		order.PromoCode = nil
		order.DiscountAmount = decimal.Zero
		order.FinalPrice = original
		outcome = domain.PromoSkippedInvalid

		created, err = s.orderRepo.CreateOrder(ctx, order, nil)
	}
	if err != nil {
		return nil, wrap(err, "order service: failed to create order for user %d", userID)
	}

	s.logger.Info("order created",
		zap.Int64("order_id", created.ID),
		zap.Int64("user_id", userID),
		zap.String("final_price", created.FinalPrice.StringFixed(2)),
		zap.String("promo_outcome", string(outcome)),
	)

	return &domain.CreateOrderResult{Order: created, PromoOutcome: outcome}, nil
}

// GetOrder возвращает заказ владельцу или администратору.
// Чужой заказ для покупателя выглядит как несуществующий.
func (s *OrderService) GetOrder(ctx context.Context, orderID int64, requester domain.Identity) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, wrap(err, "order service: failed to get order %d", orderID)
	}
	if !requester.IsAdmin() && order.UserID != requester.UserID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// GetPaymentQR строит QR-код оплаты на итоговую сумму заказа
func (s *OrderService) GetPaymentQR(ctx context.Context, orderID int64, requester domain.Identity) (*domain.PaymentQR, error) {
	order, err := s.GetOrder(ctx, orderID, requester)
	if err != nil {
		return nil, err
	}

	code, err := s.qr.PaymentQR(order.FinalPrice)
	if err != nil {
		return nil, fmt.Errorf("order service: order %d: %w: %w", orderID, domain.ErrQRGenerationFailed, err)
	}

	return &domain.PaymentQR{QRCode: code, Amount: order.FinalPrice}, nil
}

// UploadPayment прикладывает подтверждение оплаты к заказу, ожидающему оплату
func (s *OrderService) UploadPayment(ctx context.Context, orderID, requesterID int64, upload domain.PaymentUpload) error {
	if upload.ScreenshotRef == "" {
		return domain.ErrMissingScreenshot
	}

	var txID *string
	if t := strings.TrimSpace(upload.TransactionID); t != "" {
		txID = &t
	}

	applied, err := s.orderRepo.AttachPayment(ctx, orderID, requesterID, upload.ScreenshotRef, txID)
	if err != nil {
		s.discard(ctx, upload.ScreenshotRef)
		return wrap(err, "order service: failed to attach payment to order %d", orderID)
	}
	if !applied {
		s.discard(ctx, upload.ScreenshotRef)
		return s.explain(ctx, orderID, &requesterID, domain.ErrCannotUpload)
	}

	s.logger.Info("payment uploaded", zap.Int64("order_id", orderID), zap.Int64("user_id", requesterID))
	s.publish(ctx, orderID, domain.OrderEvent{
		Kind:          domain.EventPaymentUploaded,
		ScreenshotURL: upload.ScreenshotURL,
	})

	return nil
}

// VerifyOrder активирует оплаченный заказ и сохраняет данные доступа
func (s *OrderService) VerifyOrder(ctx context.Context, orderID int64, admin domain.Identity, req domain.VerifyRequest) error {
	if !admin.IsAdmin() {
		return domain.ErrAdminRequired
	}
	if req.RenewalDate.IsZero() {
		return domain.NewValidationError("renewalDate", "is required")
	}

	applied, err := s.orderRepo.Activate(ctx, orderID, domain.OrderStatusPaymentUploaded, req.VPSDetails, req.RenewalDate)
	if err != nil {
		return wrap(err, "order service: failed to activate order %d", orderID)
	}
	if !applied {
		return s.explain(ctx, orderID, nil, domain.ErrCannotReview)
	}

	s.logger.Info("order verified", zap.Int64("order_id", orderID), zap.Int64("admin_id", admin.UserID))
	s.publish(ctx, orderID, domain.OrderEvent{Kind: domain.EventVerified, AdminEmail: admin.Email})

	return nil
}

// RejectOrder отклоняет оплату с указанием причины
func (s *OrderService) RejectOrder(ctx context.Context, orderID int64, admin domain.Identity, reason string) error {
	if !admin.IsAdmin() {
		return domain.ErrAdminRequired
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.NewValidationError("reason", "is required")
	}

	applied, err := s.orderRepo.Reject(ctx, orderID, domain.OrderStatusPaymentUploaded, reason)
	if err != nil {
		return wrap(err, "order service: failed to reject order %d", orderID)
	}
	if !applied {
		return s.explain(ctx, orderID, nil, domain.ErrCannotReview)
	}

	s.logger.Info("order rejected", zap.Int64("order_id", orderID), zap.Int64("admin_id", admin.UserID))
	s.publish(ctx, orderID, domain.OrderEvent{Kind: domain.EventRejected, AdminEmail: admin.Email, Reason: reason})

	return nil
}

// CancelOrder удаляет заказ покупателя до оплаты или после отклонения.
// Использование промокода не возвращается.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, requesterID int64) error {
	applied, err := s.orderRepo.DeleteOrder(ctx, orderID, requesterID, domain.CancellableStatuses)
	if err != nil {
		return wrap(err, "order service: failed to cancel order %d", orderID)
	}
	if !applied {
		return s.explain(ctx, orderID, &requesterID, domain.ErrCannotCancel)
	}

	s.logger.Info("order cancelled", zap.Int64("order_id", orderID), zap.Int64("user_id", requesterID))
	return nil
}

// ListUserOrders возвращает заказы пользователя, новые первыми
func (s *OrderService) ListUserOrders(ctx context.Context, userID int64, requester domain.Identity) ([]*domain.Order, error) {
	if !requester.IsAdmin() && requester.UserID != userID {
		return nil, domain.ErrOrderForbidden
	}

	orders, err := s.orderRepo.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, wrap(err, "order service: failed to list orders of user %d", userID)
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, nil
}

// ListAllOrders возвращает все заказы с данными клиентов
func (s *OrderService) ListAllOrders(ctx context.Context) ([]*domain.OrderView, error) {
	views, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, wrap(err, "order service: failed to list orders")
	}
	if views == nil {
		views = []*domain.OrderView{}
	}
	return views, nil
}

// ListActive возвращает активные заказы для менеджера
func (s *OrderService) ListActive(ctx context.Context) ([]*domain.ManagedOrder, error) {
	orders, err := s.orderRepo.ListActive(ctx)
	if err != nil {
		return nil, wrap(err, "order service: failed to list active orders")
	}
	if orders == nil {
		orders = []*domain.ManagedOrder{}
	}
	return orders, nil
}

// ListExpired возвращает активные заказы с прошедшей датой продления
func (s *OrderService) ListExpired(ctx context.Context) ([]*domain.ManagedOrder, error) {
	orders, err := s.orderRepo.ListExpired(ctx, s.today())
	if err != nil {
		return nil, wrap(err, "order service: failed to list expired orders")
	}
	if orders == nil {
		orders = []*domain.ManagedOrder{}
	}
	return orders, nil
}

// SweepExpired переводит просроченные активные заказы в expired
func (s *OrderService) SweepExpired(ctx context.Context) (int64, error) {
	count, err := s.orderRepo.ExpireOrders(ctx, s.today())
	if err != nil {
		return 0, wrap(err, "order service: failed to expire orders")
	}

	if count > 0 {
		s.logger.Info("orders expired", zap.Int64("count", count))
	}
	return count, nil
}

// explain перечитывает заказ после неприменившегося перехода и
// возвращает причину: заказа нет, он чужой или статус не тот.
func (s *OrderService) explain(ctx context.Context, orderID int64, ownerID *int64, stateErr error) error {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return wrap(err, "order service: failed to reload order %d", orderID)
	}
	if ownerID != nil && order.UserID != *ownerID {
		return domain.ErrOrderForbidden
	}
	return stateErr
}

// publish дочитывает заказ и клиента и отправляет событие.
// Переход уже выполнен, поэтому ошибки только логируются.
func (s *OrderService) publish(ctx context.Context, orderID int64, event domain.OrderEvent) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		s.logger.Warn("failed to load order for notification", zap.Int64("order_id", orderID), zap.Error(err))
		return
	}
	event.Order = *order

	customer, err := s.userRepo.GetUserByID(ctx, order.UserID)
	if err != nil {
		s.logger.Warn("failed to load customer for notification", zap.Int64("order_id", orderID), zap.Error(err))
	} else {
		event.Customer = customer
	}

	event.OccurredAt = s.now()
	s.publisher.Publish(ctx, event)
}

func (s *OrderService) discard(ctx context.Context, ref string) {
	if s.blobs == nil {
		return
	}
	if err := s.blobs.Delete(ctx, ref); err != nil {
		s.logger.Warn("failed to delete orphaned screenshot", zap.String("ref", ref), zap.Error(err))
	}
}
