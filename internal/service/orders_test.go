package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	domainmocks "github.com/avc/hosting-storefront/internal/domain/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type orderDeps struct {
	orders    *domainmocks.OrderRepositoryMock
	plans     *domainmocks.PlanRepositoryMock
	users     *domainmocks.UserRepositoryMock
	promos    *domainmocks.PromoServiceMock
	publisher *domainmocks.EventPublisherMock
	qr        *domainmocks.QRGeneratorMock
	blobs     *domainmocks.BlobStoreMock
}

func newOrderService(t *testing.T) (*OrderService, orderDeps) {
	d := orderDeps{
		orders:    domainmocks.NewOrderRepositoryMock(t),
		plans:     domainmocks.NewPlanRepositoryMock(t),
		users:     domainmocks.NewUserRepositoryMock(t),
		promos:    domainmocks.NewPromoServiceMock(t),
		publisher: domainmocks.NewEventPublisherMock(t),
		qr:        domainmocks.NewQRGeneratorMock(t),
		blobs:     domainmocks.NewBlobStoreMock(t),
	}
	svc := NewOrderService(d.orders, d.plans, d.users, d.promos, d.publisher, d.qr, d.blobs, fixedClock, zap.NewNop())
	return svc, d
}

var (
	botPlan = &domain.Plan{ID: 1, Name: "Bot Starter", Type: domain.PlanTypeBot, Price: decimal.NewFromInt(30), IsActive: true}
	vpsPlan = &domain.Plan{ID: 2, Name: "VPS Pro", Type: domain.PlanTypeVPS, Price: decimal.NewFromInt(60), IsActive: true}

	customer = domain.Identity{UserID: 7, Role: domain.RoleUser, Email: "buyer@example.com"}
	admin    = domain.Identity{UserID: 1, Role: domain.RoleAdmin, Email: "admin@example.com"}
)

func amount(v int64) any {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(v)) })
}

// echoOrder возвращает сохраняемый заказ с присвоенным ID
func echoOrder(_ context.Context, order *domain.Order, _ *int64) (*domain.Order, error) {
	saved := *order
	saved.ID = 100
	return &saved, nil
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Snapshot without promo", func(t *testing.T) {
		svc, d := newOrderService(t)

		d.plans.EXPECT().GetPlansByIDs(mock.Anything, []int64{1, 2}).Return([]*domain.Plan{botPlan, vpsPlan}, nil).Once()
		d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything, (*int64)(nil)).RunAndReturn(echoOrder).Once()

		res, err := svc.CreateOrder(ctx, customer.UserID, domain.CreateOrderRequest{PlanIDs: []int64{1, 2}})
		require.NoError(t, err)
		assert.Equal(t, domain.PromoNone, res.PromoOutcome)

		order := res.Order
		assert.Equal(t, int64(100), order.ID)
		assert.Equal(t, customer.UserID, order.UserID)
		assert.Equal(t, domain.OrderStatusPendingUpload, order.Status)
		require.Len(t, order.Items, 2)
		assert.Equal(t, "Bot Starter", order.Items[0].Name)
		assert.Equal(t, domain.PlanTypeVPS, order.Items[1].Type)
		assert.True(t, order.OriginalPrice.Equal(decimal.NewFromInt(90)))
		assert.True(t, order.DiscountAmount.IsZero())
		assert.True(t, order.FinalPrice.Equal(order.OriginalPrice))
		assert.Nil(t, order.PromoCode)
	})

	t.Run("Catalog price change does not touch placed order", func(t *testing.T) {
		svc, d := newOrderService(t)
		plan := *vpsPlan

		var placed []*domain.Order
		d.plans.EXPECT().GetPlansByIDs(mock.Anything, []int64{2}).Return([]*domain.Plan{&plan}, nil).Twice()
		d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything, (*int64)(nil)).
			RunAndReturn(func(ctx context.Context, order *domain.Order, promoID *int64) (*domain.Order, error) {
				placed = append(placed, order)
				return echoOrder(ctx, order, promoID)
			}).Twice()

		first, err := svc.CreateOrder(ctx, customer.UserID, domain.CreateOrderRequest{PlanIDs: []int64{2}})
		require.NoError(t, err)

		// Администратор меняет тариф после оформления заказа
		plan.Price = decimal.NewFromInt(75)
		plan.Name = "VPS Pro v2"

		second, err := svc.CreateOrder(ctx, customer.UserID, domain.CreateOrderRequest{PlanIDs: []int64{2}})
		require.NoError(t, err)

		for _, order := range []*domain.Order{first.Order, placed[0]} {
			require.Len(t, order.Items, 1)
			assert.Equal(t, "VPS Pro", order.Items[0].Name)
			assert.True(t, order.Items[0].Price.Equal(decimal.NewFromInt(60)))
			assert.True(t, order.OriginalPrice.Equal(decimal.NewFromInt(60)))
			assert.True(t, order.FinalPrice.Equal(decimal.NewFromInt(60)))
		}

		assert.Equal(t, "VPS Pro v2", second.Order.Items[0].Name)
		assert.True(t, second.Order.OriginalPrice.Equal(decimal.NewFromInt(75)))
	})

	t.Run("Duplicate plan ids are charged per occurrence", func(t *testing.T) {
		svc, d := newOrderService(t)

		d.plans.EXPECT().GetPlansByIDs(mock.Anything, []int64{2}).Return([]*domain.Plan{vpsPlan}, nil).Once()
		d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything, (*int64)(nil)).RunAndReturn(echoOrder).Once()

		res, err := svc.CreateOrder(ctx, customer.UserID, domain.CreateOrderRequest{PlanIDs: []int64{2, 2}})
		require.NoError(t, err)
		assert.Len(t, res.Order.Items, 2)
		assert.True(t, res.Order.OriginalPrice.Equal(decimal.NewFromInt(120)))
	})

	t.Run("Unknown plans are dropped", func(t *testing.T) {
		svc, d := newOrderService(t)

		d.plans.EXPECT().GetPlansByIDs(mock.Anything, []int64{1, 42}).Return([]*domain.Plan{botPlan}, nil).Once()
		d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything, (*int64)(nil)).RunAndReturn(echoOrder).Once()

		res, err := svc.CreateOrder(ctx, customer.UserID, domain.CreateOrderRequest{PlanIDs: []int64{1, 42}})
		require.NoError(t, err)
		assert.Len(t, res.Order.Items, 1)
	})

	t.Run("Promo applied", func(t *testing.T) {
		svc, d := newOrderService(t)
		promoID := int64(5)

		d.plans.EXPECT().GetPlansByIDs(mock.Anything, []int64{1, 2}).Return([]*domain.Plan{botPlan, vpsPlan}, nil).Once()
		d.promos.EXPECT().Quote(mock.Anything, "SAVE10", []int64{1, 2}, amount(90)).
			Return(&domain.PromoQuote{PromoID: promoID, Code: "SAVE10", DiscountAmount: decimal.NewFromInt(9), FinalPrice: decimal.NewFromInt(81)}, nil).Once()
		d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything, &promoID).RunAndReturn(echoOrder).Once()

		res, err := svc.CreateOrder(ctx, customer.UserID, domain.CreateOrderRequest{PlanIDs: []int64{1, 2}, PromoCode: " save10 "})
		require.NoError(t, err)
		assert.Equal(t, domain.PromoApplied, res.PromoOutcome)
		require.NotNil(t, res.Order.PromoCode)
		assert.Equal(t, "SAVE10", *res.Order.PromoCode)
		assert.True(t, res.Order.DiscountAmount.Equal(decimal.NewFromInt(9)))
		assert.True(t, res.Order.FinalPrice.Equal(decimal.NewFromInt(81)))
	})

	t.Run("Invalid promo falls back to full price", func(t *testing.T) {
		svc, d := newOrderService(t)

		d.plans.EXPECT().GetPlansByIDs(mock.Anything, []int64{1}).Return([]*domain.Plan{botPlan}, nil).Once()
		d.promos.EXPECT().Quote(mock.Anything, "OLD", []int64{1}, amount(30)).Return(nil, domain.ErrPromoExpired).Once()
		d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything, (*int64)(nil)).RunAndReturn(echoOrder).Once()

		res, err := svc.CreateOrder(ctx, customer.UserID, domain.CreateOrderRequest{PlanIDs: []int64{1}, PromoCode: "old"})
		require.NoError(t, err)
		assert.Equal(t, domain.PromoSkippedInvalid, res.PromoOutcome)
		assert.Nil(t, res.Order.PromoCode)
		assert.True(t, res.Order.FinalPrice.Equal(decimal.NewFromInt(30)))
	})

	t.Run("Promo exhausted by concurrent order", func(t *testing.T) {
		svc, d := newOrderService(t)
		promoID := int64(5)

		d.plans.EXPECT().GetPlansByIDs(mock.Anything, []int64{2}).Return([]*domain.Plan{vpsPlan}, nil).Once()
		d.promos.EXPECT().Quote(mock.Anything, "LAST", []int64{2}, amount(60)).
			Return(&domain.PromoQuote{PromoID: promoID, Code: "LAST", DiscountAmount: decimal.NewFromInt(10), FinalPrice: decimal.NewFromInt(50)}, nil).Once()
		d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything, &promoID).Return(nil, domain.ErrPromoLimitReached).Once()
		d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything, (*int64)(nil)).RunAndReturn(echoOrder).Once()

		res, err := svc.CreateOrder(ctx, customer.UserID, domain.CreateOrderRequest{PlanIDs: []int64{2}, PromoCode: "LAST"})
		require.NoError(t, err)
		assert.Equal(t, domain.PromoSkippedInvalid, res.PromoOutcome)
		assert.Nil(t, res.Order.PromoCode)
		assert.True(t, res.Order.DiscountAmount.IsZero())
		assert.True(t, res.Order.FinalPrice.Equal(decimal.NewFromInt(60)))
	})

	t.Run("Empty order", func(t *testing.T) {
		svc, _ := newOrderService(t)

		_, err := svc.CreateOrder(ctx, customer.UserID, domain.CreateOrderRequest{})
		assert.ErrorIs(t, err, domain.ErrEmptyOrder)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("No plan resolved", func(t *testing.T) {
		svc, d := newOrderService(t)

		d.plans.EXPECT().GetPlansByIDs(mock.Anything, []int64{42}).Return(nil, nil).Once()

		_, err := svc.CreateOrder(ctx, customer.UserID, domain.CreateOrderRequest{PlanIDs: []int64{42}})
		assert.ErrorIs(t, err, domain.ErrPlanNotFound)
	})

	t.Run("Promo lookup failure aborts", func(t *testing.T) {
		svc, d := newOrderService(t)
		dbErr := errors.New("db error")

		d.plans.EXPECT().GetPlansByIDs(mock.Anything, []int64{1}).Return([]*domain.Plan{botPlan}, nil).Once()
		d.promos.EXPECT().Quote(mock.Anything, "SAVE10", []int64{1}, amount(30)).Return(nil, dbErr).Once()

		_, err := svc.CreateOrder(ctx, customer.UserID, domain.CreateOrderRequest{PlanIDs: []int64{1}, PromoCode: "SAVE10"})
		assert.ErrorIs(t, err, dbErr)
		assert.ErrorContains(t, err, "order service")
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := context.Background()
	order := &domain.Order{ID: 3, UserID: customer.UserID, FinalPrice: decimal.NewFromInt(81)}

	t.Run("Owner", func(t *testing.T) {
		svc, d := newOrderService(t)
		d.orders.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(order, nil).Once()

		got, err := svc.GetOrder(ctx, 3, customer)
		require.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("Admin reads any order", func(t *testing.T) {
		svc, d := newOrderService(t)
		d.orders.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(order, nil).Once()

		_, err := svc.GetOrder(ctx, 3, admin)
		assert.NoError(t, err)
	})

	t.Run("Foreign order is hidden", func(t *testing.T) {
		svc, d := newOrderService(t)
		d.orders.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(order, nil).Once()

		_, err := svc.GetOrder(ctx, 3, domain.Identity{UserID: 8, Role: domain.RoleUser})
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("Payment QR for final price", func(t *testing.T) {
		svc, d := newOrderService(t)
		d.orders.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(order, nil).Once()
		d.qr.EXPECT().PaymentQR(decimal.NewFromInt(81)).Return("data:image/png;base64,AAAA", nil).Once()

		qr, err := svc.GetPaymentQR(ctx, 3, customer)
		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,AAAA", qr.QRCode)
		assert.True(t, qr.Amount.Equal(decimal.NewFromInt(81)))
	})

	t.Run("QR failure", func(t *testing.T) {
		svc, d := newOrderService(t)
		d.orders.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(order, nil).Once()
		d.qr.EXPECT().PaymentQR(mock.Anything).Return("", errors.New("encode failed")).Once()

		_, err := svc.GetPaymentQR(ctx, 3, customer)
		assert.ErrorIs(t, err, domain.ErrQRGenerationFailed)
		assert.ErrorIs(t, err, domain.ErrExternal)
	})
}

func TestOrderService_UploadPayment(t *testing.T) {
	ctx := context.Background()
	upload := domain.PaymentUpload{
		ScreenshotRef: "/uploads/a.png",
		ScreenshotURL: "http://localhost:8080/uploads/a.png",
		TransactionID: " UTR123 ",
	}
	txID := "UTR123"

	t.Run("Success notifies admins", func(t *testing.T) {
		svc, d := newOrderService(t)
		stored := &domain.Order{ID: 3, UserID: customer.UserID, Status: domain.OrderStatusPaymentUploaded}
		user := &domain.User{ID: customer.UserID, Email: customer.Email}

		d.orders.EXPECT().AttachPayment(mock.Anything, int64(3), customer.UserID, "/uploads/a.png", &txID).Return(true, nil).Once()
		d.orders.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(stored, nil).Once()
		d.users.EXPECT().GetUserByID(mock.Anything, customer.UserID).Return(user, nil).Once()
		d.publisher.EXPECT().
			Publish(mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
				return e.Kind == domain.EventPaymentUploaded &&
					e.Order.ID == 3 &&
					e.Customer == user &&
					e.ScreenshotURL == upload.ScreenshotURL &&
					e.OccurredAt.Equal(fixedNow)
			})).Return().Once()

		require.NoError(t, svc.UploadPayment(ctx, 3, customer.UserID, upload))
	})

	t.Run("Transaction id is optional", func(t *testing.T) {
		svc, d := newOrderService(t)
		stored := &domain.Order{ID: 3, UserID: customer.UserID}

		d.orders.EXPECT().AttachPayment(mock.Anything, int64(3), customer.UserID, "/uploads/a.png", (*string)(nil)).Return(true, nil).Once()
		d.orders.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(stored, nil).Once()
		d.users.EXPECT().GetUserByID(mock.Anything, customer.UserID).Return(nil, domain.ErrUserNotFound).Once()
		d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return().Once()

		err := svc.UploadPayment(ctx, 3, customer.UserID, domain.PaymentUpload{ScreenshotRef: "/uploads/a.png"})
		assert.NoError(t, err)
	})

	t.Run("Missing screenshot", func(t *testing.T) {
		svc, _ := newOrderService(t)

		err := svc.UploadPayment(ctx, 3, customer.UserID, domain.PaymentUpload{})
		assert.ErrorIs(t, err, domain.ErrMissingScreenshot)
	})

	tests := []struct {
		name    string
		stored  *domain.Order
		readErr error
		wantErr error
	}{
		{
			name:    "Wrong status",
			stored:  &domain.Order{ID: 3, UserID: customer.UserID, Status: domain.OrderStatusActive},
			wantErr: domain.ErrCannotUpload,
		},
		{
			name:    "Foreign order",
			stored:  &domain.Order{ID: 3, UserID: 99, Status: domain.OrderStatusPendingUpload},
			wantErr: domain.ErrOrderForbidden,
		},
		{
			name:    "Missing order",
			readErr: domain.ErrOrderNotFound,
			wantErr: domain.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newOrderService(t)

			d.orders.EXPECT().AttachPayment(mock.Anything, int64(3), customer.UserID, "/uploads/a.png", &txID).Return(false, nil).Once()
			d.blobs.EXPECT().Delete(mock.Anything, "/uploads/a.png").Return(nil).Once()
			d.orders.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(tt.stored, tt.readErr).Once()

			err := svc.UploadPayment(ctx, 3, customer.UserID, upload)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderService_Review(t *testing.T) {
	ctx := context.Background()
	renewal := time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)
	details := domain.VPSDetails{IPAddress: "10.0.0.5", Username: "root", Password: "secret"}

	t.Run("Verify activates uploaded order", func(t *testing.T) {
		svc, d := newOrderService(t)
		stored := &domain.Order{ID: 3, UserID: customer.UserID, Status: domain.OrderStatusActive}

		d.orders.EXPECT().Activate(mock.Anything, int64(3), domain.OrderStatusPaymentUploaded, details, renewal).Return(true, nil).Once()
		d.orders.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(stored, nil).Once()
		d.users.EXPECT().GetUserByID(mock.Anything, customer.UserID).Return(&domain.User{ID: customer.UserID}, nil).Once()
		d.publisher.EXPECT().
			Publish(mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
				return e.Kind == domain.EventVerified && e.AdminEmail == admin.Email
			})).Return().Once()

		err := svc.VerifyOrder(ctx, 3, admin, domain.VerifyRequest{VPSDetails: details, RenewalDate: renewal})
		assert.NoError(t, err)
	})

	t.Run("Verify pending order is rejected", func(t *testing.T) {
		svc, d := newOrderService(t)
		stored := &domain.Order{ID: 3, UserID: customer.UserID, Status: domain.OrderStatusPendingUpload}

		d.orders.EXPECT().Activate(mock.Anything, int64(3), domain.OrderStatusPaymentUploaded, details, renewal).Return(false, nil).Once()
		d.orders.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(stored, nil).Once()

		err := svc.VerifyOrder(ctx, 3, admin, domain.VerifyRequest{VPSDetails: details, RenewalDate: renewal})
		assert.ErrorIs(t, err, domain.ErrCannotReview)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Verify requires admin", func(t *testing.T) {
		svc, _ := newOrderService(t)

		err := svc.VerifyOrder(ctx, 3, customer, domain.VerifyRequest{RenewalDate: renewal})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Verify requires renewal date", func(t *testing.T) {
		svc, _ := newOrderService(t)

		err := svc.VerifyOrder(ctx, 3, admin, domain.VerifyRequest{VPSDetails: details})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Reject with reason", func(t *testing.T) {
		svc, d := newOrderService(t)
		stored := &domain.Order{ID: 3, UserID: customer.UserID, Status: domain.OrderStatusRejected}

		d.orders.EXPECT().Reject(mock.Anything, int64(3), domain.OrderStatusPaymentUploaded, "Blurry screenshot").Return(true, nil).Once()
		d.orders.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(stored, nil).Once()
		d.users.EXPECT().GetUserByID(mock.Anything, customer.UserID).Return(&domain.User{ID: customer.UserID}, nil).Once()
		d.publisher.EXPECT().
			Publish(mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
				return e.Kind == domain.EventRejected && e.Reason == "Blurry screenshot"
			})).Return().Once()

		assert.NoError(t, svc.RejectOrder(ctx, 3, admin, " Blurry screenshot "))
	})

	t.Run("Reject without reason", func(t *testing.T) {
		svc, _ := newOrderService(t)

		err := svc.RejectOrder(ctx, 3, admin, "  ")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Reject missing order", func(t *testing.T) {
		svc, d := newOrderService(t)

		d.orders.EXPECT().Reject(mock.Anything, int64(9), domain.OrderStatusPaymentUploaded, "dup").Return(false, nil).Once()
		d.orders.EXPECT().GetOrderByID(mock.Anything, int64(9)).Return(nil, domain.ErrOrderNotFound).Once()

		err := svc.RejectOrder(ctx, 9, admin, "dup")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending order is deleted", func(t *testing.T) {
		svc, d := newOrderService(t)
		d.orders.EXPECT().DeleteOrder(mock.Anything, int64(3), customer.UserID, domain.CancellableStatuses).Return(true, nil).Once()

		assert.NoError(t, svc.CancelOrder(ctx, 3, customer.UserID))
	})

	t.Run("Active order cannot be cancelled", func(t *testing.T) {
		svc, d := newOrderService(t)
		stored := &domain.Order{ID: 3, UserID: customer.UserID, Status: domain.OrderStatusActive}

		d.orders.EXPECT().DeleteOrder(mock.Anything, int64(3), customer.UserID, domain.CancellableStatuses).Return(false, nil).Once()
		d.orders.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(stored, nil).Once()

		err := svc.CancelOrder(ctx, 3, customer.UserID)
		assert.ErrorIs(t, err, domain.ErrCannotCancel)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Foreign order", func(t *testing.T) {
		svc, d := newOrderService(t)
		stored := &domain.Order{ID: 3, UserID: 99, Status: domain.OrderStatusPendingUpload}

		d.orders.EXPECT().DeleteOrder(mock.Anything, int64(3), customer.UserID, domain.CancellableStatuses).Return(false, nil).Once()
		d.orders.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(stored, nil).Once()

		err := svc.CancelOrder(ctx, 3, customer.UserID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Database error", func(t *testing.T) {
		svc, d := newOrderService(t)
		d.orders.EXPECT().DeleteOrder(mock.Anything, int64(3), customer.UserID, domain.CancellableStatuses).Return(false, errors.New("db error")).Once()

		err := svc.CancelOrder(ctx, 3, customer.UserID)
		assert.ErrorContains(t, err, "order service")
	})
}

func TestOrderService_Lists(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	t.Run("User orders", func(t *testing.T) {
		svc, d := newOrderService(t)
		orders := []*domain.Order{{ID: 2}, {ID: 1}}
		d.orders.EXPECT().GetOrdersByUserID(mock.Anything, customer.UserID).Return(orders, nil).Once()

		got, err := svc.ListUserOrders(ctx, customer.UserID, customer)
		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("No orders", func(t *testing.T) {
		svc, d := newOrderService(t)
		d.orders.EXPECT().GetOrdersByUserID(mock.Anything, customer.UserID).Return(nil, nil).Once()

		got, err := svc.ListUserOrders(ctx, customer.UserID, admin)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Other user's orders", func(t *testing.T) {
		svc, _ := newOrderService(t)

		_, err := svc.ListUserOrders(ctx, 99, customer)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Expired uses start of today", func(t *testing.T) {
		svc, d := newOrderService(t)
		expired := []*domain.ManagedOrder{{ID: 4, DaysSinceExpiry: 3}}
		d.orders.EXPECT().ListExpired(mock.Anything, today).Return(expired, nil).Once()

		got, err := svc.ListExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, expired, got)
	})

	t.Run("Active", func(t *testing.T) {
		svc, d := newOrderService(t)
		d.orders.EXPECT().ListActive(mock.Anything).Return(nil, nil).Once()

		got, err := svc.ListActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("All orders", func(t *testing.T) {
		svc, d := newOrderService(t)
		d.orders.EXPECT().ListOrders(mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := svc.ListAllOrders(ctx)
		assert.ErrorContains(t, err, "order service")
	})
}

func TestOrderService_SweepExpired(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	svc, d := newOrderService(t)

	t.Run("Expires overdue orders", func(t *testing.T) {
		d.orders.EXPECT().ExpireOrders(mock.Anything, today).Return(2, nil).Once()

		count, err := svc.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("Second run changes nothing", func(t *testing.T) {
		d.orders.EXPECT().ExpireOrders(mock.Anything, today).Return(0, nil).Once()

		count, err := svc.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
