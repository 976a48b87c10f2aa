package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/gabriel-vasile/mimetype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultMaxUploadSize предельный размер скриншота оплаты
const DefaultMaxUploadSize = 5 << 20

var allowedScreenshotTypes = []string{"image/jpeg", "image/png", "image/webp"}

var errFileTooLarge = domain.NewValidationError("screenshot", "file is too large")

// UploadConfig параметры загрузки скриншотов
type UploadConfig struct {
	BaseURL string
	MaxSize int64
}

type OrdersHandler struct {
	orderService domain.OrderService
	blobs        domain.BlobStore
	upload       UploadConfig
	logger       *zap.Logger
}

func NewOrdersHandler(orderService domain.OrderService, blobs domain.BlobStore, upload UploadConfig, logger *zap.Logger) *OrdersHandler {
	if upload.MaxSize <= 0 {
		upload.MaxSize = DefaultMaxUploadSize
	}
	upload.BaseURL = strings.TrimRight(upload.BaseURL, "/")
	return &OrdersHandler{
		orderService: orderService,
		blobs:        blobs,
		upload:       upload,
		logger:       logger,
	}
}

type createOrderRequest struct {
	PlanID    int64   `json:"planId" validate:"gte=0"`
	Items     []int64 `json:"items" validate:"omitempty,dive,gt=0"`
	PromoCode string  `json:"promoCode"`
}

type createOrderResponse struct {
	Message      string              `json:"message"`
	OrderID      int64               `json:"orderId"`
	Amount       decimal.Decimal     `json:"amount"`
	PromoOutcome domain.PromoOutcome `json:"promoOutcome"`
}

type verifyRequest struct {
	VPSDetails  domain.VPSDetails `json:"vpsDetails"`
	RenewalDate string            `json:"renewalDate" validate:"required"`
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type orderResponse struct {
	Order *domain.Order `json:"order"`
}

// ordersResponse список заказов любой проекции. Сервис не возвращает nil.
type ordersResponse struct {
	Orders any `json:"orders"`
}

type sweepResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

func (h *OrdersHandler) identity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeJSON(w, h.logger, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}
	return identity, ok
}

func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err, "invalid order request")
		return
	}

	planIDs := req.Items
	if len(planIDs) == 0 && req.PlanID > 0 {
		planIDs = []int64{req.PlanID}
	}

	res, err := h.orderService.CreateOrder(r.Context(), identity.UserID, domain.CreateOrderRequest{
		PlanIDs:   planIDs,
		PromoCode: req.PromoCode,
	})
	if err != nil {
		writeError(w, h.logger, err, "failed to create order", zap.Int64("user_id", identity.UserID))
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, createOrderResponse{
		Message:      "Order created successfully",
		OrderID:      res.Order.ID,
		Amount:       res.Order.FinalPrice,
		PromoOutcome: res.PromoOutcome,
	})
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, err, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id, identity)
	if err != nil {
		writeError(w, h.logger, err, "failed to get order", zap.Int64("order_id", id))
		return
	}
	writeJSON(w, h.logger, http.StatusOK, orderResponse{Order: order})
}

func (h *OrdersHandler) PaymentQR(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, err, "invalid order id")
		return
	}

	qr, err := h.orderService.GetPaymentQR(r.Context(), id, identity)
	if err != nil {
		writeError(w, h.logger, err, "failed to build payment QR", zap.Int64("order_id", id))
		return
	}
	writeJSON(w, h.logger, http.StatusOK, qr)
}

// UploadPayment принимает multipart-форму со скриншотом оплаты
func (h *OrdersHandler) UploadPayment(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, err, "invalid order id")
		return
	}

	data, ext, err := h.readScreenshot(w, r)
	if err != nil {
		writeError(w, h.logger, err, "invalid payment upload", zap.Int64("order_id", id))
		return
	}

	ref, err := h.blobs.Save(r.Context(), ext, data)
	if err != nil {
		writeError(w, h.logger, err, "failed to store screenshot", zap.Int64("order_id", id))
		return
	}

	err = h.orderService.UploadPayment(r.Context(), id, identity.UserID, domain.PaymentUpload{
		ScreenshotRef: ref,
		ScreenshotURL: h.upload.BaseURL + ref,
		TransactionID: r.FormValue("transactionId"),
	})
	if err != nil {
		writeError(w, h.logger, err, "failed to upload payment", zap.Int64("order_id", id))
		return
	}

	writeMessage(w, h.logger, http.StatusOK, "Payment uploaded successfully. Waiting for verification.")
}

// readScreenshot читает файл screenshot и проверяет его тип по содержимому
func (h *OrdersHandler) readScreenshot(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.upload.MaxSize+1<<20)
	if err := r.ParseMultipartForm(h.upload.MaxSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, "", errFileTooLarge
		}
		return nil, "", domain.NewValidationError("", "invalid multipart form")
	}

	file, _, err := r.FormFile("screenshot")
	if err != nil {
		return nil, "", domain.ErrMissingScreenshot
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.upload.MaxSize+1))
	if err != nil {
		return nil, "", domain.NewValidationError("screenshot", "failed to read file")
	}
	if int64(len(data)) > h.upload.MaxSize {
		return nil, "", errFileTooLarge
	}
	if len(data) == 0 {
		return nil, "", domain.ErrMissingScreenshot
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedScreenshotTypes...) {
		return nil, "", domain.NewValidationError("screenshot", "only images are allowed")
	}

	return data, mtype.Extension(), nil
}

func (h *OrdersHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, err, "invalid order id")
		return
	}

	if err := h.orderService.CancelOrder(r.Context(), id, identity.UserID); err != nil {
		writeError(w, h.logger, err, "failed to cancel order", zap.Int64("order_id", id))
		return
	}
	writeMessage(w, h.logger, http.StatusOK, "Order cancelled successfully")
}

func (h *OrdersHandler) ListUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	userID, err := idParam(r, "userId")
	if err != nil {
		writeError(w, h.logger, err, "invalid user id")
		return
	}

	orders, err := h.orderService.ListUserOrders(r.Context(), userID, identity)
	if err != nil {
		writeError(w, h.logger, err, "failed to list user orders", zap.Int64("user_id", userID))
		return
	}
	writeJSON(w, h.logger, http.StatusOK, ordersResponse{Orders: orders})
}

func (h *OrdersHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListAllOrders(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to list orders")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, ordersResponse{Orders: orders})
}

func (h *OrdersHandler) Verify(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, err, "invalid order id")
		return
	}

	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err, "invalid verify request")
		return
	}
	renewal, err := parseDate("renewalDate", req.RenewalDate)
	if err != nil {
		writeError(w, h.logger, err, "invalid renewal date")
		return
	}

	err = h.orderService.VerifyOrder(r.Context(), id, identity, domain.VerifyRequest{
		VPSDetails:  req.VPSDetails,
		RenewalDate: renewal,
	})
	if err != nil {
		writeError(w, h.logger, err, "failed to verify order", zap.Int64("order_id", id))
		return
	}
	writeMessage(w, h.logger, http.StatusOK, "Order verified and activated")
}

func (h *OrdersHandler) Reject(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, err, "invalid order id")
		return
	}

	var req rejectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err, "invalid reject request")
		return
	}

	if err := h.orderService.RejectOrder(r.Context(), id, identity, req.Reason); err != nil {
		writeError(w, h.logger, err, "failed to reject order", zap.Int64("order_id", id))
		return
	}
	writeMessage(w, h.logger, http.StatusOK, "Order rejected")
}

func (h *OrdersHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListActive(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to list active orders")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, ordersResponse{Orders: orders})
}

func (h *OrdersHandler) ListExpired(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListExpired(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to list expired orders")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, ordersResponse{Orders: orders})
}

func (h *OrdersHandler) SweepExpired(w http.ResponseWriter, r *http.Request) {
	count, err := h.orderService.SweepExpired(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to sweep expired orders")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, sweepResponse{Message: "Expired orders updated", Count: count})
}

// parseDate принимает дату YYYY-MM-DD или RFC 3339
func parseDate(field, s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.NewValidationError(field, "must be YYYY-MM-DD or RFC 3339")
}
