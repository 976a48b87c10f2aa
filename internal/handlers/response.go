package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// createdResponse ответ на создание записи каталога или промокода
type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func writeMessage(w http.ResponseWriter, logger *zap.Logger, status int, msg string) {
	writeJSON(w, logger, status, messageResponse{Message: msg})
}

// statusFor сопоставляет вид ошибки домена HTTP-статусу
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError пишет ошибку домена клиенту. Прочие ошибки логируются
// и отдаются как Internal Server Error без подробностей.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(msg, append(fields, zap.Error(err))...)
		if errors.Is(err, domain.ErrQRGenerationFailed) {
			writeJSON(w, logger, status, errorResponse{Error: "Failed to generate QR code"})
			return
		}
		writeJSON(w, logger, status, errorResponse{Error: "Internal Server Error"})
		return
	}

	writeJSON(w, logger, status, errorResponse{Error: publicMessage(err)})
}

func publicMessage(err error) string {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	return err.Error()
}

// decodeJSON читает тело запроса и проверяет теги validate
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("", "invalid JSON body")
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return domain.NewValidationError(fe.Field(), "failed on '"+fe.Tag()+"'")
		}
		return domain.NewValidationError("", err.Error())
	}
	return nil
}

// idParam разбирает числовой параметр пути
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}
