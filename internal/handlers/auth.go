package handlers

import (
	"net/http"

	"github.com/avc/hosting-storefront/internal/domain"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService domain.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService domain.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	DiscordID   string `json:"discordId"`
	Password    string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err, "invalid register request")
		return
	}

	token, user, err := h.authService.Register(r.Context(), domain.RegisterRequest{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		DiscordID:   req.DiscordID,
		Password:    req.Password,
	})
	if err != nil {
		writeError(w, h.logger, err, "failed to register", zap.String("email", req.Email))
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, h.logger, http.StatusCreated, authResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err, "invalid login request")
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err, "failed to login", zap.String("email", req.Email))
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, h.logger, http.StatusOK, authResponse{Token: token, User: user})
}

type userResponse struct {
	User *domain.User `json:"user"`
}

// Me возвращает профиль текущего пользователя
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeJSON(w, h.logger, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, h.logger, err, "failed to get current user", zap.Int64("user_id", identity.UserID))
		return
	}
	writeJSON(w, h.logger, http.StatusOK, userResponse{User: user})
}
