package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/avc/hosting-storefront/internal/utils/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	middleware := RequestIDMiddleware()

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := r.Context().Value(RequestIDKey).(string)
		assert.True(t, ok)
		assert.NotEmpty(t, requestID)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestLoggingMiddleware(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	middleware := LoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	middleware := RecoveryMiddleware(logger)

	t.Run("No panic", func(t *testing.T) {
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("With panic", func(t *testing.T) {
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("test panic")
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		assert.NotPanics(t, func() {
			handler.ServeHTTP(w, req)
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	token, err := jwtManager.Generate(domain.Identity{UserID: 123, Role: domain.RoleAdmin, Email: "admin@example.com"})
	require.NoError(t, err)

	middleware := AuthMiddleware(jwtManager, zap.NewNop())
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		assert.True(t, ok)
		assert.Equal(t, int64(123), identity.UserID)
		assert.True(t, identity.IsAdmin())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "Valid token", header: "Bearer " + token, status: http.StatusOK},
		{name: "No header", header: "", status: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic " + token, status: http.StatusUnauthorized},
		{name: "Garbage token", header: "Bearer not-a-token", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	handler := AdminOnly(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name     string
		identity *domain.Identity
		status   int
	}{
		{name: "Admin", identity: &domain.Identity{UserID: 1, Role: domain.RoleAdmin}, status: http.StatusOK},
		{name: "Customer", identity: &domain.Identity{UserID: 2, Role: domain.RoleUser}, status: http.StatusForbidden},
		{name: "Anonymous", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.identity != nil {
				req = req.WithContext(WithIdentity(req.Context(), *tt.identity))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(1, 2, time.Minute)
	handler := limiter.Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1002"))

	// Другой клиент получает собственный лимит
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1000"))
}

func TestRateLimiter_ForgetsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(1, 1, time.Minute)
	now := time.Now()

	assert.True(t, limiter.allow("a", now))
	assert.False(t, limiter.allow("a", now))

	limiter.allow("b", now.Add(2*time.Minute))
	assert.NotContains(t, limiter.clients, "a")
}

func TestGetIdentity(t *testing.T) {
	t.Run("Identity present", func(t *testing.T) {
		ctx := WithIdentity(context.Background(), domain.Identity{UserID: 123})

		identity, ok := GetIdentity(ctx)
		assert.True(t, ok)
		assert.Equal(t, int64(123), identity.UserID)
	})

	t.Run("Identity not present", func(t *testing.T) {
		_, ok := GetIdentity(context.Background())
		assert.False(t, ok)
	})

	t.Run("Wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), IdentityKey, int64(123))

		_, ok := GetIdentity(ctx)
		assert.False(t, ok)
	})
}
