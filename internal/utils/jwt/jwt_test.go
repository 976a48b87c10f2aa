package jwt

import (
	"testing"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Generate(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		tokenTTL  time.Duration
		identity  domain.Identity
	}{
		{
			name:      "Customer token",
			secretKey: "test-secret-key",
			tokenTTL:  time.Hour,
			identity:  domain.Identity{UserID: 12345, Role: domain.RoleUser, Email: "user@example.com"},
		},
		{
			name:      "Admin token",
			secretKey: "another-secret",
			tokenTTL:  time.Minute * 30,
			identity:  domain.Identity{UserID: 1, Role: domain.RoleAdmin, Email: "admin@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.secretKey, tt.tokenTTL)
			token, err := m.Generate(tt.identity)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	tokenTTL := time.Hour
	identity := domain.Identity{UserID: 12345, Role: domain.RoleAdmin, Email: "admin@example.com"}

	t.Run("Valid token", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(identity)
		require.NoError(t, err)

		parsed, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, identity, parsed)
		assert.True(t, parsed.IsAdmin())
	})

	t.Run("Invalid token - wrong secret", func(t *testing.T) {
		m1 := NewManager(secretKey, tokenTTL)
		token, err := m1.Generate(identity)
		require.NoError(t, err)

		m2 := NewManager("wrong-secret", tokenTTL)
		_, err = m2.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Invalid token - malformed", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("invalid.token.string")
		assert.Error(t, err)
	})

	t.Run("Invalid token - empty", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("")
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, time.Nanosecond)
		token, err := m.Generate(identity)
		require.NoError(t, err)

		// Ждем, чтобы токен истек
		time.Sleep(time.Millisecond * 10)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Unknown role downgraded to user", func(t *testing.T) {
		claims := Claims{
			UserID: 7,
			Role:   domain.Role("superuser"),
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
		require.NoError(t, err)

		parsed, err := NewManager(secretKey, tokenTTL).Validate(token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, parsed.Role)
	})

	t.Run("Foreign issuer", func(t *testing.T) {
		claims := Claims{
			UserID: 7,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
		require.NoError(t, err)

		_, err = NewManager(secretKey, tokenTTL).Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestManager_ValidateWithInvalidSigningMethod(t *testing.T) {
	m := NewManager("secret", time.Hour)

	// Токен с alg=none
	_, err := m.Validate("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VyX2lkIjoxMjM0NX0.")
	assert.Error(t, err)
}

func BenchmarkManager_Validate(b *testing.B) {
	m := NewManager("test-secret-key", time.Hour)
	token, _ := m.Generate(domain.Identity{UserID: 12345, Role: domain.RoleUser})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Validate(token)
	}
}
