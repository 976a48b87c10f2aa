package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	domainmocks "github.com/avc/hosting-storefront/internal/domain/mocks"
	"github.com/avc/hosting-storefront/internal/utils/jwt"
	"github.com/avc/hosting-storefront/internal/utils/password"
	passwordmocks "github.com/avc/hosting-storefront/internal/utils/password/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T) (*AuthService, *domainmocks.UserRepositoryMock, *passwordmocks.HasherMock, *jwt.Manager) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockUserRepo, mockHasher, password.Policy{MinLength: 6}, jwtManager, zap.NewNop())
	return svc, mockUserRepo, mockHasher, jwtManager
}

func TestAuthService_Register(t *testing.T) {
	svc, mockUserRepo, mockHasher, jwtManager := newAuthService(t)
	ctx := context.Background()

	valid := domain.RegisterRequest{
		FullName:    "Test User",
		Email:       "  Test@Example.com ",
		PhoneNumber: "+911234567890",
		Password:    "password123",
	}

	t.Run("Success", func(t *testing.T) {
		passwordHash := "hashed_password"
		created := &domain.User{ID: 1, FullName: "Test User", Email: "test@example.com", Role: domain.RoleUser}

		mockHasher.EXPECT().Hash(valid.Password).Return(passwordHash, nil).Once()
		mockUserRepo.EXPECT().
			CreateUser(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
				return u.Email == "test@example.com" && u.PasswordHash == passwordHash &&
					u.Role == domain.RoleUser && u.DiscordID == nil
			})).
			Return(created, nil).Once()

		token, user, err := svc.Register(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, created, user)

		identity, err := jwtManager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), identity.UserID)
		assert.Equal(t, domain.RoleUser, identity.Role)
	})

	t.Run("Discord id stored when given", func(t *testing.T) {
		req := valid
		req.DiscordID = "neo#0001"

		mockHasher.EXPECT().Hash(req.Password).Return("h", nil).Once()
		mockUserRepo.EXPECT().
			CreateUser(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
				return u.DiscordID != nil && *u.DiscordID == "neo#0001"
			})).
			Return(&domain.User{ID: 2, Role: domain.RoleUser}, nil).Once()

		_, _, err := svc.Register(ctx, req)
		require.NoError(t, err)
	})

	t.Run("Missing full name", func(t *testing.T) {
		req := valid
		req.FullName = " "

		token, user, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("Short password", func(t *testing.T) {
		req := valid
		req.Password = "abc"

		_, _, err := svc.Register(ctx, req)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "password", vErr.Field)
	})

	t.Run("User already exists", func(t *testing.T) {
		mockHasher.EXPECT().Hash(valid.Password).Return("h", nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, domain.ErrUserExists).Once()

		token, _, err := svc.Register(ctx, valid)
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Empty(t, token)
	})

	t.Run("Hash password error", func(t *testing.T) {
		mockHasher.EXPECT().Hash(valid.Password).Return("", errors.New("hash error")).Once()

		token, _, err := svc.Register(ctx, valid)
		assert.Error(t, err)
		assert.Empty(t, token)
	})

	t.Run("Database error", func(t *testing.T) {
		mockHasher.EXPECT().Hash(valid.Password).Return("h", nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()

		token, _, err := svc.Register(ctx, valid)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrConflict)
		assert.Empty(t, token)
	})
}

func TestAuthService_Login(t *testing.T) {
	svc, mockUserRepo, mockHasher, jwtManager := newAuthService(t)
	ctx := context.Background()

	passwordHash := "hashed_password"
	admin := &domain.User{ID: 1, Email: "admin@example.com", PasswordHash: passwordHash, Role: domain.RoleAdmin}

	t.Run("Success", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "admin@example.com").Return(admin, nil).Once()
		mockHasher.EXPECT().Check(passwordHash, "password123").Return(nil).Once()

		token, user, err := svc.Login(ctx, "ADMIN@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, admin, user)

		identity, err := jwtManager.Validate(token)
		require.NoError(t, err)
		assert.True(t, identity.IsAdmin())
		assert.Equal(t, "admin@example.com", identity.Email)
	})

	t.Run("Empty email", func(t *testing.T) {
		token, _, err := svc.Login(ctx, "", "password")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("User not found", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "nobody@example.com").Return(nil, domain.ErrUserNotFound).Once()

		token, _, err := svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "admin@example.com").Return(admin, nil).Once()
		mockHasher.EXPECT().Check(passwordHash, "wrongpassword").Return(password.ErrMismatch).Once()

		token, _, err := svc.Login(ctx, "admin@example.com", "wrongpassword")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("Database error", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "admin@example.com").Return(nil, errors.New("db error")).Once()

		token, _, err := svc.Login(ctx, "admin@example.com", "password123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc, mockUserRepo, _, _ := newAuthService(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user := &domain.User{ID: 7, Email: "test@example.com", Role: domain.RoleUser}
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(7)).Return(user, nil).Once()

		got, err := svc.CurrentUser(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("User not found", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(8)).Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.CurrentUser(ctx, 8)
		assert.Equal(t, domain.ErrUserNotFound, err)
	})

	t.Run("Database error", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(9)).Return(nil, dbErr).Once()

		_, err := svc.CurrentUser(ctx, 9)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates missing admin", func(t *testing.T) {
		svc, mockUserRepo, mockHasher, _ := newAuthService(t)

		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "admin@example.com").Return(nil, domain.ErrUserNotFound).Once()
		mockHasher.EXPECT().Hash("s3cret!").Return("h", nil).Once()
		mockUserRepo.EXPECT().
			CreateUser(mock.Anything, mock.MatchedBy(func(u *domain.User) bool { return u.Role == domain.RoleAdmin })).
			Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil).Once()

		require.NoError(t, svc.EnsureAdmin(ctx, "admin@example.com", "s3cret!"))
	})

	t.Run("Existing admin left alone", func(t *testing.T) {
		svc, mockUserRepo, _, _ := newAuthService(t)

		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "admin@example.com").
			Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil).Once()

		require.NoError(t, svc.EnsureAdmin(ctx, "admin@example.com", "s3cret!"))
	})

	t.Run("Not configured", func(t *testing.T) {
		svc, _, _, _ := newAuthService(t)
		require.NoError(t, svc.EnsureAdmin(ctx, "", ""))
	})
}
