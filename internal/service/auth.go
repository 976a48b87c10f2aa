package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/avc/hosting-storefront/internal/utils/jwt"
	"github.com/avc/hosting-storefront/internal/utils/password"
	"go.uber.org/zap"
)

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo       domain.UserRepository
	passwordHasher password.Hasher
	policy         password.Policy
	jwtManager     *jwt.Manager
	logger         *zap.Logger
}

// NewAuthService создает новый AuthService
func NewAuthService(
	userRepo domain.UserRepository,
	passwordHasher password.Hasher,
	policy password.Policy,
	jwtManager *jwt.Manager,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		policy:         policy,
		jwtManager:     jwtManager,
		logger:         logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register регистрирует нового покупателя и выдает токен
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (string, *domain.User, error) {
	email := normalizeEmail(req.Email)
	fullName := strings.TrimSpace(req.FullName)
	phone := strings.TrimSpace(req.PhoneNumber)

	switch {
	case fullName == "":
		return "", nil, domain.NewValidationError("fullName", "is required")
	case email == "":
		return "", nil, domain.NewValidationError("email", "is required")
	case phone == "":
		return "", nil, domain.NewValidationError("phoneNumber", "is required")
	}
	if err := s.policy.Validate(req.Password); err != nil {
		return "", nil, domain.NewValidationError("password", err.Error())
	}

	hash, err := s.passwordHasher.Hash(req.Password)
	if err != nil {
		return "", nil, fmt.Errorf("auth service: failed to hash password for %q: %w", email, err)
	}

	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if discord := strings.TrimSpace(req.DiscordID); discord != "" {
		user.DiscordID = &discord
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, domain.ErrUserExists) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("auth service: failed to register user %q: %w", email, err)
	}

	token, err := s.issue(created)
	if err != nil {
		return "", nil, err
	}

	return token, created, nil
}

// Login аутентифицирует пользователя по email и паролю
func (s *AuthService) Login(ctx context.Context, email, userPassword string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || userPassword == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("auth service: failed to get user %q: %w", email, err)
	}

	if err := s.passwordHasher.Check(user.PasswordHash, userPassword); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// CurrentUser возвращает профиль владельца токена
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, wrap(err, "auth service: failed to get user %d", userID)
	}
	return user, nil
}

// EnsureAdmin создает администратора, если пользователя с таким email нет
func (s *AuthService) EnsureAdmin(ctx context.Context, email, adminPassword string) error {
	email = normalizeEmail(email)
	if email == "" || adminPassword == "" {
		return nil
	}

	_, err := s.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("auth service: failed to look up admin %q: %w", email, err)
	}

	hash, err := s.passwordHasher.Hash(adminPassword)
	if err != nil {
		return fmt.Errorf("auth service: failed to hash admin password: %w", err)
	}

	admin, err := s.userRepo.CreateUser(ctx, &domain.User{
		FullName:     "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return fmt.Errorf("auth service: failed to create admin %q: %w", email, err)
	}

	s.logger.Info("admin account created", zap.Int64("user_id", admin.ID), zap.String("email", email))
	return nil
}

func (s *AuthService) issue(user *domain.User) (string, error) {
	token, err := s.jwtManager.Generate(domain.Identity{UserID: user.ID, Role: user.Role, Email: user.Email})
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %d: %w", user.ID, err)
	}
	return token, nil
}
