package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, full_name, email, phone_number, discord_id, password_hash, role, created_at`

// UserRepository реализует репозиторий пользователей.
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.ID, &user.FullName, &user.Email, &user.PhoneNumber,
		&user.DiscordID, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	return user, err
}

// CreateUser создает нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	role := u.Role
	if role == "" {
		role = domain.RoleUser
	}

	user, err := scanUser(r.db.QueryRow(ctx,
		`INSERT INTO users (full_name, email, phone_number, discord_id, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+userColumns,
		u.FullName, u.Email, u.PhoneNumber, u.DiscordID, u.PasswordHash, role,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("repository: failed to create user %q: %w", u.Email, err)
	}

	return user, nil
}

// GetUserByEmail получает пользователя по email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE email = $1`,
		email,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by email %q: %w", email, err)
	}

	return user, nil
}

// GetUserByID получает пользователя по ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by id %d: %w", id, err)
	}

	return user, nil
}
