package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumnNames = []string{"id", "full_name", "email", "phone_number", "discord_id", "password_hash", "role", "created_at"}

func userRows(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows(userColumnNames).
		AddRow(u.ID, u.FullName, u.Email, u.PhoneNumber, u.DiscordID, u.PasswordHash, u.Role, u.CreatedAt)
}

func TestUserRepository_CreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		discord := "neo#0001"
		in := &domain.User{
			FullName:     "Test User",
			Email:        "test@example.com",
			PhoneNumber:  "+911234567890",
			DiscordID:    &discord,
			PasswordHash: "hashedpassword",
		}
		stored := *in
		stored.ID = 1
		stored.Role = domain.RoleUser
		stored.CreatedAt = time.Now()

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(in.FullName, in.Email, in.PhoneNumber, in.DiscordID, in.PasswordHash, domain.RoleUser).
			WillReturnRows(userRows(&stored))

		user, err := repo.CreateUser(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.Equal(t, "neo#0001", *user.DiscordID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Admin role is kept", func(t *testing.T) {
		in := &domain.User{FullName: "Admin", Email: "admin@example.com", PasswordHash: "h", Role: domain.RoleAdmin}
		stored := *in
		stored.ID = 2
		stored.CreatedAt = time.Now()

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(in.FullName, in.Email, in.PhoneNumber, in.DiscordID, in.PasswordHash, domain.RoleAdmin).
			WillReturnRows(userRows(&stored))

		user, err := repo.CreateUser(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User already exists", func(t *testing.T) {
		in := &domain.User{FullName: "Dup", Email: "dup@example.com", PasswordHash: "h"}

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(in.FullName, in.Email, in.PhoneNumber, in.DiscordID, in.PasswordHash, domain.RoleUser).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		user, err := repo.CreateUser(ctx, in)
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		in := &domain.User{FullName: "X", Email: "x@example.com", PasswordHash: "h"}

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(in.FullName, in.Email, in.PhoneNumber, in.DiscordID, in.PasswordHash, domain.RoleUser).
			WillReturnError(errors.New("database error"))

		user, err := repo.CreateUser(ctx, in)
		assert.Error(t, err)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		expected := &domain.User{
			ID:           1,
			FullName:     "Test User",
			Email:        "test@example.com",
			PasswordHash: "hashedpassword",
			Role:         domain.RoleUser,
			CreatedAt:    time.Now(),
		}

		mock.ExpectQuery(`SELECT .+ FROM users WHERE email`).
			WithArgs(expected.Email).
			WillReturnRows(userRows(expected))

		user, err := repo.GetUserByEmail(ctx, expected.Email)
		require.NoError(t, err)
		assert.Equal(t, expected.ID, user.ID)
		assert.Equal(t, expected.Email, user.Email)
		assert.Nil(t, user.DiscordID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM users WHERE email`).
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		expected := &domain.User{
			ID:        7,
			FullName:  "Test User",
			Email:     "test@example.com",
			Role:      domain.RoleAdmin,
			CreatedAt: time.Now(),
		}

		mock.ExpectQuery(`SELECT .+ FROM users WHERE id`).
			WithArgs(expected.ID).
			WillReturnRows(userRows(expected))

		user, err := repo.GetUserByID(ctx, expected.ID)
		require.NoError(t, err)
		assert.Equal(t, expected.ID, user.ID)
		assert.Equal(t, domain.RoleAdmin, user.Role)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM users WHERE id`).
			WithArgs(int64(999)).
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByID(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM users WHERE id`).
			WithArgs(int64(1)).
			WillReturnError(errors.New("database error"))

		user, err := repo.GetUserByID(ctx, 1)
		assert.Error(t, err)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
