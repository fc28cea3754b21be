package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/library/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	const query = "SELECT id, login, password_hash, created_at FROM users WHERE login = $1"

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			login: "librarian",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "created_at"}).
					AddRow(1, "librarian", "hashed_password", created)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("librarian").
					WillReturnRows(rows)
			},
			result: &domain.User{ID: 1, Login: "librarian", PasswordHash: "hashed_password", CreatedAt: created},
		},
		{
			name:  "User not found",
			login: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:  "Database error",
			login: "librarian",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("librarian").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	const query = "INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id, created_at"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		expectID  int
	}{
		{
			name: "User created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("librarian", "hash").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, created))
			},
			expectID: 5,
		},
		{
			name: "Login taken",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("librarian", "hash").
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectErr: ErrLoginTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.Create(context.Background(), &domain.User{Login: "librarian", PasswordHash: "hash"})
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectID, user.ID)
			assert.Equal(t, created, user.CreatedAt)
		})
	}
}
