package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewUserRepository(db), mock
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Run("user found", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		rows := sqlmock.NewRows([]string{"user_id", "name", "role"}).
			AddRow(1, "Anna", "user")
		mock.ExpectQuery("SELECT user_id, name, role").
			WithArgs(1).
			WillReturnRows(rows)

		user, err := repo.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "Anna", user.Name)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("user not found", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectQuery("SELECT user_id, name, role").
			WithArgs(999).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(context.Background(), 999)

		require.Error(t, err)
		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_ListByRole(t *testing.T) {
	t.Run("roster ordered by name", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		rows := sqlmock.NewRows([]string{"user_id", "name", "role"}).
			AddRow(3, "Anna", "user").
			AddRow(1, "Bram", "user")
		mock.ExpectQuery("SELECT user_id, name, role").
			WithArgs("user").
			WillReturnRows(rows)

		users, err := repo.ListByRole(context.Background(), domain.RoleUser)

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Anna", users[0].Name)
		assert.Equal(t, "Bram", users[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty roster", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		rows := sqlmock.NewRows([]string{"user_id", "name", "role"})
		mock.ExpectQuery("SELECT user_id, name, role").
			WithArgs("klant").
			WillReturnRows(rows)

		users, err := repo.ListByRole(context.Background(), domain.RoleKlant)

		require.NoError(t, err)
		assert.Len(t, users, 0)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		expectedError := errors.New("database error")
		mock.ExpectQuery("SELECT user_id, name, role").
			WithArgs("user").
			WillReturnError(expectedError)

		_, err := repo.ListByRole(context.Background(), domain.RoleUser)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
