package repositories

import (
	"context"
	"testing"

	"phonestore-api/internal/core/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepositoryGetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "username", "email", "role", "is_active"}).
		AddRow(id.String(), "alice", "alice@example.com", string(domain.RoleUser), true)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WillReturnRows(rows)

	user, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.True(t, user.IsActive)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryExistsByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE username = \\?").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	exists, err := repo.ExistsByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE username = \\?").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	exists, err = repo.ExistsByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}
