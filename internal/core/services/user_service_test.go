package services

import (
	"context"
	"errors"
	"testing"

	"phonestore-api/internal/core/domain"
	"phonestore-api/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// failingExistsRepo wraps the in-memory repo and fails uniqueness lookups,
// simulating a store outage during update validation.
type failingExistsRepo struct {
	*fakeUserRepo
	err error
}

func (f *failingExistsRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, f.err
}

func (f *failingExistsRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, f.err
}

func TestUpdateUserPartialFields(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "alice", "alice@example.com", "Secret@123")
	svc := NewUserService(repo)

	result, err := svc.UpdateUser(context.Background(), "alice", &UpdateUserInput{
		Firstname: strPtr("Alice"),
		City:      strPtr("Berlin"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", result.Firstname)
	assert.Equal(t, "Berlin", result.City)
	// Untouched fields keep their values.
	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, "alice@example.com", result.Email)
}

func TestUpdateUserUnknownUser(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	_, err := svc.UpdateUser(context.Background(), "nobody", &UpdateUserInput{
		Firstname: strPtr("X"),
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateUserDuplicateUsername(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "alice", "alice@example.com", "Secret@123")
	seedUser(t, repo, "bob", "bob@example.com", "Secret@123")
	svc := NewUserService(repo)

	_, err := svc.UpdateUser(context.Background(), "alice", &UpdateUserInput{
		Username: strPtr("bob"),
	})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "alice", "alice@example.com", "Secret@123")
	seedUser(t, repo, "bob", "bob@example.com", "Secret@123")
	svc := NewUserService(repo)

	_, err := svc.UpdateUser(context.Background(), "alice", &UpdateUserInput{
		Email: strPtr("bob@example.com"),
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUpdateUserPropagatesUniquenessCheckErrors(t *testing.T) {
	inner := &fakeUserRepo{}
	seedUser(t, inner, "alice", "alice@example.com", "Secret@123")

	storeDown := errors.New("connection refused")
	repo := &failingExistsRepo{fakeUserRepo: inner, err: storeDown}
	svc := NewUserService(repo)

	_, err := svc.UpdateUser(context.Background(), "alice", &UpdateUserInput{
		Username: strPtr("alice2"),
	})
	assert.ErrorIs(t, err, storeDown)

	_, err = svc.UpdateUser(context.Background(), "alice", &UpdateUserInput{
		Email: strPtr("alice2@example.com"),
	})
	assert.ErrorIs(t, err, storeDown)

	// Nothing was written on either failed attempt.
	stored, getErr := inner.GetByUsername(context.Background(), "alice")
	require.NoError(t, getErr)
	assert.Equal(t, "alice@example.com", stored.Email)
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "alice", "alice@example.com", "Secret@123")
	svc := NewUserService(repo)

	badRole := domain.Role("OVERLORD")
	_, err := svc.UpdateUser(context.Background(), "alice", &UpdateUserInput{
		Role: &badRole,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(t, repo, "alice", "alice@example.com", "Secret@123")
	svc := NewUserService(repo)

	_, err := svc.UpdateUser(context.Background(), "alice", &UpdateUserInput{
		Password: strPtr("Changed@456"),
	})
	require.NoError(t, err)

	assert.True(t, password.Verify("Changed@456", user.Password))
	assert.False(t, password.Verify("Secret@123", user.Password))
}

func TestChangePassword(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(t, repo, "alice", "alice@example.com", "Secret@123")
	svc := NewUserService(repo)

	err := svc.ChangePassword(context.Background(), user.ID, &ChangePasswordInput{
		OldPassword: "Secret@123",
		NewPassword: "Changed@456",
	})
	require.NoError(t, err)
	assert.True(t, password.Verify("Changed@456", user.Password))
}

func TestChangePasswordWrongOld(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(t, repo, "alice", "alice@example.com", "Secret@123")
	svc := NewUserService(repo)

	err := svc.ChangePassword(context.Background(), user.ID, &ChangePasswordInput{
		OldPassword: "Wrong@123",
		NewPassword: "Changed@456",
	})
	assert.ErrorIs(t, err, ErrOldPasswordWrong)
}

func TestChangePasswordWeakNew(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(t, repo, "alice", "alice@example.com", "Secret@123")
	svc := NewUserService(repo)

	err := svc.ChangePassword(context.Background(), user.ID, &ChangePasswordInput{
		OldPassword: "Secret@123",
		NewPassword: "weak",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestDeleteUserSelfGuard(t *testing.T) {
	repo := &fakeUserRepo{}
	admin := seedUser(t, repo, "root", "root@example.com", "Secret@123")
	victim := seedUser(t, repo, "bob", "bob@example.com", "Secret@123")
	svc := NewUserService(repo)

	err := svc.DeleteUser(context.Background(), admin.ID, admin.ID)
	assert.ErrorIs(t, err, ErrCannotDeleteSelf)

	err = svc.DeleteUser(context.Background(), victim.ID, admin.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), victim.ID)
	assert.Error(t, err)
}

func TestDeleteUserUnknown(t *testing.T) {
	repo := &fakeUserRepo{}
	admin := seedUser(t, repo, "root", "root@example.com", "Secret@123")
	svc := NewUserService(repo)

	err := svc.DeleteUser(context.Background(), uuid.New(), admin.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
