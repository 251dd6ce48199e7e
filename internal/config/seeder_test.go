package config

import (
	"context"
	"testing"

	"phonestore-api/internal/adapters/persistence/models"
	"phonestore-api/internal/adapters/persistence/repositories"
	"phonestore-api/internal/core/domain"
	"phonestore-api/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory stores for seeder tests. Only the methods the seeder calls are
// implemented; the embedded interface covers the rest.

type seedUserStore struct {
	repositories.UserRepository
	users []*models.User
}

func (f *seedUserStore) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users = append(f.users, user)
	return nil
}

func (f *seedUserStore) ListByRole(ctx context.Context, role domain.Role) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type seedBrandStore struct {
	repositories.BrandRepository
	brands []*models.Brand
}

func (f *seedBrandStore) Create(ctx context.Context, brand *models.Brand) error {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	f.brands = append(f.brands, brand)
	return nil
}

func (f *seedBrandStore) List(ctx context.Context) ([]*models.Brand, error) {
	return f.brands, nil
}

func (f *seedBrandStore) GetByName(ctx context.Context, name string) (*models.Brand, error) {
	for _, b := range f.brands {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type seedPhoneStore struct {
	repositories.PhoneRepository
	phones []*models.Phone
}

func (f *seedPhoneStore) Create(ctx context.Context, phone *models.Phone) error {
	if phone.ID == uuid.Nil {
		phone.ID = uuid.New()
	}
	f.phones = append(f.phones, phone)
	return nil
}

func (f *seedPhoneStore) List(ctx context.Context, filter *repositories.PhoneFilter, offset, limit int) ([]*models.Phone, int64, error) {
	return f.phones, int64(len(f.phones)), nil
}

func newTestSeeder() (*Seeder, *seedUserStore, *seedBrandStore, *seedPhoneStore) {
	users := &seedUserStore{}
	brands := &seedBrandStore{}
	phones := &seedPhoneStore{}
	return &Seeder{users: users, brands: brands, phones: phones}, users, brands, phones
}

func TestSeederCreatesAuthenticatableAdmin(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "Admin@1234")

	seeder, users, _, _ := newTestSeeder()
	require.NoError(t, seeder.Run())

	require.Len(t, users.users, 1)
	admin := users.users[0]
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)

	// The stored hash must verify against the configured password, so the
	// seeded account can log in.
	assert.True(t, password.Verify("Admin@1234", admin.Password))
	assert.NotEqual(t, "Admin@1234", admin.Password)
}

func TestSeederHonorsAdminPasswordEnv(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "Other@5678")

	seeder, users, _, _ := newTestSeeder()
	require.NoError(t, seeder.Run())

	require.Len(t, users.users, 1)
	assert.True(t, password.Verify("Other@5678", users.users[0].Password))
	assert.False(t, password.Verify("Admin@1234", users.users[0].Password))
}

func TestSeederSeedsCatalog(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "Admin@1234")

	seeder, _, brands, phones := newTestSeeder()
	require.NoError(t, seeder.Run())

	assert.Len(t, brands.brands, 4)
	require.Len(t, phones.phones, 4)
	for _, p := range phones.phones {
		assert.NotNil(t, p.BrandID, "phone %s should be linked to a seeded brand", p.Name)
	}
}

func TestSeederIsIdempotent(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "Admin@1234")

	seeder, users, brands, phones := newTestSeeder()
	require.NoError(t, seeder.Run())
	require.NoError(t, seeder.Run())

	assert.Len(t, users.users, 1)
	assert.Len(t, brands.brands, 4)
	assert.Len(t, phones.phones, 4)
}
