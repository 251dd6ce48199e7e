package repositories

import (
	"context"
	"time"

	"phonestore-api/internal/adapters/persistence/models"
	"phonestore-api/internal/core/domain"

	"github.com/google/uuid"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*models.User, error)
	ListByFirstname(ctx context.Context, firstname string) ([]*models.User, error)
	ListByLastname(ctx context.Context, lastname string) ([]*models.User, error)
	ListByCountry(ctx context.Context, countryCode string) ([]*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PhoneFilter narrows phone listings; nil fields are ignored
type PhoneFilter struct {
	Name    *string
	Memory  *int
	Battery *int
	Price   *float64
	BrandID *uuid.UUID
}

// PhoneRepository defines phone repository interface
type PhoneRepository interface {
	Create(ctx context.Context, phone *models.Phone) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Phone, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Phone, error)
	Update(ctx context.Context, phone *models.Phone) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *PhoneFilter, offset, limit int) ([]*models.Phone, int64, error)
}

// BrandRepository defines brand repository interface
type BrandRepository interface {
	Create(ctx context.Context, brand *models.Brand) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	GetByName(ctx context.Context, name string) (*models.Brand, error)
	Update(ctx context.Context, brand *models.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Brand, error)
}

// OrderRepository defines order repository interface
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, offset, limit int) ([]*models.Order, int64, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	CancelStalePending(ctx context.Context, olderThan time.Time) (int64, error)
}
