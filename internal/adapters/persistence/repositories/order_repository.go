package repositories

import (
	"context"
	"time"

	"phonestore-api/internal/adapters/persistence/models"
	"phonestore-api/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderRepository implements OrderRepository
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create persists an order together with its phone associations
func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Phones").
		Preload("Phones.Brand").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, offset, limit int) ([]*models.Order, int64, error) {
	var orders []*models.Order
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Phones").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Order, error) {
	var orders []*models.Order
	err := r.db.WithContext(ctx).
		Preload("Phones").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CancelStalePending cancels orders that have stayed PENDING since before
// the cutoff. Used by the nightly cleanup job.
func (r *orderRepository) CancelStalePending(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ? AND created_at < ?", domain.OrderStatusPending, olderThan).
		Update("status", domain.OrderStatusCancelled)
	return result.RowsAffected, result.Error
}
