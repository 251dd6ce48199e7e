package repositories

import (
	"context"

	"phonestore-api/internal/adapters/persistence/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// phoneRepository implements PhoneRepository
type phoneRepository struct {
	db *gorm.DB
}

// NewPhoneRepository creates a new phone repository
func NewPhoneRepository(db *gorm.DB) PhoneRepository {
	return &phoneRepository{db: db}
}

func (r *phoneRepository) Create(ctx context.Context, phone *models.Phone) error {
	return r.db.WithContext(ctx).Create(phone).Error
}

func (r *phoneRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Phone, error) {
	var phone models.Phone
	err := r.db.WithContext(ctx).Preload("Brand").Where("id = ?", id).First(&phone).Error
	if err != nil {
		return nil, err
	}
	return &phone, nil
}

func (r *phoneRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Phone, error) {
	var phones []models.Phone
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&phones).Error
	return phones, err
}

func (r *phoneRepository) Update(ctx context.Context, phone *models.Phone) error {
	return r.db.WithContext(ctx).Save(phone).Error
}

// Delete soft deletes a phone
func (r *phoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Phone{}, "id = ?", id).Error
}

func (r *phoneRepository) List(ctx context.Context, filter *PhoneFilter, offset, limit int) ([]*models.Phone, int64, error) {
	var phones []*models.Phone
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Phone{})
	query = applyPhoneFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Brand").Offset(offset).Limit(limit).Order("name ASC").Find(&phones).Error; err != nil {
		return nil, 0, err
	}

	return phones, total, nil
}

func applyPhoneFilter(query *gorm.DB, filter *PhoneFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.Memory != nil {
		query = query.Where("memory = ?", *filter.Memory)
	}
	if filter.Battery != nil {
		query = query.Where("battery = ?", *filter.Battery)
	}
	if filter.Price != nil {
		query = query.Where("price = ?", *filter.Price)
	}
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	return query
}
