package services

import (
	"context"
	"errors"

	"phonestore-api/internal/adapters/persistence/models"
	"phonestore-api/internal/adapters/persistence/repositories"
	"phonestore-api/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhoneService handles phone catalog business logic
type PhoneService struct {
	phoneRepo repositories.PhoneRepository
	brandRepo repositories.BrandRepository
}

// NewPhoneService creates a new phone service
func NewPhoneService(phoneRepo repositories.PhoneRepository, brandRepo repositories.BrandRepository) *PhoneService {
	return &PhoneService{
		phoneRepo: phoneRepo,
		brandRepo: brandRepo,
	}
}

// PhoneInput represents phone create/update input
type PhoneInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	DisplaySize float64    `json:"display_size"`
	Memory      int        `json:"memory"`
	Battery     int        `json:"battery"`
	Price       float64    `json:"price"`
	BrandID     *uuid.UUID `json:"brand_id"`
}

// ListPhones lists phones matching the filter, with pagination
func (s *PhoneService) ListPhones(ctx context.Context, filter *repositories.PhoneFilter, offset, limit int) ([]*models.Phone, int64, error) {
	return s.phoneRepo.List(ctx, filter, offset, limit)
}

// GetPhone gets a phone by ID
func (s *PhoneService) GetPhone(ctx context.Context, id uuid.UUID) (*models.Phone, error) {
	phone, err := s.phoneRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPhoneNotFound
		}
		return nil, err
	}
	return phone, nil
}

// CreatePhone creates a new phone; the brand, when given, must exist
func (s *PhoneService) CreatePhone(ctx context.Context, input *PhoneInput) (*models.Phone, error) {
	if input.Name == "" || input.Price <= 0 {
		return nil, domain.ErrInvalidInput
	}

	if input.BrandID != nil {
		if _, err := s.brandRepo.GetByID(ctx, *input.BrandID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrBrandNotFound
			}
			return nil, err
		}
	}

	phone := &models.Phone{
		Name:        input.Name,
		Description: input.Description,
		DisplaySize: input.DisplaySize,
		Memory:      input.Memory,
		Battery:     input.Battery,
		Price:       input.Price,
		BrandID:     input.BrandID,
	}

	if err := s.phoneRepo.Create(ctx, phone); err != nil {
		return nil, err
	}

	return phone, nil
}

// UpdatePhone updates an existing phone
func (s *PhoneService) UpdatePhone(ctx context.Context, id uuid.UUID, input *PhoneInput) (*models.Phone, error) {
	phone, err := s.phoneRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPhoneNotFound
		}
		return nil, err
	}

	if input.BrandID != nil {
		if _, err := s.brandRepo.GetByID(ctx, *input.BrandID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrBrandNotFound
			}
			return nil, err
		}
		phone.BrandID = input.BrandID
	}

	phone.Name = input.Name
	phone.Description = input.Description
	phone.DisplaySize = input.DisplaySize
	phone.Memory = input.Memory
	phone.Battery = input.Battery
	phone.Price = input.Price

	if err := s.phoneRepo.Update(ctx, phone); err != nil {
		return nil, err
	}

	return phone, nil
}

// DeletePhone deletes a phone (soft delete)
func (s *PhoneService) DeletePhone(ctx context.Context, id uuid.UUID) error {
	if _, err := s.phoneRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPhoneNotFound
		}
		return err
	}
	return s.phoneRepo.Delete(ctx, id)
}

// SetPicture stores the uploaded picture path on the phone
func (s *PhoneService) SetPicture(ctx context.Context, id uuid.UUID, path string) (*models.Phone, error) {
	phone, err := s.phoneRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPhoneNotFound
		}
		return nil, err
	}

	phone.Picture = path
	if err := s.phoneRepo.Update(ctx, phone); err != nil {
		return nil, err
	}

	return phone, nil
}
