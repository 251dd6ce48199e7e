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

// BrandService handles brand catalog business logic
type BrandService struct {
	brandRepo repositories.BrandRepository
}

// NewBrandService creates a new brand service
func NewBrandService(brandRepo repositories.BrandRepository) *BrandService {
	return &BrandService{brandRepo: brandRepo}
}

// BrandInput represents brand create/update input
type BrandInput struct {
	Name        string `json:"name"`
	PicturePath string `json:"picture_path"`
}

// ListBrands lists all brands
func (s *BrandService) ListBrands(ctx context.Context) ([]*models.Brand, error) {
	return s.brandRepo.List(ctx)
}

// GetBrand gets a brand by ID
func (s *BrandService) GetBrand(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, err
	}
	return brand, nil
}

// CreateBrand creates a new brand; names are unique
func (s *BrandService) CreateBrand(ctx context.Context, input *BrandInput, createdBy uuid.UUID) (*models.Brand, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.brandRepo.GetByName(ctx, input.Name); err == nil {
		return nil, domain.ErrBrandAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	brand := &models.Brand{
		Name:        input.Name,
		PicturePath: input.PicturePath,
		CreatedByID: &createdBy,
	}

	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, err
	}

	return brand, nil
}

// UpdateBrand updates an existing brand
func (s *BrandService) UpdateBrand(ctx context.Context, id uuid.UUID, input *BrandInput) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, err
	}

	if input.Name != "" && input.Name != brand.Name {
		if _, err := s.brandRepo.GetByName(ctx, input.Name); err == nil {
			return nil, domain.ErrBrandAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		brand.Name = input.Name
	}

	if input.PicturePath != "" {
		brand.PicturePath = input.PicturePath
	}

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}

	return brand, nil
}

// DeleteBrand deletes a brand (soft delete)
func (s *BrandService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	if _, err := s.brandRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBrandNotFound
		}
		return err
	}
	return s.brandRepo.Delete(ctx, id)
}
