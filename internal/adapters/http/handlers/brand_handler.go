package handlers

import (
	"errors"

	"phonestore-api/internal/adapters/http/middleware"
	"phonestore-api/internal/core/domain"
	"phonestore-api/internal/core/services"
	"phonestore-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// BrandHandler handles brand catalog requests
type BrandHandler struct {
	brandService *services.BrandService
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(brandService *services.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// ListBrands handles listing all brands
// @Summary List brands
// @Description List all brands
// @Tags Brands
// @Produce json
// @Success 200 {object} response.Body
// @Router /api/v1/brands [get]
func (h *BrandHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.brandService.ListBrands(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list brands")
	}

	return response.Success(c, "Brands retrieved successfully", brands)
}

// GetBrand handles fetching a brand by ID
// @Summary Get brand
// @Description Get a single brand by ID
// @Tags Brands
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /api/v1/brands/{id} [get]
func (h *BrandHandler) GetBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid brand ID")
	}

	brand, err := h.brandService.GetBrand(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return response.NotFound(c, "Brand not found")
		}
		return response.InternalServerError(c, "Failed to get brand")
	}

	return response.Success(c, "Brand retrieved successfully", brand)
}

// CreateBrand handles creating a brand
// @Summary Create brand
// @Description Create a new brand (admin only)
// @Tags Brands
// @Accept json
// @Produce json
// @Param request body services.BrandInput true "Brand data"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 409 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/brands [post]
func (h *BrandHandler) CreateBrand(c *fiber.Ctx) error {
	var input services.BrandInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	principal := middleware.Principal(c)

	brand, err := h.brandService.CreateBrand(c.Context(), &input, principal.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Brand name is required")
		case errors.Is(err, domain.ErrBrandAlreadyExists):
			return response.Conflict(c, "A brand with this name already exists")
		default:
			return response.InternalServerError(c, "Failed to create brand")
		}
	}

	return response.Created(c, "Brand created successfully", brand)
}

// UpdateBrand handles updating a brand
// @Summary Update brand
// @Description Update an existing brand (admin only)
// @Tags Brands
// @Accept json
// @Produce json
// @Param id path string true "Brand ID"
// @Param request body services.BrandInput true "Brand data"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Failure 409 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/brands/{id} [put]
func (h *BrandHandler) UpdateBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid brand ID")
	}

	var input services.BrandInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	brand, err := h.brandService.UpdateBrand(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBrandNotFound):
			return response.NotFound(c, "Brand not found")
		case errors.Is(err, domain.ErrBrandAlreadyExists):
			return response.Conflict(c, "A brand with this name already exists")
		default:
			return response.InternalServerError(c, "Failed to update brand")
		}
	}

	return response.Success(c, "Brand updated successfully", brand)
}

// DeleteBrand handles deleting a brand
// @Summary Delete brand
// @Description Delete a brand (admin only)
// @Tags Brands
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/brands/{id} [delete]
func (h *BrandHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid brand ID")
	}

	if err := h.brandService.DeleteBrand(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return response.NotFound(c, "Brand not found")
		}
		return response.InternalServerError(c, "Failed to delete brand")
	}

	return response.Success(c, "Brand deleted successfully", nil)
}
