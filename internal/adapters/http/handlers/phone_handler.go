package handlers

import (
	"errors"
	"strconv"

	"phonestore-api/internal/adapters/persistence/repositories"
	"phonestore-api/internal/core/domain"
	"phonestore-api/internal/core/services"
	"phonestore-api/internal/pkg/pagination"
	"phonestore-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PhoneHandler handles phone catalog requests
type PhoneHandler struct {
	phoneService *services.PhoneService
}

// NewPhoneHandler creates a new phone handler
func NewPhoneHandler(phoneService *services.PhoneService) *PhoneHandler {
	return &PhoneHandler{phoneService: phoneService}
}

// ListPhones handles listing phones with optional filters
// @Summary List phones
// @Description List phones with optional filters and pagination
// @Tags Phones
// @Produce json
// @Param name query string false "Filter by name"
// @Param memory query int false "Filter by memory in GB"
// @Param battery query int false "Filter by battery in mAh"
// @Param price query number false "Filter by price"
// @Param brand_id query string false "Filter by brand ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Body
// @Router /api/v1/phones [get]
func (h *PhoneHandler) ListPhones(c *fiber.Ctx) error {
	filter, err := parsePhoneFilter(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	params := pagination.GetParams(c)

	phones, total, err := h.phoneService.ListPhones(c.Context(), filter, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list phones")
	}

	return response.Success(c, "Phones retrieved successfully", pagination.NewResponse(phones, params, total))
}

// GetPhone handles fetching a phone by ID
// @Summary Get phone
// @Description Get a single phone by ID
// @Tags Phones
// @Produce json
// @Param id path string true "Phone ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /api/v1/phones/{id} [get]
func (h *PhoneHandler) GetPhone(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid phone ID")
	}

	phone, err := h.phoneService.GetPhone(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPhoneNotFound) {
			return response.NotFound(c, "Phone not found")
		}
		return response.InternalServerError(c, "Failed to get phone")
	}

	return response.Success(c, "Phone retrieved successfully", phone)
}

// CreatePhone handles creating a phone
// @Summary Create phone
// @Description Create a new phone (admin only)
// @Tags Phones
// @Accept json
// @Produce json
// @Param request body services.PhoneInput true "Phone data"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/phones [post]
func (h *PhoneHandler) CreatePhone(c *fiber.Ctx) error {
	var input services.PhoneInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	phone, err := h.phoneService.CreatePhone(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Name and a positive price are required")
		case errors.Is(err, domain.ErrBrandNotFound):
			return response.NotFound(c, "Brand not found")
		default:
			return response.InternalServerError(c, "Failed to create phone")
		}
	}

	return response.Created(c, "Phone created successfully", phone)
}

// UpdatePhone handles updating a phone
// @Summary Update phone
// @Description Update an existing phone (admin only)
// @Tags Phones
// @Accept json
// @Produce json
// @Param id path string true "Phone ID"
// @Param request body services.PhoneInput true "Phone data"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/phones/{id} [put]
func (h *PhoneHandler) UpdatePhone(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid phone ID")
	}

	var input services.PhoneInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	phone, err := h.phoneService.UpdatePhone(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPhoneNotFound):
			return response.NotFound(c, "Phone not found")
		case errors.Is(err, domain.ErrBrandNotFound):
			return response.NotFound(c, "Brand not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Name and a positive price are required")
		default:
			return response.InternalServerError(c, "Failed to update phone")
		}
	}

	return response.Success(c, "Phone updated successfully", phone)
}

// DeletePhone handles deleting a phone
// @Summary Delete phone
// @Description Delete a phone (admin only)
// @Tags Phones
// @Produce json
// @Param id path string true "Phone ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/phones/{id} [delete]
func (h *PhoneHandler) DeletePhone(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid phone ID")
	}

	if err := h.phoneService.DeletePhone(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPhoneNotFound) {
			return response.NotFound(c, "Phone not found")
		}
		return response.InternalServerError(c, "Failed to delete phone")
	}

	return response.Success(c, "Phone deleted successfully", nil)
}

// UploadPicture handles uploading a phone picture
// @Summary Upload phone picture
// @Description Upload a picture for a phone (admin only)
// @Tags Phones
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Phone ID"
// @Param picture formData file true "Phone picture"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/phones/{id}/picture [post]
func (h *PhoneHandler) UploadPicture(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid phone ID")
	}

	file, err := c.FormFile("picture")
	if err != nil {
		return response.BadRequest(c, "Picture file is required")
	}

	path, err := saveUpload(c, file, "phones")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	phone, err := h.phoneService.SetPicture(c.Context(), id, path)
	if err != nil {
		if errors.Is(err, domain.ErrPhoneNotFound) {
			return response.NotFound(c, "Phone not found")
		}
		return response.InternalServerError(c, "Failed to save phone picture")
	}

	return response.Success(c, "Phone picture uploaded successfully", phone)
}

func parsePhoneFilter(c *fiber.Ctx) (*repositories.PhoneFilter, error) {
	filter := &repositories.PhoneFilter{}

	if name := c.Query("name"); name != "" {
		filter.Name = &name
	}
	if raw := c.Query("memory"); raw != "" {
		memory, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("memory must be an integer")
		}
		filter.Memory = &memory
	}
	if raw := c.Query("battery"); raw != "" {
		battery, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("battery must be an integer")
		}
		filter.Battery = &battery
	}
	if raw := c.Query("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("price must be a number")
		}
		filter.Price = &price
	}
	if raw := c.Query("brand_id"); raw != "" {
		brandID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("brand_id must be a valid UUID")
		}
		filter.BrandID = &brandID
	}

	return filter, nil
}
