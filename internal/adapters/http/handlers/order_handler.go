package handlers

import (
	"errors"

	"phonestore-api/internal/adapters/http/middleware"
	"phonestore-api/internal/core/domain"
	"phonestore-api/internal/core/services"
	"phonestore-api/internal/pkg/pagination"
	"phonestore-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// OrderHandler handles order requests
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// UpdateOrderStatusRequest represents the status update request body
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder handles placing an order
// @Summary Create order
// @Description Place an order for the authenticated user. Admins may place orders for another user by setting the username field.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body services.CreateOrderInput true "Order data"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 403 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/orders [post]
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	principal := middleware.Principal(c)

	var input services.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.Username == "" {
		input.Username = principal.Username
	} else if !principal.CanModify(input.Username) {
		return response.Forbidden(c, "You can only place orders for your own account")
	}

	order, err := h.orderService.CreateOrder(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrOrderWithoutPhones):
			return response.BadRequest(c, "An order requires at least one phone")
		case errors.Is(err, domain.ErrPhoneNotFound):
			return response.NotFound(c, "One or more phones could not be found")
		default:
			return response.InternalServerError(c, "Failed to create order")
		}
	}

	return response.Created(c, "Order created successfully", order)
}

// GetOrder handles fetching an order by ID
// @Summary Get order
// @Description Get a single order by ID (owner or admin)
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Body
// @Failure 403 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid order ID")
	}

	order, err := h.orderService.GetOrder(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return response.NotFound(c, "Order not found")
		}
		return response.InternalServerError(c, "Failed to get order")
	}

	owner := ""
	if order.User != nil {
		owner = order.User.Username
	}
	if !middleware.Principal(c).CanModify(owner) {
		return response.Forbidden(c, "You can only access your own orders")
	}

	return response.Success(c, "Order retrieved successfully", order.ToResponse())
}

// ListOrders handles listing all orders
// @Summary List orders
// @Description List all orders with pagination (admin only)
// @Tags Orders
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Body
// @Failure 403 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	orders, total, err := h.orderService.ListOrders(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list orders")
	}

	return response.Success(c, "Orders retrieved successfully", pagination.NewResponse(orders, params, total))
}

// MyOrders handles listing the authenticated user's orders
// @Summary List own orders
// @Description List the orders of the authenticated user
// @Tags Orders
// @Produce json
// @Success 200 {object} response.Body
// @Failure 401 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/orders/my [get]
func (h *OrderHandler) MyOrders(c *fiber.Ctx) error {
	principal := middleware.Principal(c)

	orders, err := h.orderService.ListOrdersForUser(c.Context(), principal.UserID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list orders")
	}

	return response.Success(c, "Orders retrieved successfully", orders)
}

// UpdateOrderStatus handles completing or cancelling an order
// @Summary Update order status
// @Description Set an order status to COMPLETED or CANCELLED (admin only)
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body UpdateOrderStatusRequest true "New status"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/orders/{id}/status [put]
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.orderService.UpdateOrderStatus(c.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return response.NotFound(c, "Order not found")
		case errors.Is(err, domain.ErrInvalidOrderStatus):
			return response.BadRequest(c, "Only pending orders can be set to COMPLETED or CANCELLED")
		default:
			return response.InternalServerError(c, "Failed to update order status")
		}
	}

	return response.Success(c, "Order status updated successfully", nil)
}
