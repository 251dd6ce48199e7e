package services

import (
	"context"
	"errors"
	"log"

	"phonestore-api/internal/adapters/persistence/models"
	"phonestore-api/internal/adapters/persistence/repositories"
	"phonestore-api/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService handles order business logic
type OrderService struct {
	orderRepo repositories.OrderRepository
	phoneRepo repositories.PhoneRepository
	userRepo  repositories.UserRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repositories.OrderRepository,
	phoneRepo repositories.PhoneRepository,
	userRepo repositories.UserRepository,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		phoneRepo: phoneRepo,
		userRepo:  userRepo,
	}
}

// CreateOrderInput represents order creation input
type CreateOrderInput struct {
	Username string      `json:"username"`
	PhoneIDs []uuid.UUID `json:"phone_ids"`
}

// CreateOrder places a new order for the given user. The user must exist,
// at least one phone is required, and every phone id must resolve.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*models.OrderResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if len(input.PhoneIDs) == 0 {
		return nil, domain.ErrOrderWithoutPhones
	}

	phones, err := s.phoneRepo.GetByIDs(ctx, input.PhoneIDs)
	if err != nil {
		return nil, err
	}
	if len(phones) != len(uniqueIDs(input.PhoneIDs)) {
		return nil, domain.ErrPhoneNotFound
	}

	order := &models.Order{
		UserID: user.ID,
		Status: domain.OrderStatusPending,
		User:   user,
		Phones: phones,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	log.Printf("Order %s created for user %s (%d phones)", order.ID, user.Username, len(phones))

	return order.ToResponse(), nil
}

// GetOrder gets an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// ListOrders lists all orders with pagination
func (s *OrderService) ListOrders(ctx context.Context, offset, limit int) ([]*models.OrderResponse, int64, error) {
	orders, total, err := s.orderRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = order.ToResponse()
	}
	return responses, total, nil
}

// ListOrdersForUser lists the orders of a single user
func (s *OrderService) ListOrdersForUser(ctx context.Context, userID uuid.UUID) ([]*models.OrderResponse, error) {
	orders, err := s.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = order.ToResponse()
	}
	return responses, nil
}

// UpdateOrderStatus moves a PENDING order to COMPLETED or CANCELLED
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error {
	if status != domain.OrderStatusCompleted && status != domain.OrderStatusCancelled {
		return domain.ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	if order.Status != domain.OrderStatusPending {
		return domain.ErrInvalidOrderStatus
	}

	return s.orderRepo.UpdateStatus(ctx, id, status)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
