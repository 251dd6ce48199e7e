package services

import (
	"testing"
	"time"

	"phonestore-api/internal/adapters/persistence/models"
	"phonestore-api/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCancelStaleOrders(t *testing.T) {
	now := time.Now()
	repo := &fakeOrderRepo{orders: []*models.Order{
		{ID: uuid.New(), Status: domain.OrderStatusPending, CreatedAt: now.Add(-8 * 24 * time.Hour)},
		{ID: uuid.New(), Status: domain.OrderStatusPending, CreatedAt: now.Add(-time.Hour)},
		{ID: uuid.New(), Status: domain.OrderStatusCompleted, CreatedAt: now.Add(-30 * 24 * time.Hour)},
	}}

	svc := NewCleanupService(repo)
	svc.cancelStaleOrders()

	assert.Equal(t, domain.OrderStatusCancelled, repo.orders[0].Status)
	assert.Equal(t, domain.OrderStatusPending, repo.orders[1].Status)
	assert.Equal(t, domain.OrderStatusCompleted, repo.orders[2].Status)
}
