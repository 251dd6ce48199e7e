package services

import (
	"context"
	"log"
	"time"

	"phonestore-api/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// StalePendingAge is how long an order may stay PENDING before the nightly
// job cancels it.
const StalePendingAge = 7 * 24 * time.Hour

// CleanupService runs scheduled maintenance jobs
type CleanupService struct {
	orderRepo repositories.OrderRepository
	cron      *cron.Cron
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(orderRepo repositories.OrderRepository) *CleanupService {
	return &CleanupService{
		orderRepo: orderRepo,
		cron:      cron.New(),
	}
}

// Start schedules the jobs and starts the cron runner.
// Stale-order cleanup runs daily at 02:30.
func (s *CleanupService) Start() {
	_, err := s.cron.AddFunc("30 2 * * *", s.cancelStaleOrders)
	if err != nil {
		log.Printf("Failed to schedule stale-order cleanup: %v", err)
		return
	}

	s.cron.Start()
	log.Println("CleanupService started (stale-order job daily at 02:30)")
}

// Stop stops the cron runner and waits for running jobs to finish
func (s *CleanupService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("CleanupService stopped")
}

func (s *CleanupService) cancelStaleOrders() {
	cutoff := time.Now().Add(-StalePendingAge)

	cancelled, err := s.orderRepo.CancelStalePending(context.Background(), cutoff)
	if err != nil {
		log.Printf("Stale-order cleanup error: %v", err)
		return
	}

	if cancelled > 0 {
		log.Printf("Cancelled %d stale pending orders (older than %s)", cancelled, StalePendingAge)
	}
}
