package settlement

import (
	"context"
	"sync"
	"time"

	"github.com/misterwinner/raffle/internal/config"
	"github.com/misterwinner/raffle/internal/domain"
	"github.com/misterwinner/raffle/internal/repo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const batchLimit = 1000

var expiringPurchases sync.Map

// PurchaseExpirer is the slice of the purchase service the watcher needs.
type PurchaseExpirer interface {
	FailPurchase(ctx context.Context, purchaseID int) error
}

// Service expires pending purchases whose payment was never confirmed,
// releasing their numbers back to the raffle pool.
type Service struct {
	purchaseRepo    repo.PurchaseRepository
	purchaseService PurchaseExpirer
	pendingTTL      time.Duration
	checkInterval   time.Duration
	workerPool      WorkerPoolI
}

func New(cfg *config.Config, purchaseRepo repo.PurchaseRepository, purchaseService PurchaseExpirer) *Service {
	return &Service{
		purchaseRepo:    purchaseRepo,
		purchaseService: purchaseService,
		pendingTTL:      cfg.PendingTTL,
		checkInterval:   cfg.SettlementInterval,
		workerPool:      NewWorkerPool(10),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settlement watcher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement watcher")
			return
		case <-ticker.C:
			s.expireStalePurchases(ctx)
		}
	}
}

func (s *Service) expireStalePurchases(ctx context.Context) {
	cutoff := time.Now().Add(-s.pendingTTL)
	purchases, err := s.purchaseRepo.FindPendingBefore(ctx, cutoff, batchLimit)
	if err != nil {
		zap.L().Error("Failed to fetch stale pending purchases", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, purchase := range purchases {
		purchase := purchase

		if _, loaded := expiringPurchases.LoadOrStore(purchase.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer expiringPurchases.Delete(purchase.ID)
				return s.expire(ctx, purchase)
			})
			if err != nil {
				expiringPurchases.Delete(purchase.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error expiring purchases", zap.Error(err))
	}
}

func (s *Service) expire(ctx context.Context, purchase domain.Purchase) error {
	if err := s.purchaseService.FailPurchase(ctx, purchase.ID); err != nil {
		return err
	}
	zap.L().Info("expired stale pending purchase",
		zap.Int("purchase_id", purchase.ID),
		zap.Int("raffle_id", purchase.RaffleID),
		zap.Int("numbers_released", len(purchase.Numbers)))
	return nil
}
