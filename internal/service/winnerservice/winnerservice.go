package winnerservice

import (
	"context"
	"errors"

	"github.com/misterwinner/raffle/internal/domain"
	"github.com/misterwinner/raffle/internal/pg"
	"github.com/misterwinner/raffle/internal/service/purchaseservice"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, winner *domain.Winner) (*domain.Winner, error)
	GetByID(ctx context.Context, winnerID int) (*domain.Winner, error)
	FindByRaffleID(ctx context.Context, raffleID int) ([]domain.Winner, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Winner, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Winner, error)
	UpdateStatus(ctx context.Context, winnerID int, status string) error
}

type RaffleRepo interface {
	GetForUpdate(ctx context.Context, raffleID int) (*domain.Raffle, error)
	UpdateStatus(ctx context.Context, raffleID int, status string) error
}

type PurchaseRepo interface {
	FindByNumber(ctx context.Context, raffleID int, number string) (*domain.Purchase, error)
}

type Service struct {
	repo         Repo
	raffleRepo   RaffleRepo
	purchaseRepo PurchaseRepo
	txManager    pg.TXManager
}

func New(repo Repo, raffleRepo RaffleRepo, purchaseRepo PurchaseRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:         repo,
		raffleRepo:   raffleRepo,
		purchaseRepo: purchaseRepo,
		txManager:    txManager,
	}
}

var (
	ErrRaffleNotFound    = errors.New("raffle not found")
	ErrRaffleCancelled   = errors.New("cancelled raffles can't be drawn")
	ErrNoNumbersSold     = errors.New("no numbers sold for this raffle")
	ErrAlreadyDrawn      = errors.New("all prizes already have winners")
	ErrWinnerNotFound    = errors.New("winner not found")
	ErrInvalidTransition = errors.New("winner status can only move forward")
)

// Draw picks a winning number uniformly among sold numbers for every prize
// that doesn't have a winner yet, resolves the purchase holding it, and
// closes the raffle. Runs in one transaction so a crash mid-draw leaves no
// half-drawn raffle behind.
func (s *Service) Draw(ctx context.Context, raffleID int) ([]domain.Winner, error) {
	var drawn []domain.Winner
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		raffle, err := s.raffleRepo.GetForUpdate(ctx, raffleID)
		if err != nil {
			return err
		}
		if raffle == nil {
			return ErrRaffleNotFound
		}
		if raffle.Status == domain.CancelledRaffleStatus {
			return ErrRaffleCancelled
		}
		if len(raffle.SoldNumbers) == 0 {
			return ErrNoNumbersSold
		}

		existing, err := s.repo.FindByRaffleID(ctx, raffleID)
		if err != nil {
			return err
		}
		drawnPositions := make(map[int]bool, len(existing))
		usedNumbers := make(map[string]bool, len(existing))
		for _, w := range existing {
			drawnPositions[w.PrizePosition] = true
			usedNumbers[w.WinningNumber] = true
		}

		pool := make([]string, 0, len(raffle.SoldNumbers))
		for _, num := range raffle.SoldNumbers {
			if !usedNumbers[num] {
				pool = append(pool, num)
			}
		}

		remaining := 0
		for _, prize := range raffle.Prizes {
			if !drawnPositions[prize.Position] {
				remaining++
			}
		}
		if remaining == 0 {
			return ErrAlreadyDrawn
		}

		for _, prize := range raffle.Prizes {
			if drawnPositions[prize.Position] || len(pool) == 0 {
				continue
			}

			number := purchaseservice.PickRandom(pool, 1)[0]
			for i, num := range pool {
				if num == number {
					pool = append(pool[:i], pool[i+1:]...)
					break
				}
			}

			purchase, err := s.purchaseRepo.FindByNumber(ctx, raffleID, number)
			if err != nil {
				return err
			}
			if purchase == nil {
				zap.L().Error("sold number has no live purchase",
					zap.Int("raffle_id", raffleID), zap.String("number", number))
				return errors.New("ledger inconsistency: sold number has no purchase")
			}

			winner := &domain.Winner{
				RaffleID:      raffleID,
				PurchaseID:    purchase.ID,
				UserID:        purchase.UserID,
				WinningNumber: number,
				PrizePosition: prize.Position,
				PrizeName:     prize.Name,
				PrizeAmount:   prize.Amount,
				Status:        domain.PendingWinnerStatus,
			}
			if _, err := s.repo.Create(ctx, winner); err != nil {
				return err
			}
			drawn = append(drawn, *winner)
		}

		if raffle.Status == domain.ActiveRaffleStatus {
			if err := s.raffleRepo.UpdateStatus(ctx, raffleID, domain.CompletedRaffleStatus); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("draw failed", zap.Int("raffle_id", raffleID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("raffle drawn", zap.Int("raffle_id", raffleID), zap.Int("winners", len(drawn)))
	return drawn, nil
}

func (s *Service) ByRaffle(ctx context.Context, raffleID int) ([]domain.Winner, error) {
	winners, err := s.repo.FindByRaffleID(ctx, raffleID)
	if err != nil {
		zap.L().Error("failed to fetch winners by raffle", zap.Error(err))
		return nil, err
	}
	return winners, nil
}

func (s *Service) ByUser(ctx context.Context, userID int) ([]domain.Winner, error) {
	winners, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch winners by user", zap.Error(err))
		return nil, err
	}
	return winners, nil
}

func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Winner, error) {
	if limit <= 0 {
		limit = 5
	}
	winners, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		zap.L().Error("failed to fetch recent winners", zap.Error(err))
		return nil, err
	}
	return winners, nil
}

var statusOrder = map[string]int{
	domain.PendingWinnerStatus:   0,
	domain.ContactedWinnerStatus: 1,
	domain.PaidWinnerStatus:      2,
	domain.DeliveredWinnerStatus: 3,
}

// UpdateStatus advances prize delivery tracking; transitions only move
// forward.
func (s *Service) UpdateStatus(ctx context.Context, winnerID int, status string) error {
	next, ok := statusOrder[status]
	if !ok {
		return ErrInvalidTransition
	}

	winner, err := s.repo.GetByID(ctx, winnerID)
	if err != nil {
		return err
	}
	if winner == nil {
		return ErrWinnerNotFound
	}
	if next <= statusOrder[winner.Status] {
		return ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, winnerID, status); err != nil {
		zap.L().Error("failed to update winner status", zap.Error(err))
		return err
	}
	zap.L().Info("winner status updated", zap.Int("winner_id", winnerID), zap.String("status", status))
	return nil
}
