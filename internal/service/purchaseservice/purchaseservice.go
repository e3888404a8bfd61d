package purchaseservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/misterwinner/raffle/internal/domain"
	"github.com/misterwinner/raffle/internal/pg"
	"go.uber.org/zap"
)

type RaffleRepo interface {
	GetByID(ctx context.Context, raffleID int) (*domain.Raffle, error)
	GetForUpdate(ctx context.Context, raffleID int) (*domain.Raffle, error)
	UpdateSoldNumbers(ctx context.Context, raffleID int, soldNumbers []string) error
}

type PurchaseRepo interface {
	Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	GetByID(ctx context.Context, purchaseID int) (*domain.Purchase, error)
	GetByIDForUpdate(ctx context.Context, purchaseID int) (*domain.Purchase, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Purchase, error)
	FindByRaffleID(ctx context.Context, raffleID int) ([]domain.Purchase, error)
	UpdateStatus(ctx context.Context, purchaseID int, status string) error
	UpdateReference(ctx context.Context, purchaseID int, reference string) error
}

type Service struct {
	raffleRepo   RaffleRepo
	purchaseRepo PurchaseRepo
	txManager    pg.TXManager
}

func New(raffleRepo RaffleRepo, purchaseRepo PurchaseRepo, txManager pg.TXManager) *Service {
	return &Service{
		raffleRepo:   raffleRepo,
		purchaseRepo: purchaseRepo,
		txManager:    txManager,
	}
}

const maxNumbersPerPurchase = 10

const (
	maxTxAttempts  = 3
	initialBackoff = 50 * time.Millisecond
)

var (
	ErrRaffleNotFound         = errors.New("raffle not found")
	ErrRaffleNotActive        = errors.New("raffle is not active")
	ErrPurchaseNotFound       = errors.New("purchase not found")
	ErrPurchaseNotPending     = errors.New("purchase is not pending")
	ErrUnknownPaymentMethod   = errors.New("unknown payment method")
	ErrReferenceRequired      = errors.New("payment reference is required for this method")
	ErrInvalidNumbers         = errors.New("invalid numbers requested")
	ErrConcurrentModification = errors.New("numbers may have just been taken, please retry")
)

// NumbersAlreadySoldError reports which of the requested numbers are gone.
// The whole request is rejected; nothing is partially reserved.
type NumbersAlreadySoldError struct {
	Numbers []string
}

func (e *NumbersAlreadySoldError) Error() string {
	return "numbers already sold: " + strings.Join(e.Numbers, ", ")
}

// PurchaseNumbers reserves the requested numbers and records the purchase in
// a single transaction. The raffle row is locked for the read-check-write
// sequence, so two buyers can never both win the same number. Transient
// serialization failures are retried with backoff before surfacing
// ErrConcurrentModification.
func (s *Service) PurchaseNumbers(ctx context.Context, raffleID, userID int, numbers []string, kind PaymentKind, reference string) (*domain.Purchase, error) {
	method, ok := MethodByKind(kind)
	if !ok {
		return nil, ErrUnknownPaymentMethod
	}
	if method.RequiresReference && reference == "" {
		return nil, ErrReferenceRequired
	}
	if len(numbers) == 0 || len(numbers) > maxNumbersPerPurchase {
		return nil, fmt.Errorf("%w: between 1 and %d numbers per purchase", ErrInvalidNumbers, maxNumbersPerPurchase)
	}
	seen := make(map[string]bool, len(numbers))
	for _, num := range numbers {
		if seen[num] {
			return nil, fmt.Errorf("%w: duplicate number %s", ErrInvalidNumbers, num)
		}
		seen[num] = true
	}

	var purchase *domain.Purchase
	backoff := initialBackoff

	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			p, err := s.reserve(ctx, raffleID, userID, numbers, method, reference)
			if err != nil {
				return err
			}
			purchase = p
			return nil
		})
		if err == nil {
			zap.L().Info("numbers purchased",
				zap.Int("raffle_id", raffleID),
				zap.Int("user_id", userID),
				zap.Int("count", len(numbers)),
				zap.String("status", purchase.Status))
			return purchase, nil
		}
		if !isRetryable(err) {
			return nil, err
		}

		zap.L().Warn("purchase transaction conflicted, retrying",
			zap.Int("raffle_id", raffleID),
			zap.Int("attempt", attempt),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return nil, ErrConcurrentModification
}

func (s *Service) reserve(ctx context.Context, raffleID, userID int, numbers []string, method PaymentMethod, reference string) (*domain.Purchase, error) {
	raffle, err := s.raffleRepo.GetForUpdate(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if raffle == nil {
		return nil, ErrRaffleNotFound
	}
	if raffle.Status != domain.ActiveRaffleStatus {
		return nil, ErrRaffleNotActive
	}

	for _, num := range numbers {
		if !isValidNumber(num, raffle.Type) {
			return nil, fmt.Errorf("%w: %q is not a %d-digit number", ErrInvalidNumbers, num, raffle.Type)
		}
	}

	sold := make(map[string]bool, len(raffle.SoldNumbers))
	for _, num := range raffle.SoldNumbers {
		sold[num] = true
	}
	var conflicts []string
	for _, num := range numbers {
		if sold[num] {
			conflicts = append(conflicts, num)
		}
	}
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return nil, &NumbersAlreadySoldError{Numbers: conflicts}
	}

	status := domain.PendingPurchaseStatus
	if method.SettlesImmediately {
		status = domain.ConfirmedPurchaseStatus
	}

	purchase := &domain.Purchase{
		RaffleID:         raffleID,
		UserID:           userID,
		Numbers:          numbers,
		TotalAmount:      float64(len(numbers)) * raffle.PricePerNumber,
		PaymentMethod:    string(method.Kind),
		PaymentReference: reference,
		Status:           status,
	}
	if _, err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	updated := make([]string, 0, len(raffle.SoldNumbers)+len(numbers))
	updated = append(updated, raffle.SoldNumbers...)
	updated = append(updated, numbers...)
	if err := s.raffleRepo.UpdateSoldNumbers(ctx, raffleID, updated); err != nil {
		return nil, err
	}
	return purchase, nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// serialization_failure, deadlock_detected
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// CheckAvailability is the advisory pre-check used for UI feedback. It reads
// outside a transaction; the authoritative check happens in PurchaseNumbers.
func (s *Service) CheckAvailability(ctx context.Context, raffleID int, numbers []string) (available, taken []string, err error) {
	raffle, err := s.raffleRepo.GetByID(ctx, raffleID)
	if err != nil {
		zap.L().Error("failed to get raffle", zap.Error(err))
		return nil, nil, err
	}
	if raffle == nil {
		return nil, nil, ErrRaffleNotFound
	}

	sold := make(map[string]bool, len(raffle.SoldNumbers))
	for _, num := range raffle.SoldNumbers {
		sold[num] = true
	}
	for _, num := range numbers {
		if sold[num] {
			taken = append(taken, num)
		} else {
			available = append(available, num)
		}
	}
	return available, taken, nil
}

// ConfirmPurchase settles a pending purchase after the payment was verified.
// The purchase row is locked so a racing expiry can't fail it in between.
func (s *Service) ConfirmPurchase(ctx context.Context, purchaseID int, reference string) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		purchase, err := s.purchaseRepo.GetByIDForUpdate(ctx, purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return ErrPurchaseNotFound
		}
		if purchase.Status != domain.PendingPurchaseStatus {
			return ErrPurchaseNotPending
		}
		if reference != "" {
			if err := s.purchaseRepo.UpdateReference(ctx, purchaseID, reference); err != nil {
				return err
			}
		}
		return s.purchaseRepo.UpdateStatus(ctx, purchaseID, domain.ConfirmedPurchaseStatus)
	})
	if err != nil {
		zap.L().Error("failed to confirm purchase", zap.Int("purchase_id", purchaseID), zap.Error(err))
		return err
	}
	zap.L().Info("purchase confirmed", zap.Int("purchase_id", purchaseID))
	return nil
}

// FailPurchase rejects a pending purchase and releases its numbers back to
// the raffle pool in the same transaction, so abandoned reservations don't
// shrink the number space.
func (s *Service) FailPurchase(ctx context.Context, purchaseID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		purchase, err := s.purchaseRepo.GetByIDForUpdate(ctx, purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return ErrPurchaseNotFound
		}
		if purchase.Status != domain.PendingPurchaseStatus {
			return ErrPurchaseNotPending
		}

		raffle, err := s.raffleRepo.GetForUpdate(ctx, purchase.RaffleID)
		if err != nil {
			return err
		}
		if raffle == nil {
			return ErrRaffleNotFound
		}

		if err := s.purchaseRepo.UpdateStatus(ctx, purchaseID, domain.FailedPurchaseStatus); err != nil {
			return err
		}

		released := make(map[string]bool, len(purchase.Numbers))
		for _, num := range purchase.Numbers {
			released[num] = true
		}
		remaining := make([]string, 0, len(raffle.SoldNumbers))
		for _, num := range raffle.SoldNumbers {
			if !released[num] {
				remaining = append(remaining, num)
			}
		}
		return s.raffleRepo.UpdateSoldNumbers(ctx, purchase.RaffleID, remaining)
	})
	if err != nil {
		zap.L().Error("failed to fail purchase", zap.Int("purchase_id", purchaseID), zap.Error(err))
		return err
	}
	zap.L().Info("purchase failed, numbers released", zap.Int("purchase_id", purchaseID))
	return nil
}

func (s *Service) UserPurchases(ctx context.Context, userID int) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch user purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}

func (s *Service) RafflePurchases(ctx context.Context, raffleID int) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.FindByRaffleID(ctx, raffleID)
	if err != nil {
		zap.L().Error("failed to fetch raffle purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}
