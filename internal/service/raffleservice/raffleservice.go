package raffleservice

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/misterwinner/raffle/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, raffle *domain.Raffle) (*domain.Raffle, error)
	GetByID(ctx context.Context, raffleID int) (*domain.Raffle, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Raffle, error)
	FindAll(ctx context.Context) ([]domain.Raffle, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Raffle, error)
	UpdateStatus(ctx context.Context, raffleID int, status string) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrRaffleNotFound    = errors.New("raffle not found")
	ErrInvalidRaffleType = errors.New("raffle type must be 2, 4, 5 or 6")
	ErrInvalidPrice      = errors.New("price per number must be positive")
	ErrNoPrizes          = errors.New("raffle needs at least one prize")
	ErrInvalidTransition = errors.New("raffle status can't be changed")
)

var raffleTypes = map[int]bool{2: true, 4: true, 5: true, 6: true}

// Create opens a new raffle with an empty ledger. TotalNumbers is derived
// from the digit width.
func (s *Service) Create(ctx context.Context, title string, raffleType int, pricePerNumber float64, prizes []domain.Prize, drawDate time.Time) (*domain.Raffle, error) {
	if !raffleTypes[raffleType] {
		return nil, ErrInvalidRaffleType
	}
	if pricePerNumber <= 0 {
		return nil, ErrInvalidPrice
	}
	if len(prizes) == 0 {
		return nil, ErrNoPrizes
	}

	raffle := &domain.Raffle{
		Title:          title,
		Type:           raffleType,
		PricePerNumber: pricePerNumber,
		Prizes:         prizes,
		TotalNumbers:   int(math.Pow10(raffleType)),
		NumbersSold:    0,
		SoldNumbers:    []string{},
		Status:         domain.ActiveRaffleStatus,
		DrawDate:       drawDate,
	}

	created, err := s.repo.Create(ctx, raffle)
	if err != nil {
		zap.L().Error("can't create raffle", zap.Error(err))
		return nil, err
	}

	zap.L().Info("raffle created", zap.Int("raffle_id", created.ID), zap.String("title", title))
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, raffleID int) (*domain.Raffle, error) {
	raffle, err := s.repo.GetByID(ctx, raffleID)
	if err != nil {
		zap.L().Error("failed to get raffle", zap.Error(err))
		return nil, err
	}
	if raffle == nil {
		return nil, ErrRaffleNotFound
	}
	return raffle, nil
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]domain.Raffle, error) {
	raffles, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to list raffles", zap.Error(err))
		return nil, err
	}
	return raffles, nil
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Raffle, error) {
	return s.ListByStatus(ctx, domain.ActiveRaffleStatus)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Raffle, error) {
	if limit <= 0 {
		limit = 5
	}
	raffles, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		zap.L().Error("failed to get recent raffles", zap.Error(err))
		return nil, err
	}
	return raffles, nil
}

// UpdateStatus moves an active raffle to completed or cancelled. Both are
// terminal; there is no reopening.
func (s *Service) UpdateStatus(ctx context.Context, raffleID int, status string) error {
	if status != domain.CompletedRaffleStatus && status != domain.CancelledRaffleStatus {
		return ErrInvalidTransition
	}

	raffle, err := s.repo.GetByID(ctx, raffleID)
	if err != nil {
		return err
	}
	if raffle == nil {
		return ErrRaffleNotFound
	}
	if raffle.Status != domain.ActiveRaffleStatus {
		return ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, raffleID, status); err != nil {
		zap.L().Error("failed to update raffle status", zap.Error(err))
		return err
	}
	zap.L().Info("raffle status updated", zap.Int("raffle_id", raffleID), zap.String("status", status))
	return nil
}

type Progress struct {
	Sold       int `json:"sold"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

func (s *Service) Progress(ctx context.Context, raffleID int) (*Progress, error) {
	raffle, err := s.GetByID(ctx, raffleID)
	if err != nil {
		return nil, err
	}

	percentage := 0
	if raffle.TotalNumbers > 0 {
		percentage = int(math.Round(float64(raffle.NumbersSold) / float64(raffle.TotalNumbers) * 100))
	}
	return &Progress{
		Sold:       raffle.NumbersSold,
		Total:      raffle.TotalNumbers,
		Percentage: percentage,
	}, nil
}

// Search matches the query against raffle titles and prize names.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Raffle, error) {
	raffles, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to search raffles", zap.Error(err))
		return nil, err
	}

	query = strings.ToLower(query)
	matched := make([]domain.Raffle, 0)
	for _, raffle := range raffles {
		if strings.Contains(strings.ToLower(raffle.Title), query) {
			matched = append(matched, raffle)
			continue
		}
		for _, prize := range raffle.Prizes {
			if strings.Contains(strings.ToLower(prize.Name), query) {
				matched = append(matched, raffle)
				break
			}
		}
	}
	return matched, nil
}
