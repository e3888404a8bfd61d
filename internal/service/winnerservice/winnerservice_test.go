package winnerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/misterwinner/raffle/internal/domain"
	"github.com/misterwinner/raffle/internal/pg"
	rafflerepo "github.com/misterwinner/raffle/internal/repo/raffle-repo"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockRaffleRepo, *MockPurchaseRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	raffleRepo := NewMockRaffleRepo(ctrl)
	purchaseRepo := NewMockPurchaseRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, raffleRepo, purchaseRepo, txManager)
	defer ctrl.Finish()
	return service, repo, raffleRepo, purchaseRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) *gomock.Call {
	return txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func drawableRaffle() *domain.Raffle {
	return &domain.Raffle{
		ID:     1,
		Type:   2,
		Status: domain.ActiveRaffleStatus,
		Prizes: []domain.Prize{
			{Position: 1, Name: "Teléfono Inteligente", Amount: 500},
			{Position: 2, Name: "Tarjeta de Regalo", Amount: 100},
		},
		SoldNumbers: []string{"07", "15", "42", "88"},
	}
}

func TestDraw(t *testing.T) {
	service, repo, raffleRepo, purchaseRepo, txManager := NewMock(t)

	passthroughTx(txManager)
	raffleRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(drawableRaffle(), nil)
	repo.EXPECT().FindByRaffleID(gomock.Any(), 1).Return(nil, nil)
	purchaseRepo.EXPECT().FindByNumber(gomock.Any(), 1, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, number string) (*domain.Purchase, error) {
			return &domain.Purchase{ID: 100, UserID: 7, Numbers: []string{number}}, nil
		}).Times(2)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Winner) (*domain.Winner, error) {
			w.ID = 1
			return w, nil
		}).Times(2)
	raffleRepo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.CompletedRaffleStatus).Return(nil)

	winners, err := service.Draw(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, winners, 2)

	sold := map[string]bool{"07": true, "15": true, "42": true, "88": true}
	seen := make(map[string]bool, len(winners))
	positions := make(map[int]bool, len(winners))
	for _, w := range winners {
		assert.True(t, sold[w.WinningNumber], "winning number %s was never sold", w.WinningNumber)
		assert.False(t, seen[w.WinningNumber], "number %s won twice", w.WinningNumber)
		seen[w.WinningNumber] = true
		positions[w.PrizePosition] = true
		assert.Equal(t, domain.PendingWinnerStatus, w.Status)
		assert.Equal(t, 7, w.UserID)
		assert.Equal(t, 100, w.PurchaseID)
	}
	assert.True(t, positions[1])
	assert.True(t, positions[2])
}

func TestDrawSkipsAlreadyDrawnPrizes(t *testing.T) {
	service, repo, raffleRepo, purchaseRepo, txManager := NewMock(t)

	completed := drawableRaffle()
	completed.Status = domain.CompletedRaffleStatus

	passthroughTx(txManager)
	raffleRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(completed, nil)
	repo.EXPECT().FindByRaffleID(gomock.Any(), 1).Return([]domain.Winner{
		{RaffleID: 1, PrizePosition: 1, WinningNumber: "42"},
	}, nil)
	purchaseRepo.EXPECT().FindByNumber(gomock.Any(), 1, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, number string) (*domain.Purchase, error) {
			return &domain.Purchase{ID: 101, UserID: 9, Numbers: []string{number}}, nil
		})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Winner) (*domain.Winner, error) {
			return w, nil
		})

	winners, err := service.Draw(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, winners, 1)
	assert.Equal(t, 2, winners[0].PrizePosition)
	assert.NotEqual(t, "42", winners[0].WinningNumber)
}

func TestDrawErrors(t *testing.T) {
	service, repo, raffleRepo, _, txManager := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Raffle missing",
			prepareMock: func() {
				passthroughTx(txManager)
				raffleRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrRaffleNotFound,
		},
		{
			name: "Cancelled raffle",
			prepareMock: func() {
				cancelled := drawableRaffle()
				cancelled.Status = domain.CancelledRaffleStatus
				passthroughTx(txManager)
				raffleRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(cancelled, nil)
			},
			expectedError: ErrRaffleCancelled,
		},
		{
			name: "Nothing sold",
			prepareMock: func() {
				empty := drawableRaffle()
				empty.SoldNumbers = nil
				passthroughTx(txManager)
				raffleRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(empty, nil)
			},
			expectedError: ErrNoNumbersSold,
		},
		{
			name: "All prizes drawn",
			prepareMock: func() {
				passthroughTx(txManager)
				raffleRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(drawableRaffle(), nil)
				repo.EXPECT().FindByRaffleID(gomock.Any(), 1).Return([]domain.Winner{
					{PrizePosition: 1, WinningNumber: "07"},
					{PrizePosition: 2, WinningNumber: "15"},
				}, nil)
			},
			expectedError: ErrAlreadyDrawn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			winners, err := service.Draw(context.Background(), 1)
			assert.Nil(t, winners)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestByRaffle(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	expected := []domain.Winner{{ID: 1, RaffleID: 1, WinningNumber: "42"}}
	repo.EXPECT().FindByRaffleID(gomock.Any(), 1).Return(expected, nil)

	winners, err := service.ByRaffle(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, winners)
}

func TestByUser(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	expected := []domain.Winner{{ID: 1, UserID: 7}}
	repo.EXPECT().FindByUserID(gomock.Any(), 7).Return(expected, nil)

	winners, err := service.ByUser(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, expected, winners)

	repo.EXPECT().FindByUserID(gomock.Any(), 7).Return(nil, errors.New("db error"))
	_, err = service.ByUser(context.Background(), 7)
	assert.Error(t, err)
}

func TestWinnersRecent(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	repo.EXPECT().FindRecent(gomock.Any(), 5).Return([]domain.Winner{}, nil)
	_, err := service.Recent(context.Background(), 0)
	assert.NoError(t, err)

	repo.EXPECT().FindRecent(gomock.Any(), 10).Return([]domain.Winner{}, nil)
	_, err = service.Recent(context.Background(), 10)
	assert.NoError(t, err)
}

func TestUpdateWinnerStatus(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		status        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Pending to contacted",
			status: domain.ContactedWinnerStatus,
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Winner{ID: 1, Status: domain.PendingWinnerStatus}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.ContactedWinnerStatus).Return(nil)
			},
		},
		{
			name:   "Skipping straight to delivered",
			status: domain.DeliveredWinnerStatus,
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Winner{ID: 1, Status: domain.PendingWinnerStatus}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.DeliveredWinnerStatus).Return(nil)
			},
		},
		{
			name:          "Unknown status",
			status:        "lost",
			prepareMock:   func() {},
			expectedError: ErrInvalidTransition,
		},
		{
			name:   "Winner missing",
			status: domain.ContactedWinnerStatus,
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrWinnerNotFound,
		},
		{
			name:   "Backwards transition",
			status: domain.ContactedWinnerStatus,
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Winner{ID: 1, Status: domain.PaidWinnerStatus}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name:   "Same status is rejected",
			status: domain.ContactedWinnerStatus,
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Winner{ID: 1, Status: domain.ContactedWinnerStatus}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.UpdateStatus(context.Background(), 1, tt.status)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestDrawWithRaffleRepository drives Draw through the real raffle repository
// so the locked read path is the one the service actually sees, prizes
// included.
func TestDrawWithRaffleRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	txManager := pg.NewMockTXManager(ctrl)
	raffleRepo := rafflerepo.New(mockDB, txManager)
	repo := NewMockRepo(ctrl)
	purchaseRepo := NewMockPurchaseRepo(ctrl)
	service := New(repo, raffleRepo, purchaseRepo, txManager)

	now := time.Now()
	rows := pgxmock.NewRows([]string{
		"id", "title", "type", "price_per_number", "total_numbers",
		"numbers_sold", "sold_numbers", "status", "draw_date", "created_at", "updated_at",
	}).AddRow(1, "Rifa", 2, 5.0, 100, 2, []string{"07", "42"}, "completed", now, now, now)
	mockDB.ExpectQuery("FOR UPDATE").WithArgs(1).WillReturnRows(rows)
	mockDB.ExpectQuery("FROM prizes").WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "raffle_id", "position", "name", "amount"}).
			AddRow(11, 1, 1, "Teléfono Inteligente", 500.0))

	passthroughTx(txManager)
	repo.EXPECT().FindByRaffleID(gomock.Any(), 1).Return(nil, nil)
	purchaseRepo.EXPECT().FindByNumber(gomock.Any(), 1, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, number string) (*domain.Purchase, error) {
			return &domain.Purchase{ID: 100, UserID: 7, Numbers: []string{number}}, nil
		})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Winner) (*domain.Winner, error) {
			w.ID = 1
			return w, nil
		})

	winners, err := service.Draw(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, winners, 1)
	assert.Equal(t, 1, winners[0].PrizePosition)
	assert.Equal(t, "Teléfono Inteligente", winners[0].PrizeName)
	assert.Contains(t, []string{"07", "42"}, winners[0].WinningNumber)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
