package winnerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/misterwinner/raffle/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

var winnerColumns = []string{
	"id", "raffle_id", "purchase_id", "user_id", "winning_number",
	"prize_position", "prize_name", "prize_amount", "status", "created_at", "updated_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Winner created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO winners")).
					WithArgs(1, 10, 7, "0742", 1, "Teléfono Inteligente", 500.0, "pending").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))
			},
		},
		{
			name: "Insert fails",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO winners")).
					WithArgs(1, 10, 7, "0742", 1, "Teléfono Inteligente", 500.0, "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			winner := &domain.Winner{
				RaffleID:      1,
				PurchaseID:    10,
				UserID:        7,
				WinningNumber: "0742",
				PrizePosition: 1,
				PrizeName:     "Teléfono Inteligente",
				PrizeAmount:   500,
				Status:        "pending",
			}
			created, err := repo.Create(context.Background(), winner)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, created.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectNil bool
		expectErr bool
	}{
		{
			name: "Winner exists",
			mockSetup: func() {
				rows := pgxmock.NewRows(winnerColumns).
					AddRow(1, 1, 10, 7, "0742", 1, "Teléfono Inteligente", 500.0, "pending", now, now)
				mock.ExpectQuery("FROM winners").WithArgs(1).WillReturnRows(rows)
			},
		},
		{
			name: "Winner does not exist",
			mockSetup: func() {
				mock.ExpectQuery("FROM winners").WithArgs(1).WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("FROM winners").WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			winner, err := repo.GetByID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, winner)
			} else {
				assert.Equal(t, "0742", winner.WinningNumber)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByRaffleID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(winnerColumns).
		AddRow(1, 1, 10, 7, "0742", 1, "Teléfono Inteligente", 500.0, "pending", now, now).
		AddRow(2, 1, 11, 9, "1133", 2, "Tarjeta de Regalo", 100.0, "pending", now, now)
	mock.ExpectQuery("WHERE raffle_id").WithArgs(1).WillReturnRows(rows)

	winners, err := repo.FindByRaffleID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, winners, 2)
	assert.Equal(t, 1, winners[0].PrizePosition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(winnerColumns).
		AddRow(1, 1, 10, 7, "0742", 1, "Teléfono Inteligente", 500.0, "paid", now, now)
	mock.ExpectQuery("WHERE user_id").WithArgs(7).WillReturnRows(rows)

	winners, err := repo.FindByUserID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, winners, 1)
	assert.Equal(t, 7, winners[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindRecent(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(winnerColumns).
		AddRow(3, 2, 12, 5, "88", 1, "Moto", 1500.0, "delivered", now, now)
	mock.ExpectQuery("LIMIT").WithArgs(5).WillReturnRows(rows)

	winners, err := repo.FindRecent(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, winners, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Status updated",
			mockSetup: func() {
				mock.ExpectExec("UPDATE winners").
					WithArgs("contacted", 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec("UPDATE winners").
					WithArgs("contacted", 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateStatus(context.Background(), 1, "contacted")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
