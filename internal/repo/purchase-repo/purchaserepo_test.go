package purchaserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/misterwinner/raffle/internal/domain"
	"github.com/misterwinner/raffle/internal/pg"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func passthroughTx(txManager *pg.MockTXManager) *gomock.Call {
	return txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

var purchaseColumns = []string{
	"id", "raffle_id", "user_id", "numbers", "total_amount",
	"payment_method", "payment_reference", "status", "created_at", "updated_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Purchase created",
			mockSetup: func() {
				passthroughTx(txManager)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO purchases")).
					WithArgs(1, 7, []string{"07", "42"}, 10.0, "pago_movil", "0412-1234567", "pending").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(10, now, now))
			},
		},
		{
			name: "Insert fails",
			mockSetup: func() {
				passthroughTx(txManager)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO purchases")).
					WithArgs(1, 7, []string{"07", "42"}, 10.0, "pago_movil", "0412-1234567", "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			purchase := &domain.Purchase{
				RaffleID:         1,
				UserID:           7,
				Numbers:          []string{"07", "42"},
				TotalAmount:      10.0,
				PaymentMethod:    "pago_movil",
				PaymentReference: "0412-1234567",
				Status:           "pending",
			}
			created, err := repo.Create(context.Background(), purchase)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, created.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name       string
		purchaseID int
		mockSetup  func()
		expectErr  bool
		result     *domain.Purchase
	}{
		{
			name:       "Purchase exists",
			purchaseID: 10,
			mockSetup: func() {
				rows := pgxmock.NewRows(purchaseColumns).
					AddRow(10, 1, 7, []string{"07", "42"}, 10.0, "pago_movil", "REF-001", "pending", now, now)
				mock.ExpectQuery("FROM purchases").WithArgs(10).WillReturnRows(rows)
			},
			result: &domain.Purchase{
				ID:               10,
				RaffleID:         1,
				UserID:           7,
				Numbers:          []string{"07", "42"},
				TotalAmount:      10.0,
				PaymentMethod:    "pago_movil",
				PaymentReference: "REF-001",
				Status:           "pending",
				CreatedAt:        now,
				UpdatedAt:        now,
			},
		},
		{
			name:       "Purchase does not exist",
			purchaseID: 99,
			mockSetup: func() {
				mock.ExpectQuery("FROM purchases").WithArgs(99).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:       "Database error",
			purchaseID: 10,
			mockSetup: func() {
				mock.ExpectQuery("FROM purchases").WithArgs(10).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.purchaseID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByIDForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name       string
		purchaseID int
		mockSetup  func()
		expectErr  bool
		result     *domain.Purchase
	}{
		{
			name:       "Row locked and returned",
			purchaseID: 10,
			mockSetup: func() {
				rows := pgxmock.NewRows(purchaseColumns).
					AddRow(10, 1, 7, []string{"07", "42"}, 10.0, "pago_movil", "REF-001", "pending", now, now)
				mock.ExpectQuery("FOR UPDATE").WithArgs(10).WillReturnRows(rows)
			},
			result: &domain.Purchase{
				ID:               10,
				RaffleID:         1,
				UserID:           7,
				Numbers:          []string{"07", "42"},
				TotalAmount:      10.0,
				PaymentMethod:    "pago_movil",
				PaymentReference: "REF-001",
				Status:           "pending",
				CreatedAt:        now,
				UpdatedAt:        now,
			},
		},
		{
			name:       "Purchase does not exist",
			purchaseID: 99,
			mockSetup: func() {
				mock.ExpectQuery("FOR UPDATE").WithArgs(99).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:       "Database error",
			purchaseID: 10,
			mockSetup: func() {
				mock.ExpectQuery("FOR UPDATE").WithArgs(10).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByIDForUpdate(context.Background(), tt.purchaseID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(purchaseColumns).
		AddRow(10, 1, 7, []string{"07"}, 5.0, "creditos", "", "confirmed", now, now).
		AddRow(11, 2, 7, []string{"0042"}, 2.0, "puntos", "", "confirmed", now, now)
	mock.ExpectQuery("WHERE user_id").WithArgs(7).WillReturnRows(rows)

	purchases, err := repo.FindByUserID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, purchases, 2)
	assert.Equal(t, 10, purchases[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByRaffleID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(purchaseColumns).
		AddRow(10, 1, 7, []string{"07"}, 5.0, "creditos", "", "confirmed", now, now)
	mock.ExpectQuery("WHERE raffle_id").WithArgs(1).WillReturnRows(rows)

	purchases, err := repo.FindByRaffleID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, purchases, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByNumber(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectNil bool
	}{
		{
			name: "Live purchase holds the number",
			mockSetup: func() {
				rows := pgxmock.NewRows(purchaseColumns).
					AddRow(10, 1, 7, []string{"07", "42"}, 10.0, "creditos", "", "confirmed", now, now)
				mock.ExpectQuery(regexp.QuoteMeta("ANY(numbers)")).WithArgs(1, "42").WillReturnRows(rows)
			},
		},
		{
			name: "No live purchase",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("ANY(numbers)")).WithArgs(1, "42").WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			purchase, err := repo.FindByNumber(context.Background(), 1, "42")
			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, purchase)
			} else {
				assert.Equal(t, 10, purchase.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindPendingBefore(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	cutoff := now.Add(-48 * time.Hour)

	rows := pgxmock.NewRows(purchaseColumns).
		AddRow(10, 1, 7, []string{"07"}, 5.0, "transferencia", "", "pending", now.Add(-72*time.Hour), now)
	mock.ExpectQuery("WHERE status = 'pending'").WithArgs(cutoff, 1000).WillReturnRows(rows)

	purchases, err := repo.FindPendingBefore(context.Background(), cutoff, 1000)
	assert.NoError(t, err)
	assert.Len(t, purchases, 1)
	assert.Equal(t, "pending", purchases[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Status updated",
			mockSetup: func() {
				passthroughTx(txManager)
				mock.ExpectExec("UPDATE purchases").
					WithArgs("confirmed", 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				passthroughTx(txManager)
				mock.ExpectExec("UPDATE purchases").
					WithArgs("confirmed", 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateStatus(context.Background(), 10, "confirmed")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateReference(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	passthroughTx(txManager)
	mock.ExpectExec("UPDATE purchases").
		WithArgs("REF-002", 10).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateReference(context.Background(), 10, "REF-002")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
