package repo

import (
	"testing"

	"github.com/misterwinner/raffle/internal/pg"
	purchaserepo "github.com/misterwinner/raffle/internal/repo/purchase-repo"
	rafflerepo "github.com/misterwinner/raffle/internal/repo/raffle-repo"
	userrepo "github.com/misterwinner/raffle/internal/repo/user-repo"
	winnerrepo "github.com/misterwinner/raffle/internal/repo/winner-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.RaffleRepo)
	assert.NotNil(t, repo.PurchaseRepo)
	assert.NotNil(t, repo.WinnerRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &rafflerepo.Repository{}, repo.RaffleRepo)
	assert.IsType(t, &purchaserepo.Repository{}, repo.PurchaseRepo)
	assert.IsType(t, &winnerrepo.Repository{}, repo.WinnerRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
