package repo

import (
	"context"
	"time"

	"github.com/misterwinner/raffle/internal/domain"
	"github.com/misterwinner/raffle/internal/pg"
	purchaserepo "github.com/misterwinner/raffle/internal/repo/purchase-repo"
	rafflerepo "github.com/misterwinner/raffle/internal/repo/raffle-repo"
	userrepo "github.com/misterwinner/raffle/internal/repo/user-repo"
	winnerrepo "github.com/misterwinner/raffle/internal/repo/winner-repo"
	"github.com/misterwinner/raffle/internal/service/authservice"
	"github.com/misterwinner/raffle/internal/service/purchaseservice"
	"github.com/misterwinner/raffle/internal/service/raffleservice"
	"github.com/misterwinner/raffle/internal/service/winnerservice"
)

// RaffleRepository is the union of what the services need from the raffle
// store.
type RaffleRepository interface {
	purchaseservice.RaffleRepo
	raffleservice.Repo
}

// PurchaseRepository extends the reservation core's view with the lookups
// used by the winner draw and the settlement watcher.
type PurchaseRepository interface {
	purchaseservice.PurchaseRepo
	FindByNumber(ctx context.Context, raffleID int, number string) (*domain.Purchase, error)
	FindPendingBefore(ctx context.Context, cutoff time.Time, limit int) ([]domain.Purchase, error)
}

type Repositories struct {
	UserRepo     authservice.Repo
	RaffleRepo   RaffleRepository
	PurchaseRepo PurchaseRepository
	WinnerRepo   winnerservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	raffleRepo := rafflerepo.New(conn, txManager)
	purchaseRepo := purchaserepo.New(conn, txManager)
	winnerRepo := winnerrepo.New(conn)

	return &Repositories{
		UserRepo:     userRepo,
		RaffleRepo:   raffleRepo,
		PurchaseRepo: purchaseRepo,
		WinnerRepo:   winnerRepo,
	}
}
