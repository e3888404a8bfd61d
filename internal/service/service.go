package service

import (
	"github.com/misterwinner/raffle/internal/handlers/auth"
	"github.com/misterwinner/raffle/internal/handlers/purchases"
	"github.com/misterwinner/raffle/internal/handlers/raffles"
	"github.com/misterwinner/raffle/internal/handlers/winners"

	pkgauth "github.com/misterwinner/raffle/pkg/auth"

	"github.com/misterwinner/raffle/internal/pg"
	"github.com/misterwinner/raffle/internal/repo"
	"github.com/misterwinner/raffle/internal/service/authservice"
	"github.com/misterwinner/raffle/internal/service/purchaseservice"
	"github.com/misterwinner/raffle/internal/service/raffleservice"
	"github.com/misterwinner/raffle/internal/service/winnerservice"
)

type Services struct {
	AuthService     auth.Service
	RaffleService   raffles.Service
	PurchaseService purchases.Service
	WinnerService   winners.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	raffleService := raffleservice.New(repo.RaffleRepo)
	purchaseService := purchaseservice.New(repo.RaffleRepo, repo.PurchaseRepo, txManager)
	winnerService := winnerservice.New(repo.WinnerRepo, repo.RaffleRepo, repo.PurchaseRepo, txManager)

	return &Services{
		AuthService:     authService,
		RaffleService:   raffleService,
		PurchaseService: purchaseService,
		WinnerService:   winnerService,
	}
}
