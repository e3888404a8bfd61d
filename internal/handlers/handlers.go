package handlers

import (
	"net/http"

	_ "github.com/misterwinner/raffle/docs"
	authhandlers "github.com/misterwinner/raffle/internal/handlers/auth"
	purchasehandlers "github.com/misterwinner/raffle/internal/handlers/purchases"
	rafflehandlers "github.com/misterwinner/raffle/internal/handlers/raffles"
	winnerhandlers "github.com/misterwinner/raffle/internal/handlers/winners"
	"github.com/misterwinner/raffle/internal/service"
	"github.com/misterwinner/raffle/pkg/auth"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type RaffleHandler interface {
	ListRaffles(w http.ResponseWriter, r *http.Request)
	GetRaffle(w http.ResponseWriter, r *http.Request)
	GetProgress(w http.ResponseWriter, r *http.Request)
	CreateRaffle(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	CheckAvailability(w http.ResponseWriter, r *http.Request)
	GetPaymentMethods(w http.ResponseWriter, r *http.Request)
	GetUserPurchases(w http.ResponseWriter, r *http.Request)
	GetRafflePurchases(w http.ResponseWriter, r *http.Request)
	ConfirmPurchase(w http.ResponseWriter, r *http.Request)
	FailPurchase(w http.ResponseWriter, r *http.Request)
}

type WinnerHandler interface {
	GetRecentWinners(w http.ResponseWriter, r *http.Request)
	GetUserWinners(w http.ResponseWriter, r *http.Request)
	Draw(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	RaffleHandler   RaffleHandler
	PurchaseHandler PurchaseHandler
	WinnerHandler   WinnerHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		RaffleHandler:   rafflehandlers.New(s.RaffleService),
		PurchaseHandler: purchasehandlers.New(s.PurchaseService),
		WinnerHandler:   winnerhandlers.New(s.WinnerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Route("/raffles", func(r chi.Router) {
			r.Get("/", h.RaffleHandler.ListRaffles)
			r.Get("/{id}", h.RaffleHandler.GetRaffle)
			r.Get("/{id}/progress", h.RaffleHandler.GetProgress)
			r.Post("/{id}/availability", h.PurchaseHandler.CheckAvailability)
		})
		r.Get("/payment-methods", h.PurchaseHandler.GetPaymentMethods)
		r.Get("/winners", h.WinnerHandler.GetRecentWinners)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/user/purchases", func(r chi.Router) {
				r.Post("/", h.PurchaseHandler.Purchase)
				r.Get("/", h.PurchaseHandler.GetUserPurchases)
			})
			r.Get("/user/winners", h.WinnerHandler.GetUserWinners)

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware)
				r.Post("/raffles", h.RaffleHandler.CreateRaffle)
				r.Patch("/raffles/{id}/status", h.RaffleHandler.UpdateStatus)
				r.Post("/raffles/{id}/draw", h.WinnerHandler.Draw)
				r.Get("/raffles/{id}/purchases", h.PurchaseHandler.GetRafflePurchases)
				r.Patch("/purchases/{id}/confirm", h.PurchaseHandler.ConfirmPurchase)
				r.Patch("/purchases/{id}/fail", h.PurchaseHandler.FailPurchase)
				r.Patch("/winners/{id}/status", h.WinnerHandler.UpdateStatus)
			})
		})
	})

	return r
}
