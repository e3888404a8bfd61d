package raffles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/misterwinner/raffle/internal/domain"
	"github.com/misterwinner/raffle/internal/dto"
	"github.com/misterwinner/raffle/internal/service/raffleservice"
	"github.com/misterwinner/raffle/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, title string, raffleType int, pricePerNumber float64, prizes []domain.Prize, drawDate time.Time) (*domain.Raffle, error)
	GetByID(ctx context.Context, raffleID int) (*domain.Raffle, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Raffle, error)
	ListActive(ctx context.Context) ([]domain.Raffle, error)
	Recent(ctx context.Context, limit int) ([]domain.Raffle, error)
	UpdateStatus(ctx context.Context, raffleID int, status string) error
	Progress(ctx context.Context, raffleID int) (*raffleservice.Progress, error)
	Search(ctx context.Context, query string) ([]domain.Raffle, error)
}

type RaffleHandler struct {
	raffleService Service
}

func New(raffleService Service) *RaffleHandler {
	return &RaffleHandler{
		raffleService: raffleService,
	}
}

// ListRaffles godoc
//
//	@Summary		List raffles
//	@Description	List raffles, active ones by default; filter with ?status=, search with ?q=, or request the latest with ?recent=
//	@Tags			Raffles
//	@Produce		json
//	@Param			status	query		string	false	"Raffle status filter"
//	@Param			q		query		string	false	"Search query"
//	@Param			recent	query		int		false	"Return the N most recently created raffles"
//	@Success		200		{array}		dto.RaffleResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid recent limit"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles [get]
func (h *RaffleHandler) ListRaffles(w http.ResponseWriter, r *http.Request) {
	var (
		raffles []domain.Raffle
		err     error
	)
	switch {
	case r.URL.Query().Get("q") != "":
		raffles, err = h.raffleService.Search(r.Context(), r.URL.Query().Get("q"))
	case r.URL.Query().Get("recent") != "":
		limit, convErr := strconv.Atoi(r.URL.Query().Get("recent"))
		if convErr != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid recent limit")
			return
		}
		raffles, err = h.raffleService.Recent(r.Context(), limit)
	case r.URL.Query().Get("status") != "":
		raffles, err = h.raffleService.ListByStatus(r.Context(), r.URL.Query().Get("status"))
	default:
		raffles, err = h.raffleService.ListActive(r.Context())
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RaffleResponseDTO, len(raffles))
	for i, raffle := range raffles {
		response[i] = toRaffleDTO(&raffle)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRaffle godoc
//
//	@Summary		Get a raffle
//	@Tags			Raffles
//	@Produce		json
//	@Param			id	path		int	true	"Raffle ID"
//	@Success		200	{object}	dto.RaffleResponseDTO
//	@Failure		404	{object}	utils.Response	"Raffle not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{id} [get]
func (h *RaffleHandler) GetRaffle(w http.ResponseWriter, r *http.Request) {
	raffleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raffle id")
		return
	}

	raffle, err := h.raffleService.GetByID(r.Context(), raffleID)
	if err != nil {
		if errors.Is(err, raffleservice.ErrRaffleNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRaffleDTO(raffle))
}

// GetProgress godoc
//
//	@Summary		Get raffle sales progress
//	@Tags			Raffles
//	@Produce		json
//	@Param			id	path		int	true	"Raffle ID"
//	@Success		200	{object}	dto.RaffleProgressResponseDTO
//	@Failure		404	{object}	utils.Response	"Raffle not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{id}/progress [get]
func (h *RaffleHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	raffleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raffle id")
		return
	}

	progress, err := h.raffleService.Progress(r.Context(), raffleID)
	if err != nil {
		if errors.Is(err, raffleservice.ErrRaffleNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RaffleProgressResponseDTO{
		Sold:       progress.Sold,
		Total:      progress.Total,
		Percentage: progress.Percentage,
	})
}

// CreateRaffle godoc
//
//	@Summary		Create a raffle
//	@Description	Open a new raffle with an empty ledger. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRaffleRequestDTO	true	"Raffle to create"
//	@Success		201		{object}	dto.RaffleResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		422		{object}	utils.Response	"Validation error"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/raffles [post]
func (h *RaffleHandler) CreateRaffle(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRaffleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prizes := make([]domain.Prize, len(req.Prizes))
	for i, prize := range req.Prizes {
		prizes[i] = domain.Prize{
			Position: prize.Position,
			Name:     prize.Name,
			Amount:   prize.Amount,
		}
	}

	raffle, err := h.raffleService.Create(r.Context(), req.Title, req.Type, req.PricePerNumber, prizes, req.DrawDate)
	if err != nil {
		switch {
		case errors.Is(err, raffleservice.ErrInvalidRaffleType),
			errors.Is(err, raffleservice.ErrInvalidPrice),
			errors.Is(err, raffleservice.ErrNoPrizes):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toRaffleDTO(raffle))
}

// UpdateStatus godoc
//
//	@Summary		Complete or cancel a raffle
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Raffle ID"
//	@Param			request	body		dto.UpdateRaffleStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		409		{object}	utils.Response	"Invalid transition"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/raffles/{id}/status [patch]
func (h *RaffleHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	raffleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raffle id")
		return
	}

	var req dto.UpdateRaffleStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.raffleService.UpdateStatus(r.Context(), raffleID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, raffleservice.ErrRaffleNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, raffleservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "raffle status updated"})
}

func toRaffleDTO(raffle *domain.Raffle) dto.RaffleResponseDTO {
	prizes := make([]dto.PrizeDTO, len(raffle.Prizes))
	for i, prize := range raffle.Prizes {
		prizes[i] = dto.PrizeDTO{
			Position: prize.Position,
			Name:     prize.Name,
			Amount:   prize.Amount,
		}
	}
	return dto.RaffleResponseDTO{
		ID:             raffle.ID,
		Title:          raffle.Title,
		Type:           raffle.Type,
		PricePerNumber: raffle.PricePerNumber,
		Prizes:         prizes,
		TotalNumbers:   raffle.TotalNumbers,
		NumbersSold:    raffle.NumbersSold,
		Status:         raffle.Status,
		DrawDate:       raffle.DrawDate,
		CreatedAt:      raffle.CreatedAt,
	}
}
