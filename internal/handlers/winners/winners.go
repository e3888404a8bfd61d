package winners

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/misterwinner/raffle/internal/domain"
	"github.com/misterwinner/raffle/internal/dto"
	"github.com/misterwinner/raffle/internal/service/winnerservice"
	"github.com/misterwinner/raffle/pkg/auth"
	"github.com/misterwinner/raffle/pkg/utils"
)

type Service interface {
	Draw(ctx context.Context, raffleID int) ([]domain.Winner, error)
	ByRaffle(ctx context.Context, raffleID int) ([]domain.Winner, error)
	ByUser(ctx context.Context, userID int) ([]domain.Winner, error)
	Recent(ctx context.Context, limit int) ([]domain.Winner, error)
	UpdateStatus(ctx context.Context, winnerID int, status string) error
}

type WinnerHandler struct {
	winnerService Service
}

func New(winnerService Service) *WinnerHandler {
	return &WinnerHandler{
		winnerService: winnerService,
	}
}

// GetRecentWinners godoc
//
//	@Summary		List recent winners
//	@Tags			Winners
//	@Produce		json
//	@Param			limit	query		int	false	"Max winners to return"
//	@Success		200		{array}		dto.WinnerResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/winners [get]
func (h *WinnerHandler) GetRecentWinners(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	winners, err := h.winnerService.Recent(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch winners")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWinnerDTOs(winners))
}

// GetUserWinners godoc
//
//	@Summary		List the authenticated user's wins
//	@Tags			Winners
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WinnerResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/winners [get]
func (h *WinnerHandler) GetUserWinners(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	winners, err := h.winnerService.ByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch winners")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWinnerDTOs(winners))
}

// Draw godoc
//
//	@Summary		Draw raffle winners
//	@Description	Pick a winning number for every prize without a winner and close the raffle.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Raffle ID"
//	@Success		200	{array}		dto.WinnerResponseDTO
//	@Failure		404	{object}	utils.Response	"Raffle not found"
//	@Failure		409	{object}	utils.Response	"Raffle can't be drawn"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/raffles/{id}/draw [post]
func (h *WinnerHandler) Draw(w http.ResponseWriter, r *http.Request) {
	raffleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raffle id")
		return
	}

	winners, err := h.winnerService.Draw(r.Context(), raffleID)
	if err != nil {
		switch {
		case errors.Is(err, winnerservice.ErrRaffleNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, winnerservice.ErrRaffleCancelled),
			errors.Is(err, winnerservice.ErrNoNumbersSold),
			errors.Is(err, winnerservice.ErrAlreadyDrawn):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWinnerDTOs(winners))
}

// UpdateStatus godoc
//
//	@Summary		Advance winner delivery status
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Winner ID"
//	@Param			request	body		dto.UpdateWinnerStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Winner not found"
//	@Failure		409		{object}	utils.Response	"Invalid transition"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/winners/{id}/status [patch]
func (h *WinnerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	winnerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid winner id")
		return
	}

	var req dto.UpdateWinnerStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.winnerService.UpdateStatus(r.Context(), winnerID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, winnerservice.ErrWinnerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, winnerservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "winner status updated"})
}

func toWinnerDTOs(winners []domain.Winner) []dto.WinnerResponseDTO {
	response := make([]dto.WinnerResponseDTO, len(winners))
	for i, winner := range winners {
		response[i] = dto.WinnerResponseDTO{
			ID:            winner.ID,
			RaffleID:      winner.RaffleID,
			WinningNumber: winner.WinningNumber,
			PrizePosition: winner.PrizePosition,
			PrizeName:     winner.PrizeName,
			PrizeAmount:   winner.PrizeAmount,
			Status:        winner.Status,
			CreatedAt:     winner.CreatedAt,
		}
	}
	return response
}
