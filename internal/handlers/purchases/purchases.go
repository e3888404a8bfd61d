package purchases

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/misterwinner/raffle/internal/domain"
	"github.com/misterwinner/raffle/internal/dto"
	"github.com/misterwinner/raffle/internal/service/purchaseservice"
	"github.com/misterwinner/raffle/pkg/auth"
	"github.com/misterwinner/raffle/pkg/utils"
)

type Service interface {
	PurchaseNumbers(ctx context.Context, raffleID, userID int, numbers []string, kind purchaseservice.PaymentKind, reference string) (*domain.Purchase, error)
	CheckAvailability(ctx context.Context, raffleID int, numbers []string) (available, taken []string, err error)
	ConfirmPurchase(ctx context.Context, purchaseID int, reference string) error
	FailPurchase(ctx context.Context, purchaseID int) error
	UserPurchases(ctx context.Context, userID int) ([]domain.Purchase, error)
	RafflePurchases(ctx context.Context, raffleID int) ([]domain.Purchase, error)
}

type PurchaseHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// Purchase godoc
//
//	@Summary		Purchase raffle numbers
//	@Description	Reserve numbers atomically; rejected entirely if any requested number is sold.
//	@Tags			Purchases
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase request"
//	@Success		201		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		409		{object}	utils.Response	"Numbers already sold or raffle closed"
//	@Failure		422		{object}	utils.Response	"Validation error"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/purchases [post]
func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	purchase, err := h.purchaseService.PurchaseNumbers(r.Context(), req.RaffleID, userID,
		req.Numbers, purchaseservice.PaymentKind(req.PaymentMethod), req.PaymentReference)
	if err != nil {
		var sold *purchaseservice.NumbersAlreadySoldError
		switch {
		case errors.Is(err, purchaseservice.ErrRaffleNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, purchaseservice.ErrRaffleNotActive),
			errors.Is(err, purchaseservice.ErrConcurrentModification):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.As(err, &sold):
			utils.RespondWithJSON(w, http.StatusConflict, dto.AvailabilityResponseDTO{Taken: sold.Numbers})
		case errors.Is(err, purchaseservice.ErrInvalidNumbers),
			errors.Is(err, purchaseservice.ErrUnknownPaymentMethod),
			errors.Is(err, purchaseservice.ErrReferenceRequired):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPurchaseDTO(purchase))
}

// CheckAvailability godoc
//
//	@Summary		Check number availability
//	@Description	Advisory pre-check; the purchase itself is the authoritative check.
//	@Tags			Purchases
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Raffle ID"
//	@Param			request	body		dto.AvailabilityRequestDTO	true	"Numbers to check"
//	@Success		200		{object}	dto.AvailabilityResponseDTO
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{id}/availability [post]
func (h *PurchaseHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	raffleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raffle id")
		return
	}

	var req dto.AvailabilityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	available, taken, err := h.purchaseService.CheckAvailability(r.Context(), raffleID, req.Numbers)
	if err != nil {
		if errors.Is(err, purchaseservice.ErrRaffleNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AvailabilityResponseDTO{
		Available: available,
		Taken:     taken,
	})
}

// GetPaymentMethods godoc
//
//	@Summary	List payment methods
//	@Tags		Purchases
//	@Produce	json
//	@Success	200	{array}	dto.PaymentMethodResponseDTO
//	@Router		/api/payment-methods [get]
func (h *PurchaseHandler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods := purchaseservice.PaymentMethods()
	response := make([]dto.PaymentMethodResponseDTO, len(methods))
	for i, m := range methods {
		response[i] = dto.PaymentMethodResponseDTO{
			Kind:              string(m.Kind),
			Name:              m.Name,
			Description:       m.Description,
			RequiresReference: m.RequiresReference,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetUserPurchases godoc
//
//	@Summary		Get purchase history
//	@Tags			Purchases
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PurchaseResponseDTO
//	@Success		204	{object}	utils.Response	"No purchases"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/purchases [get]
func (h *PurchaseHandler) GetUserPurchases(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	purchases, err := h.purchaseService.UserPurchases(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch purchases")
		return
	}
	if len(purchases) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Purchases not found")
		return
	}

	response := make([]dto.PurchaseResponseDTO, len(purchases))
	for i, purchase := range purchases {
		response[i] = toPurchaseDTO(&purchase)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRafflePurchases godoc
//
//	@Summary		List purchases of a raffle
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Raffle ID"
//	@Success		200	{array}		dto.PurchaseResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/raffles/{id}/purchases [get]
func (h *PurchaseHandler) GetRafflePurchases(w http.ResponseWriter, r *http.Request) {
	raffleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raffle id")
		return
	}

	purchases, err := h.purchaseService.RafflePurchases(r.Context(), raffleID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch purchases")
		return
	}

	response := make([]dto.PurchaseResponseDTO, len(purchases))
	for i, purchase := range purchases {
		response[i] = toPurchaseDTO(&purchase)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ConfirmPurchase godoc
//
//	@Summary		Confirm a pending purchase
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Purchase ID"
//	@Param			request	body		dto.ConfirmPurchaseRequestDTO	false	"Verified payment reference"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Purchase not found"
//	@Failure		409		{object}	utils.Response	"Purchase is not pending"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/purchases/{id}/confirm [patch]
func (h *PurchaseHandler) ConfirmPurchase(w http.ResponseWriter, r *http.Request) {
	purchaseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid purchase id")
		return
	}

	var req dto.ConfirmPurchaseRequestDTO
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	if err := h.purchaseService.ConfirmPurchase(r.Context(), purchaseID, req.PaymentReference); err != nil {
		respondPurchaseStatusError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "purchase confirmed"})
}

// FailPurchase godoc
//
//	@Summary		Reject a pending purchase and release its numbers
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Purchase ID"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Purchase not found"
//	@Failure		409	{object}	utils.Response	"Purchase is not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/purchases/{id}/fail [patch]
func (h *PurchaseHandler) FailPurchase(w http.ResponseWriter, r *http.Request) {
	purchaseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid purchase id")
		return
	}

	if err := h.purchaseService.FailPurchase(r.Context(), purchaseID); err != nil {
		respondPurchaseStatusError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "purchase failed, numbers released"})
}

func respondPurchaseStatusError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, purchaseservice.ErrPurchaseNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, purchaseservice.ErrPurchaseNotPending):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toPurchaseDTO(purchase *domain.Purchase) dto.PurchaseResponseDTO {
	return dto.PurchaseResponseDTO{
		ID:               purchase.ID,
		RaffleID:         purchase.RaffleID,
		Numbers:          purchase.Numbers,
		TotalAmount:      purchase.TotalAmount,
		PaymentMethod:    purchase.PaymentMethod,
		PaymentReference: purchase.PaymentReference,
		Status:           purchase.Status,
		CreatedAt:        purchase.CreatedAt,
	}
}
