package dto

import "time"

type PurchaseRequestDTO struct {
	RaffleID         int      `json:"raffle_id" example:"1"`
	Numbers          []string `json:"numbers" example:"07,42"`
	PaymentMethod    string   `json:"payment_method" example:"pago_movil"`
	PaymentReference string   `json:"payment_reference,omitempty" example:"0412-1234567"`
}

type PurchaseResponseDTO struct {
	ID               int       `json:"id" example:"1"`
	RaffleID         int       `json:"raffle_id" example:"1"`
	Numbers          []string  `json:"numbers" example:"07,42"`
	TotalAmount      float64   `json:"total_amount" example:"10"`
	PaymentMethod    string    `json:"payment_method" example:"pago_movil"`
	PaymentReference string    `json:"payment_reference,omitempty"`
	Status           string    `json:"status" example:"pending"`
	CreatedAt        time.Time `json:"created_at"`
}

type AvailabilityRequestDTO struct {
	Numbers []string `json:"numbers" example:"07,42"`
}

type AvailabilityResponseDTO struct {
	Available []string `json:"available"`
	Taken     []string `json:"taken"`
}

type ConfirmPurchaseRequestDTO struct {
	PaymentReference string `json:"payment_reference,omitempty"`
}

type PaymentMethodResponseDTO struct {
	Kind              string `json:"kind" example:"pago_movil"`
	Name              string `json:"name" example:"Pago Móvil"`
	Description       string `json:"description"`
	RequiresReference bool   `json:"requires_reference" example:"true"`
}
