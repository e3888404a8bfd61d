package dto

import "time"

type WinnerResponseDTO struct {
	ID            int       `json:"id" example:"1"`
	RaffleID      int       `json:"raffle_id" example:"1"`
	WinningNumber string    `json:"winning_number" example:"0742"`
	PrizePosition int       `json:"prize_position" example:"1"`
	PrizeName     string    `json:"prize_name" example:"Teléfono Inteligente"`
	PrizeAmount   float64   `json:"prize_amount" example:"500"`
	Status        string    `json:"status" example:"pending"`
	CreatedAt     time.Time `json:"created_at"`
}

type UpdateWinnerStatusRequestDTO struct {
	Status string `json:"status" example:"contacted"`
}
