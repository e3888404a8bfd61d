package dto

import "time"

type PrizeDTO struct {
	Position int     `json:"position" example:"1"`
	Name     string  `json:"name" example:"Teléfono Inteligente"`
	Amount   float64 `json:"amount" example:"500"`
}

type CreateRaffleRequestDTO struct {
	Title          string     `json:"title" example:"Rifa Especial de Julio"`
	Type           int        `json:"type" example:"4"`
	PricePerNumber float64    `json:"price_per_number" example:"2"`
	Prizes         []PrizeDTO `json:"prizes"`
	DrawDate       time.Time  `json:"draw_date" example:"2025-07-30T20:00:00Z"`
}

type RaffleResponseDTO struct {
	ID             int        `json:"id" example:"1"`
	Title          string     `json:"title" example:"Rifa Especial de Julio"`
	Type           int        `json:"type" example:"4"`
	PricePerNumber float64    `json:"price_per_number" example:"2"`
	Prizes         []PrizeDTO `json:"prizes"`
	TotalNumbers   int        `json:"total_numbers" example:"10000"`
	NumbersSold    int        `json:"numbers_sold" example:"7800"`
	Status         string     `json:"status" example:"active"`
	DrawDate       time.Time  `json:"draw_date"`
	CreatedAt      time.Time  `json:"created_at"`
}

type UpdateRaffleStatusRequestDTO struct {
	Status string `json:"status" example:"completed"`
}

type RaffleProgressResponseDTO struct {
	Sold       int `json:"sold" example:"7800"`
	Total      int `json:"total" example:"10000"`
	Percentage int `json:"percentage" example:"78"`
}
