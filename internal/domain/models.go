package domain

import "time"

const (
	RoleUser  string = "user"
	RoleAdmin string = "admin"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	// ActiveRaffleStatus tickets are on sale;
	ActiveRaffleStatus string = "active"
	// CompletedRaffleStatus the draw happened, sales are closed;
	CompletedRaffleStatus string = "completed"
	// CancelledRaffleStatus the raffle was cancelled before the draw;
	CancelledRaffleStatus string = "cancelled"
)

type Raffle struct {
	ID             int       `db:"id"`
	Title          string    `db:"title"`
	Type           int       `db:"type"`
	PricePerNumber float64   `db:"price_per_number"`
	Prizes         []Prize   `db:"-"`
	TotalNumbers   int       `db:"total_numbers"`
	NumbersSold    int       `db:"numbers_sold"`
	SoldNumbers    []string  `db:"sold_numbers"`
	Status         string    `db:"status"`
	DrawDate       time.Time `db:"draw_date"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Prize struct {
	ID       int     `db:"id"`
	RaffleID int     `db:"raffle_id"`
	Position int     `db:"position"`
	Name     string  `db:"name"`
	Amount   float64 `db:"amount"`
}

const (
	// PendingPurchaseStatus numbers are reserved, payment awaits confirmation;
	PendingPurchaseStatus string = "pending"
	// ConfirmedPurchaseStatus payment confirmed;
	ConfirmedPurchaseStatus string = "confirmed"
	// FailedPurchaseStatus payment rejected or expired, numbers released;
	FailedPurchaseStatus string = "failed"
)

type Purchase struct {
	ID               int       `db:"id"`
	RaffleID         int       `db:"raffle_id"`
	UserID           int       `db:"user_id"`
	Numbers          []string  `db:"numbers"`
	TotalAmount      float64   `db:"total_amount"`
	PaymentMethod    string    `db:"payment_method"`
	PaymentReference string    `db:"payment_reference"`
	Status           string    `db:"status"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

const (
	PendingWinnerStatus   string = "pending"
	ContactedWinnerStatus string = "contacted"
	PaidWinnerStatus      string = "paid"
	DeliveredWinnerStatus string = "delivered"
)

type Winner struct {
	ID            int       `db:"id"`
	RaffleID      int       `db:"raffle_id"`
	PurchaseID    int       `db:"purchase_id"`
	UserID        int       `db:"user_id"`
	WinningNumber string    `db:"winning_number"`
	PrizePosition int       `db:"prize_position"`
	PrizeName     string    `db:"prize_name"`
	PrizeAmount   float64   `db:"prize_amount"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
