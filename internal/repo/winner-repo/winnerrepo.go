package winnerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/misterwinner/raffle/internal/domain"
	"github.com/misterwinner/raffle/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, winner *domain.Winner) (*domain.Winner, error) {
	query := `
		INSERT INTO winners (raffle_id, purchase_id, user_id, winning_number, prize_position, prize_name, prize_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		winner.RaffleID, winner.PurchaseID, winner.UserID, winner.WinningNumber,
		winner.PrizePosition, winner.PrizeName, winner.PrizeAmount, winner.Status).
		Scan(&winner.ID, &winner.CreatedAt, &winner.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save winner", zap.Error(err))
		return nil, err
	}
	return winner, nil
}

func (r *Repository) GetByID(ctx context.Context, winnerID int) (*domain.Winner, error) {
	query := `
        SELECT id, raffle_id, purchase_id, user_id, winning_number, prize_position, prize_name, prize_amount, status, created_at, updated_at
        FROM winners
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, winnerID)

	var winner domain.Winner
	err := row.Scan(&winner.ID, &winner.RaffleID, &winner.PurchaseID, &winner.UserID, &winner.WinningNumber,
		&winner.PrizePosition, &winner.PrizeName, &winner.PrizeAmount, &winner.Status, &winner.CreatedAt, &winner.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find winner", zap.Error(err))
		return nil, err
	}
	return &winner, nil
}

func (r *Repository) FindByRaffleID(ctx context.Context, raffleID int) ([]domain.Winner, error) {
	query := `
        SELECT id, raffle_id, purchase_id, user_id, winning_number, prize_position, prize_name, prize_amount, status, created_at, updated_at
        FROM winners
        WHERE raffle_id = $1
        ORDER BY prize_position ASC
    `
	return r.findMany(ctx, query, raffleID)
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Winner, error) {
	query := `
        SELECT id, raffle_id, purchase_id, user_id, winning_number, prize_position, prize_name, prize_amount, status, created_at, updated_at
        FROM winners
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, userID)
}

func (r *Repository) FindRecent(ctx context.Context, limit int) ([]domain.Winner, error) {
	query := `
        SELECT id, raffle_id, purchase_id, user_id, winning_number, prize_position, prize_name, prize_amount, status, created_at, updated_at
        FROM winners
        ORDER BY created_at DESC
        LIMIT $1
    `
	return r.findMany(ctx, query, limit)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...interface{}) ([]domain.Winner, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get winners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var winners []domain.Winner
	for rows.Next() {
		var winner domain.Winner
		err := rows.Scan(&winner.ID, &winner.RaffleID, &winner.PurchaseID, &winner.UserID, &winner.WinningNumber,
			&winner.PrizePosition, &winner.PrizeName, &winner.PrizeAmount, &winner.Status, &winner.CreatedAt, &winner.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan winner row", zap.Error(err))
			return nil, err
		}
		winners = append(winners, winner)
	}
	return winners, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, winnerID int, status string) error {
	query := `
        UPDATE winners
        SET status = $1, updated_at = NOW()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, winnerID)
	if err != nil {
		zap.L().Error("failed to update winner status", zap.Error(err))
		return err
	}
	return nil
}
