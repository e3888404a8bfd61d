package rafflerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/misterwinner/raffle/internal/domain"
	"github.com/misterwinner/raffle/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, raffle *domain.Raffle) (*domain.Raffle, error) {
	query := `
        INSERT INTO raffles (title, type, price_per_number, total_numbers, numbers_sold, sold_numbers, status, draw_date)
        VALUES ($1, $2, $3, $4, 0, '{}', $5, $6)
        RETURNING id, created_at, updated_at
    `
	prizeQuery := `
        INSERT INTO prizes (raffle_id, position, name, amount)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			raffle.Title, raffle.Type, raffle.PricePerNumber, raffle.TotalNumbers, raffle.Status, raffle.DrawDate)
		if err := row.Scan(&raffle.ID, &raffle.CreatedAt, &raffle.UpdatedAt); err != nil {
			zap.L().Error("can't create raffle", zap.Error(err))
			return err
		}
		for i := range raffle.Prizes {
			prize := &raffle.Prizes[i]
			prize.RaffleID = raffle.ID
			row := r.db.QueryRow(ctx, prizeQuery, raffle.ID, prize.Position, prize.Name, prize.Amount)
			if err := row.Scan(&prize.ID); err != nil {
				zap.L().Error("can't create prize", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return raffle, nil
}

func (r *Repository) GetByID(ctx context.Context, raffleID int) (*domain.Raffle, error) {
	query := `
        SELECT id, title, type, price_per_number, total_numbers, numbers_sold, sold_numbers, status, draw_date, created_at, updated_at
        FROM raffles
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, raffleID)

	var raffle domain.Raffle
	err := row.Scan(&raffle.ID, &raffle.Title, &raffle.Type, &raffle.PricePerNumber, &raffle.TotalNumbers,
		&raffle.NumbersSold, &raffle.SoldNumbers, &raffle.Status, &raffle.DrawDate, &raffle.CreatedAt, &raffle.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find raffle", zap.Error(err))
		return nil, err
	}

	prizes, err := r.findPrizes(ctx, raffle.ID)
	if err != nil {
		return nil, err
	}
	raffle.Prizes = prizes
	return &raffle, nil
}

// GetForUpdate locks the raffle row for the duration of the surrounding
// transaction. Must only be called inside txManager.Begin.
func (r *Repository) GetForUpdate(ctx context.Context, raffleID int) (*domain.Raffle, error) {
	query := `
        SELECT id, title, type, price_per_number, total_numbers, numbers_sold, sold_numbers, status, draw_date, created_at, updated_at
        FROM raffles
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, raffleID)

	var raffle domain.Raffle
	err := row.Scan(&raffle.ID, &raffle.Title, &raffle.Type, &raffle.PricePerNumber, &raffle.TotalNumbers,
		&raffle.NumbersSold, &raffle.SoldNumbers, &raffle.Status, &raffle.DrawDate, &raffle.CreatedAt, &raffle.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock raffle", zap.Error(err))
		return nil, err
	}

	prizes, err := r.findPrizes(ctx, raffle.ID)
	if err != nil {
		return nil, err
	}
	raffle.Prizes = prizes
	return &raffle, nil
}

func (r *Repository) findPrizes(ctx context.Context, raffleID int) ([]domain.Prize, error) {
	query := `
        SELECT id, raffle_id, position, name, amount
        FROM prizes
        WHERE raffle_id = $1
        ORDER BY position ASC
    `
	rows, err := r.db.Query(ctx, query, raffleID)
	if err != nil {
		zap.L().Error("can't get prizes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var prizes []domain.Prize
	for rows.Next() {
		var prize domain.Prize
		if err := rows.Scan(&prize.ID, &prize.RaffleID, &prize.Position, &prize.Name, &prize.Amount); err != nil {
			zap.L().Error("can't scan prize row", zap.Error(err))
			return nil, err
		}
		prizes = append(prizes, prize)
	}
	return prizes, nil
}

func (r *Repository) FindByStatus(ctx context.Context, status string) ([]domain.Raffle, error) {
	query := `
        SELECT id, title, type, price_per_number, total_numbers, numbers_sold, sold_numbers, status, draw_date, created_at, updated_at
        FROM raffles
        WHERE status = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, status)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Raffle, error) {
	query := `
        SELECT id, title, type, price_per_number, total_numbers, numbers_sold, sold_numbers, status, draw_date, created_at, updated_at
        FROM raffles
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query)
}

func (r *Repository) FindRecent(ctx context.Context, limit int) ([]domain.Raffle, error) {
	query := `
        SELECT id, title, type, price_per_number, total_numbers, numbers_sold, sold_numbers, status, draw_date, created_at, updated_at
        FROM raffles
        ORDER BY created_at DESC
        LIMIT $1
    `
	return r.findMany(ctx, query, limit)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...interface{}) ([]domain.Raffle, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get raffles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var raffles []domain.Raffle
	for rows.Next() {
		var raffle domain.Raffle
		err := rows.Scan(&raffle.ID, &raffle.Title, &raffle.Type, &raffle.PricePerNumber, &raffle.TotalNumbers,
			&raffle.NumbersSold, &raffle.SoldNumbers, &raffle.Status, &raffle.DrawDate, &raffle.CreatedAt, &raffle.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan raffle row", zap.Error(err))
			return nil, err
		}
		raffles = append(raffles, raffle)
	}

	for i := range raffles {
		prizes, err := r.findPrizes(ctx, raffles[i].ID)
		if err != nil {
			return nil, err
		}
		raffles[i].Prizes = prizes
	}
	return raffles, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, raffleID int, status string) error {
	query := `
        UPDATE raffles
        SET status = $1, updated_at = NOW()
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, raffleID)
		if err != nil {
			zap.L().Error("failed to update raffle status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// UpdateSoldNumbers replaces the ledger; numbers_sold stays derived from it.
func (r *Repository) UpdateSoldNumbers(ctx context.Context, raffleID int, soldNumbers []string) error {
	query := `
        UPDATE raffles
        SET sold_numbers = $1, numbers_sold = $2, updated_at = NOW()
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, soldNumbers, len(soldNumbers), raffleID)
		if err != nil {
			zap.L().Error("failed to update sold numbers", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
