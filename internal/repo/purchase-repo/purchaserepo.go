package purchaserepo

import (
	"context"
	"errors"
	"time"

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

func (r *Repository) Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	query := `
        INSERT INTO purchases (raffle_id, user_id, numbers, total_amount, payment_method, payment_reference, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			purchase.RaffleID, purchase.UserID, purchase.Numbers, purchase.TotalAmount,
			purchase.PaymentMethod, purchase.PaymentReference, purchase.Status)
		if err := row.Scan(&purchase.ID, &purchase.CreatedAt, &purchase.UpdatedAt); err != nil {
			zap.L().Error("can't create purchase", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

func (r *Repository) GetByID(ctx context.Context, purchaseID int) (*domain.Purchase, error) {
	query := `
        SELECT id, raffle_id, user_id, numbers, total_amount, payment_method, COALESCE(payment_reference, ''), status, created_at, updated_at
        FROM purchases
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, purchaseID)

	var purchase domain.Purchase
	err := row.Scan(&purchase.ID, &purchase.RaffleID, &purchase.UserID, &purchase.Numbers, &purchase.TotalAmount,
		&purchase.PaymentMethod, &purchase.PaymentReference, &purchase.Status, &purchase.CreatedAt, &purchase.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find purchase", zap.Error(err))
		return nil, err
	}
	return &purchase, nil
}

// GetByIDForUpdate locks the purchase row for the duration of the surrounding
// transaction so racing settlements serialize on it. Must only be called
// inside txManager.Begin.
func (r *Repository) GetByIDForUpdate(ctx context.Context, purchaseID int) (*domain.Purchase, error) {
	query := `
        SELECT id, raffle_id, user_id, numbers, total_amount, payment_method, COALESCE(payment_reference, ''), status, created_at, updated_at
        FROM purchases
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, purchaseID)

	var purchase domain.Purchase
	err := row.Scan(&purchase.ID, &purchase.RaffleID, &purchase.UserID, &purchase.Numbers, &purchase.TotalAmount,
		&purchase.PaymentMethod, &purchase.PaymentReference, &purchase.Status, &purchase.CreatedAt, &purchase.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock purchase", zap.Error(err))
		return nil, err
	}
	return &purchase, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Purchase, error) {
	query := `
        SELECT id, raffle_id, user_id, numbers, total_amount, payment_method, COALESCE(payment_reference, ''), status, created_at, updated_at
        FROM purchases
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, userID)
}

func (r *Repository) FindByRaffleID(ctx context.Context, raffleID int) ([]domain.Purchase, error) {
	query := `
        SELECT id, raffle_id, user_id, numbers, total_amount, payment_method, COALESCE(payment_reference, ''), status, created_at, updated_at
        FROM purchases
        WHERE raffle_id = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, raffleID)
}

// FindByNumber resolves the live purchase holding a number in a raffle.
// Failed purchases have released their numbers and are skipped.
func (r *Repository) FindByNumber(ctx context.Context, raffleID int, number string) (*domain.Purchase, error) {
	query := `
        SELECT id, raffle_id, user_id, numbers, total_amount, payment_method, COALESCE(payment_reference, ''), status, created_at, updated_at
        FROM purchases
        WHERE raffle_id = $1 AND $2 = ANY(numbers) AND status <> 'failed'
    `
	row := r.db.QueryRow(ctx, query, raffleID, number)

	var purchase domain.Purchase
	err := row.Scan(&purchase.ID, &purchase.RaffleID, &purchase.UserID, &purchase.Numbers, &purchase.TotalAmount,
		&purchase.PaymentMethod, &purchase.PaymentReference, &purchase.Status, &purchase.CreatedAt, &purchase.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find purchase by number", zap.Error(err))
		return nil, err
	}
	return &purchase, nil
}

func (r *Repository) FindPendingBefore(ctx context.Context, cutoff time.Time, limit int) ([]domain.Purchase, error) {
	query := `
        SELECT id, raffle_id, user_id, numbers, total_amount, payment_method, COALESCE(payment_reference, ''), status, created_at, updated_at
        FROM purchases
        WHERE status = 'pending' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	return r.findMany(ctx, query, cutoff, limit)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...interface{}) ([]domain.Purchase, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var purchase domain.Purchase
		err := rows.Scan(&purchase.ID, &purchase.RaffleID, &purchase.UserID, &purchase.Numbers, &purchase.TotalAmount,
			&purchase.PaymentMethod, &purchase.PaymentReference, &purchase.Status, &purchase.CreatedAt, &purchase.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, purchase)
	}
	return purchases, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, purchaseID int, status string) error {
	query := `
        UPDATE purchases
        SET status = $1, updated_at = NOW()
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, purchaseID)
		if err != nil {
			zap.L().Error("failed to update purchase status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) UpdateReference(ctx context.Context, purchaseID int, reference string) error {
	query := `
        UPDATE purchases
        SET payment_reference = $1, updated_at = NOW()
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, reference, purchaseID)
		if err != nil {
			zap.L().Error("failed to update payment reference", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
