package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"linkwatch/internal/domain"
	"linkwatch/internal/storage"
)

type PaymentStore struct {
	db *sqlx.DB
}

func NewPaymentStore(db *sqlx.DB) *PaymentStore {
	return &PaymentStore{db: db}
}

// ListConfirmed returns payments verified upstream that have not had their
// tier upgrade applied yet.
func (s *PaymentStore) ListConfirmed(ctx context.Context) ([]domain.Payment, error) {
	query := `
		SELECT id, guild_id, amount, currency, premium_days, status,
		       tx_reference, created_at, confirmed_at, processed_at
		FROM payments
		WHERE status = $1
		ORDER BY confirmed_at`

	var payments []domain.Payment
	err := s.db.SelectContext(ctx, &payments, query, domain.PaymentConfirmed)
	return payments, err
}

// MarkProcessed transitions a payment out of the sweep's working set. The
// status predicate makes reapplying a payment impossible even if two sweeps
// ever overlap.
func (s *PaymentStore) MarkProcessed(ctx context.Context, id string, at time.Time) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE payments
		SET status = $2, processed_at = $3
		WHERE id = $1 AND status = $4`,
		id, domain.PaymentProcessed, at, domain.PaymentConfirmed)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrPaymentNotFound
	}
	return nil
}
