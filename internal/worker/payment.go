package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// PaymentSweep applies confirmed payments to guild subscriptions. Upgrade and
// processed-stamp happen in one transaction so a payment is never applied
// twice and never half-applied.
type PaymentSweep struct {
	payments  PaymentStore
	guilds    GuildStore
	txManager TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

func NewPaymentSweep(payments PaymentStore, guilds GuildStore, txManager TransactionManager, logger *slog.Logger) *PaymentSweep {
	return &PaymentSweep{
		payments:  payments,
		guilds:    guilds,
		txManager: txManager,
		logger:    logger.With("component", "payment_sweep"),
		now:       time.Now,
	}
}

func (w *PaymentSweep) Name() string { return "payment_sweep" }

func (w *PaymentSweep) Run(ctx context.Context) error {
	payments, err := w.payments.ListConfirmed(ctx)
	if err != nil {
		return fmt.Errorf("list confirmed payments: %w", err)
	}
	if len(payments) == 0 {
		return nil
	}

	applied := 0
	for i := range payments {
		payment := &payments[i]
		now := w.now()

		err := w.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := w.guilds.UpgradePremium(txCtx, payment.GuildID, payment.PremiumDays, now); err != nil {
				return fmt.Errorf("upgrade guild: %w", err)
			}
			if err := w.payments.MarkProcessed(txCtx, payment.ID, now); err != nil {
				return fmt.Errorf("mark processed: %w", err)
			}
			return nil
		})
		if err != nil {
			w.logger.Error("apply payment", "payment_id", payment.ID, "guild_id", payment.GuildID, "error", err)
			continue
		}

		applied++
		w.logger.Info("payment applied",
			"payment_id", payment.ID,
			"guild_id", payment.GuildID,
			"premium_days", payment.PremiumDays,
		)
	}

	w.logger.Info("payment sweep completed", "confirmed", len(payments), "applied", applied)
	return nil
}
