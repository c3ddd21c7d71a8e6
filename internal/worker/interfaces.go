package worker

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"linkwatch/internal/domain"
)

type GuildStore interface {
	ListExpired(ctx context.Context, now time.Time) ([]string, error)
	Downgrade(ctx context.Context, guildID string) error
	UpgradePremium(ctx context.Context, guildID string, days int, now time.Time) error
}

type PaymentStore interface {
	ListConfirmed(ctx context.Context) ([]domain.Payment, error)
	MarkProcessed(ctx context.Context, id string, at time.Time) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
