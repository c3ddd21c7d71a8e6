package links

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"linkwatch/internal/domain"
)

type LinkStore interface {
	Create(ctx context.Context, link *domain.Link) error
	GetByID(ctx context.Context, id string) (*domain.Link, error)
	ListByGuild(ctx context.Context, guildID string) ([]domain.Link, error)
	CountByGuild(ctx context.Context, guildID string) (int, error)
	Delete(ctx context.Context, id string) error
	Pause(ctx context.Context, id string) error
	Resume(ctx context.Context, id string) error
}

type GuildStore interface {
	Upsert(ctx context.Context, guildID, name string) error
	Settings(ctx context.Context, guildID string) (*domain.GuildSettings, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
