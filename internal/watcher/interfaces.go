package watcher

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=watcher -self_package=linkwatch/internal/watcher

import (
	"context"
	"time"

	"linkwatch/internal/domain"
)

type LinkStore interface {
	ListActive(ctx context.Context) ([]domain.Link, error)
	MarkCheckSuccess(ctx context.Context, id string, at time.Time) error
	MarkCheckFailure(ctx context.Context, id string, at time.Time, errCount int, status domain.LinkStatus, message string) error
	AdvanceWatermark(ctx context.Context, id, contentID string, publishedAt time.Time) error
}

type EventStore interface {
	HasSeen(ctx context.Context, linkID, contentID string) (bool, error)
	Record(ctx context.Context, event *domain.LinkEvent) error
	MarkAnnounced(ctx context.Context, linkID, contentID string, at time.Time) error
}

type GuildStore interface {
	Settings(ctx context.Context, guildID string) (*domain.GuildSettings, error)
}

type Fetcher interface {
	Platform() domain.Platform
	Fetch(ctx context.Context, profile domain.Profile) ([]domain.ContentItem, error)
}

type FetcherRegistry interface {
	FetcherFor(platform domain.Platform) (Fetcher, error)
}

type Notifier interface {
	Send(ctx context.Context, channelID string, link *domain.Link, event *domain.LinkEvent) error
}

type Publisher interface {
	Publish(ctx context.Context, link *domain.Link, event *domain.LinkEvent) error
}
