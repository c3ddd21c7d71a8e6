package watcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"linkwatch/internal/config"
	"linkwatch/internal/domain"
	"linkwatch/internal/storage"
	"linkwatch/internal/tier"
)

// Engine runs one watch cycle at a time: list active links, check the ones
// that are due for their guild's tier, record unseen content and hand it to
// the notifier and publisher. A failure on one link never stops the cycle.
type Engine struct {
	links     LinkStore
	events    EventStore
	guilds    GuildStore
	fetchers  FetcherRegistry
	notifier  Notifier
	publisher Publisher
	logger    *slog.Logger
	config    config.WatchConfig
	now       func() time.Time
}

func NewEngine(
	links LinkStore,
	events EventStore,
	guilds GuildStore,
	fetchers FetcherRegistry,
	notifier Notifier,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.WatchConfig,
) *Engine {
	return &Engine{
		links:     links,
		events:    events,
		guilds:    guilds,
		fetchers:  fetchers,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger.With("component", "watcher"),
		config:    cfg,
		now:       time.Now,
	}
}

func (e *Engine) Name() string { return "watcher" }

// Run satisfies the scheduler job contract.
func (e *Engine) Run(ctx context.Context) error {
	_, err := e.RunCycle(ctx)
	return err
}

// RunCycle performs one pass over every active link. The returned stats are
// valid even when the context is cancelled mid-cycle.
func (e *Engine) RunCycle(ctx context.Context) (*domain.CycleStats, error) {
	start := e.now()

	links, err := e.links.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active links: %w", err)
	}

	stats := &domain.CycleStats{Total: len(links)}
	settings := make(map[string]*domain.GuildSettings)

	e.logger.Debug("cycle started", "links", len(links))

	for i := range links {
		checked := e.checkLink(ctx, &links[i], settings, stats)
		if ctx.Err() != nil {
			break
		}
		// Courtesy pause between outbound checks only; skipped links cost
		// nothing.
		if checked && e.config.LinkDelay > 0 && i < len(links)-1 {
			e.pause(ctx, e.config.LinkDelay)
		}
	}

	stats.Duration = e.now().Sub(start)

	e.logger.Info("cycle completed",
		"total", stats.Total,
		"checked", stats.Checked,
		"skipped", stats.Skipped,
		"new_content", stats.NewContent,
		"announced", stats.Announced,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (e *Engine) checkLink(ctx context.Context, link *domain.Link, cache map[string]*domain.GuildSettings, stats *domain.CycleStats) bool {
	logger := e.logger.With(
		"link_id", link.ID,
		"platform", link.Platform,
		"handle", link.ProfileHandle,
	)

	guild, ok := cache[link.GuildID]
	if !ok {
		loaded, err := e.guilds.Settings(ctx, link.GuildID)
		if err != nil {
			logger.Error("load guild settings", "guild_id", link.GuildID, "error", err)
			stats.Errors++
			return false
		}
		cache[link.GuildID] = loaded
		guild = loaded
	}

	now := e.now()
	limits := tier.LimitsFor(guild.SubscriptionStatus, guild.PremiumExpires, now)
	if link.LastCheck != nil && now.Sub(*link.LastCheck) < limits.CheckInterval {
		stats.Skipped++
		return false
	}

	stats.Checked++

	// A panicking fetcher counts as one failed check for this link.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("check panicked", "panic", r)
			e.recordFailure(ctx, logger, link, stats, fmt.Sprintf("panic: %v", r))
		}
	}()

	fetcher, err := e.fetchers.FetcherFor(link.Platform)
	if err != nil {
		e.recordFailure(ctx, logger, link, stats, err.Error())
		return true
	}

	items, err := fetcher.Fetch(ctx, link.Profile())
	if err != nil {
		logger.Warn("fetch failed", "error", err, "error_count", link.ErrorCount+1)
		e.recordFailure(ctx, logger, link, stats, err.Error())
		return true
	}

	if err := e.links.MarkCheckSuccess(ctx, link.ID, now); err != nil {
		logger.Error("mark check success", "error", err)
		stats.Errors++
	}

	e.processItems(ctx, logger, link, guild, items, stats)
	return true
}

func (e *Engine) recordFailure(ctx context.Context, logger *slog.Logger, link *domain.Link, stats *domain.CycleStats, message string) {
	stats.Errors++

	errCount := link.ErrorCount + 1
	status := domain.LinkStatusActive
	if errCount >= e.config.MaxFetchErrors {
		status = domain.LinkStatusError
	}

	if err := e.links.MarkCheckFailure(ctx, link.ID, e.now(), errCount, status, message); err != nil {
		logger.Error("mark check failure", "error", err)
		return
	}

	if status == domain.LinkStatusError {
		logger.Warn("link disabled after repeated failures", "error_count", errCount)
	}
}

func (e *Engine) processItems(ctx context.Context, logger *slog.Logger, link *domain.Link, guild *domain.GuildSettings, items []domain.ContentItem, stats *domain.CycleStats) {
	var (
		maxSeenAt time.Time
		maxSeenID string
	)

	for i := range items {
		item := &items[i]
		if item.ID == "" {
			continue
		}
		if !link.WantsContentType(item.Type) {
			continue
		}
		// Anything at or below the high-water mark was handled in an
		// earlier cycle.
		if link.LastSeenAt != nil && !item.PublishedAt.After(*link.LastSeenAt) {
			continue
		}

		seen, err := e.events.HasSeen(ctx, link.ID, item.ID)
		if err != nil {
			logger.Error("dedup lookup", "content_id", item.ID, "error", err)
			stats.Errors++
			continue
		}
		if seen {
			continue
		}

		event := &domain.LinkEvent{
			ID:          uuid.NewString(),
			LinkID:      link.ID,
			ContentID:   item.ID,
			ContentType: item.Type,
			Title:       item.Title,
			Description: item.Description,
			MediaURL:    item.MediaURL,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
			CreatedAt:   e.now(),
		}

		if err := e.events.Record(ctx, event); err != nil {
			if errors.Is(err, storage.ErrDuplicateEvent) {
				continue
			}
			logger.Error("record event", "content_id", item.ID, "error", err)
			stats.Errors++
			continue
		}
		stats.NewContent++

		logger.Info("new content detected",
			"content_id", item.ID,
			"content_type", item.Type,
			"published_at", item.PublishedAt,
		)

		if e.publisher != nil {
			if err := e.publisher.Publish(ctx, link, event); err != nil {
				logger.Error("publish event", "content_id", item.ID, "error", err)
			}
		}

		if e.notifier != nil &&
			guild.AnnouncementMode == domain.AnnouncementModeInstant &&
			guild.AnnouncementChannel != nil {
			if err := e.notifier.Send(ctx, *guild.AnnouncementChannel, link, event); err != nil {
				logger.Error("send announcement", "content_id", item.ID, "error", err)
			} else {
				stats.Announced++
				if err := e.events.MarkAnnounced(ctx, link.ID, item.ID, e.now()); err != nil {
					logger.Error("mark announced", "content_id", item.ID, "error", err)
				}
			}
		}

		if item.PublishedAt.After(maxSeenAt) {
			maxSeenAt = item.PublishedAt
			maxSeenID = item.ID
		}
	}

	// Only freshly recorded content moves the watermark, and only forward.
	if maxSeenID != "" && (link.LastSeenAt == nil || maxSeenAt.After(*link.LastSeenAt)) {
		if err := e.links.AdvanceWatermark(ctx, link.ID, maxSeenID, maxSeenAt); err != nil {
			logger.Error("advance watermark", "error", err)
			stats.Errors++
		}
	}
}

func (e *Engine) pause(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
