package links

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"linkwatch/internal/domain"
	"linkwatch/internal/storage"
	"linkwatch/internal/tier"
)

var (
	// ErrInvalidProfileURL means the URL does not match any known profile
	// shape for the requested platform.
	ErrInvalidProfileURL = errors.New("profile url does not match platform format")
	// ErrPlatformNotAllowed means the guild's tier does not include the
	// requested platform.
	ErrPlatformNotAllowed = errors.New("platform not available on current tier")
	// ErrLinkLimitReached means the guild is at its tier's link quota.
	ErrLinkLimitReached = errors.New("link limit reached for current tier")
	// ErrDuplicateLink means the guild already tracks this profile.
	ErrDuplicateLink = errors.New("profile already tracked in this guild")
)

// Service owns the link lifecycle: add with tier enforcement, list, pause,
// resume and remove. The watch cycle only ever reads what this service wrote.
type Service struct {
	links     LinkStore
	guilds    GuildStore
	txManager TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(links LinkStore, guilds GuildStore, txManager TransactionManager, logger *slog.Logger) *Service {
	return &Service{
		links:     links,
		guilds:    guilds,
		txManager: txManager,
		logger:    logger.With("component", "links"),
		now:       time.Now,
	}
}

// AddLinkParams carries everything needed to start tracking a profile.
type AddLinkParams struct {
	GuildID      string
	GuildName    string
	OwnerID      string
	Platform     domain.Platform
	ProfileURL   string
	ContentTypes []string
}

// AddLink validates the URL, enforces the guild's tier limits and creates
// the link. Quota check and insert run in one transaction so two concurrent
// adds cannot both squeeze under the limit.
func (s *Service) AddLink(ctx context.Context, params AddLinkParams) (*domain.Link, error) {
	parsed, err := ParseProfileURL(params.Platform, params.ProfileURL)
	if err != nil {
		return nil, err
	}

	if err := s.guilds.Upsert(ctx, params.GuildID, params.GuildName); err != nil {
		return nil, fmt.Errorf("upsert guild: %w", err)
	}

	settings, err := s.guilds.Settings(ctx, params.GuildID)
	if err != nil {
		return nil, fmt.Errorf("load guild settings: %w", err)
	}

	limits := tier.LimitsFor(settings.SubscriptionStatus, settings.PremiumExpires, s.now())
	if !limits.Allows(params.Platform) {
		return nil, ErrPlatformNotAllowed
	}

	contentTypes := params.ContentTypes
	if len(contentTypes) == 0 {
		contentTypes = []string{domain.ContentTypeAll}
	}

	link := &domain.Link{
		ID:            uuid.NewString(),
		GuildID:       params.GuildID,
		OwnerID:       params.OwnerID,
		Platform:      params.Platform,
		ProfileURL:    params.ProfileURL,
		ProfileHandle: parsed.Handle,
		ProfileID:     parsed.ProfileID,
		ContentTypes:  contentTypes,
		Status:        domain.LinkStatusActive,
		CreatedAt:     s.now(),
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		count, err := s.links.CountByGuild(txCtx, params.GuildID)
		if err != nil {
			return fmt.Errorf("count links: %w", err)
		}
		if count >= limits.MaxLinks {
			return ErrLinkLimitReached
		}

		existing, err := s.links.ListByGuild(txCtx, params.GuildID)
		if err != nil {
			return fmt.Errorf("list links: %w", err)
		}
		for i := range existing {
			if existing[i].Platform == params.Platform &&
				strings.EqualFold(existing[i].ProfileHandle, parsed.Handle) {
				return ErrDuplicateLink
			}
		}

		return s.links.Create(txCtx, link)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("link added",
		"link_id", link.ID,
		"guild_id", link.GuildID,
		"platform", link.Platform,
		"handle", link.ProfileHandle,
	)
	return link, nil
}

// List returns every link tracked by the guild.
func (s *Service) List(ctx context.Context, guildID string) ([]domain.Link, error) {
	return s.links.ListByGuild(ctx, guildID)
}

// Pause takes a link out of the watch rotation.
func (s *Service) Pause(ctx context.Context, guildID, linkID string) error {
	if err := s.requireOwnedLink(ctx, guildID, linkID); err != nil {
		return err
	}
	return s.links.Pause(ctx, linkID)
}

// Resume puts a paused or errored link back in rotation with a clean
// failure counter.
func (s *Service) Resume(ctx context.Context, guildID, linkID string) error {
	if err := s.requireOwnedLink(ctx, guildID, linkID); err != nil {
		return err
	}
	return s.links.Resume(ctx, linkID)
}

// Remove deletes the link and, through the schema, its recorded events.
func (s *Service) Remove(ctx context.Context, guildID, linkID string) error {
	if err := s.requireOwnedLink(ctx, guildID, linkID); err != nil {
		return err
	}

	if err := s.links.Delete(ctx, linkID); err != nil {
		return err
	}

	s.logger.Info("link removed", "link_id", linkID, "guild_id", guildID)
	return nil
}

// requireOwnedLink hides other guilds' links behind not-found.
func (s *Service) requireOwnedLink(ctx context.Context, guildID, linkID string) error {
	link, err := s.links.GetByID(ctx, linkID)
	if err != nil {
		return err
	}
	if link.GuildID != guildID {
		return storage.ErrLinkNotFound
	}
	return nil
}
