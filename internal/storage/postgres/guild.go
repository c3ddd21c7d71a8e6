package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"linkwatch/internal/domain"
	"linkwatch/internal/storage"
)

type GuildStore struct {
	db *sqlx.DB
}

func NewGuildStore(db *sqlx.DB) *GuildStore {
	return &GuildStore{db: db}
}

// Upsert creates the guild row if it does not exist yet. Existing settings
// are left untouched.
func (s *GuildStore) Upsert(ctx context.Context, guildID, name string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO guilds (guild_id, name)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO NOTHING`,
		guildID, name)
	return err
}

func (s *GuildStore) Settings(ctx context.Context, guildID string) (*domain.GuildSettings, error) {
	var settings domain.GuildSettings
	query := `
		SELECT guild_id, name, announcement_channel, announcement_mode,
		       summary_interval, timezone, subscription_status, premium_expires,
		       created_at
		FROM guilds
		WHERE guild_id = $1`

	err := s.db.GetContext(ctx, &settings, query, guildID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrGuildNotFound
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// ListExpired returns ids of guilds whose stored premium has lapsed but has
// not been downgraded yet.
func (s *GuildStore) ListExpired(ctx context.Context, now time.Time) ([]string, error) {
	var ids []string
	err := s.db.SelectContext(ctx, &ids, `
		SELECT guild_id FROM guilds
		WHERE subscription_status = $1 AND premium_expires IS NOT NULL AND premium_expires <= $2`,
		domain.SubscriptionPremium, now)
	return ids, err
}

// Downgrade resets one guild to the free tier. Only the subscription columns
// are written so concurrent link-check updates on the same guild's links are
// unaffected.
func (s *GuildStore) Downgrade(ctx context.Context, guildID string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE guilds
		SET subscription_status = $2, premium_expires = NULL
		WHERE guild_id = $1`,
		guildID, domain.SubscriptionFree)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrGuildNotFound
	}
	return nil
}

// UpgradePremium extends (or starts) a guild's premium period. A guild whose
// current premium is still running gets the new days appended to it.
func (s *GuildStore) UpgradePremium(ctx context.Context, guildID string, days int, now time.Time) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE guilds
		SET subscription_status = $2,
		    premium_expires = GREATEST(COALESCE(premium_expires, $3), $3) + make_interval(days => $4)
		WHERE guild_id = $1`,
		guildID, domain.SubscriptionPremium, now, days)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrGuildNotFound
	}
	return nil
}

// UpdateAnnouncement sets the destination channel and delivery mode.
func (s *GuildStore) UpdateAnnouncement(ctx context.Context, guildID string, channel *string, mode domain.AnnouncementMode) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE guilds
		SET announcement_channel = $2, announcement_mode = $3
		WHERE guild_id = $1`,
		guildID, channel, mode)
	return err
}
