package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ExpirySweep downgrades guilds whose premium window has lapsed. Tier checks
// derive the live tier from the expiry timestamp, so the sweep only keeps the
// stored flag honest.
type ExpirySweep struct {
	guilds GuildStore
	logger *slog.Logger
	now    func() time.Time
}

func NewExpirySweep(guilds GuildStore, logger *slog.Logger) *ExpirySweep {
	return &ExpirySweep{
		guilds: guilds,
		logger: logger.With("component", "expiry_sweep"),
		now:    time.Now,
	}
}

func (w *ExpirySweep) Name() string { return "expiry_sweep" }

func (w *ExpirySweep) Run(ctx context.Context) error {
	now := w.now()

	expired, err := w.guilds.ListExpired(ctx, now)
	if err != nil {
		return fmt.Errorf("list expired guilds: %w", err)
	}
	if len(expired) == 0 {
		return nil
	}

	downgraded := 0
	for _, guildID := range expired {
		if err := w.guilds.Downgrade(ctx, guildID); err != nil {
			w.logger.Error("downgrade guild", "guild_id", guildID, "error", err)
			continue
		}
		downgraded++
		w.logger.Info("premium expired", "guild_id", guildID)
	}

	w.logger.Info("expiry sweep completed", "expired", len(expired), "downgraded", downgraded)
	return nil
}
