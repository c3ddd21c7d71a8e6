package domain

import "time"

// AnnouncementMode controls how detected content is delivered.
type AnnouncementMode string

const (
	// AnnouncementModeInstant posts an announcement as soon as content is
	// recorded.
	AnnouncementModeInstant AnnouncementMode = "instant"
	// AnnouncementModeSummary defers delivery to a periodic digest consumed
	// off the message bus.
	AnnouncementModeSummary AnnouncementMode = "summary"
)

// SubscriptionStatus is the stored tier flag for a guild. Consumers must not
// trust it alone: premium is only active while PremiumExpires is in the
// future, regardless of what the flag says.
type SubscriptionStatus string

const (
	SubscriptionFree    SubscriptionStatus = "free"
	SubscriptionPremium SubscriptionStatus = "premium"
)

// GuildSettings is the per-tenant configuration read by the engine. It is
// owned by the command surface and the sweep workers, never by the engine.
type GuildSettings struct {
	GuildID             string             `db:"guild_id"`
	Name                string             `db:"name"`
	AnnouncementChannel *string            `db:"announcement_channel"`
	AnnouncementMode    AnnouncementMode   `db:"announcement_mode"`
	SummaryInterval     int                `db:"summary_interval"`
	Timezone            string             `db:"timezone"`
	SubscriptionStatus  SubscriptionStatus `db:"subscription_status"`
	PremiumExpires      *time.Time         `db:"premium_expires"`
	CreatedAt           time.Time          `db:"created_at"`
}

// PaymentStatus tracks a payment through confirmation and tier application.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentProcessed PaymentStatus = "processed"
)

// Payment is a confirmed-subscription fact consumed by the payment sweep.
// Verification happens upstream; the sweep only applies the tier upgrade.
type Payment struct {
	ID           string        `db:"id"`
	GuildID      string        `db:"guild_id"`
	Amount       string        `db:"amount"`
	Currency     string        `db:"currency"`
	PremiumDays  int           `db:"premium_days"`
	Status       PaymentStatus `db:"status"`
	TxReference  *string       `db:"tx_reference"`
	CreatedAt    time.Time     `db:"created_at"`
	ConfirmedAt  *time.Time    `db:"confirmed_at"`
	ProcessedAt  *time.Time    `db:"processed_at"`
}
