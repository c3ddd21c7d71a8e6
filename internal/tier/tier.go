package tier

import (
	"time"

	"linkwatch/internal/domain"
)

// Limits is derived per read, never stored.
type Limits struct {
	MaxLinks           int
	CheckInterval      time.Duration
	SupportedPlatforms []domain.Platform
}

var (
	freeLimits = Limits{
		MaxLinks:      3,
		CheckInterval: 10 * time.Minute,
		SupportedPlatforms: []domain.Platform{
			domain.PlatformYouTube,
			domain.PlatformTwitter,
		},
	}

	premiumLimits = Limits{
		MaxLinks:           50,
		CheckInterval:      1 * time.Minute,
		SupportedPlatforms: domain.Platforms,
	}
)

// Active reports whether a premium subscription is live at now. The stored
// status flag alone is never enough: an expired premium that the expiry sweep
// has not downgraded yet must already behave as free.
func Active(status domain.SubscriptionStatus, premiumExpires *time.Time, now time.Time) bool {
	if status != domain.SubscriptionPremium {
		return false
	}
	if premiumExpires == nil {
		return false
	}
	return premiumExpires.After(now)
}

// LimitsFor computes the live tier limits for a subscription state.
func LimitsFor(status domain.SubscriptionStatus, premiumExpires *time.Time, now time.Time) Limits {
	if Active(status, premiumExpires, now) {
		return premiumLimits
	}
	return freeLimits
}

// Allows reports whether the limits admit tracking the given platform.
func (l Limits) Allows(p domain.Platform) bool {
	for _, sp := range l.SupportedPlatforms {
		if sp == p {
			return true
		}
	}
	return false
}
