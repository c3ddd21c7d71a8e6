package domain

import "time"

// Platform identifies a supported social-media platform.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformReddit    Platform = "reddit"
	PlatformTelegram  Platform = "telegram"
	PlatformTikTok    Platform = "tiktok"
)

// Platforms lists every platform the service knows how to watch.
var Platforms = []Platform{
	PlatformYouTube,
	PlatformTwitter,
	PlatformInstagram,
	PlatformReddit,
	PlatformTelegram,
	PlatformTikTok,
}

// ContentType classifies a piece of platform content.
type ContentType string

const (
	ContentTypePost      ContentType = "post"
	ContentTypeVideo     ContentType = "video"
	ContentTypeTweet     ContentType = "tweet"
	ContentTypeReel      ContentType = "reel"
	ContentTypeLiveStart ContentType = "live_start"
	ContentTypeStory     ContentType = "story"
	ContentTypePhoto     ContentType = "photo"
)

// ContentTypeAll is the wildcard value for a link's content-type filter.
const ContentTypeAll = "all"

// LinkStatus is the lifecycle state of a tracked link.
type LinkStatus string

const (
	// LinkStatusActive links are candidates for each watch cycle.
	LinkStatusActive LinkStatus = "active"
	// LinkStatusPaused links are excluded from cycles entirely. Only users
	// pause links; the engine never does.
	LinkStatusPaused LinkStatus = "paused"
	// LinkStatusError links failed too many consecutive fetches and stay
	// excluded until an explicit resume.
	LinkStatusError LinkStatus = "error"
)

// Link is a tracked (platform, profile) pair bound to one guild and one
// destination. Check results and the high-water mark live on the row itself.
type Link struct {
	ID            string     `db:"id"`
	GuildID       string     `db:"guild_id"`
	OwnerID       string     `db:"owner_id"`
	Platform      Platform   `db:"platform"`
	ProfileURL    string     `db:"profile_url"`
	ProfileHandle string     `db:"profile_handle"`
	ProfileID     *string    `db:"profile_id"`
	ContentTypes  []string   `db:"content_types"`
	Status        LinkStatus `db:"status"`
	LastCheck     *time.Time `db:"last_check"`
	LastSeenID    *string    `db:"last_seen_id"`
	LastSeenAt    *time.Time `db:"last_seen_timestamp"`
	ErrorCount    int        `db:"error_count"`
	ErrorMessage  *string    `db:"error_message"`
	CreatedAt     time.Time  `db:"created_at"`
}

// Profile carries the fetcher-facing identity of a link.
type Profile struct {
	URL    string
	Handle string
	ID     *string
}

// Profile returns the subset of the link a platform fetcher needs.
func (l *Link) Profile() Profile {
	return Profile{URL: l.ProfileURL, Handle: l.ProfileHandle, ID: l.ProfileID}
}

// WantsContentType reports whether the link's content-type filter admits t.
// An empty filter or the "all" wildcard admits everything.
func (l *Link) WantsContentType(t ContentType) bool {
	if len(l.ContentTypes) == 0 {
		return true
	}
	for _, ct := range l.ContentTypes {
		if ct == ContentTypeAll || ct == string(t) {
			return true
		}
	}
	return false
}

// LinkEvent is one observed piece of content for a link, recorded at most
// once per (link_id, content_id). Rows are never updated except to set
// announced_at after a successful notification.
type LinkEvent struct {
	ID          string      `db:"id"`
	LinkID      string      `db:"link_id"`
	ContentID   string      `db:"content_id"`
	ContentType ContentType `db:"content_type"`
	Title       *string     `db:"title"`
	Description *string     `db:"description"`
	MediaURL    *string     `db:"media_url"`
	URL         string      `db:"url"`
	PublishedAt time.Time   `db:"published_at"`
	CreatedAt   time.Time   `db:"created_at"`
	AnnouncedAt *time.Time  `db:"announced_at"`
}

// ContentItem is one piece of content as returned by a platform fetcher,
// before any dedup or persistence.
type ContentItem struct {
	ID          string
	Type        ContentType
	Title       *string
	Description *string
	URL         string
	MediaURL    *string
	PublishedAt time.Time
}
