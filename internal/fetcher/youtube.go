package fetcher

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"

	"linkwatch/internal/domain"
)

var (
	youtubeChannelURLPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)youtube\.com/channel/([a-zA-Z0-9_-]+)`),
	}
	youtubeChannelIDPattern = regexp.MustCompile(`"channelId":"(UC[a-zA-Z0-9_-]+)"`)
)

// YouTubeFetcher reads a channel's public video feed. The feed needs the
// platform-native channel id; when a link only carries a handle, the id is
// resolved once by scraping the channel page.
type YouTubeFetcher struct {
	client  *resty.Client
	parser  *gofeed.Parser
	baseURL string
}

func NewYouTubeFetcher(client *resty.Client) *YouTubeFetcher {
	return &YouTubeFetcher{
		client:  client,
		parser:  gofeed.NewParser(),
		baseURL: "https://www.youtube.com",
	}
}

func (f *YouTubeFetcher) Platform() domain.Platform {
	return domain.PlatformYouTube
}

func (f *YouTubeFetcher) Fetch(ctx context.Context, profile domain.Profile) ([]domain.ContentItem, error) {
	channelID := ""
	if profile.ID != nil {
		channelID = *profile.ID
	}

	if channelID == "" {
		var err error
		channelID, err = f.resolveChannelID(ctx, profile)
		if err != nil {
			return nil, fmt.Errorf("resolve channel id: %w", err)
		}
	}

	feedURL := fmt.Sprintf("%s/feeds/videos.xml?channel_id=%s", f.baseURL, channelID)
	body, err := get(ctx, f.client, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch channel feed: %w", err)
	}

	feed, err := f.parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse channel feed: %w", err)
	}

	items := make([]domain.ContentItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		videoID := strings.TrimPrefix(entry.GUID, "yt:video:")
		if videoID == "" || entry.PublishedParsed == nil {
			continue
		}

		item := domain.ContentItem{
			ID:          videoID,
			Type:        domain.ContentTypeVideo,
			Title:       nilIfEmpty(entry.Title),
			URL:         fmt.Sprintf("https://youtube.com/watch?v=%s", videoID),
			PublishedAt: entry.PublishedParsed.UTC(),
		}

		if group, ok := entry.Extensions["media"]["group"]; ok && len(group) > 0 {
			if desc := group[0].Children["description"]; len(desc) > 0 {
				item.Description = nilIfEmpty(stripHTML(desc[0].Value))
			}
			if thumb := group[0].Children["thumbnail"]; len(thumb) > 0 {
				item.MediaURL = nilIfEmpty(thumb[0].Attrs["url"])
			}
		}

		items = append(items, item)
	}

	return items, nil
}

// resolveChannelID extracts the UC... id from the profile URL, or scrapes the
// channel page for handle-style URLs.
func (f *YouTubeFetcher) resolveChannelID(ctx context.Context, profile domain.Profile) (string, error) {
	for _, pattern := range youtubeChannelURLPatterns {
		if m := pattern.FindStringSubmatch(profile.URL); m != nil {
			return m[1], nil
		}
	}

	pageURL := fmt.Sprintf("%s/@%s", f.baseURL, normalizeHandle(profile.Handle))
	body, err := get(ctx, f.client, pageURL, nil)
	if err != nil {
		return "", err
	}

	if m := youtubeChannelIDPattern.FindSubmatch(body); m != nil {
		return string(m[1]), nil
	}
	return "", fmt.Errorf("channel id not found for handle %q", profile.Handle)
}
