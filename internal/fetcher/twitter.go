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

const twitterMaxItems = 20

var tweetIDPattern = regexp.MustCompile(`/status/(\d+)`)

// TwitterFetcher reads profile timelines through Nitter RSS mirrors, falling
// through the instance list until one answers.
type TwitterFetcher struct {
	client    *resty.Client
	parser    *gofeed.Parser
	instances []string
}

func NewTwitterFetcher(client *resty.Client, instances []string) *TwitterFetcher {
	return &TwitterFetcher{
		client:    client,
		parser:    gofeed.NewParser(),
		instances: instances,
	}
}

func (f *TwitterFetcher) Platform() domain.Platform {
	return domain.PlatformTwitter
}

func (f *TwitterFetcher) Fetch(ctx context.Context, profile domain.Profile) ([]domain.ContentItem, error) {
	handle := normalizeHandle(profile.Handle)

	var lastErr error
	for _, instance := range f.instances {
		items, err := f.fetchInstance(ctx, instance, handle)
		if err != nil {
			lastErr = err
			continue
		}
		return items, nil
	}

	return nil, fmt.Errorf("all nitter instances failed: %w", lastErr)
}

func (f *TwitterFetcher) fetchInstance(ctx context.Context, instance, handle string) ([]domain.ContentItem, error) {
	body, err := get(ctx, f.client, fmt.Sprintf("%s/%s/rss", instance, handle), nil)
	if err != nil {
		return nil, err
	}

	feed, err := f.parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse timeline feed: %w", err)
	}

	items := make([]domain.ContentItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if len(items) == twitterMaxItems {
			break
		}

		m := tweetIDPattern.FindStringSubmatch(entry.Link)
		if m == nil || entry.PublishedParsed == nil {
			continue
		}
		tweetID := m[1]

		items = append(items, domain.ContentItem{
			ID:          tweetID,
			Type:        domain.ContentTypeTweet,
			Title:       nilIfEmpty(stripHTML(entry.Title)),
			Description: nilIfEmpty(truncate(stripHTML(entry.Description), 300)),
			URL:         fmt.Sprintf("https://twitter.com/%s/status/%s", handle, tweetID),
			MediaURL:    firstEnclosureURL(entry),
			PublishedAt: entry.PublishedParsed.UTC(),
		})
	}

	return items, nil
}

func firstEnclosureURL(entry *gofeed.Item) *string {
	for _, enc := range entry.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return &enc.URL
		}
	}
	return nil
}
