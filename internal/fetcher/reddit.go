package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"linkwatch/internal/domain"
)

const redditPageLimit = 10

type redditListing struct {
	Data struct {
		Children []struct {
			Kind string `json:"kind"`
			Data struct {
				ID         string  `json:"id"`
				Title      string  `json:"title"`
				Selftext   string  `json:"selftext"`
				Permalink  string  `json:"permalink"`
				CreatedUTC float64 `json:"created_utc"`
				IsVideo    bool    `json:"is_video"`
				Thumbnail  string  `json:"thumbnail"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// RedditFetcher reads the public new-posts listing for a user or subreddit.
// No authentication is needed for public content.
type RedditFetcher struct {
	client  *resty.Client
	baseURL string
}

func NewRedditFetcher(client *resty.Client) *RedditFetcher {
	return &RedditFetcher{
		client:  client,
		baseURL: "https://www.reddit.com",
	}
}

func (f *RedditFetcher) Platform() domain.Platform {
	return domain.PlatformReddit
}

func (f *RedditFetcher) Fetch(ctx context.Context, profile domain.Profile) ([]domain.ContentItem, error) {
	kind := "user"
	if strings.Contains(profile.URL, "/r/") {
		kind = "r"
	}

	endpoint := fmt.Sprintf("%s/%s/%s/new.json?limit=%d",
		f.baseURL, kind, normalizeHandle(profile.Handle), redditPageLimit)

	body, err := get(ctx, f.client, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}

	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}

	items := make([]domain.ContentItem, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		// t3 entries are posts; everything else in the listing is noise.
		if child.Kind != "t3" || child.Data.ID == "" {
			continue
		}
		post := child.Data

		contentType := domain.ContentTypePost
		if post.IsVideo {
			contentType = domain.ContentTypeVideo
		}

		item := domain.ContentItem{
			ID:          post.ID,
			Type:        contentType,
			Title:       nilIfEmpty(post.Title),
			Description: nilIfEmpty(truncate(post.Selftext, 300)),
			URL:         "https://www.reddit.com" + post.Permalink,
			PublishedAt: unixTime(int64(post.CreatedUTC)),
		}
		if post.Thumbnail != "" && post.Thumbnail != "self" && post.Thumbnail != "default" {
			item.MediaURL = ptr(post.Thumbnail)
		}

		items = append(items, item)
	}

	return items, nil
}
