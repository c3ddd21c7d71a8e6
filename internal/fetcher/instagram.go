package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/go-resty/resty/v2"

	"linkwatch/internal/domain"
)

// (?s) so a shared-data blob containing newlines still matches.
var instagramSharedDataPattern = regexp.MustCompile(`(?s)window\._sharedData\s*=\s*(\{.*?\});</script>`)

type instagramSharedData struct {
	EntryData struct {
		ProfilePage []struct {
			Graphql struct {
				User struct {
					TimelineMedia struct {
						Edges []struct {
							Node instagramNode `json:"node"`
						} `json:"edges"`
					} `json:"edge_owner_to_timeline_media"`
				} `json:"user"`
			} `json:"graphql"`
		} `json:"ProfilePage"`
	} `json:"entry_data"`
}

type instagramNode struct {
	ID              string `json:"id"`
	Shortcode       string `json:"shortcode"`
	DisplayURL      string `json:"display_url"`
	IsVideo         bool   `json:"is_video"`
	TakenAtUnix     int64  `json:"taken_at_timestamp"`
	CaptionEdgeList struct {
		Edges []struct {
			Node struct {
				Text string `json:"text"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"edge_media_to_caption"`
}

// InstagramFetcher parses the JSON blob embedded in a public profile page.
// Only the posts in the initial page load are visible, which is enough for
// change detection.
type InstagramFetcher struct {
	client  *resty.Client
	baseURL string
}

func NewInstagramFetcher(client *resty.Client) *InstagramFetcher {
	return &InstagramFetcher{
		client:  client,
		baseURL: "https://www.instagram.com",
	}
}

func (f *InstagramFetcher) Platform() domain.Platform {
	return domain.PlatformInstagram
}

func (f *InstagramFetcher) Fetch(ctx context.Context, profile domain.Profile) ([]domain.ContentItem, error) {
	handle := normalizeHandle(profile.Handle)

	body, err := get(ctx, f.client, fmt.Sprintf("%s/%s/", f.baseURL, handle), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch profile page: %w", err)
	}

	m := instagramSharedDataPattern.FindSubmatch(body)
	if m == nil {
		// Private profiles and consent walls ship no embedded data. Treat as
		// no new content rather than a fetch failure.
		return nil, nil
	}

	var shared instagramSharedData
	if err := json.Unmarshal(m[1], &shared); err != nil {
		return nil, fmt.Errorf("decode profile data: %w", err)
	}

	if len(shared.EntryData.ProfilePage) == 0 {
		return nil, nil
	}

	edges := shared.EntryData.ProfilePage[0].Graphql.User.TimelineMedia.Edges
	items := make([]domain.ContentItem, 0, len(edges))
	for _, edge := range edges {
		node := edge.Node
		if node.ID == "" {
			continue
		}

		contentType := domain.ContentTypePost
		if node.IsVideo {
			contentType = domain.ContentTypeVideo
		}

		item := domain.ContentItem{
			ID:          node.ID,
			Type:        contentType,
			Title:       ptr(fmt.Sprintf("@%s's post", handle)),
			URL:         fmt.Sprintf("https://www.instagram.com/p/%s/", node.Shortcode),
			MediaURL:    nilIfEmpty(node.DisplayURL),
			PublishedAt: unixTime(node.TakenAtUnix),
		}
		if len(node.CaptionEdgeList.Edges) > 0 {
			item.Description = nilIfEmpty(truncate(node.CaptionEdgeList.Edges[0].Node.Text, 300))
		}

		items = append(items, item)
	}

	return items, nil
}
