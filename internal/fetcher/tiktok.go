package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"linkwatch/internal/domain"
)

const tiktokMaxItems = 10

// (?s) so a state blob containing newlines still matches.
var tiktokStatePattern = regexp.MustCompile(`(?s)<script id="SIGI_STATE" type="application/json">(.*?)</script>`)

type tiktokState struct {
	ItemModule map[string]struct {
		ID         string `json:"id"`
		Desc       string `json:"desc"`
		CreateTime string `json:"createTime"`
		Video      struct {
			Cover string `json:"cover"`
		} `json:"video"`
	} `json:"ItemModule"`
}

// TikTokFetcher scrapes a public profile page. The embedded state JSON is the
// primary source; when TikTok withholds it, plain video anchors on the page
// are used as a degraded fallback.
type TikTokFetcher struct {
	client  *resty.Client
	baseURL string
	now     func() time.Time
}

func NewTikTokFetcher(client *resty.Client) *TikTokFetcher {
	return &TikTokFetcher{
		client:  client,
		baseURL: "https://www.tiktok.com",
		now:     time.Now,
	}
}

func (f *TikTokFetcher) Platform() domain.Platform {
	return domain.PlatformTikTok
}

func (f *TikTokFetcher) Fetch(ctx context.Context, profile domain.Profile) ([]domain.ContentItem, error) {
	handle := normalizeHandle(profile.Handle)

	body, err := get(ctx, f.client, fmt.Sprintf("%s/@%s", f.baseURL, handle), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch profile page: %w", err)
	}

	if items := f.itemsFromState(body, handle); len(items) > 0 {
		return items, nil
	}
	return f.itemsFromAnchors(body, handle)
}

func (f *TikTokFetcher) itemsFromState(body []byte, handle string) []domain.ContentItem {
	m := tiktokStatePattern.FindSubmatch(body)
	if m == nil {
		return nil
	}

	var state tiktokState
	if err := json.Unmarshal(m[1], &state); err != nil {
		return nil
	}

	var items []domain.ContentItem
	for _, video := range state.ItemModule {
		if video.ID == "" {
			continue
		}
		createdUnix, err := strconv.ParseInt(video.CreateTime, 10, 64)
		if err != nil {
			continue
		}

		items = append(items, domain.ContentItem{
			ID:          video.ID,
			Type:        domain.ContentTypeVideo,
			Title:       nilIfEmpty(truncate(video.Desc, 100)),
			Description: nilIfEmpty(truncate(video.Desc, 300)),
			URL:         fmt.Sprintf("https://www.tiktok.com/@%s/video/%s", handle, video.ID),
			MediaURL:    nilIfEmpty(video.Video.Cover),
			PublishedAt: unixTime(createdUnix),
		})
	}
	return items
}

// itemsFromAnchors pulls video links straight out of the HTML. Publication
// times are not available there, so the observation time stands in and the
// per-item dedup key carries the idempotence.
func (f *TikTokFetcher) itemsFromAnchors(body []byte, handle string) ([]domain.ContentItem, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse profile page: %w", err)
	}

	seen := make(map[string]bool)
	var items []domain.ContentItem
	doc.Find(`a[href*="/video/"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok {
			return true
		}

		_, videoID, found := strings.Cut(href, "/video/")
		videoID = strings.TrimSuffix(videoID, "/")
		if !found || videoID == "" || seen[videoID] {
			return true
		}
		seen[videoID] = true

		items = append(items, domain.ContentItem{
			ID:          videoID,
			Type:        domain.ContentTypeVideo,
			Title:       ptr(fmt.Sprintf("@%s's TikTok video", handle)),
			URL:         fmt.Sprintf("https://www.tiktok.com/@%s/video/%s", handle, videoID),
			PublishedAt: f.now().UTC(),
		})
		return len(items) < tiktokMaxItems
	})

	return items, nil
}
