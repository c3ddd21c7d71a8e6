package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"linkwatch/internal/domain"
)

var telegramPhotoPattern = regexp.MustCompile(`background-image:url\('([^']+)'\)`)

// TelegramFetcher scrapes the public t.me/s preview page for a channel. Only
// public channels are reachable this way; that matches what users can link.
type TelegramFetcher struct {
	client  *resty.Client
	baseURL string
}

func NewTelegramFetcher(client *resty.Client) *TelegramFetcher {
	return &TelegramFetcher{
		client:  client,
		baseURL: "https://t.me",
	}
}

func (f *TelegramFetcher) Platform() domain.Platform {
	return domain.PlatformTelegram
}

func (f *TelegramFetcher) Fetch(ctx context.Context, profile domain.Profile) ([]domain.ContentItem, error) {
	handle := normalizeHandle(profile.Handle)

	body, err := get(ctx, f.client, fmt.Sprintf("%s/s/%s", f.baseURL, handle), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch channel page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse channel page: %w", err)
	}

	var items []domain.ContentItem
	doc.Find(".tgme_widget_message").Each(func(_ int, sel *goquery.Selection) {
		post, ok := sel.Attr("data-post")
		if !ok {
			return
		}
		// data-post is "<channel>/<message id>".
		parts := strings.SplitN(post, "/", 2)
		if len(parts) != 2 || parts[1] == "" {
			return
		}
		messageID := parts[1]

		publishedAt, ok := messageTime(sel)
		if !ok {
			return
		}

		item := domain.ContentItem{
			ID:          "telegram_" + messageID,
			Type:        domain.ContentTypePost,
			URL:         fmt.Sprintf("https://t.me/%s/%s", handle, messageID),
			PublishedAt: publishedAt,
		}

		if text := strings.TrimSpace(sel.Find(".tgme_widget_message_text").Text()); text != "" {
			item.Title = nilIfEmpty(truncate(text, 100))
			item.Description = nilIfEmpty(truncate(text, 300))
		}

		if style, ok := sel.Find(".tgme_widget_message_photo_wrap").Attr("style"); ok {
			if m := telegramPhotoPattern.FindStringSubmatch(style); m != nil {
				item.Type = domain.ContentTypePhoto
				item.MediaURL = ptr(m[1])
			}
		}

		items = append(items, item)
	})

	return items, nil
}

func messageTime(sel *goquery.Selection) (time.Time, bool) {
	datetime, ok := sel.Find(".tgme_widget_message_date time").Attr("datetime")
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, datetime)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}
