package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"linkwatch/internal/config"
	"linkwatch/internal/domain"
)

// ErrUnsupportedPlatform is returned when no fetcher is registered for a
// link's platform.
var ErrUnsupportedPlatform = fmt.Errorf("unsupported platform")

// Fetcher retrieves the latest content for one profile on one platform.
// Implementations return an empty slice when there is nothing new; an error
// means the fetch itself failed.
type Fetcher interface {
	Platform() domain.Platform
	Fetch(ctx context.Context, profile domain.Profile) ([]domain.ContentItem, error)
}

// Registry resolves the fetcher implementation for a platform. Adding a
// platform means adding an implementation plus a registry entry; the engine
// never changes.
type Registry struct {
	fetchers map[domain.Platform]Fetcher
}

func NewRegistry(fetchers ...Fetcher) *Registry {
	r := &Registry{fetchers: make(map[domain.Platform]Fetcher)}
	for _, f := range fetchers {
		r.Register(f)
	}
	return r
}

func (r *Registry) Register(f Fetcher) {
	if f == nil {
		return
	}
	r.fetchers[f.Platform()] = f
}

func (r *Registry) FetcherFor(p domain.Platform) (Fetcher, error) {
	f, ok := r.fetchers[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, p)
	}
	return f, nil
}

// DefaultRegistry wires one fetcher per supported platform over a shared
// HTTP client.
func DefaultRegistry(client *resty.Client, cfg config.FetchConfig) *Registry {
	return NewRegistry(
		NewYouTubeFetcher(client),
		NewTwitterFetcher(client, cfg.NitterInstances),
		NewInstagramFetcher(client),
		NewRedditFetcher(client),
		NewTelegramFetcher(client),
		NewTikTokFetcher(client),
	)
}

// NewClient builds the resty client shared by all fetchers.
func NewClient(cfg config.FetchConfig) *resty.Client {
	c := resty.New()
	c.SetTimeout(cfg.Timeout)
	c.SetHeader("User-Agent", cfg.UserAgent)
	return c
}

// get performs a GET and returns the body for 200 responses only.
func get(ctx context.Context, client *resty.Client, url string, headers map[string]string) ([]byte, error) {
	req := client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

func ptr[T any](v T) *T {
	return &v
}

func unixTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
