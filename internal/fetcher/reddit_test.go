package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkwatch/internal/domain"
)

const redditListingJSON = `{
  "data": {
    "children": [
      {
        "kind": "t3",
        "data": {
          "id": "abc123",
          "title": "A text post",
          "selftext": "some body text",
          "permalink": "/r/golang/comments/abc123/a_text_post/",
          "created_utc": 1714564800,
          "is_video": false,
          "thumbnail": "self"
        }
      },
      {
        "kind": "t3",
        "data": {
          "id": "def456",
          "title": "A video post",
          "selftext": "",
          "permalink": "/r/golang/comments/def456/a_video_post/",
          "created_utc": 1714568400,
          "is_video": true,
          "thumbnail": "https://b.thumbs.redditmedia.com/def456.jpg"
        }
      },
      {
        "kind": "t1",
        "data": {"id": "comment1"}
      }
    ]
  }
}`

func TestRedditFetcher_Subreddit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/r/golang/new.json", r.URL.Path)
		fmt.Fprint(w, redditListingJSON)
	}))
	defer srv.Close()

	f := NewRedditFetcher(testClient())
	f.baseURL = srv.URL

	items, err := f.Fetch(context.Background(), domain.Profile{
		URL:    "https://reddit.com/r/golang",
		Handle: "golang",
	})

	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "abc123", items[0].ID)
	assert.Equal(t, domain.ContentTypePost, items[0].Type)
	assert.Equal(t, "some body text", *items[0].Description)
	assert.Nil(t, items[0].MediaURL)
	assert.Equal(t, "https://www.reddit.com/r/golang/comments/abc123/a_text_post/", items[0].URL)

	assert.Equal(t, "def456", items[1].ID)
	assert.Equal(t, domain.ContentTypeVideo, items[1].Type)
	assert.Equal(t, "https://b.thumbs.redditmedia.com/def456.jpg", *items[1].MediaURL)
}

func TestRedditFetcher_UserProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/someuser/new.json", r.URL.Path)
		fmt.Fprint(w, `{"data":{"children":[]}}`)
	}))
	defer srv.Close()

	f := NewRedditFetcher(testClient())
	f.baseURL = srv.URL

	items, err := f.Fetch(context.Background(), domain.Profile{
		URL:    "https://reddit.com/user/someuser",
		Handle: "someuser",
	})

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedditFetcher_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewRedditFetcher(testClient())
	f.baseURL = srv.URL

	_, err := f.Fetch(context.Background(), domain.Profile{
		URL:    "https://reddit.com/user/ghost",
		Handle: "ghost",
	})

	assert.ErrorContains(t, err, "unexpected status: 404")
}
