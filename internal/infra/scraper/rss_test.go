package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfo-pulse/internal/domain/entity"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>First story</title>
      <link>https://news.test/first</link>
      <description>Short summary with a &lt;img src="https://cdn.test/inline.jpg"&gt; tag</description>
      <pubDate>Mon, 09 Feb 2026 10:30:00 GMT</pubDate>
      <enclosure url="https://cdn.test/enclosure.jpg" type="image/jpeg" length="1000"/>
    </item>
    <item>
      <title>Second story</title>
      <link>https://news.test/second</link>
      <media:thumbnail url="https://cdn.test/thumb.jpg"/>
      <media:content url="https://cdn.test/content.jpg" medium="image"/>
    </item>
    <item>
      <title>Bare story</title>
      <link>https://news.test/third</link>
    </item>
  </channel>
</rss>`

func testSource(url string) entity.FeedSource {
	return entity.FeedSource{Name: "Test Feed", FeedURL: url}
}

func TestFetchParsesFeedItems(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f := NewRSSFetcher(srv.Client())
	items, err := f.Fetch(context.Background(), testSource(srv.URL))
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Contains(t, gotUA, "Mozilla/5.0", "feed hosts reject bare bot agents")

	first := items[0]
	assert.Equal(t, "First story", first.Title)
	assert.Equal(t, "https://news.test/first", first.Link)
	assert.Equal(t, "https://cdn.test/enclosure.jpg", first.EnclosureURL)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, time.Date(2026, 2, 9, 10, 30, 0, 0, time.UTC), first.PublishedAt.UTC())

	second := items[1]
	assert.Equal(t, "https://cdn.test/thumb.jpg", second.MediaThumbnailURL)
	assert.Equal(t, "https://cdn.test/content.jpg", second.MediaContentURL)
	assert.Nil(t, second.PublishedAt)

	third := items[2]
	assert.Empty(t, third.EnclosureURL)
	assert.Empty(t, third.MediaThumbnailURL)
}

func TestFetchRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f := NewRSSFetcher(srv.Client())
	items, err := f.Fetch(context.Background(), testSource(srv.URL))
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.EqualValues(t, 3, calls.Load())
}

func TestFetchGivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewRSSFetcher(srv.Client())
	_, err := f.Fetch(context.Background(), testSource(srv.URL))
	require.Error(t, err)
	assert.EqualValues(t, 3, calls.Load())
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewRSSFetcher(srv.Client())
	_, err := f.Fetch(context.Background(), testSource(srv.URL))
	require.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestFetchMalformedXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not a feed"))
	}))
	defer srv.Close()

	f := NewRSSFetcher(srv.Client())
	_, err := f.Fetch(context.Background(), testSource(srv.URL))
	assert.Error(t, err)
}
