package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempSources(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSourcesDefaults(t *testing.T) {
	t.Setenv("FEED_SOURCES_FILE", "")

	sources, err := LoadSources()
	require.NoError(t, err)
	assert.NotEmpty(t, sources)
	for _, s := range sources {
		assert.NoError(t, s.Validate())
	}
}

func TestLoadSourcesFromFile(t *testing.T) {
	path := writeTempSources(t, `
sources:
  - name: Example Wire
    feed_url: https://example.com/rss.xml
  - name: Other Wire
    feed_url: https://other.example.com/feed
`)
	t.Setenv("FEED_SOURCES_FILE", path)

	sources, err := LoadSources()
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "Example Wire", sources[0].Name)
	assert.Equal(t, "https://example.com/rss.xml", sources[0].FeedURL)
}

func TestLoadSourcesFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty list", "sources: []"},
		{"invalid yaml", ":\n  - not yaml"},
		{"invalid entry", "sources:\n  - name: \"\"\n    feed_url: https://x.example.com/rss"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FEED_SOURCES_FILE", writeTempSources(t, tt.content))
			_, err := LoadSources()
			assert.Error(t, err)
		})
	}
}

func TestLoadSourcesMissingFile(t *testing.T) {
	t.Setenv("FEED_SOURCES_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := LoadSources()
	assert.Error(t, err)
}
