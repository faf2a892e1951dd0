// Package config holds the static feed source registry.
//
// Sources are immutable configuration loaded once at startup: the
// built-in defaults below, optionally replaced by a YAML file pointed at
// by FEED_SOURCES_FILE. The pipeline never writes back to the registry.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"cfo-pulse/internal/domain/entity"
)

// defaultSources is the built-in registry used when no override file is
// configured.
var defaultSources = []entity.FeedSource{
	{Name: "CFO Dive", FeedURL: "https://www.cfodive.com/feeds/news/"},
	{Name: "CFO.com", FeedURL: "https://www.cfo.com/feeds/rss.xml"},
	{Name: "Financial Times Markets", FeedURL: "https://www.ft.com/markets?format=rss"},
	{Name: "Harvard Business Review", FeedURL: "https://feeds.hbr.org/harvardbusiness"},
	{Name: "McKinsey Insights", FeedURL: "https://www.mckinsey.com/insights/rss"},
	{Name: "African Business", FeedURL: "https://african.business/feed/"},
	{Name: "Business Day Nigeria", FeedURL: "https://businessday.ng/feed/"},
}

// sourcesFile is the YAML shape of a registry override file.
type sourcesFile struct {
	Sources []entity.FeedSource `yaml:"sources"`
}

// LoadSources returns the feed source registry. When FEED_SOURCES_FILE is
// set the file replaces the built-in list entirely; a missing or invalid
// file is a startup error, not a silent fallback, so a typo cannot quietly
// switch the service to the defaults.
func LoadSources() ([]entity.FeedSource, error) {
	path := os.Getenv("FEED_SOURCES_FILE")
	if path == "" {
		return defaultSources, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read sources file %s: %w", path, err)
	}

	var f sourcesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse sources file %s: %w", path, err)
	}
	if len(f.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s contains no sources", path)
	}

	for i := range f.Sources {
		if err := f.Sources[i].Validate(); err != nil {
			return nil, fmt.Errorf("sources file %s entry %d: %w", path, i, err)
		}
	}

	slog.Info("feed source registry loaded from file",
		slog.String("path", path),
		slog.Int("sources", len(f.Sources)))
	return f.Sources, nil
}
