package entity

import (
	"errors"
	"fmt"
	"net/url"
)

// FeedSource is one external RSS/Atom endpoint plus its display label.
// Sources are static configuration loaded at startup; the pipeline never
// mutates them.
type FeedSource struct {
	Name    string `yaml:"name" json:"name"`
	FeedURL string `yaml:"feed_url" json:"feed_url"`
}

// Validate checks that the source carries a label and a usable feed URL.
func (s *FeedSource) Validate() error {
	if s.Name == "" {
		return errors.New("source name is required")
	}
	if s.FeedURL == "" {
		return errors.New("source feed_url is required")
	}
	u, err := url.Parse(s.FeedURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("source feed_url is invalid: %s", s.FeedURL)
	}
	return nil
}
