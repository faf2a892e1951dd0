package db

import (
	"database/sql"
)

// MigrateUp creates the articles table and its indexes. Statements are
// idempotent so both binaries can run this at startup.
func MigrateUp(pool *sql.DB) error {
	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id              BIGSERIAL PRIMARY KEY,
    title           TEXT NOT NULL,
    url             TEXT NOT NULL UNIQUE,
    source          TEXT NOT NULL,
    category        TEXT NOT NULL,
    description     TEXT NOT NULL DEFAULT '',
    image           TEXT,
    published_at    TIMESTAMPTZ NOT NULL,
    relevance_score INTEGER NOT NULL DEFAULT 1,
    is_read         BOOLEAN NOT NULL DEFAULT FALSE,
    is_saved        BOOLEAN NOT NULL DEFAULT FALSE,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// Default feed ordering.
		`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
		// Category tab filtering.
		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category)`,
		// Saved-articles view. Partial: most rows are not saved.
		`CREATE INDEX IF NOT EXISTS idx_articles_is_saved ON articles(is_saved) WHERE is_saved = TRUE`,
	}
	for _, idx := range indexes {
		if _, err := pool.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}
