// Package postgres implements the article repository on PostgreSQL via
// database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cfo-pulse/internal/domain/entity"
	"cfo-pulse/internal/repository"
)

const articleColumns = `id, title, url, source, category, description, image, published_at, relevance_score, is_read, is_saved, created_at, updated_at`

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

// upsertQuery refreshes content columns on URL conflict. is_read and
// is_saved are deliberately absent from the UPDATE list: the reader owns
// those. xmax = 0 distinguishes a fresh insert from a conflict-update on
// the returned row.
const upsertQuery = `
INSERT INTO articles (title, url, source, category, description, image, published_at, relevance_score, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
ON CONFLICT (url) DO UPDATE SET
    title           = EXCLUDED.title,
    source          = EXCLUDED.source,
    category        = EXCLUDED.category,
    description     = EXCLUDED.description,
    image           = EXCLUDED.image,
    published_at    = EXCLUDED.published_at,
    relevance_score = EXCLUDED.relevance_score,
    updated_at      = now()
RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`

func (repo *ArticleRepo) Upsert(ctx context.Context, article *entity.Article) (bool, error) {
	var inserted bool
	err := repo.db.QueryRowContext(ctx, upsertQuery,
		article.Title, article.URL, article.Source, article.Category,
		article.Description, article.Image, article.PublishedAt, article.RelevanceScore).
		Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("Upsert: %w", err)
	}
	return inserted, nil
}

func (repo *ArticleRepo) ListPaginated(ctx context.Context, filter repository.ArticleFilter, offset, limit int) ([]*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles` + filterClause(filter, 3) + `
ORDER BY published_at DESC, id DESC
LIMIT $1 OFFSET $2`

	args := append([]any{limit, offset}, filterArgs(filter)...)
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPaginated: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Count(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM articles` + filterClause(filter, 1)

	var count int64
	err := repo.db.QueryRowContext(ctx, query, filterArgs(filter)...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) ToggleSaved(ctx context.Context, id int64) (*entity.Article, error) {
	query := `
UPDATE articles
SET is_saved = NOT is_saved, updated_at = now()
WHERE id = $1
RETURNING ` + articleColumns
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ToggleSaved: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) MarkRead(ctx context.Context, id int64) (*entity.Article, error) {
	query := `
UPDATE articles
SET is_read = TRUE, updated_at = now()
WHERE id = $1
RETURNING ` + articleColumns
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("MarkRead: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Stats(ctx context.Context) (*repository.ArticleStats, error) {
	stats := &repository.ArticleStats{ByCategory: make(map[entity.Category]int64)}

	const totals = `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE is_saved),
       COUNT(*) FILTER (WHERE NOT is_read)
FROM articles`
	if err := repo.db.QueryRowContext(ctx, totals).
		Scan(&stats.Total, &stats.Saved, &stats.Unread); err != nil {
		return nil, fmt.Errorf("Stats: %w", err)
	}

	const perCategory = `SELECT category, COUNT(*) FROM articles GROUP BY category`
	rows, err := repo.db.QueryContext(ctx, perCategory)
	if err != nil {
		return nil, fmt.Errorf("Stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var category entity.Category
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("Stats: Scan: %w", err)
		}
		stats.ByCategory[category] = count
	}
	return stats, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*entity.Article, error) {
	var article entity.Article
	err := row.Scan(&article.ID, &article.Title, &article.URL, &article.Source,
		&article.Category, &article.Description, &article.Image, &article.PublishedAt,
		&article.RelevanceScore, &article.IsRead, &article.IsSaved,
		&article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// filterClause builds the WHERE clause for the filter. firstPlaceholder
// is the number of the first free positional parameter; ListPaginated
// already occupies $1/$2 with LIMIT/OFFSET.
func filterClause(filter repository.ArticleFilter, firstPlaceholder int) string {
	var clause string
	add := func(cond string) {
		if clause == "" {
			clause = "\nWHERE " + cond
		} else {
			clause += " AND " + cond
		}
	}

	n := firstPlaceholder
	if filter.Category != nil {
		add(fmt.Sprintf("category = $%d", n))
		n++
	}
	if filter.Saved != nil {
		add(fmt.Sprintf("is_saved = $%d", n))
	}
	return clause
}

// filterArgs returns the filter's parameter values in the same order
// filterClause numbers them.
func filterArgs(filter repository.ArticleFilter) []any {
	var args []any
	if filter.Category != nil {
		args = append(args, string(*filter.Category))
	}
	if filter.Saved != nil {
		args = append(args, *filter.Saved)
	}
	return args
}
