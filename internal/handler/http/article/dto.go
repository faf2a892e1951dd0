// Package article provides the HTTP handlers for the article read API:
// listing, detail, saved/read flag updates, and store statistics.
package article

import (
	"time"

	"cfo-pulse/internal/domain/entity"
)

// DTO is the JSON shape of an article as served to clients.
type DTO struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	Source         string    `json:"source"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	Image          *string   `json:"image"`
	PublishedDate  time.Time `json:"publishedDate"`
	RelevanceScore int       `json:"relevanceScore"`
	IsRead         bool      `json:"isRead"`
	IsSaved        bool      `json:"isSaved"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:             a.ID,
		Title:          a.Title,
		URL:            a.URL,
		Source:         a.Source,
		Category:       string(a.Category),
		Description:    a.Description,
		Image:          a.Image,
		PublishedDate:  a.PublishedAt,
		RelevanceScore: a.RelevanceScore,
		IsRead:         a.IsRead,
		IsSaved:        a.IsSaved,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
