package api

import (
	"time"

	"github.com/jabbawookiees/django-rest-framework-json-api/db"
	"github.com/jabbawookiees/django-rest-framework-json-api/util"
)

type Article struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Subtitle  *string   `json:"subtitle"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Helper function to map a database Article into an API response
func createArticleResponse(article db.Article) Article {
	return Article{
		ID:        article.ID,
		Type:      ResourceArticles,
		AuthorID:  article.AuthorID,
		Title:     article.Title,
		Subtitle:  util.PgxTextToString(article.Subtitle),
		Body:      article.Body,
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
}
