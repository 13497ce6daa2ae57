package api

import (
	"time"

	"github.com/jabbawookiees/django-rest-framework-json-api/db"
)

type Comment struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	ArticleID string    `json:"article_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func createCommentResponse(comment db.Comment) Comment {
	return Comment{
		ID:        comment.ID,
		Type:      ResourceComments,
		ArticleID: comment.ArticleID,
		AuthorID:  comment.AuthorID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
	}
}
