package db

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type Person struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Twitter   pgtype.Text `json:"twitter"`
	CreatedAt time.Time   `json:"created_at"`
}

type Article struct {
	ID        string      `json:"id"`
	AuthorID  string      `json:"author_id"`
	Title     string      `json:"title"`
	Subtitle  pgtype.Text `json:"subtitle"`
	Body      string      `json:"body"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Media is a polymorphic row: Kind holds the resource type it was created
// as, currently "images" or "videos".
type Media struct {
	ID        string      `json:"id"`
	Kind      string      `json:"kind"`
	URL       string      `json:"url"`
	Caption   pgtype.Text `json:"caption"`
	CreatedAt time.Time   `json:"created_at"`
}
