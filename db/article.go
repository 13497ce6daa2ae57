package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const articleColumns = "id, author_id, title, subtitle, body, created_at, updated_at"

func scanArticle(row interface{ Scan(dest ...any) error }) (Article, error) {
	var article Article
	err := row.Scan(
		&article.ID,
		&article.AuthorID,
		&article.Title,
		&article.Subtitle,
		&article.Body,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	return article, err
}

const createArticle = `
INSERT INTO articles (id, author_id, title, subtitle, body)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + articleColumns

type CreateArticleParams struct {
	ID       string      `json:"id"`
	AuthorID string      `json:"author_id"`
	Title    string      `json:"title"`
	Subtitle pgtype.Text `json:"subtitle"`
	Body     string      `json:"body"`
}

func (s *SQLStore) CreateArticle(ctx context.Context, arg CreateArticleParams) (Article, error) {
	row := s.connPool.QueryRow(ctx, createArticle,
		arg.ID, arg.AuthorID, arg.Title, arg.Subtitle, arg.Body)
	return scanArticle(row)
}

const getArticle = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
`

func (s *SQLStore) GetArticle(ctx context.Context, id string) (Article, error) {
	return scanArticle(s.connPool.QueryRow(ctx, getArticle, id))
}

const listArticles = `
SELECT ` + articleColumns + `
FROM articles
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

type ListArticlesParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (s *SQLStore) ListArticles(ctx context.Context, arg ListArticlesParams) ([]Article, error) {
	rows, err := s.connPool.Query(ctx, listArticles, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// Unset params keep the current column value.
const updateArticle = `
UPDATE articles
SET title = COALESCE($2, title),
    subtitle = COALESCE($3, subtitle),
    body = COALESCE($4, body),
    updated_at = now()
WHERE id = $1
RETURNING ` + articleColumns

type UpdateArticleParams struct {
	ID       string      `json:"id"`
	Title    pgtype.Text `json:"title"`
	Subtitle pgtype.Text `json:"subtitle"`
	Body     pgtype.Text `json:"body"`
}

func (s *SQLStore) UpdateArticle(ctx context.Context, arg UpdateArticleParams) (Article, error) {
	row := s.connPool.QueryRow(ctx, updateArticle,
		arg.ID, arg.Title, arg.Subtitle, arg.Body)
	return scanArticle(row)
}

const setArticleAuthor = `
UPDATE articles
SET author_id = $2,
    updated_at = now()
WHERE id = $1
RETURNING ` + articleColumns

type SetArticleAuthorParams struct {
	ID       string `json:"id"`
	AuthorID string `json:"author_id"`
}

func (s *SQLStore) SetArticleAuthor(ctx context.Context, arg SetArticleAuthorParams) (Article, error) {
	row := s.connPool.QueryRow(ctx, setArticleAuthor, arg.ID, arg.AuthorID)
	return scanArticle(row)
}
