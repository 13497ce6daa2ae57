package db

import (
	"context"
)

const createComment = `
INSERT INTO comments (id, article_id, author_id, body)
VALUES ($1, $2, $3, $4)
RETURNING id, article_id, author_id, body, created_at
`

type CreateCommentParams struct {
	ID        string `json:"id"`
	ArticleID string `json:"article_id"`
	AuthorID  string `json:"author_id"`
	Body      string `json:"body"`
}

func (s *SQLStore) CreateComment(ctx context.Context, arg CreateCommentParams) (Comment, error) {
	row := s.connPool.QueryRow(ctx, createComment,
		arg.ID, arg.ArticleID, arg.AuthorID, arg.Body)

	var comment Comment
	err := row.Scan(
		&comment.ID,
		&comment.ArticleID,
		&comment.AuthorID,
		&comment.Body,
		&comment.CreatedAt,
	)

	return comment, err
}

const listArticleComments = `
SELECT id, article_id, author_id, body, created_at
FROM comments
WHERE article_id = $1
ORDER BY created_at
`

func (s *SQLStore) ListArticleComments(ctx context.Context, articleID string) ([]Comment, error) {
	rows, err := s.connPool.Query(ctx, listArticleComments, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var comment Comment
		err := rows.Scan(
			&comment.ID,
			&comment.ArticleID,
			&comment.AuthorID,
			&comment.Body,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}
