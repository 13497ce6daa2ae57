package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createMedia = `
INSERT INTO media (id, kind, url, caption)
VALUES ($1, $2, $3, $4)
RETURNING id, kind, url, caption, created_at
`

const attachMedia = `
INSERT INTO article_media (article_id, media_id)
VALUES ($1, $2)
`

type CreateMediaTxParams struct {
	ID        string      `json:"id"`
	Kind      string      `json:"kind"`
	URL       string      `json:"url"`
	Caption   pgtype.Text `json:"caption"`
	ArticleID string      `json:"article_id"`
}

// CreateMediaTx inserts a media row and attaches it to its article in one
// transaction.
func (s *SQLStore) CreateMediaTx(ctx context.Context, arg CreateMediaTxParams) (Media, error) {
	var media Media

	err := s.execTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, createMedia, arg.ID, arg.Kind, arg.URL, arg.Caption)
		err := row.Scan(
			&media.ID,
			&media.Kind,
			&media.URL,
			&media.Caption,
			&media.CreatedAt,
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, attachMedia, arg.ArticleID, media.ID)
		return err
	})

	return media, err
}

const listArticleMedia = `
SELECT m.id, m.kind, m.url, m.caption, m.created_at
FROM media m
JOIN article_media am ON am.media_id = m.id
WHERE am.article_id = $1
ORDER BY m.created_at
`

func (s *SQLStore) ListArticleMedia(ctx context.Context, articleID string) ([]Media, error) {
	rows, err := s.connPool.Query(ctx, listArticleMedia, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	media := []Media{}
	for rows.Next() {
		var m Media
		err := rows.Scan(&m.ID, &m.Kind, &m.URL, &m.Caption, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		media = append(media, m)
	}

	return media, rows.Err()
}

const detachArticleMedia = `
DELETE FROM article_media
WHERE article_id = $1
`

type ReplaceArticleMediaTxParams struct {
	ArticleID string   `json:"article_id"`
	MediaIDs  []string `json:"media_ids"`
}

// ReplaceArticleMediaTx replaces the full media linkage of an article:
// every previous attachment is dropped and the given media ids are attached
// in order. An unknown media id fails the whole transaction with a foreign
// key violation.
func (s *SQLStore) ReplaceArticleMediaTx(ctx context.Context, arg ReplaceArticleMediaTxParams) error {
	return s.execTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, detachArticleMedia, arg.ArticleID); err != nil {
			return err
		}

		for _, mediaID := range arg.MediaIDs {
			if _, err := tx.Exec(ctx, attachMedia, arg.ArticleID, mediaID); err != nil {
				return err
			}
		}

		return nil
	})
}
