package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	CreatePerson(ctx context.Context, arg CreatePersonParams) (Person, error)
	GetPerson(ctx context.Context, id string) (Person, error)

	CreateArticle(ctx context.Context, arg CreateArticleParams) (Article, error)
	GetArticle(ctx context.Context, id string) (Article, error)
	ListArticles(ctx context.Context, arg ListArticlesParams) ([]Article, error)
	UpdateArticle(ctx context.Context, arg UpdateArticleParams) (Article, error)
	SetArticleAuthor(ctx context.Context, arg SetArticleAuthorParams) (Article, error)

	CreateComment(ctx context.Context, arg CreateCommentParams) (Comment, error)
	ListArticleComments(ctx context.Context, articleID string) ([]Comment, error)

	CreateMediaTx(ctx context.Context, arg CreateMediaTxParams) (Media, error)
	ListArticleMedia(ctx context.Context, articleID string) ([]Media, error)
	ReplaceArticleMediaTx(ctx context.Context, arg ReplaceArticleMediaTxParams) error

	Shutdown()
}

type SQLStore struct {
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{connPool: connPool}
}

func (s *SQLStore) Shutdown() {
	s.connPool.Close()
}

// execTx runs fn inside a single database transaction, rolling back on any
// error.
func (s *SQLStore) execTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.connPool.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %v, rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}
