package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

func (service *Service) getArticle(ctx *gin.Context) {
	articleID := extractArticleIDFromCtx(ctx)

	article, err := service.store.GetArticle(ctx, articleID)
	if errors.Is(err, pgx.ErrNoRows) {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrArticleNotFound))
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, createArticleResponse(article))
}
