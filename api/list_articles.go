package api

import (
	"net/http"

	"github.com/jabbawookiees/django-rest-framework-json-api/db"
	"github.com/gin-gonic/gin"
)

type ListArticlesQuery struct {
	Offset int32 `form:"offset" json:"offset" binding:"min=0"`
	Limit  int32 `form:"limit" json:"limit" binding:"min=1,max=100"`
}

type ListArticlesResponse struct {
	Articles []Article `json:"articles"`
}

func (service *Service) listArticles(ctx *gin.Context) {
	// pre-filled with default values
	req := ListArticlesQuery{
		Offset: 0,
		Limit:  20,
	}

	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	articles, err := service.store.ListArticles(ctx, db.ListArticlesParams{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	res := ListArticlesResponse{Articles: make([]Article, 0, len(articles))}
	for _, article := range articles {
		res.Articles = append(res.Articles, createArticleResponse(article))
	}

	ctx.JSON(http.StatusOK, res)
}
