package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jabbawookiees/django-rest-framework-json-api/db"
	"github.com/jabbawookiees/django-rest-framework-json-api/jsonapi"
	"github.com/jabbawookiees/django-rest-framework-json-api/util"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

var ErrIDMismatch = errors.New("resource id does not match the endpoint")

type UpdateArticleRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=200"`
	Subtitle *string `json:"subtitle" binding:"omitempty,max=200"`
	Body     *string `json:"body" binding:"omitempty"`
}

func (service *Service) updateArticle(ctx *gin.Context) {
	articleID := extractArticleIDFromCtx(ctx)

	record, ok := service.parseSingular(ctx, jsonapi.RequestContext{
		Method:  ctx.Request.Method,
		Allowed: jsonapi.SingleType(ResourceArticles),
	})
	if !ok {
		return
	}

	// a declared id must address the same article the URL does
	if id, present := record["id"].(string); present && id != articleID {
		errField := ErrorField{"id", fmt.Sprintf("Document id [%s] does not match URL id [%s]", id, articleID)}
		ctx.JSON(http.StatusConflict, NewErrorResponse(ErrIDMismatch, errField))
		return
	}

	var req UpdateArticleRequest
	if err := bindRecord(record, &req, RelationshipAuthor, RelationshipMedia); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	article, err := service.store.UpdateArticle(ctx, db.UpdateArticleParams{
		ID:       articleID,
		Title:    util.StringToPgxText(req.Title),
		Subtitle: util.StringToPgxText(req.Subtitle),
		Body:     util.StringToPgxText(req.Body),
	})
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
