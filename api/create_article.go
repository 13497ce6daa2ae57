package api

import (
	"fmt"
	"net/http"

	"github.com/jabbawookiees/django-rest-framework-json-api/db"
	"github.com/jabbawookiees/django-rest-framework-json-api/jsonapi"
	"github.com/jabbawookiees/django-rest-framework-json-api/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateArticleRequest struct {
	ID       string  `json:"id" binding:"omitempty,uuid"`
	Title    string  `json:"title" binding:"required,max=200"`
	Subtitle *string `json:"subtitle" binding:"omitempty,max=200"`
	Body     string  `json:"body" binding:"required"`
}

func (service *Service) createArticle(ctx *gin.Context) {
	record, ok := service.parseSingular(ctx, jsonapi.RequestContext{
		Method:  ctx.Request.Method,
		Allowed: jsonapi.SingleType(ResourceArticles),
	})
	if !ok {
		return
	}

	var req CreateArticleRequest
	if err := bindRecord(record, &req, RelationshipAuthor); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	// the author relationship may arrive resolved (compound document) or as
	// a bare identifier; either way only the id matters here
	authorID, ok := relationshipID(record, RelationshipAuthor)
	if !ok {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrMissingAuthor))
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	article, err := service.store.CreateArticle(ctx, db.CreateArticleParams{
		ID:       id,
		AuthorID: authorID,
		Title:    req.Title,
		Subtitle: util.StringToPgxText(req.Subtitle),
		Body:     req.Body,
	})
	if err != nil {
		switch db.ErrorCode(err) {
		case db.ForeignKeyViolation:
			errField := ErrorField{
				RelationshipAuthor,
				fmt.Sprintf("Author with id [%s] does not exist", authorID),
			}
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrAuthorNotFound, errField))
		case db.UniqueViolation:
			ctx.JSON(http.StatusConflict, NewErrorResponse(ErrDuplicateID))
		default:
			ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, createArticleResponse(article))
}
