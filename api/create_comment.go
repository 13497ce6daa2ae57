package api

import (
	"fmt"
	"net/http"

	"github.com/jabbawookiees/django-rest-framework-json-api/db"
	"github.com/jabbawookiees/django-rest-framework-json-api/jsonapi"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	ID   string `json:"id" binding:"omitempty,uuid"`
	Body string `json:"body" binding:"required,max=500"`
}

func (service *Service) createComment(ctx *gin.Context) {
	articleID := extractArticleIDFromCtx(ctx)

	record, ok := service.parseSingular(ctx, jsonapi.RequestContext{
		Method:  ctx.Request.Method,
		Allowed: jsonapi.SingleType(ResourceComments),
	})
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := bindRecord(record, &req, RelationshipAuthor); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	authorID, ok := relationshipID(record, RelationshipAuthor)
	if !ok {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrMissingAuthor))
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	comment, err := service.store.CreateComment(ctx, db.CreateCommentParams{
		ID:        id,
		ArticleID: articleID,
		AuthorID:  authorID,
		Body:      req.Body,
	})
	if err != nil {
		switch db.ErrorCode(err) {
		case db.ForeignKeyViolation:
			// either the article or the author is gone
			errField := ErrorField{
				"article_id",
				fmt.Sprintf("Article [%s] or author [%s] does not exist", articleID, authorID),
			}
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, errField))
		case db.UniqueViolation:
			ctx.JSON(http.StatusConflict, NewErrorResponse(ErrDuplicateID))
		default:
			ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, createCommentResponse(comment))
}
