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

type CreateMediaRequest struct {
	ID      string  `json:"id" binding:"omitempty,uuid"`
	URL     string  `json:"url" binding:"required,url"`
	Caption *string `json:"caption" binding:"omitempty,max=300"`
}

// createMedia serves a polymorphic collection: both image and video
// resource objects are accepted, and the declared type becomes the row kind.
func (service *Service) createMedia(ctx *gin.Context) {
	articleID := extractArticleIDFromCtx(ctx)

	record, ok := service.parseSingular(ctx, jsonapi.RequestContext{
		Method:  ctx.Request.Method,
		Allowed: jsonapi.PolymorphicTypes(ResourceImages, ResourceVideos),
	})
	if !ok {
		return
	}

	var req CreateMediaRequest
	if err := bindRecord(record, &req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	kind, _ := record["type"].(string)

	media, err := service.store.CreateMediaTx(ctx, db.CreateMediaTxParams{
		ID:        id,
		Kind:      kind,
		URL:       req.URL,
		Caption:   util.StringToPgxText(req.Caption),
		ArticleID: articleID,
	})
	if err != nil {
		switch db.ErrorCode(err) {
		case db.ForeignKeyViolation:
			errField := ErrorField{
				"article_id",
				fmt.Sprintf("Article with id [%s] does not exist", articleID),
			}
			ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrArticleNotFound, errField))
		case db.UniqueViolation:
			ctx.JSON(http.StatusConflict, NewErrorResponse(ErrDuplicateID))
		default:
			ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, createMediaResponse(media))
}
