package api

import (
	"errors"
	"net/http"

	"github.com/jabbawookiees/django-rest-framework-json-api/db"
	"github.com/jabbawookiees/django-rest-framework-json-api/jsonapi"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// updateArticleRelationship serves the relationship endpoints: the request
// body carries bare resource identifier objects, never full resources.
// "author" takes a single identifier, "media" a full-replacement array.
func (service *Service) updateArticleRelationship(ctx *gin.Context) {
	articleID := extractArticleIDFromCtx(ctx)
	relationship := ctx.Param("relationship")

	result, ok := service.parseDocument(ctx, jsonapi.RequestContext{
		Method:               ctx.Request.Method,
		RelationshipEndpoint: true,
	})
	if !ok {
		return
	}

	switch relationship {
	case RelationshipAuthor:
		service.replaceArticleAuthor(ctx, articleID, result)
	case RelationshipMedia:
		service.replaceArticleMedia(ctx, articleID, result)
	default:
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrUnknownRelationship))
	}
}

func (service *Service) replaceArticleAuthor(ctx *gin.Context, articleID string, result jsonapi.Result) {
	if result.Many {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrToOneLinkageRequired))
		return
	}

	identifier := result.One()
	if !identifierTypesMatch(ctx, []map[string]any{identifier}, jsonapi.SingleType(ResourcePeople)) {
		return
	}

	authorID, _ := identifier["id"].(string)

	article, err := service.store.SetArticleAuthor(ctx, db.SetArticleAuthorParams{
		ID:       articleID,
		AuthorID: authorID,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrArticleNotFound))
		return
	}
	if err != nil {
		if db.ErrorCode(err) == db.ForeignKeyViolation {
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrAuthorNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, createArticleResponse(article))
}

func (service *Service) replaceArticleMedia(ctx *gin.Context, articleID string, result jsonapi.Result) {
	if !result.Many {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrToManyLinkageRequired))
		return
	}

	if !identifierTypesMatch(ctx, result.Records, jsonapi.PolymorphicTypes(ResourceImages, ResourceVideos)) {
		return
	}

	mediaIDs := make([]string, 0, len(result.Records))
	for _, identifier := range result.Records {
		id, _ := identifier["id"].(string)
		mediaIDs = append(mediaIDs, id)
	}

	err := service.store.ReplaceArticleMediaTx(ctx, db.ReplaceArticleMediaTxParams{
		ArticleID: articleID,
		MediaIDs:  mediaIDs,
	})
	if err != nil {
		if db.ErrorCode(err) == db.ForeignKeyViolation {
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrMediaNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	media, err := service.store.ListArticleMedia(ctx, articleID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	res := GetMediaResponse{Media: make([]Media, 0, len(media))}
	for _, m := range media {
		res.Media = append(res.Media, createMediaResponse(m))
	}

	ctx.JSON(http.StatusOK, res)
}

// identifierTypesMatch verifies every identifier declares an accepted
// resource type, answering 409 otherwise.
func identifierTypesMatch(ctx *gin.Context, identifiers []map[string]any, allowed jsonapi.AllowedTypes) bool {
	for _, identifier := range identifiers {
		declared, _ := identifier["type"].(string)
		if !allowed.Contains(declared) {
			conflict := &jsonapi.ResourceTypeConflictError{Declared: declared, Allowed: allowed}
			ctx.JSON(http.StatusConflict, NewErrorResponse(conflict))
			return false
		}
	}

	return true
}
