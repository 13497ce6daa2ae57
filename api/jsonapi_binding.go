package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"slices"

	"github.com/jabbawookiees/django-rest-framework-json-api/jsonapi"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// maxBodyBytes caps JSON:API request bodies.
const maxBodyBytes = 1 << 20

// parseDocument reads and normalizes the request body. On failure the error
// response has already been written and ok is false.
func (service *Service) parseDocument(ctx *gin.Context, rctx jsonapi.RequestContext) (jsonapi.Result, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBodyBytes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return jsonapi.Result{}, false
	}

	result, err := service.parser.ParseBytes(body, rctx)
	if err != nil {
		renderParseError(ctx, err)
		return jsonapi.Result{}, false
	}

	return result, true
}

// parseSingular is parseDocument for endpoints that take exactly one
// resource object as primary data.
func (service *Service) parseSingular(ctx *gin.Context, rctx jsonapi.RequestContext) (map[string]any, bool) {
	result, ok := service.parseDocument(ctx, rctx)
	if !ok {
		return nil, false
	}

	if result.Many {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrBatchNotSupported))
		return nil, false
	}

	return result.One(), true
}

func renderParseError(ctx *gin.Context, err error) {
	var conflict *jsonapi.ResourceTypeConflictError

	switch {
	case errors.As(err, &conflict):
		ctx.JSON(http.StatusConflict, NewErrorResponse(conflict))
	case errors.Is(err, jsonapi.ErrMalformedDocument):
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
	default:
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
	}
}

// bindRecord decodes a normalized record into a request struct and runs the
// binding validator over it. Relationship keys are stripped first: resolved
// relationship values may reference each other cyclically, which JSON
// encoding cannot represent.
func bindRecord(record map[string]any, dst any, relationships ...string) error {
	trimmed := make(map[string]any, len(record))
	for k, v := range record {
		if k == "type" || k == "_meta" || slices.Contains(relationships, k) {
			continue
		}
		trimmed[k] = v
	}

	data, err := json.Marshal(trimmed)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return err
	}

	return binding.Validator.ValidateStruct(dst)
}

// relationshipID extracts the target id of a to-one relationship slot. The
// slot may hold a resolved record or a bare identifier; both carry an id.
func relationshipID(record map[string]any, name string) (string, bool) {
	linked, ok := record[name].(map[string]any)
	if !ok {
		return "", false
	}

	id, ok := linked["id"].(string)
	return id, ok && id != ""
}
