package api

import (
	"net/http"

	"github.com/jabbawookiees/django-rest-framework-json-api/jsonapi"
	"github.com/gin-gonic/gin"
)

// mediaTypeMiddleware rejects mutating requests whose body is not declared
// as application/vnd.api+json.
func mediaTypeMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		switch ctx.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			ctx.Next()
			return
		}

		if ctx.ContentType() != jsonapi.MediaType {
			ctx.AbortWithStatusJSON(
				http.StatusUnsupportedMediaType,
				NewErrorResponse(ErrUnsupportedMediaType),
			)
			return
		}

		ctx.Next()
	}
}
