package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const articleIDKey = "article_id"

// articleIDMiddleware validates the article id path param and stores it in
// the request context for downstream handlers.
func (service *Service) articleIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := ctx.Param("article_id")

		if _, err := uuid.Parse(raw); err != nil {
			errField := ErrorField{"article_id", fmt.Sprintf("Invalid article id: %s", raw)}
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidArticleID, errField),
			)
			return
		}

		ctx.Set(articleIDKey, raw)
		ctx.Next()
	}
}

func extractArticleIDFromCtx(ctx *gin.Context) string {
	return ctx.MustGet(articleIDKey).(string)
}
