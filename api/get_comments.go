package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type GetCommentsResponse struct {
	Comments []Comment `json:"comments"`
}

func (service *Service) getComments(ctx *gin.Context) {
	articleID := extractArticleIDFromCtx(ctx)

	comments, err := service.store.ListArticleComments(ctx, articleID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	res := GetCommentsResponse{Comments: make([]Comment, 0, len(comments))}
	for _, comment := range comments {
		res.Comments = append(res.Comments, createCommentResponse(comment))
	}

	ctx.JSON(http.StatusOK, res)
}
