package api

import (
	"net/http"
	"time"

	"github.com/jabbawookiees/django-rest-framework-json-api/db"
	"github.com/jabbawookiees/django-rest-framework-json-api/util"
	"github.com/gin-gonic/gin"
)

// Media is polymorphic: Type echoes the resource type the row was created
// as ("images" or "videos").
type Media struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	URL       string    `json:"url"`
	Caption   *string   `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}

func createMediaResponse(media db.Media) Media {
	return Media{
		ID:        media.ID,
		Type:      media.Kind,
		URL:       media.URL,
		Caption:   util.PgxTextToString(media.Caption),
		CreatedAt: media.CreatedAt,
	}
}

type GetMediaResponse struct {
	Media []Media `json:"media"`
}

func (service *Service) getMedia(ctx *gin.Context) {
	articleID := extractArticleIDFromCtx(ctx)

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
