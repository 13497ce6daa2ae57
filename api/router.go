package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())
	router.Use(mediaTypeMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.POST("/people", service.createPerson)
	router.GET("/people/:person_id", service.getPerson)

	router.GET("/articles", service.listArticles)
	router.POST("/articles", service.createArticle)

	// routes where the article id is checked
	articleGroup := router.Group("/articles/:article_id").Use(service.articleIDMiddleware())
	articleGroup.GET("", service.getArticle)
	articleGroup.PATCH("", service.updateArticle)
	articleGroup.GET("/comments", service.getComments)
	articleGroup.POST("/comments", service.createComment)
	articleGroup.GET("/media", service.getMedia)
	articleGroup.POST("/media", service.createMedia)

	// relationship endpoints exchange bare resource identifier objects
	articleGroup.PATCH("/relationships/:relationship", service.updateArticleRelationship)

	server.Handler = router
	service.router = router
}
