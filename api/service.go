package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jabbawookiees/django-rest-framework-json-api/db"
	"github.com/jabbawookiees/django-rest-framework-json-api/jsonapi"
	"github.com/jabbawookiees/django-rest-framework-json-api/util"
	"github.com/gin-gonic/gin"
)

// Resource type names served by this API.
const (
	ResourceArticles = "articles"
	ResourcePeople   = "people"
	ResourceComments = "comments"
	ResourceImages   = "images"
	ResourceVideos   = "videos"
)

// Relationship names reachable through the article relationship endpoint.
const (
	RelationshipAuthor = "author"
	RelationshipMedia  = "media"
)

var (
	// api errors
	ErrInvalidParams            = errors.New("invalid params")
	ErrInvalidArticleID         = errors.New("invalid article id")
	ErrInvalidPersonID          = errors.New("invalid person id")
	ErrUnsupportedMediaType     = errors.New("requests must use the application/vnd.api+json media type")
	ErrBatchNotSupported        = errors.New("this endpoint accepts a single resource object as primary data")
	ErrMissingAuthor            = errors.New("an author relationship is required")
	ErrAuthorNotFound           = errors.New("author not found")
	ErrArticleNotFound          = errors.New("article not found")
	ErrPersonNotFound           = errors.New("person not found")
	ErrMediaNotFound            = errors.New("one or more media resources not found")
	ErrDuplicateID              = errors.New("a resource with this id already exists")
	ErrDuplicateEmail           = errors.New("a person with this email already exists")
	ErrUnknownRelationship      = errors.New("unknown relationship")
	ErrToOneLinkageRequired     = errors.New("this relationship takes a single resource identifier object")
	ErrToManyLinkageRequired    = errors.New("this relationship takes an array of resource identifier objects")
)

type Service struct {
	config util.Config
	store  db.Store
	parser *jsonapi.Parser
	router *gin.Engine
	server *http.Server
}

// Returns new service instance with provided config and store.
func NewService(config util.Config, store db.Store) (*Service, error) {
	service := &Service{
		config: config,
		store:  store,
		parser: &jsonapi.Parser{FormatKeys: config.JSONAPIFormatKeys},
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time spent writing the response
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
