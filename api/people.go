package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jabbawookiees/django-rest-framework-json-api/db"
	"github.com/jabbawookiees/django-rest-framework-json-api/jsonapi"
	"github.com/jabbawookiees/django-rest-framework-json-api/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Person struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Twitter   *string   `json:"twitter"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper function to map a database Person into an API response
func createPersonResponse(person db.Person) Person {
	return Person{
		ID:        person.ID,
		Type:      ResourcePeople,
		Name:      person.Name,
		Email:     person.Email,
		Twitter:   util.PgxTextToString(person.Twitter),
		CreatedAt: person.CreatedAt,
	}
}

type CreatePersonRequest struct {
	ID      string  `json:"id" binding:"omitempty,uuid"`
	Name    string  `json:"name" binding:"required,max=100"`
	Email   string  `json:"email" binding:"required,email"`
	Twitter *string `json:"twitter" binding:"omitempty,max=50"`
}

func (service *Service) createPerson(ctx *gin.Context) {
	record, ok := service.parseSingular(ctx, jsonapi.RequestContext{
		Method:  ctx.Request.Method,
		Allowed: jsonapi.SingleType(ResourcePeople),
	})
	if !ok {
		return
	}

	var req CreatePersonRequest
	if err := bindRecord(record, &req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	// client-generated ids are allowed, otherwise one is assigned here
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	person, err := service.store.CreatePerson(ctx, db.CreatePersonParams{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Twitter: util.StringToPgxText(req.Twitter),
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, NewErrorResponse(ErrDuplicateEmail))
			return
		}
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, createPersonResponse(person))
}

func (service *Service) getPerson(ctx *gin.Context) {
	raw := ctx.Param("person_id")

	if _, err := uuid.Parse(raw); err != nil {
		errField := ErrorField{"person_id", fmt.Sprintf("Invalid person id: %s", raw)}
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidPersonID, errField))
		return
	}

	person, err := service.store.GetPerson(ctx, raw)
	if errors.Is(err, pgx.ErrNoRows) {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrPersonNotFound))
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, createPersonResponse(person))
}
