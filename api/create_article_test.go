package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jabbawookiees/django-rest-framework-json-api/db"
	mockdb "github.com/jabbawookiees/django-rest-framework-json-api/db/mock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testArticleID = "61b8e47f-51f4-45c5-91f9-23b1a54ee999"
	testAuthorID  = "0b14d501-a594-4a59-a7f5-2a41a64b0fb7"
)

func articleDocument(attributes map[string]any, relationships map[string]any) map[string]any {
	data := map[string]any{
		"type":       "articles",
		"id":         testArticleID,
		"attributes": attributes,
	}
	if relationships != nil {
		data["relationships"] = relationships
	}
	return map[string]any{"data": data}
}

func authorRelationship() map[string]any {
	return map[string]any{
		"author": map[string]any{
			"data": map[string]any{"type": "people", "id": testAuthorID},
		},
	}
}

func TestCreateArticle(t *testing.T) {
	createdArticle := db.Article{
		ID:       testArticleID,
		AuthorID: testAuthorID,
		Title:    "Go for newsrooms",
		Body:     "body",
	}

	testCases := []struct {
		name          string
		document      map[string]any
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			document: articleDocument(
				map[string]any{"title": "Go for newsrooms", "body": "body"},
				authorRelationship(),
			),
			buildStubs: func(store *mockdb.MockStore) {
				arg := db.CreateArticleParams{
					ID:       testArticleID,
					AuthorID: testAuthorID,
					Title:    "Go for newsrooms",
					Body:     "body",
				}
				store.EXPECT().CreateArticle(gomock.Any(), arg).Times(1).Return(createdArticle, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)

				var res Article
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
				require.Equal(t, testArticleID, res.ID)
				require.Equal(t, ResourceArticles, res.Type)
				require.Equal(t, testAuthorID, res.AuthorID)
			},
		},
		{
			name: "ResolvedAuthorFromIncluded",
			document: func() map[string]any {
				document := articleDocument(
					map[string]any{"title": "Go for newsrooms", "body": "body"},
					authorRelationship(),
				)
				document["included"] = []any{
					map[string]any{
						"type":       "people",
						"id":         testAuthorID,
						"attributes": map[string]any{"name": "Dan"},
					},
				}
				return document
			}(),
			buildStubs: func(store *mockdb.MockStore) {
				arg := db.CreateArticleParams{
					ID:       testArticleID,
					AuthorID: testAuthorID,
					Title:    "Go for newsrooms",
					Body:     "body",
				}
				store.EXPECT().CreateArticle(gomock.Any(), arg).Times(1).Return(createdArticle, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
			},
		},
		{
			name: "WithSubtitle",
			document: articleDocument(
				map[string]any{"title": "Go for newsrooms", "body": "body", "subtitle": "s"},
				authorRelationship(),
			),
			buildStubs: func(store *mockdb.MockStore) {
				arg := db.CreateArticleParams{
					ID:       testArticleID,
					AuthorID: testAuthorID,
					Title:    "Go for newsrooms",
					Subtitle: pgtype.Text{String: "s", Valid: true},
					Body:     "body",
				}
				store.EXPECT().CreateArticle(gomock.Any(), arg).Times(1).Return(createdArticle, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
			},
		},
		{
			name: "MissingAuthorRelationship",
			document: articleDocument(
				map[string]any{"title": "Go for newsrooms", "body": "body"},
				nil,
			),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrMissingAuthor.Error(), res.Error)
			},
		},
		{
			name: "MissingTitle",
			document: articleDocument(
				map[string]any{"body": "body"},
				authorRelationship(),
			),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidParams.Error(), res.Error)
				require.Len(t, res.Fields, 1)
				require.Equal(t, "title", res.Fields[0].FieldName)
				require.Equal(t, "this field is required", res.Fields[0].ErrorMessage)
			},
		},
		{
			name: "TypeConflict",
			document: map[string]any{
				"data": map[string]any{
					"type":       "comments",
					"attributes": map[string]any{"title": "T", "body": "body"},
				},
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Contains(t, res.Error, "comments")
				require.Contains(t, res.Error, "articles")
			},
		},
		{
			name:     "NoData",
			document: map[string]any{"meta": map[string]any{}},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "BatchRejected",
			document: map[string]any{
				"data": []any{
					map[string]any{"type": "articles", "attributes": map[string]any{"title": "T", "body": "b"}},
				},
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrBatchNotSupported.Error(), res.Error)
			},
		},
		{
			name: "AuthorDoesNotExist",
			document: articleDocument(
				map[string]any{"title": "Go for newsrooms", "body": "body"},
				authorRelationship(),
			),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Article{}, &pgconn.PgError{Code: db.ForeignKeyViolation})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrAuthorNotFound.Error(), res.Error)
			},
		},
		{
			name: "DuplicateID",
			document: articleDocument(
				map[string]any{"title": "Go for newsrooms", "body": "body"},
				authorRelationship(),
			),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Article{}, &pgconn.PgError{Code: db.UniqueViolation})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			service := newTestService(t, store)
			recorder := httptest.NewRecorder()

			request := newJSONAPIRequest(t, http.MethodPost, "/articles", tc.document)
			service.router.ServeHTTP(recorder, request)

			tc.checkResponse(t, recorder)
		})
	}
}

func TestCreateArticleMediaType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).Times(0)

	service := newTestService(t, store)
	recorder := httptest.NewRecorder()

	request := newJSONAPIRequest(t, http.MethodPost, "/articles", articleDocument(
		map[string]any{"title": "T", "body": "b"},
		authorRelationship(),
	))
	request.Header.Set("Content-Type", "application/json")

	service.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusUnsupportedMediaType, recorder.Code)
}
