package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jabbawookiees/django-rest-framework-json-api/db"
	mockdb "github.com/jabbawookiees/django-rest-framework-json-api/db/mock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testImageID = "9a1dd84e-0a3a-4b58-899c-2c5d8b0a6a01"
	testVideoID = "1f825e1c-9c17-4f9f-a9ec-6f98a2f33a02"
)

func relationshipURL(relationship string) string {
	return fmt.Sprintf("/articles/%s/relationships/%s", testArticleID, relationship)
}

func TestUpdateAuthorRelationship(t *testing.T) {
	testCases := []struct {
		name          string
		document      map[string]any
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			document: map[string]any{
				"data": map[string]any{"type": "people", "id": testAuthorID},
			},
			buildStubs: func(store *mockdb.MockStore) {
				arg := db.SetArticleAuthorParams{ID: testArticleID, AuthorID: testAuthorID}
				store.EXPECT().SetArticleAuthor(gomock.Any(), arg).
					Times(1).
					Return(db.Article{ID: testArticleID, AuthorID: testAuthorID}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var res Article
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
				require.Equal(t, testAuthorID, res.AuthorID)
			},
		},
		{
			name: "WrongIdentifierType",
			document: map[string]any{
				"data": map[string]any{"type": "comments", "id": testAuthorID},
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().SetArticleAuthor(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Contains(t, res.Error, "people")
			},
		},
		{
			name: "MalformedIdentifier",
			document: map[string]any{
				"data": map[string]any{"type": "people"},
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().SetArticleAuthor(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "ArrayForToOne",
			document: map[string]any{
				"data": []any{map[string]any{"type": "people", "id": testAuthorID}},
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().SetArticleAuthor(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrToOneLinkageRequired.Error(), res.Error)
			},
		},
		{
			name: "ArticleNotFound",
			document: map[string]any{
				"data": map[string]any{"type": "people", "id": testAuthorID},
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().SetArticleAuthor(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Article{}, pgx.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "AuthorNotFound",
			document: map[string]any{
				"data": map[string]any{"type": "people", "id": testAuthorID},
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().SetArticleAuthor(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Article{}, &pgconn.PgError{Code: db.ForeignKeyViolation})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
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

			request := newJSONAPIRequest(t, http.MethodPatch, relationshipURL("author"), tc.document)
			service.router.ServeHTTP(recorder, request)

			tc.checkResponse(t, recorder)
		})
	}
}

func TestUpdateMediaRelationship(t *testing.T) {
	replacement := []any{
		map[string]any{"type": "images", "id": testImageID},
		map[string]any{"type": "videos", "id": testVideoID},
	}

	testCases := []struct {
		name          string
		document      map[string]any
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:     "OK",
			document: map[string]any{"data": replacement},
			buildStubs: func(store *mockdb.MockStore) {
				arg := db.ReplaceArticleMediaTxParams{
					ArticleID: testArticleID,
					MediaIDs:  []string{testImageID, testVideoID},
				}
				store.EXPECT().ReplaceArticleMediaTx(gomock.Any(), arg).Times(1).Return(nil)
				store.EXPECT().ListArticleMedia(gomock.Any(), testArticleID).
					Times(1).
					Return([]db.Media{
						{ID: testImageID, Kind: "images", URL: "https://img.example/1.png"},
						{ID: testVideoID, Kind: "videos", URL: "https://vid.example/2.mp4"},
					}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var res GetMediaResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
				require.Len(t, res.Media, 2)
				require.Equal(t, "images", res.Media[0].Type)
				require.Equal(t, "videos", res.Media[1].Type)
			},
		},
		{
			name:     "ClearAll",
			document: map[string]any{"data": []any{}},
			buildStubs: func(store *mockdb.MockStore) {
				arg := db.ReplaceArticleMediaTxParams{
					ArticleID: testArticleID,
					MediaIDs:  []string{},
				}
				store.EXPECT().ReplaceArticleMediaTx(gomock.Any(), arg).Times(1).Return(nil)
				store.EXPECT().ListArticleMedia(gomock.Any(), testArticleID).
					Times(1).
					Return([]db.Media{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "SingleObjectForToMany",
			document: map[string]any{
				"data": map[string]any{"type": "images", "id": testImageID},
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ReplaceArticleMediaTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrToManyLinkageRequired.Error(), res.Error)
			},
		},
		{
			name: "WrongIdentifierType",
			document: map[string]any{
				"data": []any{map[string]any{"type": "articles", "id": testImageID}},
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ReplaceArticleMediaTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Contains(t, res.Error, "one of [images, videos]")
			},
		},
		{
			name:     "UnknownMedia",
			document: map[string]any{"data": replacement},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ReplaceArticleMediaTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(&pgconn.PgError{Code: db.ForeignKeyViolation})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrMediaNotFound.Error(), res.Error)
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

			request := newJSONAPIRequest(t, http.MethodPatch, relationshipURL("media"), tc.document)
			service.router.ServeHTTP(recorder, request)

			tc.checkResponse(t, recorder)
		})
	}
}

func TestUpdateUnknownRelationship(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	service := newTestService(t, store)
	recorder := httptest.NewRecorder()

	document := map[string]any{
		"data": map[string]any{"type": "tags", "id": testImageID},
	}
	request := newJSONAPIRequest(t, http.MethodPatch, relationshipURL("tags"), document)
	service.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)
}
