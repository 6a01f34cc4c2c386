package httpserver

import (
	"net/http"
	"testing"

	"newswire/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestArticle(t *testing.T, router *gin.Engine, body map[string]interface{}) domain.Article {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/articles", body)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	var a domain.Article
	decode(t, rec, &a)
	return a
}

func TestCreateArticle(t *testing.T) {
	router := newTestRouter(t)

	a := createTestArticle(t, router, map[string]interface{}{
		"title":    "Markets rally",
		"content":  "A long trading day ended higher.",
		"author":   "Ana Ortiz",
		"category": "Economy",
		"tags":     []string{"markets", "stocks"},
	})

	assert.NotEmpty(t, a.ID)
	assert.Zero(t, a.Views)
	assert.Zero(t, a.Likes)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestCreateArticle_ValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/articles", map[string]interface{}{
		"content": "body without a title",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "validation failed", resp.Error)
	assert.Contains(t, resp.Details, "title")
	assert.Contains(t, resp.Details, "author")
}

func TestCreateArticle_MalformedBody(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/articles", "not an object")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetArticle_UnknownIDIs404(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/articles/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetArticle_CountsViews(t *testing.T) {
	router := newTestRouter(t)
	a := createTestArticle(t, router, map[string]interface{}{
		"title": "Viewed", "content": "c", "author": "Ana",
	})

	var got domain.Article
	rec := doJSON(t, router, http.MethodGet, "/api/articles/"+a.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &got)
	assert.Equal(t, 1, got.Views)

	rec = doJSON(t, router, http.MethodGet, "/api/articles/"+a.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &got)
	assert.Equal(t, 2, got.Views)
}

func TestListArticles_CategoryAndPublishedFilter(t *testing.T) {
	router := newTestRouter(t)
	createTestArticle(t, router, map[string]interface{}{
		"title": "Old tech", "content": "c", "author": "Ana",
		"category": "Technology", "published": true,
	})
	createTestArticle(t, router, map[string]interface{}{
		"title": "Tech draft", "content": "c", "author": "Ana",
		"category": "Technology", "published": false,
	})
	createTestArticle(t, router, map[string]interface{}{
		"title": "Politics piece", "content": "c", "author": "Ben",
		"category": "Politics", "published": true,
	})
	createTestArticle(t, router, map[string]interface{}{
		"title": "New tech", "content": "c", "author": "Cleo",
		"category": "technology", "published": true,
	})

	rec := doJSON(t, router, http.MethodGet, "/api/articles?category=Technology&published=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Article
	decode(t, rec, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "New tech", got[0].Title, "newest first")
	assert.Equal(t, "Old tech", got[1].Title)
}

func TestLikeArticle_TwiceIncrementsByTwo(t *testing.T) {
	router := newTestRouter(t)
	a := createTestArticle(t, router, map[string]interface{}{
		"title": "Liked", "content": "c", "author": "Ana",
	})

	var resp map[string]int
	rec := doJSON(t, router, http.MethodPost, "/api/articles/"+a.ID+"/like", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &resp)
	assert.Equal(t, 1, resp["likes"])

	rec = doJSON(t, router, http.MethodPost, "/api/articles/"+a.ID+"/like", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &resp)
	assert.Equal(t, 2, resp["likes"])

	rec = doJSON(t, router, http.MethodPost, "/api/articles/missing/like", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestViewsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	a := createTestArticle(t, router, map[string]interface{}{
		"title": "Counted", "content": "c", "author": "Ana",
	})

	var resp map[string]int
	rec := doJSON(t, router, http.MethodPost, "/api/articles/"+a.ID+"/views", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &resp)
	assert.Equal(t, 1, resp["views"])
}

func TestUpdateArticle_Partial(t *testing.T) {
	router := newTestRouter(t)
	a := createTestArticle(t, router, map[string]interface{}{
		"title": "Before", "content": "original body", "author": "Ana",
	})

	rec := doJSON(t, router, http.MethodPut, "/api/articles/"+a.ID, map[string]interface{}{
		"title": "After",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Article
	decode(t, rec, &got)
	assert.Equal(t, "After", got.Title)
	assert.Equal(t, "original body", got.Content)

	rec = doJSON(t, router, http.MethodPut, "/api/articles/missing", map[string]interface{}{
		"title": "After",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteArticle(t *testing.T) {
	router := newTestRouter(t)
	a := createTestArticle(t, router, map[string]interface{}{
		"title": "Doomed", "content": "c", "author": "Ana",
	})

	rec := doJSON(t, router, http.MethodDelete, "/api/articles/"+a.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/articles/"+a.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearch(t *testing.T) {
	router := newTestRouter(t)
	createTestArticle(t, router, map[string]interface{}{
		"title": "Budget vote in parliament", "content": "c", "author": "Ana",
	})
	createTestArticle(t, router, map[string]interface{}{
		"title": "Transfer window shuts", "content": "c", "author": "Ben",
	})

	rec := doJSON(t, router, http.MethodGet, "/api/search?q=parliament", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Article
	decode(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Budget vote in parliament", got[0].Title)
}
