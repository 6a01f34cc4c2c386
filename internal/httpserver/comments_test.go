package httpserver

import (
	"net/http"
	"testing"

	"newswire/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComments_PostTwoDeleteOne(t *testing.T) {
	router := newTestRouter(t)
	a := createTestArticle(t, router, map[string]interface{}{
		"title": "Discussed", "content": "c", "author": "Ana",
	})

	rec := doJSON(t, router, http.MethodPost, "/api/articles/"+a.ID+"/comments", map[string]interface{}{
		"author": "Ben", "email": "ben@example.com", "content": "First!",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	var first domain.Comment
	decode(t, rec, &first)
	assert.Equal(t, a.ID, first.ArticleID)

	rec = doJSON(t, router, http.MethodPost, "/api/articles/"+a.ID+"/comments", map[string]interface{}{
		"author": "Cleo", "email": "cleo@example.com", "content": "Second.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var second domain.Comment
	decode(t, rec, &second)

	rec = doJSON(t, router, http.MethodDelete, "/api/comments/"+first.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/articles/"+a.ID+"/comments", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var remaining []domain.Comment
	decode(t, rec, &remaining)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)
}

func TestComments_MissingArticleIs404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/articles/missing/comments", map[string]interface{}{
		"author": "Ben", "email": "ben@example.com", "content": "Hello?",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/articles/missing/comments", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestComments_Validation(t *testing.T) {
	router := newTestRouter(t)
	a := createTestArticle(t, router, map[string]interface{}{
		"title": "Strict", "content": "c", "author": "Ana",
	})

	rec := doJSON(t, router, http.MethodPost, "/api/articles/"+a.ID+"/comments", map[string]interface{}{
		"author": "Ben", "email": "not-an-email", "content": "Hi",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Details map[string]string `json:"details"`
	}
	decode(t, rec, &resp)
	assert.Contains(t, resp.Details, "email")
}

func TestComments_DeleteMissing(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodDelete, "/api/comments/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
