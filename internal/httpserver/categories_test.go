package httpserver

import (
	"net/http"
	"testing"

	"newswire/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_CreateGeneratesSlug(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/categories", map[string]interface{}{
		"name": "World News", "color": "blue",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	var created domain.Category
	decode(t, rec, &created)
	assert.Equal(t, "world-news", created.Slug)

	rec = doJSON(t, router, http.MethodGet, "/api/categories/world-news", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Category
	decode(t, rec, &got)
	assert.Equal(t, created.ID, got.ID)
}

func TestCategories_MissingSlugIs404(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/categories/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategories_DuplicateNameIsConflict(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/categories", map[string]interface{}{
		"name": "Tech",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/categories", map[string]interface{}{
		"name": "tech",
	})
	assert.Equal(t, http.StatusConflict, rec.Code, "body: %s", rec.Body.String())
}

func TestCategories_Validation(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/categories", map[string]interface{}{
		"color": "red",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Details map[string]string `json:"details"`
	}
	decode(t, rec, &resp)
	assert.Contains(t, resp.Details, "name")
}

func TestCategories_UpdateAndDelete(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/categories", map[string]interface{}{
		"name": "Sport",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.Category
	decode(t, rec, &created)

	rec = doJSON(t, router, http.MethodPut, "/api/categories/"+created.ID, map[string]interface{}{
		"name": "Sports",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated domain.Category
	decode(t, rec, &updated)
	assert.Equal(t, "Sports", updated.Name)
	assert.Equal(t, "sport", updated.Slug, "rename keeps the slug")

	rec = doJSON(t, router, http.MethodDelete, "/api/categories/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/categories/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategories_ListEmptyIsArray(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}
