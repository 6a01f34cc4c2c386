package httpserver

import (
	"encoding/xml"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemap_EnumeratesPagesCategoriesAndArticles(t *testing.T) {
	router := newTestRouter(t)

	for _, name := range []string{"Technology", "Politics"} {
		rec := doJSON(t, router, http.MethodPost, "/api/categories", map[string]interface{}{"name": name})
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	published := createTestArticle(t, router, map[string]interface{}{
		"title": "Visible", "content": "c", "author": "Ana", "published": true,
	})
	createTestArticle(t, router, map[string]interface{}{
		"title": "Hidden draft", "content": "c", "author": "Ana", "published": false,
	})

	rec := doJSON(t, router, http.MethodGet, "/sitemap.xml", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")

	var set struct {
		XMLName xml.Name `xml:"urlset"`
		URLs    []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set), "sitemap must be well-formed XML")

	// 3 static pages + 2 categories + 1 published article.
	require.Len(t, set.URLs, 6)

	var locs []string
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
	}
	assert.Contains(t, locs, "https://news.example.com/")
	assert.Contains(t, locs, "https://news.example.com/about")
	assert.Contains(t, locs, "https://news.example.com/contact")
	assert.Contains(t, locs, "https://news.example.com/category/technology")
	assert.Contains(t, locs, "https://news.example.com/category/politics")
	assert.Contains(t, locs, "https://news.example.com/article/"+published.ID)
}

func TestRobots(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/robots.txt", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	body := rec.Body.String()
	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Disallow: /api/")
	assert.Contains(t, body, "Sitemap: https://news.example.com/sitemap.xml")
}
