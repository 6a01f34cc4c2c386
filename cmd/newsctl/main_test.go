package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"newswire/client"
	"newswire/internal/httpserver"
	articlerepo "newswire/internal/repository/article"
	categoryrepo "newswire/internal/repository/category"
	commentrepo "newswire/internal/repository/comment"
	articlesvc "newswire/internal/service/article"
	categorysvc "newswire/internal/service/category"
	commentsvc "newswire/internal/service/comment"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAPI starts an in-process API server over memory repositories and
// points the CLI at it.
func newTestAPI(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	articles := articlerepo.NewMemory()
	router := httpserver.NewRouter(zerolog.Nop(), nil, httpserver.Deps{
		ArticleSvc:  articlesvc.New(articles),
		CommentSvc:  commentsvc.New(commentrepo.NewMemory(), articles),
		CategorySvc: categorysvc.New(categoryrepo.NewMemory()),
		SiteURL:     "http://test.local",
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	apiAddr = srv.URL
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestArticleLikeCommand(t *testing.T) {
	newTestAPI(t)

	a, err := api().CreateArticle(context.Background(), client.NewArticle{
		Title: "Liked", Content: "c", Author: "Ana",
	})
	require.NoError(t, err)

	out := run(t, "article", "like", a.ID)
	assert.Contains(t, out, "1 likes")

	out = run(t, "article", "like", a.ID)
	assert.Contains(t, out, "2 likes")
}
