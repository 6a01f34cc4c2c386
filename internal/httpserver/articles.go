package httpserver

import (
	"net/http"

	"newswire/internal/domain"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type createArticleRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	Author      string   `json:"author"`
	AuthorTitle string   `json:"authorTitle"`
	AuthorImage string   `json:"authorImage"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
	Published   bool     `json:"published"`
	Featured    bool     `json:"featured"`
}

func (r createArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required"), validation.Length(1, 300)),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required"), validation.Length(1, 120)),
		validation.Field(&r.Category, validation.Length(0, 120)),
		validation.Field(&r.ImageURL, is.URL),
		validation.Field(&r.AuthorImage, is.URL),
	)
}

type updateArticleRequest struct {
	Title       *string   `json:"title"`
	Content     *string   `json:"content"`
	Excerpt     *string   `json:"excerpt"`
	Author      *string   `json:"author"`
	AuthorTitle *string   `json:"authorTitle"`
	AuthorImage *string   `json:"authorImage"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	ImageURL    *string   `json:"imageUrl"`
	Published   *bool     `json:"published"`
	Featured    *bool     `json:"featured"`
}

func (r updateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty.Error("title cannot be empty"), validation.Length(1, 300)),
		validation.Field(&r.Content, validation.NilOrNotEmpty.Error("content cannot be empty")),
		validation.Field(&r.Author, validation.NilOrNotEmpty.Error("author cannot be empty")),
	)
}

func (h *handlers) listArticles(c *gin.Context) {
	filter := domain.ArticleFilter{
		Query:     c.Query("query"),
		Category:  c.Query("category"),
		Published: boolParam(c, "published"),
		Featured:  boolParam(c, "featured"),
	}
	articles, err := h.deps.ArticleSvc.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	c.JSON(http.StatusOK, articles)
}

// getArticle counts the fetch as a view: every successful detail read
// increments the counter by exactly one.
func (h *handlers) getArticle(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := h.deps.ArticleSvc.IncrementViews(ctx, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	a, err := h.deps.ArticleSvc.Get(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *handlers) createArticle(c *gin.Context) {
	var req createArticleRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	a, err := h.deps.ArticleSvc.Create(c.Request.Context(), domain.Article{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Author:      req.Author,
		AuthorTitle: req.AuthorTitle,
		AuthorImage: req.AuthorImage,
		Category:    req.Category,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
		Published:   req.Published,
		Featured:    req.Featured,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *handlers) updateArticle(c *gin.Context) {
	var req updateArticleRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	a, err := h.deps.ArticleSvc.Update(c.Request.Context(), c.Param("id"), domain.ArticleUpdate{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Author:      req.Author,
		AuthorTitle: req.AuthorTitle,
		AuthorImage: req.AuthorImage,
		Category:    req.Category,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
		Published:   req.Published,
		Featured:    req.Featured,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *handlers) deleteArticle(c *gin.Context) {
	existed, err := h.deps.ArticleSvc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) likeArticle(c *gin.Context) {
	likes, err := h.deps.ArticleSvc.IncrementLikes(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

func (h *handlers) viewArticle(c *gin.Context) {
	views, err := h.deps.ArticleSvc.IncrementViews(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"views": views})
}

func (h *handlers) searchArticles(c *gin.Context) {
	articles, err := h.deps.ArticleSvc.List(c.Request.Context(), domain.ArticleFilter{
		Query: c.Query("q"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	c.JSON(http.StatusOK, articles)
}
