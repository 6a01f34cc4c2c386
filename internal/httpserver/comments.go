package httpserver

import (
	"net/http"

	"newswire/internal/domain"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type createCommentRequest struct {
	Author  string `json:"author"`
	Email   string `json:"email"`
	Content string `json:"content"`
}

func (r createCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Author, validation.Required.Error("author is required"), validation.Length(1, 120)),
		validation.Field(&r.Email, validation.Required.Error("email is required"), is.Email.Error("invalid email format")),
		validation.Field(&r.Content, validation.Required.Error("content is required"), validation.Length(1, 5000)),
	)
}

func (h *handlers) listComments(c *gin.Context) {
	comments, err := h.deps.CommentSvc.ListByArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	c.JSON(http.StatusOK, comments)
}

func (h *handlers) createComment(c *gin.Context) {
	var req createCommentRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	cm, err := h.deps.CommentSvc.Create(c.Request.Context(), domain.Comment{
		ArticleID: c.Param("id"),
		Author:    req.Author,
		Email:     req.Email,
		Content:   req.Content,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, cm)
}

func (h *handlers) deleteComment(c *gin.Context) {
	existed, err := h.deps.CommentSvc.Delete(c.Request.Context(), c.Param("id"))
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
