package httpserver

import (
	"net/http"

	"newswire/internal/domain"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type createCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (r createCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 120)),
		validation.Field(&r.Slug, validation.Length(0, 120)),
	)
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

func (r updateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty.Error("name cannot be empty")),
		validation.Field(&r.Slug, validation.NilOrNotEmpty.Error("slug cannot be empty")),
	)
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.CategorySvc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

func (h *handlers) getCategoryBySlug(c *gin.Context) {
	cat, err := h.deps.CategorySvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *handlers) createCategory(c *gin.Context) {
	var req createCategoryRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	cat, err := h.deps.CategorySvc.Create(c.Request.Context(), domain.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *handlers) updateCategory(c *gin.Context) {
	var req updateCategoryRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	cat, err := h.deps.CategorySvc.Update(c.Request.Context(), c.Param("id"), domain.CategoryUpdate{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *handlers) deleteCategory(c *gin.Context) {
	existed, err := h.deps.CategorySvc.Delete(c.Request.Context(), c.Param("id"))
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
