package handlers

import (
	"net/http"

	"github.com/farellandr/eventure/internal/forms"
	"github.com/farellandr/eventure/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categories service.CategoryService
	log        *zap.Logger
}

func NewCategoryHandler(categories service.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, log: log}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	render(c, http.StatusOK, "category_list.html", "Categories", gin.H{
		"Categories": categories,
	})
}

func (h *CategoryHandler) NewCategory(c *gin.Context) {
	h.renderForm(c, http.StatusOK, forms.CategoryInput{}, nil, 0)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var in forms.CategoryInput
	if !bindForm(c, &in) {
		return
	}

	if _, err := h.categories.Create(c.Request.Context(), in); err != nil {
		if fields, ok := formErrors(err); ok {
			h.renderForm(c, http.StatusOK, in, fields, 0)
			return
		}
		respondWithServiceError(c, h.log, err)
		return
	}

	redirect(c, "/categories/")
}

func (h *CategoryHandler) EditCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	h.renderForm(c, http.StatusOK, forms.CategoryInputFrom(*category), nil, id)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in forms.CategoryInput
	if !bindForm(c, &in) {
		return
	}

	if _, err := h.categories.Update(c.Request.Context(), id, in); err != nil {
		if fields, ok := formErrors(err); ok {
			h.renderForm(c, http.StatusOK, in, fields, id)
			return
		}
		respondWithServiceError(c, h.log, err)
		return
	}

	redirect(c, "/categories/")
}

func (h *CategoryHandler) ConfirmDeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	render(c, http.StatusOK, "confirm_delete.html", "Delete category", gin.H{
		"Confirm": confirmDelete{Object: category.String(), Kind: "category", CancelURL: "/categories/"},
	})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	redirect(c, "/categories/")
}

func (h *CategoryHandler) renderForm(c *gin.Context, status int, in forms.CategoryInput, errs forms.Errors, id uint) {
	title := "Add category"
	if id != 0 {
		title = "Edit category"
	}
	render(c, status, "category_form.html", title, gin.H{
		"Input":  in,
		"Errors": errs,
		"ID":     id,
	})
}
