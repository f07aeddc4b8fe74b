package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/category"
	"library-catalog/internal/shared/response"
)

type Handler struct {
	service category.Service
}

func NewHandler(service category.Service) *Handler {
	return &Handler{service: service}
}

// CreateCategory - POST /categories
func (h *Handler) CreateCategory(c *gin.Context) {
	var req category.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if category.HandleCategoryError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ListCategories - GET /categories
func (h *Handler) ListCategories(c *gin.Context) {
	page := 1
	perPage := 10

	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}
	if v := c.Query("per_page"); v != "" {
		if pp, err := strconv.Atoi(v); err == nil && pp > 0 && pp <= 100 {
			perPage = pp
		}
	}

	categories, total, err := h.service.List(c.Request.Context(), page, perPage)
	if category.HandleCategoryError(c, err) {
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, categories, &response.Meta{
		Page:    page,
		PerPage: perPage,
		Total:   total,
	})
}

// GetCategory - GET /categories/:id
func (h *Handler) GetCategory(c *gin.Context) {
	cat, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if category.HandleCategoryError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, cat)
}

// UpdateCategory - PUT /categories/:id
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req category.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if category.HandleCategoryError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// DeleteCategory - DELETE /categories/:id
func (h *Handler) DeleteCategory(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if category.HandleCategoryError(c, err) {
		return
	}

	response.NoContent(c)
}

// SearchCategories - GET /categories/search?name=
func (h *Handler) SearchCategories(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.BadRequest(c, "Query parameter 'name' is required")
		return
	}

	categories, err := h.service.SearchByName(c.Request.Context(), name)
	if category.HandleCategoryError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// GetTree - GET /categories/tree
func (h *Handler) GetTree(c *gin.Context) {
	tree, err := h.service.GetTree(c.Request.Context())
	if category.HandleCategoryError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, tree)
}

// GetSubcategories - GET /categories/:id/subcategories
func (h *Handler) GetSubcategories(c *gin.Context) {
	categories, err := h.service.GetSubcategories(c.Request.Context(), c.Param("id"))
	if category.HandleCategoryError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// RefreshBookCount - PUT /categories/:id/book-count
func (h *Handler) RefreshBookCount(c *gin.Context) {
	cat, err := h.service.UpdateBookCount(c.Request.Context(), c.Param("id"))
	if category.HandleCategoryError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, cat)
}
