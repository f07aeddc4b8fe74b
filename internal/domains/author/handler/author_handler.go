package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/shared/response"
)

type Handler struct {
	service author.Service
}

func NewHandler(service author.Service) *Handler {
	return &Handler{service: service}
}

// CreateAuthor - POST /authors
func (h *Handler) CreateAuthor(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if author.HandleAuthorError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ListAuthors - GET /authors
func (h *Handler) ListAuthors(c *gin.Context) {
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

	authors, total, err := h.service.List(c.Request.Context(), page, perPage)
	if author.HandleAuthorError(c, err) {
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, authors, &response.Meta{
		Page:    page,
		PerPage: perPage,
		Total:   total,
	})
}

// GetAuthor - GET /authors/:id
func (h *Handler) GetAuthor(c *gin.Context) {
	a, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if author.HandleAuthorError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, a)
}

// UpdateAuthor - PUT /authors/:id
func (h *Handler) UpdateAuthor(c *gin.Context) {
	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if author.HandleAuthorError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// DeleteAuthor - DELETE /authors/:id
func (h *Handler) DeleteAuthor(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if author.HandleAuthorError(c, err) {
		return
	}

	response.NoContent(c)
}

// SearchAuthors - GET /authors/search?name=
func (h *Handler) SearchAuthors(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.BadRequest(c, "Query parameter 'name' is required")
		return
	}

	authors, err := h.service.SearchByName(c.Request.Context(), name)
	if author.HandleAuthorError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, authors)
}

// RefreshBookCount - PUT /authors/:id/book-count
func (h *Handler) RefreshBookCount(c *gin.Context) {
	a, err := h.service.UpdateBookCount(c.Request.Context(), c.Param("id"))
	if author.HandleAuthorError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, a)
}
