package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/response"
)

type Handler struct {
	service book.Service
}

func NewHandler(service book.Service) *Handler {
	return &Handler{service: service}
}

// CreateBook - POST /books
func (h *Handler) CreateBook(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if book.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ListBooks - GET /books
// Query params: search, author_id, category_id, available_only, page, per_page
func (h *Handler) ListBooks(c *gin.Context) {
	req := book.ListBooksRequest{
		Search:     c.Query("search"),
		AuthorID:   c.Query("author_id"),
		CategoryID: c.Query("category_id"),
		Page:       1,
		PerPage:    10,
	}

	if v := c.Query("available_only"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			req.AvailableOnly = b
		}
	}
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			req.Page = p
		}
	}
	if v := c.Query("per_page"); v != "" {
		if pp, err := strconv.Atoi(v); err == nil && pp > 0 && pp <= 100 {
			req.PerPage = pp
		}
	}

	books, total, err := h.service.List(c.Request.Context(), req)
	if book.HandleBookError(c, err) {
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{
		Page:    req.Page,
		PerPage: req.PerPage,
		Total:   total,
	})
}

// GetBook - GET /books/:id
func (h *Handler) GetBook(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if book.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, b)
}

// UpdateBook - PUT /books/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if book.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// DeleteBook - DELETE /books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if book.HandleBookError(c, err) {
		return
	}

	response.NoContent(c)
}

// GetAvailability - GET /books/:id/availability
func (h *Handler) GetAvailability(c *gin.Context) {
	availability, err := h.service.CheckAvailability(c.Request.Context(), c.Param("id"))
	if book.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, availability)
}

// UpdateInventory - PUT /books/:id/inventory
func (h *Handler) UpdateInventory(c *gin.Context) {
	var req book.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateInventory(c.Request.Context(), c.Param("id"), req)
	if book.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// SearchBooks - GET /books/search?title=
func (h *Handler) SearchBooks(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		response.BadRequest(c, "Query parameter 'title' is required")
		return
	}

	books, err := h.service.SearchByTitle(c.Request.Context(), title)
	if book.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, books)
}

// ListByAuthor - GET /authors/:id/books
func (h *Handler) ListByAuthor(c *gin.Context) {
	books, err := h.service.GetByAuthor(c.Request.Context(), c.Param("id"))
	if book.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, books)
}

// ListByCategory - GET /categories/:id/books
func (h *Handler) ListByCategory(c *gin.Context) {
	books, err := h.service.GetByCategory(c.Request.Context(), c.Param("id"))
	if book.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, books)
}
