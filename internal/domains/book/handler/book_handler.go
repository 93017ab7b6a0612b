package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/book"
	"library-api/internal/shared/request"
	"library-api/internal/shared/response"
)

const conflictMessage = "Conflict: A document with that unique field value already exists."

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// GET /books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, books)
}

// GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := request.PathID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, "Book not found.")
			return
		}
		response.InternalServerError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b)
}

// POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.BookRequest
	if !request.Bind(c, &req) {
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, book.ErrDuplicateISBN) {
			response.Conflict(c, conflictMessage)
			return
		}
		response.InternalServerError(c, err)
		return
	}

	response.Created(c, id)
}

// PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := request.PathID(c)
	if !ok {
		return
	}

	var req book.BookRequest
	if !request.Bind(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, book.ErrBookNotFound):
			response.NotFound(c, "Book not found for update.")
		case errors.Is(err, book.ErrDuplicateISBN):
			response.Conflict(c, conflictMessage)
		default:
			response.InternalServerError(c, err)
		}
		return
	}

	response.NoContent(c)
}

// DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := request.PathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, "Book not found for deletion.")
			return
		}
		response.InternalServerError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Book deleted successfully.")
}
