package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/author"
	"library-api/internal/shared/request"
	"library-api/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, authors)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := request.PathID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found.")
			return
		}
		response.InternalServerError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.AuthorRequest
	if !request.Bind(c, &req) {
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, author.ErrDuplicateEmail) {
			response.Conflict(c, "Conflict: Email already exists.")
			return
		}
		response.InternalServerError(c, err)
		return
	}

	response.Created(c, id)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := request.PathID(c)
	if !ok {
		return
	}

	var req author.AuthorRequest
	if !request.Bind(c, &req) {
		return
	}

	err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, author.ErrAuthorNotFound):
			response.NotFound(c, "Author not found for update.")
		case errors.Is(err, author.ErrDuplicateEmail):
			response.Conflict(c, "Conflict: Email already exists.")
		default:
			response.InternalServerError(c, err)
		}
		return
	}

	response.NoContent(c)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := request.PathID(c)
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found for deletion.")
			return
		}
		response.InternalServerError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Author deleted successfully.")
}
