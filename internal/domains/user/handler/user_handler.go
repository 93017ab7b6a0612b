package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/user"
	"library-api/internal/shared/request"
	"library-api/internal/shared/response"
)

// UserHandler exposes the users collection read-only. Identifiers are
// validated and unknown users answer 404, like authors and books.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{
		service: svc,
	}
}

// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, users)
}

// GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := request.PathID(c)
	if !ok {
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(c, "User not found.")
			return
		}
		response.InternalServerError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, u)
}
