package request

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/response"
	"library-api/internal/shared/validator"
)

// PathID returns the :id path parameter in lowercase. When it is not a
// valid identifier it answers 400 and returns false; the caller must stop.
func PathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !validator.IsValidIdentifier(id) {
		response.BadRequest(c, validator.InvalidIdentifierMessage)
		return "", false
	}
	return strings.ToLower(id), true
}

// Bind decodes the body with BindBody. On failure it answers 400 and
// returns false; the caller must stop.
func Bind(c *gin.Context, dest any) bool {
	err := BindBody(c, dest)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrEmptyBody):
		response.BadRequest(c, MissingBodyMessage)
	default:
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body.", err.Error())
	}
	return false
}
