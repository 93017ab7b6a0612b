package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorBody is the shape of every error answer.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageBody is the shape of confirmation answers.
type MessageBody struct {
	Message string `json:"message"`
}

// CreatedBody carries the identifier assigned to a new document.
type CreatedBody struct {
	ID string `json:"id"`
}

// Success responses
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Created(c *gin.Context, id string) {
	c.JSON(http.StatusCreated, CreatedBody{ID: id})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
func Error(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: message})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message, details string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: message, Details: details})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalServerError logs err and answers with the generic message plus
// the error text. Nothing but the text reaches the client.
func InternalServerError(c *gin.Context, err error) {
	log.Error().Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("method", c.Request.Method).
		Str("route", c.FullPath()).
		Msg("request failed")
	ErrorWithDetails(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
}
