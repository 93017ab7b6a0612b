// Package request holds request decoding shared by the handlers.
package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// MissingBodyMessage is returned to clients when the body is absent or {}.
const MissingBodyMessage = "Request body is missing."

var (
	ErrEmptyBody   = errors.New("request body is missing")
	ErrInvalidBody = errors.New("request body is not a JSON object")
)

// BindBody decodes the JSON object body of c into dest.
// An absent body, "null" and "{}" yield ErrEmptyBody; anything that is not a
// JSON object, or does not fit dest, yields an error wrapping ErrInvalidBody.
// Keys dest does not declare are ignored.
func BindBody(c *gin.Context, dest any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return ErrEmptyBody
	}

	var probe map[string]json.RawMessage
	if err := binding.JSON.BindBody(raw, &probe); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if len(probe) == 0 {
		return ErrEmptyBody
	}

	if err := binding.JSON.BindBody(raw, dest); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}
