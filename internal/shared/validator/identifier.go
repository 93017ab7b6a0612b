// Package validator holds the input guards shared by every handler.
package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// InvalidIdentifierMessage is returned to clients for malformed identifiers.
const InvalidIdentifierMessage = "Invalid ID format. Must be a 24-character hexadecimal string."

var identifierRules = []validation.Rule{
	validation.Required,
	is.MongoID,
}

// ValidateIdentifier checks that value is exactly 24 hexadecimal characters.
func ValidateIdentifier(value string) error {
	return validation.Validate(value, identifierRules...)
}

// IsValidIdentifier is the boolean form of ValidateIdentifier.
// Handlers call it before any storage access.
func IsValidIdentifier(value string) bool {
	return ValidateIdentifier(value) == nil
}
