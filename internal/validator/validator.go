package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Seat labels are opaque identifiers ("A1", "J12"); the format is not
// interpreted, only bounded.
const maxSeatLabelLen = 8

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_label", validateSeatLabel)

	return validator
}

func validateSeatLabel(fl validator.FieldLevel) bool {
	label := fl.Field().String()

	if strings.TrimSpace(label) == "" {
		return false
	}

	return len(label) <= maxSeatLabelLen
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must have a length of at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must have a length of at most %s", err.Param())
	case "unique":
		return "must not contain duplicates"
	case "seat_label":
		return fmt.Sprintf("must be a non-blank seat label of at most %d characters", maxSeatLabelLen)
	default:
		return "is invalid"
	}
}
