package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and reports the first failing
// field with an actionable message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err
	}

	first := validationErrors[0]
	field := strings.ToLower(first.Field())

	switch first.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "min":
		return fmt.Errorf("%s must be at least %s characters", field, first.Param())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", field, first.Param())
	case "email":
		return fmt.Errorf("%s must be a valid email address", field)
	default:
		return fmt.Errorf("%s is invalid", field)
	}
}
