package serverutils

import (
	"ai-notebook-be/internal/service"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a request DTO and converts
// the first failure into a domain ValidationError.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		first := errs[0]
		return &service.ValidationError{
			Field:  first.Field(),
			Reason: "failed rule '" + first.Tag() + "'",
		}
	}
	return err
}
