package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

func describeTag(tag, param string) string {
	switch tag {
	case "required":
		return "must not be blank"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", param)
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", param)
	default:
		return "is invalid"
	}
}

// MapValidationError converts a gin binding failure into an InvalidInput
// AppError. Field names come from the json tags registered in Init, and
// every violation is listed as "field : reason" joined by ", ".
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		parts := make([]string, 0, len(errs))
		for _, e := range errs {
			parts = append(parts, fmt.Sprintf("%s : %s", e.Field(), describeTag(e.Tag(), e.Param())))
		}
		return ErrInvalidInput.WithMessage(strings.Join(parts, ", "))
	}

	if err != nil {
		return ErrInvalidInput.WithMessage("Malformed request body: " + err.Error())
	}
	return ErrInvalidInput
}
