package graphql

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/whiskers/catgraph/internal/core/domain"
)

// argValidator runs go-playground/validator over resolver argument structs.
// Field names in messages come from the `arg` tag so they match the schema.
type argValidator struct {
	v *validator.Validate
}

func newArgValidator() *argValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("arg"); name != "" {
			return name
		}
		return f.Name
	})
	return &argValidator{v: v}
}

// Validate returns an error wrapping domain.ErrInvalidInput listing every
// failed field.
func (av *argValidator) Validate(i any) error {
	if err := av.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s elements", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "eq":
		return fmt.Sprintf("%s must be %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
