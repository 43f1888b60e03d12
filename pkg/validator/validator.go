// Package validator runs the declarative `validate` tags carried by the
// request structs.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError describes one failed rule on a request struct.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

var validate = validator.New()

func init() {
	// uuid.UUID is an array type, so "required" alone cannot tell a missing
	// id from the zero uuid. uuid_required rejects both.
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		id, ok := fl.Field().Interface().(uuid.UUID)
		return ok && id != uuid.Nil
	})
}

// ValidateStruct evaluates the struct's tags and returns one FieldError per
// failed rule, or nil when everything passes.
func ValidateStruct(data interface{}) []*FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var out []*FieldError
	for _, fieldErr := range err.(validator.ValidationErrors) {
		out = append(out, &FieldError{
			Field: fieldErr.StructNamespace(),
			Tag:   fieldErr.Tag(),
			Param: fieldErr.Param(),
		})
	}
	return out
}
