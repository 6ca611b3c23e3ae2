package rest

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	// report violations under the wire field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateStruct returns the violated fields, or nil when the value
// passes.
func validateStruct(s any) []fieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldError{{Message: "invalid request body"}}
	}

	fields := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}

	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	default:
		return "is invalid"
	}
}
