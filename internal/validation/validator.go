package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldError is a validation failure attached to a form field.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	return fmt.Sprintf("validation failed: %s: %s", e[0].Field, e[0].Message)
}

// For returns the messages attached to the given field.
func (e Errors) For(field string) []string {
	messages := make([]string, 0)
	for _, fe := range e {
		if fe.Field == field {
			messages = append(messages, fe.Message)
		}
	}
	return messages
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields with the name used in submitted forms
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &Validator{
		validate: validate,
	}
}

// Validate checks the struct against its `validate` tags and returns
// an Errors value when at least one rule fails.
func (v *Validator) Validate(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	validationErrs := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		validationErrs = append(validationErrs, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: getErrorMessage(fe),
		})
	}

	return validationErrs
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters (it has %d).", fe.Param(), len([]rune(fmt.Sprint(fe.Value()))))
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}

// MaxLength returns the "max" rule declared in the `validate` tag of the
// given struct field, or 0 if the field has none.
func MaxLength(s any, field string) int {
	t := reflect.TypeOf(s)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	structField, exists := t.FieldByName(field)
	if !exists {
		return 0
	}

	for _, rule := range strings.Split(structField.Tag.Get("validate"), ",") {
		param, found := strings.CutPrefix(rule, "max=")
		if !found {
			continue
		}

		length, err := strconv.Atoi(param)
		if err != nil {
			return 0
		}

		return length
	}

	return 0
}
