// Package validation wraps a singleton go-playground validator and turns its errors into
// messages suitable for the problem document detail.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single failed field.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) Message() string {
	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s 필드는 필수입니다.", e.Field)
	case "max":
		return fmt.Sprintf("%s 필드는 최대 %s 이하여야 합니다.", e.Field, e.Param)
	case "oneof":
		return fmt.Sprintf("%s 필드는 [%s] 중 하나여야 합니다.", e.Field, e.Param)
	default:
		return fmt.Sprintf("%s 필드가 올바르지 않습니다.", e.Field)
	}
}

// RequestValidationError collects the failed fields of one struct.
type RequestValidationError struct {
	Fields []FieldError
}

func (e *RequestValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		messages[i] = f.Message()
	}
	return strings.Join(messages, ", ")
}

// GetValidator returns the shared validator. Field names are reported by their json tag.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct returns nil or a *RequestValidationError.
func ValidateStruct(s interface{}) error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation: %w", err)
	}

	result := &RequestValidationError{Fields: make([]FieldError, len(validationErrors))}
	for i, fe := range validationErrors {
		result.Fields[i] = FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()}
	}
	return result
}
