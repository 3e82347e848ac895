package services

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/experiences/internal/client/models"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// validate is shared by all services; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names, matching what the backend calls them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidators(v)
	return v
}

func registerCustomValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	// bytes_eqfield compares two []byte fields by content; eqfield only
	// compares slice lengths.
	_ = v.RegisterValidation("bytes_eqfield", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		other := reflect.Indirect(fl.Parent()).FieldByName(fl.Param())
		if !other.IsValid() || field.Kind() != reflect.Slice || other.Kind() != reflect.Slice {
			return false
		}
		return bytes.Equal(field.Bytes(), other.Bytes())
	})

	// answered requires at least one non-blank answer.
	_ = v.RegisterValidation("answered", func(fl validator.FieldLevel) bool {
		content, ok := fl.Field().Interface().([]models.QuestionAnswer)
		if !ok {
			return false
		}
		for _, qa := range content {
			if strings.TrimSpace(qa.Answer) != "" {
				return true
			}
		}
		return false
	})
}

// validateStruct runs the validate tags of s and reports the first failing
// field as a *ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate %T: %w", s, err)
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Reason: reasonFor(fe)}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "is not a valid address"
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "bytes_eqfield":
		return "passwords do not match"
	case "answered":
		return "answer at least one question"
	default:
		return "is invalid"
	}
}
