// Package models defines the record shapes stored in the document store and
// the validation rules each record must satisfy.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/yigit/uniportal/internal/pkg/apperrors"
)

// Collection names
const (
	CollectionDepartment = "department"
	CollectionCourse     = "course"
	CollectionNews       = "news"
	CollectionInquiry    = "inquiry"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names in validation errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode fills dst from raw and validates it. dst must already hold the
// defaults of its type. Keys must match a json tag exactly; any other key,
// including a differently cased one, is ignored.
func decode(entity string, raw map[string]any, dst any) error {
	known := fieldNames(reflect.TypeOf(dst))
	exact := make(map[string]any, len(raw))
	for k, v := range raw {
		if _, ok := known[k]; ok {
			exact[k] = v
		}
	}

	b, err := json.Marshal(exact)
	if err != nil {
		return apperrors.NewValidationError(entity, "", "record is not encodable: "+err.Error())
	}

	if err := json.Unmarshal(b, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return apperrors.NewValidationError(entity, typeErr.Field, "expected "+typeErr.Type.String()+", got "+typeErr.Value)
		}
		return apperrors.NewValidationError(entity, "", err.Error())
	}

	return Validate(entity, dst)
}

var fieldNameCache sync.Map // reflect.Type -> map[string]struct{}

// fieldNames returns the json names of the struct fields of t, which may be
// a pointer to a struct.
func fieldNames(t reflect.Type) map[string]struct{} {
	if cached, ok := fieldNameCache.Load(t); ok {
		return cached.(map[string]struct{})
	}

	st := t
	for st.Kind() == reflect.Ptr {
		st = st.Elem()
	}
	names := make(map[string]struct{}, st.NumField())
	for i := 0; i < st.NumField(); i++ {
		fld := st.Field(i)
		if !fld.IsExported() {
			continue
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			continue
		case "":
			name = fld.Name
		}
		names[name] = struct{}{}
	}

	fieldNameCache.Store(t, names)
	return names
}

// Validate checks a record against its struct tags and converts the first
// failure into an *apperrors.ValidationError naming the field.
func Validate(entity string, record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(entity, fe.Field(), formatValidationError(fe))
	}
	return apperrors.NewValidationError(entity, "", err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field required"
	case "min", "gte":
		return fmt.Sprintf("must be greater than or equal to %s", e.Param())
	case "max", "lte":
		return fmt.Sprintf("must be less than or equal to %s", e.Param())
	default:
		return "failed on " + e.Tag()
	}
}
