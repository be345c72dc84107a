// Package validation is the strict request boundary: payloads are decoded
// field-by-field, checked against the entity's field set, then run through
// go-playground/validator. No domain object is built from an unchecked body.
package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	domainconfig "candyshop-backend/domain/config"
	apperrors "candyshop-backend/pkg/errors"
)

var validate = newValidator()

var (
	idRegexp       = regexp.MustCompile(domainconfig.IDPattern)
	nameRegexp     = regexp.MustCompile(domainconfig.NamePattern)
	imageURLRegexp = regexp.MustCompile(domainconfig.ImageURLPattern)
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("idchars", func(fl validator.FieldLevel) bool {
		return idRegexp.MatchString(fl.Field().String())
	})
	v.RegisterValidation("namechars", func(fl validator.FieldLevel) bool {
		return nameRegexp.MatchString(fl.Field().String())
	})
	v.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
		return imageURLRegexp.MatchString(fl.Field().String())
	})

	return v
}

// FieldSet declares which wire fields an entity payload may carry and which
// belong to the other entity families sharing the table.
type FieldSet struct {
	// Allowed maps a field name to whether it may appear at all. Create
	// and patch modes use different sets (patch drops immutable fields).
	Allowed map[string]bool
	// Foreign maps a field name to the entity family that owns it, so the
	// violation can say where a leaked field actually belongs.
	Foreign map[string]string
	// Immutable names fields that identify the record and therefore may
	// not appear in a patch payload.
	Immutable map[string]bool
}

// CheckFields rejects fields outside the allowed set. Leaked fields from
// other entities and outright unknown fields get distinct violations; none
// are silently dropped.
func CheckFields(raw map[string]json.RawMessage, fs FieldSet) apperrors.Violations {
	var violations apperrors.Violations
	for field := range raw {
		if fs.Allowed[field] {
			continue
		}
		if fs.Immutable[field] {
			violations.Add(field, "immutable", fmt.Sprintf("%s cannot be changed", field))
			continue
		}
		if owner, ok := fs.Foreign[field]; ok {
			violations.Add(field, "exclusive", fmt.Sprintf("%s does not apply to this entity (belongs to %s)", field, owner))
			continue
		}
		violations.Add(field, "unknown", fmt.Sprintf("unknown field %s", field))
	}
	return violations
}

// DecodeRaw splits a JSON object body into its top-level fields.
func DecodeRaw(body []byte) (map[string]json.RawMessage, error) {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// UnmarshalInto decodes the body into the typed input, translating type
// mismatches into per-field violations.
func UnmarshalInto(body []byte, target interface{}) apperrors.Violations {
	err := json.Unmarshal(body, target)
	if err == nil {
		return nil
	}

	var violations apperrors.Violations
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		violations.Add(typeErr.Field, "type", fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
	} else {
		violations.Add("body", "syntax", "request body is not valid JSON")
	}
	return violations
}

// ValidateStruct runs tag validation and converts the result into itemized
// violations.
func ValidateStruct(s interface{}) apperrors.Violations {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var violations apperrors.Violations
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			violations.Add(e.Field(), e.Tag(), formatFieldError(e))
		}
		return violations
	}
	violations.Add("body", "invalid", err.Error())
	return violations
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "idchars":
		return fmt.Sprintf("%s may only contain letters, digits and '#'", field)
	case "namechars":
		return fmt.Sprintf("%s may only contain letters, digits and spaces", field)
	case "imageurl":
		return fmt.Sprintf("%s must be a valid http(s) URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
