// Package validators defines the per-entity request contracts. Each entity
// has a create mode (every field required) and a patch mode (fields
// optional, at least one present). Fields owned by the other entity
// families in the table are rejected explicitly so a leaked payload never
// reaches the store.
package validators

import (
	"encoding/json"

	apperrors "candyshop-backend/pkg/errors"
	"candyshop-backend/pkg/validation"
)

// requireAnyField checks the patch-mode floor: an empty patch is a client
// error, not a no-op.
func requireAnyField(raw map[string]json.RawMessage, fs validation.FieldSet) apperrors.Violations {
	for field := range raw {
		if fs.Allowed[field] {
			return nil
		}
	}
	var violations apperrors.Violations
	violations.Add("body", "empty", "at least one field must be provided")
	return violations
}

// rejectNulls turns explicit JSON nulls on allowed fields into violations;
// a null would otherwise vanish into a nil pointer and read as "absent".
func rejectNulls(raw map[string]json.RawMessage, fs validation.FieldSet) apperrors.Violations {
	var violations apperrors.Violations
	for field, value := range raw {
		if fs.Allowed[field] && string(value) == "null" {
			violations.Add(field, "type", field+" must not be null")
		}
	}
	return violations
}

func invalidBody(message string) error {
	var violations apperrors.Violations
	violations.Add("body", "syntax", "request body is not valid JSON")
	return apperrors.NewValidationError(message, violations)
}
