package validators

import (
	apperrors "candyshop-backend/pkg/errors"
	"candyshop-backend/pkg/validation"
)

// CreateUserInput is the accepted payload for user registration.
type CreateUserInput struct {
	UserID string `json:"userId" validate:"required,min=1,max=50,idchars"`
	Name   string `json:"name" validate:"required,min=2,max=50,namechars"`
}

// PatchUserInput is the accepted payload for a user update. UserID is
// immutable, so the name is the only patchable field.
type PatchUserInput struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=50,namechars"`
}

var userCreateFields = validation.FieldSet{
	Allowed: map[string]bool{"userId": true, "name": true},
	Foreign: foreignToUser,
}

var userPatchFields = validation.FieldSet{
	Allowed:   map[string]bool{"name": true},
	Foreign:   foreignToUser,
	Immutable: map[string]bool{"userId": true},
}

var foreignToUser = map[string]string{
	"price":         "product",
	"image":         "product",
	"amountInStock": "product",
	"productId":     "product",
	"amount":        "cart",
}

// UserValidator checks user payloads at the request boundary.
type UserValidator struct{}

// NewUserValidator creates a new user validator
func NewUserValidator() *UserValidator {
	return &UserValidator{}
}

// ValidateCreate checks a registration payload. All fields are required.
func (v *UserValidator) ValidateCreate(body []byte) (*CreateUserInput, error) {
	raw, err := validation.DecodeRaw(body)
	if err != nil {
		return nil, invalidBody("invalid user payload")
	}

	violations := validation.CheckFields(raw, userCreateFields)

	var input CreateUserInput
	if decodeViolations := validation.UnmarshalInto(body, &input); decodeViolations.HasErrors() {
		violations = append(violations, decodeViolations...)
	} else {
		violations = append(violations, validation.ValidateStruct(input)...)
	}

	if violations.HasErrors() {
		return nil, apperrors.NewValidationError("invalid user payload", violations)
	}
	return &input, nil
}

// ValidatePatch checks an update payload. All fields are optional but at
// least one must be present; unknown fields are rejected, not dropped.
func (v *UserValidator) ValidatePatch(body []byte) (*PatchUserInput, error) {
	raw, err := validation.DecodeRaw(body)
	if err != nil {
		return nil, invalidBody("invalid user patch")
	}

	violations := validation.CheckFields(raw, userPatchFields)
	violations = append(violations, requireAnyField(raw, userPatchFields)...)
	violations = append(violations, rejectNulls(raw, userPatchFields)...)

	var input PatchUserInput
	if decodeViolations := validation.UnmarshalInto(body, &input); decodeViolations.HasErrors() {
		violations = append(violations, decodeViolations...)
	} else {
		violations = append(violations, validation.ValidateStruct(input)...)
	}

	if violations.HasErrors() {
		return nil, apperrors.NewValidationError("invalid user patch", violations)
	}
	return &input, nil
}
