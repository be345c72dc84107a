package validators

import (
	apperrors "candyshop-backend/pkg/errors"
	"candyshop-backend/pkg/validation"
)

// AddCartItemInput is the accepted payload for adding a product to a cart.
type AddCartItemInput struct {
	UserID    string `json:"userId" validate:"required,min=1,max=50,idchars"`
	ProductID string `json:"productId" validate:"required,min=1,max=50,idchars"`
	Amount    *int   `json:"amount" validate:"required,min=0,max=9999"`
}

// PatchCartItemInput carries the new quantity for an existing cart line.
// The line identity comes from the URL, never from the body.
type PatchCartItemInput struct {
	Amount *int `json:"amount" validate:"required,min=0,max=9999"`
}

var cartAddFields = validation.FieldSet{
	Allowed: map[string]bool{"userId": true, "productId": true, "amount": true},
	Foreign: foreignToCart,
}

var cartPatchFields = validation.FieldSet{
	Allowed:   map[string]bool{"amount": true},
	Foreign:   foreignToCart,
	Immutable: map[string]bool{"userId": true, "productId": true},
}

var foreignToCart = map[string]string{
	"name":          "user or product",
	"price":         "product",
	"image":         "product",
	"amountInStock": "product",
}

// CartValidator checks cart payloads at the request boundary.
type CartValidator struct{}

// NewCartValidator creates a new cart validator
func NewCartValidator() *CartValidator {
	return &CartValidator{}
}

// ValidateAdd checks an add-to-cart payload.
func (v *CartValidator) ValidateAdd(body []byte) (*AddCartItemInput, error) {
	raw, err := validation.DecodeRaw(body)
	if err != nil {
		return nil, invalidBody("invalid cart payload")
	}

	violations := validation.CheckFields(raw, cartAddFields)

	var input AddCartItemInput
	if decodeViolations := validation.UnmarshalInto(body, &input); decodeViolations.HasErrors() {
		violations = append(violations, decodeViolations...)
	} else {
		violations = append(violations, validation.ValidateStruct(input)...)
	}

	if violations.HasErrors() {
		return nil, apperrors.NewValidationError("invalid cart payload", violations)
	}
	return &input, nil
}

// ValidatePatch checks a quantity update payload.
func (v *CartValidator) ValidatePatch(body []byte) (*PatchCartItemInput, error) {
	raw, err := validation.DecodeRaw(body)
	if err != nil {
		return nil, invalidBody("invalid cart patch")
	}

	violations := validation.CheckFields(raw, cartPatchFields)
	violations = append(violations, requireAnyField(raw, cartPatchFields)...)
	violations = append(violations, rejectNulls(raw, cartPatchFields)...)

	var input PatchCartItemInput
	if decodeViolations := validation.UnmarshalInto(body, &input); decodeViolations.HasErrors() {
		violations = append(violations, decodeViolations...)
	} else {
		violations = append(violations, validation.ValidateStruct(input)...)
	}

	if violations.HasErrors() {
		return nil, apperrors.NewValidationError("invalid cart patch", violations)
	}
	return &input, nil
}

// ValidateID checks a path identifier (userId or productId segment).
func ValidateID(field, value string) error {
	type idOnly struct {
		Value string `json:"id" validate:"required,min=1,max=50,idchars"`
	}
	violations := validation.ValidateStruct(idOnly{Value: value})
	if !violations.HasErrors() {
		return nil
	}
	var named apperrors.Violations
	for _, violation := range violations {
		named.Add(field, violation.Rule, violation.Message)
	}
	return apperrors.NewValidationError("invalid "+field, named)
}
