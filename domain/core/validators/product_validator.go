package validators

import (
	apperrors "candyshop-backend/pkg/errors"
	"candyshop-backend/pkg/validation"
)

// CreateProductInput is the accepted payload for adding a catalog item.
// Numeric fields are pointers so that legitimate zero values (a product
// out of stock) survive the required check.
type CreateProductInput struct {
	ProductID     string   `json:"productId" validate:"required,min=1,max=50,idchars"`
	Name          string   `json:"name" validate:"required,min=2,max=50,namechars"`
	Price         *float64 `json:"price" validate:"required,min=1,max=99999"`
	Image         string   `json:"image" validate:"required,imageurl"`
	AmountInStock *int     `json:"amountInStock" validate:"required,min=0,max=9999"`
}

// PatchProductInput is the accepted payload for a partial product update.
type PatchProductInput struct {
	Name          *string  `json:"name" validate:"omitempty,min=2,max=50,namechars"`
	Price         *float64 `json:"price" validate:"omitempty,min=1,max=99999"`
	Image         *string  `json:"image" validate:"omitempty,imageurl"`
	AmountInStock *int     `json:"amountInStock" validate:"omitempty,min=0,max=9999"`
}

// Fields returns the updates keyed by stored attribute name. Only supplied
// fields appear; absent ones stay untouched in the store.
func (p *PatchProductInput) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.Image != nil {
		fields["image"] = *p.Image
	}
	if p.AmountInStock != nil {
		fields["amountInStock"] = *p.AmountInStock
	}
	return fields
}

var productCreateFields = validation.FieldSet{
	Allowed: map[string]bool{
		"productId": true, "name": true, "price": true, "image": true, "amountInStock": true,
	},
	Foreign: foreignToProduct,
}

var productPatchFields = validation.FieldSet{
	Allowed: map[string]bool{
		"name": true, "price": true, "image": true, "amountInStock": true,
	},
	Foreign:   foreignToProduct,
	Immutable: map[string]bool{"productId": true},
}

var foreignToProduct = map[string]string{
	"userId": "user",
	"amount": "cart",
}

// ProductValidator checks product payloads at the request boundary.
type ProductValidator struct{}

// NewProductValidator creates a new product validator
func NewProductValidator() *ProductValidator {
	return &ProductValidator{}
}

// ValidateCreate checks a product creation payload. All fields are required.
func (v *ProductValidator) ValidateCreate(body []byte) (*CreateProductInput, error) {
	raw, err := validation.DecodeRaw(body)
	if err != nil {
		return nil, invalidBody("invalid product payload")
	}

	violations := validation.CheckFields(raw, productCreateFields)

	var input CreateProductInput
	if decodeViolations := validation.UnmarshalInto(body, &input); decodeViolations.HasErrors() {
		violations = append(violations, decodeViolations...)
	} else {
		violations = append(violations, validation.ValidateStruct(input)...)
	}

	if violations.HasErrors() {
		return nil, apperrors.NewValidationError("invalid product payload", violations)
	}
	return &input, nil
}

// ValidatePatch checks a partial update payload.
func (v *ProductValidator) ValidatePatch(body []byte) (*PatchProductInput, error) {
	raw, err := validation.DecodeRaw(body)
	if err != nil {
		return nil, invalidBody("invalid product patch")
	}

	violations := validation.CheckFields(raw, productPatchFields)
	violations = append(violations, requireAnyField(raw, productPatchFields)...)
	violations = append(violations, rejectNulls(raw, productPatchFields)...)

	var input PatchProductInput
	if decodeViolations := validation.UnmarshalInto(body, &input); decodeViolations.HasErrors() {
		violations = append(violations, decodeViolations...)
	} else {
		violations = append(violations, validation.ValidateStruct(input)...)
	}

	if violations.HasErrors() {
		return nil, apperrors.NewValidationError("invalid product patch", violations)
	}
	return &input, nil
}
