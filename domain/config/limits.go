// Package config holds the business constraints shared by the validators
// and request contracts.
package config

// Field bounds for the three entity families. The id charset deliberately
// admits '#' because identifiers may appear inside composite sort keys.
const (
	IDMinLength   = 1
	IDMaxLength   = 50
	NameMinLength = 2
	NameMaxLength = 50

	PriceMin = 1
	PriceMax = 99999

	StockMin = 0
	StockMax = 9999

	CartAmountMin = 0
	CartAmountMax = 9999
)

// Character classes enforced on string fields.
const (
	IDPattern       = `^[A-Za-z0-9#]+$`
	NamePattern     = `^[A-Za-z0-9\s]+$`
	ImageURLPattern = `^https?://[^\s]+$`
)
