// Package schema owns the single-table key design. Three entity families
// share one DynamoDB table and never collide because each owns a disjoint
// partition key value; all pk/sk strings are built here and nowhere else.
package schema

// Partition key values, one per entity family.
const (
	UserPartition    = "USER"
	ProductPartition = "PRODUCT"
	CartPartition    = "CART"
)

const (
	userSortPrefix    = "USER#"
	productSortPrefix = "PRODUCT#"
)

// Key addresses a single record in the table.
type Key struct {
	PK string
	SK string
}

// Prefix addresses a contiguous sort-key range within one partition,
// used for begins_with queries.
type Prefix struct {
	PK       string
	SKPrefix string
}

// UserKey returns the key for a user record.
func UserKey(userID string) Key {
	return Key{PK: UserPartition, SK: userSortPrefix + userID}
}

// ProductKey returns the key for a product record.
func ProductKey(productID string) Key {
	return Key{PK: ProductPartition, SK: productSortPrefix + productID}
}

// CartKey returns the key for one cart line. A user holds at most one line
// per product, so (userID, productID) is the full identity.
func CartKey(userID, productID string) Key {
	return Key{PK: CartPartition, SK: userSortPrefix + userID + "#" + productSortPrefix + productID}
}

// AllUsers returns the range covering every user record.
func AllUsers() Prefix {
	return Prefix{PK: UserPartition, SKPrefix: userSortPrefix}
}

// AllProducts returns the range covering every product record.
func AllProducts() Prefix {
	return Prefix{PK: ProductPartition, SKPrefix: productSortPrefix}
}

// CartPrefixForUser returns the range covering all cart lines of one user.
func CartPrefixForUser(userID string) Prefix {
	return Prefix{PK: CartPartition, SKPrefix: userSortPrefix + userID + "#" + productSortPrefix}
}
