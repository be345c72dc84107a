package entities

// CartItem is one line in a user's cart, identified by the composite
// (UserID, ProductID). A user holds at most one line per product.
type CartItem struct {
	PK        string `json:"-" dynamodbav:"pk"`
	SK        string `json:"-" dynamodbav:"sk"`
	UserID    string `json:"userId" dynamodbav:"userId"`
	ProductID string `json:"productId" dynamodbav:"productId"`
	Amount    int    `json:"amount" dynamodbav:"amount"`
}
