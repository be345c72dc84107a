package entities

// Product is a catalog item. Partial updates touch only the supplied
// fields; everything else is preserved by the store.
type Product struct {
	PK            string  `json:"-" dynamodbav:"pk"`
	SK            string  `json:"-" dynamodbav:"sk"`
	ProductID     string  `json:"productId" dynamodbav:"productId"`
	Name          string  `json:"name" dynamodbav:"name"`
	Price         float64 `json:"price" dynamodbav:"price"`
	Image         string  `json:"image" dynamodbav:"image"`
	AmountInStock int     `json:"amountInStock" dynamodbav:"amountInStock"`
}
