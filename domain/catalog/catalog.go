// Package catalog carries the static candy catalog used to seed the shop.
package catalog

// SeedProduct is one entry of the fixed catalog.
type SeedProduct struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	AmountInStock int     `json:"amountInStock"`
}

// Products returns the built-in catalog. The slice is rebuilt per call so
// callers can't mutate the seed data.
func Products() []SeedProduct {
	return []SeedProduct{
		{ProductID: "choc1", Name: "Dark Chocolate Bar", Price: 25, Image: "https://images.candyshop.dev/choc1.png", AmountInStock: 100},
		{ProductID: "choc2", Name: "Milk Chocolate Bar", Price: 22, Image: "https://images.candyshop.dev/choc2.png", AmountInStock: 120},
		{ProductID: "lic1", Name: "Salty Licorice", Price: 18, Image: "https://images.candyshop.dev/lic1.png", AmountInStock: 80},
		{ProductID: "lic2", Name: "Sweet Licorice Rolls", Price: 16, Image: "https://images.candyshop.dev/lic2.png", AmountInStock: 64},
		{ProductID: "gum1", Name: "Raspberry Gummies", Price: 14, Image: "https://images.candyshop.dev/gum1.png", AmountInStock: 200},
		{ProductID: "gum2", Name: "Sour Cola Bottles", Price: 15, Image: "https://images.candyshop.dev/gum2.png", AmountInStock: 150},
		{ProductID: "car1", Name: "Soft Caramel Cubes", Price: 20, Image: "https://images.candyshop.dev/car1.png", AmountInStock: 90},
		{ProductID: "mar1", Name: "Marshmallow Clouds", Price: 12, Image: "https://images.candyshop.dev/mar1.png", AmountInStock: 110},
		{ProductID: "tof1", Name: "Butter Toffee", Price: 19, Image: "https://images.candyshop.dev/tof1.png", AmountInStock: 70},
		{ProductID: "pez1", Name: "Fruit Drops Mix", Price: 10, Image: "https://images.candyshop.dev/pez1.png", AmountInStock: 140},
	}
}
