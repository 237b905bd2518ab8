package cart

// Item is one line of a user's cart. The unit price is a snapshot taken when
// the product was first added.
type Item struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}
