package models

// CartItem is a selected (product, tier, quantity) row in a cart. The
// tier is copied in so the row keeps its price even if it was added via
// an explicit tier override.
type CartItem struct {
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Tier        PriceTier `json:"tier"`
	Quantity    int       `json:"quantity"`
}

// Cart is the session-scoped, pre-checkout collection of line items for
// one customer. Insertion order is meaningful for display only; repeated
// adds of the same product stay separate rows.
type Cart struct {
	CustomerID string     `json:"customer_id"`
	Items      []CartItem `json:"items"`
}
