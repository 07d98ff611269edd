package models

// StockLevel is a derived stock-health label.
type StockLevel string

const (
	StockGood     StockLevel = "Good"
	StockModerate StockLevel = "Moderate"
	StockLow      StockLevel = "Low"
	StockCritical StockLevel = "Critical"
)

// InventoryRecord is the warehouse view of on-hand stock for a product,
// keyed by product name. It is written by an external fulfillment
// collaborator and only read here.
type InventoryRecord struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	MinStock    int    `json:"min_stock"`
	Category    string `json:"category"`
}
