package models

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusConfirmed  OrderStatus = "Confirmed"
	OrderStatusInTransit  OrderStatus = "In Transit"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// orderTransitions is the closed transition graph. Delivered and
// Cancelled are terminal; Cancelled is reachable only before shipping.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusProcessing: {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusInTransit, OrderStatusCancelled},
	OrderStatusInTransit:  {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// Valid reports whether s is one of the declared order statuses.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo reports whether the graph allows moving from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a line of an order, frozen at checkout time.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

// Order is an immutable snapshot of a cart taken at checkout, plus
// fulfillment metadata. Only Status and the tracking fields change after
// creation.
type Order struct {
	ID                string      `json:"id"`
	Date              string      `json:"date"` // calendar date, YYYY-MM-DD
	Items             []OrderItem `json:"items"`
	Subtotal          float64     `json:"subtotal"`
	Tax               float64     `json:"tax"`
	Total             float64     `json:"total"`
	Status            OrderStatus `json:"status"`
	TrackingNumber    string      `json:"tracking_number,omitempty"`
	EstimatedDelivery string      `json:"estimated_delivery,omitempty"`
}
