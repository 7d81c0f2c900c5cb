package entity

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderSnapshot is the order document as delivered by the creation event.
// Orders are immutable once created as far as fulfillment is concerned.
type OrderSnapshot struct {
	UserID string      `json:"userId"`
	Items  []OrderItem `json:"items"`
	Total  float64     `json:"total"`
}
