package entity

// StockDecrement is one relative stock adjustment inside a fulfillment batch.
type StockDecrement struct {
	ProductID string
	Quantity  int
}
