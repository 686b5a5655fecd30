package model

// OrderStatus describes delivery lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAssigned  OrderStatus = "assigned"
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusDelivered is only carried by historical seed orders.
	OrderStatusDelivered OrderStatus = "delivered"
)

// IsTerminal reports whether no further progress or status change may happen.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusDelivered
}

// Category groups orders for filtering.
type Category string

const (
	CategoryFood     Category = "food"
	CategoryGrocery  Category = "grocery"
	CategoryPharmacy Category = "pharmacy"
)

// OrderItem is a single priced line of an order or summary.
type OrderItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Order describes a delivery request in flight or completed.
type Order struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Partner   string      `json:"partner"`
	Status    OrderStatus `json:"status"`
	Time      string      `json:"time"`
	Timestamp int64       `json:"timestamp"`
	Price     string      `json:"price"`
	Icon      string      `json:"icon"`
	Category  Category    `json:"category"`
	Progress  float64     `json:"progress"`
	Color     string      `json:"color"`
	Items     []OrderItem `json:"items,omitempty"`
}
