package stub

// Order is a delivery request recorded by the stub backend.
type Order struct {
	ID        string `json:"id"`
	Request   string `json:"request"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// Message is a chat line attached to an order.
type Message struct {
	ID        string `json:"id"`
	OrderID   string `json:"orderId"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Bid is a canned partner offer for an order.
type Bid struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Fee    int     `json:"fee"`
	Rating float64 `json:"rating"`
	ETA    string  `json:"eta"`
}

type createOrderRequest struct {
	Request string `json:"request" validate:"required"`
}

type createMessageRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Sender  string `json:"sender" validate:"required,oneof=user partner system"`
	Text    string `json:"text" validate:"required"`
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
	Partner string `json:"partner"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

const orderStatusSearching = "searching"

var mockBids = []Bid{
	{ID: "p1", Name: "Amit Kumar", Fee: 45, Rating: 4.9, ETA: "12 mins"},
	{ID: "p2", Name: "Suresh Raina", Fee: 30, Rating: 4.7, ETA: "18 mins"},
	{ID: "p3", Name: "Rohan Mehra", Fee: 25, Rating: 4.5, ETA: "22 mins"},
}
