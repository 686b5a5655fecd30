package model

// Partner is a delivery-partner candidate offered during bidding.
type Partner struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Avatar       string  `json:"avatar"`
	Rating       float64 `json:"rating"`
	Reviews      int     `json:"reviews"`
	DeliveryFee  int     `json:"deliveryFee"`
	ETA          string  `json:"eta"`
	Distance     string  `json:"distance"`
	IsBestChoice bool    `json:"isBestChoice,omitempty"`
}
