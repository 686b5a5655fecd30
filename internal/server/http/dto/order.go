package dto

import (
	"github.com/polkiloo/presto/internal/domain/model"
	"github.com/polkiloo/presto/internal/usecase"
)

const categoryAll = "all"

// OrdersQuery filters the order list.
type OrdersQuery struct {
	View     string `form:"view" binding:"omitempty,oneof=all ongoing past"`
	Category string `form:"category" binding:"omitempty,oneof=all food grocery pharmacy"`
}

// Filter converts the query into a usecase filter.
func (q OrdersQuery) Filter() usecase.OrderFilter {
	filter := usecase.OrderFilter{View: usecase.OrderView(q.View)}
	if q.Category != categoryAll {
		filter.Category = model.Category(q.Category)
	}
	return filter
}

// OrdersResponse wraps a list of orders.
type OrdersResponse struct {
	Orders []model.Order `json:"orders"`
}

// NewOrdersResponse never renders a null list.
func NewOrdersResponse(orders []model.Order) OrdersResponse {
	if orders == nil {
		orders = []model.Order{}
	}
	return OrdersResponse{Orders: orders}
}
