package usecase

import (
	"github.com/polkiloo/presto/internal/domain/model"
)

// OrderView selects ongoing or past orders.
type OrderView string

const (
	OrderViewAll     OrderView = "all"
	OrderViewOngoing OrderView = "ongoing"
	OrderViewPast    OrderView = "past"
)

// OrderFilter narrows an order list. Empty fields match everything.
type OrderFilter struct {
	View     OrderView
	Category model.Category
}

// FilterOrders returns orders matching filter, preserving order.
func FilterOrders(orders []model.Order, filter OrderFilter) []model.Order {
	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		ongoing := !o.Status.IsTerminal()
		switch filter.View {
		case OrderViewOngoing:
			if !ongoing {
				continue
			}
		case OrderViewPast:
			if ongoing {
				continue
			}
		}
		if filter.Category != "" && o.Category != filter.Category {
			continue
		}
		result = append(result, o)
	}
	return result
}

// LiveOrder returns the most recent non-terminal order, if any.
func LiveOrder(orders []model.Order) (model.Order, bool) {
	for _, o := range orders {
		if !o.Status.IsTerminal() {
			return o, true
		}
	}
	return model.Order{}, false
}
