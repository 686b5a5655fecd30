package usecase

import (
	"math"

	"github.com/polkiloo/presto/internal/domain/model"
)

const (
	progressComplete  = 100
	assignedThreshold = 40
)

// AdvanceOrder applies one simulator tick to order.
// Terminal orders are returned unchanged.
func AdvanceOrder(order model.Order, step float64) model.Order {
	if order.Status.IsTerminal() {
		return order
	}
	if step < 0 || math.IsNaN(step) {
		step = 0
	}

	order.Progress = math.Min(order.Progress+step, progressComplete)
	switch {
	case order.Progress >= progressComplete:
		order.Status = model.OrderStatusCompleted
	case order.Progress > assignedThreshold && order.Status == model.OrderStatusPending:
		order.Status = model.OrderStatusAssigned
	}
	return order
}

// AdvanceOrders applies one tick to every order, drawing a step per live order.
func AdvanceOrders(orders []model.Order, step func() float64) []model.Order {
	out := make([]model.Order, len(orders))
	for i, o := range orders {
		if o.Status.IsTerminal() {
			out[i] = o
			continue
		}
		out[i] = AdvanceOrder(o, step())
	}
	return out
}
