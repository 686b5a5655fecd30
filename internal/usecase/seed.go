package usecase

import (
	"time"

	"github.com/polkiloo/presto/internal/domain/model"
)

// DefaultUser is the demo profile every session starts with.
func DefaultUser() model.User {
	return model.User{
		Name:       "Rahul Sharma",
		Avatar:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Rahul&backgroundColor=FFF8E1",
		Phone:      "+91 98765 43210",
		Email:      "rahul.sharma@email.com",
		IsVerified: true,
	}
}

// InitialState returns the seeded root state for a new session.
func InitialState(now time.Time, balance int) State {
	return State{
		Balance: balance,
		Orders: []model.Order{
			{
				ID:        "on_1",
				Name:      "McDonald's Burger Combo",
				Partner:   "Rajesh Kumar",
				Status:    model.OrderStatusAssigned,
				Time:      "12 mins",
				Timestamp: now.UnixMilli(),
				Price:     "₹350",
				Icon:      "🛵",
				Category:  model.CategoryFood,
				Progress:  75,
				Color:     "amber",
			},
			{
				ID:        "past_1",
				Name:      "Domino's Pepperoni Pizza",
				Partner:   "Amit Shah",
				Status:    model.OrderStatusDelivered,
				Time:      "Yesterday",
				Timestamp: now.Add(-24 * time.Hour).UnixMilli(),
				Price:     "₹540",
				Icon:      "🍕",
				Category:  model.CategoryFood,
				Progress:  100,
				Color:     "rose",
			},
		},
		Transactions: []model.Transaction{
			{
				ID:         "tx_1",
				Type:       model.TransactionRefund,
				Title:      "Order Refund",
				Subtitle:   "McDonald's order cancelled",
				Amount:     "+₹350",
				Date:       "Today, 3:20 PM",
				IsPositive: true,
				Status:     model.TransactionSuccessful,
				Icon:       "🍔",
				Color:      "emerald",
			},
		},
	}
}
