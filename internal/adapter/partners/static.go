package partners

import (
	"context"

	"github.com/polkiloo/presto/internal/domain/model"
)

var roster = []model.Partner{
	{ID: "p1", Name: "Amit Kumar", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Amit", Rating: 4.9, Reviews: 128, DeliveryFee: 45, ETA: "12 mins", Distance: "1.2 km", IsBestChoice: true},
	{ID: "p2", Name: "Suresh Raina", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Suresh", Rating: 4.7, Reviews: 85, DeliveryFee: 30, ETA: "18 mins", Distance: "2.5 km"},
	{ID: "p3", Name: "Rohan Mehra", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Rohan", Rating: 4.5, Reviews: 42, DeliveryFee: 25, ETA: "22 mins", Distance: "3.1 km"},
}

// StaticSource returns a fixed roster of nearby partners.
type StaticSource struct{}

// NewStaticSource constructs StaticSource.
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// Candidates returns a fresh copy of the roster on every call.
func (StaticSource) Candidates(ctx context.Context) ([]model.Partner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Partner, len(roster))
	copy(out, roster)
	return out, nil
}
