package dto

import (
	"testing"

	"github.com/polkiloo/presto/internal/domain/model"
	"github.com/polkiloo/presto/internal/usecase"
)

func TestOrdersQueryFilter(t *testing.T) {
	cases := []struct {
		query OrdersQuery
		want  usecase.OrderFilter
	}{
		{OrdersQuery{}, usecase.OrderFilter{}},
		{OrdersQuery{View: "ongoing", Category: "all"}, usecase.OrderFilter{View: usecase.OrderViewOngoing}},
		{OrdersQuery{View: "past", Category: "pharmacy"}, usecase.OrderFilter{View: usecase.OrderViewPast, Category: model.CategoryPharmacy}},
	}
	for _, tc := range cases {
		if got := tc.query.Filter(); got != tc.want {
			t.Fatalf("%+v: expected %+v, got %+v", tc.query, tc.want, got)
		}
	}
}

func TestResponsesNeverRenderNullLists(t *testing.T) {
	if NewOrdersResponse(nil).Orders == nil {
		t.Fatal("expected empty orders slice")
	}
	if NewChatResponse(usecase.ChatView{}).Messages == nil {
		t.Fatal("expected empty message slice")
	}
	if !LoadingChat().Loading {
		t.Fatal("expected loading placeholder")
	}
}
