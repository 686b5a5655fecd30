package dto

import (
	"github.com/polkiloo/presto/internal/app"
	"github.com/polkiloo/presto/internal/domain/model"
)

// SessionResponse is the client view of a session.
type SessionResponse struct {
	ID            string         `json:"id"`
	User          model.User     `json:"user"`
	View          string         `json:"view"`
	Request       string         `json:"request,omitempty"`
	Partner       *model.Partner `json:"partner,omitempty"`
	Tab           string         `json:"tab"`
	TabOffset     int            `json:"tabOffset"`
	ChromeVisible bool           `json:"chromeVisible"`
	Balance       int            `json:"balance"`
	LiveOrder     *model.Order   `json:"liveOrder,omitempty"`
}

// NewSessionResponse converts an app session view.
func NewSessionResponse(v app.SessionView) SessionResponse {
	return SessionResponse{
		ID:            v.ID,
		User:          v.User,
		View:          string(v.View),
		Request:       v.Request,
		Partner:       v.Partner,
		Tab:           string(v.Tab),
		TabOffset:     v.TabOffset,
		ChromeVisible: v.ChromeVisible,
		Balance:       v.Balance,
		LiveOrder:     v.LiveOrder,
	}
}

// TabRequest selects the active tab.
type TabRequest struct {
	Tab string `json:"tab"`
}

// SubmitRequest carries the free-text delivery request.
type SubmitRequest struct {
	Text string `json:"text"`
}

// BiddingResponse is returned once a request enters bidding.
type BiddingResponse struct {
	Session  SessionResponse `json:"session"`
	Partners []model.Partner `json:"partners"`
}

// BackResponse reports whether the back action was consumed.
type BackResponse struct {
	Session  SessionResponse `json:"session"`
	Consumed bool            `json:"consumed"`
}
