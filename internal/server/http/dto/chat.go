package dto

import (
	"github.com/polkiloo/presto/internal/domain/model"
	"github.com/polkiloo/presto/internal/usecase"
)

// ChatResponse is the client view of the active chat.
type ChatResponse struct {
	Loading  bool            `json:"loading"`
	Partner  *model.Partner  `json:"partner,omitempty"`
	Messages []model.Message `json:"messages"`
	Typing   bool            `json:"typing"`
	Pending  bool            `json:"pending"`
	Phase    string          `json:"phase,omitempty"`
	Total    int             `json:"total"`
}

// NewChatResponse converts a chat view.
func NewChatResponse(v usecase.ChatView) ChatResponse {
	partner := v.Partner
	messages := v.Messages
	if messages == nil {
		messages = []model.Message{}
	}
	return ChatResponse{
		Partner:  &partner,
		Messages: messages,
		Typing:   v.Typing,
		Pending:  v.Pending,
		Phase:    string(v.Phase),
		Total:    v.Total,
	}
}

// LoadingChat is shown while no partner is selected.
func LoadingChat() ChatResponse {
	return ChatResponse{Loading: true, Messages: []model.Message{}}
}

// MessageRequest is a user chat message.
type MessageRequest struct {
	Text string `json:"text"`
}
