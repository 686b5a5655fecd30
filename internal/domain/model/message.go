package model

import (
	"encoding/json"
	"fmt"
)

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser    Sender = "user"
	SenderSystem  Sender = "system"
	SenderPartner Sender = "partner"
)

// MessageKind is the wire tag of a message body.
type MessageKind string

const (
	KindText         MessageKind = "text"
	KindSystemUpdate MessageKind = "system-update"
	KindOrderSummary MessageKind = "order-summary"
)

// MessageBody is the sealed set of message variants.
type MessageBody interface {
	Kind() MessageKind
	isMessageBody()
}

// TextBody is a plain chat line.
type TextBody struct {
	Text string
}

// SystemUpdateBody is a system prompt the user can answer with one of Actions.
type SystemUpdateBody struct {
	Text    string
	Actions []string
}

// OrderSummaryBody carries a structured order summary.
type OrderSummaryBody struct {
	Summary OrderSummary
}

func (TextBody) Kind() MessageKind         { return KindText }
func (SystemUpdateBody) Kind() MessageKind { return KindSystemUpdate }
func (OrderSummaryBody) Kind() MessageKind { return KindOrderSummary }

func (TextBody) isMessageBody()         {}
func (SystemUpdateBody) isMessageBody() {}
func (OrderSummaryBody) isMessageBody() {}

// OrderSummary is the structured payload of an order-summary message.
type OrderSummary struct {
	Store         string      `json:"store"`
	Items         []OrderItem `json:"items"`
	DeliveryFee   int         `json:"deliveryFee"`
	ServiceCharge int         `json:"serviceCharge"`
	Total         int         `json:"total"`
}

// Message is one chat turn, scoped to a single chat session.
type Message struct {
	ID        string
	Sender    Sender
	Timestamp string
	Body      MessageBody
}

// Text returns the textual content of text and system-update messages.
func (m Message) Text() string {
	switch b := m.Body.(type) {
	case TextBody:
		return b.Text
	case SystemUpdateBody:
		return b.Text
	default:
		return ""
	}
}

type messageJSON struct {
	ID          string        `json:"id"`
	Sender      Sender        `json:"sender"`
	Text        string        `json:"text,omitempty"`
	Timestamp   string        `json:"timestamp"`
	Type        MessageKind   `json:"type"`
	Actions     []string      `json:"actions,omitempty"`
	SummaryData *OrderSummary `json:"summaryData,omitempty"`
}

// MarshalJSON flattens the body into the tagged wire shape.
func (m Message) MarshalJSON() ([]byte, error) {
	out := messageJSON{ID: m.ID, Sender: m.Sender, Timestamp: m.Timestamp}
	switch b := m.Body.(type) {
	case TextBody:
		out.Type = KindText
		out.Text = b.Text
	case SystemUpdateBody:
		out.Type = KindSystemUpdate
		out.Text = b.Text
		out.Actions = b.Actions
	case OrderSummaryBody:
		out.Type = KindOrderSummary
		summary := b.Summary
		out.SummaryData = &summary
	default:
		return nil, fmt.Errorf("message %s: unknown body %T", m.ID, m.Body)
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores the body variant from the type tag.
func (m *Message) UnmarshalJSON(data []byte) error {
	var in messageJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	m.ID, m.Sender, m.Timestamp = in.ID, in.Sender, in.Timestamp
	switch in.Type {
	case KindText, "":
		m.Body = TextBody{Text: in.Text}
	case KindSystemUpdate:
		m.Body = SystemUpdateBody{Text: in.Text, Actions: in.Actions}
	case KindOrderSummary:
		if in.SummaryData == nil {
			return fmt.Errorf("message %s: order-summary without summaryData", in.ID)
		}
		m.Body = OrderSummaryBody{Summary: *in.SummaryData}
	default:
		return fmt.Errorf("message %s: unknown type %q", in.ID, in.Type)
	}
	return nil
}
