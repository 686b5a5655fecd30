package stub

import (
	"fmt"
	"strings"
)

const (
	defaultReply = "Got it 👍 I'm checking that for you."
	missingReply = "Message is required."
	summaryReply = "Here is your order summary. Total will be ₹250."
)

// Reply picks the canned partner answer for message. The first matching keyword wins.
func Reply(message, partner string) string {
	text := strings.ToLower(message)
	switch {
	case strings.Contains(text, "price"):
		return "Let me quickly check the price for you."
	case strings.Contains(text, "add"):
		return "Sure! Tell me which item you'd like to add."
	case strings.Contains(text, "confirm"):
		return summaryReply
	case strings.Contains(text, "hello"), strings.Contains(text, "hi"):
		if partner == "" {
			partner = "your rider"
		}
		return fmt.Sprintf("Hi! I'm %s. What can I get for you today?", partner)
	default:
		return defaultReply
	}
}
