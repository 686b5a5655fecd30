package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
	"github.com/polkiloo/presto/internal/domain/model"
	"github.com/polkiloo/presto/internal/scheduler"
)

// Responder produces a partner reply for a user chat message.
type Responder interface {
	Reply(ctx context.Context, message, partner string) (string, error)
}

// ChatPhase describes how far the scripted chat opening has progressed.
type ChatPhase string

const (
	ChatAwaitingGreeting ChatPhase = "awaiting-greeting"
	ChatGreeted          ChatPhase = "greeted"
	ChatSettled          ChatPhase = "settled"
)

const (
	summaryStore         = "Fresh Mart Essentials"
	summaryServiceCharge = 15
	fallbackDeliveryFee  = 45
)

var summaryItems = []model.OrderItem{
	{Name: "Bread (Whole Wheat)", Price: 45},
	{Name: "Milk (1L)", Price: 65},
	{Name: "Eggs (6pcs)", Price: 40},
}

// ChatConfig holds the scripted opening delays.
type ChatConfig struct {
	GreetingDelay     time.Duration
	TypingDelay       time.Duration
	SystemUpdateDelay time.Duration
}

// ChatView is a consistent read of a chat session.
type ChatView struct {
	Partner  model.Partner
	Messages []model.Message
	Typing   bool
	Pending  bool
	Phase    ChatPhase
	Total    int
}

// ChatSession is one conversation with a selected partner.
type ChatSession struct {
	partner   model.Partner
	userName  string
	cfg       ChatConfig
	sched     *scheduler.Scheduler
	responder Responder
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	messages []model.Message
	typing   bool
	pending  bool
	phase    ChatPhase
	total    int
	summary  *model.OrderSummary
	tasks    []scheduler.Task
	ended    bool
}

// NewChatSession opens a chat seeded with the request text and starts the scripted opening.
func NewChatSession(request string, partner model.Partner, user model.User, cfg ChatConfig, sched *scheduler.Scheduler, responder Responder, logger *slog.Logger) *ChatSession {
	ctx, cancel := context.WithCancel(context.Background())
	c := &ChatSession{
		partner:   partner,
		userName:  user.FirstName(),
		cfg:       cfg,
		sched:     sched,
		responder: responder,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		phase:     ChatAwaitingGreeting,
	}
	c.messages = append(c.messages, model.Message{
		ID:        "init-user",
		Sender:    model.SenderUser,
		Timestamp: c.timeLabel(),
		Body:      model.TextBody{Text: request},
	})

	c.mu.Lock()
	c.schedule(cfg.GreetingDelay, c.startTyping)
	c.mu.Unlock()
	return c
}

func (c *ChatSession) now() int64 {
	return c.sched.Now().UnixMilli()
}

// timeLabel is the wall-clock label shown next to a message.
func (c *ChatSession) timeLabel() string {
	return c.sched.Now().Format("15:04")
}

// schedule must be called with mu held.
func (c *ChatSession) schedule(d time.Duration, fn func()) {
	c.tasks = append(c.tasks, c.sched.After(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.ended {
			return
		}
		fn()
	}))
}

func (c *ChatSession) startTyping() {
	c.typing = true
	c.schedule(c.cfg.TypingDelay, c.greet)
}

func (c *ChatSession) greet() {
	c.typing = c.pending
	c.messages = append(c.messages, model.Message{
		ID:        "p-init",
		Sender:    model.SenderPartner,
		Timestamp: c.timeLabel(),
		Body: model.TextBody{Text: fmt.Sprintf(
			"Hi %s! I'm %s. I'm heading towards the store now. Any special instructions?",
			c.userName, c.partner.Name)},
	})
	c.phase = ChatGreeted

	remaining := c.cfg.SystemUpdateDelay - c.cfg.GreetingDelay - c.cfg.TypingDelay
	if remaining < 0 {
		remaining = 0
	}
	c.schedule(remaining, c.postSystemUpdate)
}

func (c *ChatSession) postSystemUpdate() {
	c.messages = append(c.messages, model.Message{
		ID:        "sys-1",
		Sender:    model.SenderSystem,
		Timestamp: c.timeLabel(),
		Body: model.SystemUpdateBody{
			Text:    `Item "Avocado (2pcs)" is out of stock. Replace with "Avocado (1pc XL)"?`,
			Actions: []string{"Yes", "No"},
		},
	})
	c.phase = ChatSettled
}

// Send appends a user message and the partner reply. Responder failures become
// a system message in the transcript and are not returned.
func (c *ChatSession) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domainErrors.ErrEmptyInput
	}

	c.mu.Lock()
	if c.ended {
		c.mu.Unlock()
		return domainErrors.ErrSessionClosed
	}
	if c.pending {
		c.mu.Unlock()
		return domainErrors.ErrReplyPending
	}
	c.messages = append(c.messages, c.message(model.SenderUser, model.TextBody{Text: text}))
	c.pending = true
	c.typing = true
	c.mu.Unlock()

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.ctx, cancel)
	defer stop()

	reply, err := c.responder.Reply(callCtx, text, c.partner.Name)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	c.typing = false
	if c.ended {
		return domainErrors.ErrSessionClosed
	}

	if err != nil {
		c.logger.Warn("chat responder failed",
			slog.String("partner", c.partner.Name),
			slog.String("error", err.Error()))
		c.messages = append(c.messages, c.message(model.SenderSystem, model.TextBody{
			Text: fmt.Sprintf("Couldn't reach %s. Please try again.", c.partner.Name),
		}))
		return nil
	}

	c.messages = append(c.messages, c.message(model.SenderPartner, model.TextBody{Text: reply}))
	if mentionsSummary(reply) {
		summary := c.buildSummary()
		c.summary = &summary
		c.total = summary.Total
		c.messages = append(c.messages, c.message(model.SenderSystem, model.OrderSummaryBody{Summary: summary}))
	}
	return nil
}

func (c *ChatSession) message(sender model.Sender, body model.MessageBody) model.Message {
	return model.Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Timestamp: c.timeLabel(),
		Body:      body,
	}
}

func mentionsSummary(reply string) bool {
	lower := strings.ToLower(reply)
	return strings.Contains(lower, "summary") || strings.Contains(lower, "total")
}

func (c *ChatSession) buildSummary() model.OrderSummary {
	fee := c.partner.DeliveryFee
	if fee == 0 {
		fee = fallbackDeliveryFee
	}
	items := make([]model.OrderItem, len(summaryItems))
	copy(items, summaryItems)
	total := fee + summaryServiceCharge
	for _, item := range items {
		total += item.Price
	}
	return model.OrderSummary{
		Store:         summaryStore,
		Items:         items,
		DeliveryFee:   fee,
		ServiceCharge: summaryServiceCharge,
		Total:         total,
	}
}

// Order builds the order described by the chat so far.
func (c *ChatSession) Order() (model.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ended {
		return model.Order{}, domainErrors.ErrSessionClosed
	}

	var items []model.OrderItem
	if c.summary != nil {
		items = make([]model.OrderItem, len(c.summary.Items))
		copy(items, c.summary.Items)
	}
	return model.Order{
		ID:        "ord_" + uuid.NewString(),
		Name:      "Hyperlocal Request",
		Partner:   c.partner.Name,
		Status:    model.OrderStatusPending,
		Time:      "20 mins",
		Timestamp: c.now(),
		Price:     fmt.Sprintf("₹%d", c.total),
		Icon:      "🛵",
		Category:  model.CategoryGrocery,
		Progress:  5,
		Color:     "emerald",
		Items:     items,
	}, nil
}

// End cancels pending seeding tasks and any in-flight reply. Idempotent.
func (c *ChatSession) End() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ended {
		return
	}
	c.ended = true
	c.typing = false
	for _, t := range c.tasks {
		t.Cancel()
	}
	c.tasks = nil
	c.cancel()
}

// Ended reports whether the chat has been closed.
func (c *ChatSession) Ended() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ended
}

// Partner returns the chat partner.
func (c *ChatSession) Partner() model.Partner {
	return c.partner
}

// View returns a snapshot of the transcript and indicators.
func (c *ChatSession) View() ChatView {
	c.mu.Lock()
	defer c.mu.Unlock()
	msgs := make([]model.Message, len(c.messages))
	copy(msgs, c.messages)
	return ChatView{
		Partner:  c.partner,
		Messages: msgs,
		Typing:   c.typing,
		Pending:  c.pending,
		Phase:    c.phase,
		Total:    c.total,
	}
}
