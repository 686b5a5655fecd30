package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
	"github.com/polkiloo/presto/internal/server/http/dto"
	"github.com/polkiloo/presto/internal/server/http/middleware"
)

// ChatHandler manages the partner chat endpoints.
type ChatHandler struct {
	facade ChatFacade
}

// NewChatHandler constructs ChatHandler.
func NewChatHandler(facade ChatFacade) *ChatHandler {
	return &ChatHandler{facade: facade}
}

// Get handles GET /api/sessions/:id/chat.
func (h *ChatHandler) Get(c *gin.Context) {
	view, err := h.facade.Chat(middleware.CurrentSessionID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrPartnerUnspecified) {
			c.JSON(http.StatusOK, dto.LoadingChat())
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewChatResponse(view))
}

// Send handles POST /api/sessions/:id/chat/messages.
func (h *ChatHandler) Send(c *gin.Context) {
	var req dto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}
	view, err := h.facade.SendMessage(c.Request.Context(), middleware.CurrentSessionID(c), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewChatResponse(view))
}

// PlaceOrder handles POST /api/sessions/:id/chat/order.
func (h *ChatHandler) PlaceOrder(c *gin.Context) {
	order, err := h.facade.PlaceOrder(c.Request.Context(), middleware.CurrentSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
