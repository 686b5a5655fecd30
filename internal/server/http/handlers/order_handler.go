package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/polkiloo/presto/internal/server/http/dto"
	"github.com/polkiloo/presto/internal/server/http/middleware"
	"github.com/polkiloo/presto/internal/usecase"
)

const (
	liveWriteWait  = 5 * time.Second
	livePingPeriod = 30 * time.Second
)

// OrderHandler manages order listing endpoints.
type OrderHandler struct {
	facade     OrderFacade
	logger     *slog.Logger
	upgrader   websocket.Upgrader
	pingPeriod time.Duration
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		facade: facade,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		pingPeriod: livePingPeriod,
	}
}

// List handles GET /api/sessions/:id/orders.
func (h *OrderHandler) List(c *gin.Context) {
	var query dto.OrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	orders, err := h.facade.Orders(middleware.CurrentSessionID(c), query.Filter())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrdersResponse(orders))
}

// Live handles GET /api/sessions/:id/orders/live as a websocket pushing the
// full order list after every session change.
func (h *OrderHandler) Live(c *gin.Context) {
	id := middleware.CurrentSessionID(c)
	updates, cancel, err := h.facade.SubscribeOrders(id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer cancel()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.String("session", id), slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	push := func() bool {
		orders, err := h.facade.Orders(id, usecase.OrderFilter{})
		if err != nil {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, err.Error()),
				time.Now().Add(liveWriteWait))
			return false
		}
		_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
		return conn.WriteJSON(dto.NewOrdersResponse(orders)) == nil
	}

	if !push() {
		return
	}

	ping := time.NewTicker(h.pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-gone:
			return
		case <-updates:
			if !push() {
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait)); err != nil {
				return
			}
		}
	}
}
