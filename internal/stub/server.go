package stub

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/polkiloo/presto/internal/server/http/middleware"
)

// Server serves the canned backend endpoints.
type Server struct {
	store    *Store
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

// NewServer constructs Server.
func NewServer(store *Store, logger *slog.Logger) *Server {
	return &Server{store: store, validate: validator.New(), logger: logger, now: time.Now}
}

// Router builds the gin engine for the stub backend.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(s.logger))

	engine.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Prestó Backend Running") })
	engine.POST("/orders", s.createOrder)
	engine.GET("/orders", s.listOrders)
	engine.POST("/messages", s.createMessage)
	engine.GET("/messages/:orderId", s.listMessages)
	engine.GET("/bids/:orderId", s.bids)
	engine.POST("/chat", s.chat)
	return engine
}

func (s *Server) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		return false
	}
	return s.validate.Struct(req) == nil
}

func (s *Server) createOrder(c *gin.Context) {
	var req createOrderRequest
	if !s.bind(c, &req) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request is required"})
		return
	}
	order := Order{
		ID:        "ord_" + uuid.NewString(),
		Request:   req.Request,
		Status:    orderStatusSearching,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	s.store.AddOrder(order)
	c.JSON(http.StatusCreated, order)
}

func (s *Server) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Orders())
}

func (s *Server) createMessage(c *gin.Context) {
	var req createMessageRequest
	if !s.bind(c, &req) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId, sender and text are required"})
		return
	}
	msg := Message{
		ID:        "msg_" + uuid.NewString(),
		OrderID:   req.OrderID,
		Sender:    req.Sender,
		Text:      req.Text,
		Timestamp: s.now().Format("15:04"),
	}
	s.store.AddMessage(msg)
	c.JSON(http.StatusCreated, msg)
}

func (s *Server) listMessages(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Messages(c.Param("orderId")))
}

func (s *Server) bids(c *gin.Context) {
	bids := make([]Bid, len(mockBids))
	copy(bids, mockBids)
	c.JSON(http.StatusOK, bids)
}

func (s *Server) chat(c *gin.Context) {
	var req chatRequest
	if !s.bind(c, &req) {
		c.JSON(http.StatusBadRequest, chatResponse{Reply: missingReply})
		return
	}
	reply := Reply(req.Message, req.Partner)
	s.logger.Info("chat reply", slog.String("partner", req.Partner), slog.String("reply", reply))
	c.JSON(http.StatusOK, chatResponse{Reply: reply})
}
