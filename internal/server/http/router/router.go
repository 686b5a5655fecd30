package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/presto/internal/server/http/handlers"
	"github.com/polkiloo/presto/internal/server/http/middleware"
)

// Telemetry records request metrics and exposes them for scraping.
type Telemetry interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PrestoFacade, telemetry Telemetry, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(telemetry))
	engine.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithDecompressFn(gzip.DefaultDecompressHandle),
		gzip.WithExcludedPathsRegexs([]string{`/orders/live$`, `^/metrics$`}),
	))

	sessionHandler := handlers.NewSessionHandler(facade)
	chatHandler := handlers.NewChatHandler(facade)
	walletHandler := handlers.NewWalletHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade, logger)
	themeHandler := handlers.NewThemeHandler(facade)

	engine.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/metrics", gin.WrapH(telemetry.Handler()))

	api := engine.Group("/api")
	api.GET("/theme", themeHandler.Get)
	api.PUT("/theme", themeHandler.Set)
	api.POST("/theme/toggle", themeHandler.Toggle)

	api.POST("/sessions", sessionHandler.Create)

	session := api.Group("/sessions/:id")
	session.Use(middleware.SessionRequired(facade))
	session.GET("", sessionHandler.Get)
	session.DELETE("", sessionHandler.Delete)
	session.PUT("/tab", sessionHandler.SelectTab)
	session.POST("/request", sessionHandler.Submit)
	session.GET("/partners", sessionHandler.Partners)
	session.POST("/partners/:partnerID", sessionHandler.SelectPartner)
	session.POST("/close", sessionHandler.Close)
	session.POST("/back", sessionHandler.Back)

	session.GET("/chat", chatHandler.Get)
	session.POST("/chat/messages", chatHandler.Send)
	session.POST("/chat/order", chatHandler.PlaceOrder)

	session.GET("/wallet", walletHandler.Summary)
	session.POST("/wallet/topup", walletHandler.TopUp)
	session.POST("/wallet/withdraw", walletHandler.Withdraw)

	session.GET("/orders", orderHandler.List)
	session.GET("/orders/live", orderHandler.Live)

	return engine
}
