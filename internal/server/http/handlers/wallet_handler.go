package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/presto/internal/domain/model"
	"github.com/polkiloo/presto/internal/server/http/dto"
	"github.com/polkiloo/presto/internal/server/http/middleware"
)

// WalletHandler manages wallet endpoints.
type WalletHandler struct {
	facade WalletFacade
}

// NewWalletHandler constructs WalletHandler.
func NewWalletHandler(facade WalletFacade) *WalletHandler {
	return &WalletHandler{facade: facade}
}

// Summary handles GET /api/sessions/:id/wallet.
func (h *WalletHandler) Summary(c *gin.Context) {
	view, err := h.facade.Wallet(middleware.CurrentSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWalletResponse(view))
}

// TopUp handles POST /api/sessions/:id/wallet/topup.
func (h *WalletHandler) TopUp(c *gin.Context) {
	h.apply(c, h.facade.TopUp)
}

// Withdraw handles POST /api/sessions/:id/wallet/withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	h.apply(c, h.facade.Withdraw)
}

func (h *WalletHandler) apply(c *gin.Context, op func(context.Context, string) (model.Transaction, error)) {
	tx, err := op(c.Request.Context(), middleware.CurrentSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}
