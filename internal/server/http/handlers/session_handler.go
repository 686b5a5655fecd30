package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/presto/internal/domain/model"
	"github.com/polkiloo/presto/internal/server/http/dto"
	"github.com/polkiloo/presto/internal/server/http/middleware"
)

// SessionHandler manages session and navigation endpoints.
type SessionHandler struct {
	facade SessionFacade
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(facade SessionFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// Create handles POST /api/sessions.
func (h *SessionHandler) Create(c *gin.Context) {
	view, err := h.facade.CreateSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSessionResponse(view))
}

// Get handles GET /api/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	view, err := h.facade.Session(middleware.CurrentSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSessionResponse(view))
}

// Delete handles DELETE /api/sessions/:id.
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteSession(middleware.CurrentSessionID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectTab handles PUT /api/sessions/:id/tab.
func (h *SessionHandler) SelectTab(c *gin.Context) {
	var req dto.TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}
	view, err := h.facade.SelectTab(middleware.CurrentSessionID(c), req.Tab)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSessionResponse(view))
}

// Submit handles POST /api/sessions/:id/request.
func (h *SessionHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}
	view, partners, err := h.facade.SubmitRequest(c.Request.Context(), middleware.CurrentSessionID(c), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BiddingResponse{Session: dto.NewSessionResponse(view), Partners: nonNilPartners(partners)})
}

// Partners handles GET /api/sessions/:id/partners.
func (h *SessionHandler) Partners(c *gin.Context) {
	partners, err := h.facade.Partners(middleware.CurrentSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilPartners(partners))
}

// SelectPartner handles POST /api/sessions/:id/partners/:partnerID.
func (h *SessionHandler) SelectPartner(c *gin.Context) {
	view, err := h.facade.SelectPartner(middleware.CurrentSessionID(c), c.Param("partnerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewChatResponse(view))
}

// Close handles POST /api/sessions/:id/close.
func (h *SessionHandler) Close(c *gin.Context) {
	view, err := h.facade.Close(middleware.CurrentSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSessionResponse(view))
}

// Back handles POST /api/sessions/:id/back.
func (h *SessionHandler) Back(c *gin.Context) {
	view, consumed, err := h.facade.Back(middleware.CurrentSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BackResponse{Session: dto.NewSessionResponse(view), Consumed: consumed})
}

func nonNilPartners(partners []model.Partner) []model.Partner {
	if partners == nil {
		return []model.Partner{}
	}
	return partners
}
