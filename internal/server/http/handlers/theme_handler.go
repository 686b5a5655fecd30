package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/presto/internal/domain/model"
	"github.com/polkiloo/presto/internal/server/http/dto"
)

// ThemeHandler manages the theme preference endpoints.
type ThemeHandler struct {
	facade ThemeFacade
}

// NewThemeHandler constructs ThemeHandler.
func NewThemeHandler(facade ThemeFacade) *ThemeHandler {
	return &ThemeHandler{facade: facade}
}

// Get handles GET /api/theme.
func (h *ThemeHandler) Get(c *gin.Context) {
	theme, err := h.facade.Theme(c.Request.Context())
	h.respond(c, theme, err)
}

// Set handles PUT /api/theme.
func (h *ThemeHandler) Set(c *gin.Context) {
	var req dto.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}
	theme, err := h.facade.SetTheme(c.Request.Context(), req.Theme)
	h.respond(c, theme, err)
}

// Toggle handles POST /api/theme/toggle.
func (h *ThemeHandler) Toggle(c *gin.Context) {
	theme, err := h.facade.ToggleTheme(c.Request.Context())
	h.respond(c, theme, err)
}

func (h *ThemeHandler) respond(c *gin.Context, theme model.Theme, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ThemeResponse{Theme: string(theme)})
}
