package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/presto/internal/app"
	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
	"github.com/polkiloo/presto/internal/server/http/dto"
)

const (
	// SessionIDContextKey is a gin context key for the resolved session identifier.
	SessionIDContextKey = "sessionID"
	sessionParam        = "id"
)

// SessionLookup resolves session identifiers.
type SessionLookup interface {
	Session(id string) (app.SessionView, error)
}

// SessionRequired rejects requests addressed to unknown sessions.
func SessionRequired(lookup SessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param(sessionParam)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Error: "session id is required"})
			return
		}

		if _, err := lookup.Session(id); err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(SessionIDContextKey, id)
		c.Next()
	}
}

// CurrentSessionID extracts the resolved session identifier from context.
func CurrentSessionID(c *gin.Context) string {
	val, ok := c.Get(SessionIDContextKey)
	if !ok {
		return c.Param(sessionParam)
	}
	id, _ := val.(string)
	return id
}
