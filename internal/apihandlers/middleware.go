package apihandlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"quest/internal/auth"
	"quest/internal/models"
)

const (
	requestIDKey = "request_id"
	sessionKey   = "session"
)

// RequestIDMiddleware assigns every request an id that keys operator logs.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestID returns the id assigned by RequestIDMiddleware.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// AuthMiddleware verifies the session token and stores the resulting
// session for handlers. Any verification failure reads as unauthorized.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			RespondError(c, models.UnauthorizedError())
			return
		}

		session, err := tokens.Verify(token)
		if err != nil {
			log.WithFields(log.Fields{
				"request_id": RequestID(c),
			}).WithError(err).Info("rejected request with invalid session token")
			RespondError(c, models.UnauthorizedError())
			return
		}

		c.Set(sessionKey, *session)
		c.Next()
	}
}

// SessionFromContext returns the session stored by AuthMiddleware.
func SessionFromContext(c *gin.Context) (models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return models.Session{}, false
	}
	session, ok := v.(models.Session)
	return session, ok
}
