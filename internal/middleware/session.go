package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xyz-asif/findme/internal/pkg/logger"
	"github.com/xyz-asif/findme/internal/pkg/token"
)

const (
	SessionCookie = "findme_session"
	// SessionHeader carries a freshly issued token for clients that do not
	// keep cookies.
	SessionHeader = "X-Session-Token"

	sessionIDKey = "sessionID"
)

type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	SecureCookie bool
}

// Session makes sure every request belongs to a browser session. A valid
// token (cookie, Bearer header or ?token= for websockets) is reused; anything
// else starts a new session. Tokens past half their life are re-issued.
func Session(cfg SessionConfig) gin.HandlerFunc {
	log := logger.Default().Named("session")

	return func(c *gin.Context) {
		var sessionID string
		reissue := true

		if raw := sessionToken(c); raw != "" {
			claims, err := token.ValidateSessionToken(raw, cfg.Secret)
			if err == nil {
				sessionID = claims.SessionID
				reissue = claims.IssuedAt == nil || time.Since(claims.IssuedAt.Time) > cfg.TTL/2
			} else {
				log.Debug("discarding session token: %v", err)
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		if reissue {
			signed, err := token.GenerateSessionToken(sessionID, cfg.Secret, cfg.TTL)
			if err != nil {
				log.Error("issue session token: %v", err)
			} else {
				c.SetSameSite(http.SameSiteLaxMode)
				c.SetCookie(SessionCookie, signed, int(cfg.TTL.Seconds()), "/", "", cfg.SecureCookie, true)
				c.Header(SessionHeader, signed)
			}
		}

		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		fields := strings.Fields(authHeader)
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			return fields[1]
		}
		return authHeader
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	return c.Query("token")
}

// SessionID returns the id Session stored on c.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
