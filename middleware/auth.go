package middleware

import (
	"net/http"

	"Playhub/services/identity"
	"Playhub/utils/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Cookie session key holding the gate session id
const sessionKey = "gate_session"

// Context key of the resolved identity.Session
const contextSession = "identity_session"

// AuthRequired resolves the cookie to a gate session. Unauthenticated
// requests get the landing page instead of the routed page.
func AuthRequired(gate *identity.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie := sessions.Default(c)
		id, _ := cookie.Get(sessionKey).(string)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Landing(gate))
			return
		}

		s, err := gate.Session(id)
		if err != nil {
			logger.Debugf("[AUTH] stale session cookie: %v", err)
			cookie.Delete(sessionKey)
			_ = cookie.Save()
			c.AbortWithStatusJSON(http.StatusUnauthorized, Landing(gate))
			return
		}

		c.Set(contextSession, s)
		c.Next()
	}
}

// RequireRole must run after AuthRequired
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok || !s.HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": role + " only"})
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session resolved by AuthRequired
func CurrentSession(c *gin.Context) (identity.Session, bool) {
	v, ok := c.Get(contextSession)
	if !ok {
		return identity.Session{}, false
	}
	s, ok := v.(identity.Session)
	return s, ok
}

// SessionID returns the gate session id stored in the cookie
func SessionID(c *gin.Context) string {
	id, _ := sessions.Default(c).Get(sessionKey).(string)
	return id
}

func SaveSession(c *gin.Context, sessionID string) error {
	cookie := sessions.Default(c)
	cookie.Set(sessionKey, sessionID)
	return cookie.Save()
}

func ClearSession(c *gin.Context) error {
	cookie := sessions.Default(c)
	cookie.Clear()
	cookie.Options(sessions.Options{Path: "/", MaxAge: -1})
	return cookie.Save()
}

// Landing is the view model shown to unauthenticated visitors
func Landing(gate *identity.Gate) gin.H {
	return gin.H{
		"error":        "unauthorized",
		"page":         "landing",
		"login_url":    "/login",
		"register_url": gate.RegisterURL(),
	}
}
