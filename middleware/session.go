package middleware

import (
	"time"

	"koshub/session"
	"koshub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionContextKey = "session"

// SessionMiddleware hydrates the session from the cookie on every request.
// Absent, unknown or expired sessions leave the request anonymous; a session
// whose access token has passed its exp claim, or whose sub claim disagrees
// with the stored user, is deleted eagerly. Opaque tokens carry neither claim
// and pass through untouched.
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		sess, err := store.Get(cookie)
		if err != nil {
			if err != session.ErrNotFound {
				utils.GetLogger().Warn("Failed to load session", zap.Error(err))
			}
			c.Next()
			return
		}

		if utils.TokenExpired(sess.AccessToken, time.Now()) {
			_ = store.Delete(sess.ID)
			c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
			c.Next()
			return
		}

		// A readable sub claim must agree with the user the session was
		// created for.
		if sub, err := utils.ExtractSubject(sess.AccessToken); err == nil && sub != sess.User.ID {
			utils.GetLogger().Warn("Session user does not match token subject",
				zap.String("sessionID", sess.ID))
			_ = store.Delete(sess.ID)
			c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
			c.Next()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// CurrentSession returns the hydrated session, or nil for anonymous requests.
func CurrentSession(c *gin.Context) *session.Session {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	sess, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
