package middleware

import (
	"net/http"

	"koshub/utils"

	"github.com/gin-gonic/gin"
)

// RequireAuth redirects anonymous visitors to the login page before any data
// fetch happens. Page handlers behind this middleware can assume a session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			c.Redirect(http.StatusSeeOther, "/auth/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAuthJSON is the API variant: it answers 401 instead of redirecting.
func RequireAuthJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "Login required")
			c.Abort()
			return
		}
		c.Next()
	}
}
