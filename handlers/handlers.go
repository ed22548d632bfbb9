// Package handlers contains the page controllers. Each protected page
// assumes the RequireAuth middleware already redirected anonymous visitors;
// every upstream fetch is wrapped so the page always reaches a rendered
// state (content, empty, or error banner).
package handlers

import (
	"koshub/middleware"
	"koshub/session"

	"github.com/gin-gonic/gin"
)

// Handler bundles the page controllers with their dependencies.
type Handler struct {
	Accommodation AccommodationService
	LivingSupport LivingSupportService
	Sessions      session.Store
	Badge         UnreadBadge
}

// NewHandler wires the page controllers.
func NewHandler(acc AccommodationService, ls LivingSupportService, sessions session.Store, badge UnreadBadge) *Handler {
	return &Handler{
		Accommodation: acc,
		LivingSupport: ls,
		Sessions:      sessions,
		Badge:         badge,
	}
}

// render executes a page template with the chrome data (auth state, unread
// badge) merged in. Per-page fields in data win on key collisions.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	sess := middleware.CurrentSession(c)
	if _, ok := data["IsAuthenticated"]; !ok {
		data["IsAuthenticated"] = sess != nil
	}
	if sess != nil {
		data["User"] = sess.User
		if _, ok := data["UnreadCount"]; !ok {
			data["UnreadCount"] = h.Badge.UnreadCount(c.Request.Context(), sess)
		}
	}
	c.HTML(status, name, data)
}
