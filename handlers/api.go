package handlers

import (
	"net/http"

	"koshub/middleware"

	"github.com/gin-gonic/gin"
)

// UnreadCountAPI serves the navbar badge refresh. The count comes from the
// poller's cache, so the 30s browser interval does not hammer the upstream.
func (h *Handler) UnreadCountAPI(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	count := h.Badge.UnreadCount(c.Request.Context(), sess)
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}
