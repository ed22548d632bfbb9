package handlers

import (
	"net/http"
	"strconv"

	"koshub/clients/rest"
	"koshub/middleware"
	"koshub/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const notificationPageLimit = 50

// severityClasses maps notification severities to icon/color pairs. Purely
// presentational.
var severityClasses = map[string]gin.H{
	models.SeveritySuccess: {"Icon": "check-circle", "Class": "severity-success"},
	models.SeverityWarning: {"Icon": "alert-triangle", "Class": "severity-warning"},
	models.SeverityError:   {"Icon": "alert-circle", "Class": "severity-error"},
	models.SeverityInfo:    {"Icon": "info", "Class": "severity-info"},
}

// NotificationsPage lists notifications with an all/unread filter. The
// filter is applied server-side by the living-support service.
func (h *Handler) NotificationsPage(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	filter := c.DefaultQuery("filter", "all")
	var isRead *bool
	if filter == "unread" {
		f := false
		isRead = &f
	}

	data := gin.H{
		"Title":           "Notifikasi",
		"Filter":          filter,
		"SeverityClasses": severityClasses,
		"PageUnreadCount": 0,
	}

	notifications, err := h.LivingSupport.GetNotifications(c.Request.Context(), sess.AccessToken, isRead, notificationPageLimit)
	if err != nil {
		logger.Error("Failed to load notifications", zap.Error(err))
		data["LoadError"] = rest.ErrorMessage(err, "Failed to load notifications")
		h.render(c, http.StatusOK, "notifications.html", data)
		return
	}

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}
	data["Notifications"] = notifications
	data["PageUnreadCount"] = unread
	h.render(c, http.StatusOK, "notifications.html", data)
}

// MarkNotificationReadSubmit marks one notification as read, then returns to
// the list with the active filter preserved.
func (h *Handler) MarkNotificationReadSubmit(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err == nil {
		if _, err = h.LivingSupport.MarkNotificationRead(c.Request.Context(), sess.AccessToken, id); err != nil {
			logger.Warn("Failed to mark notification as read", zap.Int("id", id), zap.Error(err))
		}
	}
	c.Redirect(http.StatusSeeOther, notificationsReturnURL(c))
}

// MarkAllNotificationsReadSubmit marks everything read. The upstream call is
// idempotent: repeating it keeps the unread count at zero.
func (h *Handler) MarkAllNotificationsReadSubmit(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	if err := h.LivingSupport.MarkAllNotificationsRead(c.Request.Context(), sess.AccessToken); err != nil {
		logger.Warn("Failed to mark all notifications as read", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, notificationsReturnURL(c))
}

func notificationsReturnURL(c *gin.Context) string {
	if c.PostForm("filter") == "unread" {
		return "/dashboard/notifications?filter=unread"
	}
	return "/dashboard/notifications"
}
