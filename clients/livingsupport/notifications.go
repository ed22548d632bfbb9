package livingsupport

import (
	"context"
	"net/url"
	"strconv"

	"koshub/models"
)

// GetNotifications lists the caller's notifications, newest first. isRead
// filters on the server side when non-nil; limit caps the page size.
func (c *Client) GetNotifications(ctx context.Context, token string, isRead *bool, limit int) ([]models.Notification, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if isRead != nil {
		query.Set("is_read", strconv.FormatBool(*isRead))
	}
	var out []models.Notification
	if err := c.rest.Get(ctx, "/api/notifications", token, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// unreadCountResponse is the unread-count payload.
type unreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

// GetUnreadCount returns the number of unread notifications.
func (c *Client) GetUnreadCount(ctx context.Context, token string) (int, error) {
	var out unreadCountResponse
	if err := c.rest.Get(ctx, "/api/notifications/unread-count", token, nil, &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, token string, id int) (*models.Notification, error) {
	var out models.Notification
	if err := c.rest.Put(ctx, "/api/notifications/"+strconv.Itoa(id)+"/read", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkAllNotificationsRead marks every notification as read. The operation is
// idempotent upstream; repeating it leaves the unread count at zero.
func (c *Client) MarkAllNotificationsRead(ctx context.Context, token string) error {
	return c.rest.Put(ctx, "/api/notifications/read-all", token, nil, nil)
}
