package handlers

import (
	"context"

	"koshub/models"
	"koshub/session"
)

// AccommodationService is the slice of the accommodation client the pages use.
type AccommodationService interface {
	Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error)
	Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error)
	ChangePassword(ctx context.Context, token, newPassword string) error
	GetUserByID(ctx context.Context, token, userID string) (*models.User, error)
	GetAccommodations(ctx context.Context, token string) ([]models.Accommodation, error)
	GetBookingsForUser(ctx context.Context, token, userID string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, token string, data models.CreateBookingData) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, token string, bookingID int, status string, accommodationID int) (*models.Booking, error)
}

// LivingSupportService is the slice of the living-support client the pages use.
type LivingSupportService interface {
	GetMenu(ctx context.Context, token string) (*models.CateringMenu, error)
	GetLaundryOrders(ctx context.Context, token string) ([]models.LaundryOrder, error)
	CreateLaundryOrder(ctx context.Context, token string, data models.CreateLaundryData) (*models.LaundryOrder, error)
	GetCateringOrders(ctx context.Context, token string) ([]models.CateringOrder, error)
	CreateCateringOrder(ctx context.Context, token string, data models.CreateCateringData) (*models.CateringOrder, error)
	GetNotifications(ctx context.Context, token string, isRead *bool, limit int) ([]models.Notification, error)
	GetUnreadCount(ctx context.Context, token string) (int, error)
	MarkNotificationRead(ctx context.Context, token string, id int) (*models.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, token string) error
}

// UnreadBadge abstracts the per-session unread-count poller.
type UnreadBadge interface {
	Start(sess *session.Session)
	Stop(sessionID string)
	UnreadCount(ctx context.Context, sess *session.Session) int
}
