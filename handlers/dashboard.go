package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"koshub/middleware"
	"koshub/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardPage shows the user's profile and bookings. The two fetches are
// independent and issued concurrently; either failing leaves the other
// intact (profile falls back to the session copy, bookings to an empty list).
func (h *Handler) DashboardPage(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)
	ctx := c.Request.Context()

	user := sess.User
	var bookings []models.Booking
	var bookingsErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		fresh, err := h.Accommodation.GetUserByID(ctx, sess.AccessToken, sess.User.ID)
		if err != nil {
			logger.Warn("Failed to fetch user details", zap.Error(err))
			return
		}
		user = *fresh
	}()
	go func() {
		defer wg.Done()
		bookings, bookingsErr = h.Accommodation.GetBookingsForUser(ctx, sess.AccessToken, sess.User.ID)
		if bookingsErr != nil {
			logger.Warn("Failed to fetch bookings", zap.Error(bookingsErr))
			bookings = nil
		}
	}()
	wg.Wait()

	successCount := 0
	pendingCount := 0
	for _, b := range bookings {
		switch b.Status {
		case models.BookingSuccess:
			successCount++
		case models.BookingPending:
			pendingCount++
		}
	}

	h.render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title":        "Dashboard",
		"User":         user,
		"Bookings":     bookings,
		"SuccessCount": successCount,
		"PendingCount": pendingCount,
		"JustBooked":   c.Query("booked") == "1",
		"Alert":        c.Query("alert"),
	})
}

// UpdateBookingStatusSubmit handles the Pay and Cancel actions on a PENDING
// booking. The status update is followed by a dashboard redirect, which
// re-fetches the list; on failure nothing was mutated locally, so the alert
// is the only state change.
func (h *Handler) UpdateBookingStatusSubmit(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard?alert="+url.QueryEscape("Invalid booking"))
		return
	}
	accommodationID, _ := strconv.Atoi(c.PostForm("accommodation_id"))

	var status string
	switch c.Param("action") {
	case "pay":
		status = models.BookingSuccess
	case "cancel":
		status = models.BookingCancelled
	default:
		c.Redirect(http.StatusSeeOther, "/dashboard?alert="+url.QueryEscape("Unknown action"))
		return
	}

	if _, err := h.Accommodation.UpdateBookingStatus(c.Request.Context(), sess.AccessToken, bookingID, status, accommodationID); err != nil {
		logger.Error("Failed to update booking status",
			zap.Int("bookingID", bookingID),
			zap.String("status", status),
			zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/dashboard?alert="+url.QueryEscape("Failed to update booking status"))
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
