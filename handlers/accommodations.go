package handlers

import (
	"net/http"
	"strconv"
	"time"

	"koshub/clients/rest"
	"koshub/middleware"
	"koshub/models"
	"koshub/services/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// accommodationCard is one listing with its discount preview applied.
type accommodationCard struct {
	models.Accommodation
	Quote       pricing.Quote
	FullyBooked bool
}

// AccommodationsPage renders the browseable kos list. Browsing is public;
// the booking form only appears for authenticated users.
func (h *Handler) AccommodationsPage(c *gin.Context) {
	h.renderAccommodations(c, http.StatusOK, "")
}

// renderAccommodations fetches the listings and renders the page, optionally
// with an inline booking error. A failed load still renders, with a banner.
func (h *Handler) renderAccommodations(c *gin.Context, status int, bookingError string) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	token := ""
	discountRate := 0.0
	if sess != nil {
		token = sess.AccessToken
		discountRate = sess.User.DiscountRate
	}

	data := gin.H{
		"Title":        "Accommodations",
		"BookingError": bookingError,
		"Today":        time.Now().Format("2006-01-02"),
		"DiscountRate": discountRate,
	}

	accommodations, err := h.Accommodation.GetAccommodations(c.Request.Context(), token)
	if err != nil {
		logger.Error("Failed to load accommodations", zap.Error(err))
		data["LoadError"] = rest.ErrorMessage(err, "Failed to load accommodations")
		h.render(c, status, "accommodations.html", data)
		return
	}

	cards := make([]accommodationCard, 0, len(accommodations))
	for _, a := range accommodations {
		cards = append(cards, accommodationCard{
			Accommodation: a,
			Quote:         pricing.AccommodationQuote(a.Price, discountRate),
			FullyBooked:   a.AvailableUnits == 0,
		})
	}
	data["Accommodations"] = cards
	h.render(c, status, "accommodations.html", data)
}

// CreateBookingSubmit handles the booking form. Dates are constrained in the
// form itself (start >= today, end >= start); here only presence is checked
// before the create call. Success redirects to the dashboard; failure
// re-renders the list with the backend's message inline.
func (h *Handler) CreateBookingSubmit(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	accommodationID, err := strconv.Atoi(c.PostForm("accommodation_id"))
	if err != nil {
		h.renderAccommodations(c, http.StatusBadRequest, "Pilih kos terlebih dahulu")
		return
	}
	startDate := c.PostForm("start_date")
	endDate := c.PostForm("end_date")
	if startDate == "" || endDate == "" {
		h.renderAccommodations(c, http.StatusBadRequest, "Tanggal mulai dan selesai wajib diisi")
		return
	}

	booking, err := h.Accommodation.CreateBooking(c.Request.Context(), sess.AccessToken, models.CreateBookingData{
		AccommodationID: accommodationID,
		StartDate:       startDate,
		EndDate:         endDate,
	})
	if err != nil {
		logger.Error("Failed to create booking",
			zap.Int("accommodationID", accommodationID), zap.Error(err))
		h.renderAccommodations(c, http.StatusBadGateway, rest.ErrorMessage(err, "Failed to create booking"))
		return
	}

	logger.Info("Booking created",
		zap.Int("bookingID", booking.BookingID),
		zap.String("status", booking.Status))
	c.Redirect(http.StatusSeeOther, "/dashboard?booked=1")
}
