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

// LaundryPage renders the laundry order form. The form requires at least one
// SUCCESS booking; without one the page is a dead end pointing the user to
// book a kos first, and no order can be created.
func (h *Handler) LaundryPage(c *gin.Context) {
	h.renderLaundry(c, http.StatusOK, "", c.Query("created") == "1")
}

func (h *Handler) renderLaundry(c *gin.Context, status int, formError string, created bool) {
	logger := getLogger(c)

	data := gin.H{
		"Title":        "Layanan Laundry",
		"Error":        formError,
		"Created":      created,
		"Prices":       models.LaundryPrices,
		"ServiceNames": models.LaundryServiceNames,
		"Today":        time.Now().Format("2006-01-02"),
	}

	bookings, err := h.eligibleBookings(c)
	if err != nil {
		logger.Error("Failed to fetch bookings", zap.Error(err))
		data["LoadError"] = rest.ErrorMessage(err, "Failed to load bookings")
		h.render(c, status, "laundry.html", data)
		return
	}
	data["Bookings"] = bookings
	h.render(c, status, "laundry.html", data)
}

// eligibleBookings returns the user's SUCCESS bookings, the only ones
// laundry and catering orders may be placed against.
func (h *Handler) eligibleBookings(c *gin.Context) ([]models.Booking, error) {
	sess := middleware.CurrentSession(c)
	bookings, err := h.Accommodation.GetBookingsForUser(c.Request.Context(), sess.AccessToken, sess.User.ID)
	if err != nil {
		return nil, err
	}
	return models.SuccessfulBookings(bookings), nil
}

// CreateLaundrySubmit places a laundry order. The booking gate is re-checked
// here so a crafted POST cannot bypass the empty-state page.
func (h *Handler) CreateLaundrySubmit(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	eligible, err := h.eligibleBookings(c)
	if err != nil || len(eligible) == 0 {
		h.renderLaundry(c, http.StatusBadRequest, "Kamu perlu booking kos terlebih dahulu", false)
		return
	}

	bookingID, err := strconv.Atoi(c.PostForm("booking_id"))
	if err != nil || !containsBooking(eligible, bookingID) {
		h.renderLaundry(c, http.StatusBadRequest, "Pilih booking terlebih dahulu", false)
		return
	}

	weight, err := strconv.ParseFloat(c.DefaultPostForm("weight", "1"), 64)
	if err != nil || weight <= 0 {
		h.renderLaundry(c, http.StatusBadRequest, "Berat tidak valid", false)
		return
	}

	data := models.CreateLaundryData{
		BookingID:   bookingID,
		ServiceType: c.PostForm("service_type"),
		Weight:      weight,
		PickupDate:  c.PostForm("pickup_date"),
		PickupTime:  c.PostForm("pickup_time"),
		Notes:       c.PostForm("notes"),
	}
	if _, err := pricing.LaundryTotal(data.ServiceType, data.Weight); err != nil {
		h.renderLaundry(c, http.StatusBadRequest, "Pilih jenis layanan", false)
		return
	}
	if data.PickupDate == "" || data.PickupTime == "" {
		h.renderLaundry(c, http.StatusBadRequest, "Tanggal dan jam penjemputan wajib diisi", false)
		return
	}

	order, err := h.LivingSupport.CreateLaundryOrder(c.Request.Context(), sess.AccessToken, data)
	if err != nil {
		logger.Error("Failed to create laundry order", zap.Error(err))
		h.renderLaundry(c, http.StatusBadGateway, rest.ErrorMessage(err, "Gagal membuat pesanan laundry"), false)
		return
	}

	logger.Info("Laundry order created",
		zap.Int("orderID", order.ID),
		zap.String("serviceType", order.ServiceType))
	c.Redirect(http.StatusSeeOther, "/services/laundry?created=1")
}

func containsBooking(bookings []models.Booking, id int) bool {
	for _, b := range bookings {
		if b.BookingID == id {
			return true
		}
	}
	return false
}
