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

// CateringPage renders the catering order form behind the same SUCCESS
// booking gate as laundry. The menu is fetched only after the bookings
// resolve; with no eligible booking no menu call is made.
func (h *Handler) CateringPage(c *gin.Context) {
	h.renderCatering(c, http.StatusOK, "", c.Query("created") == "1")
}

func (h *Handler) renderCatering(c *gin.Context, status int, formError string, created bool) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	data := gin.H{
		"Title":   "Layanan Catering",
		"Error":   formError,
		"Created": created,
		"Today":   time.Now().Format("2006-01-02"),
	}

	bookings, err := h.eligibleBookings(c)
	if err != nil {
		logger.Error("Failed to fetch bookings", zap.Error(err))
		data["LoadError"] = rest.ErrorMessage(err, "Failed to load bookings")
		h.render(c, status, "catering.html", data)
		return
	}
	data["Bookings"] = bookings
	if len(bookings) == 0 {
		h.render(c, status, "catering.html", data)
		return
	}

	menu, err := h.LivingSupport.GetMenu(c.Request.Context(), sess.AccessToken)
	if err != nil {
		logger.Error("Failed to fetch menu", zap.Error(err))
		data["MenuError"] = "Failed to load menu. Please try again later."
		h.render(c, status, "catering.html", data)
		return
	}
	data["Menu"] = menu
	h.render(c, status, "catering.html", data)
}

// CreateCateringSubmit places a catering order. The gate is re-checked and
// the menu item re-resolved so the total preview matches what the backend
// will persist.
func (h *Handler) CreateCateringSubmit(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	eligible, err := h.eligibleBookings(c)
	if err != nil || len(eligible) == 0 {
		h.renderCatering(c, http.StatusBadRequest, "Kamu perlu booking kos terlebih dahulu", false)
		return
	}

	bookingID, err := strconv.Atoi(c.PostForm("booking_id"))
	if err != nil || !containsBooking(eligible, bookingID) {
		h.renderCatering(c, http.StatusBadRequest, "Please select a booking", false)
		return
	}

	quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
	if err != nil || quantity < 1 {
		h.renderCatering(c, http.StatusBadRequest, "Jumlah tidak valid", false)
		return
	}

	data := models.CreateCateringData{
		BookingID:       bookingID,
		MealType:        c.PostForm("meal_type"),
		MenuName:        c.PostForm("menu_name"),
		Quantity:        quantity,
		DeliveryDate:    c.PostForm("delivery_date"),
		DeliveryTime:    c.PostForm("delivery_time"),
		DeliveryAddress: c.PostForm("delivery_address"),
		SpecialRequests: c.PostForm("special_requests"),
	}
	if data.DeliveryDate == "" || data.DeliveryTime == "" {
		h.renderCatering(c, http.StatusBadRequest, "Tanggal dan jam pengiriman wajib diisi", false)
		return
	}

	menu, err := h.LivingSupport.GetMenu(c.Request.Context(), sess.AccessToken)
	if err != nil {
		logger.Error("Failed to fetch menu", zap.Error(err))
		h.renderCatering(c, http.StatusBadGateway, "Failed to load menu. Please try again later.", false)
		return
	}
	if _, err := pricing.CateringTotal(menu, data.MealType, data.MenuName, data.Quantity); err != nil {
		h.renderCatering(c, http.StatusBadRequest, "Pilih menu yang tersedia", false)
		return
	}

	order, err := h.LivingSupport.CreateCateringOrder(c.Request.Context(), sess.AccessToken, data)
	if err != nil {
		logger.Error("Failed to create catering order", zap.Error(err))
		h.renderCatering(c, http.StatusBadGateway, rest.ErrorMessage(err, "Gagal membuat pesanan catering"), false)
		return
	}

	logger.Info("Catering order created",
		zap.Int("orderID", order.ID),
		zap.String("mealType", order.MealType))
	c.Redirect(http.StatusSeeOther, "/services/catering?created=1")
}
