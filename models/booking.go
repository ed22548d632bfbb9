package models

// Booking lifecycle states.
const (
	BookingPending   = "PENDING"
	BookingSuccess   = "SUCCESS"
	BookingCancelled = "CANCELLED"
)

// Booking mirrors the accommodation service's booking resource.
type Booking struct {
	BookingID       int    `json:"booking_id"`
	AccommodationID int    `json:"accommodation_id"`
	UserID          string `json:"user_id"`
	BasePrice       int64  `json:"base_price"`
	DiscountApplied int64  `json:"discount_applied"`
	FinalPrice      int64  `json:"final_price"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// CreateBookingData is the booking creation payload.
type CreateBookingData struct {
	AccommodationID int    `json:"accommodation_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}

// SuccessfulBookings returns only the bookings in SUCCESS status. Laundry and
// catering orders may only be placed against these.
func SuccessfulBookings(bookings []Booking) []Booking {
	var out []Booking
	for _, b := range bookings {
		if b.Status == BookingSuccess {
			out = append(out, b)
		}
	}
	return out
}
