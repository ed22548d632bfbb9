package accommodation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"koshub/clients/rest"
	"koshub/models"
)

// GetBookings lists all bookings visible to the caller.
func (c *Client) GetBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.rest.Get(ctx, "/bookings", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBookingsForUser fetches the bookings for one user. The upstream returns
// either a single object or an array depending on how many bookings exist;
// both shapes are normalized to a slice.
func (c *Client) GetBookingsForUser(ctx context.Context, token, userID string) ([]models.Booking, error) {
	var raw json.RawMessage
	if err := c.rest.Get(ctx, "/bookings/"+userID, token, nil, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var out []models.Booking
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("%w: failed to decode bookings: %v", rest.ErrInvalidResponse, err)
		}
		return out, nil
	}
	var one models.Booking
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking: %v", rest.ErrInvalidResponse, err)
	}
	return []models.Booking{one}, nil
}

// CreateBooking creates a booking for the authenticated user.
func (c *Client) CreateBooking(ctx context.Context, token string, data models.CreateBookingData) (*models.Booking, error) {
	var out models.Booking
	if err := c.rest.Post(ctx, "/bookings", token, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBookingStatus moves a booking to the given status (Pay → SUCCESS,
// Cancel → CANCELLED). The upstream also requires the accommodation ID so it
// can adjust unit availability.
func (c *Client) UpdateBookingStatus(ctx context.Context, token string, bookingID int, status string, accommodationID int) (*models.Booking, error) {
	body := map[string]interface{}{
		"status":           status,
		"accommodation_id": accommodationID,
	}
	var out models.Booking
	if err := c.rest.Put(ctx, "/bookings/"+strconv.Itoa(bookingID), token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBooking removes a booking.
func (c *Client) DeleteBooking(ctx context.Context, token string, bookingID int) error {
	return c.rest.Delete(ctx, "/bookings/"+strconv.Itoa(bookingID), token, nil)
}
